package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/tenx-mn/catering-service/internal/domain"
)

// ErrAccountNotFound is returned when no account table holds an email.
var ErrAccountNotFound = errors.New("account not found")

// AccountMatch is the account an email resolved to. Exactly one field is set.
type AccountMatch struct {
	Dashboard *domain.DashboardUser
	Customer  *domain.Customer
}

// Category reports which account table matched.
func (m *AccountMatch) Category() domain.AccountCategory {
	if m.Dashboard != nil {
		return domain.CategoryDashboard
	}
	return domain.CategoryCustomer
}

// AccountDirectory resolves emails across the dashboard_users and users
// tables. It is the only place that treats the two tables as one namespace.
type AccountDirectory struct {
	dashboard DashboardUserRepository
	users     UserRepository
}

// NewAccountDirectory constructs a directory over both account tables.
func NewAccountDirectory(dashboard DashboardUserRepository, users UserRepository) *AccountDirectory {
	return &AccountDirectory{dashboard: dashboard, users: users}
}

// DirectoryFor builds a directory over the repositories of store.
func DirectoryFor(store Store) *AccountDirectory {
	return NewAccountDirectory(store.DashboardUsers(), store.Users())
}

// FindByEmail looks up dashboard users first, then customers.
func (d *AccountDirectory) FindByEmail(ctx context.Context, email string) (*AccountMatch, error) {
	staff, err := d.dashboard.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return &AccountMatch{Dashboard: staff}, nil
	case !errors.Is(err, pgx.ErrNoRows):
		return nil, err
	}

	customer, err := d.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return &AccountMatch{Customer: customer}, nil
	case errors.Is(err, pgx.ErrNoRows):
		return nil, ErrAccountNotFound
	default:
		return nil, err
	}
}

// EmailTaken reports whether any account table already uses email.
func (d *AccountDirectory) EmailTaken(ctx context.Context, email string) (bool, error) {
	_, err := d.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrAccountNotFound):
		return false, nil
	default:
		return false, err
	}
}
