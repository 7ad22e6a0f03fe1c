package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/tenx-mn/catering-service/internal/auth"
	"github.com/tenx-mn/catering-service/internal/domain"
	"github.com/tenx-mn/catering-service/internal/events"
	"github.com/tenx-mn/catering-service/internal/repository"
	"github.com/tenx-mn/catering-service/pkg/util"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Pagination describes one page of a listing.
type Pagination struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

func newPagination(page, limit, total int) Pagination {
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
}

func sortOrder(s string) repository.SortOrder {
	if strings.EqualFold(s, string(repository.SortAsc)) {
		return repository.SortAsc
	}
	return repository.SortDesc
}

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// nullIfEmpty maps an explicitly empty optional field to NULL.
func nullIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func notFound(err error, resource string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return util.NewNotFound(resource, nil)
	}
	return err
}

// hashPassword reports an over-long password as a field error on "password".
func hashPassword(hasher *auth.Hasher, password string) (string, error) {
	hash, err := hasher.Hash(password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return "", util.NewValidationError("Validation failed", map[string]any{
			"password": fmt.Sprintf("The field 'password' must be at most %d bytes long.", auth.MaxPasswordBytes),
		})
	}
	if err != nil {
		return "", util.NewInternalError(err)
	}
	return hash, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// loadDashboardAccount attaches the role-specific profile to user.
func loadDashboardAccount(ctx context.Context, store repository.Store, user *domain.DashboardUser) (domain.DashboardAccount, error) {
	var (
		chef    *domain.ChefProfile
		company *domain.CompanyProfile
		err     error
	)
	switch user.Role {
	case domain.RoleChef:
		chef, err = store.ChefProfiles().GetByDashboardUserID(ctx, user.ID)
	case domain.RoleCompany:
		company, err = store.CompanyProfiles().GetByDashboardUserID(ctx, user.ID)
	}
	if err != nil && !isNoRows(err) {
		return nil, err
	}
	return domain.NewDashboardAccount(user, chef, company)
}

// publish emits event; delivery failures are logged and never fail the caller.
func publish(ctx context.Context, dispatcher events.Dispatcher, logger *zap.Logger, event events.Event) {
	if dispatcher == nil {
		return
	}
	if err := dispatcher.Publish(ctx, event); err != nil {
		logger.Warn("publish account event", zap.String("type", string(event.Type)), zap.Error(err))
	}
}
