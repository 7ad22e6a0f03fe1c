package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tenx-mn/catering-service/internal/domain"
)

// DashboardUserRepository handles persistence for dashboard operators.
type DashboardUserRepository interface {
	Create(ctx context.Context, user *domain.DashboardUser) error
	Update(ctx context.Context, user *domain.DashboardUser) error
	SetActive(ctx context.Context, id string, active bool) (*domain.DashboardUser, error)
	SetVerified(ctx context.Context, id string, verified bool) (*domain.DashboardUser, error)
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.DashboardUser, error)
	GetByEmail(ctx context.Context, email string) (*domain.DashboardUser, error)
	List(ctx context.Context, filter DashboardUserFilter) ([]domain.DashboardUser, int, error)
}

// DashboardUserFilter defines query params for dashboard user listing.
type DashboardUserFilter struct {
	Search     string
	Role       *domain.DashboardRole
	IsActive   *bool
	IsVerified *bool
	SortBy     string
	SortOrder  SortOrder
	Limit      int
	Offset     int
}

// DashboardUserSortColumns maps accepted sortBy values to columns.
var DashboardUserSortColumns = map[string]string{
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"lastLoginAt": "last_login_at",
	"name":        "name",
	"email":       "email",
	"role":        "role",
}

const dashboardUserColumns = `id, email, name, phone, avatar, password, role, is_verified, is_active,
        last_login_at, created_at, updated_at`

type dashboardUserRepository struct {
	db DBTX
}

func scanDashboardUser(row pgx.Row) (*domain.DashboardUser, error) {
	var u domain.DashboardUser
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.Phone,
		&u.Avatar,
		&u.PasswordHash,
		&u.Role,
		&u.IsVerified,
		&u.IsActive,
		&u.LastLoginAt,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *dashboardUserRepository) Create(ctx context.Context, user *domain.DashboardUser) error {
	const query = `
        INSERT INTO dashboard_users (email, name, phone, avatar, password, role, is_verified, is_active)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		user.Email,
		user.Name,
		user.Phone,
		user.Avatar,
		user.PasswordHash,
		user.Role,
		user.IsVerified,
		user.IsActive,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *dashboardUserRepository) Update(ctx context.Context, user *domain.DashboardUser) error {
	const query = `
        UPDATE dashboard_users SET name=$1, phone=$2, avatar=$3, updated_at=NOW()
        WHERE id=$4
        RETURNING updated_at`

	return r.db.QueryRow(ctx, query, user.Name, user.Phone, user.Avatar, user.ID).Scan(&user.UpdatedAt)
}

func (r *dashboardUserRepository) SetActive(ctx context.Context, id string, active bool) (*domain.DashboardUser, error) {
	query := `UPDATE dashboard_users SET is_active=$1, updated_at=NOW() WHERE id=$2 RETURNING ` + dashboardUserColumns
	return scanDashboardUser(r.db.QueryRow(ctx, query, active, id))
}

func (r *dashboardUserRepository) SetVerified(ctx context.Context, id string, verified bool) (*domain.DashboardUser, error) {
	query := `UPDATE dashboard_users SET is_verified=$1, updated_at=NOW() WHERE id=$2 RETURNING ` + dashboardUserColumns
	return scanDashboardUser(r.db.QueryRow(ctx, query, verified, id))
}

func (r *dashboardUserRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	cmd, err := r.db.Exec(ctx, `UPDATE dashboard_users SET last_login_at=$1 WHERE id=$2`, at, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *dashboardUserRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM dashboard_users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *dashboardUserRepository) GetByID(ctx context.Context, id string) (*domain.DashboardUser, error) {
	return scanDashboardUser(r.db.QueryRow(ctx, `SELECT `+dashboardUserColumns+` FROM dashboard_users WHERE id=$1`, id))
}

func (r *dashboardUserRepository) GetByEmail(ctx context.Context, email string) (*domain.DashboardUser, error) {
	return scanDashboardUser(r.db.QueryRow(ctx, `SELECT `+dashboardUserColumns+` FROM dashboard_users WHERE email=$1`, email))
}

func (r *dashboardUserRepository) List(ctx context.Context, filter DashboardUserFilter) ([]domain.DashboardUser, int, error) {
	var where whereBuilder
	where.search(filter.Search, "name", "email")
	if filter.Role != nil {
		where.add("role=$%d", *filter.Role)
	}
	if filter.IsActive != nil {
		where.add("is_active=$%d", *filter.IsActive)
	}
	if filter.IsVerified != nil {
		where.add("is_verified=$%d", *filter.IsVerified)
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM dashboard_users`+where.sql(), where.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	column, ok := DashboardUserSortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	query := `SELECT ` + dashboardUserColumns + ` FROM dashboard_users` + where.sql() +
		` ORDER BY ` + column + ` ` + filter.SortOrder.sql() + ` NULLS LAST, id` +
		pageClause(filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, where.args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	result := make([]domain.DashboardUser, 0)
	for rows.Next() {
		u, err := scanDashboardUser(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *u)
	}
	return result, total, rows.Err()
}
