package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/tenx-mn/catering-service/internal/domain"
)

// UserRepository defines persistence access for customers (the users table).
type UserRepository interface {
	Create(ctx context.Context, user *domain.Customer) error
	Update(ctx context.Context, user *domain.Customer) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	List(ctx context.Context, filter UserFilter) ([]domain.Customer, int, error)
}

// UserFilter defines query params for customer listing.
type UserFilter struct {
	Search    string
	UserType  *domain.CustomerType
	SortBy    string
	SortOrder SortOrder
	Limit     int
	Offset    int
}

// UserSortColumns maps accepted sortBy values to columns.
var UserSortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"name":      "name",
	"email":     "email",
	"userType":  "user_type",
}

const userColumns = `id, email, name, first_name, last_name, phone, address, user_type,
        organization_name, company_legal_no, avatar, google_id, password, created_at, updated_at`

type userRepository struct {
	db DBTX
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var u domain.Customer
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.FirstName,
		&u.LastName,
		&u.Phone,
		&u.Address,
		&u.UserType,
		&u.OrganizationName,
		&u.CompanyLegalNo,
		&u.Avatar,
		&u.GoogleID,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.Customer) error {
	const query = `
        INSERT INTO users (email, name, first_name, last_name, phone, address, user_type,
                           organization_name, company_legal_no, avatar, google_id, password)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		user.Email,
		user.Name,
		user.FirstName,
		user.LastName,
		user.Phone,
		user.Address,
		user.UserType,
		user.OrganizationName,
		user.CompanyLegalNo,
		user.Avatar,
		user.GoogleID,
		user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) Update(ctx context.Context, user *domain.Customer) error {
	const query = `
        UPDATE users SET name=$1, first_name=$2, last_name=$3, phone=$4, address=$5, updated_at=NOW()
        WHERE id=$6
        RETURNING updated_at`

	return r.db.QueryRow(ctx, query,
		user.Name,
		user.FirstName,
		user.LastName,
		user.Phone,
		user.Address,
		user.ID,
	).Scan(&user.UpdatedAt)
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	return scanCustomer(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return scanCustomer(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1`, email))
}

func (r *userRepository) List(ctx context.Context, filter UserFilter) ([]domain.Customer, int, error) {
	var where whereBuilder
	where.search(filter.Search, "name", "email", "first_name", "last_name")
	if filter.UserType != nil {
		where.add("user_type=$%d", *filter.UserType)
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`+where.sql(), where.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	column, ok := UserSortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	query := `SELECT ` + userColumns + ` FROM users` + where.sql() +
		` ORDER BY ` + column + ` ` + filter.SortOrder.sql() + `, id` +
		pageClause(filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, where.args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	result := make([]domain.Customer, 0)
	for rows.Next() {
		u, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *u)
	}
	return result, total, rows.Err()
}
