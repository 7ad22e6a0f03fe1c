package repository

import (
	"context"

	"github.com/tenx-mn/catering-service/internal/domain"
)

// ChefProfileRepository persists chef profiles.
type ChefProfileRepository interface {
	Create(ctx context.Context, profile *domain.ChefProfile) error
	Update(ctx context.Context, profile *domain.ChefProfile) error
	GetByDashboardUserID(ctx context.Context, dashboardUserID string) (*domain.ChefProfile, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// CompanyProfileRepository persists company profiles.
type CompanyProfileRepository interface {
	Create(ctx context.Context, profile *domain.CompanyProfile) error
	GetByDashboardUserID(ctx context.Context, dashboardUserID string) (*domain.CompanyProfile, error)
}

type chefProfileRepository struct {
	db DBTX
}

func (r *chefProfileRepository) Create(ctx context.Context, p *domain.ChefProfile) error {
	const query = `
        INSERT INTO chef_profiles (dashboard_user_id, slug, specialty, bio, years_experience, hourly_rate,
                                   cover_image, certifications)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, rating, review_count, created_at, updated_at`

	if p.Certifications == nil {
		p.Certifications = []string{}
	}
	return r.db.QueryRow(ctx, query,
		p.DashboardUserID,
		p.Slug,
		p.Specialty,
		p.Bio,
		p.YearsExperience,
		p.HourlyRate,
		p.CoverImage,
		p.Certifications,
	).Scan(&p.ID, &p.Rating, &p.ReviewCount, &p.CreatedAt, &p.UpdatedAt)
}

func (r *chefProfileRepository) Update(ctx context.Context, p *domain.ChefProfile) error {
	const query = `
        UPDATE chef_profiles
        SET specialty=$1, bio=$2, years_experience=$3, hourly_rate=$4, cover_image=$5, certifications=$6,
            updated_at=NOW()
        WHERE dashboard_user_id=$7
        RETURNING updated_at`

	if p.Certifications == nil {
		p.Certifications = []string{}
	}
	return r.db.QueryRow(ctx, query,
		p.Specialty,
		p.Bio,
		p.YearsExperience,
		p.HourlyRate,
		p.CoverImage,
		p.Certifications,
		p.DashboardUserID,
	).Scan(&p.UpdatedAt)
}

func (r *chefProfileRepository) GetByDashboardUserID(ctx context.Context, dashboardUserID string) (*domain.ChefProfile, error) {
	const query = `
        SELECT id, dashboard_user_id, slug, specialty, bio, years_experience, hourly_rate, rating,
               review_count, cover_image, certifications, created_at, updated_at
        FROM chef_profiles WHERE dashboard_user_id=$1`

	var p domain.ChefProfile
	if err := r.db.QueryRow(ctx, query, dashboardUserID).Scan(
		&p.ID,
		&p.DashboardUserID,
		&p.Slug,
		&p.Specialty,
		&p.Bio,
		&p.YearsExperience,
		&p.HourlyRate,
		&p.Rating,
		&p.ReviewCount,
		&p.CoverImage,
		&p.Certifications,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *chefProfileRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM chef_profiles WHERE slug=$1)`, slug).Scan(&exists)
	return exists, err
}

type companyProfileRepository struct {
	db DBTX
}

func (r *companyProfileRepository) Create(ctx context.Context, p *domain.CompanyProfile) error {
	const query = `
        INSERT INTO company_profiles (dashboard_user_id, company_name, description, approval_status)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`

	if p.ApprovalStatus == "" {
		p.ApprovalStatus = domain.ApprovalPending
	}
	return r.db.QueryRow(ctx, query,
		p.DashboardUserID,
		p.CompanyName,
		p.Description,
		p.ApprovalStatus,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *companyProfileRepository) GetByDashboardUserID(ctx context.Context, dashboardUserID string) (*domain.CompanyProfile, error) {
	const query = `
        SELECT id, dashboard_user_id, company_name, description, approval_status, created_at, updated_at
        FROM company_profiles WHERE dashboard_user_id=$1`

	var p domain.CompanyProfile
	if err := r.db.QueryRow(ctx, query, dashboardUserID).Scan(
		&p.ID,
		&p.DashboardUserID,
		&p.CompanyName,
		&p.Description,
		&p.ApprovalStatus,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
