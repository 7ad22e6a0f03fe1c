package dto

import "time"

// DashboardUserListQuery filters GET /api/dashboard-users.
type DashboardUserListQuery struct {
	Page       int    `query:"page" validate:"omitempty,gte=1"`
	Limit      int    `query:"limit" validate:"omitempty,gte=1,lte=100"`
	Search     string `query:"search" validate:"omitempty,max=100"`
	Role       string `query:"role" validate:"omitempty,oneof=ADMIN CHEF COMPANY"`
	IsActive   string `query:"isActive" validate:"omitempty,oneof=true false"`
	IsVerified string `query:"isVerified" validate:"omitempty,oneof=true false"`
	SortBy     string `query:"sortBy" validate:"omitempty,oneof=createdAt updatedAt lastLoginAt name email role"`
	SortOrder  string `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

// CreateDashboardUserRequest payload.
type CreateDashboardUserRequest struct {
	Name       string  `json:"name" validate:"required,min=2,max=100"`
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,min=8,maxbytes=72,strongpassword"`
	Phone      string  `json:"phone" validate:"omitempty,phone"`
	Role       string  `json:"role" validate:"required,oneof=ADMIN CHEF COMPANY"`
	Specialty  string  `json:"specialty" validate:"omitempty,max=100"`
	HourlyRate float64 `json:"hourlyRate" validate:"gte=0"`
}

// UpdateDashboardUserRequest payload; absent fields stay unchanged.
type UpdateDashboardUserRequest struct {
	Name       *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Phone      *string  `json:"phone" validate:"omitempty,max=20"`
	Specialty  *string  `json:"specialty" validate:"omitempty,max=100"`
	HourlyRate *float64 `json:"hourlyRate" validate:"omitempty,gte=0"`
}

// ActivateRequest payload for PATCH /api/dashboard-users/:id/activate.
type ActivateRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

// VerifyRequest payload for PATCH /api/dashboard-users/:id/verify.
type VerifyRequest struct {
	IsVerified *bool `json:"isVerified" validate:"required"`
}

// DashboardUserResponse is a dashboard user without its credentials.
type DashboardUserResponse struct {
	ID             string                  `json:"id"`
	Email          string                  `json:"email"`
	Name           string                  `json:"name"`
	Phone          *string                 `json:"phone"`
	Avatar         *string                 `json:"avatar"`
	Role           string                  `json:"role"`
	IsVerified     bool                    `json:"isVerified"`
	IsActive       bool                    `json:"isActive"`
	LastLoginAt    *time.Time              `json:"lastLoginAt"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
	ChefProfile    *ChefProfileResponse    `json:"chefProfile,omitempty"`
	CompanyProfile *CompanyProfileResponse `json:"companyProfile,omitempty"`
}

// AccountResponse is the current dashboard account tagged with its kind.
type AccountResponse struct {
	Type string `json:"type"`
	DashboardUserResponse
}

// CompanyProfileResponse representation.
type CompanyProfileResponse struct {
	ID             string    `json:"id"`
	CompanyName    string    `json:"companyName"`
	Description    *string   `json:"description"`
	ApprovalStatus string    `json:"approvalStatus"`
	CreatedAt      time.Time `json:"createdAt"`
}
