package dto

import "time"

// UserListQuery filters GET /api/users.
type UserListQuery struct {
	Page      int    `query:"page" validate:"omitempty,gte=1"`
	Limit     int    `query:"limit" validate:"omitempty,gte=1,lte=100"`
	Search    string `query:"search" validate:"omitempty,max=100"`
	UserType  string `query:"userType" validate:"omitempty,oneof=INDIVIDUAL CORPORATE"`
	SortBy    string `query:"sortBy" validate:"omitempty,oneof=createdAt updatedAt name email userType"`
	SortOrder string `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

// UpdateUserRequest payload for PATCH /api/users/:id.
type UpdateUserRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=2,max=100"`
	FirstName *string `json:"firstName" validate:"omitempty,max=50"`
	LastName  *string `json:"lastName" validate:"omitempty,max=50"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
	Address   *string `json:"address" validate:"omitempty,max=500"`
}

// CustomerResponse is a customer without credentials.
type CustomerResponse struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	FirstName        *string   `json:"firstName"`
	LastName         *string   `json:"lastName"`
	Phone            *string   `json:"phone"`
	Address          *string   `json:"address"`
	UserType         string    `json:"userType"`
	OrganizationName *string   `json:"organizationName"`
	CompanyLegalNo   *string   `json:"companyLegalNo"`
	Avatar           *string   `json:"avatar"`
	HasPassword      bool      `json:"hasPassword"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
