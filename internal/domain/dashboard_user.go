package domain

import "time"

// DashboardRole enumerates dashboard operator roles.
type DashboardRole string

const (
	RoleAdmin   DashboardRole = "ADMIN"
	RoleChef    DashboardRole = "CHEF"
	RoleCompany DashboardRole = "COMPANY"
)

// Valid reports whether r is a known dashboard role.
func (r DashboardRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleChef, RoleCompany:
		return true
	}
	return false
}

// DashboardUser models an administrator, chef, or company account.
type DashboardUser struct {
	ID           string
	Email        string
	Name         string
	Phone        *string
	Avatar       *string
	PasswordHash string
	Role         DashboardRole
	IsVerified   bool
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
