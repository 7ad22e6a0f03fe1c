package domain

import "time"

// AccountCategory differentiates dashboard vs customer sessions.
type AccountCategory string

const (
	CategoryDashboard AccountCategory = "dashboard"
	CategoryCustomer  AccountCategory = "customer"
)

// SessionClaims is the identity carried by a session token.
type SessionClaims struct {
	UserID    string
	Category  AccountCategory
	Role      DashboardRole
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IsDashboard reports whether the session belongs to a dashboard user.
func (s *SessionClaims) IsDashboard() bool {
	return s != nil && s.Category == CategoryDashboard
}

// HasRole reports whether the session is a dashboard session with role r.
func (s *SessionClaims) HasRole(r DashboardRole) bool {
	return s.IsDashboard() && s.Role == r
}
