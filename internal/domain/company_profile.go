package domain

import "time"

// ApprovalStatus tracks the review state of a company profile.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// CompanyProfile holds the profile of a COMPANY dashboard user.
type CompanyProfile struct {
	ID              string
	DashboardUserID string
	CompanyName     string
	Description     *string
	ApprovalStatus  ApprovalStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
