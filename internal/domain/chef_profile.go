package domain

import "time"

// ChefProfile holds the public profile of a CHEF dashboard user.
type ChefProfile struct {
	ID              string
	DashboardUserID string
	Slug            string
	Specialty       string
	Bio             string
	YearsExperience int
	HourlyRate      int64
	Rating          float64
	ReviewCount     int
	CoverImage      *string
	Certifications  []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
