package dto

import "time"

// UpdateChefProfileRequest payload for PUT /api/chef/profile.
type UpdateChefProfileRequest struct {
	Name            *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Phone           *string  `json:"phone" validate:"omitempty,max=20"`
	Avatar          *string  `json:"avatar" validate:"omitempty,max=500"`
	CoverImage      *string  `json:"coverImage" validate:"omitempty,max=500"`
	Specialty       *string  `json:"specialty" validate:"omitempty,min=2,max=100"`
	Bio             *string  `json:"bio" validate:"omitempty,max=1000"`
	YearsExperience *int     `json:"yearsExperience" validate:"omitempty,gte=0,lte=50"`
	HourlyRate      *float64 `json:"hourlyRate" validate:"omitempty,gte=0"`
	Certifications  []string `json:"certifications" validate:"omitempty,max=20,dive,max=100"`
}

// ChefProfileResponse representation.
type ChefProfileResponse struct {
	ID              string    `json:"id"`
	Slug            string    `json:"slug"`
	Specialty       string    `json:"specialty"`
	Bio             string    `json:"bio"`
	YearsExperience int       `json:"yearsExperience"`
	HourlyRate      int64     `json:"hourlyRate"`
	Rating          float64   `json:"rating"`
	ReviewCount     int       `json:"reviewCount"`
	CoverImage      *string   `json:"coverImage"`
	Certifications  []string  `json:"certifications"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
