package dto

// LoginRequest payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest payload for POST /api/auth/signup. The name and company fields
// required depend on userType.
type SignupRequest struct {
	UserType       string `json:"userType" validate:"required,oneof=INDIVIDUAL CORPORATE"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8,maxbytes=72"`
	Phone          string `json:"phone" validate:"required,phone"`
	FirstName      string `json:"firstName" validate:"required_if=UserType INDIVIDUAL,omitempty,min=2,max=50"`
	LastName       string `json:"lastName" validate:"required_if=UserType INDIVIDUAL,omitempty,min=2,max=50"`
	CompanyName    string `json:"companyName" validate:"required_if=UserType CORPORATE,omitempty,min=2,max=100"`
	CompanyLegalNo string `json:"companyLegalNo" validate:"required_if=UserType CORPORATE,omitempty,min=5,max=20"`
}
