package domain

import "time"

// CustomerType distinguishes individual and corporate customers.
type CustomerType string

const (
	CustomerTypeIndividual CustomerType = "INDIVIDUAL"
	CustomerTypeCorporate  CustomerType = "CORPORATE"
)

// Valid reports whether t is a known customer type.
func (t CustomerType) Valid() bool {
	return t == CustomerTypeIndividual || t == CustomerTypeCorporate
}

// Customer is the domain model for site users who book catering.
type Customer struct {
	ID               string
	Email            string
	Name             string
	FirstName        *string
	LastName         *string
	Phone            *string
	Address          *string
	UserType         CustomerType
	OrganizationName *string
	CompanyLegalNo   *string
	Avatar           *string
	GoogleID         *string
	PasswordHash     *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasPassword reports whether the customer can log in with a password.
func (c *Customer) HasPassword() bool {
	return c.PasswordHash != nil && *c.PasswordHash != ""
}
