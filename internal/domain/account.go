package domain

import "fmt"

// AccountKind is the display type of a dashboard account.
type AccountKind string

const (
	KindAdmin   AccountKind = "admin"
	KindChef    AccountKind = "chef"
	KindCompany AccountKind = "company"
)

// DashboardAccount is a dashboard user hydrated with its role-specific
// profile. Implementations: *AdminAccount, *ChefAccount, *CompanyAccount.
type DashboardAccount interface {
	Kind() AccountKind
	Account() *DashboardUser
	dashboardAccount()
}

// AdminAccount is an ADMIN dashboard user.
type AdminAccount struct {
	User *DashboardUser
}

// ChefAccount is a CHEF dashboard user; Profile may be nil for legacy rows.
type ChefAccount struct {
	User    *DashboardUser
	Profile *ChefProfile
}

// CompanyAccount is a COMPANY dashboard user.
type CompanyAccount struct {
	User    *DashboardUser
	Profile *CompanyProfile
}

func (a *AdminAccount) Kind() AccountKind {
	return KindAdmin
}

func (a *AdminAccount) Account() *DashboardUser {
	return a.User
}

func (a *AdminAccount) dashboardAccount() {}

func (a *ChefAccount) Kind() AccountKind {
	return KindChef
}

func (a *ChefAccount) Account() *DashboardUser {
	return a.User
}

func (a *ChefAccount) dashboardAccount() {}

func (a *CompanyAccount) Kind() AccountKind {
	return KindCompany
}

func (a *CompanyAccount) Account() *DashboardUser {
	return a.User
}

func (a *CompanyAccount) dashboardAccount() {}

// NewDashboardAccount resolves the role of user into its account variant.
func NewDashboardAccount(user *DashboardUser, chef *ChefProfile, company *CompanyProfile) (DashboardAccount, error) {
	switch user.Role {
	case RoleAdmin:
		return &AdminAccount{User: user}, nil
	case RoleChef:
		return &ChefAccount{User: user, Profile: chef}, nil
	case RoleCompany:
		return &CompanyAccount{User: user, Profile: company}, nil
	default:
		return nil, fmt.Errorf("unknown dashboard role %q", user.Role)
	}
}
