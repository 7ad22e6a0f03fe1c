package handlers

import (
	"github.com/tenx-mn/catering-service/internal/api/dto"
	"github.com/tenx-mn/catering-service/internal/domain"
	"github.com/tenx-mn/catering-service/internal/service"
)

func dashboardUserResponse(u *domain.DashboardUser) dto.DashboardUserResponse {
	return dto.DashboardUserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Phone:       u.Phone,
		Avatar:      u.Avatar,
		Role:        string(u.Role),
		IsVerified:  u.IsVerified,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func dashboardUserList(items []domain.DashboardUser) []dto.DashboardUserResponse {
	out := make([]dto.DashboardUserResponse, 0, len(items))
	for i := range items {
		out = append(out, dashboardUserResponse(&items[i]))
	}
	return out
}

func accountResponse(account domain.DashboardAccount) dto.AccountResponse {
	resp := dto.AccountResponse{
		Type:                  string(account.Kind()),
		DashboardUserResponse: dashboardUserResponse(account.Account()),
	}
	switch a := account.(type) {
	case *domain.ChefAccount:
		if a.Profile != nil {
			profile := chefProfileResponse(a.Profile)
			resp.ChefProfile = &profile
		}
	case *domain.CompanyAccount:
		if a.Profile != nil {
			resp.CompanyProfile = &dto.CompanyProfileResponse{
				ID:             a.Profile.ID,
				CompanyName:    a.Profile.CompanyName,
				Description:    a.Profile.Description,
				ApprovalStatus: string(a.Profile.ApprovalStatus),
				CreatedAt:      a.Profile.CreatedAt,
			}
		}
	}
	return resp
}

func chefProfileResponse(p *domain.ChefProfile) dto.ChefProfileResponse {
	certs := p.Certifications
	if certs == nil {
		certs = []string{}
	}
	return dto.ChefProfileResponse{
		ID:              p.ID,
		Slug:            p.Slug,
		Specialty:       p.Specialty,
		Bio:             p.Bio,
		YearsExperience: p.YearsExperience,
		HourlyRate:      p.HourlyRate,
		Rating:          p.Rating,
		ReviewCount:     p.ReviewCount,
		CoverImage:      p.CoverImage,
		Certifications:  certs,
		UpdatedAt:       p.UpdatedAt,
	}
}

func customerResponse(c *domain.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:               c.ID,
		Email:            c.Email,
		Name:             c.Name,
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		Phone:            c.Phone,
		Address:          c.Address,
		UserType:         string(c.UserType),
		OrganizationName: c.OrganizationName,
		CompanyLegalNo:   c.CompanyLegalNo,
		Avatar:           c.Avatar,
		HasPassword:      c.HasPassword(),
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func customerList(items []domain.Customer) []dto.CustomerResponse {
	out := make([]dto.CustomerResponse, 0, len(items))
	for i := range items {
		out = append(out, customerResponse(&items[i]))
	}
	return out
}

func paginationResponse(p service.Pagination) dto.Pagination {
	return dto.Pagination{Page: p.Page, Limit: p.Limit, Total: p.Total, TotalPages: p.TotalPages}
}
