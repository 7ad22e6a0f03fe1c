package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tenx-mn/catering-service/internal/api/dto"
	"github.com/tenx-mn/catering-service/internal/auth"
	"github.com/tenx-mn/catering-service/internal/service"
)

// ChefProfileHandler lets a signed-in chef read and edit their profile.
type ChefProfileHandler struct {
	service *service.ChefProfileService
}

// NewChefProfileHandler constructs handler.
func NewChefProfileHandler(svc *service.ChefProfileService) *ChefProfileHandler {
	return &ChefProfileHandler{service: svc}
}

// Get GET /api/chef/profile.
func (h *ChefProfileHandler) Get(c *fiber.Ctx) error {
	session := auth.SessionFromContext(c)
	account, err := h.service.Get(c.UserContext(), session.UserID)
	if err != nil {
		return err
	}
	return respond(c, accountResponse(account))
}

// Update PUT /api/chef/profile.
func (h *ChefProfileHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateChefProfileRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	session := auth.SessionFromContext(c)
	account, err := h.service.Update(c.UserContext(), session.UserID, service.UpdateChefProfileInput{
		Name:            req.Name,
		Phone:           req.Phone,
		Avatar:          req.Avatar,
		CoverImage:      req.CoverImage,
		Specialty:       req.Specialty,
		Bio:             req.Bio,
		YearsExperience: req.YearsExperience,
		HourlyRate:      req.HourlyRate,
		Certifications:  req.Certifications,
	})
	if err != nil {
		return err
	}
	return respondWithMessage(c, accountResponse(account), "Profile updated")
}
