package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tenx-mn/catering-service/internal/api/dto"
	"github.com/tenx-mn/catering-service/internal/auth"
	"github.com/tenx-mn/catering-service/internal/domain"
	"github.com/tenx-mn/catering-service/internal/service"
)

const dashboardUserResource = "Dashboard user"

// DashboardUsersHandler serves the admin dashboard-user endpoints.
type DashboardUsersHandler struct {
	service *service.DashboardUserService
}

// NewDashboardUsersHandler constructs handler.
func NewDashboardUsersHandler(svc *service.DashboardUserService) *DashboardUsersHandler {
	return &DashboardUsersHandler{service: svc}
}

// List GET /api/dashboard-users.
func (h *DashboardUsersHandler) List(c *fiber.Ctx) error {
	var q dto.DashboardUserListQuery
	if err := parseQuery(c, &q); err != nil {
		return err
	}
	query := service.DashboardUserQuery{
		Page:       q.Page,
		Limit:      q.Limit,
		Search:     q.Search,
		IsActive:   boolQuery(q.IsActive),
		IsVerified: boolQuery(q.IsVerified),
		SortBy:     q.SortBy,
		SortOrder:  q.SortOrder,
	}
	if q.Role != "" {
		role := domain.DashboardRole(q.Role)
		query.Role = &role
	}

	page, err := h.service.List(c.UserContext(), query)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"data":       dashboardUserList(page.Items),
		"pagination": paginationResponse(page.Pagination),
	})
}

// Create POST /api/dashboard-users.
func (h *DashboardUsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDashboardUserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	account, err := h.service.Create(c.UserContext(), auth.SessionFromContext(c), service.CreateDashboardUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		Role:       domain.DashboardRole(req.Role),
		Specialty:  req.Specialty,
		HourlyRate: req.HourlyRate,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    accountResponse(account),
		"message": "Dashboard user created",
	})
}

// Get GET /api/dashboard-users/:id.
func (h *DashboardUsersHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, dashboardUserResource)
	if err != nil {
		return err
	}
	account, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return respond(c, accountResponse(account))
}

// Update PATCH /api/dashboard-users/:id.
func (h *DashboardUsersHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, dashboardUserResource)
	if err != nil {
		return err
	}
	var req dto.UpdateDashboardUserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	account, err := h.service.Update(c.UserContext(), auth.SessionFromContext(c), id, service.UpdateDashboardUserInput{
		Name:       req.Name,
		Phone:      req.Phone,
		Specialty:  req.Specialty,
		HourlyRate: req.HourlyRate,
	})
	if err != nil {
		return err
	}
	return respondWithMessage(c, accountResponse(account), "Dashboard user updated")
}

// Delete DELETE /api/dashboard-users/:id.
func (h *DashboardUsersHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, dashboardUserResource)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), auth.SessionFromContext(c), id); err != nil {
		return err
	}
	return respondWithMessage(c, nil, "Dashboard user deleted")
}

// Activate PATCH /api/dashboard-users/:id/activate.
func (h *DashboardUsersHandler) Activate(c *fiber.Ctx) error {
	id, err := pathID(c, dashboardUserResource)
	if err != nil {
		return err
	}
	var req dto.ActivateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	user, err := h.service.SetActive(c.UserContext(), auth.SessionFromContext(c), id, *req.IsActive)
	if err != nil {
		return err
	}
	message := "Dashboard user deactivated"
	if user.IsActive {
		message = "Dashboard user activated"
	}
	return respondWithMessage(c, dashboardUserResponse(user), message)
}

// Verify PATCH /api/dashboard-users/:id/verify.
func (h *DashboardUsersHandler) Verify(c *fiber.Ctx) error {
	id, err := pathID(c, dashboardUserResource)
	if err != nil {
		return err
	}
	var req dto.VerifyRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	user, err := h.service.SetVerified(c.UserContext(), auth.SessionFromContext(c), id, *req.IsVerified)
	if err != nil {
		return err
	}
	return respondWithMessage(c, dashboardUserResponse(user), "Verification status updated")
}
