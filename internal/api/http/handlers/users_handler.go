package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tenx-mn/catering-service/internal/api/dto"
	"github.com/tenx-mn/catering-service/internal/auth"
	"github.com/tenx-mn/catering-service/internal/domain"
	"github.com/tenx-mn/catering-service/internal/service"
)

const userResource = "User"

// UsersHandler serves the admin customer endpoints.
type UsersHandler struct {
	service *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(svc *service.UserService) *UsersHandler {
	return &UsersHandler{service: svc}
}

// List GET /api/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	var q dto.UserListQuery
	if err := parseQuery(c, &q); err != nil {
		return err
	}
	query := service.UserQuery{
		Page:      q.Page,
		Limit:     q.Limit,
		Search:    q.Search,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
	}
	if q.UserType != "" {
		userType := domain.CustomerType(q.UserType)
		query.UserType = &userType
	}

	page, err := h.service.List(c.UserContext(), query)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"data":       customerList(page.Items),
		"pagination": paginationResponse(page.Pagination),
	})
}

// Get GET /api/users/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, userResource)
	if err != nil {
		return err
	}
	user, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return respond(c, customerResponse(user))
}

// Update PATCH /api/users/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, userResource)
	if err != nil {
		return err
	}
	var req dto.UpdateUserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	user, err := h.service.Update(c.UserContext(), id, service.UpdateUserInput{
		Name:      req.Name,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		return err
	}
	return respondWithMessage(c, customerResponse(user), "User updated")
}

// Delete DELETE /api/users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, userResource)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), auth.SessionFromContext(c), id); err != nil {
		return err
	}
	return respondWithMessage(c, nil, "User deleted")
}
