package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tenx-mn/catering-service/internal/api/dto"
	"github.com/tenx-mn/catering-service/internal/auth"
	"github.com/tenx-mn/catering-service/internal/domain"
	"github.com/tenx-mn/catering-service/internal/service"
)

// AuthHandler exposes login, signup, logout and the current account.
type AuthHandler struct {
	auth     *service.AuthService
	sessions *auth.SessionStore
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, sessions *auth.SessionStore) *AuthHandler {
	return &AuthHandler{auth: authService, sessions: sessions}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	result, err := h.auth.Login(c.UserContext(), req.Email, req.Password, c.IP())
	if err != nil {
		return err
	}
	if _, err := h.sessions.Issue(c, result.Claims); err != nil {
		return err
	}

	var user any
	if result.Dashboard != nil {
		user = dashboardUserResponse(result.Dashboard)
	} else {
		user = customerResponse(result.Customer)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"user":     user,
		"userType": result.Claims.Category,
	})
}

// Signup handles POST /api/auth/signup. It does not sign the customer in.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	customer, err := h.auth.Signup(c.UserContext(), service.SignupInput{
		UserType:       domain.CustomerType(req.UserType),
		Email:          req.Email,
		Password:       req.Password,
		Phone:          req.Phone,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		CompanyName:    req.CompanyName,
		CompanyLegalNo: req.CompanyLegalNo,
	})
	if err != nil {
		return err
	}
	return respondWithMessage(c, customerResponse(customer), "Account created successfully")
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessions.ClearSession(c)
	return respondWithMessage(c, nil, "Logged out")
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	account, err := h.auth.CurrentAccount(c.UserContext(), auth.SessionFromContext(c))
	if err != nil {
		return err
	}
	if account.Dashboard != nil {
		return c.JSON(fiber.Map{
			"success":  true,
			"user":     accountResponse(account.Dashboard),
			"userType": account.Category,
		})
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"user":     customerResponse(account.Customer),
		"userType": account.Category,
	})
}
