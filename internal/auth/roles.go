package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/tenx-mn/catering-service/internal/domain"
)

// AdminOnly guards the admin API. Both missing sessions and wrong roles are
// answered with 401; the error code tells them apart.
func AdminOnly() fiber.Handler {
	return guard(RequireAdmin, http.StatusUnauthorized)
}

// ChefOnly guards the chef self-service API.
func ChefOnly() fiber.Handler {
	return guard(RequireChef, http.StatusForbidden)
}

// Authenticated ensures any valid session is present.
func Authenticated() fiber.Handler {
	return guard(RequireSession, http.StatusForbidden)
}

func guard(check func(*domain.SessionClaims) error, forbiddenStatus int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := check(SessionFromContext(c)); err != nil {
			return ToAPIError(err, forbiddenStatus)
		}
		return c.Next()
	}
}
