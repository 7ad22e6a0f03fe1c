package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tenx-mn/catering-service/internal/locale"
	"github.com/tenx-mn/catering-service/internal/validation"
	"github.com/tenx-mn/catering-service/pkg/util"
)

// parseBody decodes the JSON body into out and validates it. Messages follow
// the visitor's last site locale.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return util.NewValidationError("Invalid request body", nil)
	}
	return validation.Validate(out, c.Cookies(locale.LastLocaleCookie))
}

func parseQuery(c *fiber.Ctx, out any) error {
	if err := c.QueryParser(out); err != nil {
		return util.NewValidationError("Invalid query parameters", nil)
	}
	return validation.Validate(out, c.Cookies(locale.LastLocaleCookie))
}

// pathID returns the :id parameter. Ids that are not UUIDs cannot match a
// row, so they are reported as missing.
func pathID(c *fiber.Ctx, resource string) (string, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", util.NewNotFound(resource, nil)
	}
	return id, nil
}

func boolQuery(value string) *bool {
	switch value {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}

func respond(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func respondWithMessage(c *fiber.Ctx, data any, message string) error {
	body := fiber.Map{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	return c.JSON(body)
}
