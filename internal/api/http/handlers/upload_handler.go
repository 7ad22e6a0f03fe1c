package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tenx-mn/catering-service/internal/auth"
	"github.com/tenx-mn/catering-service/internal/service"
)

// UploadHandler accepts raw file bodies from signed-in users.
type UploadHandler struct {
	service *service.UploadService
}

// NewUploadHandler constructs handler.
func NewUploadHandler(svc *service.UploadService) *UploadHandler {
	return &UploadHandler{service: svc}
}

// Upload POST /api/upload?filename=.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	session := auth.SessionFromContext(c)
	body := append([]byte(nil), c.Body()...)
	blob, err := h.service.Upload(c.UserContext(), session.UserID, c.Query("filename"), c.Get(fiber.HeaderContentType), body)
	if err != nil {
		return err
	}
	return c.JSON(blob)
}
