package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tenx-mn/catering-service/internal/domain"
)

const sessionKey = "auth_session"

// SessionMiddleware decodes the session cookie once per request. It never
// rejects; route guards decide what an absent session means.
type SessionMiddleware struct {
	store *SessionStore
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(store *SessionStore) *SessionMiddleware {
	return &SessionMiddleware{store: store}
}

// Handle stores the verified claims, if any, in the request locals.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	if session := m.store.GetSession(c); session != nil {
		c.Locals(sessionKey, session)
	}
	return c.Next()
}

// SessionFromContext retrieves the verified session, or nil.
func SessionFromContext(c *fiber.Ctx) *domain.SessionClaims {
	session, _ := c.Locals(sessionKey).(*domain.SessionClaims)
	return session
}
