package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tenx-mn/catering-service/internal/domain"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "session"

// SessionStore binds session tokens to the HTTP cookie jar.
type SessionStore struct {
	codec  *SessionCodec
	secure bool
}

// NewSessionStore builds a store. secure marks cookies Secure (production).
func NewSessionStore(codec *SessionCodec, secure bool) *SessionStore {
	return &SessionStore{codec: codec, secure: secure}
}

// Codec exposes the shared token codec.
func (s *SessionStore) Codec() *SessionCodec {
	return s.codec
}

// Issue mints a token for claims and writes it to the response.
func (s *SessionStore) Issue(c *fiber.Ctx, claims domain.SessionClaims) (time.Time, error) {
	token, expiresAt, err := s.codec.Mint(claims)
	if err != nil {
		return time.Time{}, err
	}
	s.SetSessionCookie(c, token)
	return expiresAt, nil
}

// SetSessionCookie writes token as the session cookie.
func (s *SessionStore) SetSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.codec.TTL() / time.Second),
		Secure:   s.secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// GetSession returns the claims of the request's session cookie, or nil when
// the cookie is missing, malformed, forged or expired.
func (s *SessionStore) GetSession(c *fiber.Ctx) *domain.SessionClaims {
	token := c.Cookies(SessionCookieName)
	if token == "" {
		return nil
	}
	claims, err := s.codec.Verify(token)
	if err != nil {
		return nil
	}
	return claims
}

// ClearSession expires the session cookie. Safe to call without a session.
func (s *SessionStore) ClearSession(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		Secure:   s.secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
