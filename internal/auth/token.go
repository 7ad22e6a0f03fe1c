package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/tenx-mn/catering-service/internal/domain"
)

// SessionDuration is the validity window of a session token.
const SessionDuration = 7 * 24 * time.Hour

// ErrInvalidSession covers every verification failure: malformed token, bad
// signature, wrong algorithm, missing claims, or expiry.
var ErrInvalidSession = errors.New("invalid session")

// Claims describes the JWT payload.
type Claims struct {
	UserID   string                 `json:"userId"`
	UserType domain.AccountCategory `json:"userType"`
	Role     domain.DashboardRole   `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// SessionCodec mints and verifies HS256 session tokens.
type SessionCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// CodecOption customizes a SessionCodec.
type CodecOption func(*SessionCodec)

// WithClock overrides the time source.
func WithClock(now func() time.Time) CodecOption {
	return func(c *SessionCodec) { c.now = now }
}

// NewSessionCodec builds a codec. The secret is read once and never changes.
func NewSessionCodec(secret string, opts ...CodecOption) *SessionCodec {
	c := &SessionCodec{secret: []byte(secret), ttl: SessionDuration, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns the session validity window.
func (c *SessionCodec) TTL() time.Duration {
	return c.ttl
}

// Mint signs a token for the subject in claims. IssuedAt and ExpiresAt on the
// input are ignored; the returned time is the absolute expiry.
func (c *SessionCodec) Mint(claims domain.SessionClaims) (string, time.Time, error) {
	issuedAt := c.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(c.ttl)

	role := claims.Role
	if claims.Category != domain.CategoryDashboard {
		role = ""
	}
	payload := &Claims{
		UserID:   claims.UserID,
		UserType: claims.Category,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify validates tokenStr and returns its claims, or ErrInvalidSession.
func (c *SessionCodec) Verify(tokenStr string) (*domain.SessionClaims, error) {
	if tokenStr == "" {
		return nil, ErrInvalidSession
	}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(c.now),
	)
	parsed, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSession
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.UserID == "" || claims.IssuedAt == nil {
		return nil, ErrInvalidSession
	}
	switch claims.UserType {
	case domain.CategoryDashboard:
		if !claims.Role.Valid() {
			return nil, ErrInvalidSession
		}
	case domain.CategoryCustomer:
		claims.Role = ""
	default:
		return nil, ErrInvalidSession
	}

	return &domain.SessionClaims{
		UserID:    claims.UserID,
		Category:  claims.UserType,
		Role:      claims.Role,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
