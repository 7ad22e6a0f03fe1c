package auth

import (
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenx-mn/catering-service/internal/domain"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time { return f.t }

func newTestCodec(secret string, clock *fakeClock) *SessionCodec {
	return NewSessionCodec(secret, WithClock(clock.Now))
}

var t0 = time.Date(2026, 3, 1, 9, 30, 15, 500_000_000, time.UTC)

func TestSessionCodec_RoundTrip(t *testing.T) {
	clock := &fakeClock{t: t0}
	codec := newTestCodec("secret", clock)

	tests := []domain.SessionClaims{
		{UserID: "admin-1", Category: domain.CategoryDashboard, Role: domain.RoleAdmin},
		{UserID: "chef-1", Category: domain.CategoryDashboard, Role: domain.RoleChef},
		{UserID: "cust-1", Category: domain.CategoryCustomer},
	}
	for _, in := range tests {
		token, exp, err := codec.Mint(in)
		require.NoError(t, err)

		issued := t0.Truncate(time.Second)
		assert.Equal(t, issued.Add(7*24*time.Hour), exp)

		got, err := codec.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, in.UserID, got.UserID)
		assert.Equal(t, in.Category, got.Category)
		assert.Equal(t, in.Role, got.Role)
		assert.True(t, issued.Equal(got.IssuedAt))
		assert.True(t, exp.Equal(got.ExpiresAt))
	}
}

func TestSessionCodec_CustomerRoleDropped(t *testing.T) {
	codec := newTestCodec("secret", &fakeClock{t: t0})
	token, _, err := codec.Mint(domain.SessionClaims{UserID: "c", Category: domain.CategoryCustomer, Role: domain.RoleAdmin})
	require.NoError(t, err)

	got, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Empty(t, got.Role)
}

func TestSessionCodec_ExpiryIsMonotonic(t *testing.T) {
	clock := &fakeClock{t: t0}
	codec := newTestCodec("secret", clock)
	token, exp, err := codec.Mint(domain.SessionClaims{UserID: "a", Category: domain.CategoryDashboard, Role: domain.RoleAdmin})
	require.NoError(t, err)

	for _, offset := range []time.Duration{0, time.Hour, 6 * 24 * time.Hour, exp.Sub(t0) - time.Millisecond} {
		clock.t = t0.Add(offset)
		_, err := codec.Verify(token)
		assert.NoError(t, err, "offset %s", offset)
	}

	for _, offset := range []time.Duration{0, time.Second, time.Hour, 365 * 24 * time.Hour} {
		clock.t = exp.Add(offset)
		_, err := codec.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidSession, "offset %s past expiry", offset)
	}
}

func TestSessionCodec_WrongSecret(t *testing.T) {
	clock := &fakeClock{t: t0}
	token, _, err := newTestCodec("right", clock).Mint(domain.SessionClaims{UserID: "a", Category: domain.CategoryCustomer})
	require.NoError(t, err)

	_, err = newTestCodec("wrong", clock).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionCodec_TamperedPayload(t *testing.T) {
	clock := &fakeClock{t: t0}
	codec := newTestCodec("secret", clock)
	customer, _, err := codec.Mint(domain.SessionClaims{UserID: "u", Category: domain.CategoryCustomer})
	require.NoError(t, err)
	forged, _, err := newTestCodec("attacker", clock).Mint(domain.SessionClaims{UserID: "u", Category: domain.CategoryDashboard, Role: domain.RoleAdmin})
	require.NoError(t, err)

	cParts := strings.Split(customer, ".")
	fParts := strings.Split(forged, ".")
	spliced := strings.Join([]string{fParts[0], fParts[1], cParts[2]}, ".")

	_, err = codec.Verify(spliced)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionCodec_RejectsNoneAlgorithm(t *testing.T) {
	clock := &fakeClock{t: t0}
	claims := &Claims{
		UserID:   "a",
		UserType: domain.CategoryDashboard,
		Role:     domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(t0),
			ExpiresAt: jwt.NewNumericDate(t0.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTestCodec("secret", clock).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionCodec_RejectsMissingClaims(t *testing.T) {
	clock := &fakeClock{t: t0}
	sign := func(c *Claims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte("secret"))
		require.NoError(t, err)
		return s
	}
	valid := jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(t0),
		ExpiresAt: jwt.NewNumericDate(t0.Add(time.Hour)),
	}

	cases := map[string]*Claims{
		"no user id":     {UserType: domain.CategoryCustomer, RegisteredClaims: valid},
		"unknown type":   {UserID: "a", UserType: "admin", RegisteredClaims: valid},
		"dashboard role": {UserID: "a", UserType: domain.CategoryDashboard, Role: "ROOT", RegisteredClaims: valid},
		"no expiry":      {UserID: "a", UserType: domain.CategoryCustomer, RegisteredClaims: jwt.RegisteredClaims{IssuedAt: jwt.NewNumericDate(t0)}},
		"future iat": {UserID: "a", UserType: domain.CategoryCustomer, RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(t0.Add(time.Hour)),
			ExpiresAt: jwt.NewNumericDate(t0.Add(2 * time.Hour)),
		}},
	}
	codec := newTestCodec("secret", clock)
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Verify(sign(c))
			assert.ErrorIs(t, err, ErrInvalidSession)
		})
	}
}

func TestSessionCodec_Malformed(t *testing.T) {
	codec := NewSessionCodec("secret")
	for _, tok := range []string{"", "not.a.jwt", "abc", "a.b.c.d"} {
		_, err := codec.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidSession, "token %q", tok)
	}
}
