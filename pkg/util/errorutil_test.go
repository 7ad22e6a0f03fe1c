package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestToDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"domain error passes through", NewPolicyViolation("cannot delete your own account"), CodePolicyViolation, http.StatusBadRequest},
		{"wrapped domain error", fmt.Errorf("svc: %w", NewEmailExists()), CodeEmailExists, http.StatusConflict},
		{"no rows", fmt.Errorf("get: %w", pgx.ErrNoRows), CodeNotFound, http.StatusNotFound},
		{"email unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "dashboard_users_email_key"}, CodeEmailExists, http.StatusConflict},
		{"customer email unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, CodeEmailExists, http.StatusConflict},
		{"slug unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "chef_profiles_slug_key"}, CodeConflict, http.StatusConflict},
		{"profile owner unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "company_profiles_dashboard_user_id_key"}, CodeConflict, http.StatusConflict},
		{"other pg error", &pgconn.PgError{Code: "42P01"}, CodeInternal, http.StatusInternalServerError},
		{"fiber error", fiber.NewError(http.StatusNotFound, "Cannot GET /x"), CodeNotFound, http.StatusNotFound},
		{"plain error", errors.New("boom"), CodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToDomainError(tt.err)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantStatus, got.HTTPStatus)
		})
	}
}

func TestInternalErrorHidesCause(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.1:5432: connection refused")
	got := ToDomainError(cause)
	assert.Equal(t, "Internal server error", got.Message)
	assert.ErrorIs(t, got, cause)
}
