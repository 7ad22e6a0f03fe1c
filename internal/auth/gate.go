package auth

import (
	"errors"
	"net/http"

	"github.com/tenx-mn/catering-service/internal/domain"
	"github.com/tenx-mn/catering-service/pkg/util"
)

var (
	// ErrUnauthenticated means no valid session accompanied the request.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden means the session lacks the required category or role.
	ErrForbidden = errors.New("forbidden")
	// ErrPolicyViolation means the caller tried an action barred by policy.
	ErrPolicyViolation = errors.New("policy violation")
)

// SelfAction names actions an administrator may not perform on their own account.
type SelfAction string

const (
	SelfDeactivate SelfAction = "deactivate"
	SelfDelete     SelfAction = "delete"
)

// PolicyError is returned by ForbidSelfAction.
type PolicyError struct {
	Action SelfAction
}

func (e *PolicyError) Error() string {
	return "Cannot " + string(e.Action) + " your own account"
}

func (e *PolicyError) Is(target error) bool {
	return target == ErrPolicyViolation
}

// RequireSession accepts any valid session.
func RequireSession(session *domain.SessionClaims) error {
	if session == nil {
		return ErrUnauthenticated
	}
	return nil
}

// RequireAdmin accepts dashboard sessions with the ADMIN role.
func RequireAdmin(session *domain.SessionClaims) error {
	return requireRole(session, domain.RoleAdmin)
}

// RequireChef accepts dashboard sessions with the CHEF role.
func RequireChef(session *domain.SessionClaims) error {
	return requireRole(session, domain.RoleChef)
}

func requireRole(session *domain.SessionClaims, role domain.DashboardRole) error {
	if session == nil {
		return ErrUnauthenticated
	}
	if !session.HasRole(role) {
		return ErrForbidden
	}
	return nil
}

// ForbidSelfAction rejects action when targetID is the caller's own account.
func ForbidSelfAction(session *domain.SessionClaims, targetID string, action SelfAction) error {
	if session == nil {
		return ErrUnauthenticated
	}
	if session.UserID == targetID {
		return &PolicyError{Action: action}
	}
	return nil
}

// ToAPIError renders a gate outcome as a DomainError. forbiddenStatus is the
// HTTP status used for ErrForbidden on the calling route group.
func ToAPIError(err error, forbiddenStatus int) error {
	var policyErr *PolicyError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrUnauthenticated):
		return util.NewUnauthorized("Unauthorized")
	case errors.Is(err, ErrForbidden):
		if forbiddenStatus == 0 {
			forbiddenStatus = http.StatusForbidden
		}
		return util.NewForbidden("Forbidden", forbiddenStatus)
	case errors.As(err, &policyErr):
		return util.NewPolicyViolation(policyErr.Error())
	}
	return err
}
