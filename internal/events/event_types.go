package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/tenx-mn/catering-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAccountRegistered         EventType = "account_registered"
	EventDashboardUserCreated      EventType = "dashboard_user_created"
	EventDashboardUserUpdated      EventType = "dashboard_user_updated"
	EventDashboardUserStatusChange EventType = "dashboard_user_status_changed"
	EventDashboardUserVerified     EventType = "dashboard_user_verified"
	EventAccountDeleted            EventType = "account_deleted"
	EventChefProfileUpdated        EventType = "chef_profile_updated"
	EventLoginSucceeded            EventType = "login_succeeded"
	EventLoginFailed               EventType = "login_failed"
)

// AllTypes lists every event type, for subscribers interested in all of them.
var AllTypes = []EventType{
	EventAccountRegistered,
	EventDashboardUserCreated,
	EventDashboardUserUpdated,
	EventDashboardUserStatusChange,
	EventDashboardUserVerified,
	EventAccountDeleted,
	EventChefProfileUpdated,
	EventLoginSucceeded,
	EventLoginFailed,
}

// Event represents an account lifecycle event emitted by services.
type Event struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	AccountID string                 `json:"account_id,omitempty"`
	Category  domain.AccountCategory `json:"category,omitempty"`
	ActorID   string                 `json:"actor_id,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Payload   interface{}            `json:"payload,omitempty"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType EventType, accountID string, category domain.AccountCategory, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		AccountID: accountID,
		Category:  category,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// WithActor records who caused the event.
func (e Event) WithActor(actorID string) Event {
	e.ActorID = actorID
	return e
}

// AccountRegisteredPayload payload.
type AccountRegisteredPayload struct {
	Email    string              `json:"email"`
	Name     string              `json:"name"`
	UserType domain.CustomerType `json:"user_type"`
}

// DashboardUserCreatedPayload payload.
type DashboardUserCreatedPayload struct {
	Email string               `json:"email"`
	Name  string               `json:"name"`
	Role  domain.DashboardRole `json:"role"`
}

// StatusChangedPayload payload for activation and verification changes.
type StatusChangedPayload struct {
	Field string `json:"field"`
	Value bool   `json:"value"`
}

// LoginPayload payload.
type LoginPayload struct {
	Email  string `json:"email"`
	IP     string `json:"ip,omitempty"`
	Reason string `json:"reason,omitempty"`
}
