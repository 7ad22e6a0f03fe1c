package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/tenx-mn/catering-service/internal/config"
	"github.com/tenx-mn/catering-service/internal/events"
)

// NotificationService turns account events into audit log lines and
// outbound notifications.
type NotificationService struct {
	logger *zap.Logger
	cfg    config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{logger: logger, cfg: cfg}
}

// Handle processes one event.
func (n *NotificationService) Handle(ctx context.Context, event events.Event) error {
	n.logger.Info("account event",
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.String("account_id", event.AccountID),
		zap.String("category", string(event.Category)),
		zap.String("actor_id", event.ActorID),
		zap.Time("at", event.Timestamp),
		zap.Any("payload", event.Payload),
	)

	switch event.Type {
	case events.EventAccountRegistered:
		if p, ok := event.Payload.(events.AccountRegisteredPayload); ok {
			n.sendWelcomeEmailStub(ctx, p.Email, p.Name)
		}
	case events.EventDashboardUserCreated:
		if p, ok := event.Payload.(events.DashboardUserCreatedPayload); ok {
			n.sendWelcomeEmailStub(ctx, p.Email, p.Name)
		}
		n.sendWebhookNotificationStub(ctx, event)
	case events.EventDashboardUserStatusChange, events.EventDashboardUserVerified, events.EventAccountDeleted:
		n.sendWebhookNotificationStub(ctx, event)
	}
	return nil
}

func (n *NotificationService) sendWelcomeEmailStub(_ context.Context, to, name string) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" || to == "" {
		return
	}
	n.logger.Debug("sendWelcomeEmailStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("to", to),
		zap.String("name", name))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("account_id", event.AccountID),
		zap.String("event_type", string(event.Type)))
}
