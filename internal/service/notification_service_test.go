package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tenx-mn/catering-service/internal/config"
	"github.com/tenx-mn/catering-service/internal/domain"
	"github.com/tenx-mn/catering-service/internal/events"
)

func TestNotificationService_Handle(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := NewNotificationService(zap.New(core), config.NotificationConfig{
		EmailFrom:  "noreply@tenx.mn",
		WebhookURL: "https://hooks.example.mn/accounts",
	})

	registered := events.NewEvent(events.EventAccountRegistered, "cust-1", domain.CategoryCustomer,
		events.AccountRegisteredPayload{Email: "bold@example.mn", Name: "Bold Bat", UserType: domain.CustomerTypeIndividual})
	require.NoError(t, svc.Handle(context.Background(), registered))

	assert.Equal(t, 1, logs.FilterMessage("account event").Len())
	emails := logs.FilterMessage("sendWelcomeEmailStub").All()
	require.Len(t, emails, 1)
	assert.Equal(t, "bold@example.mn", emails[0].ContextMap()["to"])
	assert.Zero(t, logs.FilterMessage("sendWebhookNotificationStub").Len())

	deleted := events.NewEvent(events.EventAccountDeleted, "cust-1", domain.CategoryCustomer, nil)
	require.NoError(t, svc.Handle(context.Background(), deleted))
	assert.Equal(t, 1, logs.FilterMessage("sendWebhookNotificationStub").Len())
}

func TestNotificationService_SkipsUnconfiguredChannels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := NewNotificationService(zap.New(core), config.NotificationConfig{})

	event := events.NewEvent(events.EventDashboardUserCreated, "dash-1", domain.CategoryDashboard,
		events.DashboardUserCreatedPayload{Email: "chef@tenx.mn", Name: "Chef", Role: domain.RoleChef})
	require.NoError(t, svc.Handle(context.Background(), event))

	assert.Equal(t, 1, logs.Len())
}
