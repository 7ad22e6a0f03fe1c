package observability

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tenx-mn/catering-service/internal/config"
	"github.com/tenx-mn/catering-service/pkg/util"
)

func TestNewLogger_Level(t *testing.T) {
	logger, err := NewLogger(config.AppConfig{Name: "catering", Env: "production"}, config.LoggerConfig{Level: "WARN"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	logger, err = NewLogger(config.AppConfig{Env: "development"}, config.LoggerConfig{Level: "nonsense"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestRequestLogger_UsesErrorStatus(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	metrics := NewMetrics()

	app := fiber.New()
	app.Use(RequestLogger(zap.New(core), metrics))
	app.Get("/missing/:id", func(c *fiber.Ctx) error {
		return util.NewNotFound("User", nil)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/missing/42", nil))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(404), fields["status"])
	assert.Equal(t, "/missing/:id", fields["route"])
}
