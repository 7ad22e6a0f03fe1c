package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/crypto/bcrypt"

	"github.com/tenx-mn/catering-service/internal/config"
	"github.com/tenx-mn/catering-service/internal/repository/memory"
)

func seedConfig(cost int) *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{BcryptCost: cost},
		Seed: config.SeedConfig{
			AdminEmail:    "Ops@TenX.mn",
			AdminPassword: "Operator99",
			AdminName:     "Ops",
		},
	}
}

func TestSeed_UsesConfiguredCost(t *testing.T) {
	store := memory.NewStore()
	core, logs := observer.New(zapcore.InfoLevel)

	require.NoError(t, seed(context.Background(), seedConfig(bcrypt.MinCost+1), store, zap.New(core)))

	admin, err := store.DashboardUsers().GetByEmail(context.Background(), "ops@tenx.mn")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(admin.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, cost)
	assert.Equal(t, 1, logs.FilterMessage("admin created").Len())
	assert.Zero(t, logs.FilterMessage("admin uses the default password; change it after the first login").Len())
}

func TestSeed_ExistingAdmin(t *testing.T) {
	store := memory.NewStore()
	cfg := seedConfig(bcrypt.MinCost)
	require.NoError(t, seed(context.Background(), cfg, store, zap.NewNop()))

	core, logs := observer.New(zapcore.InfoLevel)
	cfg.Seed.AdminPasswordIsDefault = true
	require.NoError(t, seed(context.Background(), cfg, store, zap.New(core)))
	assert.Equal(t, 1, logs.FilterMessage("admin already exists, nothing to do").Len())
	assert.Zero(t, logs.FilterMessage("admin created").Len())
}
