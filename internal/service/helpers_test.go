package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/tenx-mn/catering-service/internal/auth"
	"github.com/tenx-mn/catering-service/internal/domain"
	"github.com/tenx-mn/catering-service/internal/events"
	"github.com/tenx-mn/catering-service/internal/ratelimit"
	"github.com/tenx-mn/catering-service/internal/repository/memory"
	"github.com/tenx-mn/catering-service/pkg/util"
)

type testEnv struct {
	store    *memory.Store
	hasher   *auth.Hasher
	recorder *events.Recorder
	limiter  *ratelimit.MemoryLimiter
	auth     *AuthService
	staff    *DashboardUserService
	users    *UserService
	chefs    *ChefProfileService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		store:    memory.NewStore(),
		hasher:   auth.NewHasher(bcrypt.MinCost),
		recorder: &events.Recorder{},
		limiter:  ratelimit.NewMemoryLimiter(5, time.Minute),
	}
	env.auth = NewAuthService(AuthDependencies{
		Store:      env.store,
		Hasher:     env.hasher,
		Limiter:    env.limiter,
		Dispatcher: env.recorder,
		Logger:     zap.NewNop(),
	})
	env.staff = NewDashboardUserService(env.store, env.hasher, env.recorder, zap.NewNop())
	env.users = NewUserService(env.store, env.recorder, zap.NewNop())
	env.chefs = NewChefProfileService(env.store, env.recorder, zap.NewNop())
	return env
}

// seedDashboardUser stores a dashboard user with the given password.
func (e *testEnv) seedDashboardUser(t *testing.T, email, password string, role domain.DashboardRole, active bool) *domain.DashboardUser {
	t.Helper()
	hash, err := e.hasher.Hash(password)
	require.NoError(t, err)
	u := &domain.DashboardUser{Email: email, Name: "Seeded " + string(role), PasswordHash: hash, Role: role, IsActive: active}
	require.NoError(t, e.store.DashboardUsers().Create(context.Background(), u))
	return u
}

func (e *testEnv) seedCustomer(t *testing.T, email string, password *string) *domain.Customer {
	t.Helper()
	c := &domain.Customer{Email: email, Name: "Customer", UserType: domain.CustomerTypeIndividual}
	if password != nil {
		hash, err := e.hasher.Hash(*password)
		require.NoError(t, err)
		c.PasswordHash = &hash
	}
	require.NoError(t, e.store.Users().Create(context.Background(), c))
	return c
}

func adminClaims(id string) *domain.SessionClaims {
	return &domain.SessionClaims{UserID: id, Category: domain.CategoryDashboard, Role: domain.RoleAdmin}
}

func assertCode(t *testing.T, err error, code string, status int) {
	t.Helper()
	require.Error(t, err)
	var de *util.DomainError
	require.True(t, errors.As(err, &de), "expected DomainError, got %T: %v", err, err)
	assert.Equal(t, code, de.Code)
	assert.Equal(t, status, de.HTTPStatus)
}

func strPtr(s string) *string { return &s }
