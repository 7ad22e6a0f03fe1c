package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenx-mn/catering-service/internal/domain"
	"github.com/tenx-mn/catering-service/internal/events"
	"github.com/tenx-mn/catering-service/pkg/util"
)

func TestDashboardUserService_CreateChefSlugs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.seedDashboardUser(t, "admin@tenx.mn", "Admin123!", domain.RoleAdmin, true)
	actor := adminClaims(admin.ID)

	first, err := env.staff.Create(ctx, actor, CreateDashboardUserInput{
		Name: "Bat Erdene", Email: "bat1@tenx.mn", Password: "Chef1234", Role: domain.RoleChef,
		Specialty: "Mongolian", HourlyRate: 45000.6,
	})
	require.NoError(t, err)
	second, err := env.staff.Create(ctx, actor, CreateDashboardUserInput{
		Name: "Bat Erdene", Email: "bat2@tenx.mn", Password: "Chef1234", Role: domain.RoleChef,
	})
	require.NoError(t, err)

	c1 := first.(*domain.ChefAccount)
	c2 := second.(*domain.ChefAccount)
	assert.Equal(t, "bat-erdene", c1.Profile.Slug)
	assert.Equal(t, "bat-erdene-1", c2.Profile.Slug)
	assert.Equal(t, int64(45001), c1.Profile.HourlyRate)
	assert.Equal(t, "Mongolian", c1.Profile.Specialty)
	assert.True(t, c1.User.IsActive)
	assert.False(t, c1.User.IsVerified)

	created := env.recorder.Events()
	require.Len(t, created, 2)
	assert.Equal(t, events.EventDashboardUserCreated, created[0].Type)
	assert.Equal(t, admin.ID, created[0].ActorID)
}

func TestDashboardUserService_CreateCompany(t *testing.T) {
	env := newTestEnv(t)

	account, err := env.staff.Create(context.Background(), nil, CreateDashboardUserInput{
		Name: "Nomad Foods", Email: "ops@nomad.mn", Password: "Comp1234", Role: domain.RoleCompany,
	})
	require.NoError(t, err)
	company, ok := account.(*domain.CompanyAccount)
	require.True(t, ok)
	require.NotNil(t, company.Profile)
	assert.Equal(t, domain.ApprovalPending, company.Profile.ApprovalStatus)
	assert.Equal(t, "Nomad Foods", company.Profile.CompanyName)
}

func TestDashboardUserService_CreateRejectsTakenEmail(t *testing.T) {
	env := newTestEnv(t)
	env.seedCustomer(t, "bold@example.mn", nil)

	_, err := env.staff.Create(context.Background(), nil, CreateDashboardUserInput{
		Name: "Bold", Email: "Bold@Example.mn", Password: "Chef1234", Role: domain.RoleChef,
	})
	assertCode(t, err, util.CodeEmailExists, http.StatusConflict)
	assert.Zero(t, env.store.Calls("DashboardUsers.Create"))
}

func TestDashboardUserService_SelfActionsRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.seedDashboardUser(t, "admin@tenx.mn", "Admin123!", domain.RoleAdmin, true)
	actor := adminClaims(admin.ID)
	before := env.store.TotalCalls()

	_, err := env.staff.SetActive(ctx, actor, admin.ID, false)
	assertCode(t, err, util.CodePolicyViolation, http.StatusBadRequest)
	assert.Contains(t, err.Error(), "Cannot deactivate your own account")

	err = env.staff.Delete(ctx, actor, admin.ID)
	assertCode(t, err, util.CodePolicyViolation, http.StatusBadRequest)
	assert.Contains(t, err.Error(), "Cannot delete your own account")

	assert.Equal(t, before, env.store.TotalCalls())
	stored, err := env.store.DashboardUsers().GetByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsActive)
	assert.Empty(t, env.recorder.Types())
}

func TestDashboardUserService_SelfReactivateAllowed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.seedDashboardUser(t, "admin@tenx.mn", "Admin123!", domain.RoleAdmin, true)

	user, err := env.staff.SetActive(ctx, adminClaims(admin.ID), admin.ID, true)
	require.NoError(t, err)
	assert.True(t, user.IsActive)
	assert.Equal(t, 1, env.store.Calls("DashboardUsers.SetActive"))
}

func TestDashboardUserService_SetActiveAndVerified(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.seedDashboardUser(t, "admin@tenx.mn", "Admin123!", domain.RoleAdmin, true)
	chef := env.seedDashboardUser(t, "chef@tenx.mn", "Chef1234", domain.RoleChef, true)
	actor := adminClaims(admin.ID)

	user, err := env.staff.SetActive(ctx, actor, chef.ID, false)
	require.NoError(t, err)
	assert.False(t, user.IsActive)

	user, err = env.staff.SetVerified(ctx, actor, chef.ID, true)
	require.NoError(t, err)
	assert.True(t, user.IsVerified)

	_, err = env.staff.SetActive(ctx, actor, "00000000-0000-0000-0000-000000000000", true)
	assertCode(t, err, util.CodeNotFound, http.StatusNotFound)

	assert.Equal(t, []events.EventType{events.EventDashboardUserStatusChange, events.EventDashboardUserVerified}, env.recorder.Types())
}

func TestDashboardUserService_Update(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	created, err := env.staff.Create(ctx, nil, CreateDashboardUserInput{
		Name: "Chef One", Email: "one@tenx.mn", Password: "Chef1234", Phone: "+97699001122", Role: domain.RoleChef,
	})
	require.NoError(t, err)
	id := created.Account().ID

	rate := 30000.4
	updated, err := env.staff.Update(ctx, nil, id, UpdateDashboardUserInput{
		Name:       strPtr("  Chef Uno "),
		Phone:      strPtr(""),
		Specialty:  strPtr("Pastry"),
		HourlyRate: &rate,
	})
	require.NoError(t, err)
	chef := updated.(*domain.ChefAccount)
	assert.Equal(t, "Chef Uno", chef.User.Name)
	assert.Nil(t, chef.User.Phone)
	assert.Equal(t, "Pastry", chef.Profile.Specialty)
	assert.Equal(t, int64(30000), chef.Profile.HourlyRate)
	assert.Equal(t, "chef-one", chef.Profile.Slug)

	_, err = env.staff.Update(ctx, nil, "00000000-0000-0000-0000-000000000000", UpdateDashboardUserInput{Name: strPtr("x")})
	assertCode(t, err, util.CodeNotFound, http.StatusNotFound)
}

func TestDashboardUserService_DeleteAndGet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.seedDashboardUser(t, "admin@tenx.mn", "Admin123!", domain.RoleAdmin, true)
	created, err := env.staff.Create(ctx, nil, CreateDashboardUserInput{
		Name: "Chef Two", Email: "two@tenx.mn", Password: "Chef1234", Role: domain.RoleChef,
	})
	require.NoError(t, err)
	id := created.Account().ID

	got, err := env.staff.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.KindChef, got.Kind())

	require.NoError(t, env.staff.Delete(ctx, adminClaims(admin.ID), id))

	_, err = env.staff.Get(ctx, id)
	assertCode(t, err, util.CodeNotFound, http.StatusNotFound)
	_, err = env.store.ChefProfiles().GetByDashboardUserID(ctx, id)
	assert.Error(t, err)

	err = env.staff.Delete(ctx, adminClaims(admin.ID), id)
	assertCode(t, err, util.CodeNotFound, http.StatusNotFound)
}

func TestDashboardUserService_ListPagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	for _, email := range []string{"a@tenx.mn", "b@tenx.mn", "c@tenx.mn"} {
		env.seedDashboardUser(t, email, "Chef1234", domain.RoleChef, true)
	}
	env.seedDashboardUser(t, "admin@tenx.mn", "Admin123!", domain.RoleAdmin, true)

	role := domain.RoleChef
	page, err := env.staff.List(ctx, DashboardUserQuery{Page: 2, Limit: 2, Role: &role})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, Pagination{Page: 2, Limit: 2, Total: 3, TotalPages: 2}, page.Pagination)

	page, err = env.staff.List(ctx, DashboardUserQuery{Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 100, page.Pagination.Limit)
	assert.Equal(t, 4, page.Pagination.Total)
}
