package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsehq/pulse-backend-go/internal/domain/user"
	"github.com/pulsehq/pulse-backend-go/internal/fixtures"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/faults"
	"github.com/pulsehq/pulse-backend-go/internal/repository/fixture"
)

func newUserTestService() user.Service {
	store := fixture.NewStore(faults.Disabled())
	return NewUserService(fixture.NewUserRepository(store))
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()
	svc := newUserTestService()

	created, err := svc.Create(ctx, user.CreateUserRequest{
		OrgID:       fixtures.OrgID,
		Email:       "carol@pulse.dev",
		DisplayName: "Carol Mills",
		Password:    "long-enough-password",
		Role:        string(user.RoleEmployee),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)
	assert.Equal(t, user.DefaultQuotas(), created.LeaveQuotas)

	fetched, err := svc.Get(ctx, created.ID, fixtures.OrgID)
	require.NoError(t, err)
	assert.Equal(t, "carol@pulse.dev", fetched.Email)
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	svc := newUserTestService()

	_, err := svc.Create(context.Background(), user.CreateUserRequest{
		OrgID:       fixtures.OrgID,
		Email:       fixtures.AliceEmail,
		DisplayName: "Shadow Alice",
		Password:    "long-enough-password",
		Role:        string(user.RoleEmployee),
	})
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestUserService_Get_NotFound(t *testing.T) {
	svc := newUserTestService()

	_, err := svc.Get(context.Background(), "usr-missing", fixtures.OrgID)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserService_SetActive(t *testing.T) {
	ctx := context.Background()
	svc := newUserTestService()

	deactivated, err := svc.SetActive(ctx, fixtures.BobID, fixtures.OrgID, false)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)

	reactivated, err := svc.SetActive(ctx, fixtures.BobID, fixtures.OrgID, true)
	require.NoError(t, err)
	assert.True(t, reactivated.IsActive)
}

func TestUserService_ResetQuotas(t *testing.T) {
	ctx := context.Background()
	store := fixture.NewStore(faults.Disabled())
	userRepo := fixture.NewUserRepository(store)
	svc := NewUserService(userRepo)

	alice, err := userRepo.GetByID(ctx, fixtures.AliceID, fixtures.OrgID)
	require.NoError(t, err)
	quota := alice.LeaveQuotas[user.LeaveVacation]
	quota.Used = 7
	alice.LeaveQuotas[user.LeaveVacation] = quota
	require.NoError(t, userRepo.Update(ctx, *alice))

	reset, err := svc.ResetQuotas(ctx, fixtures.AliceID, fixtures.OrgID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, reset.LeaveQuotas[user.LeaveVacation].Used)
	assert.Equal(t, 14.0, reset.LeaveQuotas[user.LeaveVacation].Total)
}

func TestUserService_List(t *testing.T) {
	svc := newUserTestService()

	users, total, err := svc.List(context.Background(), user.ListFilter{Page: 1, Limit: 20}, fixtures.OrgID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, users, 3)
}
