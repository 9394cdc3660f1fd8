package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsehq/pulse-backend-go/internal/domain/auth"
	"github.com/pulsehq/pulse-backend-go/internal/domain/org"
	"github.com/pulsehq/pulse-backend-go/internal/domain/user"
	"github.com/pulsehq/pulse-backend-go/internal/fixtures"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/faults"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/jwt"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/oauth"
	"github.com/pulsehq/pulse-backend-go/internal/repository/fixture"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

func newAuthTestService() (auth.Service, user.Repository, org.Repository, jwt.Service) {
	store := fixture.NewStore(faults.Disabled())
	userRepo := fixture.NewUserRepository(store)
	orgRepo := fixture.NewOrgRepository(store)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	googleService := oauth.NewGoogleService("client-id", "client-secret", "http://localhost/callback", []string{"email"})
	svc := NewAuthService(store, userRepo, orgRepo, jwtService, googleService)
	return svc, userRepo, orgRepo, jwtService
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, _, _ := newAuthTestService()

	session, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    fixtures.AliceEmail,
		Password: fixtures.Password,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, session.Token.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Greater(t, session.Token.ExpiresAt, int64(0))
	assert.Equal(t, fixtures.AliceID, session.Token.User.ID)
	assert.Equal(t, fixtures.OrgID, session.Token.User.OrgID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _, _ := newAuthTestService()

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    fixtures.AliceEmail,
		Password: "not-the-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _, _ := newAuthTestService()

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@pulse.dev",
		Password: fixtures.Password,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_DeactivatedAccount(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, _, _ := newAuthTestService()

	alice, err := userRepo.GetByID(ctx, fixtures.AliceID, fixtures.OrgID)
	require.NoError(t, err)
	alice.IsActive = false
	require.NoError(t, userRepo.Update(ctx, *alice))

	_, err = svc.Login(ctx, auth.LoginRequest{
		Email:    fixtures.AliceEmail,
		Password: fixtures.Password,
	})
	assert.ErrorIs(t, err, auth.ErrAccountDeactivated)
}

func TestAuthService_Register_CreatesOrgAndAdmin(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, orgRepo, _ := newAuthTestService()

	session, err := svc.Register(ctx, auth.RegisterRequest{
		Email:       "founder@acme.dev",
		DisplayName: "Avery Founder",
		Password:    "long-enough-password",
		OrgName:     "Acme",
		OrgSlug:     "acme",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, session.Token.AccessToken)
	assert.Equal(t, user.RoleAdmin, session.Token.User.Role)

	created, err := orgRepo.GetBySlug(ctx, "acme")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, created.IsActive)
	assert.Equal(t, session.Token.User.ID, created.OwnerID)

	founder, err := userRepo.GetByEmail(ctx, "founder@acme.dev")
	require.NoError(t, err)
	require.NotNil(t, founder)
	assert.Equal(t, created.ID, founder.OrgID)
	assert.Equal(t, user.DefaultQuotas(), founder.LeaveQuotas)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAuthTestService()

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:       fixtures.AliceEmail,
		DisplayName: "Shadow Alice",
		Password:    "long-enough-password",
		OrgName:     "Second Org",
		OrgSlug:     "second-org",
	})
	assert.ErrorIs(t, err, auth.ErrEmailExists)
}

func TestAuthService_Register_DuplicateSlug(t *testing.T) {
	svc, _, _, _ := newAuthTestService()

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:       "founder@acme.dev",
		DisplayName: "Avery Founder",
		Password:    "long-enough-password",
		OrgName:     "Pulse Clone",
		OrgSlug:     "pulse-demo",
	})
	assert.ErrorIs(t, err, org.ErrSlugExists)
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newAuthTestService()

	session, err := svc.Login(ctx, auth.LoginRequest{
		Email:    fixtures.AliceEmail,
		Password: fixtures.Password,
	})
	require.NoError(t, err)

	token, err := svc.Refresh(ctx, session.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, fixtures.AliceID, token.User.ID)
}

func TestAuthService_Refresh_AfterLogout(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newAuthTestService()

	session, err := svc.Login(ctx, auth.LoginRequest{
		Email:    fixtures.AliceEmail,
		Password: fixtures.Password,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, session.RefreshToken))

	_, err = svc.Refresh(ctx, session.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestAuthService_Refresh_GarbageToken(t *testing.T) {
	svc, _, _, _ := newAuthTestService()

	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
