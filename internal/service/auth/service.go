package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pulsehq/pulse-backend-go/internal/domain/auth"
	"github.com/pulsehq/pulse-backend-go/internal/domain/org"
	"github.com/pulsehq/pulse-backend-go/internal/domain/user"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/jwt"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/oauth"
	"github.com/pulsehq/pulse-backend-go/internal/repository"
)

type AuthServiceImpl struct {
	atomic        repository.Atomic
	userRepo      user.Repository
	orgRepo       org.Repository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(atomic repository.Atomic, userRepo user.Repository, orgRepo org.Repository, jwtService jwt.Service, googleService oauth.GoogleService) auth.Service {
	return &AuthServiceImpl{
		atomic:        atomic,
		userRepo:      userRepo,
		orgRepo:       orgRepo,
		jwtService:    jwtService,
		googleService: googleService,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (a *AuthServiceImpl) issueSession(userData user.User) (auth.Session, error) {
	var session auth.Session
	var err error

	orgID := &userData.OrgID
	if userData.OrgID == "" {
		orgID = nil
	}

	session.Token.AccessToken, session.Token.ExpiresAt, err = a.jwtService.GenerateAccessToken(userData.ID, userData.Email, orgID, userData.Role)
	if err != nil {
		return auth.Session{}, fmt.Errorf("failed to create access token: %w", err)
	}

	session.RefreshToken, session.RefreshExpiresAt, err = a.jwtService.GenerateRefreshToken(userData.ID, userData.Email)
	if err != nil {
		return auth.Session{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	session.Token.User = user.ToResponse(userData)
	return session, nil
}

// Login implements auth.Service.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.Session, error) {
	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return auth.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if userData == nil || userData.PasswordHash == nil {
		return auth.Session{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.Session{}, auth.ErrInvalidCredentials
	}

	if !userData.IsActive {
		return auth.Session{}, auth.ErrAccountDeactivated
	}

	return a.issueSession(*userData)
}

// Register implements auth.Service. The org and its first admin are written
// in one atomic unit so a half-created tenant can never be observed.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.Session, error) {
	existing, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return auth.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if existing != nil {
		return auth.Session{}, auth.ErrEmailExists
	}

	existingOrg, err := a.orgRepo.GetBySlug(ctx, req.OrgSlug)
	if err != nil {
		return auth.Session{}, fmt.Errorf("failed to get org by slug: %w", err)
	}
	if existingOrg != nil {
		return auth.Session{}, org.ErrSlugExists
	}

	hashedPassword, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	newUser := user.User{
		ID:           uuid.NewString(),
		OrgID:        uuid.NewString(),
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		PasswordHash: &hashedPassword,
		Role:         user.RoleAdmin,
		IsActive:     true,
		LeaveQuotas:  user.DefaultQuotas(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	newOrg := org.Org{
		ID:        newUser.OrgID,
		Name:      req.OrgName,
		Slug:      req.OrgSlug,
		OwnerID:   newUser.ID,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = a.atomic.RunAtomic(ctx, func(ctx context.Context) error {
		if _, err := a.orgRepo.Create(ctx, newOrg); err != nil {
			return fmt.Errorf("failed to create org: %w", err)
		}
		if _, err := a.userRepo.Create(ctx, newUser); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.Session{}, err
	}

	return a.issueSession(newUser)
}

// LoginWithGoogle implements auth.Service. Only already-provisioned users can
// sign in with Google; there is no self-service signup through OAuth.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.Session, error) {
	token, err := a.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.Session{}, auth.ErrInvalidToken
	}

	info, err := a.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.Session{}, fmt.Errorf("failed to fetch google user info: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.Session{}, auth.ErrInvalidCredentials
	}

	userData, err := a.userRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		return auth.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if userData == nil {
		return auth.Session{}, auth.ErrUserNotFound
	}
	if !userData.IsActive {
		return auth.Session{}, auth.ErrAccountDeactivated
	}

	return a.issueSession(*userData)
}

// Refresh implements auth.Service.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if a.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userID, email, err := a.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if userData == nil || userData.ID != userID {
		return auth.TokenResponse{}, auth.ErrUserNotFound
	}
	if !userData.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountDeactivated
	}

	var response auth.TokenResponse
	orgID := &userData.OrgID
	if userData.OrgID == "" {
		orgID = nil
	}
	response.AccessToken, response.ExpiresAt, err = a.jwtService.GenerateAccessToken(userData.ID, userData.Email, orgID, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	response.User = user.ToResponse(*userData)

	return response, nil
}

// Logout implements auth.Service.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if _, _, err := a.jwtService.ParseRefreshToken(refreshToken); err != nil {
		return auth.ErrInvalidToken
	}
	a.jwtService.RevokeToken(refreshToken)
	return nil
}
