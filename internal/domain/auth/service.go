package auth

import (
	"context"
)

// Session bundles the wire-visible token response with the refresh token
// that travels only in the HttpOnly cookie.
type Session struct {
	Token            TokenResponse
	RefreshToken     string
	RefreshExpiresAt int64
}

type Service interface {
	// Login authenticates with email and password
	Login(ctx context.Context, req LoginRequest) (Session, error)

	// Register creates a new org together with its first admin user
	Register(ctx context.Context, req RegisterRequest) (Session, error)

	// LoginWithGoogle exchanges an OAuth2 code for a session of an existing user
	LoginWithGoogle(ctx context.Context, code string) (Session, error)

	// Refresh issues a new access token from a valid refresh token
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the refresh token
	Logout(ctx context.Context, refreshToken string) error
}
