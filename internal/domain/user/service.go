package user

import (
	"context"
)

type Service interface {
	// Create provisions a new user in the admin's org
	Create(ctx context.Context, req CreateUserRequest) (Response, error)

	// Get retrieves a single user
	Get(ctx context.Context, id string, orgID string) (Response, error)

	// List retrieves users with filters and pagination
	List(ctx context.Context, filter ListFilter, orgID string) ([]Response, int64, error)

	// Update changes display name and/or role
	Update(ctx context.Context, req UpdateUserRequest) (Response, error)

	// SetActive activates or deactivates a user
	SetActive(ctx context.Context, id string, orgID string, isActive bool) (Response, error)

	// ResetQuotas restores the default leave quotas, zeroing usage
	ResetQuotas(ctx context.Context, id string, orgID string) (Response, error)
}
