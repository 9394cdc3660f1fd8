package user

import "context"

// Repository defines data access for user documents. All org-scoped methods
// take orgID to prevent cross-tenant access. Reads return (nil, nil) when
// the document does not exist.
type Repository interface {
	// Create stores a new user document
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by ID with org isolation
	GetByID(ctx context.Context, id string, orgID string) (*User, error)

	// GetByEmail retrieves a user by email across orgs (login path)
	GetByEmail(ctx context.Context, email string) (*User, error)

	// List retrieves users with filters and pagination
	List(ctx context.Context, filter ListFilter, orgID string) ([]User, int64, error)

	// Update overwrites an existing user document
	Update(ctx context.Context, u User) error
}
