package leave

import "context"

// Repository defines data access for leave request documents. Reads return
// (nil, nil) when the document does not exist.
type Repository interface {
	// Create stores a new leave request
	Create(ctx context.Context, request Request) (Request, error)

	// GetByID retrieves a request by ID with org isolation
	GetByID(ctx context.Context, id string, orgID string) (*Request, error)

	// Update overwrites an existing request document
	Update(ctx context.Context, request Request) error

	// ListByUser retrieves a user's requests, newest first
	ListByUser(ctx context.Context, userID string, orgID string) ([]Request, error)

	// List retrieves org requests with filters and pagination (admin view)
	List(ctx context.Context, filter ListFilter, orgID string) ([]Request, int64, error)
}
