package adjustment

import (
	"context"
)

type Service interface {
	// Submit creates a pending adjustment request for one attendance day
	Submit(ctx context.Context, req CreateRequestRequest) (Request, error)

	// Get retrieves a single request
	Get(ctx context.Context, id string, orgID string) (Request, error)

	// Approve resolves a pending request and rewrites the attendance record
	// in the same atomic unit
	Approve(ctx context.Context, id string, orgID string, approverID string) (Request, error)

	// Reject resolves a pending request without touching attendance
	Reject(ctx context.Context, id string, orgID string, approverID string) (Request, error)

	// Cancel lets the requester withdraw a still-pending request
	Cancel(ctx context.Context, id string, orgID string, userID string) (Request, error)

	// ListMine retrieves a user's requests, newest first
	ListMine(ctx context.Context, userID string, orgID string) ([]Request, error)

	// List retrieves org requests with filters and pagination (admin view)
	List(ctx context.Context, filter ListFilter, orgID string) ([]Request, int64, error)
}
