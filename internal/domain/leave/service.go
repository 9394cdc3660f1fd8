package leave

import (
	"context"
)

type Service interface {
	// Submit creates a pending leave request, computing the business-day
	// count and the overdraft flag
	Submit(ctx context.Context, req CreateRequestRequest) (Request, error)

	// Get retrieves a single request
	Get(ctx context.Context, id string, orgID string) (Request, error)

	// Approve resolves a pending request and books the days against the
	// requester's quota in the same atomic unit
	Approve(ctx context.Context, req ResolveRequestRequest) (Request, error)

	// Reject resolves a pending request without touching any quota
	Reject(ctx context.Context, req ResolveRequestRequest) (Request, error)

	// Cancel lets the requester withdraw a still-pending request
	Cancel(ctx context.Context, id string, orgID string, userID string) (Request, error)

	// Balances computes the per-kind balance view for a user
	Balances(ctx context.Context, userID string, orgID string) ([]Balance, error)

	// ListMine retrieves a user's requests, newest first
	ListMine(ctx context.Context, userID string, orgID string) ([]Request, error)

	// List retrieves org requests with filters and pagination (admin view)
	List(ctx context.Context, filter ListFilter, orgID string) ([]Request, int64, error)
}
