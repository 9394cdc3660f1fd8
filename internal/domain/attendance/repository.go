package attendance

import "context"

// Repository defines data access for attendance documents. Reads return
// (nil, nil) when no document exists for the key.
type Repository interface {
	// Get retrieves the record for a user on a date
	Get(ctx context.Context, userID string, date string, orgID string) (*Record, error)

	// Put upserts a record under its composite document key
	Put(ctx context.Context, record Record) (Record, error)

	// ListByUser retrieves a user's records within an inclusive date range
	ListByUser(ctx context.Context, userID string, from, to string, orgID string) ([]Record, error)

	// List retrieves org records with filters and pagination (admin view)
	List(ctx context.Context, filter ListFilter, orgID string) ([]Record, int64, error)
}
