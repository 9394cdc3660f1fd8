package dailylog

import "context"

// Repository defines data access for daily log documents. Reads return
// (nil, nil) when no document exists for the key.
type Repository interface {
	// Get retrieves the log for a user on a date
	Get(ctx context.Context, userID string, date string, orgID string) (*Log, error)

	// Put upserts a log under its composite document key
	Put(ctx context.Context, log Log) (Log, error)

	// ListByUser retrieves a user's logs within an inclusive date range
	ListByUser(ctx context.Context, userID string, from, to string, orgID string) ([]Log, error)
}
