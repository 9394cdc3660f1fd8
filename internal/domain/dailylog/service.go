package dailylog

import (
	"context"
)

type Service interface {
	// Get retrieves the log for a user on a date. A date without a stored
	// document yields an empty log rather than an error.
	Get(ctx context.Context, userID string, date string, orgID string) (Log, error)

	// ListMine retrieves a user's logs within an inclusive date range
	ListMine(ctx context.Context, userID string, from, to string, orgID string) ([]Log, error)

	// AddManualTask appends a free-text task to the log, creating it if needed
	AddManualTask(ctx context.Context, req AddManualTaskRequest) (Log, error)
}
