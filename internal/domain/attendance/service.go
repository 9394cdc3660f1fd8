package attendance

import (
	"context"
)

type Service interface {
	// CheckIn records the check-in time for a user on a date
	CheckIn(ctx context.Context, req CheckInRequest) (Record, error)

	// CheckOut records the check-out time and computes worked hours
	CheckOut(ctx context.Context, req CheckOutRequest) (Record, error)

	// GetDay retrieves the record for a user on a date
	GetDay(ctx context.Context, userID string, date string, orgID string) (Record, error)

	// ListMine retrieves a user's records within an inclusive date range
	ListMine(ctx context.Context, userID string, from, to string, orgID string) ([]Record, error)

	// List retrieves org records with filters and pagination (admin view)
	List(ctx context.Context, filter ListFilter, orgID string) ([]Record, int64, error)

	// MarkAbsences backfills records for users without one on a past workday.
	// Users covered by an approved leave request get on-leave, the rest get
	// absent. Returns the number of records written.
	MarkAbsences(ctx context.Context, date string) (int, error)
}
