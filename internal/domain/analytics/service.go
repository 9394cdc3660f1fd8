package analytics

import (
	"context"
)

type Service interface {
	// Summarize aggregates the org-wide counters on demand
	Summarize(ctx context.Context, orgID string, filter SummaryFilter) (Summary, error)
}
