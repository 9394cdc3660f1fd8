package document

import (
	"context"
	"fmt"

	"github.com/pulsehq/pulse-backend-go/internal/fixtures"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/database"
)

var collections = []string{
	collUsers,
	collOrgs,
	collAttendance,
	collLeaves,
	collProjects,
	collTickets,
	collDailyLogs,
	collAdjustments,
	collBadges,
}

// EnsureSchema creates the collection tables and their lookup indexes, and
// seeds the badge catalog. Safe to run on every startup.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	for _, coll := range collections {
		query := fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id         TEXT PRIMARY KEY,
				data       JSONB NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`, coll)
		if _, err := db.Exec(ctx, query); err != nil {
			return fmt.Errorf("create collection %s: %w", coll, err)
		}

		index := fmt.Sprintf(
			`CREATE INDEX IF NOT EXISTS idx_%s_org ON %s ((data->>'orgId'))`,
			coll, coll,
		)
		if _, err := db.Exec(ctx, index); err != nil {
			return fmt.Errorf("index collection %s: %w", coll, err)
		}
	}

	extra := []string{
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_user ON %s ((data->>'userId'))`, collAttendance, collAttendance),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_user ON %s ((data->>'userId'))`, collLeaves, collLeaves),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_user ON %s ((data->>'userId'))`, collDailyLogs, collDailyLogs),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_project ON %s ((data->>'projectId'))`, collTickets, collTickets),
		fmt.Sprintf(`CREATE UNIQUE INDEX IF NOT EXISTS idx_%s_email ON %s ((lower(data->>'email')))`, collUsers, collUsers),
		fmt.Sprintf(`CREATE UNIQUE INDEX IF NOT EXISTS idx_%s_slug ON %s ((data->>'slug'))`, collOrgs, collOrgs),
	}
	for _, index := range extra {
		if _, err := db.Exec(ctx, index); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	return seedBadges(ctx, db)
}

// seedBadges loads the embedded catalog into the badges collection.
func seedBadges(ctx context.Context, db *database.DB) error {
	for _, b := range fixtures.Badges() {
		if err := putDoc(ctx, db.Pool, collBadges, b.ID, b); err != nil {
			return fmt.Errorf("seed badge %s: %w", b.ID, err)
		}
	}
	return nil
}
