// Package document implements every repository interface over the
// PostgreSQL-backed document store: one flat table per entity type, each row
// holding the entity's JSON document under its ID. The document ID is either
// the entity's own id or a composite "<userID>_<date>" key.
package document

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pulsehq/pulse-backend-go/internal/pkg/database"
)

// Collection table names, one per entity type.
const (
	collUsers       = "users"
	collOrgs        = "orgs"
	collAttendance  = "attendance"
	collLeaves      = "leave_requests"
	collProjects    = "projects"
	collTickets     = "tickets"
	collDailyLogs   = "daily_logs"
	collAdjustments = "adjustment_requests"
	collBadges      = "badges"
)

// putDoc upserts a document under its ID.
func putDoc(ctx context.Context, q database.Querier, coll string, id string, doc interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal %s document: %w", coll, err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, data)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`, coll)

	if _, err := q.Exec(ctx, query, id, data); err != nil {
		return fmt.Errorf("put %s document: %w", coll, err)
	}
	return nil
}

// getDoc loads one document by ID. A missing document is (nil, nil), not an
// error.
func getDoc[T any](ctx context.Context, q database.Querier, coll string, id string) (*T, error) {
	query := fmt.Sprintf(`SELECT data FROM %s WHERE id = $1`, coll)

	var data []byte
	err := q.QueryRow(ctx, query, id).Scan(&data)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s document: %w", coll, err)
	}

	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal %s document: %w", coll, err)
	}
	return &doc, nil
}

// queryDocs runs a prepared SELECT whose first column is the document JSON
// and decodes every row.
func queryDocs[T any](ctx context.Context, q database.Querier, query string, args ...interface{}) ([]T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	docs := make([]T, 0)
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		var doc T
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("unmarshal document: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// queryDocsWithTotal is queryDocs for paginated listings: the SELECT must
// yield (data, COUNT(*) OVER()) per row.
func queryDocsWithTotal[T any](ctx context.Context, q database.Querier, query string, args ...interface{}) ([]T, int64, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	docs := make([]T, 0)
	var total int64
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data, &total); err != nil {
			return nil, 0, fmt.Errorf("scan document: %w", err)
		}
		var doc T
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, 0, fmt.Errorf("unmarshal document: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, total, rows.Err()
}
