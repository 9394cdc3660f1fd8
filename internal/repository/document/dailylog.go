package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/pulsehq/pulse-backend-go/internal/domain/dailylog"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/database"
)

type dailyLogRepository struct {
	db *database.DB
}

func NewDailyLogRepository(db *database.DB) dailylog.Repository {
	return &dailyLogRepository{db: db}
}

// Get implements dailylog.Repository.
func (r *dailyLogRepository) Get(ctx context.Context, userID string, date string, orgID string) (*dailylog.Log, error) {
	q := GetQuerier(ctx, r.db)

	l, err := getDoc[dailylog.Log](ctx, q, collDailyLogs, dailylog.DocID(userID, date))
	if err != nil {
		return nil, fmt.Errorf("failed to get daily log: %w", err)
	}
	if l == nil || l.OrgID != orgID {
		return nil, nil
	}
	return l, nil
}

// Put implements dailylog.Repository.
func (r *dailyLogRepository) Put(ctx context.Context, log dailylog.Log) (dailylog.Log, error) {
	q := GetQuerier(ctx, r.db)
	if err := putDoc(ctx, q, collDailyLogs, log.ID, log); err != nil {
		return dailylog.Log{}, fmt.Errorf("failed to put daily log: %w", err)
	}
	return log, nil
}

// ListByUser implements dailylog.Repository.
func (r *dailyLogRepository) ListByUser(ctx context.Context, userID string, from, to string, orgID string) ([]dailylog.Log, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"data->>'userId' = $1", "data->>'orgId' = $2"}
	args := []interface{}{userID, orgID}

	if from != "" {
		conditions = append(conditions, fmt.Sprintf("data->>'date' >= $%d", len(args)+1))
		args = append(args, from)
	}
	if to != "" {
		conditions = append(conditions, fmt.Sprintf("data->>'date' <= $%d", len(args)+1))
		args = append(args, to)
	}

	query := fmt.Sprintf(`
		SELECT data FROM %s
		WHERE %s
		ORDER BY data->>'date' ASC
	`, collDailyLogs, strings.Join(conditions, " AND "))

	logs, err := queryDocs[dailylog.Log](ctx, q, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily logs by user: %w", err)
	}
	return logs, nil
}
