package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/pulsehq/pulse-backend-go/internal/domain/attendance"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// Get implements attendance.Repository.
func (r *attendanceRepository) Get(ctx context.Context, userID string, date string, orgID string) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	rec, err := getDoc[attendance.Record](ctx, q, collAttendance, attendance.DocID(userID, date))
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if rec == nil || rec.OrgID != orgID {
		return nil, nil
	}
	return rec, nil
}

// Put implements attendance.Repository.
func (r *attendanceRepository) Put(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)
	if err := putDoc(ctx, q, collAttendance, record.ID, record); err != nil {
		return attendance.Record{}, fmt.Errorf("failed to put attendance record: %w", err)
	}
	return record, nil
}

// ListByUser implements attendance.Repository.
func (r *attendanceRepository) ListByUser(ctx context.Context, userID string, from, to string, orgID string) ([]attendance.Record, error) {
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
	`, collAttendance, strings.Join(conditions, " AND "))

	records, err := queryDocs[attendance.Record](ctx, q, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by user: %w", err)
	}
	return records, nil
}

// List implements attendance.Repository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter, orgID string) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, r.db)
	filter.Normalize()

	conditions := []string{"data->>'orgId' = $1"}
	args := []interface{}{orgID}

	if filter.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("data->>'userId' = $%d", len(args)+1))
		args = append(args, filter.UserID)
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("data->>'status' = $%d", len(args)+1))
		args = append(args, string(*filter.Status))
	}
	if filter.From != "" {
		conditions = append(conditions, fmt.Sprintf("data->>'date' >= $%d", len(args)+1))
		args = append(args, filter.From)
	}
	if filter.To != "" {
		conditions = append(conditions, fmt.Sprintf("data->>'date' <= $%d", len(args)+1))
		args = append(args, filter.To)
	}

	query := fmt.Sprintf(`
		SELECT data, COUNT(*) OVER()
		FROM %s
		WHERE %s
		ORDER BY data->>'date' DESC, data->>'userId' ASC
		LIMIT $%d OFFSET $%d
	`, collAttendance, strings.Join(conditions, " AND "), len(args)+1, len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	records, total, err := queryDocsWithTotal[attendance.Record](ctx, q, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance: %w", err)
	}
	return records, total, nil
}
