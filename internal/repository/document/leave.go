package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/pulsehq/pulse-backend-go/internal/domain/leave"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepository{db: db}
}

// Create implements leave.Repository.
func (r *leaveRepository) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)
	if err := putDoc(ctx, q, collLeaves, request.ID, request); err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return request, nil
}

// GetByID implements leave.Repository.
func (r *leaveRepository) GetByID(ctx context.Context, id string, orgID string) (*leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	request, err := getDoc[leave.Request](ctx, q, collLeaves, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave request by id: %w", err)
	}
	if request == nil || request.OrgID != orgID {
		return nil, nil
	}
	return request, nil
}

// Update implements leave.Repository.
func (r *leaveRepository) Update(ctx context.Context, request leave.Request) error {
	q := GetQuerier(ctx, r.db)

	existing, err := getDoc[leave.Request](ctx, q, collLeaves, request.ID)
	if err != nil {
		return fmt.Errorf("failed to load leave request for update: %w", err)
	}
	if existing == nil {
		return leave.ErrRequestNotFound
	}

	if err := putDoc(ctx, q, collLeaves, request.ID, request); err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	return nil
}

// ListByUser implements leave.Repository.
func (r *leaveRepository) ListByUser(ctx context.Context, userID string, orgID string) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT data FROM %s
		WHERE data->>'userId' = $1 AND data->>'orgId' = $2
		ORDER BY data->>'createdAt' DESC, id ASC
	`, collLeaves)

	requests, err := queryDocs[leave.Request](ctx, q, query, userID, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests by user: %w", err)
	}
	return requests, nil
}

// List implements leave.Repository.
func (r *leaveRepository) List(ctx context.Context, filter leave.ListFilter, orgID string) ([]leave.Request, int64, error) {
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
	if filter.Kind != nil {
		conditions = append(conditions, fmt.Sprintf("data->>'kind' = $%d", len(args)+1))
		args = append(args, string(*filter.Kind))
	}

	query := fmt.Sprintf(`
		SELECT data, COUNT(*) OVER()
		FROM %s
		WHERE %s
		ORDER BY data->>'createdAt' DESC, id ASC
		LIMIT $%d OFFSET $%d
	`, collLeaves, strings.Join(conditions, " AND "), len(args)+1, len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	requests, total, err := queryDocsWithTotal[leave.Request](ctx, q, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, total, nil
}
