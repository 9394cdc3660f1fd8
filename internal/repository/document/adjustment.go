package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/pulsehq/pulse-backend-go/internal/domain/adjustment"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/database"
)

type adjustmentRepository struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) adjustment.Repository {
	return &adjustmentRepository{db: db}
}

// Create implements adjustment.Repository.
func (r *adjustmentRepository) Create(ctx context.Context, request adjustment.Request) (adjustment.Request, error) {
	q := GetQuerier(ctx, r.db)
	if err := putDoc(ctx, q, collAdjustments, request.ID, request); err != nil {
		return adjustment.Request{}, fmt.Errorf("failed to create adjustment request: %w", err)
	}
	return request, nil
}

// GetByID implements adjustment.Repository.
func (r *adjustmentRepository) GetByID(ctx context.Context, id string, orgID string) (*adjustment.Request, error) {
	q := GetQuerier(ctx, r.db)

	request, err := getDoc[adjustment.Request](ctx, q, collAdjustments, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get adjustment request by id: %w", err)
	}
	if request == nil || request.OrgID != orgID {
		return nil, nil
	}
	return request, nil
}

// Update implements adjustment.Repository.
func (r *adjustmentRepository) Update(ctx context.Context, request adjustment.Request) error {
	q := GetQuerier(ctx, r.db)

	existing, err := getDoc[adjustment.Request](ctx, q, collAdjustments, request.ID)
	if err != nil {
		return fmt.Errorf("failed to load adjustment request for update: %w", err)
	}
	if existing == nil {
		return adjustment.ErrRequestNotFound
	}

	if err := putDoc(ctx, q, collAdjustments, request.ID, request); err != nil {
		return fmt.Errorf("failed to update adjustment request: %w", err)
	}
	return nil
}

// ListByUser implements adjustment.Repository.
func (r *adjustmentRepository) ListByUser(ctx context.Context, userID string, orgID string) ([]adjustment.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT data FROM %s
		WHERE data->>'userId' = $1 AND data->>'orgId' = $2
		ORDER BY data->>'createdAt' DESC, id ASC
	`, collAdjustments)

	requests, err := queryDocs[adjustment.Request](ctx, q, query, userID, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustment requests by user: %w", err)
	}
	return requests, nil
}

// List implements adjustment.Repository.
func (r *adjustmentRepository) List(ctx context.Context, filter adjustment.ListFilter, orgID string) ([]adjustment.Request, int64, error) {
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

	query := fmt.Sprintf(`
		SELECT data, COUNT(*) OVER()
		FROM %s
		WHERE %s
		ORDER BY data->>'createdAt' DESC, id ASC
		LIMIT $%d OFFSET $%d
	`, collAdjustments, strings.Join(conditions, " AND "), len(args)+1, len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	requests, total, err := queryDocsWithTotal[adjustment.Request](ctx, q, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list adjustment requests: %w", err)
	}
	return requests, total, nil
}
