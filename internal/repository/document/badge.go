package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/pulsehq/pulse-backend-go/internal/domain/badge"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/database"
)

type badgeRepository struct {
	db *database.DB
}

func NewBadgeRepository(db *database.DB) badge.Repository {
	return &badgeRepository{db: db}
}

// GetByID implements badge.Repository.
func (r *badgeRepository) GetByID(ctx context.Context, id string) (*badge.Badge, error) {
	q := GetQuerier(ctx, r.db)

	b, err := getDoc[badge.Badge](ctx, q, collBadges, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get badge by id: %w", err)
	}
	return b, nil
}

// List implements badge.Repository.
func (r *badgeRepository) List(ctx context.Context, filter badge.ListFilter) ([]badge.Badge, int64, error) {
	q := GetQuerier(ctx, r.db)
	filter.Normalize()

	conditions := []string{"TRUE"}
	args := []interface{}{}

	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("data->>'category' = $%d", len(args)+1))
		args = append(args, filter.Category)
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(data->>'name' ILIKE $%d OR data->>'description' ILIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, "%"+filter.Search+"%")
	}

	query := fmt.Sprintf(`
		SELECT data, COUNT(*) OVER()
		FROM %s
		WHERE %s
		ORDER BY id ASC
		LIMIT $%d OFFSET $%d
	`, collBadges, strings.Join(conditions, " AND "), len(args)+1, len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	badges, total, err := queryDocsWithTotal[badge.Badge](ctx, q, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list badges: %w", err)
	}
	return badges, total, nil
}
