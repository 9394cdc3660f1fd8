package fixture

import (
	"context"
	"strings"

	"github.com/pulsehq/pulse-backend-go/internal/domain/badge"
	"github.com/pulsehq/pulse-backend-go/internal/fixtures"
)

// badgeRepository serves the embedded catalog. The catalog is immutable, so
// identical queries always return identical pages and metadata.
type badgeRepository struct {
	store   *Store
	catalog []badge.Badge
}

func NewBadgeRepository(store *Store) badge.Repository {
	return &badgeRepository{
		store:   store,
		catalog: fixtures.Badges(),
	}
}

// GetByID implements badge.Repository.
func (r *badgeRepository) GetByID(ctx context.Context, id string) (*badge.Badge, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	for _, b := range r.catalog {
		if b.ID == id {
			out := b
			return &out, nil
		}
	}
	return nil, nil
}

// List implements badge.Repository.
func (r *badgeRepository) List(ctx context.Context, filter badge.ListFilter) ([]badge.Badge, int64, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, 0, err
	}
	filter.Normalize()

	matched := make([]badge.Badge, 0, len(r.catalog))
	for _, b := range r.catalog {
		if filter.Category != "" && b.Category != filter.Category {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(b.Name), needle) &&
				!strings.Contains(strings.ToLower(b.Description), needle) {
				continue
			}
		}
		matched = append(matched, b)
	}

	total := int64(len(matched))
	return paginate(matched, filter.Page, filter.Limit), total, nil
}
