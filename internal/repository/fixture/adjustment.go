package fixture

import (
	"context"

	"github.com/pulsehq/pulse-backend-go/internal/domain/adjustment"
)

type adjustmentRepository struct {
	store *Store
}

func NewAdjustmentRepository(store *Store) adjustment.Repository {
	return &adjustmentRepository{store: store}
}

// Create implements adjustment.Repository.
func (r *adjustmentRepository) Create(ctx context.Context, request adjustment.Request) (adjustment.Request, error) {
	if err := r.store.simulate(ctx); err != nil {
		return adjustment.Request{}, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.adjustments[request.ID] = request
	return request, nil
}

// GetByID implements adjustment.Repository.
func (r *adjustmentRepository) GetByID(ctx context.Context, id string, orgID string) (*adjustment.Request, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	request, ok := r.store.adjustments[id]
	if !ok || request.OrgID != orgID {
		return nil, nil
	}
	out := request
	return &out, nil
}

// Update implements adjustment.Repository. Status updates are a synthetic
// failure point in mock mode.
func (r *adjustmentRepository) Update(ctx context.Context, request adjustment.Request) error {
	if err := r.store.simulate(ctx); err != nil {
		return err
	}
	if err := r.store.inj.Fail(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.adjustments[request.ID]; !ok {
		return adjustment.ErrRequestNotFound
	}
	r.store.adjustments[request.ID] = request
	return nil
}

// ListByUser implements adjustment.Repository.
func (r *adjustmentRepository) ListByUser(ctx context.Context, userID string, orgID string) ([]adjustment.Request, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	matched := make([]adjustment.Request, 0)
	for _, request := range r.store.adjustments {
		if request.UserID == userID && request.OrgID == orgID {
			matched = append(matched, request)
		}
	}
	r.store.mu.RUnlock()

	sortStable(matched, func(a, b adjustment.Request) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return matched, nil
}

// List implements adjustment.Repository.
func (r *adjustmentRepository) List(ctx context.Context, filter adjustment.ListFilter, orgID string) ([]adjustment.Request, int64, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, 0, err
	}
	filter.Normalize()

	r.store.mu.RLock()
	matched := make([]adjustment.Request, 0)
	for _, request := range r.store.adjustments {
		if request.OrgID != orgID {
			continue
		}
		if filter.UserID != "" && request.UserID != filter.UserID {
			continue
		}
		if filter.Status != nil && request.Status != *filter.Status {
			continue
		}
		matched = append(matched, request)
	}
	r.store.mu.RUnlock()

	sortStable(matched, func(a, b adjustment.Request) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	total := int64(len(matched))
	return paginate(matched, filter.Page, filter.Limit), total, nil
}
