package fixture

import (
	"context"

	"github.com/pulsehq/pulse-backend-go/internal/domain/leave"
)

type leaveRepository struct {
	store *Store
}

func NewLeaveRepository(store *Store) leave.Repository {
	return &leaveRepository{store: store}
}

// Create implements leave.Repository.
func (r *leaveRepository) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	if err := r.store.simulate(ctx); err != nil {
		return leave.Request{}, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.leaves[request.ID] = request
	return request, nil
}

// GetByID implements leave.Repository.
func (r *leaveRepository) GetByID(ctx context.Context, id string, orgID string) (*leave.Request, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	request, ok := r.store.leaves[id]
	if !ok || request.OrgID != orgID {
		return nil, nil
	}
	out := request
	return &out, nil
}

// Update implements leave.Repository. Status updates are a synthetic
// failure point in mock mode.
func (r *leaveRepository) Update(ctx context.Context, request leave.Request) error {
	if err := r.store.simulate(ctx); err != nil {
		return err
	}
	if err := r.store.inj.Fail(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.leaves[request.ID]; !ok {
		return leave.ErrRequestNotFound
	}
	r.store.leaves[request.ID] = request
	return nil
}

// ListByUser implements leave.Repository.
func (r *leaveRepository) ListByUser(ctx context.Context, userID string, orgID string) ([]leave.Request, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	matched := make([]leave.Request, 0)
	for _, request := range r.store.leaves {
		if request.UserID == userID && request.OrgID == orgID {
			matched = append(matched, request)
		}
	}
	r.store.mu.RUnlock()

	sortStable(matched, func(a, b leave.Request) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return matched, nil
}

// List implements leave.Repository.
func (r *leaveRepository) List(ctx context.Context, filter leave.ListFilter, orgID string) ([]leave.Request, int64, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, 0, err
	}
	filter.Normalize()

	r.store.mu.RLock()
	matched := make([]leave.Request, 0)
	for _, request := range r.store.leaves {
		if request.OrgID != orgID {
			continue
		}
		if filter.UserID != "" && request.UserID != filter.UserID {
			continue
		}
		if filter.Status != nil && request.Status != *filter.Status {
			continue
		}
		if filter.Kind != nil && request.Kind != *filter.Kind {
			continue
		}
		matched = append(matched, request)
	}
	r.store.mu.RUnlock()

	sortStable(matched, func(a, b leave.Request) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	total := int64(len(matched))
	return paginate(matched, filter.Page, filter.Limit), total, nil
}
