package fixture

import (
	"context"
	"strings"

	"github.com/pulsehq/pulse-backend-go/internal/domain/org"
)

type orgRepository struct {
	store *Store
}

func NewOrgRepository(store *Store) org.Repository {
	return &orgRepository{store: store}
}

// Create implements org.Repository.
func (r *orgRepository) Create(ctx context.Context, o org.Org) (org.Org, error) {
	if err := r.store.simulate(ctx); err != nil {
		return org.Org{}, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.orgs[o.ID] = o
	return o, nil
}

// GetByID implements org.Repository.
func (r *orgRepository) GetByID(ctx context.Context, id string) (*org.Org, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	o, ok := r.store.orgs[id]
	if !ok {
		return nil, nil
	}
	out := o
	return &out, nil
}

// GetBySlug implements org.Repository.
func (r *orgRepository) GetBySlug(ctx context.Context, slug string) (*org.Org, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, o := range r.store.orgs {
		if o.Slug == slug {
			out := o
			return &out, nil
		}
	}
	return nil, nil
}

// List implements org.Repository.
func (r *orgRepository) List(ctx context.Context, filter org.ListFilter) ([]org.Org, int64, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, 0, err
	}
	filter.Normalize()

	r.store.mu.RLock()
	matched := make([]org.Org, 0, len(r.store.orgs))
	for _, o := range r.store.orgs {
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(o.Name), needle) &&
				!strings.Contains(o.Slug, needle) {
				continue
			}
		}
		matched = append(matched, o)
	}
	r.store.mu.RUnlock()

	sortStable(matched, func(a, b org.Org) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	total := int64(len(matched))
	return paginate(matched, filter.Page, filter.Limit), total, nil
}

// Update implements org.Repository.
func (r *orgRepository) Update(ctx context.Context, o org.Org) error {
	if err := r.store.simulate(ctx); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.orgs[o.ID]; !ok {
		return org.ErrOrgNotFound
	}
	r.store.orgs[o.ID] = o
	return nil
}
