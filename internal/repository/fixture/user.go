package fixture

import (
	"context"
	"strings"

	"github.com/pulsehq/pulse-backend-go/internal/domain/user"
)

type userRepository struct {
	store *Store
}

func NewUserRepository(store *Store) user.Repository {
	return &userRepository{store: store}
}

func copyUser(u user.User) user.User {
	out := u
	out.LeaveQuotas = make(user.LeaveQuotas, len(u.LeaveQuotas))
	for kind, quota := range u.LeaveQuotas {
		out.LeaveQuotas[kind] = quota
	}
	return out
}

// Create implements user.Repository.
func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	if err := r.store.simulate(ctx); err != nil {
		return user.User{}, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.users[u.ID] = copyUser(u)
	return u, nil
}

// GetByID implements user.Repository.
func (r *userRepository) GetByID(ctx context.Context, id string, orgID string) (*user.User, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	u, ok := r.store.users[id]
	if !ok || u.OrgID != orgID {
		return nil, nil
	}
	out := copyUser(u)
	return &out, nil
}

// GetByEmail implements user.Repository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if strings.EqualFold(u.Email, email) {
			out := copyUser(u)
			return &out, nil
		}
	}
	return nil, nil
}

// List implements user.Repository.
func (r *userRepository) List(ctx context.Context, filter user.ListFilter, orgID string) ([]user.User, int64, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, 0, err
	}
	filter.Normalize()

	r.store.mu.RLock()
	matched := make([]user.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		if u.OrgID != orgID {
			continue
		}
		if filter.Role != nil && u.Role != *filter.Role {
			continue
		}
		if filter.IsActive != nil && u.IsActive != *filter.IsActive {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(u.DisplayName), needle) &&
				!strings.Contains(strings.ToLower(u.Email), needle) {
				continue
			}
		}
		matched = append(matched, copyUser(u))
	}
	r.store.mu.RUnlock()

	sortStable(matched, func(a, b user.User) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	total := int64(len(matched))
	return paginate(matched, filter.Page, filter.Limit), total, nil
}

// Update implements user.Repository.
func (r *userRepository) Update(ctx context.Context, u user.User) error {
	if err := r.store.simulate(ctx); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[u.ID]; !ok {
		return user.ErrUserNotFound
	}
	r.store.users[u.ID] = copyUser(u)
	return nil
}
