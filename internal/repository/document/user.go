package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/pulsehq/pulse-backend-go/internal/domain/user"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepository{db: db}
}

// Create implements user.Repository.
func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	if err := putDoc(ctx, q, collUsers, u.ID, u); err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// GetByID implements user.Repository.
func (r *userRepository) GetByID(ctx context.Context, id string, orgID string) (*user.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := getDoc[user.User](ctx, q, collUsers, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	if u == nil || u.OrgID != orgID {
		return nil, nil
	}
	return u, nil
}

// GetByEmail implements user.Repository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT data FROM %s
		WHERE lower(data->>'email') = lower($1)
		LIMIT 1
	`, collUsers)

	users, err := queryDocs[user.User](ctx, q, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

// List implements user.Repository.
func (r *userRepository) List(ctx context.Context, filter user.ListFilter, orgID string) ([]user.User, int64, error) {
	q := GetQuerier(ctx, r.db)
	filter.Normalize()

	var conditions []string
	var args []interface{}

	conditions = append(conditions, fmt.Sprintf("data->>'orgId' = $%d", len(args)+1))
	args = append(args, orgID)

	if filter.Role != nil {
		conditions = append(conditions, fmt.Sprintf("data->>'role' = $%d", len(args)+1))
		args = append(args, string(*filter.Role))
	}
	if filter.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("(data->>'isActive')::boolean = $%d", len(args)+1))
		args = append(args, *filter.IsActive)
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(data->>'displayName' ILIKE $%d OR data->>'email' ILIKE $%d)",
			len(args)+1, len(args)+1,
		))
		args = append(args, "%"+filter.Search+"%")
	}

	query := fmt.Sprintf(`
		SELECT data, COUNT(*) OVER()
		FROM %s
		WHERE %s
		ORDER BY data->>'createdAt' ASC, id ASC
		LIMIT $%d OFFSET $%d
	`, collUsers, strings.Join(conditions, " AND "), len(args)+1, len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	users, total, err := queryDocsWithTotal[user.User](ctx, q, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

// Update implements user.Repository.
func (r *userRepository) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	existing, err := getDoc[user.User](ctx, q, collUsers, u.ID)
	if err != nil {
		return fmt.Errorf("failed to load user for update: %w", err)
	}
	if existing == nil {
		return user.ErrUserNotFound
	}

	if err := putDoc(ctx, q, collUsers, u.ID, u); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}
