package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/pulsehq/pulse-backend-go/internal/domain/org"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/database"
)

type orgRepository struct {
	db *database.DB
}

func NewOrgRepository(db *database.DB) org.Repository {
	return &orgRepository{db: db}
}

// Create implements org.Repository.
func (r *orgRepository) Create(ctx context.Context, o org.Org) (org.Org, error) {
	q := GetQuerier(ctx, r.db)
	if err := putDoc(ctx, q, collOrgs, o.ID, o); err != nil {
		return org.Org{}, fmt.Errorf("failed to create org: %w", err)
	}
	return o, nil
}

// GetByID implements org.Repository.
func (r *orgRepository) GetByID(ctx context.Context, id string) (*org.Org, error) {
	q := GetQuerier(ctx, r.db)

	o, err := getDoc[org.Org](ctx, q, collOrgs, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get org by id: %w", err)
	}
	return o, nil
}

// GetBySlug implements org.Repository.
func (r *orgRepository) GetBySlug(ctx context.Context, slug string) (*org.Org, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT data FROM %s
		WHERE data->>'slug' = $1
		LIMIT 1
	`, collOrgs)

	orgs, err := queryDocs[org.Org](ctx, q, query, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get org by slug: %w", err)
	}
	if len(orgs) == 0 {
		return nil, nil
	}
	return &orgs[0], nil
}

// List implements org.Repository.
func (r *orgRepository) List(ctx context.Context, filter org.ListFilter) ([]org.Org, int64, error) {
	q := GetQuerier(ctx, r.db)
	filter.Normalize()

	var conditions []string
	var args []interface{}

	conditions = append(conditions, "TRUE")
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(data->>'name' ILIKE $%d OR data->>'slug' ILIKE $%d)",
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
	`, collOrgs, strings.Join(conditions, " AND "), len(args)+1, len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	orgs, total, err := queryDocsWithTotal[org.Org](ctx, q, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orgs: %w", err)
	}
	return orgs, total, nil
}

// Update implements org.Repository.
func (r *orgRepository) Update(ctx context.Context, o org.Org) error {
	q := GetQuerier(ctx, r.db)

	existing, err := getDoc[org.Org](ctx, q, collOrgs, o.ID)
	if err != nil {
		return fmt.Errorf("failed to load org for update: %w", err)
	}
	if existing == nil {
		return org.ErrOrgNotFound
	}

	if err := putDoc(ctx, q, collOrgs, o.ID, o); err != nil {
		return fmt.Errorf("failed to update org: %w", err)
	}
	return nil
}
