package document

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pulsehq/pulse-backend-go/internal/domain/project"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/database"
)

type projectRepository struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepository{db: db}
}

// Create implements project.ProjectRepository.
func (r *projectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)
	if err := putDoc(ctx, q, collProjects, p.ID, p); err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

// GetByID implements project.ProjectRepository.
func (r *projectRepository) GetByID(ctx context.Context, id string, orgID string) (*project.Project, error) {
	q := GetQuerier(ctx, r.db)

	p, err := getDoc[project.Project](ctx, q, collProjects, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get project by id: %w", err)
	}
	if p == nil || p.OrgID != orgID {
		return nil, nil
	}
	return p, nil
}

// List implements project.ProjectRepository.
func (r *projectRepository) List(ctx context.Context, filter project.ListFilter, orgID string) ([]project.Project, int64, error) {
	q := GetQuerier(ctx, r.db)
	filter.Normalize()

	conditions := []string{"data->>'orgId' = $1"}
	args := []interface{}{orgID}

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("data->>'name' ILIKE $%d", len(args)+1))
		args = append(args, "%"+filter.Search+"%")
	}

	query := fmt.Sprintf(`
		SELECT data, COUNT(*) OVER()
		FROM %s
		WHERE %s
		ORDER BY data->>'createdAt' ASC, id ASC
		LIMIT $%d OFFSET $%d
	`, collProjects, strings.Join(conditions, " AND "), len(args)+1, len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	projects, total, err := queryDocsWithTotal[project.Project](ctx, q, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, total, nil
}

// Update implements project.ProjectRepository.
func (r *projectRepository) Update(ctx context.Context, p project.Project) error {
	q := GetQuerier(ctx, r.db)

	existing, err := getDoc[project.Project](ctx, q, collProjects, p.ID)
	if err != nil {
		return fmt.Errorf("failed to load project for update: %w", err)
	}
	if existing == nil {
		return project.ErrProjectNotFound
	}

	if err := putDoc(ctx, q, collProjects, p.ID, p); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

type ticketRepository struct {
	db *database.DB
}

func NewTicketRepository(db *database.DB) project.TicketRepository {
	return &ticketRepository{db: db}
}

// Create implements project.TicketRepository.
func (r *ticketRepository) Create(ctx context.Context, t project.Ticket) (project.Ticket, error) {
	q := GetQuerier(ctx, r.db)
	if err := putDoc(ctx, q, collTickets, t.ID, t); err != nil {
		return project.Ticket{}, fmt.Errorf("failed to create ticket: %w", err)
	}
	return t, nil
}

// GetByID implements project.TicketRepository.
func (r *ticketRepository) GetByID(ctx context.Context, id string, orgID string) (*project.Ticket, error) {
	q := GetQuerier(ctx, r.db)

	t, err := getDoc[project.Ticket](ctx, q, collTickets, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket by id: %w", err)
	}
	if t == nil || t.OrgID != orgID {
		return nil, nil
	}
	return t, nil
}

// ListByProject implements project.TicketRepository.
func (r *ticketRepository) ListByProject(ctx context.Context, projectID string, orgID string) ([]project.Ticket, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT data FROM %s
		WHERE data->>'projectId' = $1 AND data->>'orgId' = $2
		ORDER BY (data->>'order')::float8 ASC, id ASC
	`, collTickets)

	tickets, err := queryDocs[project.Ticket](ctx, q, query, projectID, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets by project: %w", err)
	}
	return tickets, nil
}

// Update implements project.TicketRepository.
func (r *ticketRepository) Update(ctx context.Context, t project.Ticket) error {
	q := GetQuerier(ctx, r.db)

	existing, err := getDoc[project.Ticket](ctx, q, collTickets, t.ID)
	if err != nil {
		return fmt.Errorf("failed to load ticket for update: %w", err)
	}
	if existing == nil {
		return project.ErrTicketNotFound
	}

	if err := putDoc(ctx, q, collTickets, t.ID, t); err != nil {
		return fmt.Errorf("failed to update ticket: %w", err)
	}
	return nil
}

// ApplyOrderUpdates implements project.TicketRepository. The whole batch is
// submitted inside one transaction so a reorder is all-or-nothing.
func (r *ticketRepository) ApplyOrderUpdates(ctx context.Context, projectID string, orgID string, updates []project.OrderUpdate) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		now := time.Now()
		for _, u := range updates {
			t, err := getDoc[project.Ticket](ctx, tx, collTickets, u.TicketID)
			if err != nil {
				return fmt.Errorf("failed to load ticket %s: %w", u.TicketID, err)
			}
			if t == nil || t.OrgID != orgID {
				return project.ErrTicketNotFound
			}
			if t.ProjectID != projectID {
				return project.ErrTicketWrongProject
			}

			if u.Status == project.StatusDone && t.Status != project.StatusDone {
				completedAt := now
				t.CompletedAt = &completedAt
			}
			t.Status = u.Status
			t.Order = u.Order
			t.UpdatedAt = now

			if err := putDoc(ctx, tx, collTickets, t.ID, t); err != nil {
				return fmt.Errorf("failed to apply order update for %s: %w", t.ID, err)
			}
		}
		return nil
	})
}

// DeleteMany implements project.TicketRepository.
func (r *ticketRepository) DeleteMany(ctx context.Context, projectID string, orgID string, ids []string) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = ANY($1)
		  AND data->>'projectId' = $2
		  AND data->>'orgId' = $3
	`, collTickets)

	if _, err := q.Exec(ctx, query, ids, projectID, orgID); err != nil {
		return fmt.Errorf("failed to delete tickets: %w", err)
	}
	return nil
}
