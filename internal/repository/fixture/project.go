package fixture

import (
	"context"
	"strings"
	"time"

	"github.com/pulsehq/pulse-backend-go/internal/domain/project"
)

type projectRepository struct {
	store *Store
}

func NewProjectRepository(store *Store) project.ProjectRepository {
	return &projectRepository{store: store}
}

func copyProject(p project.Project) project.Project {
	out := p
	out.MemberIDs = append([]string(nil), p.MemberIDs...)
	return out
}

// Create implements project.ProjectRepository.
func (r *projectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	if err := r.store.simulate(ctx); err != nil {
		return project.Project{}, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.projects[p.ID] = copyProject(p)
	return p, nil
}

// GetByID implements project.ProjectRepository.
func (r *projectRepository) GetByID(ctx context.Context, id string, orgID string) (*project.Project, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	p, ok := r.store.projects[id]
	if !ok || p.OrgID != orgID {
		return nil, nil
	}
	out := copyProject(p)
	return &out, nil
}

// List implements project.ProjectRepository.
func (r *projectRepository) List(ctx context.Context, filter project.ListFilter, orgID string) ([]project.Project, int64, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, 0, err
	}
	filter.Normalize()

	r.store.mu.RLock()
	matched := make([]project.Project, 0)
	for _, p := range r.store.projects {
		if p.OrgID != orgID {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, copyProject(p))
	}
	r.store.mu.RUnlock()

	sortStable(matched, func(a, b project.Project) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	total := int64(len(matched))
	return paginate(matched, filter.Page, filter.Limit), total, nil
}

// Update implements project.ProjectRepository.
func (r *projectRepository) Update(ctx context.Context, p project.Project) error {
	if err := r.store.simulate(ctx); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.projects[p.ID]; !ok {
		return project.ErrProjectNotFound
	}
	r.store.projects[p.ID] = copyProject(p)
	return nil
}

type ticketRepository struct {
	store *Store
}

func NewTicketRepository(store *Store) project.TicketRepository {
	return &ticketRepository{store: store}
}

// Create implements project.TicketRepository.
func (r *ticketRepository) Create(ctx context.Context, t project.Ticket) (project.Ticket, error) {
	if err := r.store.simulate(ctx); err != nil {
		return project.Ticket{}, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.tickets[t.ID] = t
	return t, nil
}

// GetByID implements project.TicketRepository.
func (r *ticketRepository) GetByID(ctx context.Context, id string, orgID string) (*project.Ticket, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	t, ok := r.store.tickets[id]
	if !ok || t.OrgID != orgID {
		return nil, nil
	}
	out := t
	return &out, nil
}

// ListByProject implements project.TicketRepository.
func (r *ticketRepository) ListByProject(ctx context.Context, projectID string, orgID string) ([]project.Ticket, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	matched := make([]project.Ticket, 0)
	for _, t := range r.store.tickets {
		if t.ProjectID == projectID && t.OrgID == orgID {
			matched = append(matched, t)
		}
	}
	r.store.mu.RUnlock()

	sortStable(matched, func(a, b project.Ticket) bool {
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.ID < b.ID
	})
	return matched, nil
}

// Update implements project.TicketRepository. Status updates are a
// synthetic failure point in mock mode.
func (r *ticketRepository) Update(ctx context.Context, t project.Ticket) error {
	if err := r.store.simulate(ctx); err != nil {
		return err
	}
	if err := r.store.inj.Fail(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.tickets[t.ID]; !ok {
		return project.ErrTicketNotFound
	}
	r.store.tickets[t.ID] = t
	return nil
}

// ApplyOrderUpdates implements project.TicketRepository. The batch is
// applied under one lock hold: either all updates land or none do.
func (r *ticketRepository) ApplyOrderUpdates(ctx context.Context, projectID string, orgID string, updates []project.OrderUpdate) error {
	if err := r.store.simulate(ctx); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// Validate the whole batch before touching anything.
	for _, u := range updates {
		t, ok := r.store.tickets[u.TicketID]
		if !ok || t.OrgID != orgID {
			return project.ErrTicketNotFound
		}
		if t.ProjectID != projectID {
			return project.ErrTicketWrongProject
		}
	}

	now := time.Now()
	for _, u := range updates {
		t := r.store.tickets[u.TicketID]
		if u.Status == project.StatusDone && t.Status != project.StatusDone {
			completedAt := now
			t.CompletedAt = &completedAt
		}
		t.Status = u.Status
		t.Order = u.Order
		t.UpdatedAt = now
		r.store.tickets[u.TicketID] = t
	}
	return nil
}

// DeleteMany implements project.TicketRepository. Bulk deletes are a
// synthetic failure point in mock mode.
func (r *ticketRepository) DeleteMany(ctx context.Context, projectID string, orgID string, ids []string) error {
	if err := r.store.simulate(ctx); err != nil {
		return err
	}
	if err := r.store.inj.Fail(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, id := range ids {
		t, ok := r.store.tickets[id]
		if !ok || t.OrgID != orgID || t.ProjectID != projectID {
			continue
		}
		delete(r.store.tickets, id)
	}
	return nil
}
