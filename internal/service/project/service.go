package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pulsehq/pulse-backend-go/internal/domain/project"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/events"
	"github.com/pulsehq/pulse-backend-go/internal/repository"
)

// orderStep leaves room between consecutive tickets so single drags rarely
// force a full-column rewrite.
const orderStep = 1000

type ProjectServiceImpl struct {
	atomic      repository.Atomic
	projectRepo project.ProjectRepository
	ticketRepo  project.TicketRepository
	bus         *events.Bus
}

func NewProjectService(atomic repository.Atomic, projectRepo project.ProjectRepository, ticketRepo project.TicketRepository, bus *events.Bus) project.Service {
	return &ProjectServiceImpl{
		atomic:      atomic,
		projectRepo: projectRepo,
		ticketRepo:  ticketRepo,
		bus:         bus,
	}
}

// CreateProject implements project.Service.
func (s *ProjectServiceImpl) CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.Project, error) {
	now := time.Now().UTC()
	memberIDs := req.MemberIDs
	if memberIDs == nil {
		memberIDs = []string{}
	}

	p := project.Project{
		ID:          uuid.NewString(),
		OrgID:       req.OrgID,
		Name:        req.Name,
		Description: req.Description,
		MemberIDs:   memberIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.projectRepo.Create(ctx, p)
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

// GetProject implements project.Service.
func (s *ProjectServiceImpl) GetProject(ctx context.Context, id string, orgID string) (project.Project, error) {
	p, err := s.projectRepo.GetByID(ctx, id, orgID)
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to get project: %w", err)
	}
	if p == nil {
		return project.Project{}, project.ErrProjectNotFound
	}
	return *p, nil
}

// ListProjects implements project.Service.
func (s *ProjectServiceImpl) ListProjects(ctx context.Context, filter project.ListFilter, orgID string) ([]project.Project, int64, error) {
	projects, total, err := s.projectRepo.List(ctx, filter, orgID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, total, nil
}

// CreateTicket implements project.Service. New tickets land at the bottom of
// the todo column.
func (s *ProjectServiceImpl) CreateTicket(ctx context.Context, req project.CreateTicketRequest) (project.Ticket, error) {
	p, err := s.projectRepo.GetByID(ctx, req.ProjectID, req.OrgID)
	if err != nil {
		return project.Ticket{}, fmt.Errorf("failed to get project: %w", err)
	}
	if p == nil {
		return project.Ticket{}, project.ErrProjectNotFound
	}

	tickets, err := s.ticketRepo.ListByProject(ctx, req.ProjectID, req.OrgID)
	if err != nil {
		return project.Ticket{}, fmt.Errorf("failed to list tickets: %w", err)
	}
	var maxOrder float64
	for _, t := range tickets {
		if t.Status == project.StatusTodo && t.Order > maxOrder {
			maxOrder = t.Order
		}
	}

	now := time.Now().UTC()
	ticket := project.Ticket{
		ID:          uuid.NewString(),
		OrgID:       req.OrgID,
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		Status:      project.StatusTodo,
		Order:       maxOrder + orderStep,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.ticketRepo.Create(ctx, ticket)
	if err != nil {
		return project.Ticket{}, fmt.Errorf("failed to create ticket: %w", err)
	}
	return created, nil
}

// GetTicket implements project.Service.
func (s *ProjectServiceImpl) GetTicket(ctx context.Context, projectID string, ticketID string, orgID string) (project.Ticket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID, orgID)
	if err != nil {
		return project.Ticket{}, fmt.Errorf("failed to get ticket: %w", err)
	}
	if ticket == nil {
		return project.Ticket{}, project.ErrTicketNotFound
	}
	if ticket.ProjectID != projectID {
		return project.Ticket{}, project.ErrTicketWrongProject
	}
	return *ticket, nil
}

// ListTickets implements project.Service.
func (s *ProjectServiceImpl) ListTickets(ctx context.Context, projectID string, orgID string) ([]project.Ticket, error) {
	tickets, err := s.ticketRepo.ListByProject(ctx, projectID, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}

// MoveTicket implements project.Service. CompletedAt is stamped exactly on
// the transition into done; moving a done ticket elsewhere leaves it alone.
func (s *ProjectServiceImpl) MoveTicket(ctx context.Context, req project.MoveTicketRequest) (project.Ticket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, req.TicketID, req.OrgID)
	if err != nil {
		return project.Ticket{}, fmt.Errorf("failed to get ticket: %w", err)
	}
	if ticket == nil {
		return project.Ticket{}, project.ErrTicketNotFound
	}
	if ticket.ProjectID != req.ProjectID {
		return project.Ticket{}, project.ErrTicketWrongProject
	}

	newStatus := project.TicketStatus(req.Status)
	now := time.Now().UTC()
	completed := newStatus == project.StatusDone && ticket.Status != project.StatusDone

	ticket.Status = newStatus
	ticket.Order = req.Order
	if completed {
		ticket.CompletedAt = &now
	}
	ticket.UpdatedAt = now

	if err := s.ticketRepo.Update(ctx, *ticket); err != nil {
		return project.Ticket{}, fmt.Errorf("failed to update ticket: %w", err)
	}

	if completed {
		s.bus.Publish(events.Event{
			Topic: events.TopicTicketCompleted,
			OrgID: ticket.OrgID,
			Data:  *ticket,
		})
	}
	return *ticket, nil
}

// GetBoard implements project.Service.
func (s *ProjectServiceImpl) GetBoard(ctx context.Context, projectID string, orgID string) (project.Board, error) {
	p, err := s.projectRepo.GetByID(ctx, projectID, orgID)
	if err != nil {
		return project.Board{}, fmt.Errorf("failed to get project: %w", err)
	}
	if p == nil {
		return project.Board{}, project.ErrProjectNotFound
	}

	tickets, err := s.ticketRepo.ListByProject(ctx, projectID, orgID)
	if err != nil {
		return project.Board{}, fmt.Errorf("failed to list tickets: %w", err)
	}

	return BuildBoard(tickets), nil
}

// BuildBoard partitions a project's tickets into the three fixed columns.
// The input is already sorted by order, so each column keeps that order.
func BuildBoard(tickets []project.Ticket) project.Board {
	board := project.Board{
		Todo:       []project.Ticket{},
		InProgress: []project.Ticket{},
		Done:       []project.Ticket{},
	}
	for _, t := range tickets {
		switch t.Status {
		case project.StatusTodo:
			board.Todo = append(board.Todo, t)
		case project.StatusInProgress:
			board.InProgress = append(board.InProgress, t)
		case project.StatusDone:
			board.Done = append(board.Done, t)
		}
	}
	return board
}

// Reorder implements project.Service. A drag can land a ticket in done
// without going through MoveTicket, so transitions into done are detected
// against the prior column and announced the same way.
func (s *ProjectServiceImpl) Reorder(ctx context.Context, req project.ReorderRequest) error {
	p, err := s.projectRepo.GetByID(ctx, req.ProjectID, req.OrgID)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}
	if p == nil {
		return project.ErrProjectNotFound
	}

	tickets, err := s.ticketRepo.ListByProject(ctx, req.ProjectID, req.OrgID)
	if err != nil {
		return fmt.Errorf("failed to list tickets: %w", err)
	}
	prior := make(map[string]project.TicketStatus, len(tickets))
	for _, t := range tickets {
		prior[t.ID] = t.Status
	}

	if err := s.ticketRepo.ApplyOrderUpdates(ctx, req.ProjectID, req.OrgID, req.Updates); err != nil {
		return err
	}

	for _, u := range req.Updates {
		if u.Status != project.StatusDone || prior[u.TicketID] == project.StatusDone {
			continue
		}
		moved, err := s.ticketRepo.GetByID(ctx, u.TicketID, req.OrgID)
		if err != nil {
			return fmt.Errorf("failed to get reordered ticket: %w", err)
		}
		if moved == nil {
			continue
		}
		s.bus.Publish(events.Event{
			Topic: events.TopicTicketCompleted,
			OrgID: moved.OrgID,
			Data:  *moved,
		})
	}
	return nil
}

// BulkDeleteTickets implements project.Service.
func (s *ProjectServiceImpl) BulkDeleteTickets(ctx context.Context, req project.BulkDeleteTicketsRequest) error {
	p, err := s.projectRepo.GetByID(ctx, req.ProjectID, req.OrgID)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}
	if p == nil {
		return project.ErrProjectNotFound
	}

	if err := s.ticketRepo.DeleteMany(ctx, req.ProjectID, req.OrgID, req.IDs); err != nil {
		return err
	}
	return nil
}
