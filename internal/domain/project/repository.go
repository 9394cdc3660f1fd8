package project

import "context"

// ProjectRepository defines data access for project documents.
type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string, orgID string) (*Project, error)
	List(ctx context.Context, filter ListFilter, orgID string) ([]Project, int64, error)
	Update(ctx context.Context, p Project) error
}

// TicketRepository defines data access for ticket documents.
type TicketRepository interface {
	Create(ctx context.Context, t Ticket) (Ticket, error)
	GetByID(ctx context.Context, id string, orgID string) (*Ticket, error)

	// ListByProject retrieves all tickets of a project as a flat list
	ListByProject(ctx context.Context, projectID string, orgID string) ([]Ticket, error)

	Update(ctx context.Context, t Ticket) error

	// ApplyOrderUpdates applies a reorder batch as one atomic write
	ApplyOrderUpdates(ctx context.Context, projectID string, orgID string, updates []OrderUpdate) error

	// DeleteMany removes a set of tickets from a project in one call
	DeleteMany(ctx context.Context, projectID string, orgID string, ids []string) error
}
