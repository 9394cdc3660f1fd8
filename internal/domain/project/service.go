package project

import (
	"context"
)

type Service interface {
	// Project
	CreateProject(ctx context.Context, req CreateProjectRequest) (Project, error)
	GetProject(ctx context.Context, id string, orgID string) (Project, error)
	ListProjects(ctx context.Context, filter ListFilter, orgID string) ([]Project, int64, error)

	// Ticket
	CreateTicket(ctx context.Context, req CreateTicketRequest) (Ticket, error)
	GetTicket(ctx context.Context, projectID string, ticketID string, orgID string) (Ticket, error)
	ListTickets(ctx context.Context, projectID string, orgID string) ([]Ticket, error)

	// MoveTicket changes a ticket's column and order. Moving to done stamps
	// CompletedAt and notifies the daily log of the assignee.
	MoveTicket(ctx context.Context, req MoveTicketRequest) (Ticket, error)

	// GetBoard projects the project's tickets into the three fixed columns
	GetBoard(ctx context.Context, projectID string, orgID string) (Board, error)

	// Reorder applies a drag-ordering batch as one atomic write
	Reorder(ctx context.Context, req ReorderRequest) error

	// BulkDeleteTickets removes a set of tickets in one call
	BulkDeleteTickets(ctx context.Context, req BulkDeleteTicketsRequest) error
}
