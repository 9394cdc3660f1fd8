package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pulsehq/pulse-backend-go/internal/domain/auth"
	"github.com/pulsehq/pulse-backend-go/internal/domain/project"
	"github.com/pulsehq/pulse-backend-go/internal/handler/http/middleware"
	"github.com/pulsehq/pulse-backend-go/internal/handler/http/response"
)

type ProjectHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	CreateTicket(w http.ResponseWriter, r *http.Request)
	ListTickets(w http.ResponseWriter, r *http.Request)
	GetTicket(w http.ResponseWriter, r *http.Request)
	MoveTicket(w http.ResponseWriter, r *http.Request)
	GetBoard(w http.ResponseWriter, r *http.Request)
	Reorder(w http.ResponseWriter, r *http.Request)
	BulkDeleteTickets(w http.ResponseWriter, r *http.Request)
}

type ProjectHandlerImpl struct {
	projectService project.Service
}

func NewProjectHandler(projectService project.Service) ProjectHandler {
	return &ProjectHandlerImpl{projectService: projectService}
}

// Create implements ProjectHandler.
func (h *ProjectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var createReq project.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create project decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.OrgID = identity.OrgID

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.projectService.CreateProject(r.Context(), createReq)
	if err != nil {
		slog.Error("Create project service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Project created", "projectId", created.ID)
	response.Created(w, created)
}

// List implements ProjectHandler.
func (h *ProjectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	filter := project.ListFilter{
		Search: r.URL.Query().Get("search"),
		Page:   queryInt(r, "page", 1),
		Limit:  queryInt(r, "limit", 20),
	}
	filter.Normalize()

	projects, total, err := h.projectService.ListProjects(r.Context(), filter, identity.OrgID)
	if err != nil {
		slog.Error("List projects service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OKList(w, projects, response.NewMeta(total, filter.Page, filter.Limit))
}

// Get implements ProjectHandler.
func (h *ProjectHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	p, err := h.projectService.GetProject(r.Context(), chi.URLParam(r, "id"), identity.OrgID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, p)
}

// CreateTicket implements ProjectHandler.
func (h *ProjectHandlerImpl) CreateTicket(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var createReq project.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create ticket decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.OrgID = identity.OrgID
	createReq.ProjectID = chi.URLParam(r, "id")

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.projectService.CreateTicket(r.Context(), createReq)
	if err != nil {
		slog.Error("Create ticket service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Ticket created", "ticketId", created.ID, "projectId", created.ProjectID)
	response.Created(w, created)
}

// ListTickets implements ProjectHandler.
func (h *ProjectHandlerImpl) ListTickets(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	tickets, err := h.projectService.ListTickets(r.Context(), chi.URLParam(r, "id"), identity.OrgID)
	if err != nil {
		slog.Error("List tickets service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, tickets)
}

// GetTicket implements ProjectHandler.
func (h *ProjectHandlerImpl) GetTicket(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	ticket, err := h.projectService.GetTicket(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "ticketId"), identity.OrgID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, ticket)
}

// MoveTicket implements ProjectHandler.
func (h *ProjectHandlerImpl) MoveTicket(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var moveReq project.MoveTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&moveReq); err != nil {
		slog.Error("Move ticket decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	moveReq.OrgID = identity.OrgID
	moveReq.ProjectID = chi.URLParam(r, "id")
	moveReq.TicketID = chi.URLParam(r, "ticketId")

	if err := moveReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	ticket, err := h.projectService.MoveTicket(r.Context(), moveReq)
	if err != nil {
		slog.Error("Move ticket service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Ticket moved", "ticketId", ticket.ID, "status", ticket.Status)
	response.OK(w, ticket)
}

// GetBoard implements ProjectHandler.
func (h *ProjectHandlerImpl) GetBoard(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	board, err := h.projectService.GetBoard(r.Context(), chi.URLParam(r, "id"), identity.OrgID)
	if err != nil {
		slog.Error("Get board service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, board)
}

// Reorder implements ProjectHandler.
func (h *ProjectHandlerImpl) Reorder(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var reorderReq project.ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&reorderReq); err != nil {
		slog.Error("Reorder decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	reorderReq.OrgID = identity.OrgID
	reorderReq.ProjectID = chi.URLParam(r, "id")

	if err := reorderReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.projectService.Reorder(r.Context(), reorderReq); err != nil {
		slog.Error("Reorder service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}

// BulkDeleteTickets implements ProjectHandler.
func (h *ProjectHandlerImpl) BulkDeleteTickets(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var deleteReq project.BulkDeleteTicketsRequest
	if err := json.NewDecoder(r.Body).Decode(&deleteReq); err != nil {
		slog.Error("Bulk delete decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	deleteReq.OrgID = identity.OrgID
	deleteReq.ProjectID = chi.URLParam(r, "id")

	if err := deleteReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.projectService.BulkDeleteTickets(r.Context(), deleteReq); err != nil {
		slog.Error("Bulk delete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Tickets deleted", "projectId", deleteReq.ProjectID, "count", len(deleteReq.IDs))
	response.NoContent(w)
}
