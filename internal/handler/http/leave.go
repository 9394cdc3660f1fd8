package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pulsehq/pulse-backend-go/internal/domain/auth"
	"github.com/pulsehq/pulse-backend-go/internal/domain/leave"
	"github.com/pulsehq/pulse-backend-go/internal/domain/user"
	"github.com/pulsehq/pulse-backend-go/internal/handler/http/middleware"
	"github.com/pulsehq/pulse-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Balances(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Submit implements LeaveHandler.
func (h *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var createReq leave.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Submit leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.UserID = identity.UserID
	createReq.OrgID = identity.OrgID

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	request, err := h.leaveService.Submit(r.Context(), createReq)
	if err != nil {
		slog.Error("Submit leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request submitted", "requestId", request.ID, "userId", identity.UserID)
	response.Created(w, request)
}

// Get implements LeaveHandler.
func (h *LeaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	request, err := h.leaveService.Get(r.Context(), chi.URLParam(r, "id"), identity.OrgID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Non-admins only see their own requests.
	if !identity.IsAdmin() && request.UserID != identity.UserID {
		response.HandleError(w, user.ErrAdminPrivilegeRequired)
		return
	}

	response.OK(w, request)
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	request, err := h.leaveService.Approve(r.Context(), leave.ResolveRequestRequest{
		ID:         chi.URLParam(r, "id"),
		OrgID:      identity.OrgID,
		ResolvedBy: identity.UserID,
	})
	if err != nil {
		slog.Error("Approve leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request approved", "requestId", request.ID, "approvedBy", identity.UserID)
	response.OK(w, request)
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	request, err := h.leaveService.Reject(r.Context(), leave.ResolveRequestRequest{
		ID:         chi.URLParam(r, "id"),
		OrgID:      identity.OrgID,
		ResolvedBy: identity.UserID,
	})
	if err != nil {
		slog.Error("Reject leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request rejected", "requestId", request.ID, "rejectedBy", identity.UserID)
	response.OK(w, request)
}

// Cancel implements LeaveHandler.
func (h *LeaveHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	request, err := h.leaveService.Cancel(r.Context(), chi.URLParam(r, "id"), identity.OrgID, identity.UserID)
	if err != nil {
		slog.Error("Cancel leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, request)
}

// Balances implements LeaveHandler.
func (h *LeaveHandlerImpl) Balances(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	// Admins may inspect any user's balances.
	userID := identity.UserID
	if requested := r.URL.Query().Get("userId"); requested != "" && identity.IsAdmin() {
		userID = requested
	}

	balances, err := h.leaveService.Balances(r.Context(), userID, identity.OrgID)
	if err != nil {
		slog.Error("Leave balances service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, balances)
}

// ListMine implements LeaveHandler.
func (h *LeaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	requests, err := h.leaveService.ListMine(r.Context(), identity.UserID, identity.OrgID)
	if err != nil {
		slog.Error("List my leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, requests)
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	filter := leave.ListFilter{
		UserID: r.URL.Query().Get("userId"),
		Page:   queryInt(r, "page", 1),
		Limit:  queryInt(r, "limit", 20),
	}
	if status := r.URL.Query().Get("status"); status != "" {
		parsed := leave.RequestStatus(status)
		filter.Status = &parsed
	}
	if kind := r.URL.Query().Get("kind"); kind != "" {
		parsed := user.LeaveKind(kind)
		filter.Kind = &parsed
	}
	filter.Normalize()

	requests, total, err := h.leaveService.List(r.Context(), filter, identity.OrgID)
	if err != nil {
		slog.Error("List leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OKList(w, requests, response.NewMeta(total, filter.Page, filter.Limit))
}
