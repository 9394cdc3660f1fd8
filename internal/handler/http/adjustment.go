package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pulsehq/pulse-backend-go/internal/domain/adjustment"
	"github.com/pulsehq/pulse-backend-go/internal/domain/auth"
	"github.com/pulsehq/pulse-backend-go/internal/domain/user"
	"github.com/pulsehq/pulse-backend-go/internal/handler/http/middleware"
	"github.com/pulsehq/pulse-backend-go/internal/handler/http/response"
)

type AdjustmentHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AdjustmentHandlerImpl struct {
	adjustmentService adjustment.Service
}

func NewAdjustmentHandler(adjustmentService adjustment.Service) AdjustmentHandler {
	return &AdjustmentHandlerImpl{adjustmentService: adjustmentService}
}

// Submit implements AdjustmentHandler.
func (h *AdjustmentHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var createReq adjustment.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Submit adjustment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.UserID = identity.UserID
	createReq.OrgID = identity.OrgID

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	request, err := h.adjustmentService.Submit(r.Context(), createReq)
	if err != nil {
		slog.Error("Submit adjustment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Adjustment request submitted", "requestId", request.ID, "userId", identity.UserID)
	response.Created(w, request)
}

// Get implements AdjustmentHandler.
func (h *AdjustmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	request, err := h.adjustmentService.Get(r.Context(), chi.URLParam(r, "id"), identity.OrgID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if !identity.IsAdmin() && request.UserID != identity.UserID {
		response.HandleError(w, user.ErrAdminPrivilegeRequired)
		return
	}

	response.OK(w, request)
}

// Approve implements AdjustmentHandler.
func (h *AdjustmentHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	request, err := h.adjustmentService.Approve(r.Context(), chi.URLParam(r, "id"), identity.OrgID, identity.UserID)
	if err != nil {
		slog.Error("Approve adjustment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Adjustment request approved", "requestId", request.ID, "approvedBy", identity.UserID)
	response.OK(w, request)
}

// Reject implements AdjustmentHandler.
func (h *AdjustmentHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	request, err := h.adjustmentService.Reject(r.Context(), chi.URLParam(r, "id"), identity.OrgID, identity.UserID)
	if err != nil {
		slog.Error("Reject adjustment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Adjustment request rejected", "requestId", request.ID, "rejectedBy", identity.UserID)
	response.OK(w, request)
}

// Cancel implements AdjustmentHandler.
func (h *AdjustmentHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	request, err := h.adjustmentService.Cancel(r.Context(), chi.URLParam(r, "id"), identity.OrgID, identity.UserID)
	if err != nil {
		slog.Error("Cancel adjustment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, request)
}

// ListMine implements AdjustmentHandler.
func (h *AdjustmentHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	requests, err := h.adjustmentService.ListMine(r.Context(), identity.UserID, identity.OrgID)
	if err != nil {
		slog.Error("List my adjustments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, requests)
}

// List implements AdjustmentHandler.
func (h *AdjustmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	filter := adjustment.ListFilter{
		UserID: r.URL.Query().Get("userId"),
		Page:   queryInt(r, "page", 1),
		Limit:  queryInt(r, "limit", 20),
	}
	if status := r.URL.Query().Get("status"); status != "" {
		parsed := adjustment.RequestStatus(status)
		filter.Status = &parsed
	}
	filter.Normalize()

	requests, total, err := h.adjustmentService.List(r.Context(), filter, identity.OrgID)
	if err != nil {
		slog.Error("List adjustments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OKList(w, requests, response.NewMeta(total, filter.Page, filter.Limit))
}
