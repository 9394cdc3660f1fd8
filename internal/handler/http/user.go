package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pulsehq/pulse-backend-go/internal/domain/auth"
	"github.com/pulsehq/pulse-backend-go/internal/domain/user"
	"github.com/pulsehq/pulse-backend-go/internal/handler/http/middleware"
	"github.com/pulsehq/pulse-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	SetActivation(w http.ResponseWriter, r *http.Request)
	ResetQuotas(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// Create implements UserHandler.
func (h *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var createReq user.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.OrgID = identity.OrgID
	createReq.CreatedBy = identity.UserID

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.userService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User created", "userId", created.ID, "createdBy", identity.UserID)
	response.Created(w, created)
}

// List implements UserHandler.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	filter := user.ListFilter{
		Search:   r.URL.Query().Get("search"),
		IsActive: queryBool(r, "isActive"),
		Page:     queryInt(r, "page", 1),
		Limit:    queryInt(r, "limit", 20),
	}
	if role := r.URL.Query().Get("role"); role != "" {
		parsed := user.Role(role)
		filter.Role = &parsed
	}
	filter.Normalize()

	users, total, err := h.userService.List(r.Context(), filter, identity.OrgID)
	if err != nil {
		slog.Error("List users service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OKList(w, users, response.NewMeta(total, filter.Page, filter.Limit))
}

// Get implements UserHandler.
func (h *UserHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	userData, err := h.userService.Get(r.Context(), chi.URLParam(r, "id"), identity.OrgID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, userData)
}

// Update implements UserHandler.
func (h *UserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var updateReq user.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")
	updateReq.OrgID = identity.OrgID

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.userService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, updated)
}

// SetActivation implements UserHandler.
func (h *UserHandlerImpl) SetActivation(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var body struct {
		IsActive *bool `json:"isActive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.IsActive == nil {
		response.BadRequest(w, "isActive is required", nil)
		return
	}

	updated, err := h.userService.SetActive(r.Context(), chi.URLParam(r, "id"), identity.OrgID, *body.IsActive)
	if err != nil {
		slog.Error("Set activation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User activation changed", "userId", updated.ID, "isActive", *body.IsActive)
	response.OK(w, updated)
}

// ResetQuotas implements UserHandler.
func (h *UserHandlerImpl) ResetQuotas(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	updated, err := h.userService.ResetQuotas(r.Context(), chi.URLParam(r, "id"), identity.OrgID)
	if err != nil {
		slog.Error("Reset quotas service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, updated)
}
