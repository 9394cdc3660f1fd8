package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pulsehq/pulse-backend-go/internal/domain/auth"
	"github.com/pulsehq/pulse-backend-go/internal/domain/org"
	"github.com/pulsehq/pulse-backend-go/internal/handler/http/middleware"
	"github.com/pulsehq/pulse-backend-go/internal/handler/http/response"
)

type OrgHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type OrgHandlerImpl struct {
	orgService org.Service
}

func NewOrgHandler(orgService org.Service) OrgHandler {
	return &OrgHandlerImpl{orgService: orgService}
}

// Create implements OrgHandler.
func (h *OrgHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var createReq org.CreateOrgRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create org decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.OwnerID = identity.UserID

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.orgService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create org service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Org created", "orgId", created.ID, "slug", created.Slug)
	response.Created(w, created)
}

// List implements OrgHandler.
func (h *OrgHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := org.ListFilter{
		Search: r.URL.Query().Get("search"),
		Page:   queryInt(r, "page", 1),
		Limit:  queryInt(r, "limit", 20),
	}
	filter.Normalize()

	orgs, total, err := h.orgService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List orgs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OKList(w, orgs, response.NewMeta(total, filter.Page, filter.Limit))
}

// Get implements OrgHandler.
func (h *OrgHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	o, err := h.orgService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, o)
}

// Update implements OrgHandler.
func (h *OrgHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq org.UpdateOrgRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update org decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.orgService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update org service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Org updated", "orgId", updated.ID)
	response.OK(w, updated)
}
