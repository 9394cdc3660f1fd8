package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pulsehq/pulse-backend-go/internal/domain/badge"
	"github.com/pulsehq/pulse-backend-go/internal/handler/http/response"
)

type BadgeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type BadgeHandlerImpl struct {
	badgeService badge.Service
}

func NewBadgeHandler(badgeService badge.Service) BadgeHandler {
	return &BadgeHandlerImpl{badgeService: badgeService}
}

// List implements BadgeHandler.
func (h *BadgeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := badge.ListFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
		Page:     queryInt(r, "page", 1),
		Limit:    queryInt(r, "limit", 20),
	}
	filter.Normalize()

	badges, total, err := h.badgeService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List badges service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OKList(w, badges, response.NewMeta(total, filter.Page, filter.Limit))
}

// Get implements BadgeHandler.
func (h *BadgeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.badgeService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, b)
}
