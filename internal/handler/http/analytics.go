package http

import (
	"log/slog"
	"net/http"

	"github.com/pulsehq/pulse-backend-go/internal/domain/analytics"
	"github.com/pulsehq/pulse-backend-go/internal/domain/auth"
	"github.com/pulsehq/pulse-backend-go/internal/handler/http/middleware"
	"github.com/pulsehq/pulse-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandlerImpl struct {
	analyticsService analytics.Service
}

func NewAnalyticsHandler(analyticsService analytics.Service) AnalyticsHandler {
	return &AnalyticsHandlerImpl{analyticsService: analyticsService}
}

// Summary implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	summary, err := h.analyticsService.Summarize(r.Context(), identity.OrgID, analytics.SummaryFilter{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	})
	if err != nil {
		slog.Error("Analytics summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, summary)
}
