package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/pulsehq/pulse-backend-go/internal/domain/auth"
	"github.com/pulsehq/pulse-backend-go/internal/domain/dailylog"
	"github.com/pulsehq/pulse-backend-go/internal/handler/http/middleware"
	"github.com/pulsehq/pulse-backend-go/internal/handler/http/response"
)

type DailyLogHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	AddManualTask(w http.ResponseWriter, r *http.Request)
}

type DailyLogHandlerImpl struct {
	logService dailylog.Service
}

func NewDailyLogHandler(logService dailylog.Service) DailyLogHandler {
	return &DailyLogHandlerImpl{logService: logService}
}

// Get implements DailyLogHandler.
func (h *DailyLogHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	// Admins may read another user's log.
	userID := identity.UserID
	if requested := r.URL.Query().Get("userId"); requested != "" && identity.IsAdmin() {
		userID = requested
	}

	log, err := h.logService.Get(r.Context(), userID, date, identity.OrgID)
	if err != nil {
		slog.Error("Get daily log service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, log)
}

// ListMine implements DailyLogHandler.
func (h *DailyLogHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	logs, err := h.logService.ListMine(r.Context(), identity.UserID,
		r.URL.Query().Get("from"), r.URL.Query().Get("to"), identity.OrgID)
	if err != nil {
		slog.Error("List my daily logs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, logs)
}

// AddManualTask implements DailyLogHandler.
func (h *DailyLogHandlerImpl) AddManualTask(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var taskReq dailylog.AddManualTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&taskReq); err != nil {
		slog.Error("Add manual task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	taskReq.UserID = identity.UserID
	taskReq.OrgID = identity.OrgID
	if taskReq.Date == "" {
		taskReq.Date = time.Now().UTC().Format("2006-01-02")
	}

	if err := taskReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	log, err := h.logService.AddManualTask(r.Context(), taskReq)
	if err != nil {
		slog.Error("Add manual task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, log)
}
