package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/pulsehq/pulse-backend-go/internal/domain/attendance"
	"github.com/pulsehq/pulse-backend-go/internal/domain/auth"
	"github.com/pulsehq/pulse-backend-go/internal/handler/http/middleware"
	"github.com/pulsehq/pulse-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetDay(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var checkInReq attendance.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&checkInReq); err != nil {
		slog.Error("Check-in decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	checkInReq.UserID = identity.UserID
	checkInReq.OrgID = identity.OrgID
	if checkInReq.Date == "" {
		checkInReq.Date = time.Now().UTC().Format("2006-01-02")
	}

	if err := checkInReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.CheckIn(r.Context(), checkInReq)
	if err != nil {
		slog.Error("Check-in service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User checked in", "userId", identity.UserID, "date", checkInReq.Date)
	response.Created(w, record)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var checkOutReq attendance.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&checkOutReq); err != nil {
		slog.Error("Check-out decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	checkOutReq.UserID = identity.UserID
	checkOutReq.OrgID = identity.OrgID
	if checkOutReq.Date == "" {
		checkOutReq.Date = time.Now().UTC().Format("2006-01-02")
	}

	if err := checkOutReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.CheckOut(r.Context(), checkOutReq)
	if err != nil {
		slog.Error("Check-out service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User checked out", "userId", identity.UserID, "date", checkOutReq.Date)
	response.OK(w, record)
}

// GetDay implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetDay(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	record, err := h.attendanceService.GetDay(r.Context(), identity.UserID, date, identity.OrgID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, record)
}

// ListMine implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	records, err := h.attendanceService.ListMine(r.Context(), identity.UserID,
		r.URL.Query().Get("from"), r.URL.Query().Get("to"), identity.OrgID)
	if err != nil {
		slog.Error("List my attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, records)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	filter := attendance.ListFilter{
		UserID: r.URL.Query().Get("userId"),
		From:   r.URL.Query().Get("from"),
		To:     r.URL.Query().Get("to"),
		Page:   queryInt(r, "page", 1),
		Limit:  queryInt(r, "limit", 20),
	}
	if status := r.URL.Query().Get("status"); status != "" {
		parsed := attendance.Status(status)
		filter.Status = &parsed
	}
	filter.Normalize()

	records, total, err := h.attendanceService.List(r.Context(), filter, identity.OrgID)
	if err != nil {
		slog.Error("List attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OKList(w, records, response.NewMeta(total, filter.Page, filter.Limit))
}
