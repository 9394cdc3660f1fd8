package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsehq/pulse-backend-go/internal/config"
	"github.com/pulsehq/pulse-backend-go/internal/fixtures"
	"github.com/pulsehq/pulse-backend-go/internal/handler/http/middleware"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/events"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/faults"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/jwt"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/oauth"
	"github.com/pulsehq/pulse-backend-go/internal/repository/fixture"
	adjustmentService "github.com/pulsehq/pulse-backend-go/internal/service/adjustment"
	analyticsService "github.com/pulsehq/pulse-backend-go/internal/service/analytics"
	attendanceService "github.com/pulsehq/pulse-backend-go/internal/service/attendance"
	authService "github.com/pulsehq/pulse-backend-go/internal/service/auth"
	badgeService "github.com/pulsehq/pulse-backend-go/internal/service/badge"
	dailylogService "github.com/pulsehq/pulse-backend-go/internal/service/dailylog"
	leaveService "github.com/pulsehq/pulse-backend-go/internal/service/leave"
	orgService "github.com/pulsehq/pulse-backend-go/internal/service/org"
	projectService "github.com/pulsehq/pulse-backend-go/internal/service/project"
	userService "github.com/pulsehq/pulse-backend-go/internal/service/user"
)

const (
	handlerTestSecret     = "test-secret-key-for-jwt"
	handlerTestAccessExp  = "1h"
	handlerTestRefreshExp = "24h"
)

// newTestRouter wires the whole API over the fixture store, the same shape
// main builds in fixture mode.
func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	store := fixture.NewStore(faults.Disabled())
	orgRepo := fixture.NewOrgRepository(store)
	userRepo := fixture.NewUserRepository(store)
	attendanceRepo := fixture.NewAttendanceRepository(store)
	leaveRepo := fixture.NewLeaveRepository(store)
	projectRepo := fixture.NewProjectRepository(store)
	ticketRepo := fixture.NewTicketRepository(store)
	logRepo := fixture.NewDailyLogRepository(store)
	adjustmentRepo := fixture.NewAdjustmentRepository(store)
	badgeRepo := fixture.NewBadgeRepository(store)

	jwtService := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp)
	googleService := oauth.NewGoogleService("client-id", "client-secret", "http://localhost/callback", []string{"email"})
	bus := events.NewBus()

	orgSvc := orgService.NewOrgService(orgRepo)
	userSvc := userService.NewUserService(userRepo)
	authSvc := authService.NewAuthService(store, userRepo, orgRepo, jwtService, googleService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo, orgRepo, leaveRepo)
	leaveSvc := leaveService.NewLeaveService(store, leaveRepo, userRepo, bus)
	projectSvc := projectService.NewProjectService(store, projectRepo, ticketRepo, bus)
	dailylogSvc := dailylogService.NewDailyLogService(logRepo, bus, slog.Default())
	adjustmentSvc := adjustmentService.NewAdjustmentService(store, adjustmentRepo, attendanceRepo, bus)
	badgeSvc := badgeService.NewBadgeService(badgeRepo)
	analyticsSvc := analyticsService.NewAnalyticsService(userRepo, attendanceRepo, leaveRepo, adjustmentRepo, projectRepo, ticketRepo)

	handlers := Handlers{
		Auth:       NewAuthHandler(jwtService, authSvc, userSvc, googleService),
		User:       NewUserHandler(userSvc),
		Org:        NewOrgHandler(orgSvc),
		Badge:      NewBadgeHandler(badgeSvc),
		Analytics:  NewAnalyticsHandler(analyticsSvc),
		Attendance: NewAttendanceHandler(attendanceSvc),
		Leave:      NewLeaveHandler(leaveSvc),
		Project:    NewProjectHandler(projectSvc),
		DailyLog:   NewDailyLogHandler(dailylogSvc),
		Adjustment: NewAdjustmentHandler(adjustmentSvc),
	}

	appConfig := config.AppConfig{
		Port:        8080,
		Env:         "test",
		LogLevel:    "error",
		FrontendURL: "http://localhost:3000",
	}
	return NewRouter(appConfig, jwtService, orgSvc, handlers)
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set(middleware.OrgHeader, fixtures.OrgID)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func loginAs(t *testing.T, router http.Handler, email string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": fixtures.Password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Data struct {
			AccessToken string `json:"accessToken"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.AccessToken)
	return body.Data.AccessToken
}

func TestLogin_Success(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    fixtures.AliceEmail,
		"password": fixtures.Password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Data struct {
			AccessToken string `json:"accessToken"`
			ExpiresAt   int64  `json:"expiresAt"`
			User        struct {
				ID    string `json:"id"`
				Email string `json:"email"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Data.AccessToken)
	assert.Equal(t, fixtures.AliceID, body.Data.User.ID)

	cookies := w.Result().Cookies()
	var refreshCookie *http.Cookie
	for _, c := range cookies {
		if c.Name == "refresh_token" {
			refreshCookie = c
		}
	}
	require.NotNil(t, refreshCookie)
	assert.True(t, refreshCookie.HttpOnly)
	assert.Equal(t, "/api/auth", refreshCookie.Path)
}

func TestLogin_WrongPassword(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    fixtures.AliceEmail,
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "UNAUTHORIZED", body.Code)
}

func TestLogin_ValidationError(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "not-an-email",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.Contains(t, body.Details, "password")
}

func TestMe(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, fixtures.AliceEmail)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Data struct {
			Email string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, fixtures.AliceEmail, body.Data.Email)
}

func TestProtectedRoute_NoToken(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/leave/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTenantRoute_MissingOrgHeader(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, fixtures.AliceEmail)

	req := httptest.NewRequest(http.MethodGet, "/api/leave/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTenantRoute_ForeignOrgHeader(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, fixtures.AliceEmail)

	req := httptest.NewRequest(http.MethodGet, "/api/leave/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(middleware.OrgHeader, "org-other")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminRoute_AsEmployee(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, fixtures.AliceEmail)

	w := doJSON(t, router, http.MethodGet, "/api/attendance/", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUserList_AsAdmin(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, fixtures.AdminEmail)

	w := doJSON(t, router, http.MethodGet, "/api/users/", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
		Meta struct {
			Total      int64 `json:"total"`
			Page       int   `json:"page"`
			TotalPages int   `json:"totalPages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 3)
	assert.Equal(t, int64(3), body.Meta.Total)
	assert.Equal(t, 1, body.Meta.TotalPages)
}

func TestAttendanceFlow(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, fixtures.AliceEmail)

	w := doJSON(t, router, http.MethodPost, "/api/attendance/check-in", token, map[string]string{"date": "2025-03-03"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Double check-in conflicts
	w = doJSON(t, router, http.MethodPost, "/api/attendance/check-in", token, map[string]string{"date": "2025-03-03"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/attendance/check-out", token, map[string]string{"date": "2025-03-03"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/attendance/day?date=2025-03-03", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Status     string   `json:"status"`
			TotalHours *float64 `json:"totalHours"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "present", body.Data.Status)
	assert.NotNil(t, body.Data.TotalHours)
}

func TestLeaveApprovalFlow(t *testing.T) {
	router := newTestRouter(t)
	aliceToken := loginAs(t, router, fixtures.AliceEmail)
	adminToken := loginAs(t, router, fixtures.AdminEmail)

	w := doJSON(t, router, http.MethodPost, "/api/leave/", aliceToken, map[string]string{
		"kind":      "vacation",
		"startDate": "2025-03-03",
		"endDate":   "2025-03-05",
		"duration":  "full-day",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data struct {
			ID            string  `json:"id"`
			DaysRequested float64 `json:"daysRequested"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 3.0, created.Data.DaysRequested)

	// Employees cannot approve
	path := fmt.Sprintf("/api/leave/%s/approve", created.Data.ID)
	w = doJSON(t, router, http.MethodPost, path, aliceToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodPost, path, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Second approval conflicts
	w = doJSON(t, router, http.MethodPost, path, adminToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// The balance reflects the booked days
	w = doJSON(t, router, http.MethodGet, "/api/leave/balances", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var balances struct {
		Data []struct {
			Kind      string  `json:"kind"`
			Remaining float64 `json:"remaining"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &balances))
	for _, b := range balances.Data {
		if b.Kind == "vacation" {
			assert.Equal(t, 11.0, b.Remaining)
		}
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
