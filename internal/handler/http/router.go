package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/pulsehq/pulse-backend-go/internal/config"
	orgdomain "github.com/pulsehq/pulse-backend-go/internal/domain/org"
	"github.com/pulsehq/pulse-backend-go/internal/handler/http/middleware"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/jwt"
)

// Handlers bundles every HTTP handler wired by the router.
type Handlers struct {
	Auth       AuthHandler
	User       UserHandler
	Org        OrgHandler
	Badge      BadgeHandler
	Analytics  AnalyticsHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Project    ProjectHandler
	DailyLog   DailyLogHandler
	Adjustment AdjustmentHandler
}

func NewRouter(appConfig config.AppConfig, jwtService jwt.Service, orgService orgdomain.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "pulse-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appConfig.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{appConfig.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.OrgHeader},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
				r.Get("/callback/google", h.Auth.OAuthCallbackGoogle)
			})

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", h.Auth.Me)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Badge catalog is global, not tenant-scoped
			r.Route("/badges", func(r chi.Router) {
				r.Get("/", h.Badge.List)
				r.Get("/{id}", h.Badge.Get)
			})

			// Org administration
			r.Route("/orgs", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Org.List)
				r.Post("/", h.Org.Create)
				r.Get("/{id}", h.Org.Get)
				r.Put("/{id}", h.Org.Update)
			})

			// Tenant-scoped routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireOrg(orgService))

				r.Route("/users", func(r chi.Router) {
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Post("/", h.User.Create)
						r.Get("/", h.User.List)
						r.Put("/{id}", h.User.Update)
						r.Patch("/{id}/activation", h.User.SetActivation)
						r.Post("/{id}/reset-quotas", h.User.ResetQuotas)
					})
					r.Get("/{id}", h.User.Get)
				})

				r.Route("/analytics", func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/summary", h.Analytics.Summary)
				})

				r.Route("/attendance", func(r chi.Router) {
					r.Post("/check-in", h.Attendance.CheckIn)
					r.Post("/check-out", h.Attendance.CheckOut)
					r.Get("/day", h.Attendance.GetDay)
					r.Get("/me", h.Attendance.ListMine)

					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Get("/", h.Attendance.List)
					})
				})

				r.Route("/leave", func(r chi.Router) {
					r.Post("/", h.Leave.Submit)
					r.Get("/me", h.Leave.ListMine)
					r.Get("/balances", h.Leave.Balances)
					r.Get("/{id}", h.Leave.Get)
					r.Post("/{id}/cancel", h.Leave.Cancel)

					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Get("/", h.Leave.List)
						r.Post("/{id}/approve", h.Leave.Approve)
						r.Post("/{id}/reject", h.Leave.Reject)
					})
				})

				r.Route("/projects", func(r chi.Router) {
					r.Get("/", h.Project.List)
					r.Post("/", h.Project.Create)
					r.Get("/{id}", h.Project.Get)
					r.Get("/{id}/board", h.Project.GetBoard)
					r.Post("/{id}/reorder", h.Project.Reorder)

					r.Route("/{id}/tickets", func(r chi.Router) {
						r.Get("/", h.Project.ListTickets)
						r.Post("/", h.Project.CreateTicket)
						r.Post("/bulk-delete", h.Project.BulkDeleteTickets)
						r.Get("/{ticketId}", h.Project.GetTicket)
						r.Post("/{ticketId}/move", h.Project.MoveTicket)
					})
				})

				r.Route("/daily-logs", func(r chi.Router) {
					r.Get("/", h.DailyLog.Get)
					r.Get("/me", h.DailyLog.ListMine)
					r.Post("/tasks", h.DailyLog.AddManualTask)
				})

				r.Route("/adjustments", func(r chi.Router) {
					r.Post("/", h.Adjustment.Submit)
					r.Get("/me", h.Adjustment.ListMine)
					r.Get("/{id}", h.Adjustment.Get)
					r.Post("/{id}/cancel", h.Adjustment.Cancel)

					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Get("/", h.Adjustment.List)
						r.Post("/{id}/approve", h.Adjustment.Approve)
						r.Post("/{id}/reject", h.Adjustment.Reject)
					})
				})
			})
		})
	})

	return r
}
