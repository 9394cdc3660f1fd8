package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/pulsehq/pulse-backend-go/internal/config"
	appHTTP "github.com/pulsehq/pulse-backend-go/internal/handler/http"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/cron"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/database"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/events"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/faults"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/jwt"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/oauth"
	"github.com/pulsehq/pulse-backend-go/internal/repository"
	"github.com/pulsehq/pulse-backend-go/internal/repository/document"
	"github.com/pulsehq/pulse-backend-go/internal/repository/fixture"

	"github.com/pulsehq/pulse-backend-go/internal/domain/adjustment"
	"github.com/pulsehq/pulse-backend-go/internal/domain/attendance"
	"github.com/pulsehq/pulse-backend-go/internal/domain/badge"
	"github.com/pulsehq/pulse-backend-go/internal/domain/dailylog"
	"github.com/pulsehq/pulse-backend-go/internal/domain/leave"
	"github.com/pulsehq/pulse-backend-go/internal/domain/org"
	"github.com/pulsehq/pulse-backend-go/internal/domain/project"
	"github.com/pulsehq/pulse-backend-go/internal/domain/user"

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

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "pulse-backend"),
	)

	var (
		atomic         repository.Atomic
		orgRepo        org.Repository
		userRepo       user.Repository
		attendanceRepo attendance.Repository
		leaveRepo      leave.Repository
		projectRepo    project.ProjectRepository
		ticketRepo     project.TicketRepository
		logRepo        dailylog.Repository
		adjustmentRepo adjustment.Repository
		badgeRepo      badge.Repository
	)

	if cfg.StoreConfigured() {
		db, err := database.NewDocumentStore(cfg.StoreURL())
		if err != nil {
			fmt.Println("Error connecting to document store:", err)
			return
		}
		if err := document.EnsureSchema(context.Background(), db); err != nil {
			fmt.Println("Error preparing document store schema:", err)
			return
		}

		atomic = document.NewAtomic(db)
		orgRepo = document.NewOrgRepository(db)
		userRepo = document.NewUserRepository(db)
		attendanceRepo = document.NewAttendanceRepository(db)
		leaveRepo = document.NewLeaveRepository(db)
		projectRepo = document.NewProjectRepository(db)
		ticketRepo = document.NewTicketRepository(db)
		logRepo = document.NewDailyLogRepository(db)
		adjustmentRepo = document.NewAdjustmentRepository(db)
		badgeRepo = document.NewBadgeRepository(db)
	} else {
		inj := faults.NewInjector(cfg.Mock.Seed, cfg.Mock.MinLatency, cfg.Mock.MaxLatency, cfg.Mock.FailureRate)
		store := fixture.NewStore(inj)

		atomic = store
		orgRepo = fixture.NewOrgRepository(store)
		userRepo = fixture.NewUserRepository(store)
		attendanceRepo = fixture.NewAttendanceRepository(store)
		leaveRepo = fixture.NewLeaveRepository(store)
		projectRepo = fixture.NewProjectRepository(store)
		ticketRepo = fixture.NewTicketRepository(store)
		logRepo = fixture.NewDailyLogRepository(store)
		adjustmentRepo = fixture.NewAdjustmentRepository(store)
		badgeRepo = fixture.NewBadgeRepository(store)

		logger.Info("document store unconfigured, serving fixture data")
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	bus := events.NewBus()

	orgSvc := orgService.NewOrgService(orgRepo)
	userSvc := userService.NewUserService(userRepo)
	authSvc := authService.NewAuthService(atomic, userRepo, orgRepo, jwtService, googleService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo, orgRepo, leaveRepo)
	leaveSvc := leaveService.NewLeaveService(atomic, leaveRepo, userRepo, bus)
	projectSvc := projectService.NewProjectService(atomic, projectRepo, ticketRepo, bus)
	dailylogSvc := dailylogService.NewDailyLogService(logRepo, bus, logger)
	adjustmentSvc := adjustmentService.NewAdjustmentService(atomic, adjustmentRepo, attendanceRepo, bus)
	badgeSvc := badgeService.NewBadgeService(badgeRepo)
	analyticsSvc := analyticsService.NewAnalyticsService(userRepo, attendanceRepo, leaveRepo, adjustmentRepo, projectRepo, ticketRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc, userSvc, googleService),
		User:       appHTTP.NewUserHandler(userSvc),
		Org:        appHTTP.NewOrgHandler(orgSvc),
		Badge:      appHTTP.NewBadgeHandler(badgeSvc),
		Analytics:  appHTTP.NewAnalyticsHandler(analyticsSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Project:    appHTTP.NewProjectHandler(projectSvc),
		DailyLog:   appHTTP.NewDailyLogHandler(dailylogSvc),
		Adjustment: appHTTP.NewAdjustmentHandler(adjustmentSvc),
	}

	router := appHTTP.NewRouter(cfg.App, jwtService, orgSvc, handlers)

	scheduler := cron.NewScheduler()
	// Sweep shortly after midnight UTC so the whole previous day is final.
	scheduler.AddDailyJob("mark-absences", 0, 5, func(ctx context.Context) error {
		date := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
		marked, err := attendanceSvc.MarkAbsences(ctx, date)
		if err != nil {
			return err
		}
		logger.Info("absence sweep finished", slog.String("date", date), slog.Int("marked", marked))
		return nil
	})
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
