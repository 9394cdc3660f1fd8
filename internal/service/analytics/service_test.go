package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsehq/pulse-backend-go/internal/domain/adjustment"
	"github.com/pulsehq/pulse-backend-go/internal/domain/analytics"
	"github.com/pulsehq/pulse-backend-go/internal/domain/attendance"
	"github.com/pulsehq/pulse-backend-go/internal/domain/leave"
	"github.com/pulsehq/pulse-backend-go/internal/domain/user"
	"github.com/pulsehq/pulse-backend-go/internal/fixtures"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/events"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/faults"
	"github.com/pulsehq/pulse-backend-go/internal/repository/fixture"
	adjustmentService "github.com/pulsehq/pulse-backend-go/internal/service/adjustment"
	attendanceService "github.com/pulsehq/pulse-backend-go/internal/service/attendance"
	leaveService "github.com/pulsehq/pulse-backend-go/internal/service/leave"
)

func TestAnalyticsService_Summarize(t *testing.T) {
	ctx := context.Background()

	store := fixture.NewStore(faults.Disabled())
	userRepo := fixture.NewUserRepository(store)
	attendanceRepo := fixture.NewAttendanceRepository(store)
	leaveRepo := fixture.NewLeaveRepository(store)
	adjustmentRepo := fixture.NewAdjustmentRepository(store)
	projectRepo := fixture.NewProjectRepository(store)
	ticketRepo := fixture.NewTicketRepository(store)
	bus := events.NewBus()

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo, fixture.NewOrgRepository(store), leaveRepo)
	leaveSvc := leaveService.NewLeaveService(store, leaveRepo, userRepo, bus)
	adjustmentSvc := adjustmentService.NewAdjustmentService(store, adjustmentRepo, attendanceRepo, bus)
	svc := NewAnalyticsService(userRepo, attendanceRepo, leaveRepo, adjustmentRepo, projectRepo, ticketRepo)

	// One present day, one approved vacation, one pending sick request, one
	// pending adjustment.
	_, err := attendanceSvc.CheckIn(ctx, attendance.CheckInRequest{UserID: fixtures.AliceID, OrgID: fixtures.OrgID, Date: "2025-03-03"})
	require.NoError(t, err)

	approved, err := leaveSvc.Submit(ctx, leave.CreateRequestRequest{
		UserID:    fixtures.BobID,
		OrgID:     fixtures.OrgID,
		Kind:      string(user.LeaveVacation),
		StartDate: "2025-03-03",
		EndDate:   "2025-03-04",
		Duration:  string(leave.DurationFullDay),
	})
	require.NoError(t, err)
	_, err = leaveSvc.Approve(ctx, leave.ResolveRequestRequest{ID: approved.ID, OrgID: fixtures.OrgID, ResolvedBy: fixtures.AdminID})
	require.NoError(t, err)

	_, err = leaveSvc.Submit(ctx, leave.CreateRequestRequest{
		UserID:    fixtures.AliceID,
		OrgID:     fixtures.OrgID,
		Kind:      string(user.LeaveSick),
		StartDate: "2025-03-10",
		EndDate:   "2025-03-10",
		Duration:  string(leave.DurationFullDay),
	})
	require.NoError(t, err)

	_, err = adjustmentSvc.Submit(ctx, adjustment.CreateRequestRequest{
		UserID:           fixtures.BobID,
		OrgID:            fixtures.OrgID,
		Date:             "2025-03-03",
		RequestedCheckIn: "2025-03-03T09:00:00Z",
	})
	require.NoError(t, err)

	summary, err := svc.Summarize(ctx, fixtures.OrgID, analytics.SummaryFilter{})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Headcount)
	assert.Equal(t, 3, summary.ActiveUsers)
	assert.Equal(t, 1, summary.AttendanceByStatus["present"])
	assert.Equal(t, 2.0, summary.LeaveDaysByKind["vacation"])
	assert.Equal(t, 1, summary.PendingLeave)
	assert.Equal(t, 1, summary.PendingAdjustments)
	// The seeded board ships with one done ticket
	assert.Equal(t, 1, summary.TicketsCompleted)
}

func TestAnalyticsService_Summarize_DateWindow(t *testing.T) {
	ctx := context.Background()

	store := fixture.NewStore(faults.Disabled())
	svc := NewAnalyticsService(
		fixture.NewUserRepository(store),
		fixture.NewAttendanceRepository(store),
		fixture.NewLeaveRepository(store),
		fixture.NewAdjustmentRepository(store),
		fixture.NewProjectRepository(store),
		fixture.NewTicketRepository(store),
	)

	// The seeded completion falls in early January 2025
	summary, err := svc.Summarize(ctx, fixtures.OrgID, analytics.SummaryFilter{From: "2025-02-01", To: "2025-02-28"})
	require.NoError(t, err)
	assert.Zero(t, summary.TicketsCompleted)

	summary, err = svc.Summarize(ctx, fixtures.OrgID, analytics.SummaryFilter{From: "2025-01-01", To: "2025-01-31"})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TicketsCompleted)
}
