package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsehq/pulse-backend-go/internal/domain/attendance"
	"github.com/pulsehq/pulse-backend-go/internal/domain/leave"
	"github.com/pulsehq/pulse-backend-go/internal/domain/user"
	"github.com/pulsehq/pulse-backend-go/internal/fixtures"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/faults"
	"github.com/pulsehq/pulse-backend-go/internal/repository/fixture"
)

func newAttendanceTestService() (attendance.Service, leave.Repository, attendance.Repository) {
	store := fixture.NewStore(faults.Disabled())
	attendanceRepo := fixture.NewAttendanceRepository(store)
	leaveRepo := fixture.NewLeaveRepository(store)
	svc := NewAttendanceService(attendanceRepo, fixture.NewUserRepository(store), fixture.NewOrgRepository(store), leaveRepo)
	return svc, leaveRepo, attendanceRepo
}

func TestAttendanceService_CheckInCheckOut(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAttendanceTestService()

	record, err := svc.CheckIn(ctx, attendance.CheckInRequest{
		UserID: fixtures.AliceID,
		OrgID:  fixtures.OrgID,
		Date:   "2025-03-03",
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.DocID(fixtures.AliceID, "2025-03-03"), record.ID)
	assert.Equal(t, attendance.StatusPresent, record.Status)
	require.NotNil(t, record.CheckInTime)
	assert.Nil(t, record.CheckOutTime)
	assert.Nil(t, record.TotalHours)

	record, err = svc.CheckOut(ctx, attendance.CheckOutRequest{
		UserID: fixtures.AliceID,
		OrgID:  fixtures.OrgID,
		Date:   "2025-03-03",
	})
	require.NoError(t, err)
	require.NotNil(t, record.CheckOutTime)
	require.NotNil(t, record.TotalHours)
	assert.GreaterOrEqual(t, *record.TotalHours, 0.0)
}

func TestAttendanceService_CheckIn_Twice(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAttendanceTestService()

	req := attendance.CheckInRequest{UserID: fixtures.AliceID, OrgID: fixtures.OrgID, Date: "2025-03-03"}
	_, err := svc.CheckIn(ctx, req)
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestAttendanceService_CheckOut_WithoutCheckIn(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAttendanceTestService()

	_, err := svc.CheckOut(ctx, attendance.CheckOutRequest{
		UserID: fixtures.AliceID,
		OrgID:  fixtures.OrgID,
		Date:   "2025-03-03",
	})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestAttendanceService_CheckOut_Twice(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAttendanceTestService()

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{UserID: fixtures.AliceID, OrgID: fixtures.OrgID, Date: "2025-03-03"})
	require.NoError(t, err)

	out := attendance.CheckOutRequest{UserID: fixtures.AliceID, OrgID: fixtures.OrgID, Date: "2025-03-03"}
	_, err = svc.CheckOut(ctx, out)
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx, out)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestAttendanceService_GetDay_NotFound(t *testing.T) {
	svc, _, _ := newAttendanceTestService()

	_, err := svc.GetDay(context.Background(), fixtures.AliceID, "2025-03-03", fixtures.OrgID)
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestAttendanceService_MarkAbsences(t *testing.T) {
	ctx := context.Background()
	svc, leaveRepo, _ := newAttendanceTestService()

	// Monday. Alice has checked in, Bob is covered by an approved leave
	// request, the admin has nothing.
	const date = "2025-03-03"

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{UserID: fixtures.AliceID, OrgID: fixtures.OrgID, Date: date})
	require.NoError(t, err)

	_, err = leaveRepo.Create(ctx, leave.Request{
		ID:            "lv-test",
		OrgID:         fixtures.OrgID,
		UserID:        fixtures.BobID,
		Kind:          user.LeaveVacation,
		StartDate:     "2025-03-03",
		EndDate:       "2025-03-05",
		Duration:      leave.DurationFullDay,
		DaysRequested: 3,
		Status:        leave.StatusApproved,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	})
	require.NoError(t, err)

	marked, err := svc.MarkAbsences(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, 2, marked)

	bob, err := svc.GetDay(ctx, fixtures.BobID, date, fixtures.OrgID)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusOnLeave, bob.Status)

	admin, err := svc.GetDay(ctx, fixtures.AdminID, date, fixtures.OrgID)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAbsent, admin.Status)

	// Alice's check-in survives the sweep
	alice, err := svc.GetDay(ctx, fixtures.AliceID, date, fixtures.OrgID)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, alice.Status)
}

func TestAttendanceService_MarkAbsences_SkipsWeekend(t *testing.T) {
	svc, _, _ := newAttendanceTestService()

	// Saturday
	marked, err := svc.MarkAbsences(context.Background(), "2025-03-01")
	require.NoError(t, err)
	assert.Zero(t, marked)
}

func TestAttendanceService_MarkAbsences_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAttendanceTestService()

	first, err := svc.MarkAbsences(ctx, "2025-03-03")
	require.NoError(t, err)
	assert.Equal(t, 3, first)

	second, err := svc.MarkAbsences(ctx, "2025-03-03")
	require.NoError(t, err)
	assert.Zero(t, second)
}

func TestHoursBetween_Rounding(t *testing.T) {
	in := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	out := in.Add(8*time.Hour + 20*time.Minute)

	assert.Equal(t, 8.33, attendance.HoursBetween(in, out))
}
