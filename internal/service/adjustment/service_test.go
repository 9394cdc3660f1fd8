package adjustment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsehq/pulse-backend-go/internal/domain/adjustment"
	"github.com/pulsehq/pulse-backend-go/internal/domain/attendance"
	"github.com/pulsehq/pulse-backend-go/internal/fixtures"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/events"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/faults"
	"github.com/pulsehq/pulse-backend-go/internal/repository/fixture"
)

func newAdjustmentTestService() (adjustment.Service, attendance.Repository, *events.Bus) {
	store := fixture.NewStore(faults.Disabled())
	attendanceRepo := fixture.NewAttendanceRepository(store)
	bus := events.NewBus()
	svc := NewAdjustmentService(store, fixture.NewAdjustmentRepository(store), attendanceRepo, bus)
	return svc, attendanceRepo, bus
}

func submitTestAdjustment(t *testing.T, svc adjustment.Service) adjustment.Request {
	t.Helper()
	created, err := svc.Submit(context.Background(), adjustment.CreateRequestRequest{
		UserID:            fixtures.AliceID,
		OrgID:             fixtures.OrgID,
		Date:              "2025-03-03",
		RequestedCheckIn:  "2025-03-03T09:00:00Z",
		RequestedCheckOut: "2025-03-03T17:30:00Z",
		Reason:            "forgot to check in",
	})
	require.NoError(t, err)
	return created
}

func TestAdjustmentService_Submit(t *testing.T) {
	svc, _, _ := newAdjustmentTestService()

	created := submitTestAdjustment(t, svc)

	assert.Equal(t, adjustment.StatusPending, created.Status)
	assert.NotNil(t, created.RequestedCheckIn)
	assert.NotNil(t, created.RequestedCheckOut)
}

func TestAdjustmentService_Submit_NothingToAdjust(t *testing.T) {
	svc, _, _ := newAdjustmentTestService()

	_, err := svc.Submit(context.Background(), adjustment.CreateRequestRequest{
		UserID: fixtures.AliceID,
		OrgID:  fixtures.OrgID,
		Date:   "2025-03-03",
	})
	assert.ErrorIs(t, err, adjustment.ErrNothingToAdjust)
}

func TestAdjustmentService_Approve_RewritesAttendance(t *testing.T) {
	ctx := context.Background()
	svc, attendanceRepo, _ := newAdjustmentTestService()

	created := submitTestAdjustment(t, svc)

	approved, err := svc.Approve(ctx, created.ID, fixtures.OrgID, fixtures.AdminID)
	require.NoError(t, err)
	assert.Equal(t, adjustment.StatusApproved, approved.Status)

	record, err := attendanceRepo.Get(ctx, fixtures.AliceID, "2025-03-03", fixtures.OrgID)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, attendance.StatusPresent, record.Status)
	require.NotNil(t, record.CheckInTime)
	require.NotNil(t, record.CheckOutTime)
	require.NotNil(t, record.TotalHours)
	assert.Equal(t, 8.5, *record.TotalHours)
}

func TestAdjustmentService_Approve_AlreadyProcessed(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAdjustmentTestService()

	created := submitTestAdjustment(t, svc)

	_, err := svc.Approve(ctx, created.ID, fixtures.OrgID, fixtures.AdminID)
	require.NoError(t, err)

	_, err = svc.Approve(ctx, created.ID, fixtures.OrgID, fixtures.AdminID)
	assert.ErrorIs(t, err, adjustment.ErrRequestAlreadyProcessed)

	_, err = svc.Reject(ctx, created.ID, fixtures.OrgID, fixtures.AdminID)
	assert.ErrorIs(t, err, adjustment.ErrRequestAlreadyProcessed)
}

func TestAdjustmentService_Reject_LeavesAttendanceUntouched(t *testing.T) {
	ctx := context.Background()
	svc, attendanceRepo, _ := newAdjustmentTestService()

	created := submitTestAdjustment(t, svc)

	rejected, err := svc.Reject(ctx, created.ID, fixtures.OrgID, fixtures.AdminID)
	require.NoError(t, err)
	assert.Equal(t, adjustment.StatusRejected, rejected.Status)

	record, err := attendanceRepo.Get(ctx, fixtures.AliceID, "2025-03-03", fixtures.OrgID)
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestAdjustmentService_Cancel_OwnerOnly(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAdjustmentTestService()

	created := submitTestAdjustment(t, svc)

	_, err := svc.Cancel(ctx, created.ID, fixtures.OrgID, fixtures.BobID)
	assert.ErrorIs(t, err, adjustment.ErrNotRequestOwner)

	cancelled, err := svc.Cancel(ctx, created.ID, fixtures.OrgID, fixtures.AliceID)
	require.NoError(t, err)
	assert.Equal(t, adjustment.StatusCancelled, cancelled.Status)
}

func TestAdjustmentService_Resolve_PublishesEvent(t *testing.T) {
	ctx := context.Background()
	svc, _, bus := newAdjustmentTestService()

	var topics []string
	bus.Subscribe(events.TopicRequestResolved, func(e events.Event) {
		topics = append(topics, e.Topic)
	})

	created := submitTestAdjustment(t, svc)
	_, err := svc.Approve(ctx, created.ID, fixtures.OrgID, fixtures.AdminID)
	require.NoError(t, err)

	assert.Equal(t, []string{events.TopicRequestResolved}, topics)
}

func TestAdjustmentService_Approve_FailedStatusWriteRollsBackAttendance(t *testing.T) {
	ctx := context.Background()
	store := fixture.NewStore(faults.NewInjector(1, 0, 0, 1.0))
	attendanceRepo := fixture.NewAttendanceRepository(store)
	adjustmentRepo := fixture.NewAdjustmentRepository(store)
	svc := NewAdjustmentService(store, adjustmentRepo, attendanceRepo, events.NewBus())

	created := submitTestAdjustment(t, svc)

	_, err := svc.Approve(ctx, created.ID, fixtures.OrgID, fixtures.AdminID)
	require.ErrorIs(t, err, faults.ErrInjected)

	// The attendance rewrite must not survive the failed approval.
	record, err := attendanceRepo.Get(ctx, fixtures.AliceID, "2025-03-03", fixtures.OrgID)
	require.NoError(t, err)
	assert.Nil(t, record)

	stored, err := adjustmentRepo.GetByID(ctx, created.ID, fixtures.OrgID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, adjustment.StatusPending, stored.Status)
}
