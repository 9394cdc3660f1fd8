package dailylog

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsehq/pulse-backend-go/internal/domain/dailylog"
	"github.com/pulsehq/pulse-backend-go/internal/domain/project"
	"github.com/pulsehq/pulse-backend-go/internal/fixtures"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/events"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/faults"
	"github.com/pulsehq/pulse-backend-go/internal/repository/fixture"
)

func newDailyLogTestService() (dailylog.Service, *events.Bus) {
	store := fixture.NewStore(faults.Disabled())
	bus := events.NewBus()
	svc := NewDailyLogService(fixture.NewDailyLogRepository(store), bus, slog.Default())
	return svc, bus
}

func completedTestTicket(completedAt time.Time) project.Ticket {
	alice := fixtures.AliceID
	return project.Ticket{
		ID:          "tkt-9001",
		OrgID:       fixtures.OrgID,
		ProjectID:   fixtures.ProjectID,
		Title:       "Write onboarding notes",
		AssigneeID:  &alice,
		Status:      project.StatusDone,
		CompletedAt: &completedAt,
	}
}

func TestDailyLogService_Get_EmptyWithoutDocument(t *testing.T) {
	svc, _ := newDailyLogTestService()

	log, err := svc.Get(context.Background(), fixtures.AliceID, "2025-03-03", fixtures.OrgID)
	require.NoError(t, err)

	assert.Equal(t, dailylog.DocID(fixtures.AliceID, "2025-03-03"), log.ID)
	assert.Empty(t, log.ManualTasks)
	assert.Empty(t, log.CompletedTickets)
}

func TestDailyLogService_AddManualTask(t *testing.T) {
	ctx := context.Background()
	svc, _ := newDailyLogTestService()

	log, err := svc.AddManualTask(ctx, dailylog.AddManualTaskRequest{
		UserID: fixtures.AliceID,
		OrgID:  fixtures.OrgID,
		Date:   "2025-03-03",
		Task:   "reviewed onboarding checklist",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"reviewed onboarding checklist"}, log.ManualTasks)

	log, err = svc.AddManualTask(ctx, dailylog.AddManualTaskRequest{
		UserID: fixtures.AliceID,
		OrgID:  fixtures.OrgID,
		Date:   "2025-03-03",
		Task:   "paired with Bob",
	})
	require.NoError(t, err)
	assert.Len(t, log.ManualTasks, 2)
}

func TestDailyLogService_TicketCompletedEvent(t *testing.T) {
	svc, bus := newDailyLogTestService()

	completedAt := time.Date(2025, 3, 3, 15, 4, 0, 0, time.UTC)
	ticket := completedTestTicket(completedAt)

	bus.Publish(events.Event{Topic: events.TopicTicketCompleted, OrgID: fixtures.OrgID, Data: ticket})

	log, err := svc.Get(context.Background(), fixtures.AliceID, "2025-03-03", fixtures.OrgID)
	require.NoError(t, err)
	require.Len(t, log.CompletedTickets, 1)
	assert.Equal(t, "tkt-9001", log.CompletedTickets[0].TicketID)
	assert.Equal(t, completedAt, log.CompletedTickets[0].CompletedAt)
}

func TestDailyLogService_TicketCompletedEvent_Dedupes(t *testing.T) {
	svc, bus := newDailyLogTestService()

	ticket := completedTestTicket(time.Date(2025, 3, 3, 15, 4, 0, 0, time.UTC))
	event := events.Event{Topic: events.TopicTicketCompleted, OrgID: fixtures.OrgID, Data: ticket}

	bus.Publish(event)
	bus.Publish(event)

	log, err := svc.Get(context.Background(), fixtures.AliceID, "2025-03-03", fixtures.OrgID)
	require.NoError(t, err)
	assert.Len(t, log.CompletedTickets, 1)
}

func TestDailyLogService_TicketCompletedEvent_SkipsUnassigned(t *testing.T) {
	svc, bus := newDailyLogTestService()

	completedAt := time.Date(2025, 3, 3, 15, 4, 0, 0, time.UTC)
	ticket := completedTestTicket(completedAt)
	ticket.AssigneeID = nil

	bus.Publish(events.Event{Topic: events.TopicTicketCompleted, OrgID: fixtures.OrgID, Data: ticket})

	log, err := svc.Get(context.Background(), fixtures.AliceID, "2025-03-03", fixtures.OrgID)
	require.NoError(t, err)
	assert.Empty(t, log.CompletedTickets)
}
