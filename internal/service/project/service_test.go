package project

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsehq/pulse-backend-go/internal/domain/dailylog"
	"github.com/pulsehq/pulse-backend-go/internal/domain/project"
	"github.com/pulsehq/pulse-backend-go/internal/fixtures"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/events"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/faults"
	"github.com/pulsehq/pulse-backend-go/internal/repository/fixture"
	dailylogService "github.com/pulsehq/pulse-backend-go/internal/service/dailylog"
)

func newProjectTestService() (project.Service, dailylog.Service, *events.Bus) {
	store := fixture.NewStore(faults.Disabled())
	bus := events.NewBus()
	logSvc := dailylogService.NewDailyLogService(fixture.NewDailyLogRepository(store), bus, slog.Default())
	svc := NewProjectService(store, fixture.NewProjectRepository(store), fixture.NewTicketRepository(store), bus)
	return svc, logSvc, bus
}

func TestProjectService_CreateTicket_LandsAtBottomOfTodo(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newProjectTestService()

	created, err := svc.CreateTicket(ctx, project.CreateTicketRequest{
		OrgID:     fixtures.OrgID,
		ProjectID: fixtures.ProjectID,
		Title:     "Order new laptop",
	})
	require.NoError(t, err)

	assert.Equal(t, project.StatusTodo, created.Status)
	// Seeded todo tickets top out at order 2
	assert.Equal(t, 1002.0, created.Order)
	assert.Nil(t, created.CompletedAt)
}

func TestProjectService_CreateTicket_UnknownProject(t *testing.T) {
	svc, _, _ := newProjectTestService()

	_, err := svc.CreateTicket(context.Background(), project.CreateTicketRequest{
		OrgID:     fixtures.OrgID,
		ProjectID: "prj-missing",
		Title:     "Lost ticket",
	})
	assert.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestProjectService_MoveTicket_StampsCompletedAtOnce(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newProjectTestService()

	moved, err := svc.MoveTicket(ctx, project.MoveTicketRequest{
		OrgID:     fixtures.OrgID,
		ProjectID: fixtures.ProjectID,
		TicketID:  "tkt-1003",
		Status:    string(project.StatusDone),
		Order:     500,
	})
	require.NoError(t, err)
	require.NotNil(t, moved.CompletedAt)
	firstStamp := *moved.CompletedAt

	// Moving it back out of done keeps the stamp
	moved, err = svc.MoveTicket(ctx, project.MoveTicketRequest{
		OrgID:     fixtures.OrgID,
		ProjectID: fixtures.ProjectID,
		TicketID:  "tkt-1003",
		Status:    string(project.StatusInProgress),
		Order:     100,
	})
	require.NoError(t, err)
	require.NotNil(t, moved.CompletedAt)
	assert.Equal(t, firstStamp, *moved.CompletedAt)
}

func TestProjectService_MoveTicket_WrongProject(t *testing.T) {
	svc, _, _ := newProjectTestService()

	_, err := svc.MoveTicket(context.Background(), project.MoveTicketRequest{
		OrgID:     fixtures.OrgID,
		ProjectID: "prj-other",
		TicketID:  "tkt-1001",
		Status:    string(project.StatusDone),
		Order:     1,
	})
	assert.ErrorIs(t, err, project.ErrTicketWrongProject)
}

func TestProjectService_MoveTicket_AppendsToDailyLog(t *testing.T) {
	ctx := context.Background()
	svc, logSvc, _ := newProjectTestService()

	// tkt-1003 is assigned to Alice and sits in progress
	moved, err := svc.MoveTicket(ctx, project.MoveTicketRequest{
		OrgID:     fixtures.OrgID,
		ProjectID: fixtures.ProjectID,
		TicketID:  "tkt-1003",
		Status:    string(project.StatusDone),
		Order:     2000,
	})
	require.NoError(t, err)

	date := moved.CompletedAt.Format("2006-01-02")
	log, err := logSvc.Get(ctx, fixtures.AliceID, date, fixtures.OrgID)
	require.NoError(t, err)
	require.Len(t, log.CompletedTickets, 1)
	assert.Equal(t, "tkt-1003", log.CompletedTickets[0].TicketID)
	assert.Equal(t, "Meet the team", log.CompletedTickets[0].Title)
}

func TestProjectService_Reorder_IntoDoneAppendsToDailyLog(t *testing.T) {
	ctx := context.Background()
	svc, logSvc, _ := newProjectTestService()

	// Dragging tkt-1003 from in progress into done counts as a completion.
	err := svc.Reorder(ctx, project.ReorderRequest{
		OrgID:     fixtures.OrgID,
		ProjectID: fixtures.ProjectID,
		Updates: []project.OrderUpdate{
			{TicketID: "tkt-1003", Status: project.StatusDone, Order: 2000},
			{TicketID: "tkt-1004", Status: project.StatusDone, Order: 1000},
		},
	})
	require.NoError(t, err)

	moved, err := svc.GetTicket(ctx, fixtures.ProjectID, "tkt-1003", fixtures.OrgID)
	require.NoError(t, err)
	require.NotNil(t, moved.CompletedAt)

	date := moved.CompletedAt.Format("2006-01-02")
	log, err := logSvc.Get(ctx, fixtures.AliceID, date, fixtures.OrgID)
	require.NoError(t, err)
	require.Len(t, log.CompletedTickets, 1)
	assert.Equal(t, "tkt-1003", log.CompletedTickets[0].TicketID)

	// tkt-1004 only changed order inside done, so no second entry and no
	// new stamp for it.
	reordered, err := svc.GetTicket(ctx, fixtures.ProjectID, "tkt-1004", fixtures.OrgID)
	require.NoError(t, err)
	require.NotNil(t, reordered.CompletedAt)
	assert.Equal(t, 1000.0, reordered.Order)
}

func TestBuildBoard_Partition(t *testing.T) {
	board := BuildBoard(fixtures.Tickets())

	assert.Len(t, board.Todo, 2)
	assert.Len(t, board.InProgress, 1)
	assert.Len(t, board.Done, 1)

	// Column order follows the input order
	assert.Equal(t, "tkt-1001", board.Todo[0].ID)
	assert.Equal(t, "tkt-1002", board.Todo[1].ID)
	assert.Equal(t, "tkt-1004", board.Done[0].ID)
}

func TestProjectService_Reorder(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newProjectTestService()

	err := svc.Reorder(ctx, project.ReorderRequest{
		OrgID:     fixtures.OrgID,
		ProjectID: fixtures.ProjectID,
		Updates: []project.OrderUpdate{
			{TicketID: "tkt-1001", Status: project.StatusInProgress, Order: 3000},
			{TicketID: "tkt-1002", Status: project.StatusTodo, Order: 1000},
		},
	})
	require.NoError(t, err)

	moved, err := svc.GetTicket(ctx, fixtures.ProjectID, "tkt-1001", fixtures.OrgID)
	require.NoError(t, err)
	assert.Equal(t, project.StatusInProgress, moved.Status)
	assert.Equal(t, 3000.0, moved.Order)
}

func TestProjectService_BulkDeleteTickets(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newProjectTestService()

	err := svc.BulkDeleteTickets(ctx, project.BulkDeleteTicketsRequest{
		OrgID:     fixtures.OrgID,
		ProjectID: fixtures.ProjectID,
		IDs:       []string{"tkt-1001", "tkt-1002"},
	})
	require.NoError(t, err)

	remaining, err := svc.ListTickets(ctx, fixtures.ProjectID, fixtures.OrgID)
	require.NoError(t, err)
	assert.Len(t, remaining, 2)

	_, err = svc.GetTicket(ctx, fixtures.ProjectID, "tkt-1001", fixtures.OrgID)
	assert.ErrorIs(t, err, project.ErrTicketNotFound)
}
