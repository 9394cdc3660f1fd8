package dailylog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pulsehq/pulse-backend-go/internal/domain/dailylog"
	"github.com/pulsehq/pulse-backend-go/internal/domain/project"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/events"
)

type DailyLogServiceImpl struct {
	logRepo dailylog.Repository
	logger  *slog.Logger
}

// NewDailyLogService wires the service and subscribes it to ticket
// completions so done tickets show up on the assignee's log without any
// handler involvement.
func NewDailyLogService(logRepo dailylog.Repository, bus *events.Bus, logger *slog.Logger) dailylog.Service {
	s := &DailyLogServiceImpl{
		logRepo: logRepo,
		logger:  logger,
	}

	bus.Subscribe(events.TopicTicketCompleted, func(event events.Event) {
		ticket, ok := event.Data.(project.Ticket)
		if !ok || ticket.AssigneeID == nil || ticket.CompletedAt == nil {
			return
		}
		if err := s.appendCompletedTicket(context.Background(), event.OrgID, ticket); err != nil {
			s.logger.Error("failed to append completed ticket to daily log",
				slog.String("ticketId", ticket.ID),
				slog.Any("error", err),
			)
		}
	})

	return s
}

func emptyLog(userID, date, orgID string) dailylog.Log {
	return dailylog.Log{
		ID:               dailylog.DocID(userID, date),
		OrgID:            orgID,
		UserID:           userID,
		Date:             date,
		ManualTasks:      []string{},
		CompletedTickets: []dailylog.CompletedTicket{},
	}
}

// Get implements dailylog.Service.
func (s *DailyLogServiceImpl) Get(ctx context.Context, userID string, date string, orgID string) (dailylog.Log, error) {
	log, err := s.logRepo.Get(ctx, userID, date, orgID)
	if err != nil {
		return dailylog.Log{}, fmt.Errorf("failed to get daily log: %w", err)
	}
	if log == nil {
		return emptyLog(userID, date, orgID), nil
	}
	return *log, nil
}

// ListMine implements dailylog.Service.
func (s *DailyLogServiceImpl) ListMine(ctx context.Context, userID string, from, to string, orgID string) ([]dailylog.Log, error) {
	logs, err := s.logRepo.ListByUser(ctx, userID, from, to, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily logs: %w", err)
	}
	return logs, nil
}

// AddManualTask implements dailylog.Service.
func (s *DailyLogServiceImpl) AddManualTask(ctx context.Context, req dailylog.AddManualTaskRequest) (dailylog.Log, error) {
	log, err := s.logRepo.Get(ctx, req.UserID, req.Date, req.OrgID)
	if err != nil {
		return dailylog.Log{}, fmt.Errorf("failed to get daily log: %w", err)
	}

	now := time.Now().UTC()
	if log == nil {
		created := emptyLog(req.UserID, req.Date, req.OrgID)
		created.CreatedAt = now
		log = &created
	}

	log.ManualTasks = append(log.ManualTasks, req.Task)
	log.UpdatedAt = now

	saved, err := s.logRepo.Put(ctx, *log)
	if err != nil {
		return dailylog.Log{}, fmt.Errorf("failed to store daily log: %w", err)
	}
	return saved, nil
}

func (s *DailyLogServiceImpl) appendCompletedTicket(ctx context.Context, orgID string, ticket project.Ticket) error {
	date := ticket.CompletedAt.Format("2006-01-02")
	userID := *ticket.AssigneeID

	log, err := s.logRepo.Get(ctx, userID, date, orgID)
	if err != nil {
		return fmt.Errorf("failed to get daily log: %w", err)
	}

	now := time.Now().UTC()
	if log == nil {
		created := emptyLog(userID, date, orgID)
		created.CreatedAt = now
		log = &created
	}

	// The same ticket can bounce in and out of done; keep one entry.
	for _, entry := range log.CompletedTickets {
		if entry.TicketID == ticket.ID {
			return nil
		}
	}

	log.CompletedTickets = append(log.CompletedTickets, dailylog.CompletedTicket{
		TicketID:    ticket.ID,
		ProjectID:   ticket.ProjectID,
		Title:       ticket.Title,
		CompletedAt: *ticket.CompletedAt,
	})
	log.UpdatedAt = now

	if _, err := s.logRepo.Put(ctx, *log); err != nil {
		return fmt.Errorf("failed to store daily log: %w", err)
	}
	return nil
}
