package analytics

import (
	"context"
	"fmt"

	"github.com/pulsehq/pulse-backend-go/internal/domain/adjustment"
	"github.com/pulsehq/pulse-backend-go/internal/domain/analytics"
	"github.com/pulsehq/pulse-backend-go/internal/domain/attendance"
	"github.com/pulsehq/pulse-backend-go/internal/domain/leave"
	"github.com/pulsehq/pulse-backend-go/internal/domain/project"
	"github.com/pulsehq/pulse-backend-go/internal/domain/user"
)

const pageSize = 100

// AnalyticsServiceImpl computes the summary by walking the other
// collections; nothing is precomputed or cached.
type AnalyticsServiceImpl struct {
	userRepo       user.Repository
	attendanceRepo attendance.Repository
	leaveRepo      leave.Repository
	adjustmentRepo adjustment.Repository
	projectRepo    project.ProjectRepository
	ticketRepo     project.TicketRepository
}

func NewAnalyticsService(
	userRepo user.Repository,
	attendanceRepo attendance.Repository,
	leaveRepo leave.Repository,
	adjustmentRepo adjustment.Repository,
	projectRepo project.ProjectRepository,
	ticketRepo project.TicketRepository,
) analytics.Service {
	return &AnalyticsServiceImpl{
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		adjustmentRepo: adjustmentRepo,
		projectRepo:    projectRepo,
		ticketRepo:     ticketRepo,
	}
}

// Summarize implements analytics.Service.
func (s *AnalyticsServiceImpl) Summarize(ctx context.Context, orgID string, filter analytics.SummaryFilter) (analytics.Summary, error) {
	summary := analytics.Summary{
		AttendanceByStatus: make(map[string]int),
		LeaveDaysByKind:    make(map[string]float64),
	}

	if err := s.addUserCounts(ctx, orgID, &summary); err != nil {
		return analytics.Summary{}, err
	}
	if err := s.addAttendanceCounts(ctx, orgID, filter, &summary); err != nil {
		return analytics.Summary{}, err
	}
	if err := s.addLeaveCounts(ctx, orgID, &summary); err != nil {
		return analytics.Summary{}, err
	}
	if err := s.addAdjustmentCounts(ctx, orgID, &summary); err != nil {
		return analytics.Summary{}, err
	}
	if err := s.addTicketCounts(ctx, orgID, filter, &summary); err != nil {
		return analytics.Summary{}, err
	}

	return summary, nil
}

func (s *AnalyticsServiceImpl) addUserCounts(ctx context.Context, orgID string, summary *analytics.Summary) error {
	page := 1
	for {
		users, total, err := s.userRepo.List(ctx, user.ListFilter{Page: page, Limit: pageSize}, orgID)
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}
		summary.Headcount = int(total)
		for _, u := range users {
			if u.IsActive {
				summary.ActiveUsers++
			}
		}
		if int64(page*pageSize) >= total {
			return nil
		}
		page++
	}
}

func (s *AnalyticsServiceImpl) addAttendanceCounts(ctx context.Context, orgID string, filter analytics.SummaryFilter, summary *analytics.Summary) error {
	page := 1
	for {
		records, total, err := s.attendanceRepo.List(ctx, attendance.ListFilter{
			From:  filter.From,
			To:    filter.To,
			Page:  page,
			Limit: pageSize,
		}, orgID)
		if err != nil {
			return fmt.Errorf("failed to list attendance records: %w", err)
		}
		for _, r := range records {
			summary.AttendanceByStatus[string(r.Status)]++
		}
		if int64(page*pageSize) >= total {
			return nil
		}
		page++
	}
}

func (s *AnalyticsServiceImpl) addLeaveCounts(ctx context.Context, orgID string, summary *analytics.Summary) error {
	page := 1
	for {
		requests, total, err := s.leaveRepo.List(ctx, leave.ListFilter{Page: page, Limit: pageSize}, orgID)
		if err != nil {
			return fmt.Errorf("failed to list leave requests: %w", err)
		}
		for _, r := range requests {
			switch r.Status {
			case leave.StatusApproved:
				summary.LeaveDaysByKind[string(r.Kind)] += r.DaysRequested
			case leave.StatusPending:
				summary.PendingLeave++
			}
		}
		if int64(page*pageSize) >= total {
			return nil
		}
		page++
	}
}

func (s *AnalyticsServiceImpl) addAdjustmentCounts(ctx context.Context, orgID string, summary *analytics.Summary) error {
	pending := adjustment.StatusPending
	_, total, err := s.adjustmentRepo.List(ctx, adjustment.ListFilter{Status: &pending, Page: 1, Limit: 1}, orgID)
	if err != nil {
		return fmt.Errorf("failed to list adjustment requests: %w", err)
	}
	summary.PendingAdjustments = int(total)
	return nil
}

func (s *AnalyticsServiceImpl) addTicketCounts(ctx context.Context, orgID string, filter analytics.SummaryFilter, summary *analytics.Summary) error {
	page := 1
	for {
		projects, total, err := s.projectRepo.List(ctx, project.ListFilter{Page: page, Limit: pageSize}, orgID)
		if err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}
		for _, p := range projects {
			tickets, err := s.ticketRepo.ListByProject(ctx, p.ID, orgID)
			if err != nil {
				return fmt.Errorf("failed to list tickets: %w", err)
			}
			for _, t := range tickets {
				if t.Status != project.StatusDone || t.CompletedAt == nil {
					continue
				}
				day := t.CompletedAt.Format("2006-01-02")
				if filter.From != "" && day < filter.From {
					continue
				}
				if filter.To != "" && day > filter.To {
					continue
				}
				summary.TicketsCompleted++
			}
		}
		if int64(page*pageSize) >= total {
			return nil
		}
		page++
	}
}
