package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/pulsehq/pulse-backend-go/internal/domain/attendance"
	"github.com/pulsehq/pulse-backend-go/internal/domain/leave"
	"github.com/pulsehq/pulse-backend-go/internal/domain/org"
	"github.com/pulsehq/pulse-backend-go/internal/domain/user"
)

const pageSize = 100

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
	userRepo       user.Repository
	orgRepo        org.Repository
	leaveRepo      leave.Repository
}

func NewAttendanceService(attendanceRepo attendance.Repository, userRepo user.Repository, orgRepo org.Repository, leaveRepo leave.Repository) attendance.Service {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		orgRepo:        orgRepo,
		leaveRepo:      leaveRepo,
	}
}

// CheckIn implements attendance.Service.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.Record, error) {
	record, err := s.attendanceRepo.Get(ctx, req.UserID, req.Date, req.OrgID)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if record != nil && record.CheckInTime != nil {
		return attendance.Record{}, attendance.ErrAlreadyCheckedIn
	}

	now := time.Now().UTC()
	if record == nil {
		record = &attendance.Record{
			ID:        attendance.DocID(req.UserID, req.Date),
			OrgID:     req.OrgID,
			UserID:    req.UserID,
			Date:      req.Date,
			CreatedAt: now,
		}
	}
	record.CheckInTime = &now
	record.Status = attendance.StatusPresent
	record.UpdatedAt = now

	saved, err := s.attendanceRepo.Put(ctx, *record)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to store attendance record: %w", err)
	}
	return saved, nil
}

// CheckOut implements attendance.Service.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.Record, error) {
	record, err := s.attendanceRepo.Get(ctx, req.UserID, req.Date, req.OrgID)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if record == nil || record.CheckInTime == nil {
		return attendance.Record{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOutTime != nil {
		return attendance.Record{}, attendance.ErrAlreadyCheckedOut
	}

	now := time.Now().UTC()
	hours := attendance.HoursBetween(*record.CheckInTime, now)
	record.CheckOutTime = &now
	record.TotalHours = &hours
	record.UpdatedAt = now

	saved, err := s.attendanceRepo.Put(ctx, *record)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to store attendance record: %w", err)
	}
	return saved, nil
}

// GetDay implements attendance.Service.
func (s *AttendanceServiceImpl) GetDay(ctx context.Context, userID string, date string, orgID string) (attendance.Record, error) {
	record, err := s.attendanceRepo.Get(ctx, userID, date, orgID)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if record == nil {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return *record, nil
}

// ListMine implements attendance.Service.
func (s *AttendanceServiceImpl) ListMine(ctx context.Context, userID string, from, to string, orgID string) ([]attendance.Record, error) {
	records, err := s.attendanceRepo.ListByUser(ctx, userID, from, to, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return records, nil
}

// List implements attendance.Service.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter, orgID string) ([]attendance.Record, int64, error) {
	records, total, err := s.attendanceRepo.List(ctx, filter, orgID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return records, total, nil
}

// MarkAbsences implements attendance.Service. Runs nightly for the previous
// workday; weekends are skipped outright.
func (s *AttendanceServiceImpl) MarkAbsences(ctx context.Context, date string) (int, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return 0, nil
	}

	written := 0
	page := 1
	for {
		orgs, total, err := s.orgRepo.List(ctx, org.ListFilter{Page: page, Limit: pageSize})
		if err != nil {
			return written, fmt.Errorf("failed to list orgs: %w", err)
		}
		for _, o := range orgs {
			if !o.IsActive {
				continue
			}
			n, err := s.markOrgAbsences(ctx, o.ID, date)
			written += n
			if err != nil {
				return written, err
			}
		}
		if int64(page*pageSize) >= total {
			break
		}
		page++
	}
	return written, nil
}

func (s *AttendanceServiceImpl) markOrgAbsences(ctx context.Context, orgID string, date string) (int, error) {
	written := 0
	active := true
	page := 1
	for {
		users, total, err := s.userRepo.List(ctx, user.ListFilter{IsActive: &active, Page: page, Limit: pageSize}, orgID)
		if err != nil {
			return written, fmt.Errorf("failed to list users: %w", err)
		}
		for _, u := range users {
			record, err := s.attendanceRepo.Get(ctx, u.ID, date, orgID)
			if err != nil {
				return written, fmt.Errorf("failed to get attendance record: %w", err)
			}
			if record != nil {
				continue
			}

			status := attendance.StatusAbsent
			onLeave, err := s.hasApprovedLeave(ctx, u.ID, orgID, date)
			if err != nil {
				return written, err
			}
			if onLeave {
				status = attendance.StatusOnLeave
			}

			now := time.Now().UTC()
			_, err = s.attendanceRepo.Put(ctx, attendance.Record{
				ID:        attendance.DocID(u.ID, date),
				OrgID:     orgID,
				UserID:    u.ID,
				Date:      date,
				Status:    status,
				CreatedAt: now,
				UpdatedAt: now,
			})
			if err != nil {
				return written, fmt.Errorf("failed to store attendance record: %w", err)
			}
			written++
		}
		if int64(page*pageSize) >= total {
			break
		}
		page++
	}
	return written, nil
}

func (s *AttendanceServiceImpl) hasApprovedLeave(ctx context.Context, userID string, orgID string, date string) (bool, error) {
	requests, err := s.leaveRepo.ListByUser(ctx, userID, orgID)
	if err != nil {
		return false, fmt.Errorf("failed to list leave requests: %w", err)
	}
	for _, r := range requests {
		if r.Status == leave.StatusApproved && r.StartDate <= date && date <= r.EndDate {
			return true, nil
		}
	}
	return false, nil
}
