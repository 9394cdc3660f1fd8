package adjustment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pulsehq/pulse-backend-go/internal/domain/adjustment"
	"github.com/pulsehq/pulse-backend-go/internal/domain/attendance"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/events"
	"github.com/pulsehq/pulse-backend-go/internal/repository"
)

type AdjustmentServiceImpl struct {
	atomic         repository.Atomic
	adjustmentRepo adjustment.Repository
	attendanceRepo attendance.Repository
	bus            *events.Bus
}

func NewAdjustmentService(atomic repository.Atomic, adjustmentRepo adjustment.Repository, attendanceRepo attendance.Repository, bus *events.Bus) adjustment.Service {
	return &AdjustmentServiceImpl{
		atomic:         atomic,
		adjustmentRepo: adjustmentRepo,
		attendanceRepo: attendanceRepo,
		bus:            bus,
	}
}

// Submit implements adjustment.Service.
func (s *AdjustmentServiceImpl) Submit(ctx context.Context, req adjustment.CreateRequestRequest) (adjustment.Request, error) {
	checkIn, checkOut := req.Times()
	if checkIn == nil && checkOut == nil {
		return adjustment.Request{}, adjustment.ErrNothingToAdjust
	}

	now := time.Now().UTC()
	request := adjustment.Request{
		ID:                uuid.NewString(),
		OrgID:             req.OrgID,
		UserID:            req.UserID,
		Date:              req.Date,
		RequestedCheckIn:  checkIn,
		RequestedCheckOut: checkOut,
		Reason:            req.Reason,
		Status:            adjustment.StatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := s.adjustmentRepo.Create(ctx, request)
	if err != nil {
		return adjustment.Request{}, fmt.Errorf("failed to create adjustment request: %w", err)
	}
	return created, nil
}

// Get implements adjustment.Service.
func (s *AdjustmentServiceImpl) Get(ctx context.Context, id string, orgID string) (adjustment.Request, error) {
	request, err := s.adjustmentRepo.GetByID(ctx, id, orgID)
	if err != nil {
		return adjustment.Request{}, fmt.Errorf("failed to get adjustment request: %w", err)
	}
	if request == nil {
		return adjustment.Request{}, adjustment.ErrRequestNotFound
	}
	return *request, nil
}

// Approve implements adjustment.Service. The status change and the rewrite
// of the attendance record commit or roll back together.
func (s *AdjustmentServiceImpl) Approve(ctx context.Context, id string, orgID string, approverID string) (adjustment.Request, error) {
	var approved adjustment.Request

	err := s.atomic.RunAtomic(ctx, func(ctx context.Context) error {
		request, err := s.adjustmentRepo.GetByID(ctx, id, orgID)
		if err != nil {
			return fmt.Errorf("failed to get adjustment request: %w", err)
		}
		if request == nil {
			return adjustment.ErrRequestNotFound
		}
		if request.Status.IsTerminal() {
			return adjustment.ErrRequestAlreadyProcessed
		}

		record, err := s.attendanceRepo.Get(ctx, request.UserID, request.Date, orgID)
		if err != nil {
			return fmt.Errorf("failed to get attendance record: %w", err)
		}

		now := time.Now().UTC()
		if record == nil {
			record = &attendance.Record{
				ID:        attendance.DocID(request.UserID, request.Date),
				OrgID:     orgID,
				UserID:    request.UserID,
				Date:      request.Date,
				CreatedAt: now,
			}
		}

		if request.RequestedCheckIn != nil {
			record.CheckInTime = request.RequestedCheckIn
		}
		if request.RequestedCheckOut != nil {
			record.CheckOutTime = request.RequestedCheckOut
		}
		record.Status = attendance.StatusPresent
		if record.CheckInTime != nil && record.CheckOutTime != nil {
			hours := attendance.HoursBetween(*record.CheckInTime, *record.CheckOutTime)
			record.TotalHours = &hours
		}
		record.UpdatedAt = now

		if _, err := s.attendanceRepo.Put(ctx, *record); err != nil {
			return fmt.Errorf("failed to store attendance record: %w", err)
		}

		request.Status = adjustment.StatusApproved
		request.ResolvedBy = &approverID
		request.ResolvedAt = &now
		request.UpdatedAt = now

		if err := s.adjustmentRepo.Update(ctx, *request); err != nil {
			return fmt.Errorf("failed to update adjustment request: %w", err)
		}

		approved = *request
		return nil
	})
	if err != nil {
		return adjustment.Request{}, err
	}

	s.bus.Publish(events.Event{
		Topic: events.TopicRequestResolved,
		OrgID: approved.OrgID,
		Data:  approved,
	})
	return approved, nil
}

// Reject implements adjustment.Service.
func (s *AdjustmentServiceImpl) Reject(ctx context.Context, id string, orgID string, approverID string) (adjustment.Request, error) {
	request, err := s.adjustmentRepo.GetByID(ctx, id, orgID)
	if err != nil {
		return adjustment.Request{}, fmt.Errorf("failed to get adjustment request: %w", err)
	}
	if request == nil {
		return adjustment.Request{}, adjustment.ErrRequestNotFound
	}
	if request.Status.IsTerminal() {
		return adjustment.Request{}, adjustment.ErrRequestAlreadyProcessed
	}

	now := time.Now().UTC()
	request.Status = adjustment.StatusRejected
	request.ResolvedBy = &approverID
	request.ResolvedAt = &now
	request.UpdatedAt = now

	if err := s.adjustmentRepo.Update(ctx, *request); err != nil {
		return adjustment.Request{}, fmt.Errorf("failed to update adjustment request: %w", err)
	}

	s.bus.Publish(events.Event{
		Topic: events.TopicRequestResolved,
		OrgID: request.OrgID,
		Data:  *request,
	})
	return *request, nil
}

// Cancel implements adjustment.Service.
func (s *AdjustmentServiceImpl) Cancel(ctx context.Context, id string, orgID string, userID string) (adjustment.Request, error) {
	request, err := s.adjustmentRepo.GetByID(ctx, id, orgID)
	if err != nil {
		return adjustment.Request{}, fmt.Errorf("failed to get adjustment request: %w", err)
	}
	if request == nil {
		return adjustment.Request{}, adjustment.ErrRequestNotFound
	}
	if request.UserID != userID {
		return adjustment.Request{}, adjustment.ErrNotRequestOwner
	}
	if request.Status.IsTerminal() {
		return adjustment.Request{}, adjustment.ErrRequestAlreadyProcessed
	}

	now := time.Now().UTC()
	request.Status = adjustment.StatusCancelled
	request.ResolvedBy = &userID
	request.ResolvedAt = &now
	request.UpdatedAt = now

	if err := s.adjustmentRepo.Update(ctx, *request); err != nil {
		return adjustment.Request{}, fmt.Errorf("failed to update adjustment request: %w", err)
	}
	return *request, nil
}

// ListMine implements adjustment.Service.
func (s *AdjustmentServiceImpl) ListMine(ctx context.Context, userID string, orgID string) ([]adjustment.Request, error) {
	requests, err := s.adjustmentRepo.ListByUser(ctx, userID, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustment requests: %w", err)
	}
	return requests, nil
}

// List implements adjustment.Service.
func (s *AdjustmentServiceImpl) List(ctx context.Context, filter adjustment.ListFilter, orgID string) ([]adjustment.Request, int64, error) {
	requests, total, err := s.adjustmentRepo.List(ctx, filter, orgID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list adjustment requests: %w", err)
	}
	return requests, total, nil
}
