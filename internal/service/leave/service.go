package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pulsehq/pulse-backend-go/internal/domain/leave"
	"github.com/pulsehq/pulse-backend-go/internal/domain/user"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/events"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/validator"
	"github.com/pulsehq/pulse-backend-go/internal/repository"
)

type LeaveServiceImpl struct {
	atomic    repository.Atomic
	leaveRepo leave.Repository
	userRepo  user.Repository
	bus       *events.Bus
}

func NewLeaveService(atomic repository.Atomic, leaveRepo leave.Repository, userRepo user.Repository, bus *events.Bus) leave.Service {
	return &LeaveServiceImpl{
		atomic:    atomic,
		leaveRepo: leaveRepo,
		userRepo:  userRepo,
		bus:       bus,
	}
}

// Submit implements leave.Service.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.CreateRequestRequest) (leave.Request, error) {
	startDate, ok := validator.IsValidDate(req.StartDate)
	if !ok {
		return leave.Request{}, leave.ErrInvalidDateRange
	}
	endDate, ok := validator.IsValidDate(req.EndDate)
	if !ok || endDate.Before(startDate) {
		return leave.Request{}, leave.ErrInvalidDateRange
	}

	days := leave.BusinessDays(startDate, endDate)
	if leave.DurationType(req.Duration) == leave.DurationHalfDay {
		days *= 0.5
	}

	userData, err := s.userRepo.GetByID(ctx, req.UserID, req.OrgID)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if userData == nil {
		return leave.Request{}, user.ErrUserNotFound
	}

	quota := userData.LeaveQuotas[user.LeaveKind(req.Kind)]
	remaining := quota.Total - quota.Used

	now := time.Now().UTC()
	request := leave.Request{
		ID:            uuid.NewString(),
		OrgID:         req.OrgID,
		UserID:        req.UserID,
		Kind:          user.LeaveKind(req.Kind),
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Duration:      leave.DurationType(req.Duration),
		DaysRequested: days,
		Reason:        req.Reason,
		Status:        leave.StatusPending,
		IsOverdraft:   days > remaining,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.leaveRepo.Create(ctx, request)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

// Get implements leave.Service.
func (s *LeaveServiceImpl) Get(ctx context.Context, id string, orgID string) (leave.Request, error) {
	request, err := s.leaveRepo.GetByID(ctx, id, orgID)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	if request == nil {
		return leave.Request{}, leave.ErrRequestNotFound
	}
	return *request, nil
}

// Approve implements leave.Service. The status change and the quota booking
// commit or roll back together.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.ResolveRequestRequest) (leave.Request, error) {
	var approved leave.Request

	err := s.atomic.RunAtomic(ctx, func(ctx context.Context) error {
		request, err := s.leaveRepo.GetByID(ctx, req.ID, req.OrgID)
		if err != nil {
			return fmt.Errorf("failed to get leave request: %w", err)
		}
		if request == nil {
			return leave.ErrRequestNotFound
		}
		if request.Status.IsTerminal() {
			return leave.ErrRequestAlreadyProcessed
		}

		userData, err := s.userRepo.GetByID(ctx, request.UserID, req.OrgID)
		if err != nil {
			return fmt.Errorf("failed to get user by id: %w", err)
		}
		if userData == nil {
			return user.ErrUserNotFound
		}

		quota := userData.LeaveQuotas[request.Kind]
		quota.Used += request.DaysRequested
		userData.LeaveQuotas[request.Kind] = quota
		userData.UpdatedAt = time.Now().UTC()

		if err := s.userRepo.Update(ctx, *userData); err != nil {
			return fmt.Errorf("failed to update user quota: %w", err)
		}

		now := time.Now().UTC()
		request.Status = leave.StatusApproved
		request.ResolvedBy = &req.ResolvedBy
		request.ResolvedAt = &now
		request.UpdatedAt = now

		if err := s.leaveRepo.Update(ctx, *request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}

		approved = *request
		return nil
	})
	if err != nil {
		return leave.Request{}, err
	}

	s.bus.Publish(events.Event{
		Topic: events.TopicRequestResolved,
		OrgID: approved.OrgID,
		Data:  approved,
	})
	return approved, nil
}

// Reject implements leave.Service.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.ResolveRequestRequest) (leave.Request, error) {
	request, err := s.leaveRepo.GetByID(ctx, req.ID, req.OrgID)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	if request == nil {
		return leave.Request{}, leave.ErrRequestNotFound
	}
	if request.Status.IsTerminal() {
		return leave.Request{}, leave.ErrRequestAlreadyProcessed
	}

	now := time.Now().UTC()
	request.Status = leave.StatusRejected
	request.ResolvedBy = &req.ResolvedBy
	request.ResolvedAt = &now
	request.UpdatedAt = now

	if err := s.leaveRepo.Update(ctx, *request); err != nil {
		return leave.Request{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	s.bus.Publish(events.Event{
		Topic: events.TopicRequestResolved,
		OrgID: request.OrgID,
		Data:  *request,
	})
	return *request, nil
}

// Cancel implements leave.Service.
func (s *LeaveServiceImpl) Cancel(ctx context.Context, id string, orgID string, userID string) (leave.Request, error) {
	request, err := s.leaveRepo.GetByID(ctx, id, orgID)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	if request == nil {
		return leave.Request{}, leave.ErrRequestNotFound
	}
	if request.UserID != userID {
		return leave.Request{}, leave.ErrNotRequestOwner
	}
	if request.Status.IsTerminal() {
		return leave.Request{}, leave.ErrRequestAlreadyProcessed
	}

	now := time.Now().UTC()
	request.Status = leave.StatusCancelled
	request.ResolvedBy = &userID
	request.ResolvedAt = &now
	request.UpdatedAt = now

	if err := s.leaveRepo.Update(ctx, *request); err != nil {
		return leave.Request{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	return *request, nil
}

// Balances implements leave.Service.
func (s *LeaveServiceImpl) Balances(ctx context.Context, userID string, orgID string) ([]leave.Balance, error) {
	userData, err := s.userRepo.GetByID(ctx, userID, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	if userData == nil {
		return nil, user.ErrUserNotFound
	}

	balances := make([]leave.Balance, 0, len(user.Kinds()))
	for _, kind := range user.Kinds() {
		quota := userData.LeaveQuotas[kind]
		remaining := quota.Total - quota.Used
		balances = append(balances, leave.Balance{
			Kind:       kind,
			Total:      quota.Total,
			Used:       quota.Used,
			Remaining:  remaining,
			IsNegative: remaining < 0,
		})
	}
	return balances, nil
}

// ListMine implements leave.Service.
func (s *LeaveServiceImpl) ListMine(ctx context.Context, userID string, orgID string) ([]leave.Request, error) {
	requests, err := s.leaveRepo.ListByUser(ctx, userID, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nil
}

// List implements leave.Service.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.ListFilter, orgID string) ([]leave.Request, int64, error) {
	requests, total, err := s.leaveRepo.List(ctx, filter, orgID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, total, nil
}
