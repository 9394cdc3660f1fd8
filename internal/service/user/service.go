package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pulsehq/pulse-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	userRepo user.Repository
}

func NewUserService(userRepo user.Repository) user.Service {
	return &UserServiceImpl{userRepo: userRepo}
}

// Create implements user.Service.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.Response, error) {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return user.Response{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if existing != nil {
		return user.Response{}, user.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.Response{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashed := string(hash)

	now := time.Now().UTC()
	newUser := user.User{
		ID:           uuid.NewString(),
		OrgID:        req.OrgID,
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		PasswordHash: &hashed,
		Role:         user.Role(req.Role),
		IsActive:     true,
		LeaveQuotas:  user.DefaultQuotas(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		return user.Response{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user.ToResponse(created), nil
}

// Get implements user.Service.
func (s *UserServiceImpl) Get(ctx context.Context, id string, orgID string) (user.Response, error) {
	userData, err := s.userRepo.GetByID(ctx, id, orgID)
	if err != nil {
		return user.Response{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if userData == nil {
		return user.Response{}, user.ErrUserNotFound
	}
	return user.ToResponse(*userData), nil
}

// List implements user.Service.
func (s *UserServiceImpl) List(ctx context.Context, filter user.ListFilter, orgID string) ([]user.Response, int64, error) {
	users, total, err := s.userRepo.List(ctx, filter, orgID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return user.ToResponses(users), total, nil
}

// Update implements user.Service.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.Response, error) {
	userData, err := s.userRepo.GetByID(ctx, req.ID, req.OrgID)
	if err != nil {
		return user.Response{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if userData == nil {
		return user.Response{}, user.ErrUserNotFound
	}

	if req.DisplayName != nil {
		userData.DisplayName = *req.DisplayName
	}
	if req.Role != nil {
		userData.Role = user.Role(*req.Role)
	}
	userData.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.Update(ctx, *userData); err != nil {
		return user.Response{}, fmt.Errorf("failed to update user: %w", err)
	}

	return user.ToResponse(*userData), nil
}

// SetActive implements user.Service.
func (s *UserServiceImpl) SetActive(ctx context.Context, id string, orgID string, isActive bool) (user.Response, error) {
	userData, err := s.userRepo.GetByID(ctx, id, orgID)
	if err != nil {
		return user.Response{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if userData == nil {
		return user.Response{}, user.ErrUserNotFound
	}

	userData.IsActive = isActive
	userData.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.Update(ctx, *userData); err != nil {
		return user.Response{}, fmt.Errorf("failed to update user: %w", err)
	}

	return user.ToResponse(*userData), nil
}

// ResetQuotas implements user.Service.
func (s *UserServiceImpl) ResetQuotas(ctx context.Context, id string, orgID string) (user.Response, error) {
	userData, err := s.userRepo.GetByID(ctx, id, orgID)
	if err != nil {
		return user.Response{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if userData == nil {
		return user.Response{}, user.ErrUserNotFound
	}

	userData.LeaveQuotas = user.DefaultQuotas()
	userData.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.Update(ctx, *userData); err != nil {
		return user.Response{}, fmt.Errorf("failed to update user: %w", err)
	}

	return user.ToResponse(*userData), nil
}
