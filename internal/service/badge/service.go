package badge

import (
	"context"
	"fmt"

	"github.com/pulsehq/pulse-backend-go/internal/domain/badge"
)

type BadgeServiceImpl struct {
	badgeRepo badge.Repository
}

func NewBadgeService(badgeRepo badge.Repository) badge.Service {
	return &BadgeServiceImpl{badgeRepo: badgeRepo}
}

// Get implements badge.Service.
func (s *BadgeServiceImpl) Get(ctx context.Context, id string) (badge.Badge, error) {
	b, err := s.badgeRepo.GetByID(ctx, id)
	if err != nil {
		return badge.Badge{}, fmt.Errorf("failed to get badge: %w", err)
	}
	if b == nil {
		return badge.Badge{}, badge.ErrBadgeNotFound
	}
	return *b, nil
}

// List implements badge.Service.
func (s *BadgeServiceImpl) List(ctx context.Context, filter badge.ListFilter) ([]badge.Badge, int64, error) {
	badges, total, err := s.badgeRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list badges: %w", err)
	}
	return badges, total, nil
}
