package org

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pulsehq/pulse-backend-go/internal/domain/org"
)

type OrgServiceImpl struct {
	orgRepo org.Repository
}

func NewOrgService(orgRepo org.Repository) org.Service {
	return &OrgServiceImpl{orgRepo: orgRepo}
}

// Create implements org.Service.
func (s *OrgServiceImpl) Create(ctx context.Context, req org.CreateOrgRequest) (org.Org, error) {
	existing, err := s.orgRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		return org.Org{}, fmt.Errorf("failed to get org by slug: %w", err)
	}
	if existing != nil {
		return org.Org{}, org.ErrSlugExists
	}

	now := time.Now().UTC()
	o := org.Org{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Slug:      req.Slug,
		OwnerID:   req.OwnerID,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.orgRepo.Create(ctx, o)
	if err != nil {
		return org.Org{}, fmt.Errorf("failed to create org: %w", err)
	}
	return created, nil
}

// Get implements org.Service.
func (s *OrgServiceImpl) Get(ctx context.Context, id string) (org.Org, error) {
	o, err := s.orgRepo.GetByID(ctx, id)
	if err != nil {
		return org.Org{}, fmt.Errorf("failed to get org: %w", err)
	}
	if o == nil {
		return org.Org{}, org.ErrOrgNotFound
	}
	return *o, nil
}

// GetBySlug implements org.Service.
func (s *OrgServiceImpl) GetBySlug(ctx context.Context, slug string) (org.Org, error) {
	o, err := s.orgRepo.GetBySlug(ctx, slug)
	if err != nil {
		return org.Org{}, fmt.Errorf("failed to get org by slug: %w", err)
	}
	if o == nil {
		return org.Org{}, org.ErrOrgNotFound
	}
	return *o, nil
}

// List implements org.Service.
func (s *OrgServiceImpl) List(ctx context.Context, filter org.ListFilter) ([]org.Org, int64, error) {
	orgs, total, err := s.orgRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orgs: %w", err)
	}
	return orgs, total, nil
}

// Update implements org.Service.
func (s *OrgServiceImpl) Update(ctx context.Context, req org.UpdateOrgRequest) (org.Org, error) {
	o, err := s.orgRepo.GetByID(ctx, req.ID)
	if err != nil {
		return org.Org{}, fmt.Errorf("failed to get org: %w", err)
	}
	if o == nil {
		return org.Org{}, org.ErrOrgNotFound
	}

	if req.Name != nil {
		o.Name = *req.Name
	}
	if req.IsActive != nil {
		o.IsActive = *req.IsActive
	}
	o.UpdatedAt = time.Now().UTC()

	if err := s.orgRepo.Update(ctx, *o); err != nil {
		return org.Org{}, fmt.Errorf("failed to update org: %w", err)
	}
	return *o, nil
}
