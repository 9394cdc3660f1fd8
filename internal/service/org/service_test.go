package org

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsehq/pulse-backend-go/internal/domain/org"
	"github.com/pulsehq/pulse-backend-go/internal/fixtures"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/faults"
	"github.com/pulsehq/pulse-backend-go/internal/repository/fixture"
)

func newOrgTestService() org.Service {
	store := fixture.NewStore(faults.Disabled())
	return NewOrgService(fixture.NewOrgRepository(store))
}

func TestOrgService_Create(t *testing.T) {
	ctx := context.Background()
	svc := newOrgTestService()

	created, err := svc.Create(ctx, org.CreateOrgRequest{
		Name:    "Acme",
		Slug:    "acme",
		OwnerID: fixtures.AdminID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)

	found, err := svc.GetBySlug(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestOrgService_Create_DuplicateSlug(t *testing.T) {
	svc := newOrgTestService()

	_, err := svc.Create(context.Background(), org.CreateOrgRequest{
		Name:    "Pulse Clone",
		Slug:    "pulse-demo",
		OwnerID: fixtures.AdminID,
	})
	assert.ErrorIs(t, err, org.ErrSlugExists)
}

func TestOrgService_Get_NotFound(t *testing.T) {
	svc := newOrgTestService()

	_, err := svc.Get(context.Background(), "org-missing")
	assert.ErrorIs(t, err, org.ErrOrgNotFound)
}

func TestOrgService_Update(t *testing.T) {
	ctx := context.Background()
	svc := newOrgTestService()

	name := "Pulse Renamed"
	active := false
	updated, err := svc.Update(ctx, org.UpdateOrgRequest{
		ID:       fixtures.OrgID,
		Name:     &name,
		IsActive: &active,
	})
	require.NoError(t, err)
	assert.Equal(t, "Pulse Renamed", updated.Name)
	assert.False(t, updated.IsActive)
}
