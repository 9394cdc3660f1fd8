package fixture

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsehq/pulse-backend-go/internal/domain/badge"
	"github.com/pulsehq/pulse-backend-go/internal/domain/user"
	"github.com/pulsehq/pulse-backend-go/internal/fixtures"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/faults"
)

func TestStore_DeterministicSeed(t *testing.T) {
	ctx := context.Background()

	first := NewUserRepository(NewStore(faults.Disabled()))
	second := NewUserRepository(NewStore(faults.Disabled()))

	usersA, totalA, err := first.List(ctx, user.ListFilter{Page: 1, Limit: 20}, fixtures.OrgID)
	require.NoError(t, err)
	usersB, totalB, err := second.List(ctx, user.ListFilter{Page: 1, Limit: 20}, fixtures.OrgID)
	require.NoError(t, err)

	assert.Equal(t, int64(3), totalA)
	assert.Equal(t, totalA, totalB)
	assert.Equal(t, usersA, usersB)
}

func TestUserRepository_OrgIsolation(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore(faults.Disabled()))

	found, err := repo.GetByID(ctx, fixtures.AliceID, fixtures.OrgID)
	require.NoError(t, err)
	require.NotNil(t, found)

	missing, err := repo.GetByID(ctx, fixtures.AliceID, "org-other")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_ListFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore(faults.Disabled()))

	admin := user.RoleAdmin
	admins, total, err := repo.List(ctx, user.ListFilter{Role: &admin, Page: 1, Limit: 20}, fixtures.OrgID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, admins, 1)
	assert.Equal(t, fixtures.AdminID, admins[0].ID)

	matched, total, err := repo.List(ctx, user.ListFilter{Search: "alice", Page: 1, Limit: 20}, fixtures.OrgID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, matched, 1)
	assert.Equal(t, fixtures.AliceID, matched[0].ID)
}

func TestUserRepository_Pagination(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore(faults.Disabled()))

	page1, total, err := repo.List(ctx, user.ListFilter{Page: 1, Limit: 2}, fixtures.OrgID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, page1, 2)

	page2, _, err := repo.List(ctx, user.ListFilter{Page: 2, Limit: 2}, fixtures.OrgID)
	require.NoError(t, err)
	assert.Len(t, page2, 1)

	page3, _, err := repo.List(ctx, user.ListFilter{Page: 3, Limit: 2}, fixtures.OrgID)
	require.NoError(t, err)
	assert.Empty(t, page3)
}

func TestTicketRepository_SortedByOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewTicketRepository(NewStore(faults.Disabled()))

	tickets, err := repo.ListByProject(ctx, fixtures.ProjectID, fixtures.OrgID)
	require.NoError(t, err)
	require.Len(t, tickets, 4)

	for i := 1; i < len(tickets); i++ {
		if tickets[i].Status == tickets[i-1].Status {
			assert.LessOrEqual(t, tickets[i-1].Order, tickets[i].Order)
		}
	}
}

func TestBadgeRepository_CatalogQueries(t *testing.T) {
	ctx := context.Background()
	repo := NewBadgeRepository(NewStore(faults.Disabled()))

	all, total, err := repo.List(ctx, badge.ListFilter{Page: 1, Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(len(all)), total)
	require.NotEmpty(t, all)

	// Identical queries return identical pages
	again, totalAgain, err := repo.List(ctx, badge.ListFilter{Page: 1, Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, total, totalAgain)
	assert.Equal(t, all, again)

	found, err := repo.GetByID(ctx, all[0].ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, all[0].Name, found.Name)

	missing, err := repo.GetByID(ctx, "bdg-unknown")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_RunAtomic(t *testing.T) {
	store := NewStore(faults.Disabled())
	repo := NewUserRepository(store)
	ctx := context.Background()

	err := store.RunAtomic(ctx, func(ctx context.Context) error {
		alice, err := repo.GetByID(ctx, fixtures.AliceID, fixtures.OrgID)
		if err != nil {
			return err
		}
		alice.DisplayName = "Alice Updated"
		return repo.Update(ctx, *alice)
	})
	require.NoError(t, err)

	alice, err := repo.GetByID(ctx, fixtures.AliceID, fixtures.OrgID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Updated", alice.DisplayName)
}
