package garden

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantgames/GardenGrove_Go/internal/domain"
	"github.com/verdantgames/GardenGrove_Go/internal/repository/memory"
)

func TestStateStore_LoadInitializesFirstContact(t *testing.T) {
	repo := memory.NewGardenRepository()
	store := NewStateStore(repo)
	ctx := context.Background()

	state, err := store.Load(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStartingCoins, state.CoinsAvailable)
	assert.NotNil(t, state.Plants)
	assert.NotNil(t, state.SeedsPurchased)

	// The default was persisted, not just returned
	stored, err := repo.GetState(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStartingCoins, stored.CoinsAvailable)
	assert.Equal(t, int64(1), stored.Version)
}

func TestStateStore_LoadReinitializesIncompleteDocument(t *testing.T) {
	repo := memory.NewGardenRepository()
	store := NewStateStore(repo)
	ctx := context.Background()

	// A document from an older shape: no maps at all
	require.NoError(t, repo.InsertState(ctx, "visitor-1", &domain.VisitorGardenState{
		VisitorEconomy: domain.VisitorEconomy{CoinsAvailable: 3},
	}))

	state, err := store.Load(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStartingCoins, state.CoinsAvailable, "incomplete documents reset to the default")
	assert.NotNil(t, state.Plants)
	assert.True(t, state.IsComplete())
}

func TestStateStore_SavePropagatesConflict(t *testing.T) {
	repo := memory.NewGardenRepository()
	store := NewStateStore(repo)
	ctx := context.Background()

	first, err := store.Load(ctx, "visitor-1")
	require.NoError(t, err)
	second, err := repo.GetState(ctx, "visitor-1")
	require.NoError(t, err)

	first.CoinsAvailable = 7
	require.NoError(t, store.Save(ctx, "visitor-1", first, "first"))

	second.CoinsAvailable = 99
	err = store.Save(ctx, "visitor-1", second, "second")
	assert.ErrorIs(t, err, domain.ErrConflict)
}
