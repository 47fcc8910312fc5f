package economy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantgames/GardenGrove_Go/internal/domain"
)

var (
	carrot  = domain.SeedDefinition{ID: 1, Name: "Carrot", Cost: 0, Reward: 2, GrowthTime: 60, HarvestLevel: 10}
	pumpkin = domain.SeedDefinition{ID: 4, Name: "Pumpkin", Cost: 10, Reward: 25, GrowthTime: 300, HarvestLevel: 10}
)

func newEconomy(coins int) *domain.VisitorEconomy {
	return &domain.VisitorEconomy{
		CoinsAvailable: coins,
		SeedsPurchased: make(map[int]time.Time),
	}
}

func TestCanAfford(t *testing.T) {
	eco := newEconomy(10)

	assert.True(t, CanAfford(eco, 10))
	assert.True(t, CanAfford(eco, 0))
	assert.False(t, CanAfford(eco, 11))
}

func TestIsSeedUnlocked_FreeSeedAlwaysUnlocked(t *testing.T) {
	eco := newEconomy(0)

	assert.True(t, IsSeedUnlocked(eco, carrot))
	assert.False(t, IsSeedUnlocked(eco, pumpkin))
}

func TestPurchase_Success(t *testing.T) {
	eco := newEconomy(15)
	now := time.Now()

	err := Purchase(eco, pumpkin, now)

	require.NoError(t, err)
	assert.Equal(t, 5, eco.CoinsAvailable)
	assert.Equal(t, now, eco.SeedsPurchased[pumpkin.ID])
	assert.True(t, IsSeedUnlocked(eco, pumpkin))
}

func TestPurchase_FreeSeedRejected(t *testing.T) {
	eco := newEconomy(15)

	err := Purchase(eco, carrot, time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSeedAlreadyUnlocked)
	assert.Equal(t, 15, eco.CoinsAvailable)
}

func TestPurchase_AlreadyPurchasedRejected(t *testing.T) {
	eco := newEconomy(25)
	require.NoError(t, Purchase(eco, pumpkin, time.Now()))

	err := Purchase(eco, pumpkin, time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSeedAlreadyUnlocked)
	assert.Equal(t, 15, eco.CoinsAvailable, "balance unchanged by rejected purchase")
}

func TestPurchase_InsufficientCoins(t *testing.T) {
	eco := newEconomy(5)

	err := Purchase(eco, pumpkin, time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientCoins)
	assert.Contains(t, err.Error(), "you have 5")
	assert.Contains(t, err.Error(), "costs 10")
	assert.Equal(t, 5, eco.CoinsAvailable)
	assert.False(t, IsSeedUnlocked(eco, pumpkin))
}

func TestPurchase_NilPurchaseMapInitialized(t *testing.T) {
	eco := &domain.VisitorEconomy{CoinsAvailable: 10}

	err := Purchase(eco, pumpkin, time.Now())

	require.NoError(t, err)
	assert.True(t, IsSeedUnlocked(eco, pumpkin))
}

func TestApplyHarvestReward(t *testing.T) {
	eco := newEconomy(3)
	eco.TotalCoinsEarned = 7

	ApplyHarvestReward(eco, pumpkin)

	assert.Equal(t, 28, eco.CoinsAvailable)
	assert.Equal(t, 32, eco.TotalCoinsEarned)
}

func TestApplyHarvestReward_BothCountersMoveTogether(t *testing.T) {
	eco := newEconomy(0)

	ApplyHarvestReward(eco, carrot)
	ApplyHarvestReward(eco, carrot)

	assert.Equal(t, 4, eco.CoinsAvailable)
	assert.Equal(t, 4, eco.TotalCoinsEarned)
}
