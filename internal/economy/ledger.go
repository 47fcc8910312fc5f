// Package economy enforces the coin rules: affordability, seed unlocks,
// purchase debits and harvest rewards. All transitions keep coinsAvailable
// non-negative and totalCoinsEarned monotone.
package economy

import (
	"fmt"
	"time"

	"github.com/verdantgames/GardenGrove_Go/internal/domain"
)

// CanAfford reports whether the visitor can cover the given cost.
func CanAfford(eco *domain.VisitorEconomy, cost int) bool {
	return eco.CoinsAvailable >= cost
}

// IsSeedUnlocked reports whether the visitor may plant the given seed. Free
// seeds are implicitly unlocked; paid seeds require a recorded purchase.
func IsSeedUnlocked(eco *domain.VisitorEconomy, seed domain.SeedDefinition) bool {
	if seed.IsFree() {
		return true
	}
	_, purchased := eco.SeedsPurchased[seed.ID]
	return purchased
}

// Purchase unlocks a paid seed for the visitor, debiting its cost.
// Purchasing a free seed is an error, not a silent no-op: free seeds never
// need purchase. Repeat purchases and unaffordable purchases are rejected
// without touching the balance.
func Purchase(eco *domain.VisitorEconomy, seed domain.SeedDefinition, now time.Time) error {
	if seed.IsFree() {
		return fmt.Errorf("%w: %s is free", domain.ErrSeedAlreadyUnlocked, seed.Name)
	}
	if _, purchased := eco.SeedsPurchased[seed.ID]; purchased {
		return fmt.Errorf("%w: %s was already purchased", domain.ErrSeedAlreadyUnlocked, seed.Name)
	}
	if !CanAfford(eco, seed.Cost) {
		return fmt.Errorf("%w: you have %d, but %s costs %d",
			domain.ErrInsufficientCoins, eco.CoinsAvailable, seed.Name, seed.Cost)
	}

	eco.CoinsAvailable -= seed.Cost
	if eco.SeedsPurchased == nil {
		eco.SeedsPurchased = make(map[int]time.Time)
	}
	eco.SeedsPurchased[seed.ID] = now
	return nil
}

// ApplyHarvestReward credits the seed's reward to both the spendable balance
// and the lifetime counter. Harvest eligibility is the caller's
// responsibility.
func ApplyHarvestReward(eco *domain.VisitorEconomy, seed domain.SeedDefinition) {
	eco.CoinsAvailable += seed.Reward
	eco.TotalCoinsEarned += seed.Reward
}
