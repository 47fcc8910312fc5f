// Package plot implements the state machine for a visitor's claimed plot:
// claiming, planting into squares, harvesting and bulk growth refresh.
// Each square moves Empty -> Occupied -> ReadyForHarvest -> Empty; harvest
// is the only transition out of occupancy, there is no wither or decay.
package plot

import (
	"fmt"
	"time"

	"github.com/verdantgames/GardenGrove_Go/internal/domain"
	"github.com/verdantgames/GardenGrove_Go/internal/economy"
	"github.com/verdantgames/GardenGrove_Go/internal/growth"
)

// SeedLookup resolves seed definitions; satisfied by seed.Catalog.
type SeedLookup interface {
	Definition(seedID int) (domain.SeedDefinition, error)
}

// Claim attaches a fresh all-empty plot to the visitor's state. A visitor
// who already owns a plot is rejected, as is a plot asset claimed by a
// different visitor on the shared side.
func Claim(state *domain.VisitorGardenState, ownership *domain.PlotOwnership, profileID, plotAssetID string, now time.Time) error {
	if state.OwnedPlot != nil {
		return fmt.Errorf("%w: each player can only claim one plot", domain.ErrAlreadyOwnsPlot)
	}
	if ownership != nil && ownership.OwnerID != "" && ownership.OwnerID != profileID {
		owner := ownership.OwnerName
		if owner == "" {
			owner = "another player"
		}
		return fmt.Errorf("%w: claimed by %s", domain.ErrPlotOwnedByOther, owner)
	}

	state.OwnedPlot = domain.NewPlot(plotAssetID, now)
	return nil
}

// ValidatePlacement checks every planting precondition without mutating the
// state: a claimed plot, an in-range empty square and an unlocked seed.
// Callers that must acquire a plant id from an external side effect before
// committing run this first so the side effect is never wasted.
func ValidatePlacement(state *domain.VisitorGardenState, squareIndex int, seed domain.SeedDefinition) error {
	if state.OwnedPlot == nil {
		return fmt.Errorf("%w: claim a plot before planting", domain.ErrNoPlot)
	}
	if squareIndex < 0 || squareIndex >= domain.PlotSquareCount {
		return fmt.Errorf("%w: %d is not in [0, %d)",
			domain.ErrInvalidSquare, squareIndex, domain.PlotSquareCount)
	}
	if state.OwnedPlot.Squares[squareIndex] != "" {
		return fmt.Errorf("%w: square %d", domain.ErrSquareOccupied, squareIndex)
	}
	if !economy.IsSeedUnlocked(&state.VisitorEconomy, seed) {
		return fmt.Errorf("%w: purchase %s first", domain.ErrSeedLocked, seed.Name)
	}
	return nil
}

// PlantSeed occupies a square with a new plant at growth level 0. The plant
// is keyed by the dropped-asset id that represents it in the world. Planting
// requires a claimed plot, an in-range empty square and an unlocked seed;
// paid seeds were charged at purchase time, planting them is free.
func PlantSeed(state *domain.VisitorGardenState, plantID string, squareIndex int, seed domain.SeedDefinition, now time.Time) (domain.Plant, error) {
	if err := ValidatePlacement(state, squareIndex, seed); err != nil {
		return domain.Plant{}, err
	}

	plant := domain.Plant{
		SeedID:      seed.ID,
		PlantedAt:   now,
		GrowLevel:   0,
		SquareIndex: squareIndex,
		LastUpdated: now,
	}
	state.OwnedPlot.Squares[squareIndex] = plantID
	if state.Plants == nil {
		state.Plants = make(map[string]domain.Plant)
	}
	state.Plants[plantID] = plant
	return plant, nil
}

// HarvestPlant converts a mature plant into coins. The plant record is kept
// as harvested history; its square is freed for replanting. Returns the
// reward that was credited.
func HarvestPlant(state *domain.VisitorGardenState, plantID string, seeds SeedLookup, now time.Time) (int, error) {
	plant, ok := state.Plants[plantID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrPlantNotFound, plantID)
	}
	if plant.WasHarvested {
		return 0, domain.ErrAlreadyHarvested
	}

	seed, err := seeds.Definition(plant.SeedID)
	if err != nil {
		return 0, fmt.Errorf("plant %s references unknown seed: %w", plantID, err)
	}

	level := growth.Level(plant, seed, now)
	if level < seed.HarvestLevel {
		return 0, fmt.Errorf("%w: growth level %d/%d",
			domain.ErrNotReadyForHarvest, level, seed.HarvestLevel)
	}

	harvestedAt := now
	plant.GrowLevel = level
	plant.WasHarvested = true
	plant.HarvestedAt = &harvestedAt
	plant.LastUpdated = now
	state.Plants[plantID] = plant

	if state.OwnedPlot != nil &&
		plant.SquareIndex >= 0 && plant.SquareIndex < len(state.OwnedPlot.Squares) &&
		state.OwnedPlot.Squares[plant.SquareIndex] == plantID {
		state.OwnedPlot.Squares[plant.SquareIndex] = ""
	}

	economy.ApplyHarvestReward(&state.VisitorEconomy, seed)
	return seed.Reward, nil
}

// RefreshGrowth recomputes every unharvested plant's level from the clock
// and persists any increase into the state. Returns the plants whose level
// rose; an empty result means nothing needs saving.
func RefreshGrowth(state *domain.VisitorGardenState, seeds SeedLookup, now time.Time) []domain.GrowthUpdate {
	var updates []domain.GrowthUpdate
	for plantID, plant := range state.Plants {
		if plant.WasHarvested {
			continue
		}
		seed, err := seeds.Definition(plant.SeedID)
		if err != nil {
			// Catalog drift; leave the plant untouched rather than guess.
			continue
		}

		level := growth.Level(plant, seed, now)
		if level <= plant.GrowLevel {
			continue
		}

		updates = append(updates, domain.GrowthUpdate{
			PlantID:       plantID,
			PreviousLevel: plant.GrowLevel,
			NewLevel:      level,
		})
		plant.GrowLevel = level
		plant.LastUpdated = now
		state.Plants[plantID] = plant
	}
	return updates
}

// ClearAll frees every square and drops all plant records, harvested history
// included. Economy is untouched. Operator use only; returns the ids of the
// removed plants so their world assets can be deleted.
func ClearAll(state *domain.VisitorGardenState) []string {
	removed := make([]string, 0, len(state.Plants))
	for plantID := range state.Plants {
		removed = append(removed, plantID)
	}
	state.Plants = make(map[string]domain.Plant)
	if state.OwnedPlot != nil {
		state.OwnedPlot.Squares = make([]string, domain.PlotSquareCount)
	}
	return removed
}
