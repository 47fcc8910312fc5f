// Package growth derives a plant's discrete growth level from wall-clock
// time. Growth is pull-based: there is no scheduler, every read path
// recomputes from the planting timestamp, so state stays consistent no
// matter how long a visitor was away.
package growth

import (
	"time"

	"github.com/verdantgames/GardenGrove_Go/internal/domain"
)

// CurrentLevel computes the growth level reached at `now` for a plant
// dropped at `plantedAt`. The result is clamped to [0, HarvestLevel].
func CurrentLevel(plantedAt, now time.Time, seed domain.SeedDefinition) int {
	elapsed := now.Sub(plantedAt)
	if elapsed < 0 {
		elapsed = 0
	}

	levelDuration := time.Duration(seed.GrowthTime) * time.Second / time.Duration(seed.HarvestLevel)
	level := int(elapsed / levelDuration)
	if level > seed.HarvestLevel {
		level = seed.HarvestLevel
	}
	return level
}

// Level returns the level to report for a plant: the freshly derived level,
// but never below the persisted one. Derived levels cannot regress for a
// fixed plantedAt, so this only guards against a stored value being clobbered.
func Level(plant domain.Plant, seed domain.SeedDefinition, now time.Time) int {
	level := CurrentLevel(plant.PlantedAt, now, seed)
	if level < plant.GrowLevel {
		return plant.GrowLevel
	}
	return level
}

// IsReadyForHarvest reports whether the plant has reached its seed's harvest
// level and has not been harvested yet.
func IsReadyForHarvest(plant domain.Plant, seed domain.SeedDefinition, now time.Time) bool {
	return !plant.WasHarvested && Level(plant, seed, now) >= seed.HarvestLevel
}

// TimeToNextLevel returns how long until the plant reaches its next growth
// level, and false once it is at harvest level. Display only.
func TimeToNextLevel(plant domain.Plant, seed domain.SeedDefinition, now time.Time) (time.Duration, bool) {
	level := Level(plant, seed, now)
	if level >= seed.HarvestLevel {
		return 0, false
	}

	levelDuration := time.Duration(seed.GrowthTime) * time.Second / time.Duration(seed.HarvestLevel)
	nextAt := plant.PlantedAt.Add(time.Duration(level+1) * levelDuration)
	remaining := nextAt.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// TimeToHarvest returns how long until the plant is harvestable, and false
// if it already is.
func TimeToHarvest(plant domain.Plant, seed domain.SeedDefinition, now time.Time) (time.Duration, bool) {
	if Level(plant, seed, now) >= seed.HarvestLevel {
		return 0, false
	}
	matureAt := plant.PlantedAt.Add(time.Duration(seed.GrowthTime) * time.Second)
	remaining := matureAt.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}
