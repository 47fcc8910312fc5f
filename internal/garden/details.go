package garden

import (
	"context"
	"fmt"

	"github.com/verdantgames/GardenGrove_Go/internal/domain"
	"github.com/verdantgames/GardenGrove_Go/internal/growth"
	"github.com/verdantgames/GardenGrove_Go/internal/logger"
)

// GetPlantDetails returns the drill-down view for one plant: current level,
// stage image, and the countdowns to the next level and to harvest.
func (s *service) GetPlantDetails(ctx context.Context, creds domain.Credentials, plantID string) (*domain.PlantDetailsResponse, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGetPlantDetailsCalled, "visitorID", creds.VisitorID, "plantID", plantID)

	state, err := s.store.Load(ctx, creds.VisitorID)
	if err != nil {
		return nil, err
	}

	plant, ok := state.Plants[plantID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlantNotFound, plantID)
	}

	def, err := s.catalog.Definition(plant.SeedID)
	if err != nil {
		return nil, fmt.Errorf("plant %s references unknown seed: %w", plantID, err)
	}

	now := s.now()
	resp := &domain.PlantDetailsResponse{
		Plant:               s.plantView(plantID, plant, now),
		GrowthTimePerLevel:  int64(def.GrowthTime / def.HarvestLevel),
		TotalGrowthTime:     int64(def.GrowthTime),
		RewardWhenHarvested: def.Reward,
	}

	if remaining, growing := growth.TimeToNextLevel(plant, def, now); growing {
		secs := int64(remaining.Seconds())
		resp.SecondsToNextLevel = &secs
	}
	if remaining, growing := growth.TimeToHarvest(plant, def, now); growing {
		secs := int64(remaining.Seconds())
		resp.SecondsToHarvest = &secs
	}

	return resp, nil
}

// GetSeedMenu returns the catalog annotated with the visitor's unlocks and
// balance, the data behind the purchase UI.
func (s *service) GetSeedMenu(ctx context.Context, creds domain.Credentials) (*domain.SeedMenuResponse, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGetSeedMenuCalled, "visitorID", creds.VisitorID)

	state, err := s.store.Load(ctx, creds.VisitorID)
	if err != nil {
		return nil, err
	}

	return &domain.SeedMenuResponse{
		Seeds:          s.seedMenu(state),
		CoinsAvailable: state.CoinsAvailable,
	}, nil
}
