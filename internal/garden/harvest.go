package garden

import (
	"context"
	"fmt"

	"github.com/verdantgames/GardenGrove_Go/internal/domain"
	"github.com/verdantgames/GardenGrove_Go/internal/event"
	"github.com/verdantgames/GardenGrove_Go/internal/logger"
	"github.com/verdantgames/GardenGrove_Go/internal/plot"
)

// HarvestPlant converts a mature plant into coins. The plant record stays in
// the state as harvested history; its square and world asset are released.
func (s *service) HarvestPlant(ctx context.Context, creds domain.Credentials, plantID string) (*domain.HarvestPlantResponse, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgHarvestPlantCalled, "visitorID", creds.VisitorID, "plantID", plantID)

	defer s.lockVisitor(creds.VisitorID)()

	state, err := s.store.Load(ctx, creds.VisitorID)
	if err != nil {
		return nil, err
	}

	reward, err := plot.HarvestPlant(state, plantID, s.catalog, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, creds.VisitorID, state, changeTagPlantHarvested); err != nil {
		return nil, err
	}

	seedID := state.Plants[plantID].SeedID
	s.finalizeHarvest(ctx, creds, plantID, seedID, reward, state.CoinsAvailable)

	log.Info("Plant harvested", "visitorID", creds.VisitorID, "plantID", plantID, "reward", reward, "coins", state.CoinsAvailable)
	return &domain.HarvestPlantResponse{
		PlantID:          plantID,
		Reward:           reward,
		CoinsAvailable:   state.CoinsAvailable,
		TotalCoinsEarned: state.TotalCoinsEarned,
		Message:          fmt.Sprintf("You earned %d coins!", reward),
	}, nil
}

func (s *service) finalizeHarvest(ctx context.Context, creds domain.Credentials, plantID string, seedID, reward, coinsAvailable int) {
	err := s.gateway.TriggerParticle(ctx, creds, plantID, particleSparkle)
	logSideEffectError(ctx, "trigger_particle", err)

	s.removePlantAsset(ctx, creds, plantID)

	err = s.gateway.FireToast(ctx, creds, toastTitleHarvested, fmt.Sprintf("+%d coins", reward))
	logSideEffectError(ctx, "fire_toast", err)

	s.publish(ctx, event.NewPlantHarvestedEvent(creds.VisitorID, plantID, seedID, reward, coinsAvailable))
}
