package garden

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/verdantgames/GardenGrove_Go/internal/domain"
	"github.com/verdantgames/GardenGrove_Go/internal/event"
	"github.com/verdantgames/GardenGrove_Go/internal/logger"
	"github.com/verdantgames/GardenGrove_Go/internal/plot"
	"github.com/verdantgames/GardenGrove_Go/internal/world"
)

// PlantSeed drops a plant into an empty square. The dropped asset comes
// first because its id keys the plant record, so placement is validated
// before the drop and the asset is removed again if the save loses a race.
func (s *service) PlantSeed(ctx context.Context, creds domain.Credentials, seedID, squareIndex int) (*domain.PlantSeedResponse, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPlantSeedCalled, "visitorID", creds.VisitorID, "seedID", seedID, "squareIndex", squareIndex)

	def, err := s.catalog.Definition(seedID)
	if err != nil {
		return nil, err
	}

	defer s.lockVisitor(creds.VisitorID)()

	state, err := s.store.Load(ctx, creds.VisitorID)
	if err != nil {
		return nil, err
	}

	if err := plot.ValidatePlacement(state, squareIndex, def); err != nil {
		return nil, err
	}

	image, err := s.catalog.ImageForLevel(def.ID, 0)
	if err != nil {
		return nil, err
	}

	plantID, err := s.gateway.DropPlantAsset(ctx, world.DropPlantRequest{
		Credentials: creds,
		SeedID:      def.ID,
		SquareIndex: squareIndex,
		Image:       image,
		UniqueName:  fmt.Sprintf("plant-%s", uuid.NewString()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to drop plant asset: %w", err)
	}

	now := s.now()
	planted, err := plot.PlantSeed(state, plantID, squareIndex, def, now)
	if err != nil {
		// Placement was validated above; reaching here means a programming
		// error, but the dropped asset must not leak either way.
		s.removePlantAsset(ctx, creds, plantID)
		return nil, err
	}

	if err := s.store.Save(ctx, creds.VisitorID, state, changeTagSeedPlanted); err != nil {
		s.removePlantAsset(ctx, creds, plantID)
		return nil, err
	}

	s.finalizePlanting(ctx, creds, def, plantID, squareIndex)

	log.Info("Seed planted", "visitorID", creds.VisitorID, "seed", def.Name, "plantID", plantID, "squareIndex", squareIndex)
	return &domain.PlantSeedResponse{
		Plant:   s.plantView(plantID, planted, now),
		Message: fmt.Sprintf("%s planted in square %d.", def.Name, squareIndex),
	}, nil
}

func (s *service) removePlantAsset(ctx context.Context, creds domain.Credentials, plantID string) {
	err := s.gateway.RemoveDroppedAsset(ctx, creds, plantID)
	logSideEffectError(ctx, "remove_dropped_asset", err)
}

func (s *service) finalizePlanting(ctx context.Context, creds domain.Credentials, def domain.SeedDefinition, plantID string, squareIndex int) {
	err := s.gateway.TriggerParticle(ctx, creds, plantID, particleSparkle)
	logSideEffectError(ctx, "trigger_particle", err)

	text := fmt.Sprintf("Your %s will be ready in %d minutes.", def.Name, def.GrowthTime/60)
	err = s.gateway.FireToast(ctx, creds, toastTitlePlanted, text)
	logSideEffectError(ctx, "fire_toast", err)

	s.publish(ctx, event.NewSeedPlantedEvent(creds.VisitorID, plantID, def.ID, squareIndex))
}
