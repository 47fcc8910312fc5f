package garden

import (
	"context"
	"errors"

	"github.com/verdantgames/GardenGrove_Go/internal/domain"
	"github.com/verdantgames/GardenGrove_Go/internal/event"
	"github.com/verdantgames/GardenGrove_Go/internal/logger"
	"github.com/verdantgames/GardenGrove_Go/internal/plot"
)

// GetGameState returns the visitor's full state. Growth is pull-based: the
// read recomputes every plant's level and persists increases, so the client
// always sees current levels without any background scheduler.
func (s *service) GetGameState(ctx context.Context, creds domain.Credentials) (*domain.GameStateResponse, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGetGameStateCalled, "visitorID", creds.VisitorID)

	defer s.lockVisitor(creds.VisitorID)()

	state, err := s.store.Load(ctx, creds.VisitorID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	updates := plot.RefreshGrowth(state, s.catalog, now)
	if len(updates) > 0 {
		if err := s.store.Save(ctx, creds.VisitorID, state, changeTagPlantsGrown); err != nil {
			// The refresh is opportunistic; a lost race costs nothing since
			// levels are derived again on the next read.
			if errors.Is(err, domain.ErrConflict) {
				log.Warn(LogMsgGrowthRefreshSaveFailed, "visitorID", creds.VisitorID)
			} else {
				return nil, err
			}
		} else {
			s.syncGrownPlantAssets(ctx, creds, state, updates)
			s.publish(ctx, event.NewPlantsGrownEvent(creds.VisitorID, len(updates)))
		}
	}

	return &domain.GameStateResponse{
		CoinsAvailable:   state.CoinsAvailable,
		TotalCoinsEarned: state.TotalCoinsEarned,
		OwnedPlot:        state.OwnedPlot,
		Plants:           s.plantViews(state, now),
		Seeds:            s.seedMenu(state),
	}, nil
}

// syncGrownPlantAssets swaps each grown plant's world image to its new stage.
func (s *service) syncGrownPlantAssets(ctx context.Context, creds domain.Credentials, state *domain.VisitorGardenState, updates []domain.GrowthUpdate) {
	for _, update := range updates {
		plant, ok := state.Plants[update.PlantID]
		if !ok {
			continue
		}
		image, err := s.catalog.ImageForLevel(plant.SeedID, update.NewLevel)
		if err != nil {
			continue
		}
		err = s.gateway.UpdatePlantAsset(ctx, creds, update.PlantID, image, update.NewLevel)
		logSideEffectError(ctx, "update_plant_asset", err)
	}
}
