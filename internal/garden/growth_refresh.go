package garden

import (
	"context"

	"github.com/verdantgames/GardenGrove_Go/internal/domain"
	"github.com/verdantgames/GardenGrove_Go/internal/event"
	"github.com/verdantgames/GardenGrove_Go/internal/logger"
	"github.com/verdantgames/GardenGrove_Go/internal/plot"
)

// UpdateGrowthLevels recomputes every plant's growth level from the clock
// and persists increases. Clients call this on a timer; the same refresh
// also runs inside GetGameState, so either path keeps levels current.
func (s *service) UpdateGrowthLevels(ctx context.Context, creds domain.Credentials) (*domain.UpdateGrowthLevelsResponse, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUpdateGrowthLevelsCalled, "visitorID", creds.VisitorID)

	defer s.lockVisitor(creds.VisitorID)()

	state, err := s.store.Load(ctx, creds.VisitorID)
	if err != nil {
		return nil, err
	}

	updates := plot.RefreshGrowth(state, s.catalog, s.now())
	if len(updates) == 0 {
		return &domain.UpdateGrowthLevelsResponse{UpdatedPlants: []domain.GrowthUpdate{}}, nil
	}

	if err := s.store.Save(ctx, creds.VisitorID, state, changeTagPlantsGrown); err != nil {
		return nil, err
	}

	s.syncGrownPlantAssets(ctx, creds, state, updates)
	s.publish(ctx, event.NewPlantsGrownEvent(creds.VisitorID, len(updates)))

	log.Info("Growth levels updated", "visitorID", creds.VisitorID, "updated", len(updates))
	return &domain.UpdateGrowthLevelsResponse{UpdatedPlants: updates}, nil
}
