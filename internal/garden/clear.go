package garden

import (
	"context"
	"fmt"

	"github.com/verdantgames/GardenGrove_Go/internal/domain"
	"github.com/verdantgames/GardenGrove_Go/internal/event"
	"github.com/verdantgames/GardenGrove_Go/internal/logger"
	"github.com/verdantgames/GardenGrove_Go/internal/plot"
)

// RemoveAllPlants clears every plant from the visitor's garden, harvested
// history included, and deletes their world assets. Coins and unlocks are
// untouched. The route is operator-gated at the handler layer.
func (s *service) RemoveAllPlants(ctx context.Context, creds domain.Credentials) (*domain.RemoveAllPlantsResponse, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRemoveAllPlantsCalled, "visitorID", creds.VisitorID)

	defer s.lockVisitor(creds.VisitorID)()

	state, err := s.store.Load(ctx, creds.VisitorID)
	if err != nil {
		return nil, err
	}

	removed := plot.ClearAll(state)
	if err := s.store.Save(ctx, creds.VisitorID, state, changeTagPlantsRemoved); err != nil {
		return nil, err
	}

	for _, plantID := range removed {
		s.removePlantAsset(ctx, creds, plantID)
	}
	s.publish(ctx, event.NewPlantsRemovedEvent(creds.VisitorID, len(removed)))

	log.Info("All plants removed", "visitorID", creds.VisitorID, "removed", len(removed))
	return &domain.RemoveAllPlantsResponse{
		RemovedCount: len(removed),
		Message:      fmt.Sprintf("Removed %d plants.", len(removed)),
	}, nil
}
