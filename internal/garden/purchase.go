package garden

import (
	"context"
	"fmt"

	"github.com/verdantgames/GardenGrove_Go/internal/domain"
	"github.com/verdantgames/GardenGrove_Go/internal/economy"
	"github.com/verdantgames/GardenGrove_Go/internal/event"
	"github.com/verdantgames/GardenGrove_Go/internal/logger"
)

// PurchaseSeed unlocks a paid seed for the visitor, debiting its cost once.
// Planting a purchased seed later is free, any number of times.
func (s *service) PurchaseSeed(ctx context.Context, creds domain.Credentials, seedID int) (*domain.PurchaseSeedResponse, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPurchaseSeedCalled, "visitorID", creds.VisitorID, "seedID", seedID)

	def, err := s.catalog.Definition(seedID)
	if err != nil {
		return nil, err
	}

	defer s.lockVisitor(creds.VisitorID)()

	state, err := s.store.Load(ctx, creds.VisitorID)
	if err != nil {
		return nil, err
	}

	if err := economy.Purchase(&state.VisitorEconomy, def, s.now()); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, creds.VisitorID, state, changeTagSeedPurchased); err != nil {
		return nil, err
	}

	s.finalizePurchase(ctx, creds, def, state.CoinsAvailable)

	log.Info("Seed purchased", "visitorID", creds.VisitorID, "seed", def.Name, "cost", def.Cost, "remaining", state.CoinsAvailable)
	return &domain.PurchaseSeedResponse{
		SeedID:         def.ID,
		CoinsAvailable: state.CoinsAvailable,
		Message:        fmt.Sprintf("%s seeds unlocked for %d coins!", def.Name, def.Cost),
	}, nil
}

func (s *service) finalizePurchase(ctx context.Context, creds domain.Credentials, def domain.SeedDefinition, coinsRemaining int) {
	text := fmt.Sprintf("%s seeds are now yours to plant.", def.Name)
	err := s.gateway.FireToast(ctx, creds, toastTitleSeedBought, text)
	logSideEffectError(ctx, "fire_toast", err)

	s.publish(ctx, event.NewSeedPurchasedEvent(creds.VisitorID, def.ID, def.Name, def.Cost, coinsRemaining))
}
