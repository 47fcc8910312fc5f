package garden

import (
	"context"
	"fmt"

	"github.com/verdantgames/GardenGrove_Go/internal/domain"
	"github.com/verdantgames/GardenGrove_Go/internal/event"
	"github.com/verdantgames/GardenGrove_Go/internal/logger"
	"github.com/verdantgames/GardenGrove_Go/internal/plot"
)

// ClaimPlot attaches the clicked plot asset to the visitor's state. The
// shared ownership marker is written first: it is the atomic arbiter between
// two visitors racing for the same plot, and a same-owner re-write is a
// no-op, so a state-save conflict can safely be retried by the client.
func (s *service) ClaimPlot(ctx context.Context, creds domain.Credentials) (*domain.ClaimPlotResponse, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgClaimPlotCalled, "visitorID", creds.VisitorID, "plotAssetID", creds.AssetID)

	defer s.lockVisitor(creds.VisitorID)()

	state, err := s.store.Load(ctx, creds.VisitorID)
	if err != nil {
		return nil, err
	}

	ownership, err := s.repo.GetPlotOwnership(ctx, creds.AssetID)
	if err != nil {
		return nil, fmt.Errorf("failed to check plot ownership: %w", err)
	}

	now := s.now()
	if err := plot.Claim(state, ownership, creds.ProfileID, creds.AssetID, now); err != nil {
		return nil, err
	}

	if err := s.repo.ClaimPlotOwnership(ctx, domain.PlotOwnership{
		PlotAssetID: creds.AssetID,
		OwnerID:     creds.ProfileID,
		OwnerName:   creds.DisplayName,
		ClaimedAt:   now,
	}); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, creds.VisitorID, state, changeTagPlotClaimed); err != nil {
		return nil, err
	}

	s.finalizeClaim(ctx, creds)

	log.Info("Plot claimed", "visitorID", creds.VisitorID, "plotAssetID", creds.AssetID)
	return &domain.ClaimPlotResponse{
		Plot:    state.OwnedPlot,
		Message: fmt.Sprintf("Plot claimed! You start with %d coins.", state.CoinsAvailable),
	}, nil
}

func (s *service) finalizeClaim(ctx context.Context, creds domain.Credentials) {
	title := fmt.Sprintf("%s's Plot", creds.DisplayName)
	err := s.gateway.UpdatePlotClickable(ctx, creds, creds.AssetID, title, s.plotLink)
	logSideEffectError(ctx, "update_plot_clickable", err)

	err = s.gateway.FireToast(ctx, creds, toastTitlePlotClaimed, "Open your plot to start planting.")
	logSideEffectError(ctx, "fire_toast", err)

	s.publish(ctx, event.NewPlotClaimedEvent(creds.VisitorID, creds.ProfileID, creds.AssetID))
}
