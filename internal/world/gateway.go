// Package world is the narrow port to the hosted world platform's
// presentation side: dropped assets, particle effects, toasts and clickable
// links. Everything here is cosmetic; the garden's economic state is
// committed before any of these calls run, and their failures are logged
// and swallowed, never surfaced to the visitor.
package world

import (
	"context"

	"github.com/verdantgames/GardenGrove_Go/internal/domain"
)

// DropPlantRequest describes the plant asset to drop into the world.
type DropPlantRequest struct {
	Credentials domain.Credentials
	SeedID      int
	SquareIndex int
	Image       string
	UniqueName  string
}

// Gateway is the presentation side-effect port.
//
// DropPlantAsset is the one call on the mutation path proper: the id it
// returns keys the plant in the visitor's state. The rest are best-effort.
type Gateway interface {
	// DropPlantAsset places a plant image in the world and returns the
	// dropped asset's id.
	DropPlantAsset(ctx context.Context, req DropPlantRequest) (string, error)

	// RemoveDroppedAsset deletes a dropped asset from the world.
	RemoveDroppedAsset(ctx context.Context, creds domain.Credentials, assetID string) error

	// UpdatePlantAsset swaps a dropped plant's image to a new growth stage.
	UpdatePlantAsset(ctx context.Context, creds domain.Credentials, assetID, image string, growLevel int) error

	// UpdatePlotClickable rewrites the plot asset's clickable link and label
	// after a claim.
	UpdatePlotClickable(ctx context.Context, creds domain.Credentials, plotAssetID, title, link string) error

	// TriggerParticle fires a particle effect at a dropped asset.
	TriggerParticle(ctx context.Context, creds domain.Credentials, assetID, effectName string) error

	// FireToast shows a toast notification to the visitor's world client.
	FireToast(ctx context.Context, creds domain.Credentials, title, text string) error
}
