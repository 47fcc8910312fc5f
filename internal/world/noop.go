package world

import (
	"context"

	"github.com/google/uuid"

	"github.com/verdantgames/GardenGrove_Go/internal/domain"
)

// NoopGateway satisfies Gateway without talking to any platform. Used in
// local development and tests where no world is attached.
type NoopGateway struct{}

func NewNoopGateway() *NoopGateway {
	return &NoopGateway{}
}

// DropPlantAsset fabricates an asset id so the plant lifecycle still works.
func (NoopGateway) DropPlantAsset(_ context.Context, _ DropPlantRequest) (string, error) {
	return "local-" + uuid.NewString(), nil
}

func (NoopGateway) RemoveDroppedAsset(_ context.Context, _ domain.Credentials, _ string) error {
	return nil
}

func (NoopGateway) UpdatePlantAsset(_ context.Context, _ domain.Credentials, _, _ string, _ int) error {
	return nil
}

func (NoopGateway) UpdatePlotClickable(_ context.Context, _ domain.Credentials, _, _, _ string) error {
	return nil
}

func (NoopGateway) TriggerParticle(_ context.Context, _ domain.Credentials, _, _ string) error {
	return nil
}

func (NoopGateway) FireToast(_ context.Context, _ domain.Credentials, _, _ string) error {
	return nil
}
