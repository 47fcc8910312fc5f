package garden

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/verdantgames/GardenGrove_Go/internal/domain"
	"github.com/verdantgames/GardenGrove_Go/internal/world"
)

// MockGateway implements [world.Gateway].
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) DropPlantAsset(ctx context.Context, req world.DropPlantRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) RemoveDroppedAsset(ctx context.Context, creds domain.Credentials, assetID string) error {
	args := m.Called(ctx, creds, assetID)
	return args.Error(0)
}

func (m *MockGateway) UpdatePlantAsset(ctx context.Context, creds domain.Credentials, assetID, image string, growLevel int) error {
	args := m.Called(ctx, creds, assetID, image, growLevel)
	return args.Error(0)
}

func (m *MockGateway) UpdatePlotClickable(ctx context.Context, creds domain.Credentials, plotAssetID, title, link string) error {
	args := m.Called(ctx, creds, plotAssetID, title, link)
	return args.Error(0)
}

func (m *MockGateway) TriggerParticle(ctx context.Context, creds domain.Credentials, assetID, effectName string) error {
	args := m.Called(ctx, creds, assetID, effectName)
	return args.Error(0)
}

func (m *MockGateway) FireToast(ctx context.Context, creds domain.Credentials, title, text string) error {
	args := m.Called(ctx, creds, title, text)
	return args.Error(0)
}
