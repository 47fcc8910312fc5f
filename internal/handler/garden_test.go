package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/verdantgames/GardenGrove_Go/internal/domain"
	"github.com/verdantgames/GardenGrove_Go/internal/handler"
)

// MockGardenService mocks the garden.Service interface
type MockGardenService struct {
	mock.Mock
}

func (m *MockGardenService) GetGameState(ctx context.Context, creds domain.Credentials) (*domain.GameStateResponse, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameStateResponse), args.Error(1)
}

func (m *MockGardenService) ClaimPlot(ctx context.Context, creds domain.Credentials) (*domain.ClaimPlotResponse, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClaimPlotResponse), args.Error(1)
}

func (m *MockGardenService) PurchaseSeed(ctx context.Context, creds domain.Credentials, seedID int) (*domain.PurchaseSeedResponse, error) {
	args := m.Called(ctx, creds, seedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseSeedResponse), args.Error(1)
}

func (m *MockGardenService) PlantSeed(ctx context.Context, creds domain.Credentials, seedID, squareIndex int) (*domain.PlantSeedResponse, error) {
	args := m.Called(ctx, creds, seedID, squareIndex)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlantSeedResponse), args.Error(1)
}

func (m *MockGardenService) HarvestPlant(ctx context.Context, creds domain.Credentials, plantID string) (*domain.HarvestPlantResponse, error) {
	args := m.Called(ctx, creds, plantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HarvestPlantResponse), args.Error(1)
}

func (m *MockGardenService) GetPlantDetails(ctx context.Context, creds domain.Credentials, plantID string) (*domain.PlantDetailsResponse, error) {
	args := m.Called(ctx, creds, plantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlantDetailsResponse), args.Error(1)
}

func (m *MockGardenService) GetSeedMenu(ctx context.Context, creds domain.Credentials) (*domain.SeedMenuResponse, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeedMenuResponse), args.Error(1)
}

func (m *MockGardenService) UpdateGrowthLevels(ctx context.Context, creds domain.Credentials) (*domain.UpdateGrowthLevelsResponse, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UpdateGrowthLevelsResponse), args.Error(1)
}

func (m *MockGardenService) RemoveAllPlants(ctx context.Context, creds domain.Credentials) (*domain.RemoveAllPlantsResponse, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RemoveAllPlantsResponse), args.Error(1)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestGardenHandler_GetGameState(t *testing.T) {
	handler.InitValidator()

	t.Run("Success", func(t *testing.T) {
		svc := &MockGardenService{}
		svc.On("GetGameState", mock.Anything, mock.MatchedBy(func(c domain.Credentials) bool {
			return c.VisitorID == "visitor-1" && c.DisplayName == "Gardener"
		})).Return(&domain.GameStateResponse{
			CoinsAvailable: 10,
			Plants:         []domain.PlantView{},
			Seeds:          []domain.SeedMenuEntry{},
		}, nil)

		h := handler.NewGardenHandler(svc)
		req := httptest.NewRequest(http.MethodGet, "/game-state?visitorId=visitor-1&displayName=Gardener", nil)
		w := httptest.NewRecorder()

		h.GetGameState(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, float64(10), body["coinsAvailable"])
		svc.AssertExpectations(t)
	})

	t.Run("Missing Visitor ID", func(t *testing.T) {
		svc := &MockGardenService{}
		h := handler.NewGardenHandler(svc)
		req := httptest.NewRequest(http.MethodGet, "/game-state", nil)
		w := httptest.NewRecorder()

		h.GetGameState(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, false, body["success"])
		svc.AssertNotCalled(t, "GetGameState")
	})
}

func TestGardenHandler_ClaimPlot(t *testing.T) {
	handler.InitValidator()

	t.Run("Success", func(t *testing.T) {
		svc := &MockGardenService{}
		svc.On("ClaimPlot", mock.Anything, mock.Anything).Return(&domain.ClaimPlotResponse{
			Message: "Plot claimed! Time to get planting.",
		}, nil)

		h := handler.NewGardenHandler(svc)
		req := httptest.NewRequest(http.MethodPost, "/plot/claim?visitorId=visitor-1&assetId=plot-asset-7", nil)
		w := httptest.NewRecorder()

		h.ClaimPlot(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
	})

	t.Run("Already Owned", func(t *testing.T) {
		svc := &MockGardenService{}
		svc.On("ClaimPlot", mock.Anything, mock.Anything).Return(nil, domain.ErrAlreadyOwnsPlot)

		h := handler.NewGardenHandler(svc)
		req := httptest.NewRequest(http.MethodPost, "/plot/claim?visitorId=visitor-1", nil)
		w := httptest.NewRecorder()

		h.ClaimPlot(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, false, body["success"])
		assert.Contains(t, body["error"], domain.ErrMsgAlreadyOwnsPlot)
	})
}

func TestGardenHandler_PurchaseSeed(t *testing.T) {
	handler.InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockGardenService)
		expectedStatus int
		expectedError  string
	}{
		{
			name:        "Success",
			requestBody: handler.PurchaseSeedRequest{SeedID: 3},
			setupMock: func(m *MockGardenService) {
				m.On("PurchaseSeed", mock.Anything, mock.Anything, 3).
					Return(&domain.PurchaseSeedResponse{
						SeedID:         3,
						CoinsAvailable: 5,
						Message:        "Seed unlocked!",
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "Insufficient Coins",
			requestBody: handler.PurchaseSeedRequest{SeedID: 4},
			setupMock: func(m *MockGardenService) {
				m.On("PurchaseSeed", mock.Anything, mock.Anything, 4).
					Return(nil, domain.ErrInsufficientCoins)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  domain.ErrMsgInsufficientCoins,
		},
		{
			name:           "Missing Seed ID",
			requestBody:    map[string]interface{}{},
			setupMock:      func(m *MockGardenService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid JSON",
			requestBody:    "{not json",
			setupMock:      func(m *MockGardenService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Conflict",
			requestBody: handler.PurchaseSeedRequest{SeedID: 3},
			setupMock: func(m *MockGardenService) {
				m.On("PurchaseSeed", mock.Anything, mock.Anything, 3).
					Return(nil, domain.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockGardenService{}
			tt.setupMock(svc)
			h := handler.NewGardenHandler(svc)

			var bodyBytes []byte
			if s, ok := tt.requestBody.(string); ok {
				bodyBytes = []byte(s)
			} else {
				bodyBytes, _ = json.Marshal(tt.requestBody)
			}

			req := httptest.NewRequest(http.MethodPost, "/seed/purchase?visitorId=visitor-1", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			h.PurchaseSeed(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestGardenHandler_PlantSeed(t *testing.T) {
	handler.InitValidator()

	t.Run("Square Zero Is Valid", func(t *testing.T) {
		svc := &MockGardenService{}
		svc.On("PlantSeed", mock.Anything, mock.Anything, 1, 0).
			Return(&domain.PlantSeedResponse{Message: "Seed planted!"}, nil)

		h := handler.NewGardenHandler(svc)
		body, _ := json.Marshal(map[string]interface{}{"seedId": 1, "squareIndex": 0})
		req := httptest.NewRequest(http.MethodPost, "/plant/drop?visitorId=visitor-1", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.PlantSeed(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Missing Square Index", func(t *testing.T) {
		svc := &MockGardenService{}
		h := handler.NewGardenHandler(svc)
		body, _ := json.Marshal(map[string]interface{}{"seedId": 1})
		req := httptest.NewRequest(http.MethodPost, "/plant/drop?visitorId=visitor-1", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.PlantSeed(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "PlantSeed")
	})

	t.Run("Square Occupied", func(t *testing.T) {
		svc := &MockGardenService{}
		svc.On("PlantSeed", mock.Anything, mock.Anything, 1, 3).
			Return(nil, domain.ErrSquareOccupied)

		h := handler.NewGardenHandler(svc)
		body, _ := json.Marshal(map[string]interface{}{"seedId": 1, "squareIndex": 3})
		req := httptest.NewRequest(http.MethodPost, "/plant/drop?visitorId=visitor-1", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.PlantSeed(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), domain.ErrMsgSquareOccupied)
	})
}

func TestGardenHandler_HarvestPlant(t *testing.T) {
	handler.InitValidator()

	t.Run("Success", func(t *testing.T) {
		svc := &MockGardenService{}
		svc.On("HarvestPlant", mock.Anything, mock.Anything, "plant-abc").
			Return(&domain.HarvestPlantResponse{
				PlantID:        "plant-abc",
				Reward:         2,
				CoinsAvailable: 12,
			}, nil)

		h := handler.NewGardenHandler(svc)
		body, _ := json.Marshal(handler.HarvestPlantRequest{PlantID: "plant-abc"})
		req := httptest.NewRequest(http.MethodPost, "/plant/harvest?visitorId=visitor-1", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.HarvestPlant(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		respBody := decodeBody(t, w)
		assert.Equal(t, true, respBody["success"])
		assert.Equal(t, float64(2), respBody["reward"])
	})

	t.Run("Not Ready", func(t *testing.T) {
		svc := &MockGardenService{}
		svc.On("HarvestPlant", mock.Anything, mock.Anything, "plant-abc").
			Return(nil, domain.ErrNotReadyForHarvest)

		h := handler.NewGardenHandler(svc)
		body, _ := json.Marshal(handler.HarvestPlantRequest{PlantID: "plant-abc"})
		req := httptest.NewRequest(http.MethodPost, "/plant/harvest?visitorId=visitor-1", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.HarvestPlant(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), domain.ErrMsgNotReadyForHarvest)
	})

	t.Run("Missing Plant ID", func(t *testing.T) {
		svc := &MockGardenService{}
		h := handler.NewGardenHandler(svc)
		body, _ := json.Marshal(map[string]interface{}{})
		req := httptest.NewRequest(http.MethodPost, "/plant/harvest?visitorId=visitor-1", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.HarvestPlant(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "HarvestPlant")
	})
}

func TestGardenHandler_GetPlantDetails(t *testing.T) {
	handler.InitValidator()

	t.Run("Missing Plant ID Param", func(t *testing.T) {
		svc := &MockGardenService{}
		h := handler.NewGardenHandler(svc)
		req := httptest.NewRequest(http.MethodGet, "/plant-details?visitorId=visitor-1", nil)
		w := httptest.NewRecorder()

		h.GetPlantDetails(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "GetPlantDetails")
	})

	t.Run("Not Found", func(t *testing.T) {
		svc := &MockGardenService{}
		svc.On("GetPlantDetails", mock.Anything, mock.Anything, "missing").
			Return(nil, domain.ErrPlantNotFound)

		h := handler.NewGardenHandler(svc)
		req := httptest.NewRequest(http.MethodGet, "/plant-details?visitorId=visitor-1&plantId=missing", nil)
		w := httptest.NewRecorder()

		h.GetPlantDetails(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), domain.ErrMsgPlantNotFound)
	})
}

func TestGardenHandler_RemoveAllPlants(t *testing.T) {
	handler.InitValidator()

	svc := &MockGardenService{}
	svc.On("RemoveAllPlants", mock.Anything, mock.Anything).
		Return(&domain.RemoveAllPlantsResponse{RemovedCount: 2, Message: "Garden cleared"}, nil)

	h := handler.NewGardenHandler(svc)
	req := httptest.NewRequest(http.MethodPost, "/remove-all-plants?visitorId=visitor-1", nil)
	w := httptest.NewRecorder()

	h.RemoveAllPlants(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(2), body["removedCount"])
}
