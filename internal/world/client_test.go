package world

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantgames/GardenGrove_Go/internal/domain"
)

func testCredentials() domain.Credentials {
	return domain.Credentials{
		VisitorID:   "visitor-1",
		ProfileID:   "profile-1",
		DisplayName: "Gardener",
		AssetID:     "plot-asset-1",
		URLSlug:     "test-world",
	}
}

func TestClient_DropPlantAsset(t *testing.T) {
	var gotPath, gotAuth string
	var gotPayload map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		json.NewEncoder(w).Encode(map[string]string{"id": "dropped-123"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-key")
	id, err := client.DropPlantAsset(context.Background(), DropPlantRequest{
		Credentials: testCredentials(),
		SeedID:      1,
		SquareIndex: 3,
		Image:       "carrot-stage-0.png",
		UniqueName:  "plant-abc",
	})

	require.NoError(t, err)
	assert.Equal(t, "dropped-123", id)
	assert.Equal(t, "/dropped-assets", gotPath)
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "carrot-stage-0.png", gotPayload["layer0"])
	assert.Equal(t, float64(3), gotPayload["squareIndex"])
	assert.Equal(t, "plot-asset-1", gotPayload["plotAssetId"])
}

func TestClient_DropPlantAsset_EmptyID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"id": ""})
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-key")
	_, err := client.DropPlantAsset(context.Background(), DropPlantRequest{Credentials: testCredentials()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty dropped asset id")
}

func TestClient_DropPlantAsset_PlatformError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "world not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-key")
	_, err := client.DropPlantAsset(context.Background(), DropPlantRequest{Credentials: testCredentials()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "world not found")
}

func TestClient_RemoveDroppedAsset(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-key")
	err := client.RemoveDroppedAsset(context.Background(), testCredentials(), "dropped-123")

	require.NoError(t, err)
	assert.Equal(t, "/worlds/test-world/dropped-assets/dropped-123/delete", gotPath)
}

func TestClient_FireToast(t *testing.T) {
	var gotPayload map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-key")
	err := client.FireToast(context.Background(), testCredentials(), "Harvested!", "+5 coins")

	require.NoError(t, err)
	assert.Equal(t, "Harvested!", gotPayload["title"])
	assert.Equal(t, "+5 coins", gotPayload["text"])
	assert.Equal(t, "visitor-1", gotPayload["visitorId"])
}

func TestNoopGateway_DropPlantAssetGeneratesID(t *testing.T) {
	gw := NewNoopGateway()

	first, err := gw.DropPlantAsset(context.Background(), DropPlantRequest{})
	require.NoError(t, err)
	second, err := gw.DropPlantAsset(context.Background(), DropPlantRequest{})
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
