package handler

import (
	"net/http"

	"github.com/verdantgames/GardenGrove_Go/internal/garden"
	"github.com/verdantgames/GardenGrove_Go/internal/logger"
)

// PurchaseSeedRequest represents the request to unlock a paid seed
type PurchaseSeedRequest struct {
	SeedID int `json:"seedId" validate:"required,min=1"`
}

// PlantSeedRequest represents the request to plant a seed in a plot square.
// SquareIndex is a pointer so that square 0 survives required validation.
type PlantSeedRequest struct {
	SeedID      int  `json:"seedId" validate:"required,min=1"`
	SquareIndex *int `json:"squareIndex" validate:"required"`
}

// HarvestPlantRequest represents the request to harvest a mature plant
type HarvestPlantRequest struct {
	PlantID string `json:"plantId" validate:"required"`
}

// GardenHandler handles the garden game HTTP requests
type GardenHandler struct {
	gardenSvc garden.Service
}

// NewGardenHandler creates a new garden handler
func NewGardenHandler(gardenSvc garden.Service) *GardenHandler {
	return &GardenHandler{
		gardenSvc: gardenSvc,
	}
}

// GetGameState handles the game state endpoint
// @Summary Get the visitor's garden state
// @Description Returns the full garden state, refreshing growth levels first
// @Tags garden
// @Produce json
// @Param visitorId query string true "Visitor ID"
// @Success 200 {object} domain.GameStateResponse
// @Failure 400 {object} ErrorResponse "Missing visitor ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /game-state [get]
func (h *GardenHandler) GetGameState(w http.ResponseWriter, r *http.Request) {
	creds, ok := GetCredentials(r, w)
	if !ok {
		return
	}

	response, err := h.gardenSvc.GetGameState(r.Context(), creds)
	if err != nil {
		respondServiceError(w, r, "Get game state", err)
		return
	}

	respondSuccess(w, http.StatusOK, response)
}

// ClaimPlot handles the plot claim endpoint
// @Summary Claim a plot
// @Description Attaches the clicked plot asset to the visitor's garden
// @Tags garden
// @Produce json
// @Param visitorId query string true "Visitor ID"
// @Param profileId query string false "Profile ID"
// @Param assetId query string false "Plot asset ID"
// @Success 200 {object} domain.ClaimPlotResponse
// @Failure 400 {object} ErrorResponse "Plot already owned"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /plot/claim [post]
func (h *GardenHandler) ClaimPlot(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	creds, ok := GetCredentials(r, w)
	if !ok {
		return
	}

	response, err := h.gardenSvc.ClaimPlot(r.Context(), creds)
	if err != nil {
		respondServiceError(w, r, "Claim plot", err)
		return
	}

	log.Info("Plot claimed", "visitorId", creds.VisitorID, "assetId", creds.AssetID)
	respondSuccess(w, http.StatusOK, response)
}

// PurchaseSeed handles the seed purchase endpoint
// @Summary Purchase a seed unlock
// @Description Unlocks a paid seed, debiting its cost from the visitor's coins
// @Tags garden
// @Accept json
// @Produce json
// @Param visitorId query string true "Visitor ID"
// @Param request body PurchaseSeedRequest true "Purchase request"
// @Success 200 {object} domain.PurchaseSeedResponse
// @Failure 400 {object} ErrorResponse "Not enough coins or already unlocked"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /seed/purchase [post]
func (h *GardenHandler) PurchaseSeed(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	creds, ok := GetCredentials(r, w)
	if !ok {
		return
	}

	var req PurchaseSeedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Purchase seed"); err != nil {
		return
	}

	response, err := h.gardenSvc.PurchaseSeed(r.Context(), creds, req.SeedID)
	if err != nil {
		respondServiceError(w, r, "Purchase seed", err)
		return
	}

	log.Info("Seed purchased", "visitorId", creds.VisitorID, "seedId", req.SeedID)
	respondSuccess(w, http.StatusOK, response)
}

// PlantSeed handles the plant drop endpoint
// @Summary Plant a seed
// @Description Plants an unlocked seed into an empty square of the visitor's plot
// @Tags garden
// @Accept json
// @Produce json
// @Param visitorId query string true "Visitor ID"
// @Param request body PlantSeedRequest true "Plant request"
// @Success 200 {object} domain.PlantSeedResponse
// @Failure 400 {object} ErrorResponse "Square occupied or seed locked"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /plant/drop [post]
func (h *GardenHandler) PlantSeed(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	creds, ok := GetCredentials(r, w)
	if !ok {
		return
	}

	var req PlantSeedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Plant seed"); err != nil {
		return
	}

	response, err := h.gardenSvc.PlantSeed(r.Context(), creds, req.SeedID, *req.SquareIndex)
	if err != nil {
		respondServiceError(w, r, "Plant seed", err)
		return
	}

	log.Info("Seed planted", "visitorId", creds.VisitorID, "seedId", req.SeedID, "squareIndex", *req.SquareIndex)
	respondSuccess(w, http.StatusOK, response)
}

// HarvestPlant handles the harvest endpoint
// @Summary Harvest a plant
// @Description Converts a mature plant into coins and frees its square
// @Tags garden
// @Accept json
// @Produce json
// @Param visitorId query string true "Visitor ID"
// @Param request body HarvestPlantRequest true "Harvest request"
// @Success 200 {object} domain.HarvestPlantResponse
// @Failure 400 {object} ErrorResponse "Plant not ready or already harvested"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /plant/harvest [post]
func (h *GardenHandler) HarvestPlant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	creds, ok := GetCredentials(r, w)
	if !ok {
		return
	}

	var req HarvestPlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Harvest plant"); err != nil {
		return
	}

	response, err := h.gardenSvc.HarvestPlant(r.Context(), creds, req.PlantID)
	if err != nil {
		respondServiceError(w, r, "Harvest plant", err)
		return
	}

	log.Info("Plant harvested",
		"visitorId", creds.VisitorID,
		"plantId", req.PlantID,
		"reward", response.Reward)
	respondSuccess(w, http.StatusOK, response)
}

// GetPlantDetails handles the plant details endpoint
// @Summary Get plant details
// @Description Returns the drill-down view for a single plant, including countdowns
// @Tags garden
// @Produce json
// @Param visitorId query string true "Visitor ID"
// @Param plantId query string true "Plant ID"
// @Success 200 {object} domain.PlantDetailsResponse
// @Failure 400 {object} ErrorResponse "Plant not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /plant-details [get]
func (h *GardenHandler) GetPlantDetails(w http.ResponseWriter, r *http.Request) {
	creds, ok := GetCredentials(r, w)
	if !ok {
		return
	}

	plantID, ok := GetQueryParam(r, w, "plantId")
	if !ok {
		return
	}

	response, err := h.gardenSvc.GetPlantDetails(r.Context(), creds, plantID)
	if err != nil {
		respondServiceError(w, r, "Get plant details", err)
		return
	}

	respondSuccess(w, http.StatusOK, response)
}

// GetSeedMenu handles the seed menu endpoint
// @Summary Get the seed menu
// @Description Returns the seed catalog annotated with the visitor's unlocks and balance
// @Tags garden
// @Produce json
// @Param visitorId query string true "Visitor ID"
// @Success 200 {object} domain.SeedMenuResponse
// @Failure 400 {object} ErrorResponse "Missing visitor ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /seeds [get]
func (h *GardenHandler) GetSeedMenu(w http.ResponseWriter, r *http.Request) {
	creds, ok := GetCredentials(r, w)
	if !ok {
		return
	}

	response, err := h.gardenSvc.GetSeedMenu(r.Context(), creds)
	if err != nil {
		respondServiceError(w, r, "Get seed menu", err)
		return
	}

	respondSuccess(w, http.StatusOK, response)
}

// UpdateGrowthLevels handles the growth refresh endpoint
// @Summary Update growth levels
// @Description Recomputes growth for every plant and persists any increase
// @Tags garden
// @Produce json
// @Param visitorId query string true "Visitor ID"
// @Success 200 {object} domain.UpdateGrowthLevelsResponse
// @Failure 400 {object} ErrorResponse "Missing visitor ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /update-growth-levels [post]
func (h *GardenHandler) UpdateGrowthLevels(w http.ResponseWriter, r *http.Request) {
	creds, ok := GetCredentials(r, w)
	if !ok {
		return
	}

	response, err := h.gardenSvc.UpdateGrowthLevels(r.Context(), creds)
	if err != nil {
		respondServiceError(w, r, "Update growth levels", err)
		return
	}

	respondSuccess(w, http.StatusOK, response)
}

// RemoveAllPlants handles the garden reset endpoint
// @Summary Remove all plants
// @Description Clears every plant from the visitor's garden. Operator use only
// @Tags garden
// @Produce json
// @Param visitorId query string true "Visitor ID"
// @Success 200 {object} domain.RemoveAllPlantsResponse
// @Failure 400 {object} ErrorResponse "Missing visitor ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /remove-all-plants [post]
func (h *GardenHandler) RemoveAllPlants(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	creds, ok := GetCredentials(r, w)
	if !ok {
		return
	}

	response, err := h.gardenSvc.RemoveAllPlants(r.Context(), creds)
	if err != nil {
		respondServiceError(w, r, "Remove all plants", err)
		return
	}

	log.Info("Plants removed", "visitorId", creds.VisitorID, "removedCount", response.RemovedCount)
	respondSuccess(w, http.StatusOK, response)
}
