package domain

import "time"

// GrowthUpdate records one plant whose level rose during a growth refresh.
type GrowthUpdate struct {
	PlantID       string `json:"id"`
	PreviousLevel int    `json:"previousLevel"`
	NewLevel      int    `json:"newLevel"`
}

// PlantView is a plant annotated for display: the stored record plus
// everything derived from the clock and the seed catalog.
type PlantView struct {
	ID                string     `json:"id"`
	SeedID            int        `json:"seedId"`
	SeedName          string     `json:"seedName"`
	SquareIndex       int        `json:"squareIndex"`
	PlantedAt         time.Time  `json:"plantedAt"`
	GrowLevel         int        `json:"growLevel"`
	HarvestLevel      int        `json:"harvestLevel"`
	Image             string     `json:"image"`
	IsReadyForHarvest bool       `json:"isReadyForHarvest"`
	WasHarvested      bool       `json:"wasHarvested"`
	HarvestedAt       *time.Time `json:"harvestedAt,omitempty"`
}

// SeedMenuEntry is one catalog seed annotated with the visitor's access to
// it. Free seeds are always unlocked; paid seeds unlock at purchase.
type SeedMenuEntry struct {
	SeedDefinition
	IsUnlocked bool `json:"isUnlocked"`
	CanAfford  bool `json:"canAfford"`
}

// GameStateResponse is the full per-visitor picture served to the client.
type GameStateResponse struct {
	CoinsAvailable   int             `json:"coinsAvailable"`
	TotalCoinsEarned int             `json:"totalCoinsEarned"`
	OwnedPlot        *Plot           `json:"ownedPlot"`
	Plants           []PlantView     `json:"plants"`
	Seeds            []SeedMenuEntry `json:"seeds"`
}

// ClaimPlotResponse reports a successful plot claim.
type ClaimPlotResponse struct {
	Plot    *Plot  `json:"plot"`
	Message string `json:"message"`
}

// PurchaseSeedResponse reports a successful seed purchase.
type PurchaseSeedResponse struct {
	SeedID         int    `json:"seedId"`
	CoinsAvailable int    `json:"coinsAvailable"`
	Message        string `json:"message"`
}

// PlantSeedResponse reports a successful planting.
type PlantSeedResponse struct {
	Plant   PlantView `json:"plant"`
	Message string    `json:"message"`
}

// HarvestPlantResponse reports a successful harvest.
type HarvestPlantResponse struct {
	PlantID          string `json:"plantId"`
	Reward           int    `json:"reward"`
	CoinsAvailable   int    `json:"coinsAvailable"`
	TotalCoinsEarned int    `json:"totalCoinsEarned"`
	Message          string `json:"message"`
}

// PlantDetailsResponse is the drill-down view for a single plant. The
// countdowns are omitted once the plant is harvestable.
type PlantDetailsResponse struct {
	Plant               PlantView `json:"plant"`
	SecondsToNextLevel  *int64    `json:"secondsToNextLevel,omitempty"`
	SecondsToHarvest    *int64    `json:"secondsToHarvest,omitempty"`
	GrowthTimePerLevel  int64     `json:"growthTimePerLevel"`
	TotalGrowthTime     int64     `json:"totalGrowthTime"`
	RewardWhenHarvested int       `json:"rewardWhenHarvested"`
}

// SeedMenuResponse lists the purchasable catalog for one visitor.
type SeedMenuResponse struct {
	Seeds          []SeedMenuEntry `json:"seeds"`
	CoinsAvailable int             `json:"coinsAvailable"`
}

// UpdateGrowthLevelsResponse lists the plants whose level rose.
type UpdateGrowthLevelsResponse struct {
	UpdatedPlants []GrowthUpdate `json:"updatedPlants"`
}

// RemoveAllPlantsResponse reports a garden reset.
type RemoveAllPlantsResponse struct {
	RemovedCount int    `json:"removedCount"`
	Message      string `json:"message"`
}
