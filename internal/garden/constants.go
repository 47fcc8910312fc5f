package garden

// Change tags recorded with each state write. They label the mutation for
// analytics and audit; they carry no business meaning.
const (
	changeTagStateInitialized = "state_initialized"
	changeTagPlotClaimed      = "plot_claimed"
	changeTagSeedPurchased    = "seedsPurchased"
	changeTagSeedPlanted      = "seedsPlanted"
	changeTagPlantHarvested   = "plantsHarvested"
	changeTagPlantsGrown      = "plantsGrown"
	changeTagPlantsRemoved    = "plantsRemoved"
)

// Particle effect fired at a plant asset on planting and harvest.
const particleSparkle = "Sparkle"

// Toast copy
const (
	toastTitlePlotClaimed = "Plot claimed!"
	toastTitleSeedBought  = "Seed purchased!"
	toastTitlePlanted     = "Seed planted!"
	toastTitleHarvested   = "Harvest complete!"
)

// Log message constants
const (
	LogMsgGetGameStateCalled       = "GetGameState called"
	LogMsgClaimPlotCalled          = "ClaimPlot called"
	LogMsgPurchaseSeedCalled       = "PurchaseSeed called"
	LogMsgPlantSeedCalled          = "PlantSeed called"
	LogMsgHarvestPlantCalled       = "HarvestPlant called"
	LogMsgGetPlantDetailsCalled    = "GetPlantDetails called"
	LogMsgGetSeedMenuCalled        = "GetSeedMenu called"
	LogMsgUpdateGrowthLevelsCalled = "UpdateGrowthLevels called"
	LogMsgRemoveAllPlantsCalled    = "RemoveAllPlants called"
	LogMsgSideEffectFailed         = "Presentation side effect failed"
	LogMsgGrowthRefreshSaveFailed  = "Growth refresh save failed, serving computed state"
)
