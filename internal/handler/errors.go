package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgConflictRetry      = "Your garden changed while processing. Please try again."

	// Game operation error messages
	ErrMsgGetGameStateFailed = "Failed to load your garden"
	ErrMsgClaimPlotFailed    = "Failed to claim plot"
	ErrMsgPurchaseSeedFailed = "Failed to purchase seed"
	ErrMsgPlantSeedFailed    = "Failed to plant seed"
	ErrMsgHarvestPlantFailed = "Failed to harvest plant"
	ErrMsgPlantDetailsFailed = "Failed to load plant details"
	ErrMsgSeedMenuFailed     = "Failed to load the seed menu"
	ErrMsgUpdateGrowthFailed = "Failed to update growth levels"
	ErrMsgRemovePlantsFailed = "Failed to remove plants"
)

// Success messages for API responses
const (
	MsgPlotClaimedSuccess   = "Plot claimed! Time to get planting."
	MsgSeedPurchasedSuccess = "Seed unlocked!"
	MsgSeedPlantedSuccess   = "Seed planted!"
	MsgPlantsClearedSuccess = "Garden cleared"
	MsgNoPlantsToRemove     = "No plants to remove"
)
