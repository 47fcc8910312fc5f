package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Seed errors
	ErrMsgSeedNotFound        = "seed not found"
	ErrMsgSeedLocked          = "seed is locked"
	ErrMsgSeedAlreadyUnlocked = "seed is already unlocked"

	// Economy errors
	ErrMsgInsufficientCoins = "not enough coins"

	// Plot errors
	ErrMsgAlreadyOwnsPlot  = "visitor already owns a plot"
	ErrMsgPlotOwnedByOther = "plot is owned by another visitor"
	ErrMsgNoPlot           = "visitor has not claimed a plot"
	ErrMsgInvalidSquare    = "square index out of range"
	ErrMsgSquareOccupied   = "square is already occupied"

	// Plant errors
	ErrMsgPlantNotFound      = "plant not found"
	ErrMsgAlreadyHarvested   = "plant was already harvested"
	ErrMsgNotReadyForHarvest = "plant is not ready for harvest"

	// Store errors
	ErrMsgStateNotFound = "visitor garden state not found"
	ErrMsgConflict      = "state was modified by another request"
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Seed errors
	ErrSeedNotFound        = errors.New(ErrMsgSeedNotFound)
	ErrSeedLocked          = errors.New(ErrMsgSeedLocked)
	ErrSeedAlreadyUnlocked = errors.New(ErrMsgSeedAlreadyUnlocked)

	// Economy errors
	ErrInsufficientCoins = errors.New(ErrMsgInsufficientCoins)

	// Plot errors
	ErrAlreadyOwnsPlot  = errors.New(ErrMsgAlreadyOwnsPlot)
	ErrPlotOwnedByOther = errors.New(ErrMsgPlotOwnedByOther)
	ErrNoPlot           = errors.New(ErrMsgNoPlot)
	ErrInvalidSquare    = errors.New(ErrMsgInvalidSquare)
	ErrSquareOccupied   = errors.New(ErrMsgSquareOccupied)

	// Plant errors
	ErrPlantNotFound      = errors.New(ErrMsgPlantNotFound)
	ErrAlreadyHarvested   = errors.New(ErrMsgAlreadyHarvested)
	ErrNotReadyForHarvest = errors.New(ErrMsgNotReadyForHarvest)

	// Store errors
	ErrStateNotFound = errors.New(ErrMsgStateNotFound)
	ErrConflict      = errors.New(ErrMsgConflict)
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
