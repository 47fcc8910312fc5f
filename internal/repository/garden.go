// Package repository defines the persistence ports the garden service
// depends on. Implementations live in internal/database/postgres (durable)
// and internal/repository/memory (tests, local runs).
package repository

import (
	"context"

	"github.com/verdantgames/GardenGrove_Go/internal/domain"
)

// Garden persists one VisitorGardenState document per visitor plus the
// shared plot-ownership markers.
//
// Saves are optimistic: UpdateState compares the version the state was
// loaded with and fails with domain.ErrConflict when another request saved
// in between. Callers treat a conflict as retryable and must never persist a
// partially applied mutation.
type Garden interface {
	// GetState returns the visitor's stored state, or
	// domain.ErrStateNotFound when the visitor has none yet.
	GetState(ctx context.Context, visitorRef string) (*domain.VisitorGardenState, error)

	// InsertState stores a brand-new state for the visitor. Fails with
	// domain.ErrConflict when a state already exists.
	InsertState(ctx context.Context, visitorRef string, state *domain.VisitorGardenState) error

	// UpdateState persists the full aggregate using compare-and-swap on
	// state.Version; on success the state's version is advanced in place.
	// changeTag labels the write for analytics/audit only.
	UpdateState(ctx context.Context, visitorRef string, state *domain.VisitorGardenState, changeTag string) error

	// GetPlotOwnership returns the claim marker for a plot asset, or nil
	// when the plot is unclaimed.
	GetPlotOwnership(ctx context.Context, plotAssetID string) (*domain.PlotOwnership, error)

	// ClaimPlotOwnership records the marker atomically. Fails with
	// domain.ErrPlotOwnedByOther when a different owner holds the plot;
	// re-claiming by the same owner is a no-op.
	ClaimPlotOwnership(ctx context.Context, ownership domain.PlotOwnership) error
}
