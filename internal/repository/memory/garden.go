// Package memory provides an in-memory Garden repository used by unit tests
// and database-less local runs. It honors the same compare-and-swap
// contract as the Postgres adapter.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/verdantgames/GardenGrove_Go/internal/domain"
)

// GardenRepository is a mutex-guarded map-backed implementation of
// repository.Garden.
type GardenRepository struct {
	mu        sync.Mutex
	states    map[string]*storedState
	ownership map[string]domain.PlotOwnership
}

type storedState struct {
	doc     []byte
	version int64
}

// NewGardenRepository creates an empty in-memory repository.
func NewGardenRepository() *GardenRepository {
	return &GardenRepository{
		states:    make(map[string]*storedState),
		ownership: make(map[string]domain.PlotOwnership),
	}
}

// GetState returns a deep copy of the stored aggregate.
func (r *GardenRepository) GetState(_ context.Context, visitorRef string) (*domain.VisitorGardenState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.states[visitorRef]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrStateNotFound, visitorRef)
	}

	state, err := decodeState(stored.doc)
	if err != nil {
		return nil, err
	}
	state.Version = stored.version
	return state, nil
}

// InsertState stores a new aggregate at version 1.
func (r *GardenRepository) InsertState(_ context.Context, visitorRef string, state *domain.VisitorGardenState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.states[visitorRef]; exists {
		return fmt.Errorf("%w: state already exists for %s", domain.ErrConflict, visitorRef)
	}

	doc, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	r.states[visitorRef] = &storedState{doc: doc, version: 1}
	state.Version = 1
	return nil
}

// UpdateState persists the aggregate when the caller's version matches the
// stored one.
func (r *GardenRepository) UpdateState(_ context.Context, visitorRef string, state *domain.VisitorGardenState, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.states[visitorRef]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrStateNotFound, visitorRef)
	}
	if stored.version != state.Version {
		return fmt.Errorf("%w: expected version %d, have %d", domain.ErrConflict, stored.version, state.Version)
	}

	doc, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	stored.doc = doc
	stored.version++
	state.Version = stored.version
	return nil
}

// GetPlotOwnership returns the claim marker, or nil when unclaimed.
func (r *GardenRepository) GetPlotOwnership(_ context.Context, plotAssetID string) (*domain.PlotOwnership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ownership, ok := r.ownership[plotAssetID]
	if !ok {
		return nil, nil
	}
	copied := ownership
	return &copied, nil
}

// ClaimPlotOwnership records the marker unless a different owner holds it.
func (r *GardenRepository) ClaimPlotOwnership(_ context.Context, ownership domain.PlotOwnership) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, claimed := r.ownership[ownership.PlotAssetID]
	if claimed && existing.OwnerID != ownership.OwnerID {
		return fmt.Errorf("%w: claimed by %s", domain.ErrPlotOwnedByOther, existing.OwnerName)
	}
	r.ownership[ownership.PlotAssetID] = ownership
	return nil
}

func decodeState(doc []byte) (*domain.VisitorGardenState, error) {
	var state domain.VisitorGardenState
	if err := json.Unmarshal(doc, &state); err != nil {
		return nil, fmt.Errorf("failed to decode state: %w", err)
	}
	return &state, nil
}
