// Package postgres implements the Garden repository on PostgreSQL: one
// JSONB document per visitor with a version column for optimistic
// concurrency, plus a plot_ownership table for shared claim markers.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/verdantgames/GardenGrove_Go/internal/domain"
)

const (
	// Plot ownership is read on every game-state call but changes only on
	// claim; a short-TTL cache keeps the hot path off the database.
	ownershipCacheSize = 1024
	ownershipCacheTTL  = 30 * time.Second
)

// GardenRepository implements repository.Garden backed by pgx.
type GardenRepository struct {
	pool           *pgxpool.Pool
	ownershipCache *expirable.LRU[string, domain.PlotOwnership]
}

// NewGardenRepository creates a Postgres-backed garden repository.
func NewGardenRepository(pool *pgxpool.Pool) *GardenRepository {
	return &GardenRepository{
		pool:           pool,
		ownershipCache: expirable.NewLRU[string, domain.PlotOwnership](ownershipCacheSize, nil, ownershipCacheTTL),
	}
}

// GetState loads the visitor's state document and its version.
func (r *GardenRepository) GetState(ctx context.Context, visitorRef string) (*domain.VisitorGardenState, error) {
	var (
		doc     []byte
		version int64
	)
	err := r.pool.QueryRow(ctx,
		`SELECT state, version FROM visitor_garden_state WHERE visitor_ref = $1`,
		visitorRef,
	).Scan(&doc, &version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrStateNotFound, visitorRef)
		}
		return nil, fmt.Errorf("%w: failed to get state: %v", domain.ErrDatabaseError, err)
	}

	var state domain.VisitorGardenState
	if err := json.Unmarshal(doc, &state); err != nil {
		return nil, fmt.Errorf("failed to decode state for %s: %w", visitorRef, err)
	}
	state.Version = version
	return &state, nil
}

// InsertState stores a brand-new document at version 1.
func (r *GardenRepository) InsertState(ctx context.Context, visitorRef string, state *domain.VisitorGardenState) error {
	doc, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	tag, err := r.pool.Exec(ctx,
		`INSERT INTO visitor_garden_state (visitor_ref, state, version)
		 VALUES ($1, $2, 1)
		 ON CONFLICT (visitor_ref) DO NOTHING`,
		visitorRef, doc,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to insert state: %v", domain.ErrDatabaseError, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: state already exists for %s", domain.ErrConflict, visitorRef)
	}
	state.Version = 1
	return nil
}

// UpdateState saves the aggregate with compare-and-swap on the version the
// state was loaded with. Zero rows updated means another request saved
// first; the caller gets a retryable conflict.
func (r *GardenRepository) UpdateState(ctx context.Context, visitorRef string, state *domain.VisitorGardenState, changeTag string) error {
	doc, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE visitor_garden_state
		 SET state = $2, version = version + 1, last_change_tag = $3, updated_at = now()
		 WHERE visitor_ref = $1 AND version = $4`,
		visitorRef, doc, changeTag, state.Version,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to update state: %v", domain.ErrDatabaseError, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: visitor %s version %d", domain.ErrConflict, visitorRef, state.Version)
	}
	state.Version++
	return nil
}

// GetPlotOwnership returns the claim marker for a plot asset, or nil when
// unclaimed. Positive results are cached briefly.
func (r *GardenRepository) GetPlotOwnership(ctx context.Context, plotAssetID string) (*domain.PlotOwnership, error) {
	if cached, ok := r.ownershipCache.Get(plotAssetID); ok {
		copied := cached
		return &copied, nil
	}

	var ownership domain.PlotOwnership
	err := r.pool.QueryRow(ctx,
		`SELECT plot_asset_id, owner_id, owner_name, claimed_at
		 FROM plot_ownership WHERE plot_asset_id = $1`,
		plotAssetID,
	).Scan(&ownership.PlotAssetID, &ownership.OwnerID, &ownership.OwnerName, &ownership.ClaimedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to get plot ownership: %v", domain.ErrDatabaseError, err)
	}

	r.ownershipCache.Add(plotAssetID, ownership)
	return &ownership, nil
}

// ClaimPlotOwnership inserts the marker atomically; the unique key on
// plot_asset_id arbitrates concurrent claims. Re-claiming by the same owner
// is a no-op.
func (r *GardenRepository) ClaimPlotOwnership(ctx context.Context, ownership domain.PlotOwnership) error {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO plot_ownership (plot_asset_id, owner_id, owner_name, claimed_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (plot_asset_id) DO NOTHING`,
		ownership.PlotAssetID, ownership.OwnerID, ownership.OwnerName, ownership.ClaimedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to claim plot: %v", domain.ErrDatabaseError, err)
	}

	if tag.RowsAffected() == 0 {
		existing, err := r.getOwnershipUncached(ctx, ownership.PlotAssetID)
		if err != nil {
			return err
		}
		if existing == nil || existing.OwnerID != ownership.OwnerID {
			name := "another player"
			if existing != nil && existing.OwnerName != "" {
				name = existing.OwnerName
			}
			return fmt.Errorf("%w: claimed by %s", domain.ErrPlotOwnedByOther, name)
		}
	}

	r.ownershipCache.Add(ownership.PlotAssetID, ownership)
	return nil
}

func (r *GardenRepository) getOwnershipUncached(ctx context.Context, plotAssetID string) (*domain.PlotOwnership, error) {
	var ownership domain.PlotOwnership
	err := r.pool.QueryRow(ctx,
		`SELECT plot_asset_id, owner_id, owner_name, claimed_at
		 FROM plot_ownership WHERE plot_asset_id = $1`,
		plotAssetID,
	).Scan(&ownership.PlotAssetID, &ownership.OwnerID, &ownership.OwnerName, &ownership.ClaimedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to get plot ownership: %v", domain.ErrDatabaseError, err)
	}
	return &ownership, nil
}
