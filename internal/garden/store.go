package garden

import (
	"context"
	"errors"
	"fmt"

	"github.com/verdantgames/GardenGrove_Go/internal/domain"
	"github.com/verdantgames/GardenGrove_Go/internal/logger"
	"github.com/verdantgames/GardenGrove_Go/internal/repository"
)

// StateStore wraps the persistence port with the load-or-initialize
// discipline: a visitor with no stored document, or a document missing the
// expected shape, gets the default state written back before any business
// rule runs. After Load the returned aggregate is always complete.
type StateStore struct {
	repo repository.Garden
}

// NewStateStore creates a StateStore over the given repository.
func NewStateStore(repo repository.Garden) *StateStore {
	return &StateStore{repo: repo}
}

// Load returns the visitor's state, initializing it on first contact or when
// the stored document is structurally incomplete.
func (st *StateStore) Load(ctx context.Context, visitorRef string) (*domain.VisitorGardenState, error) {
	state, err := st.repo.GetState(ctx, visitorRef)
	if err != nil {
		if errors.Is(err, domain.ErrStateNotFound) {
			return st.initialize(ctx, visitorRef)
		}
		return nil, fmt.Errorf("failed to load garden state: %w", err)
	}

	if !state.IsComplete() {
		log := logger.FromContext(ctx)
		log.Warn("Stored garden state incomplete, reinitializing", "visitorRef", visitorRef)

		fresh := domain.NewVisitorGardenState()
		fresh.Version = state.Version
		if err := st.repo.UpdateState(ctx, visitorRef, fresh, changeTagStateInitialized); err != nil {
			return nil, fmt.Errorf("failed to reinitialize garden state: %w", err)
		}
		return fresh, nil
	}

	return state, nil
}

// Save persists the aggregate under the given change tag. A version conflict
// surfaces as domain.ErrConflict and means the whole mutation must be retried
// from Load.
func (st *StateStore) Save(ctx context.Context, visitorRef string, state *domain.VisitorGardenState, changeTag string) error {
	if err := st.repo.UpdateState(ctx, visitorRef, state, changeTag); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return err
		}
		return fmt.Errorf("failed to save garden state: %w", err)
	}
	return nil
}

func (st *StateStore) initialize(ctx context.Context, visitorRef string) (*domain.VisitorGardenState, error) {
	state := domain.NewVisitorGardenState()
	err := st.repo.InsertState(ctx, visitorRef, state)
	if err == nil {
		return state, nil
	}

	// Lost a first-contact race; the winner's document is authoritative
	if errors.Is(err, domain.ErrConflict) {
		existing, getErr := st.repo.GetState(ctx, visitorRef)
		if getErr != nil {
			return nil, fmt.Errorf("failed to load garden state after insert race: %w", getErr)
		}
		return existing, nil
	}
	return nil, fmt.Errorf("failed to initialize garden state: %w", err)
}
