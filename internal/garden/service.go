// Package garden implements the game's business logic: one use-case per
// exported operation, each following the same shape. Load the visitor's
// state under a per-visitor lock, apply the pure rules from the economy,
// plot and growth packages, persist once, then run presentation side effects
// and analytics best-effort.
package garden

import (
	"context"
	"sort"
	"time"

	"github.com/verdantgames/GardenGrove_Go/internal/concurrency"
	"github.com/verdantgames/GardenGrove_Go/internal/domain"
	"github.com/verdantgames/GardenGrove_Go/internal/economy"
	"github.com/verdantgames/GardenGrove_Go/internal/event"
	"github.com/verdantgames/GardenGrove_Go/internal/growth"
	"github.com/verdantgames/GardenGrove_Go/internal/logger"
	"github.com/verdantgames/GardenGrove_Go/internal/repository"
	"github.com/verdantgames/GardenGrove_Go/internal/seed"
	"github.com/verdantgames/GardenGrove_Go/internal/world"
)

// Service defines the garden game business logic
type Service interface {
	// GetGameState returns the visitor's full state, lazily refreshing
	// growth levels first.
	GetGameState(ctx context.Context, creds domain.Credentials) (*domain.GameStateResponse, error)

	// ClaimPlot attaches the plot asset the visitor clicked to their state.
	ClaimPlot(ctx context.Context, creds domain.Credentials) (*domain.ClaimPlotResponse, error)

	// PurchaseSeed unlocks a paid seed, debiting its cost.
	PurchaseSeed(ctx context.Context, creds domain.Credentials, seedID int) (*domain.PurchaseSeedResponse, error)

	// PlantSeed drops a plant into an empty square of the visitor's plot.
	PlantSeed(ctx context.Context, creds domain.Credentials, seedID, squareIndex int) (*domain.PlantSeedResponse, error)

	// HarvestPlant converts a mature plant into coins and frees its square.
	HarvestPlant(ctx context.Context, creds domain.Credentials, plantID string) (*domain.HarvestPlantResponse, error)

	// GetPlantDetails returns the drill-down view for a single plant.
	GetPlantDetails(ctx context.Context, creds domain.Credentials, plantID string) (*domain.PlantDetailsResponse, error)

	// GetSeedMenu returns the catalog annotated with the visitor's unlocks.
	GetSeedMenu(ctx context.Context, creds domain.Credentials) (*domain.SeedMenuResponse, error)

	// UpdateGrowthLevels recomputes growth for every plant and persists any
	// increase.
	UpdateGrowthLevels(ctx context.Context, creds domain.Credentials) (*domain.UpdateGrowthLevelsResponse, error)

	// RemoveAllPlants clears the visitor's garden. Operator use only.
	RemoveAllPlants(ctx context.Context, creds domain.Credentials) (*domain.RemoveAllPlantsResponse, error)
}

type service struct {
	store     *StateStore
	repo      repository.Garden
	catalog   *seed.Catalog
	gateway   world.Gateway
	publisher *event.ResilientPublisher
	locks     *concurrency.LockManager
	plotLink  string
	now       func() time.Time
}

// NewService creates the garden service. plotLink is the URL written into a
// claimed plot's clickable; publisher may be nil to disable analytics.
func NewService(
	repo repository.Garden,
	catalog *seed.Catalog,
	gateway world.Gateway,
	publisher *event.ResilientPublisher,
	plotLink string,
) Service {
	return &service{
		store:     NewStateStore(repo),
		repo:      repo,
		catalog:   catalog,
		gateway:   gateway,
		publisher: publisher,
		locks:     concurrency.NewLockManager(),
		plotLink:  plotLink,
		now:       time.Now,
	}
}

// lockVisitor serializes same-visitor mutations in-process. The repository's
// compare-and-swap still guards against concurrent writers elsewhere.
func (s *service) lockVisitor(visitorID string) func() {
	lock := s.locks.GetLock(visitorID)
	lock.Lock()
	return lock.Unlock
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, evt)
	}
}

// plantView builds the display form of one plant.
func (s *service) plantView(plantID string, plant domain.Plant, now time.Time) domain.PlantView {
	view := domain.PlantView{
		ID:           plantID,
		SeedID:       plant.SeedID,
		SquareIndex:  plant.SquareIndex,
		PlantedAt:    plant.PlantedAt,
		GrowLevel:    plant.GrowLevel,
		WasHarvested: plant.WasHarvested,
		HarvestedAt:  plant.HarvestedAt,
	}

	def, err := s.catalog.Definition(plant.SeedID)
	if err != nil {
		// Catalog drift; serve the stored record without derived fields
		return view
	}

	view.SeedName = def.Name
	view.HarvestLevel = def.HarvestLevel
	view.GrowLevel = growth.Level(plant, def, now)
	view.IsReadyForHarvest = growth.IsReadyForHarvest(plant, def, now)
	if img, err := s.catalog.ImageForLevel(plant.SeedID, view.GrowLevel); err == nil {
		view.Image = img
	}
	return view
}

// plantViews builds display forms for every plant, ordered by square then id
// for stable output.
func (s *service) plantViews(state *domain.VisitorGardenState, now time.Time) []domain.PlantView {
	views := make([]domain.PlantView, 0, len(state.Plants))
	for plantID, plant := range state.Plants {
		views = append(views, s.plantView(plantID, plant, now))
	}
	sort.Slice(views, func(i, j int) bool {
		if views[i].SquareIndex != views[j].SquareIndex {
			return views[i].SquareIndex < views[j].SquareIndex
		}
		return views[i].ID < views[j].ID
	})
	return views
}

// seedMenu annotates the catalog with the visitor's unlocks and balance.
func (s *service) seedMenu(state *domain.VisitorGardenState) []domain.SeedMenuEntry {
	defs := s.catalog.All()
	entries := make([]domain.SeedMenuEntry, 0, len(defs))
	for _, def := range defs {
		entries = append(entries, domain.SeedMenuEntry{
			SeedDefinition: def,
			IsUnlocked:     economy.IsSeedUnlocked(&state.VisitorEconomy, def),
			CanAfford:      economy.CanAfford(&state.VisitorEconomy, def.Cost),
		})
	}
	return entries
}

// logSideEffectError records a failed presentation call. Side effects run
// after the state is committed and must never fail the request.
func logSideEffectError(ctx context.Context, effect string, err error) {
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgSideEffectFailed, "effect", effect, "error", err)
	}
}
