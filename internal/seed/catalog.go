package seed

import (
	"fmt"
	"sort"

	"github.com/verdantgames/GardenGrove_Go/internal/domain"
)

// Catalog is the process-wide read-only seed table. It is constructed once
// at startup; lookups are pure and safe for concurrent use.
type Catalog struct {
	byID    map[int]domain.SeedDefinition
	ordered []domain.SeedDefinition
}

// NewCatalog builds a catalog from the given definitions. Duplicate ids and
// non-positive growth parameters are configuration bugs and fail fast.
func NewCatalog(defs []domain.SeedDefinition) (*Catalog, error) {
	byID := make(map[int]domain.SeedDefinition, len(defs))
	for _, def := range defs {
		if def.ID <= 0 {
			return nil, fmt.Errorf("seed %q: id must be positive, got %d", def.Name, def.ID)
		}
		if _, exists := byID[def.ID]; exists {
			return nil, fmt.Errorf("duplicate seed id %d", def.ID)
		}
		if def.GrowthTime <= 0 {
			return nil, fmt.Errorf("seed %d: growth time must be positive, got %d", def.ID, def.GrowthTime)
		}
		if def.HarvestLevel <= 0 {
			return nil, fmt.Errorf("seed %d: harvest level must be positive, got %d", def.ID, def.HarvestLevel)
		}
		if def.Cost < 0 {
			return nil, fmt.Errorf("seed %d: cost must not be negative, got %d", def.ID, def.Cost)
		}
		if def.Reward <= 0 {
			return nil, fmt.Errorf("seed %d: reward must be positive, got %d", def.ID, def.Reward)
		}
		byID[def.ID] = def
	}

	ordered := make([]domain.SeedDefinition, 0, len(byID))
	for _, def := range byID {
		ordered = append(ordered, def)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	return &Catalog{byID: byID, ordered: ordered}, nil
}

// NewDefaultCatalog builds the catalog from the built-in seed table.
func NewDefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultSeeds())
	if err != nil {
		// The built-in table is validated by tests; a failure here is a
		// programming error.
		panic(err)
	}
	return c
}

// Definition returns the seed with the given id.
func (c *Catalog) Definition(seedID int) (domain.SeedDefinition, error) {
	def, ok := c.byID[seedID]
	if !ok {
		return domain.SeedDefinition{}, fmt.Errorf("%w: id %d", domain.ErrSeedNotFound, seedID)
	}
	return def, nil
}

// All returns every seed definition ordered by id.
func (c *Catalog) All() []domain.SeedDefinition {
	out := make([]domain.SeedDefinition, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// ImageForLevel resolves the stage image for a seed at the given growth
// level. Levels without their own entry use the nearest lower defined level;
// seeds with no stage images fall back to their icon.
func (c *Catalog) ImageForLevel(seedID, level int) (string, error) {
	def, err := c.Definition(seedID)
	if err != nil {
		return "", err
	}
	if len(def.ImageByLevel) == 0 {
		return def.Icon, nil
	}

	best := -1
	for lvl := range def.ImageByLevel {
		if lvl <= level && lvl > best {
			best = lvl
		}
	}
	if best < 0 {
		return def.Icon, nil
	}
	return def.ImageByLevel[best], nil
}
