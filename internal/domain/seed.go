package domain

// SeedDefinition is an immutable catalog entry describing a plantable seed
// type: its shop economics and growth timing. Definitions are built once at
// startup and never mutated.
type SeedDefinition struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	Cost         int    `json:"cost"`       // 0 means free: implicitly unlocked, never purchasable
	Reward       int    `json:"reward"`     // coins granted on harvest
	GrowthTime   int    `json:"growthTime"` // seconds to reach HarvestLevel
	HarvestLevel int    `json:"harvestLevel"`

	// ImageByLevel maps a growth level to its stage image. Not every level
	// needs an entry; the nearest lower defined level wins.
	ImageByLevel map[int]string `json:"imageVariations,omitempty"`
}

// IsFree reports whether the seed is unlocked for everyone without purchase.
func (s SeedDefinition) IsFree() bool {
	return s.Cost == 0
}
