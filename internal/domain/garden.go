package domain

import "time"

// Plot grid dimensions. Every claimed plot is a fixed 4x4 grid.
const (
	GridSize        = 4
	PlotSquareCount = GridSize * GridSize
)

// DefaultStartingCoins is the balance a brand-new visitor starts with.
const DefaultStartingCoins = 10

// Plant is one planted seed occupying a plot square. It is keyed in the
// visitor's state by the id of the dropped asset that represents it in the
// world. GrowLevel is derived from PlantedAt on every read and persisted so
// it can never move backwards.
type Plant struct {
	SeedID       int        `json:"seedId"`
	PlantedAt    time.Time  `json:"plantedAt"`
	GrowLevel    int        `json:"growLevel"`
	SquareIndex  int        `json:"squareIndex"`
	WasHarvested bool       `json:"wasHarvested"`
	LastUpdated  time.Time  `json:"lastUpdated"`
	HarvestedAt  *time.Time `json:"harvestedAt,omitempty"`
}

// Plot is a visitor's claimed gardening area. Squares is always
// PlotSquareCount long; an empty square holds "", an occupied one holds the
// plant id of its occupant.
type Plot struct {
	PlotAssetID string    `json:"plotAssetId"`
	ClaimedAt   time.Time `json:"claimedDate"`
	Squares     []string  `json:"squares"`
}

// NewPlot returns a freshly claimed plot with every square empty.
func NewPlot(plotAssetID string, claimedAt time.Time) *Plot {
	return &Plot{
		PlotAssetID: plotAssetID,
		ClaimedAt:   claimedAt,
		Squares:     make([]string, PlotSquareCount),
	}
}

// VisitorEconomy tracks a visitor's spendable balance, lifetime earnings and
// purchased (non-free) seeds.
type VisitorEconomy struct {
	CoinsAvailable   int               `json:"coinsAvailable"`
	TotalCoinsEarned int               `json:"totalCoinsEarned"`
	SeedsPurchased   map[int]time.Time `json:"seedsPurchased"`
}

// VisitorGardenState is the persisted aggregate: economy + plot + plants.
// It is the unit of the load -> validate -> save cycle; Version backs the
// compare-and-swap discipline on save and never leaves the server.
type VisitorGardenState struct {
	VisitorEconomy
	OwnedPlot *Plot            `json:"ownedPlot"`
	Plants    map[string]Plant `json:"plants"`

	Version int64 `json:"-"`
}

// NewVisitorGardenState returns the documented default state a visitor is
// initialized to on first load.
func NewVisitorGardenState() *VisitorGardenState {
	return &VisitorGardenState{
		VisitorEconomy: VisitorEconomy{
			CoinsAvailable:   DefaultStartingCoins,
			TotalCoinsEarned: 0,
			SeedsPurchased:   make(map[int]time.Time),
		},
		OwnedPlot: nil,
		Plants:    make(map[string]Plant),
	}
}

// IsComplete reports whether a loaded document has the full expected shape.
// Incomplete documents (older iterations, partial writes) are reinitialized
// on load.
func (s *VisitorGardenState) IsComplete() bool {
	if s == nil {
		return false
	}
	if s.SeedsPurchased == nil || s.Plants == nil {
		return false
	}
	if s.OwnedPlot != nil && len(s.OwnedPlot.Squares) != PlotSquareCount {
		return false
	}
	return true
}

// PlotOwnership is the shared-side claim marker recorded against a plot
// asset so double-claims by different visitors are rejected.
type PlotOwnership struct {
	PlotAssetID string    `json:"plotAssetId"`
	OwnerID     string    `json:"ownerId"`
	OwnerName   string    `json:"ownerName"`
	ClaimedAt   time.Time `json:"claimedDate"`
}
