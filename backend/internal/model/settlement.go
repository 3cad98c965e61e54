package model

// SettlementKind enumerates settlement sizes.
type SettlementKind string

const (
	SettlementVillage SettlementKind = "village"
	SettlementTown    SettlementKind = "town"
	SettlementCity    SettlementKind = "city"
)

// PortSize enumerates naval port capacities (spec.md §4.9).
type PortSize string

const (
	PortMinor PortSize = "minor"
	PortMajor PortSize = "major"
	PortGreat PortSize = "great"
)

// Settlement is created at genesis; mood and supply mutate over the run,
// and the settlement may later be conquered (model.SettlementState).
type Settlement struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Population int                `json:"population"`
	Kind       SettlementKind     `json:"kind"`
	Coord      HexCoord           `json:"coord"`
	Supply     map[string]int     `json:"supply"`
	Mood       int                `json:"mood"`
	IsPort     bool               `json:"isPort"`
	PortSize   PortSize           `json:"portSize,omitempty"`
	Shipyard   bool               `json:"shipyard"`
	Lighthouse bool               `json:"lighthouse"`
}

// AdjustMood applies a clamped delta (spec.md §3 invariant 3, Open
// Question decision: ±5 everywhere).
func (s *Settlement) AdjustMood(delta int) {
	s.Mood = Clamp(s.Mood+delta, -5, 5)
}

// DecrementSupply removes amount from a supply good, floored at 0.
func (s *Settlement) DecrementSupply(good string, amount int) {
	if s.Supply == nil {
		return
	}
	v := s.Supply[good] - amount
	if v < 0 {
		v = 0
	}
	s.Supply[good] = v
}

// SettlementState is the lazily-created mutable side-table entry for a
// settlement (spec.md §3: "lazy").
type SettlementState struct {
	Prosperity     int      `json:"prosperity"`
	Safety         int      `json:"safety"`
	Unrest         int      `json:"unrest"`
	PopulationDelta int     `json:"populationDelta"`
	RecentEvents   []string `json:"recentEvents"`
	ControlledBy   string   `json:"controlledBy,omitempty"`
	Contested      bool     `json:"contested"`
	RulerNPCID     string   `json:"rulerNpcId,omitempty"`
	DefenseLevel   int      `json:"defenseLevel"`
	Disease        string   `json:"disease,omitempty"`
	Quarantined    bool     `json:"quarantined"`
	PriceTrends    map[string]string `json:"priceTrends,omitempty"`
	RecentInfluxes []TreasureInflux  `json:"recentInfluxes,omitempty"`
}

// TreasureInflux records one settlement-level economic shock from a
// completed extraction (spec.md §4.7 "Influx effect").
type TreasureInflux struct {
	Amount        float64 `json:"amount"`
	OccurredDay   int     `json:"occurredDay"`
	InflationRate float64 `json:"inflationRate"`
}

// AdjustUnrest clamps to [0..10].
func (s *SettlementState) AdjustUnrest(delta int) {
	s.Unrest = Clamp(s.Unrest+delta, 0, 10)
}

// NewSettlementState returns a zero-value state with initialized maps,
// the "get-or-create" shape called for by spec.md §9 ("lazy NPC
// states... replace with explicit get-or-create accessors").
func NewSettlementState() *SettlementState {
	return &SettlementState{
		RecentEvents: make([]string, 0),
		PriceTrends:  make(map[string]string),
	}
}

// Dungeon is created at genesis; its room count decrements on explore and
// it may become fully cleared.
type Dungeon struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Coord     HexCoord `json:"coord"`
	Depth     int      `json:"depth"`
	Danger    int      `json:"danger"`
	Rooms     int      `json:"rooms"`
	Cleared   bool     `json:"cleared"`
}

// Explore decrements the room count and marks the dungeon cleared once
// its rooms are exhausted.
func (d *Dungeon) Explore(n int) {
	d.Rooms -= n
	if d.Rooms <= 0 {
		d.Rooms = 0
		d.Cleared = true
	}
}
