package model

// Faction is persistent for the run.
type Faction struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Focus    string             `json:"focus"`
	Attitude map[string]int     `json:"attitude"` // settlementID -> attitude score
	Wealth   int                `json:"wealth"`
}

// FactionState is the lazily-created mutable side-table entry.
type FactionState struct {
	Power         int            `json:"power"`
	Territory     []string       `json:"territory"`
	Enemies       []string       `json:"enemies"`
	Allies        []string       `json:"allies"`
	Resources     int            `json:"resources"`
	Morale        int            `json:"morale"`
	ResourceNeeds map[string]int `json:"resourceNeeds"`
	CasusBelli    []CasusBelli   `json:"casusBelli"`
	Operations    []string       `json:"operations"`
	RecentLosses  int            `json:"recentLosses"`
	RecentWins    int            `json:"recentWins"`
}

// CasusBelli is a recorded grievance a faction holds against another.
type CasusBelli struct {
	AgainstFactionID string `json:"againstFactionId"`
	Reason           string `json:"reason"`
	Magnitude        int    `json:"magnitude"`
}

// NewFactionState returns a zero-value state with initialized
// collections.
func NewFactionState() *FactionState {
	return &FactionState{
		Territory:     make([]string, 0),
		Enemies:       make([]string, 0),
		Allies:        make([]string, 0),
		ResourceNeeds: make(map[string]int),
		CasusBelli:    make([]CasusBelli, 0),
		Operations:    make([]string, 0),
	}
}

// AdjustPower clamps to [0..100].
func (s *FactionState) AdjustPower(delta int) {
	s.Power = Clamp(s.Power+delta, 0, 100)
}

// RemoveString returns items with every occurrence of target dropped,
// preserving order. Shared across model and its consumer packages so
// slice-membership bookkeeping (ally/enemy lists, agenda targets) isn't
// reimplemented per package.
func RemoveString(items []string, target string) []string {
	out := items[:0]
	for _, it := range items {
		if it != target {
			out = append(out, it)
		}
	}
	return out
}

// ContainsString reports whether target is present in items.
func ContainsString(items []string, target string) bool {
	for _, it := range items {
		if it == target {
			return true
		}
	}
	return false
}

func removeString(items []string, target string) []string { return RemoveString(items, target) }
func containsString(items []string, target string) bool    { return ContainsString(items, target) }

// DeclareEnmity moves otherID out of allies (if present) and into
// enemies (deduplicated).
func (s *FactionState) DeclareEnmity(otherID string) {
	s.Allies = removeString(s.Allies, otherID)
	if !containsString(s.Enemies, otherID) {
		s.Enemies = append(s.Enemies, otherID)
	}
}

// DeclareAlliance moves otherID out of enemies (if present) and into
// allies (deduplicated); spec.md §4.4.7.
func (s *FactionState) DeclareAlliance(otherID string) {
	s.Enemies = removeString(s.Enemies, otherID)
	if !containsString(s.Allies, otherID) {
		s.Allies = append(s.Allies, otherID)
	}
}

// AddTerritory appends settlementID if not already held.
func (s *FactionState) AddTerritory(settlementID string) {
	if !containsString(s.Territory, settlementID) {
		s.Territory = append(s.Territory, settlementID)
	}
}

// RemoveTerritory drops settlementID from the held territory list.
func (s *FactionState) RemoveTerritory(settlementID string) {
	s.Territory = removeString(s.Territory, settlementID)
}
