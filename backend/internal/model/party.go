package model

// PartyStatus enumerates a Party's current activity.
type PartyStatus string

const (
	PartyIdle   PartyStatus = "idle"
	PartyTravel PartyStatus = "travel"
)

// PartyMember is one adventurer in a Party's roster.
type PartyMember struct {
	Name  string `json:"name"`
	Class string `json:"class"`
	Level int    `json:"level"`
	HP    int    `json:"hp"`
	MaxHP int    `json:"maxHp"`
}

// TravelPlan describes an in-progress journey (spec.md §3 invariant 4:
// "Party.status == travel iff travel plan is present").
type TravelPlan struct {
	Destination    HexCoord `json:"destination"`
	MilesRemaining float64  `json:"milesRemaining"`
	Terrain        Terrain  `json:"terrain"`
}

// Party is created at genesis or spawned later; it persists for the run.
type Party struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Members           []PartyMember `json:"members"`
	Location          HexCoord      `json:"location"`
	Status            PartyStatus   `json:"status"`
	Travel            *TravelPlan   `json:"travel,omitempty"`
	Fatigue           int           `json:"fatigue"`
	Wounded           bool          `json:"wounded"`
	RestHoursRemaining int          `json:"restHoursRemaining"`
	Goal              string        `json:"goal,omitempty"`
	Fame              int           `json:"fame"`
	XP                int           `json:"xp"`
}

// BeginTravel sets the party into travel status with a plan, preserving
// invariant 4.
func (p *Party) BeginTravel(plan TravelPlan) {
	p.Travel = &plan
	p.Status = PartyTravel
}

// ArriveIfDone transitions the party back to idle exactly once when its
// travel plan's remaining miles reach zero (spec.md §8 boundary
// behavior). Returns true the instant it transitions.
func (p *Party) ArriveIfDone() bool {
	if p.Travel == nil {
		return false
	}
	if p.Travel.MilesRemaining > 0 {
		return false
	}
	p.Travel = nil
	p.Status = PartyIdle
	return true
}

// AdjustFame clamps fame at a floor of 0 (spec.md §4.4.2: "fame −1
// (clamped ≥0)").
func (p *Party) AdjustFame(delta int) {
	p.Fame += delta
	if p.Fame < 0 {
		p.Fame = 0
	}
}

// PartyState is the lazily-created mutable side-table entry for a party.
type PartyState struct {
	Morale              int               `json:"morale"`
	Resources           int               `json:"resources"`
	Enemies             []string          `json:"enemies"`
	Allies              []string          `json:"allies"`
	Quests              []string          `json:"quests"`
	KillList            []string          `json:"killList"`
	SettlementReputation map[string]int   `json:"settlementReputation"`
	Vendetta            string            `json:"vendetta,omitempty"`
	Protectee           string            `json:"protectee,omitempty"`
}

// NewPartyState returns a zero-value state with initialized collections.
func NewPartyState() *PartyState {
	return &PartyState{
		Enemies:              make([]string, 0),
		Allies:               make([]string, 0),
		Quests:               make([]string, 0),
		KillList:             make([]string, 0),
		SettlementReputation: make(map[string]int),
	}
}

// AdjustMorale clamps to [-10..10].
func (s *PartyState) AdjustMorale(delta int) {
	s.Morale = Clamp(s.Morale+delta, -10, 10)
}

// SetVendetta records the party's first-perpetrator vendetta target and
// appends a hunt quest, matching spec.md §4.4.1's raid-response rule.
func (s *PartyState) SetVendetta(target string) {
	if s.Vendetta != "" {
		return
	}
	s.Vendetta = target
	s.Quests = append(s.Quests, "hunt:"+target)
}

// ClearVendetta clears a resolved vendetta and records the kill
// (spec.md §4.4.2 "if loser == vendetta, clear vendetta and append to
// kill list").
func (s *PartyState) ClearVendetta(killed string) {
	s.Vendetta = ""
	s.KillList = append(s.KillList, killed)
}
