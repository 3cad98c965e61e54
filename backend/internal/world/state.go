package world

import "github.com/worldforge/sim/backend/internal/model"

// State holds every lazily-created side-table plus the bounded event
// history (spec.md §6 serialization format: `state {
// settlementStates, factionStates, partyStates, treasureState,
// navalState, consequenceQueue, eventHistory, rngState }`); the
// consequence queue and RNG state are held by the orchestrator, not
// here, and internal/snapshot adds them to the document. Get-or-create
// accessors replace the source's "generator-style lazy" pattern
// (spec.md §9).
type State struct {
	SettlementStates map[string]*model.SettlementState `json:"settlementStates"`
	FactionStates    map[string]*model.FactionState     `json:"factionStates"`
	PartyStates      map[string]*model.PartyState       `json:"partyStates"`
	ReactiveNPCs     map[string]*model.ReactiveNPC      `json:"reactiveNpcs"`
	Treasure         *model.TreasureState               `json:"treasureState"`
	Naval            *model.NavalState                  `json:"navalState"`
	Warmachine       *model.WarmachineState             `json:"warmachineState"`

	// WeatherCondition is yesterday's sampled condition, carried so the
	// day's weather regeneration (spec.md §4.10: "persists with 0.6
	// probability") has something to persist. Empty until the first day
	// rollover. The condition's effect modifiers are content-table
	// lookups, not state, and are never stored here.
	WeatherCondition string `json:"weatherCondition,omitempty"`

	// HistoryTail bounds EventHistory's length (spec.md §5 bounded
	// growth: world history ≤ configured tail, default 200).
	HistoryTail  int                 `json:"-"`
	MemoryCap    int                 `json:"-"`
	EventHistory []*model.WorldEvent `json:"eventHistory"`
}

// NewState returns a zero-value State with every map/side-table
// initialized and history/memory bounds set from the supplied config.
func NewState(historyTail, memoryCap int) *State {
	return &State{
		SettlementStates: make(map[string]*model.SettlementState),
		FactionStates:    make(map[string]*model.FactionState),
		PartyStates:      make(map[string]*model.PartyState),
		ReactiveNPCs:     make(map[string]*model.ReactiveNPC),
		Treasure:         model.NewTreasureState(),
		Naval:            model.NewNavalState(),
		Warmachine:       model.NewWarmachineState(),
		HistoryTail:      historyTail,
		MemoryCap:        memoryCap,
		EventHistory:     make([]*model.WorldEvent, 0, historyTail),
	}
}

// SettlementState returns the settlement's side-table entry, creating it
// on first access.
func (s *State) SettlementState(id string) *model.SettlementState {
	st, ok := s.SettlementStates[id]
	if !ok {
		st = model.NewSettlementState()
		s.SettlementStates[id] = st
	}
	return st
}

// FactionState returns the faction's side-table entry, creating it on
// first access.
func (s *State) FactionState(id string) *model.FactionState {
	st, ok := s.FactionStates[id]
	if !ok {
		st = model.NewFactionState()
		s.FactionStates[id] = st
	}
	return st
}

// PartyState returns the party's side-table entry, creating it on first
// access.
func (s *State) PartyState(id string) *model.PartyState {
	st, ok := s.PartyStates[id]
	if !ok {
		st = model.NewPartyState()
		s.PartyStates[id] = st
	}
	return st
}

// ReactiveNPC returns the NPC's memory/agenda adjunct entry, creating it
// on first access (spec.md §9: "Creation lazy (on first memory)").
func (s *State) ReactiveNPC(id string) *model.ReactiveNPC {
	r, ok := s.ReactiveNPCs[id]
	if !ok {
		r = model.NewReactiveNPC()
		s.ReactiveNPCs[id] = r
	}
	return r
}

// AppendEvent appends evt to the bounded world history, dropping the
// oldest entries once HistoryTail is exceeded (spec.md §3 invariant 8).
func (s *State) AppendEvent(evt *model.WorldEvent) {
	s.EventHistory = append(s.EventHistory, evt)
	if over := len(s.EventHistory) - s.HistoryTail; over > 0 {
		s.EventHistory = s.EventHistory[over:]
	}
}
