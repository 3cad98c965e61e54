package model

// ArmyMarch is the mutable march-progress side-table entry for an army
// currently moving toward its Target (spec.md §3's Army entity carries
// only the marching status and the target, not progress-in-flight; the
// remaining-distance counter lives here the same way Party's
// MilesRemaining lives on a TravelPlan, kept separate since Army's fixed
// attribute list is named exhaustively in spec.md §3 and march progress
// is not one of those attributes).
type ArmyMarch struct {
	MilesRemaining float64 `json:"milesRemaining"`
}

// WarmachineState is the side-table for the war-machine subsystem: one
// ArmyMarch per army currently marching, keyed by army id.
type WarmachineState struct {
	Marches map[string]*ArmyMarch `json:"marches"`
}

// NewWarmachineState returns a zero-value state with initialized maps.
func NewWarmachineState() *WarmachineState {
	return &WarmachineState{Marches: make(map[string]*ArmyMarch)}
}
