// Package snapshot implements spec.md §6's serialization format: a
// canonical JSON document capturing the whole world state (entities,
// consequence queue, history, RNG state) that `restore` followed by the
// same `advance` calls reproduces byte-for-byte (spec.md §8's round-trip
// law). Grounded directly on spec.md §6's named top-level keys; the
// teacher's closest equivalent is `internal/database`'s repository
// layer, but that persists to SQL incrementally rather than exporting
// one document, so this package instead follows the shape
// `internal/world.Registry`'s own MarshalJSON/UnmarshalJSON pair
// already establishes: encode exactly the fields spec.md names, nothing
// implicit.
package snapshot

import (
	"encoding/json"

	"github.com/worldforge/sim/backend/internal/consequence"
	"github.com/worldforge/sim/backend/internal/constants"
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/orchestrator"
	"github.com/worldforge/sim/backend/internal/world"
	"github.com/worldforge/sim/backend/internal/worldrand"
	apperrors "github.com/worldforge/sim/backend/pkg/errors"
)

// Meta carries the run identity fields spec.md §6 names: `meta { seed,
// archetype, turnIndex, worldTime, schemaVersion }`. turnIndex and
// worldTime are the same counter under spec.md's two names (one
// simulated hour is one turn) — both are emitted since spec.md's worked
// example (§8 scenario 1) asserts on both independently.
type Meta struct {
	Seed          string `json:"seed"`
	Archetype     string `json:"archetype"`
	TurnIndex     int64  `json:"turnIndex"`
	WorldTime     int64  `json:"worldTime"`
	SchemaVersion string `json:"schemaVersion"`
}

// StateDocument is spec.md §6's `state { settlementStates, factionStates,
// partyStates, treasureState, navalState, consequenceQueue, eventHistory,
// rngState }`. world.State owns every field here except ConsequenceQueue
// and RngState, which live on the orchestrator (the queue is shared
// infrastructure the dispatcher drains; the Rng is shared by every
// subsystem), not on World or State themselves.
type StateDocument struct {
	SettlementStates map[string]*model.SettlementState `json:"settlementStates"`
	FactionStates    map[string]*model.FactionState     `json:"factionStates"`
	PartyStates      map[string]*model.PartyState       `json:"partyStates"`
	ReactiveNPCs     map[string]*model.ReactiveNPC      `json:"reactiveNpcs"`
	TreasureState    *model.TreasureState               `json:"treasureState"`
	NavalState       *model.NavalState                  `json:"navalState"`
	WarmachineState  *model.WarmachineState             `json:"warmachineState"`
	WeatherCondition string                             `json:"weatherCondition,omitempty"`
	ConsequenceQueue []*model.ConsequenceEntry          `json:"consequenceQueue"`
	EventHistory     []*model.WorldEvent                `json:"eventHistory"`
	RngState         worldrand.State                    `json:"rngState"`
}

// Document is the top-level snapshot shape spec.md §6 describes.
type Document struct {
	Meta  Meta          `json:"meta"`
	World *world.World  `json:"world"`
	State StateDocument `json:"state"`
}

// Capture builds a Document from a running Orchestrator's current state.
// archetype is the genesis configuration label the caller supplied to
// internal/sim; snapshot itself has no opinion on what archetypes exist.
func Capture(o *orchestrator.Orchestrator, archetype string) *Document {
	st := o.State
	return &Document{
		Meta: Meta{
			Seed:          o.Seed,
			Archetype:     archetype,
			TurnIndex:     o.WorldTime,
			WorldTime:     o.WorldTime,
			SchemaVersion: constants.SchemaVersion,
		},
		World: o.World,
		State: StateDocument{
			SettlementStates: st.SettlementStates,
			FactionStates:    st.FactionStates,
			PartyStates:      st.PartyStates,
			ReactiveNPCs:     st.ReactiveNPCs,
			TreasureState:    st.Treasure,
			NavalState:       st.Naval,
			WarmachineState:  st.Warmachine,
			WeatherCondition: st.WeatherCondition,
			ConsequenceQueue: o.Queue.Snapshot(),
			EventHistory:     st.EventHistory,
			RngState:         o.Rng.Snapshot(),
		},
	}
}

// Marshal renders the document as canonical JSON. Struct field order is
// fixed by declaration order and world.Registry's own MarshalJSON already
// guarantees insertion-order arrays, so two runs with identical state
// produce byte-identical output (spec.md §8: "snapshot(h2) ==
// snapshot(advance(h, k))").
func Marshal(doc *Document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, apperrors.NewSerializationError("snapshot: encode failed").WithInternal(err)
	}
	return data, nil
}

// Parse decodes a Document from bytes and checks its schemaVersion
// against the running binary's (spec.md §4.2: subsystem order "must not
// be reordered without bumping a simulation-compatibility tag"; restore
// refuses a mismatched tag as a SerializationError per SPEC_FULL.md's
// resolution of that note).
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.NewSerializationError("snapshot: malformed document").WithInternal(err)
	}
	if doc.Meta.SchemaVersion != constants.SchemaVersion {
		return nil, apperrors.NewSerializationError(
			"snapshot: schemaVersion " + doc.Meta.SchemaVersion + " does not match running binary's " + constants.SchemaVersion)
	}
	return &doc, nil
}

// Rehydrate rebuilds a world.World/world.State pair and a fresh
// consequence.Queue and worldrand.Rng from a parsed Document, restoring
// every lazily-created side-table map directly (they are never nil after
// Parse since encoding/json always allocates a map for a non-null JSON
// object). historyTail/memoryCap must match the bounds the original run
// used; they are not themselves part of the snapshot since they are
// process configuration, not world state.
func Rehydrate(doc *Document, historyTail, memoryCap int) (*world.World, *world.State, *consequence.Queue, *worldrand.Rng) {
	st := world.NewState(historyTail, memoryCap)
	if doc.State.SettlementStates != nil {
		st.SettlementStates = doc.State.SettlementStates
	}
	if doc.State.FactionStates != nil {
		st.FactionStates = doc.State.FactionStates
	}
	if doc.State.PartyStates != nil {
		st.PartyStates = doc.State.PartyStates
	}
	if doc.State.ReactiveNPCs != nil {
		st.ReactiveNPCs = doc.State.ReactiveNPCs
	}
	if doc.State.TreasureState != nil {
		st.Treasure = doc.State.TreasureState
	}
	if doc.State.NavalState != nil {
		st.Naval = doc.State.NavalState
	}
	if doc.State.WarmachineState != nil {
		st.Warmachine = doc.State.WarmachineState
	}
	st.WeatherCondition = doc.State.WeatherCondition
	st.EventHistory = doc.State.EventHistory

	queue := consequence.Restore(doc.State.ConsequenceQueue)
	rng := worldrand.Restore(doc.State.RngState)

	return doc.World, st, queue, rng
}
