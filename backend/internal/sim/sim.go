package sim

import (
	"time"

	"github.com/worldforge/sim/backend/internal/calendar"
	"github.com/worldforge/sim/backend/internal/causality"
	"github.com/worldforge/sim/backend/internal/consequence"
	"github.com/worldforge/sim/backend/internal/constants"
	"github.com/worldforge/sim/backend/internal/content"
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/naval"
	"github.com/worldforge/sim/backend/internal/orchestrator"
	"github.com/worldforge/sim/backend/internal/prose"
	"github.com/worldforge/sim/backend/internal/snapshot"
	"github.com/worldforge/sim/backend/internal/world"
	"github.com/worldforge/sim/backend/internal/worldrand"
	apperrors "github.com/worldforge/sim/backend/pkg/errors"
	"github.com/worldforge/sim/backend/pkg/logger"
)

// startEpoch is the real-world instant worldTime 0 corresponds to for
// every simulation this module constructs. It must sit on a midnight UTC
// boundary (orchestrator.Orchestrator.Epoch's contract) so day-rollover
// detection lines up with every subsystem's worldTime/24 day convention.
var startEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// SimHandle is the opaque runtime handle spec.md §6's Runtime API
// returns from newSimulation/restore and accepts into advance/snapshot/
// queryEvents. It owns one Orchestrator, which in turn owns every engine
// package and the live World/State.
type SimHandle struct {
	Archetype string
	Orch      *orchestrator.Orchestrator
	Tables    *content.Tables

	// Logs is the durable event log (§2: "generated log entries are
	// appended to a durable event log"), unbounded for the life of the
	// handle — distinct from world.State.EventHistory, which is the
	// bounded 200-entry WorldEvent tail invariant 8 constrains. A
	// restored handle's log starts empty: the serialization format (§6)
	// does not carry the full log, only the bounded WorldEvent history.
	Logs []model.LogEntry

	historyTail int
	memoryCap   int
}

// NewSimulation builds a fresh world for seed/archetype and returns a
// handle at worldTime 0 with zero logs emitted (spec.md §8 scenario 1).
// tables is the injected content-table configuration (spec.md §6
// "Content-table contract"); callers that don't need a custom set can
// pass content.DefaultTables(). debug controls whether an unmapped
// consequence tag or a recovered InvariantViolation is fatal (spec.md §7).
func NewSimulation(seed, archetype string, tables *content.Tables, debug bool, log *logger.LoggerV2) (*SimHandle, error) {
	if err := tables.Validate(); err != nil {
		return nil, err
	}

	rng := worldrand.New(seed)
	w, st := generateWorld(rng, tables, archetype)

	composer := prose.NewComposer(prose.DefaultTemplates())
	queue := consequence.NewQueue()
	eng := causality.NewEngine(w, st, rng, composer, queue, seed)
	cal := calendar.RealCalendar{}

	orch := orchestrator.New(w, st, tables, composer, queue, eng, rng, seed, startEpoch, cal, debug, scopedLogger(log, seed))

	navalMgr := naval.NewManager(w, st, tables, composer, queue, rng, seed)
	cfg := archetypeConfig(archetype)
	generateNavalLayer(w, navalMgr, rng, tables, cfg)

	return &SimHandle{
		Archetype:   archetype,
		Orch:        orch,
		Tables:      tables,
		historyTail: constants.WorldHistoryTail,
		memoryCap:   constants.NPCMemoryCap,
	}, nil
}

// Advance runs hours consecutive simulated hours and returns every log
// entry produced, in chronological order. advance(_, 0) is a no-op and
// yields no entries (spec.md §8 boundary behavior).
func (h *SimHandle) Advance(hours int) ([]model.LogEntry, error) {
	if hours <= 0 {
		return nil, nil
	}
	produced, err := h.Orch.Advance(hours)
	h.Logs = append(h.Logs, produced...)
	return produced, err
}

// Snapshot renders the handle's whole world state as the canonical JSON
// document spec.md §6 describes.
func (h *SimHandle) Snapshot() ([]byte, error) {
	doc := snapshot.Capture(h.Orch, h.Archetype)
	return snapshot.Marshal(doc)
}

// Restore rebuilds a SimHandle from a snapshot previously produced by
// Snapshot, ready to accept further Advance calls that reproduce the
// same logs and final snapshot a continuous run would have (spec.md §8's
// round-trip law).
func Restore(data []byte, tables *content.Tables, debug bool, log *logger.LoggerV2) (*SimHandle, error) {
	doc, err := snapshot.Parse(data)
	if err != nil {
		if log != nil {
			log.Error().Err(apperrors.Cause(err)).Msg("restore: snapshot rejected")
		}
		return nil, err
	}
	if err := tables.Validate(); err != nil {
		return nil, err
	}

	w, st, queue, rng := snapshot.Rehydrate(doc, constants.WorldHistoryTail, constants.NPCMemoryCap)

	composer := prose.NewComposer(prose.DefaultTemplates())
	eng := causality.NewEngine(w, st, rng, composer, queue, doc.Meta.Seed)
	cal := calendar.RealCalendar{}

	orch := orchestrator.New(w, st, tables, composer, queue, eng, rng, doc.Meta.Seed, startEpoch, cal, debug, scopedLogger(log, doc.Meta.Seed))
	orch.WorldTime = doc.Meta.WorldTime

	return &SimHandle{
		Archetype:   doc.Meta.Archetype,
		Orch:        orch,
		Tables:      tables,
		historyTail: constants.WorldHistoryTail,
		memoryCap:   constants.NPCMemoryCap,
	}, nil
}

// World exposes the handle's live World aggregate for callers (e.g. the
// CLI, internal/httpapi) that need direct read access between Advance
// calls, per spec.md §5's "read-only views are served via deep-copy
// snapshots taken between ticks" policy — callers must not mutate what
// this returns.
func (h *SimHandle) World() *world.World {
	return h.Orch.World
}

// WorldTime returns hours elapsed since genesis.
func (h *SimHandle) WorldTime() int64 {
	return h.Orch.WorldTime
}

// scopedLogger tags log with this world's seed so every line the
// orchestrator and its subsystems emit for the run's lifetime carries
// world_id without each call site repeating it. A nil log (the caller
// declined to pass one) stays nil; Orchestrator and Dispatcher both
// nil-check before logging.
func scopedLogger(log *logger.LoggerV2, seed string) *logger.LoggerV2 {
	if log == nil {
		return nil
	}
	return log.WithSimContext(seed, "")
}
