// Package causality implements the WorldEvent pipeline (spec.md §2 item
// 8, §4.4): the dispatcher and per-type handlers that turn "what just
// happened" into state mutations, further events, and log entries.
// Grounded on spec.md §4.4's numbered contract; the teacher has no
// equivalent cross-aggregate event pipeline to adapt (its services each
// own one aggregate), so the dispatch-table shape follows
// internal/consequence's Dispatcher, the nearest in-repo precedent.
package causality

import (
	"github.com/worldforge/sim/backend/internal/consequence"
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/prose"
	"github.com/worldforge/sim/backend/internal/world"
	"github.com/worldforge/sim/backend/internal/worldrand"
)

// Engine owns every dependency a WorldEvent handler needs: the world
// aggregate, the side-table state, the shared Rng, the prose composer,
// and the consequence queue handlers enqueue follow-up effects onto.
type Engine struct {
	World    *world.World
	State    *world.State
	Rng      *worldrand.Rng
	Composer *prose.Composer
	Queue    *consequence.Queue
	Seed     string

	handlers map[model.WorldEventType]func(evt *model.WorldEvent) []model.LogEntry
}

// NewEngine wires an Engine and registers every per-type handler
// (spec.md §4.4.1-§4.4.8, plus a generic fallback for the remaining
// listed types spec.md names without detailing effects for).
func NewEngine(w *world.World, st *world.State, rng *worldrand.Rng, composer *prose.Composer, queue *consequence.Queue, seed string) *Engine {
	e := &Engine{World: w, State: st, Rng: rng, Composer: composer, Queue: queue, Seed: seed}
	e.handlers = map[model.WorldEventType]func(evt *model.WorldEvent) []model.LogEntry{
		model.EventRaid:          e.handleRaid,
		model.EventBattle:        e.handleBattle,
		model.EventDeath:         e.handleDeath,
		model.EventRobbery:       e.handleRobbery,
		model.EventAssassination: e.handleAssassination,
		model.EventConquest:      e.handleConquest,
		model.EventAlliance:      e.handleAlliance,
		model.EventBetrayal:      e.handleBetrayal,
	}
	return e
}

// Process runs the full spec.md §4.4 contract for one event: append to
// history, dispatch to its handler (or the generic fallback), run the
// universal post-processors, and return every log produced.
func (e *Engine) Process(evt *model.WorldEvent) []model.LogEntry {
	e.State.AppendEvent(evt)

	var logs []model.LogEntry
	if h, ok := e.handlers[evt.Type]; ok {
		logs = append(logs, h(evt)...)
	} else {
		logs = append(logs, e.handleGeneric(evt)...)
	}

	logs = append(logs, e.postProcess(evt)...)
	return logs
}

// compose is a small convenience wrapper so handlers don't repeat the
// worldTime/seed plumbing on every log entry.
func (e *Engine) compose(category model.LogCategory, evt *model.WorldEvent, extra map[string]string) model.LogEntry {
	comp := e.Composer.Compose(e.Rng, prose.Context{
		Category: category,
		Actors:   evt.Actors,
		Location: evt.Location,
		Extra:    extra,
	})
	loc := evt.Location
	return model.LogEntry{
		Category:  category,
		Summary:   comp.Summary,
		Details:   comp.Details,
		Location:  &loc,
		Actors:    evt.Actors,
		WorldTime: evt.Timestamp,
		Seed:      e.Seed,
	}
}

// handleGeneric covers every WorldEventType spec.md §4.4 lists but does
// not detail handler effects for (discovery, disaster, miracle,
// recruitment, defection, trade-deal, embargo, festival, plague, famine,
// uprising, prophecy): it logs the event and lets the universal
// post-processors do the rest.
func (e *Engine) handleGeneric(evt *model.WorldEvent) []model.LogEntry {
	return []model.LogEntry{e.compose(model.LogCategoryEvent, evt, map[string]string{"eventType": string(evt.Type)})}
}

func ceilHalf(v int) int {
	if v <= 0 {
		return 0
	}
	return (v + 1) / 2
}
