package causality

import (
	"github.com/worldforge/sim/backend/internal/memory"
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/prose"
)

// postProcess runs the universal post-processors spec.md §4.4 step 3
// requires after every dispatched event, in order: memory formation for
// witnesses, social shift, story-thread update, rumor spreading.
func (e *Engine) postProcess(evt *model.WorldEvent) []model.LogEntry {
	var logs []model.LogEntry
	logs = append(logs, e.formWitnessMemories(evt)...)
	e.applySocialShift(evt)
	e.updateStoryThread(evt)
	logs = append(logs, e.spreadRumor(evt)...)
	return logs
}

// formWitnessMemories gives every living NPC present at the event's
// location, other than its actors, a witnessed-event memory. Handlers
// already form the sharper per-relationship memories for actors; this
// covers the bystanders spec.md §4.4 step 3 calls "memory formation
// (witnesses)".
func (e *Engine) formWitnessMemories(evt *model.WorldEvent) []model.LogEntry {
	if !evt.Witnessed {
		return nil
	}
	for _, npcID := range e.World.NPCsAtLocation(evt.Location) {
		if model.ContainsString(evt.Actors, npcID) {
			continue
		}
		reactive := e.State.ReactiveNPC(npcID)
		mem := memory.CreateRichMemory(e.Rng, memory.DefaultNarrativeTemplates(), model.MemoryWitnessedEvent, model.EmotionFearful, evt.Magnitude, string(evt.Type), "", evt.Location, evt.Timestamp, false)
		memory.AddMemory(reactive, mem, e.State.MemoryCap)
	}
	return nil
}

// socialDelta classifies an event type as reputation-building or
// reputation-costing for the purposes of the respect-drift pass below.
// Events not named here carry no social shift.
func socialDelta(t model.WorldEventType) int {
	switch t {
	case model.EventBattle, model.EventConquest, model.EventAlliance, model.EventMiracle, model.EventRecruitment:
		return 1
	case model.EventBetrayal, model.EventRobbery, model.EventAssassination, model.EventDefection:
		return -1
	default:
		return 0
	}
}

// applySocialShift drifts every actor's standing per spec.md §4.4 step
// 3's "romance/betrayal/respect drift": positively-framed events build
// reputation, negatively-framed ones erode it. Romance/betrayal carry a
// further push on the involved NPC's agenda, handled by the per-type
// handlers that know which actor is which (betrayal, death); this pass
// only carries the generic respect component every event shares.
func (e *Engine) applySocialShift(evt *model.WorldEvent) {
	delta := socialDelta(evt.Type)
	if delta == 0 {
		return
	}
	for _, actorID := range evt.Actors {
		if n, ok := e.World.NPCs.Get(actorID); ok {
			n.AdjustReputation(delta)
		}
	}
}

// updateStoryThread attaches this event as a beat on the thread already
// tracking one of its actors, or opens a new inciting-phase thread if
// none exists yet (spec.md §4.4 step 3, SPEC_FULL.md §5 "story thread
// escalation feed").
func (e *Engine) updateStoryThread(evt *model.WorldEvent) {
	if len(evt.Actors) == 0 {
		return
	}
	var thread *model.StoryThread
	e.World.StoryThreads.Each(func(_ string, t *model.StoryThread) bool {
		if t.Resolved {
			return true
		}
		for _, a := range evt.Actors {
			if t.HasActor(a) {
				thread = t
				return false
			}
		}
		return true
	})
	if thread == nil {
		thread = &model.StoryThread{
			ID:     e.Rng.UID("thread"),
			Type:   string(evt.Type),
			Title:  string(evt.Type) + " involving " + evt.Actors[0],
			Actors: append([]string(nil), evt.Actors...),
			Phase:  model.PhaseInciting,
		}
		e.World.StoryThreads.Put(thread.ID, thread)
	}
	thread.AddBeat(evt.ID, string(evt.Type), evt.Timestamp, evt.Magnitude)
}

// spreadRumor broadcasts a fresh rumor of the event iff it was witnessed
// and its magnitude clears the threshold (spec.md §4.4 step 3: "rumor
// spreading (iff witnessed ∧ magnitude ≥ 3)").
func (e *Engine) spreadRumor(evt *model.WorldEvent) []model.LogEntry {
	if !evt.Witnessed || evt.Magnitude < 3 {
		return nil
	}
	comp := e.Composer.Compose(e.Rng, prose.Context{
		Category: model.LogCategoryRumor,
		Actors:   evt.Actors,
		Location: evt.Location,
	})
	target := ""
	if len(evt.Actors) > 0 {
		target = evt.Actors[0]
	}
	rumor := &model.Rumor{
		ID:        e.Rng.UID("rumor"),
		Kind:      string(evt.Type),
		Text:      comp.Summary,
		Target:    target,
		Origin:    evt.Data.SettlementID,
		Freshness: 14,
	}
	e.World.ActiveRumors.Put(rumor.ID, rumor)

	loc := evt.Location
	return []model.LogEntry{{
		Category:  model.LogCategoryRumor,
		Summary:   comp.Summary,
		Details:   comp.Details,
		Location:  &loc,
		Actors:    evt.Actors,
		WorldTime: evt.Timestamp,
		Seed:      e.Seed,
	}}
}
