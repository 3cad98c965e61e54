// Package memory implements the NPC memory & agenda subsystem (spec.md
// §2 item 7, §4.5): rich memory creation, bounded/pruned memory lists,
// periodic surfacing, and intensity decay. Grounded on the category/
// emotion taxonomy and agenda uniqueness rule already carried by
// internal/model, generalized from the teacher having no direct
// equivalent (the closest analogue, combat's status-effect tracking, is
// not reused here since the shapes diverge too far to adapt).
package memory

import (
	"sort"

	"github.com/worldforge/sim/backend/internal/constants"
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/prose"
	"github.com/worldforge/sim/backend/internal/world"
	"github.com/worldforge/sim/backend/internal/worldrand"
)

// NarrativeTemplates maps a memory category to the candidate narrative
// snippets createRichMemory draws from deterministically (spec.md §4.5:
// "chooses a narrative snippet deterministically from a category→
// templates mapping using the RNG").
type NarrativeTemplates map[model.MemoryCategory][]string

// DefaultNarrativeTemplates returns a sample snippet pool for every
// category the engine assigns directly.
func DefaultNarrativeTemplates() NarrativeTemplates {
	return NarrativeTemplates{
		model.MemoryWasAttacked:    {"still feels the blade's edge", "flinches at sudden movement since that day"},
		model.MemoryWasGrateful:    {"owes a debt not easily repaid", "speaks warmly of the rescue whenever it comes up"},
		model.MemoryAngry:         {"nurses a grudge that has not cooled", "seethes quietly at the memory"},
		model.MemoryGrieving:      {"carries the loss like a stone", "marks the date privately each year"},
		model.MemoryWasBetrayed:   {"trusts no one quite so easily now", "rehearses the moment of betrayal in quiet hours"},
		model.MemoryWitnessedDeath: {"cannot unsee what happened that day", "still hears the sound of it"},
		model.MemoryLostLovedOne:  {"keeps a token of the one who is gone", "visits the place it happened, alone"},
		model.MemoryWitnessedEvent: {"talks about what was seen that day to anyone who will listen", "keeps the memory close, turning it over"},
	}
}

// CreateRichMemory builds a Memory with a deterministically-chosen
// narrative snippet. timestamp is the worldTime (unix seconds) the
// triggering event occurred at.
func CreateRichMemory(
	rng *worldrand.Rng,
	templates NarrativeTemplates,
	category model.MemoryCategory,
	emotion model.Emotion,
	intensity int,
	target string,
	secondaryTarget string,
	location model.HexCoord,
	timestamp int64,
	secret bool,
) model.Memory {
	narrative := ""
	if pool := templates[category]; len(pool) > 0 {
		if idx, err := rng.PickIndex(len(pool)); err == nil {
			narrative = pool[idx]
		}
	}
	return model.Memory{
		Category:        category,
		Emotion:         emotion,
		Intensity:       model.Clamp(intensity, constants.MemoryIntensityMin+1, constants.MemoryIntensityMax),
		Target:          target,
		SecondaryTarget: secondaryTarget,
		Location:        location,
		Timestamp:       timestamp,
		Acted:           false,
		Secret:          secret,
		Narrative:       narrative,
	}
}

// AddMemory appends mem to npc's memory list, then enforces the cap
// (spec.md §4.5: "if size > 30 it is sorted by (intensity desc,
// timestamp desc) and truncated to 30", spec.md invariant 9: ties break
// by most recent).
func AddMemory(npc *model.ReactiveNPC, mem model.Memory, cap int) {
	npc.Memories = append(npc.Memories, mem)
	if len(npc.Memories) <= cap {
		return
	}
	sort.SliceStable(npc.Memories, func(i, j int) bool {
		a, b := npc.Memories[i], npc.Memories[j]
		if a.Intensity != b.Intensity {
			return a.Intensity > b.Intensity
		}
		return a.Timestamp > b.Timestamp
	})
	npc.Memories = npc.Memories[:cap]
}

// DecayMonth ages every memory in npc by one in-game month (spec.md
// §4.5: "intensity decays 1 per in-game month (clamped at 0);
// intensity-0 memories are pruned"). Called by the orchestrator's
// calendar tick on month rollover.
func DecayMonth(npc *model.ReactiveNPC) {
	kept := npc.Memories[:0]
	for _, m := range npc.Memories {
		m.Intensity = model.Clamp(m.Intensity-1, constants.MemoryIntensityMin, constants.MemoryIntensityMax)
		if m.Intensity > 0 {
			kept = append(kept, m)
		}
	}
	npc.Memories = kept
}

// SurfaceResult is one NPC's memory surfacing outcome for the hour.
type SurfaceResult struct {
	NPCID  string
	Memory model.Memory
	Log    model.LogEntry
}

// GenerateMemoryEvents runs the per-hour sub-sampled surfacing pass
// (spec.md §4.5: "probability 0.01 per living NPC per hour; only
// memories with intensity >= 3 and acted == false may surface; on
// surfacing a log is emitted and the memory's acted flag is set").
// npcIDs must already be restricted to living NPCs, in registry order
// (spec.md §5 ordering guarantee 2) — callers pass world.World.LivingNPCIDs().
func GenerateMemoryEvents(
	rng *worldrand.Rng,
	state *world.State,
	composer *prose.Composer,
	npcIDs []string,
	worldTime int64,
	seed string,
) []SurfaceResult {
	var results []SurfaceResult
	for _, id := range npcIDs {
		if !rng.Chance(constants.MemorySurfaceProbabilityPerNPCPerHour) {
			continue
		}
		reactive, ok := state.ReactiveNPCs[id]
		if !ok {
			continue
		}
		idx := pickSurfacableMemory(reactive)
		if idx < 0 {
			continue
		}
		reactive.Memories[idx].Acted = true
		mem := reactive.Memories[idx]
		comp := composer.Compose(rng, prose.Context{
			Category: model.LogCategoryMemory,
			Actors:   []string{id},
			Location: mem.Location,
		})
		results = append(results, SurfaceResult{
			NPCID:  id,
			Memory: mem,
			Log: model.LogEntry{
				Category:  model.LogCategoryMemory,
				Summary:   comp.Summary,
				Details:   comp.Details,
				Location:  &mem.Location,
				Actors:    []string{id},
				WorldTime: worldTime,
				Seed:      seed,
			},
		})
	}
	return results
}

// pickSurfacableMemory returns the index of the first eligible memory
// (intensity >= 3, acted == false) in registry order, or -1 if none
// qualify. First-eligible keeps surfacing deterministic for a fixed
// memory list and a fixed rng draw.
func pickSurfacableMemory(npc *model.ReactiveNPC) int {
	for i, m := range npc.Memories {
		if m.Intensity >= 3 && !m.Acted {
			return i
		}
	}
	return -1
}
