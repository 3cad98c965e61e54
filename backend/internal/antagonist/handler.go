package antagonist

import (
	"github.com/worldforge/sim/backend/internal/consequence"
	"github.com/worldforge/sim/backend/internal/content"
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/world"
	"github.com/worldforge/sim/backend/internal/worldrand"
)

// SpawnHandler builds the consequence.Handler the orchestrator registers
// for model.ConsequenceSpawnAntagonist (spec.md §4.3's "spawn-antagonist"
// tag, raised both by a storyEscalation victory in internal/travel and by
// the successor-scheduling branch of an antagonist's own death in
// internal/causality). A missing Archetype/Territory in the entry's data
// falls back to a random archetype and the stored Territory string.
func SpawnHandler(w *world.World, tables *content.Tables, rng *worldrand.Rng) consequence.Handler {
	return func(entry *model.ConsequenceEntry) ([]model.LogEntry, error) {
		archetype := entry.Data.Archetype
		if archetype == "" {
			archetype = randomArchetype(rng)
		}
		ant := Generate(rng, tables, archetype, entry.Data.Territory, 0)
		w.Antagonists.Put(ant.ID, ant)
		return nil, nil
	}
}

func randomArchetype(rng *worldrand.Rng) model.AntagonistArchetype {
	pool := []model.AntagonistArchetype{
		model.ArchetypeBanditChief, model.ArchetypeOrcWarlord, model.ArchetypeDarkWizard,
		model.ArchetypeVampire, model.ArchetypeDragon, model.ArchetypeCultLeader,
		model.ArchetypeCorruptNoble, model.ArchetypeRenegadeKnight, model.ArchetypeBeastLord,
		model.ArchetypeNecromancer, model.ArchetypeFeyLord, model.ArchetypeDemonBound,
	}
	idx, err := rng.PickIndex(len(pool))
	if err != nil {
		return model.ArchetypeBanditChief
	}
	return pool[idx]
}
