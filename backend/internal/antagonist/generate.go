// Package antagonist implements the named-recurring-threat subsystem
// (spec.md §4.8): generating a threat from an archetype pool and running
// its periodic act tick. Grounded on spec.md §4.8's numbered contract and
// on internal/causality's handler style (the teacher has no equivalent
// "recurring named villain" concept to adapt from directly).
package antagonist

import (
	"github.com/worldforge/sim/backend/internal/content"
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/worldrand"
)

// Generate implements spec.md §4.8's generateAntagonist: "threat defaults
// to 3 + rng(5). Followers = 5 + rng(threat*10), treasure = 100*threat +
// rng(500)." threat <= 0 selects the default roll.
func Generate(rng *worldrand.Rng, tables *content.Tables, archetype model.AntagonistArchetype, territory string, threat int) *model.Antagonist {
	if threat <= 0 {
		threat = 3 + rng.Int(5)
	}

	name, _ := rng.PickString(tables.NamePool)

	var epithet, motivation string
	var traits, weaknesses []string
	if pool, ok := tables.Archetypes[string(archetype)]; ok {
		epithet, _ = rng.PickString(pool.Epithets)
		motivation, _ = rng.PickString(pool.Motivations)
		traits = takeN(rng, pool.Traits, 2)
		weaknesses = takeN(rng, pool.Weaknesses, 1)
	}

	return &model.Antagonist{
		ID:         rng.UID("antagonist"),
		Name:       name,
		Epithet:    epithet,
		Archetype:  archetype,
		Threat:     threat,
		Territory:  territory,
		Motivation: motivation,
		Notoriety:  0,
		Followers:  5 + rng.Int(threat*10),
		Treasure:   100*threat + rng.Int(500),
		Alive:      true,
		Traits:     traits,
		Weaknesses: weaknesses,
	}
}

// takeN returns up to n distinct entries from pool in a deterministic
// shuffled order (spec.md §4.1: any draw from a content pool must route
// through the shared Rng).
func takeN(rng *worldrand.Rng, pool []string, n int) []string {
	if len(pool) == 0 {
		return nil
	}
	shuffled := rng.ShuffleStrings(pool)
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
