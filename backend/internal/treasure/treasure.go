// Package treasure implements the hoard-generation, weight-based
// extraction, economic-influx, magic-item-identification, and
// treasure-rumor subsystem (spec.md §4.7). Grounded on spec.md §4.7's
// numbered contract; the teacher has no loot-economy concept of its own,
// so the Manager shape follows internal/travel's Encounters/internal/
// antagonist's Actor precedent (one struct owning every dependency a
// tick needs) rather than anything borrowed from the teacher directly.
package treasure

import (
	"github.com/worldforge/sim/backend/internal/consequence"
	"github.com/worldforge/sim/backend/internal/content"
	"github.com/worldforge/sim/backend/internal/prose"
	"github.com/worldforge/sim/backend/internal/world"
	"github.com/worldforge/sim/backend/internal/worldrand"
)

// Manager owns every dependency the treasure subsystem's operations
// need: the world aggregate, the side-table state (whose Treasure field
// is this subsystem's home), the injected treasure-type/magic-category
// tables, the prose composer, the consequence queue second-order
// reactions enqueue onto, and the shared Rng.
type Manager struct {
	World    *world.World
	State    *world.State
	Tables   *content.Tables
	Composer *prose.Composer
	Queue    *consequence.Queue
	Rng      *worldrand.Rng
	Seed     string
}

// NewManager wires a Manager.
func NewManager(w *world.World, st *world.State, tables *content.Tables, composer *prose.Composer, queue *consequence.Queue, rng *worldrand.Rng, seed string) *Manager {
	return &Manager{World: w, State: st, Tables: tables, Composer: composer, Queue: queue, Rng: rng, Seed: seed}
}

func dayOf(worldTime int64) int {
	return int(worldTime / 24)
}
