// Package naval implements ports, sea routes, voyages, pirate raids,
// storms, and shipwrecks (spec.md §4.9). Grounded on spec.md §4.9's
// numbered contract; the teacher has no maritime concept of its own, so
// the Manager shape follows internal/travel's Encounters/internal/
// treasure's Manager precedent (one struct owning every dependency a
// tick needs).
package naval

import (
	"github.com/worldforge/sim/backend/internal/consequence"
	"github.com/worldforge/sim/backend/internal/content"
	"github.com/worldforge/sim/backend/internal/prose"
	"github.com/worldforge/sim/backend/internal/world"
	"github.com/worldforge/sim/backend/internal/worldrand"
)

// Manager owns every dependency the naval subsystem's operations need.
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
