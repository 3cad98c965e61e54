// Package warmachine implements the army supply, march, and battle
// subsystem (spec.md §2 item 13). spec.md §3 names the `Army` entity and
// its fields exhaustively but, unlike §4.6-§4.9, never numbers a
// dedicated contract for it; the operations here are grounded on the
// Army entity's own fields (status, target, supplies, supplyLineFrom,
// capturedLeaders) and on §4.4.2's battle effect list, reusing
// internal/causality's battle handler for the faction/settlement side
// of an army engagement the same way internal/treasure's SeekHandler
// reaches into internal/antagonist rather than duplicating its logic.
package warmachine

import (
	"github.com/worldforge/sim/backend/internal/causality"
	"github.com/worldforge/sim/backend/internal/content"
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/prose"
	"github.com/worldforge/sim/backend/internal/world"
	"github.com/worldforge/sim/backend/internal/worldrand"
)

// Manager owns every dependency the war-machine subsystem's operations
// need.
type Manager struct {
	World     *world.World
	State     *world.State
	Tables    *content.Tables
	Composer  *prose.Composer
	Causality *causality.Engine
	Rng       *worldrand.Rng
	Seed      string
}

// NewManager wires a Manager.
func NewManager(w *world.World, st *world.State, tables *content.Tables, composer *prose.Composer, eng *causality.Engine, rng *worldrand.Rng, seed string) *Manager {
	return &Manager{World: w, State: st, Tables: tables, Composer: composer, Causality: eng, Rng: rng, Seed: seed}
}

// compose builds a LogEntry for a war-machine event at coord, reusing
// the prose composer the same way every other engine package does.
func (m *Manager) compose(worldTime int64, category model.LogCategory, coord model.HexCoord, actors []string, note string) model.LogEntry {
	comp := m.Composer.Compose(m.Rng, prose.Context{
		Category: category,
		Location: coord,
		Actors:   actors,
		Extra:    map[string]string{"note": note},
	})
	loc := coord
	return model.LogEntry{
		Category:  category,
		Summary:   comp.Summary,
		Details:   comp.Details,
		Location:  &loc,
		Actors:    actors,
		WorldTime: worldTime,
		Seed:      m.Seed,
	}
}

