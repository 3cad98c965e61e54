package warmachine

import (
	"github.com/worldforge/sim/backend/internal/causality"
	"github.com/worldforge/sim/backend/internal/consequence"
	"github.com/worldforge/sim/backend/internal/content"
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/prose"
	"github.com/worldforge/sim/backend/internal/world"
	"github.com/worldforge/sim/backend/internal/worldrand"
)

func newTestManager(seed string) *Manager {
	w := world.NewWorld()
	st := world.NewState(200, 30)
	tables := content.DefaultTables()
	composer := prose.NewComposer(prose.DefaultTemplates())
	queue := consequence.NewQueue()
	rng := worldrand.New(seed)
	eng := causality.NewEngine(w, st, rng, composer, queue, seed)
	return NewManager(w, st, tables, composer, eng, rng, seed)
}

func putSettlement(w *world.World, id string, q, r int) *model.Settlement {
	s := &model.Settlement{
		ID: id, Name: id, Coord: model.HexCoord{Q: q, R: r}, Population: 1000,
		Supply: map[string]int{"food": 500},
	}
	w.Settlements.Put(id, s)
	return s
}
