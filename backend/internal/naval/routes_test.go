package naval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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
	return NewManager(w, st, tables, composer, queue, rng, seed)
}

func putPort(w *world.World, id string, q, r int) {
	w.Settlements.Put(id, &model.Settlement{
		ID: id, Name: id, IsPort: true, Coord: model.HexCoord{Q: q, R: r},
		Supply: map[string]int{},
	})
}

func TestGenerateRoutes_ConnectsEveryPortPair(t *testing.T) {
	m := newTestManager("routes-seed-1")
	putPort(m.World, "porta", 0, 0)
	putPort(m.World, "portb", 10, 0)
	putPort(m.World, "portc", 0, 10)

	m.GenerateRoutes()

	assert.Len(t, m.State.Naval.Routes, 3)
}

func TestGenerateRoutes_DistanceDaysFollowsHexDistance(t *testing.T) {
	m := newTestManager("routes-seed-2")
	putPort(m.World, "porta", 0, 0)
	putPort(m.World, "portb", 8, 0)

	m.GenerateRoutes()

	route, ok := m.State.Naval.Routes["porta-portb"]
	require.True(t, ok)
	assert.Equal(t, 2, route.DistanceDays)
	assert.GreaterOrEqual(t, route.Danger, 1)
	assert.LessOrEqual(t, route.Danger, 4)
}

func TestGenerateRoutes_NonPortSettlementsIgnored(t *testing.T) {
	m := newTestManager("routes-seed-3")
	putPort(m.World, "porta", 0, 0)
	m.World.Settlements.Put("inland", &model.Settlement{ID: "inland", Name: "inland", IsPort: false})

	m.GenerateRoutes()

	assert.Empty(t, m.State.Naval.Routes)
}

func TestGenerateRoutes_IdempotentOnRepeatedCalls(t *testing.T) {
	m := newTestManager("routes-seed-4")
	putPort(m.World, "porta", 0, 0)
	putPort(m.World, "portb", 4, 0)

	m.GenerateRoutes()
	first := m.State.Naval.Routes["porta-portb"].Danger
	m.GenerateRoutes()

	assert.Equal(t, first, m.State.Naval.Routes["porta-portb"].Danger)
	assert.Len(t, m.State.Naval.Routes, 1)
}
