package treasure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldforge/sim/backend/internal/consequence"
	"github.com/worldforge/sim/backend/internal/content"
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

func TestGenerate_UnknownTreasureTypeErrors(t *testing.T) {
	m := newTestManager("gen-seed-1")
	_, err := m.Generate("nonexistent", 0)
	require.Error(t, err)
}

func TestGenerate_KnownTypeRollsCoinsAndTotalsValue(t *testing.T) {
	m := newTestManager("gen-seed-2")
	result, err := m.Generate("B", 24)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "B", result.TreasureType)
	assert.False(t, result.IsHoard)
	assert.GreaterOrEqual(t, result.TotalGoldValue, 0.0)
}

func TestGenerate_LairTypeMarkedAsHoard(t *testing.T) {
	m := newTestManager("gen-seed-3")
	result, err := m.Generate("G", 24)

	require.NoError(t, err)
	assert.True(t, result.IsHoard)
}

func TestGenerate_DeterministicUnderSameSeed(t *testing.T) {
	m1 := newTestManager("gen-seed-repeat")
	m2 := newTestManager("gen-seed-repeat")

	r1, err1 := m1.Generate("G", 48)
	r2, err2 := m2.Generate("G", 48)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, r1.TotalGoldValue, r2.TotalGoldValue)
	assert.Equal(t, r1.Coin, r2.Coin)
	assert.Len(t, r2.MagicItems, len(r1.MagicItems))
}
