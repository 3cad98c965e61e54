package treasure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldforge/sim/backend/internal/model"
)

func TestIdentifyTick_NoopBeforeDayOne(t *testing.T) {
	m := newTestManager("identify-seed-1")
	m.State.Treasure.MagicItems["item-1"] = &model.MagicItem{ID: "item-1", Rarity: "rare"}

	logs := m.IdentifyTick(10)

	assert.Nil(t, logs)
	assert.False(t, m.State.Treasure.MagicItems["item-1"].Identified)
}

func TestIdentifyTick_EventuallyIdentifiesAndLogsNonCommon(t *testing.T) {
	m := newTestManager("identify-seed-2")
	m.State.Treasure.MagicItems["item-1"] = &model.MagicItem{ID: "item-1", Rarity: "legendary", Category: "ring"}

	var sawLog bool
	for i := 0; i < 200 && !m.State.Treasure.MagicItems["item-1"].Identified; i++ {
		logs := m.IdentifyTick(int64(48 + i))
		if len(logs) > 0 {
			sawLog = true
		}
	}

	require.True(t, m.State.Treasure.MagicItems["item-1"].Identified)
	assert.True(t, sawLog)
}

func TestIdentifyTick_CommonItemIdentifiedSilently(t *testing.T) {
	m := newTestManager("identify-seed-3")
	m.State.Treasure.MagicItems["item-1"] = &model.MagicItem{ID: "item-1", Rarity: "common", Category: "potion"}

	var logCount int
	for i := 0; i < 200 && !m.State.Treasure.MagicItems["item-1"].Identified; i++ {
		logs := m.IdentifyTick(int64(48 + i))
		logCount += len(logs)
	}

	assert.True(t, m.State.Treasure.MagicItems["item-1"].Identified)
	assert.Equal(t, 0, logCount)
}

func TestIdentifyTick_AlreadyIdentifiedSkipped(t *testing.T) {
	m := newTestManager("identify-seed-4")
	m.State.Treasure.MagicItems["item-1"] = &model.MagicItem{ID: "item-1", Rarity: "rare", Identified: true}

	logs := m.IdentifyTick(48)

	assert.Nil(t, logs)
}
