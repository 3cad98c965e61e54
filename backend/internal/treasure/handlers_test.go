package treasure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldforge/sim/backend/internal/model"
)

func TestInfluxHandler_AppliesInfluxToSettlement(t *testing.T) {
	m := newTestManager("handler-seed-1")
	m.World.Settlements.Put("riverhold", &model.Settlement{ID: "riverhold", Name: "Riverhold", Population: 500})

	handler := m.InfluxHandler()
	logs, err := handler(&model.ConsequenceEntry{
		Tag:          model.ConsequenceTreasureInflux,
		DueTurnIndex: 240,
		Data:         model.ConsequenceData{SettlementID: "riverhold", Amount: 5000},
	})

	require.NoError(t, err)
	require.Len(t, logs, 1)
	st := m.State.SettlementState("riverhold")
	assert.Len(t, st.RecentInfluxes, 1)
}

func TestInfluxHandler_MissingSettlementIsNoop(t *testing.T) {
	m := newTestManager("handler-seed-2")
	handler := m.InfluxHandler()

	logs, err := handler(&model.ConsequenceEntry{
		Tag:  model.ConsequenceTreasureInflux,
		Data: model.ConsequenceData{SettlementID: "nowhere", Amount: 5000},
	})

	require.NoError(t, err)
	assert.Nil(t, logs)
}

func TestAttractHandler_FansOutToDragonSeekTag(t *testing.T) {
	m := newTestManager("handler-seed-3")
	handler := m.AttractHandler()

	logs, err := handler(&model.ConsequenceEntry{
		Tag:          model.ConsequenceTreasureAttract,
		DueTurnIndex: 24,
		Data:         model.ConsequenceData{AttractType: "dragon", HoardID: "hoard-1", SettlementID: "riverhold"},
	})

	require.NoError(t, err)
	assert.Nil(t, logs)
	require.Equal(t, 1, m.Queue.Len())
	entries := m.Queue.Snapshot()
	assert.Equal(t, model.ConsequenceDragonSeeksTreasure, entries[0].Tag)
}

func TestAttractHandler_UnknownAttractTypeIsNoop(t *testing.T) {
	m := newTestManager("handler-seed-4")
	handler := m.AttractHandler()

	logs, err := handler(&model.ConsequenceEntry{
		Tag:  model.ConsequenceTreasureAttract,
		Data: model.ConsequenceData{AttractType: "ghost"},
	})

	require.NoError(t, err)
	assert.Nil(t, logs)
	assert.Equal(t, 0, m.Queue.Len())
}

func TestSeekHandler_StealsShareOfUnliquidatedHoard(t *testing.T) {
	m := newTestManager("handler-seed-5")
	m.State.Treasure.Hoards["hoard-1"] = &model.DiscoveredHoard{ID: "hoard-1", TotalValue: 1000}
	m.World.Settlements.Put("riverhold", &model.Settlement{ID: "riverhold", Name: "Riverhold"})

	handler := m.SeekHandler(model.ArchetypeDragon)
	logs, err := handler(&model.ConsequenceEntry{
		Data: model.ConsequenceData{HoardID: "hoard-1", SettlementID: "riverhold"},
	})

	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Less(t, m.State.Treasure.Hoards["hoard-1"].TotalValue, 1000.0)
	assert.Equal(t, 1, m.World.Antagonists.Len())
}

func TestSeekHandler_AlreadyLiquidatedHoardIsNoop(t *testing.T) {
	m := newTestManager("handler-seed-6")
	m.State.Treasure.Hoards["hoard-1"] = &model.DiscoveredHoard{ID: "hoard-1", TotalValue: 1000, Liquidated: true}

	handler := m.SeekHandler(model.ArchetypeDragon)
	logs, err := handler(&model.ConsequenceEntry{
		Data: model.ConsequenceData{HoardID: "hoard-1", SettlementID: "riverhold"},
	})

	require.NoError(t, err)
	assert.Nil(t, logs)
}
