package causality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldforge/sim/backend/internal/model"
)

func TestHandleRaid_AppliesMoodSafetyAndSupplyDamage(t *testing.T) {
	e := newTestEngine("raid-seed")
	loc := model.HexCoord{Q: 2, R: 3}
	e.World.Settlements.Put("s1", &model.Settlement{ID: "s1", Mood: 0, Supply: map[string]int{"grain": 100}})
	e.World.Factions.Put("f1", &model.Faction{ID: "f1", Attitude: map[string]int{"s1": 1}})

	evt := &model.WorldEvent{
		ID:        "raid-1",
		Type:      model.EventRaid,
		Timestamp: 3,
		Location:  loc,
		Witnessed: true,
		Magnitude: 2,
		Data:      model.WorldEventData{SettlementID: "s1", Damage: 2, Casualties: 0},
	}

	logs := e.Process(evt)
	require.NotEmpty(t, logs)

	settlement, _ := e.World.Settlements.Get("s1")
	assert.Equal(t, -1, settlement.Mood)
	assert.Less(t, settlement.Supply["grain"], 100)

	st := e.State.SettlementState("s1")
	assert.Equal(t, -2, st.Safety)
}

func TestHandleRaid_SevereDamagePopulationFleesAndRefugeeLog(t *testing.T) {
	e := newTestEngine("raid-seed-2")
	e.World.Settlements.Put("s1", &model.Settlement{ID: "s1", Supply: map[string]int{"grain": 100}})

	evt := &model.WorldEvent{
		ID:        "raid-2",
		Type:      model.EventRaid,
		Timestamp: 1,
		Witnessed: true,
		Magnitude: 4,
		Data:      model.WorldEventData{SettlementID: "s1", Damage: 3},
	}
	logs := e.Process(evt)

	st := e.State.SettlementState("s1")
	assert.Equal(t, -30, st.PopulationDelta)

	var sawRefugeeNote bool
	for _, l := range logs {
		if l.Category == model.LogCategoryEvent {
			sawRefugeeNote = true
		}
	}
	assert.True(t, sawRefugeeNote)
}

func TestHandleRaid_FactionRetaliationScheduledAtLossThreshold(t *testing.T) {
	e := newTestEngine("raid-seed-3")
	e.World.Settlements.Put("s1", &model.Settlement{ID: "s1", Supply: map[string]int{"grain": 100}})
	e.World.Factions.Put("f1", &model.Faction{ID: "f1", Attitude: map[string]int{"s1": 1}})

	evt := &model.WorldEvent{
		ID:        "raid-3",
		Type:      model.EventRaid,
		Timestamp: 1,
		Witnessed: true,
		Magnitude: 5,
		Data:      model.WorldEventData{SettlementID: "s1", Damage: 5},
	}
	e.Process(evt)

	assert.Equal(t, 1, e.Queue.Len())
	fs := e.State.FactionState("f1")
	assert.Equal(t, 0, fs.RecentLosses)
}

func TestSupplyGoods_ReturnsSortedKeys(t *testing.T) {
	s := &model.Settlement{Supply: map[string]int{"grain": 1, "ale": 1, "wood": 1}}
	assert.Equal(t, []string{"ale", "grain", "wood"}, supplyGoods(s))
}
