package causality

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/worldforge/sim/backend/internal/model"
)

func TestHandleConquest_TransfersTerritoryAndPower(t *testing.T) {
	e := newTestEngine("conquest-seed")
	e.World.Settlements.Put("s1", &model.Settlement{ID: "s1", Mood: 0})
	e.World.Factions.Put("conqueror", &model.Faction{ID: "conqueror", Attitude: map[string]int{"s1": 2}})

	evt := &model.WorldEvent{
		ID:        "conquest-1",
		Type:      model.EventConquest,
		Timestamp: 1,
		Data:      model.WorldEventData{SettlementID: "s1", Conqueror: "conqueror", Previous: "prev-holder"},
	}
	e.Process(evt)

	ss := e.State.SettlementState("s1")
	assert.Equal(t, "conqueror", ss.ControlledBy)
	assert.False(t, ss.Contested)

	cs := e.State.FactionState("conqueror")
	assert.Contains(t, cs.Territory, "s1")
	assert.Equal(t, 10, cs.Power)
	assert.Contains(t, cs.Enemies, "prev-holder")

	ps := e.State.FactionState("prev-holder")
	assert.NotContains(t, ps.Territory, "s1")
	assert.Equal(t, -3, ps.Morale)

	settlement, _ := e.World.Settlements.Get("s1")
	assert.Equal(t, 1, settlement.Mood)
}

func TestHandleConquest_NegativeAttitudeSetsNegativeMood(t *testing.T) {
	e := newTestEngine("conquest-seed-2")
	e.World.Settlements.Put("s1", &model.Settlement{ID: "s1", Mood: 3})
	e.World.Factions.Put("conqueror", &model.Faction{ID: "conqueror", Attitude: map[string]int{"s1": -1}})

	evt := &model.WorldEvent{
		ID:        "conquest-2",
		Type:      model.EventConquest,
		Timestamp: 1,
		Data:      model.WorldEventData{SettlementID: "s1", Conqueror: "conqueror"},
	}
	e.Process(evt)

	settlement, _ := e.World.Settlements.Get("s1")
	assert.Equal(t, -2, settlement.Mood)
}
