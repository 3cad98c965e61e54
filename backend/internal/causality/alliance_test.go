package causality

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/worldforge/sim/backend/internal/model"
)

func TestHandleAlliance_MutualAllyLinksAndSharedEnemyLog(t *testing.T) {
	e := newTestEngine("alliance-seed")
	e.State.FactionState("a").Enemies = []string{"common-foe"}
	e.State.FactionState("b").Enemies = []string{"common-foe"}

	evt := &model.WorldEvent{
		ID:        "alliance-1",
		Type:      model.EventAlliance,
		Timestamp: 1,
		Data:      model.WorldEventData{FactionID: "a", OtherFaction: "b"},
	}
	logs := e.Process(evt)

	as := e.State.FactionState("a")
	bs := e.State.FactionState("b")
	assert.Contains(t, as.Allies, "b")
	assert.Contains(t, bs.Allies, "a")
	assert.Contains(t, as.Enemies, "common-foe")
	assert.Len(t, logs, 2)
}

func TestHandleAlliance_NoSharedEnemiesEmitsOneLog(t *testing.T) {
	e := newTestEngine("alliance-seed-2")
	evt := &model.WorldEvent{
		ID:        "alliance-2",
		Type:      model.EventAlliance,
		Timestamp: 1,
		Data:      model.WorldEventData{FactionID: "a", OtherFaction: "b"},
	}
	logs := e.Process(evt)
	assert.Len(t, logs, 1)
}

func TestCommonElements_Intersects(t *testing.T) {
	result := commonElements([]string{"x", "y", "z"}, []string{"y", "z", "w"})
	assert.ElementsMatch(t, []string{"y", "z"}, result)
}
