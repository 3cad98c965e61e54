package warmachine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldforge/sim/backend/internal/model"
)

func TestDailyTick_NonBesiegingArmiesIgnored(t *testing.T) {
	m := newTestManager("siege-seed-1")
	m.World.Armies.Put("army-1", &model.Army{ID: "army-1", Status: model.ArmyMarching})

	logs := m.DailyTick(0)

	assert.Nil(t, logs)
}

func TestDailyTick_AttritionEventuallyCapitulatesSettlement(t *testing.T) {
	m := newTestManager("siege-seed-2")
	settlement := putSettlement(m.World, "target", 0, 0)
	state := m.State.SettlementState("target")
	state.DefenseLevel = 3
	state.ControlledBy = "defender"
	army := &model.Army{ID: "army-1", OwnerID: "attacker", Location: settlement.Coord, Target: "target",
		Status: model.ArmyBesieging, Strength: 500, Quality: 5, Morale: 10}
	m.World.Armies.Put("army-1", army)

	var logs []model.LogEntry
	for i := 0; i < 10 && army.Status == model.ArmyBesieging; i++ {
		logs = append(logs, m.DailyTick(int64(i))...)
	}

	require.NotEmpty(t, logs)
	assert.Equal(t, "attacker", state.ControlledBy)
	assert.Equal(t, model.ArmyIdle, army.Status)
}

func TestConquer_TransfersControlAndResetsArmy(t *testing.T) {
	m := newTestManager("siege-seed-3")
	settlement := putSettlement(m.World, "target", 0, 0)
	state := m.State.SettlementState("target")
	state.ControlledBy = "old-owner"
	army := &model.Army{ID: "army-1", OwnerID: "new-owner", Target: "target", Status: model.ArmyBesieging}

	logs := m.conquer(army, settlement, state, 5)

	require.NotEmpty(t, logs)
	assert.Equal(t, "new-owner", state.ControlledBy)
	assert.Equal(t, model.ArmyIdle, army.Status)
	assert.Empty(t, army.Target)
}
