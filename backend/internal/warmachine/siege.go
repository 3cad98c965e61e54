package warmachine

import (
	"github.com/worldforge/sim/backend/internal/constants"
	"github.com/worldforge/sim/backend/internal/model"
)

// DailyTick resolves every besieging army's daily attrition against its
// target settlement, a chance the garrison sallies to force a battle,
// and capitulation once the settlement's defense is exhausted.
func (m *Manager) DailyTick(worldTime int64) []model.LogEntry {
	var logs []model.LogEntry
	for _, id := range m.World.Armies.Ids() {
		army, _ := m.World.Armies.Get(id)
		if army.Status != model.ArmyBesieging {
			continue
		}
		settlement, ok := m.World.Settlements.Get(army.Target)
		if !ok {
			army.Status = model.ArmyIdle
			continue
		}
		state := m.State.SettlementState(army.Target)

		if m.Rng.Chance(constants.SiegeSallyChancePerDay) {
			def := garrison(settlement, state)
			logs = append(logs, m.ResolveBattle(army, def, worldTime, army.Target)...)
			if army.Status == model.ArmyDestroyed {
				continue
			}
		}

		state.DefenseLevel -= constants.SiegeAttritionPerDay
		if state.DefenseLevel > constants.SiegeSurrenderDefenseThreshold {
			continue
		}

		logs = append(logs, m.conquer(army, settlement, state, worldTime)...)
	}
	return logs
}

// conquer resolves a siege's end once the target's defense is spent,
// routing the ownership change through the shared causality engine so
// the settlement/faction conquest ripple (spec.md §4.4.6) applies
// uniformly whether the conqueror was an army or any other actor.
func (m *Manager) conquer(army *model.Army, settlement *model.Settlement, state *model.SettlementState, worldTime int64) []model.LogEntry {
	previous := state.ControlledBy
	army.Status = model.ArmyIdle
	army.Target = ""
	state.DefenseLevel = 0

	evt := &model.WorldEvent{
		ID:        m.Rng.UID("event"),
		Type:      model.EventConquest,
		Timestamp: worldTime,
		Location:  settlement.Coord,
		Actors:    []string{army.ID},
		Magnitude: 10,
		Witnessed: true,
		Data: model.WorldEventData{
			Conqueror:    army.OwnerID,
			Previous:     previous,
			SettlementID: settlement.ID,
		},
	}
	return m.Causality.Process(evt)
}
