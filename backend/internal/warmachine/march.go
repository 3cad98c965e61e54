package warmachine

import (
	"github.com/worldforge/sim/backend/internal/constants"
	"github.com/worldforge/sim/backend/internal/model"
)

// BeginMarch sets army marching toward target (a settlement id),
// recording its march-progress side-table entry.
func (m *Manager) BeginMarch(army *model.Army, target string) {
	dest, ok := m.World.Settlements.Get(target)
	if !ok {
		return
	}
	army.Target = target
	army.Status = model.ArmyMarching
	miles := float64(army.Location.Distance(dest.Coord)) * 6
	if miles <= 0 {
		miles = 1
	}
	m.State.Warmachine.Marches[army.ID] = &model.ArmyMarch{MilesRemaining: miles}
}

// HourlyTick implements the "army ticks" line of spec.md §4.2's
// orchestrator order: supply consumption for every active army, then
// march progress for marching armies, with a retreat check for an
// army whose morale has broken.
func (m *Manager) HourlyTick(worldTime int64) []model.LogEntry {
	var logs []model.LogEntry
	for _, id := range m.World.Armies.Ids() {
		army, _ := m.World.Armies.Get(id)
		if army.Status == model.ArmyIdle || army.Status == model.ArmyDestroyed {
			continue
		}
		if consumeSupply(army) {
			logs = append(logs, m.compose(worldTime, model.LogCategoryWar, army.Location, nil,
				"the army's supplies run out"))
		}
		if army.Morale <= constants.ArmyRetreatMoraleThreshold {
			logs = append(logs, m.retreat(army, worldTime)...)
			continue
		}
		if army.Status == model.ArmyMarching {
			logs = append(logs, m.advanceMarch(army, worldTime)...)
		}
	}
	return logs
}

func (m *Manager) advanceMarch(army *model.Army, worldTime int64) []model.LogEntry {
	march, ok := m.State.Warmachine.Marches[army.ID]
	if !ok {
		return nil
	}
	march.MilesRemaining -= constants.ArmyMilesPerHour
	if march.MilesRemaining > 0 {
		return nil
	}
	delete(m.State.Warmachine.Marches, army.ID)
	dest, ok := m.World.Settlements.Get(army.Target)
	if !ok {
		army.Status = model.ArmyIdle
		return nil
	}
	army.Location = dest.Coord
	destState := m.State.SettlementState(army.Target)
	if destState.ControlledBy == army.OwnerID {
		army.Status = model.ArmyIdle
		return []model.LogEntry{m.compose(worldTime, model.LogCategoryWar, army.Location, nil,
			"the army reaches "+dest.Name+" and stands down")}
	}
	army.Status = model.ArmyBesieging
	return []model.LogEntry{m.compose(worldTime, model.LogCategoryWar, army.Location, nil,
		"the army lays siege to "+dest.Name)}
}

// retreat breaks off a march or siege once morale collapses, clearing
// the army's target and leaving it idle where it stands; it does not
// move the army toward its supply line.
func (m *Manager) retreat(army *model.Army, worldTime int64) []model.LogEntry {
	delete(m.State.Warmachine.Marches, army.ID)
	army.Target = ""
	army.Status = model.ArmyIdle
	return []model.LogEntry{m.compose(worldTime, model.LogCategoryWar, army.Location, nil,
		"the army's morale breaks and it retreats")}
}
