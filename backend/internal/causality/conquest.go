package causality

import "github.com/worldforge/sim/backend/internal/model"

// handleConquest implements spec.md §4.4.6.
func (e *Engine) handleConquest(evt *model.WorldEvent) []model.LogEntry {
	d := evt.Data
	settlementID := d.SettlementID
	ss := e.State.SettlementState(settlementID)

	ss.ControlledBy = d.Conqueror
	ss.Contested = false

	conquerorState := e.State.FactionState(d.Conqueror)
	conquerorState.AddTerritory(settlementID)
	conquerorState.AdjustPower(10)

	positiveAttitude := false
	if faction, ok := e.World.Factions.Get(d.Conqueror); ok {
		positiveAttitude = faction.Attitude[settlementID] > 0
	}

	if d.Previous != "" {
		prevState := e.State.FactionState(d.Previous)
		prevState.RemoveTerritory(settlementID)
		prevState.AdjustPower(-10)
		prevState.Morale -= 3
		prevState.DeclareEnmity(d.Conqueror)
		conquerorState.DeclareEnmity(d.Previous)
	}

	if settlement, ok := e.World.Settlements.Get(settlementID); ok {
		if positiveAttitude {
			settlement.Mood = model.Clamp(1, -5, 5)
		} else {
			settlement.Mood = model.Clamp(-2, -5, 5)
		}
	}

	return []model.LogEntry{e.compose(model.LogCategoryEvent, evt, map[string]string{"conqueror": d.Conqueror})}
}
