package causality

import "github.com/worldforge/sim/backend/internal/model"

// handleRobbery implements spec.md §4.4.4.
func (e *Engine) handleRobbery(evt *model.WorldEvent) []model.LogEntry {
	d := evt.Data
	var logs []model.LogEntry

	if d.IsCaravan && d.SettlementID != "" {
		ss := e.State.SettlementState(d.SettlementID)
		ss.Safety -= 2
		ss.Prosperity -= 1
		logs = append(logs, e.compose(model.LogCategoryEvent, evt, map[string]string{"note": "the route is now known to be dangerous"}))
	}

	if d.IsCaravan && d.CaravanFactionID != "" && d.FactionID != "" && d.FactionID != d.CaravanFactionID {
		fs := e.State.FactionState(d.CaravanFactionID)
		fs.CasusBelli = append(fs.CasusBelli, model.CasusBelli{
			AgainstFactionID: d.FactionID,
			Reason:           "robbery",
			Magnitude:        5,
		})
		fs.DeclareEnmity(d.FactionID)
	}

	if len(evt.Perpetrators) > 0 {
		ps := e.State.PartyState(evt.Perpetrators[0])
		ps.Resources += d.Value
	}

	logs = append(logs, e.compose(model.LogCategoryEvent, evt, nil))
	return logs
}
