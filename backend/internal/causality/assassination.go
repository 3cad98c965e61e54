package causality

import "github.com/worldforge/sim/backend/internal/model"

// handleAssassination implements spec.md §4.4.5: run the death handler,
// then apply political escalation.
func (e *Engine) handleAssassination(evt *model.WorldEvent) []model.LogEntry {
	logs := e.handleDeath(evt)
	d := evt.Data
	if d.SettlementID == "" {
		return logs
	}
	ss := e.State.SettlementState(d.SettlementID)
	ss.AdjustUnrest(3)
	if ss.RulerNPCID == d.VictimName {
		ss.RulerNPCID = ""
		ss.Contested = true
		logs = append(logs, e.compose(model.LogCategoryEvent, evt, map[string]string{"note": "the settlement descends into chaos without its ruler"}))
	}
	return logs
}
