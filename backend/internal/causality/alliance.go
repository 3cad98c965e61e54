package causality

import "github.com/worldforge/sim/backend/internal/model"

// handleAlliance implements spec.md §4.4.7.
func (e *Engine) handleAlliance(evt *model.WorldEvent) []model.LogEntry {
	d := evt.Data
	a, b := d.FactionID, d.OtherFaction
	if a == "" || b == "" {
		return []model.LogEntry{e.compose(model.LogCategoryEvent, evt, nil)}
	}

	as := e.State.FactionState(a)
	bs := e.State.FactionState(b)

	sharedEnemies := commonElements(as.Enemies, bs.Enemies)

	as.DeclareAlliance(b)
	bs.DeclareAlliance(a)

	logs := []model.LogEntry{e.compose(model.LogCategoryEvent, evt, nil)}
	for _, enemy := range sharedEnemies {
		logs = append(logs, e.compose(model.LogCategoryEvent, evt, map[string]string{"note": "the two factions unite against " + enemy}))
	}
	return logs
}

func commonElements(a, b []string) []string {
	set := make(map[string]bool, len(a))
	for _, v := range a {
		set[v] = true
	}
	var out []string
	for _, v := range b {
		if set[v] {
			out = append(out, v)
		}
	}
	return out
}
