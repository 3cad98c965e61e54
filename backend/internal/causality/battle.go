package causality

import "github.com/worldforge/sim/backend/internal/model"

// handleBattle implements spec.md §4.4.2. evt.Data.Victor/Loser are party
// ids; evt.Data.FactionID/OtherFaction are the corresponding factions
// (victor/loser respectively), when the battle is faction-backed.
func (e *Engine) handleBattle(evt *model.WorldEvent) []model.LogEntry {
	d := evt.Data
	sig := d.Significance

	if victor, ok := e.World.Parties.Get(d.Victor); ok {
		vs := e.State.PartyState(d.Victor)
		vs.AdjustMorale(sig)
		victor.AdjustFame(sig)
		if vs.Vendetta == d.Loser {
			vs.ClearVendetta(d.Loser)
		}
	}

	if loser, ok := e.World.Parties.Get(d.Loser); ok {
		ls := e.State.PartyState(d.Loser)
		ls.AdjustMorale(-sig)
		loser.AdjustFame(-1)
		loser.Wounded = true
		loser.RestHoursRemaining = 24 + e.Rng.Int(24)
		if sig >= 3 && e.Rng.Chance(0.5) {
			ls.SetVendetta(d.Victor)
		}
	}

	var growsBold bool
	if d.FactionID != "" {
		fs := e.State.FactionState(d.FactionID)
		fs.RecentWins += sig
		fs.AdjustPower(2 * sig)
		if fs.RecentWins >= 5 {
			growsBold = true
			fs.RecentWins = 0
		}
	}

	if d.OtherFaction != "" {
		ls := e.State.FactionState(d.OtherFaction)
		ls.RecentLosses += sig
		ls.AdjustPower(-2 * sig)
		ls.Morale -= sig
		ls.DeclareEnmity(d.FactionID)
	}

	if d.SettlementID != "" {
		if settlement, ok := e.World.Settlements.Get(d.SettlementID); ok {
			settlement.AdjustMood(-1)
		}
		ss := e.State.SettlementState(d.SettlementID)
		ss.Safety -= 1
		if sig >= 3 {
			ss.AdjustUnrest(1)
		}
	}

	logs := []model.LogEntry{e.compose(model.LogCategoryEvent, evt, nil)}
	if growsBold {
		logs = append(logs, e.compose(model.LogCategoryEvent, evt, map[string]string{"note": "the victors grow bold"}))
	}
	return logs
}
