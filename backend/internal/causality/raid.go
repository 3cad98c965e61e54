package causality

import (
	"github.com/worldforge/sim/backend/internal/memory"
	"github.com/worldforge/sim/backend/internal/model"
)

// handleRaid implements spec.md §4.4.1.
func (e *Engine) handleRaid(evt *model.WorldEvent) []model.LogEntry {
	var logs []model.LogEntry
	d := evt.Data
	settlementID := d.SettlementID

	settlement, hasSettlement := e.World.Settlements.Get(settlementID)
	if hasSettlement {
		if goods := supplyGoods(settlement); len(goods) > 0 {
			idx, err := e.Rng.PickIndex(len(goods))
			if err == nil {
				good := goods[idx]
				for i := 0; i < d.Damage; i++ {
					settlement.DecrementSupply(good, e.Rng.Dice(6)+1)
				}
			}
		}
		settlement.AdjustMood(-ceilHalf(d.Damage))
	}

	st := e.State.SettlementState(settlementID)
	st.Safety -= d.Damage
	if d.Damage >= 3 {
		st.PopulationDelta -= 10 * d.Damage
		logs = append(logs, e.compose(model.LogCategoryEvent, evt, map[string]string{"note": "refugees flee the raid"}))
	}

	for i := 0; i < d.Casualties; i++ {
		candidates := e.World.NPCsAtLocation(evt.Location)
		if len(candidates) == 0 {
			continue
		}
		idx, err := e.Rng.PickIndex(len(candidates))
		if err != nil {
			continue
		}
		npcID := candidates[idx]
		if e.Rng.Chance(0.3) {
			deathEvt := &model.WorldEvent{
				ID:        e.Rng.UID("evt"),
				Type:      model.EventDeath,
				Timestamp: evt.Timestamp,
				Location:  evt.Location,
				Actors:    []string{npcID},
				Witnessed: evt.Witnessed,
				Magnitude: evt.Magnitude,
				Data:      model.WorldEventData{VictimName: npcID, Cause: "raid"},
			}
			logs = append(logs, e.Process(deathEvt)...)
			continue
		}
		reactive := e.State.ReactiveNPC(npcID)
		reactive.Morale -= 3
		mem := memory.CreateRichMemory(e.Rng, memory.DefaultNarrativeTemplates(), model.MemoryWasAttacked, model.EmotionFearful, 5, settlementID, "", evt.Location, evt.Timestamp, false)
		memory.AddMemory(reactive, mem, e.State.MemoryCap)
	}

	e.World.Factions.Each(func(id string, f *model.Faction) bool {
		if f.Attitude[settlementID] <= 0 {
			return true
		}
		fs := e.State.FactionState(id)
		fs.RecentLosses += d.Damage
		if fs.RecentLosses >= 5 {
			e.Queue.Enqueue(&model.ConsequenceEntry{
				ID:           e.Rng.UID("cq"),
				Tag:          model.ConsequenceFactionAction,
				DueTurnIndex: currentTurnOf(evt) + 6 + e.Rng.Int(12),
				Priority:     3,
				Data:         model.ConsequenceData{FactionID: id, FactionAction: "retaliate"},
			})
			fs.RecentLosses = 0
		}
		return true
	})

	if len(evt.Perpetrators) > 0 {
		e.World.Parties.Each(func(id string, p *model.Party) bool {
			if p.Location != evt.Location {
				return true
			}
			if e.Rng.Chance(0.5) {
				ps := e.State.PartyState(id)
				ps.SetVendetta(evt.Perpetrators[0])
			}
			return true
		})
	}

	logs = append(logs, e.compose(model.LogCategoryEvent, evt, map[string]string{"settlement": settlementID}))
	return logs
}

func supplyGoods(s *model.Settlement) []string {
	goods := make([]string, 0, len(s.Supply))
	for g := range s.Supply {
		goods = append(goods, g)
	}
	return sortedStrings(goods)
}

func sortedStrings(items []string) []string {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && items[j-1] > items[j]; j-- {
			items[j-1], items[j] = items[j], items[j-1]
		}
	}
	return items
}

// currentTurnOf reads the triggering event's turn index off its
// Timestamp. One turn == one simulated hour (spec.md glossary); the
// orchestrator stamps WorldEvent.Timestamp with the turnIndex at the
// moment the event is raised, so the two are the same number.
func currentTurnOf(evt *model.WorldEvent) int {
	return int(evt.Timestamp)
}
