package treasure

import (
	"github.com/worldforge/sim/backend/internal/antagonist"
	"github.com/worldforge/sim/backend/internal/consequence"
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/prose"
)

// InfluxHandler builds the consequence.Handler the orchestrator registers
// for model.ConsequenceTreasureInflux, implementing spec.md §4.7's "an
// extraction liquidating a hoard worth >= 1000gp schedules a later
// economic influx at the destination settlement".
func (m *Manager) InfluxHandler() consequence.Handler {
	return func(entry *model.ConsequenceEntry) ([]model.LogEntry, error) {
		settlement, ok := m.World.Settlements.Get(entry.Data.SettlementID)
		if !ok {
			return nil, nil
		}
		state := m.State.SettlementState(entry.Data.SettlementID)
		day := dayOf(int64(entry.DueTurnIndex))
		ApplyInflux(state, entry.Data.Amount, settlement.Population, day)
		comp := m.Composer.Compose(m.Rng, prose.Context{
			Category: model.LogCategoryTreasure,
			Location: settlement.Coord,
			Extra:    map[string]string{"note": "a flood of treasure reaches " + settlement.Name},
		})
		loc := settlement.Coord
		return []model.LogEntry{{
			Category:  model.LogCategoryTreasure,
			Summary:   comp.Summary,
			Details:   comp.Details,
			Location:  &loc,
			WorldTime: int64(entry.DueTurnIndex),
			Seed:      m.Seed,
		}}, nil
	}
}

// AttractHandler builds the consequence.Handler for the generic
// model.ConsequenceTreasureAttract tag (the "treasure-{attractType}"
// family spec.md §4.7 describes). It fans the entry out to the
// attractType-specific tag so each interested party (dragon, antagonist,
// bandit, monster, or anything else) gets its own scheduling slot rather
// than racing inside one handler.
func (m *Manager) AttractHandler() consequence.Handler {
	return func(entry *model.ConsequenceEntry) ([]model.LogEntry, error) {
		tag, ok := seekTagFor(entry.Data.AttractType)
		if !ok {
			return nil, nil
		}
		m.Queue.Enqueue(&model.ConsequenceEntry{
			ID:           m.Rng.UID("cq"),
			Tag:          tag,
			DueTurnIndex: entry.DueTurnIndex + 1 + m.Rng.Int(48),
			Priority:     attractPriority(entry.Data.AttractType),
			Data:         entry.Data,
		})
		return nil, nil
	}
}

func seekTagFor(attractType string) (model.ConsequenceTag, bool) {
	switch attractType {
	case "dragon":
		return model.ConsequenceDragonSeeksTreasure, true
	case "antagonist":
		return model.ConsequenceAntagonistSeeksItem, true
	case "bandit":
		return model.ConsequenceBanditAmbush, true
	case "monster":
		return model.ConsequenceFactionAcquiresItem, true
	default:
		return "", false
	}
}

// SeekHandler builds the shared consequence.Handler for the four
// second-order "seek" tags spec.md §4.7's rumor system feeds
// (ConsequenceDragonSeeksTreasure, ConsequenceAntagonistSeeksItem,
// ConsequenceBanditAmbush, ConsequenceFactionAcquiresItem). An interested
// party converges on the rumor's hoard; if it is still unliquidated, a
// portion is stolen before the original party can retrieve it. archetype
// selects who is generated when the territory has no antagonist yet
// (empty spawns none — faction/monster interest has no antagonist
// archetype equivalent and only affects the hoard).
func (m *Manager) SeekHandler(archetype model.AntagonistArchetype) consequence.Handler {
	return func(entry *model.ConsequenceEntry) ([]model.LogEntry, error) {
		hoard, ok := m.State.Treasure.Hoards[entry.Data.HoardID]
		if !ok || hoard.Liquidated {
			return nil, nil
		}

		if archetype != "" {
			territoryTaken := false
			m.World.Antagonists.Each(func(_ string, a *model.Antagonist) bool {
				if a.Alive && a.Territory == entry.Data.SettlementID {
					territoryTaken = true
					return false
				}
				return true
			})
			if !territoryTaken {
				ant := antagonist.Generate(m.Rng, m.Tables, archetype, entry.Data.SettlementID, 0)
				m.World.Antagonists.Put(ant.ID, ant)
			}
		}

		stolen := hoard.TotalValue * (0.2 + m.Rng.Next()*0.4)
		hoard.TotalValue -= stolen
		hoard.PercentSpent += stolen / (stolen + hoard.TotalValue + 1)
		if hoard.TotalValue <= 0 {
			hoard.Liquidated = true
			hoard.PercentSpent = 1
		}

		settlement, hasSettlement := m.World.Settlements.Get(entry.Data.SettlementID)
		loc := model.HexCoord{}
		if hasSettlement {
			loc = settlement.Coord
		}
		comp := m.Composer.Compose(m.Rng, prose.Context{
			Category: model.LogCategoryTreasure,
			Location: loc,
			Extra:    map[string]string{"note": "something beats the party to a share of the hoard"},
		})
		return []model.LogEntry{{
			Category:  model.LogCategoryTreasure,
			Summary:   comp.Summary,
			Details:   comp.Details,
			Location:  &loc,
			WorldTime: int64(entry.DueTurnIndex),
			Seed:      m.Seed,
		}}, nil
	}
}
