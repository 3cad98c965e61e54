package treasure

import (
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/prose"
)

// IdentifyTick implements spec.md §4.7's Magic item identification:
// "unidentified items in circulation: after day 1, each tick probability
// 0.15 of identification; log if rarity > common."
func (m *Manager) IdentifyTick(worldTime int64) []model.LogEntry {
	if dayOf(worldTime) < 1 {
		return nil
	}

	var logs []model.LogEntry
	for _, id := range sortedKeys(m.State.Treasure.MagicItems) {
		item := m.State.Treasure.MagicItems[id]
		if item.Identified {
			continue
		}
		if !m.Rng.Chance(0.15) {
			continue
		}
		item.Identified = true
		if item.Rarity == "common" {
			continue
		}
		logs = append(logs, m.composeIdentify(worldTime, item))
	}
	return logs
}

func (m *Manager) composeIdentify(worldTime int64, item *model.MagicItem) model.LogEntry {
	comp := m.Composer.Compose(m.Rng, prose.Context{
		Category: model.LogCategoryTreasure,
		Extra:    map[string]string{"note": "a " + item.Rarity + " " + item.Category + " is identified"},
	})
	return model.LogEntry{
		Category:  model.LogCategoryTreasure,
		Summary:   comp.Summary,
		Details:   comp.Details,
		WorldTime: worldTime,
		Seed:      m.Seed,
	}
}
