package treasure

import (
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/prose"
)

// attractorsByCategory stands in for the item-category -> attractsTypes
// mapping spec.md §4.7 references ("attractsTypes drawn from the item
// category") but never tabulates. Resolved here grouping weapons/armor
// (raidable loot) toward bandit/antagonist interest and the rarer
// spellcasting categories toward dragon/antagonist interest, the
// nearest reading of "drawn from the item category" spec.md leaves open.
var attractorsByCategory = map[string][]string{
	"weapon":   {"bandit", "antagonist"},
	"armor":    {"bandit", "antagonist"},
	"potion":   {"monster"},
	"scroll":   {"monster"},
	"ring":     {"dragon", "antagonist"},
	"wand":     {"dragon", "antagonist"},
	"staff":    {"dragon", "antagonist"},
	"rod":      {"dragon", "antagonist"},
	"wondrous": {"antagonist"},
	"misc":     {"antagonist"},
	"artifact": {"dragon", "antagonist"},
}

// attractPriority implements spec.md §4.7's "dragon/antagonist priority
// 5; bandit/monster priority 4; else 3" for second-order
// treasure-{attractType} consequences.
func attractPriority(attractType string) int {
	switch attractType {
	case "dragon", "antagonist":
		return 5
	case "bandit", "monster":
		return 4
	default:
		return 3
	}
}

// MaybeSpawnRumor implements spec.md §4.7's Treasure rumors bullet: "on
// discovery of rare+ items, spawn a TreasureRumor with attractsTypes
// drawn from the item category; with probability proportional to
// rarity, enqueue second-order treasure-{attractType} consequences."
// Returns a nil log when item doesn't qualify (not rare+).
func (m *Manager) MaybeSpawnRumor(item *model.MagicItem, settlementID string, worldTime int64) *model.LogEntry {
	if !isRareOrBetter(item.Rarity) {
		return nil
	}

	attracts := attractorsByCategory[item.Category]
	rumor := &model.TreasureRumor{
		Rumor: model.Rumor{
			ID:        m.Rng.UID("rumor"),
			Kind:      "treasure",
			Text:      "word spreads of a " + item.Rarity + " " + item.Category + " somewhere near " + settlementID,
			Target:    item.ID,
			Origin:    settlementID,
			Freshness: 14,
		},
		TreasureType:  item.Category,
		ItemID:        item.ID,
		AttractsTypes: attracts,
	}
	m.State.Treasure.TreasureRumors[rumor.ID] = rumor

	prob := rarityProbability(item.Rarity)
	for _, attractType := range attracts {
		if !m.Rng.Chance(prob) {
			continue
		}
		m.Queue.Enqueue(&model.ConsequenceEntry{
			ID:           m.Rng.UID("cq"),
			Tag:          model.ConsequenceTreasureAttract,
			DueTurnIndex: int(worldTime) + 24 + m.Rng.Int(72),
			Priority:     attractPriority(attractType),
			Data:         model.ConsequenceData{AttractType: attractType, SettlementID: settlementID, HoardID: item.ID},
		})
	}

	comp := m.Composer.Compose(m.Rng, prose.Context{
		Category: model.LogCategoryRumor,
		Extra:    map[string]string{"note": rumor.Text},
	})
	log := model.LogEntry{
		Category:  model.LogCategoryRumor,
		Summary:   comp.Summary,
		Details:   comp.Details,
		WorldTime: worldTime,
		Seed:      m.Seed,
	}
	return &log
}
