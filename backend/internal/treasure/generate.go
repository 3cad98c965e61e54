package treasure

import (
	"sort"

	"github.com/worldforge/sim/backend/internal/constants"
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/pkg/dice"
	apperrors "github.com/worldforge/sim/backend/pkg/errors"
)

// Generate implements spec.md §4.7's generateTreasure: rolls coins, gems,
// jewelry, and magic items for treasureType from the injected table and
// totals gold value using the coin rates (cp:0.01, sp:0.1, ep:0.5, gp:1,
// pp:5).
func (m *Manager) Generate(treasureType string, worldTime int64) (*model.GeneratedTreasure, error) {
	cfg, ok := m.Tables.TreasureTypes[treasureType]
	if !ok {
		return nil, apperrors.NewNotFoundError("treasure type " + treasureType)
	}

	roller := dice.NewRoller(m.Rng)
	result := &model.GeneratedTreasure{
		Coin:         make(map[string]int),
		IsHoard:      cfg.IsLair,
		TreasureType: treasureType,
	}

	for _, code := range sortedFloatKeys(cfg.CoinChance) {
		if !m.Rng.Chance(cfg.CoinChance[code]) {
			continue
		}
		notation, ok := cfg.CoinDice[code]
		if !ok {
			continue
		}
		roll, err := roller.Roll(notation)
		if err != nil {
			continue
		}
		result.Coin[code] = roll.Total
	}

	if cfg.GemChance > 0 && cfg.GemDice != "" && m.Rng.Chance(cfg.GemChance) {
		if count, err := roller.Roll(cfg.GemDice); err == nil {
			for i := 0; i < count.Total; i++ {
				result.Gems = append(result.Gems, rollGemValue(m.Rng))
			}
		}
	}

	if cfg.JewelryChance > 0 && cfg.JewelryDice != "" && m.Rng.Chance(cfg.JewelryChance) {
		if count, err := roller.Roll(cfg.JewelryDice); err == nil {
			for i := 0; i < count.Total; i++ {
				result.Jewelry = append(result.Jewelry, rollJewelryValue(m.Rng))
			}
		}
	}

	if cfg.MagicChance > 0 && cfg.MagicCount != "" && m.Rng.Chance(cfg.MagicChance) {
		if count, err := roller.Roll(cfg.MagicCount); err == nil {
			for i := 0; i < count.Total; i++ {
				result.MagicItems = append(result.MagicItems, rollMagicItem(m.Rng, cfg.MagicCategories, worldTime))
			}
		}
	}

	result.TotalGoldValue = totalGoldValue(result)
	return result, nil
}

func sortedFloatKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func totalGoldValue(t *model.GeneratedTreasure) float64 {
	total := 0.0
	for code, n := range t.Coin {
		total += float64(n) * constants.CoinGoldValue[code]
	}
	for _, v := range t.Gems {
		total += float64(v)
	}
	for _, v := range t.Jewelry {
		total += float64(v)
	}
	return total
}
