package treasure

import (
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/worldrand"
)

// gemValueTiers and jewelryValueTiers stand in for the per-item
// appraisal table spec.md §4.7 implies ("gems[]", "jewelry[]") but never
// defines further. Resolved here as the standard fantasy gem/jewelry
// value-step tables (six ascending tiers per table), the nearest
// well-known convention in the genre rather than an invented one.
var gemValueTiers = []int{10, 50, 100, 500, 1000, 5000}
var jewelryValueTiers = []int{100, 250, 750, 1500, 5000, 7500}

func rollGemValue(rng *worldrand.Rng) int {
	idx, err := rng.PickIndex(len(gemValueTiers))
	if err != nil {
		return gemValueTiers[0]
	}
	return gemValueTiers[idx]
}

func rollJewelryValue(rng *worldrand.Rng) int {
	idx, err := rng.PickIndex(len(jewelryValueTiers))
	if err != nil {
		return jewelryValueTiers[0]
	}
	return jewelryValueTiers[idx]
}

// magicRarityOrder/magicRarityWeights stand in for the rarity
// distribution spec.md §4.7 references ("log if rarity > common") but
// never defines. Resolved as the standard common/uncommon/rare/
// very-rare/legendary weighting.
var magicRarityOrder = []string{"common", "uncommon", "rare", "very-rare", "legendary"}
var magicRarityWeights = []int{40, 30, 20, 8, 2}

func rollMagicRarity(rng *worldrand.Rng) string {
	total := 0
	for _, w := range magicRarityWeights {
		total += w
	}
	roll := rng.Int(total)
	running := 0
	for i, w := range magicRarityWeights {
		running += w
		if roll < running {
			return magicRarityOrder[i]
		}
	}
	return magicRarityOrder[len(magicRarityOrder)-1]
}

// isRareOrBetter reports whether rarity sits at "rare" or above, per
// spec.md §4.7's "discovery of rare+ items" trigger for treasure rumors.
func isRareOrBetter(rarity string) bool {
	for _, r := range magicRarityOrder[2:] {
		if r == rarity {
			return true
		}
	}
	return false
}

// rarityProbability implements spec.md §4.7's "probability proportional
// to rarity" for second-order treasure-attract consequences. Only
// rare-and-above rarities ever reach this (isRareOrBetter gates the
// caller), so common/uncommon are priced at 0 for completeness.
func rarityProbability(rarity string) float64 {
	switch rarity {
	case "rare":
		return 0.3
	case "very-rare":
		return 0.6
	case "legendary":
		return 0.9
	default:
		return 0
	}
}

func rollMagicItem(rng *worldrand.Rng, categories []string, worldTime int64) model.MagicItem {
	category := "misc"
	if len(categories) > 0 {
		if picked, err := rng.PickString(categories); err == nil {
			category = picked
		}
	}
	return model.MagicItem{
		ID:            rng.UID("item"),
		Category:      category,
		Rarity:        rollMagicRarity(rng),
		Identified:    false,
		DiscoveredDay: dayOf(worldTime),
	}
}
