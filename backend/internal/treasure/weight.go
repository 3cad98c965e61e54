package treasure

import (
	"github.com/worldforge/sim/backend/internal/constants"
	"github.com/worldforge/sim/backend/internal/model"
)

// TotalWeight implements spec.md §4.7's weight model: COIN_WEIGHT=0.1 per
// coin, gem=1, jewelry=10, magic items weighed per category.
func TotalWeight(t *model.GeneratedTreasure) float64 {
	w := 0.0
	for _, n := range t.Coin {
		w += float64(n) * constants.CoinWeight
	}
	w += float64(len(t.Gems)) * constants.GemWeight
	w += float64(len(t.Jewelry)) * constants.JewelryWeight
	for _, item := range t.MagicItems {
		w += constants.MagicItemWeightByCategory[item.Category]
	}
	return w
}

// CarryCapacity implements spec.md §4.7's "party carry capacity =
// partySize * 500".
func CarryCapacity(partySize int) float64 {
	return float64(partySize) * constants.PartyCarryCapacityPerMember
}

// terrainMod implements spec.md §4.7's trip-time terrain multiplier
// ("swamp 1.5, mountains 1.3, forest 1.1, else 1.0"). Duplicated rather
// than imported from internal/travel's identical table: both packages
// apply the same three-terrain carve-out to an otherwise unrelated
// formula, and neither is a natural home for the other to depend on.
func terrainMod(t model.Terrain) float64 {
	switch t {
	case model.TerrainSwamp:
		return 1.5
	case model.TerrainMountains:
		return 1.3
	case model.TerrainForest:
		return 1.1
	default:
		return 1.0
	}
}

// TripHours implements spec.md §4.7's "trip time = max(1,
// ceil(dungeonRooms/4)) * 2 * terrainMod hours".
func TripHours(dungeonRooms int, terrain model.Terrain) int64 {
	units := (dungeonRooms + 3) / 4
	if units < 1 {
		units = 1
	}
	return int64(float64(units) * 2 * terrainMod(terrain))
}
