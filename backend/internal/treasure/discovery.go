package treasure

import (
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/prose"
)

// Discover implements spec.md §4.7's Discovery bullet: generate the
// treasure, and either claim it immediately (totalWeight <= capacity) or
// open a multi-trip TreasureExtraction. Returns the resulting log entry
// and, when an extraction was opened, its id (empty string on immediate
// claim).
func (m *Manager) Discover(treasureType string, partySize int, dungeonRooms int, terrain model.Terrain, worldTime int64, location model.HexCoord, discoveredBy string) (model.LogEntry, string, error) {
	generated, err := m.Generate(treasureType, worldTime)
	if err != nil {
		return model.LogEntry{}, "", err
	}

	weight := TotalWeight(generated)
	capacity := CarryCapacity(partySize)

	hoard := &model.DiscoveredHoard{
		ID:           m.Rng.UID("hoard"),
		Location:     location,
		DiscoveredBy: discoveredBy,
		TotalValue:   generated.TotalGoldValue,
	}
	for _, item := range generated.MagicItems {
		m.State.Treasure.MagicItems[item.ID] = &item
		hoard.MagicItemIDs = append(hoard.MagicItemIDs, item.ID)
	}
	m.State.Treasure.Hoards[hoard.ID] = hoard

	if weight <= capacity {
		hoard.Liquidated = true
		hoard.PercentSpent = 1
		return m.compose(worldTime, location, "the party claims the treasure outright"), "", nil
	}

	extraction := &model.TreasureExtraction{
		ID:                m.Rng.UID("extraction"),
		HoardID:           hoard.ID,
		RemainingCoin:     generated.Coin,
		RemainingGems:     len(generated.Gems),
		RemainingJewelry:  len(generated.Jewelry),
		RemainingMagicIDs: hoard.MagicItemIDs,
		TotalWeight:       weight,
		NextTripCompletes: worldTime + TripHours(dungeonRooms, terrain),
	}
	m.State.Treasure.Extractions[extraction.ID] = extraction

	return m.compose(worldTime, location, "the hoard is too heavy to carry in one trip; an extraction begins"), extraction.ID, nil
}

func (m *Manager) compose(worldTime int64, location model.HexCoord, note string) model.LogEntry {
	comp := m.Composer.Compose(m.Rng, prose.Context{
		Category: model.LogCategoryTreasure,
		Location: location,
		Extra:    map[string]string{"note": note},
	})
	loc := location
	return model.LogEntry{
		Category:  model.LogCategoryTreasure,
		Summary:   comp.Summary,
		Details:   comp.Details,
		Location:  &loc,
		WorldTime: worldTime,
		Seed:      m.Seed,
	}
}
