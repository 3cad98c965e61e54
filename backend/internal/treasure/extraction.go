package treasure

import (
	"sort"

	"github.com/worldforge/sim/backend/internal/constants"
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/worldrand"
)

// TickExtraction implements spec.md §4.7's Extraction tick: roll a hazard,
// load a trip's cargo in priority order, commit it, and decide whether
// the extraction completes, reschedules, or is abandoned. tripHours is
// recomputed by the caller from the dungeon's room count/terrain (the
// same inputs TripHours used when the extraction opened); nextTripCompletes
// is only advanced when the extraction neither completes nor is abandoned.
func (m *Manager) TickExtraction(ext *model.TreasureExtraction, party *model.Party, worldTime int64, dayNow int, tripHours int64, settlementID string) []model.LogEntry {
	if ext.Completed || ext.Abandoned || ext.NextTripCompletes > worldTime {
		return nil
	}

	capacity := CarryCapacity(len(party.Members))
	loaded := m.loadTrip(ext, capacity, party.ID)
	ext.CurrentLoad = loaded

	var logs []model.LogEntry
	if m.Rng.Chance(0.1) {
		hazardCost := loaded * (0.10 + m.Rng.Next()*0.30)
		ext.CurrentLoad -= hazardCost
		if ext.CurrentLoad < 0 {
			ext.CurrentLoad = 0
		}
		if m.Rng.Chance(0.4) {
			party.Wounded = true
		}
		logs = append(logs, m.compose(worldTime, party.Location, "a hazard strikes the extraction party"))
	}

	ext.ExtractedWeight += ext.CurrentLoad
	ext.TripsCompleted++
	if ext.TripsCompleted == 1 || ext.TripsCompleted%3 == 0 {
		logs = append(logs, m.compose(worldTime, party.Location, "another load of treasure reaches the surface"))
	}

	switch {
	case extractionDrained(ext):
		ext.Completed = true
		ext.CompletedDay = dayNow
		logs = append(logs, m.compose(worldTime, party.Location, "the hoard is fully extracted"))
		if hoard, ok := m.State.Treasure.Hoards[ext.HoardID]; ok {
			hoard.Liquidated = true
			hoard.PercentSpent = 1
			if hoard.TotalValue >= 1000 {
				m.Queue.Enqueue(&model.ConsequenceEntry{
					ID:           m.Rng.UID("cq"),
					Tag:          model.ConsequenceTreasureInflux,
					DueTurnIndex: int(worldTime) + 72 + m.Rng.Int(168),
					Priority:     3,
					Data:         model.ConsequenceData{HoardID: ext.HoardID, SettlementID: settlementID, Amount: hoard.TotalValue},
				})
			}
		}
	case shouldAbandon(ext, m.Rng):
		ext.Abandoned = true
		logs = append(logs, m.compose(worldTime, party.Location, "the party abandons what scraps remain"))
	default:
		ext.NextTripCompletes = worldTime + tripHours
	}

	return logs
}

func extractionDrained(ext *model.TreasureExtraction) bool {
	if ext.RemainingGems > 0 || ext.RemainingJewelry > 0 || len(ext.RemainingMagicIDs) > 0 {
		return false
	}
	for _, n := range ext.RemainingCoin {
		if n > 0 {
			return false
		}
	}
	return true
}

// shouldAbandon implements spec.md §4.7's abandon rule: "if only cp/sp/ep
// worth <50 gp remain and no gems/magic, probability 0.5 abandon".
func shouldAbandon(ext *model.TreasureExtraction, rng *worldrand.Rng) bool {
	if ext.RemainingGems > 0 || ext.RemainingJewelry > 0 || len(ext.RemainingMagicIDs) > 0 {
		return false
	}
	if ext.RemainingCoin["gp"] > 0 || ext.RemainingCoin["pp"] > 0 {
		return false
	}
	value := 0.0
	for _, code := range []string{"cp", "sp", "ep"} {
		value += float64(ext.RemainingCoin[code]) * constants.CoinGoldValue[code]
	}
	if value <= 0 || value >= 50 {
		return false
	}
	return rng.Chance(0.5)
}

// loadTrip fills one trip's cargo up to capacity in spec.md §4.7's
// prioritized order ("magic items first, then platinum, gems, gold,
// jewelry, electrum, silver, copper — order by gold-per-weight"),
// decrementing the extraction's remainings and transferring magic-item
// ownership to ownerID. Returns the weight actually loaded.
func (m *Manager) loadTrip(ext *model.TreasureExtraction, capacity float64, ownerID string) float64 {
	remaining := capacity
	loaded := 0.0

	var stillHave []string
	for _, id := range ext.RemainingMagicIDs {
		item, ok := m.State.Treasure.MagicItems[id]
		w := 0.0
		if ok {
			w = constants.MagicItemWeightByCategory[item.Category]
		}
		if remaining >= w {
			remaining -= w
			loaded += w
			if ok {
				item.OwnerID = ownerID
			}
			continue
		}
		stillHave = append(stillHave, id)
	}
	ext.RemainingMagicIDs = stillHave

	loaded += m.loadCoin(ext, "pp", &remaining)
	loaded += m.loadBulk(&ext.RemainingGems, constants.GemWeight, &remaining)
	loaded += m.loadCoin(ext, "gp", &remaining)
	loaded += m.loadBulk(&ext.RemainingJewelry, constants.JewelryWeight, &remaining)
	loaded += m.loadCoin(ext, "ep", &remaining)
	loaded += m.loadCoin(ext, "sp", &remaining)
	loaded += m.loadCoin(ext, "cp", &remaining)

	return loaded
}

func (m *Manager) loadCoin(ext *model.TreasureExtraction, code string, remaining *float64) float64 {
	have := ext.RemainingCoin[code]
	if have <= 0 {
		return 0
	}
	n := int(*remaining / constants.CoinWeight)
	if n > have {
		n = have
	}
	if n <= 0 {
		return 0
	}
	w := float64(n) * constants.CoinWeight
	*remaining -= w
	ext.RemainingCoin[code] = have - n
	return w
}

func (m *Manager) loadBulk(count *int, unitWeight float64, remaining *float64) float64 {
	if *count <= 0 {
		return 0
	}
	n := int(*remaining / unitWeight)
	if n > *count {
		n = *count
	}
	if n <= 0 {
		return 0
	}
	w := float64(n) * unitWeight
	*remaining -= w
	*count -= n
	return w
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
