package treasure

import (
	"github.com/worldforge/sim/backend/internal/constants"
	"github.com/worldforge/sim/backend/internal/model"
)

// ApplyInflux implements spec.md §4.7's Influx effect: "add to
// settlement's recent influxes. Inflation factor = amount /
// (population*10)."
func ApplyInflux(state *model.SettlementState, amount float64, population, day int) model.TreasureInflux {
	rate := 0.0
	if population > 0 {
		rate = amount / (float64(population) * 10)
	}
	influx := model.TreasureInflux{Amount: amount, OccurredDay: day, InflationRate: rate}
	state.RecentInfluxes = append(state.RecentInfluxes, influx)
	return influx
}

// RefreshPriceTrends implements spec.md §4.7's "if >= 0.5 for days 1-7
// post-arrival, all tracked price trends for the settlement become
// high", evaluated once per day rollover.
func RefreshPriceTrends(state *model.SettlementState, day int) {
	hot := false
	for _, inf := range state.RecentInfluxes {
		age := day - inf.OccurredDay
		if age >= 1 && age <= 7 && inf.InflationRate >= 0.5 {
			hot = true
			break
		}
	}
	if !hot {
		return
	}
	for good := range state.PriceTrends {
		state.PriceTrends[good] = "high"
	}
}

// PruneInfluxes drops influxes older than spec.md §4.7's 60-day tracking
// window ("after day 60 the influx is pruned"), matching §5's "treasure
// influxes with amount 0 removed" bounded-growth rule by age instead.
func PruneInfluxes(state *model.SettlementState, day int) {
	kept := state.RecentInfluxes[:0]
	for _, inf := range state.RecentInfluxes {
		if day-inf.OccurredDay <= constants.TreasureInfluxTrackingDays {
			kept = append(kept, inf)
		}
	}
	state.RecentInfluxes = kept
}
