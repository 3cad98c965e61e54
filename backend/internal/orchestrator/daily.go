package orchestrator

import (
	"github.com/worldforge/sim/backend/internal/calendar"
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/treasure"
)

// runRumorDecay implements spec.md §5's "bounded growth" rule: every
// active rumor loses one point of freshness per day, and any rumor that
// bottoms out is pruned from the registry.
func (o *Orchestrator) runRumorDecay(worldTime int64) []model.LogEntry {
	var expired []string
	o.World.ActiveRumors.Each(func(id string, r *model.Rumor) bool {
		r.DecayOneDay()
		if r.Expired() {
			expired = append(expired, id)
		}
		return true
	})
	for _, id := range expired {
		o.World.ActiveRumors.Delete(id)
	}
	return nil
}

// runDaily implements spec.md §4.2 step 4's day-rollover sequence:
// "calendar tick, weather regeneration, treasure influx processing,
// magic-item identification, naval-daily, faction operations
// resolution."
func (o *Orchestrator) runDaily(worldTime int64) []model.LogEntry {
	var logs []model.LogEntry

	facts := o.Calendar.Derive(o.instant(worldTime))
	day := dayOf(worldTime)

	weather := o.WeatherGen.Roll(o.Rng, facts.Season, o.State.WeatherCondition)
	o.State.WeatherCondition = weather.Condition
	logs = append(logs, o.composeWeather(weather, worldTime))

	logs = append(logs, o.runTreasureInflux(day)...)
	logs = append(logs, o.Treasure.IdentifyTick(worldTime)...)
	logs = append(logs, o.Naval.DailyTick(worldTime, facts.Season, weather.Condition)...)
	logs = append(logs, o.Naval.PromotePirates()...)
	logs = append(logs, o.runFactionOperations(worldTime)...)

	return logs
}

func (o *Orchestrator) composeWeather(weather calendar.WeatherState, worldTime int64) model.LogEntry {
	comp := o.Composer.Compose(o.Rng, composeContext(model.LogCategoryWeather, model.HexCoord{}, nil, "the day's weather turns "+weather.Condition))
	return model.LogEntry{
		Category:  model.LogCategoryWeather,
		Summary:   comp.Summary,
		Details:   comp.Details,
		WorldTime: worldTime,
		Seed:      o.Seed,
	}
}

// runTreasureInflux refreshes every settlement's price-trend labels and
// prunes stale influx records (spec.md §4.7's "Influx effect" decays
// over time; neither bullet names a dedicated trigger point, so both run
// once per day here, alongside the rest of the day-rollover sequence).
func (o *Orchestrator) runTreasureInflux(day int) []model.LogEntry {
	for _, id := range o.World.Settlements.Ids() {
		st := o.State.SettlementState(id)
		treasure.RefreshPriceTrends(st, day)
		treasure.PruneInfluxes(st, day)
	}
	return nil
}
