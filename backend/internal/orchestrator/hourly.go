package orchestrator

import (
	"time"

	"github.com/worldforge/sim/backend/internal/constants"
	"github.com/worldforge/sim/backend/internal/content"
	"github.com/worldforge/sim/backend/internal/memory"
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/travel"
)

// runHourly implements spec.md §4.2 step 3's fixed order: "travel →
// encounters → naval-hourly → army ticks → extraction → antagonist
// actions (sub-sampled) → memory surfacing (sub-sampled)". Each stage
// checks the wall-clock soft cap before running; once exceeded, the
// remaining stages are skipped for this hour and a system log notes it.
func (o *Orchestrator) runHourly(start time.Time, worldTime int64) []model.LogEntry {
	var logs []model.LogEntry

	stages := []struct {
		name string
		run  func() []model.LogEntry
	}{
		{"travel", func() []model.LogEntry { return o.runTravel(worldTime) }},
		{"naval-hourly", func() []model.LogEntry { return o.Naval.HourlyTick(worldTime) }},
		{"army-ticks", func() []model.LogEntry {
			var l []model.LogEntry
			l = append(l, o.Warmachine.HourlyTick(worldTime)...)
			l = append(l, o.Warmachine.ResupplyTick(worldTime)...)
			return l
		}},
		{"extraction", func() []model.LogEntry { return o.runExtractions(worldTime) }},
		{"antagonist-acts", func() []model.LogEntry { return o.runAntagonistActs(worldTime) }},
		{"memory-surfacing", func() []model.LogEntry { return o.runMemorySurfacing(worldTime) }},
	}

	for _, stage := range stages {
		if !withinBudget(start) {
			logs = append(logs, o.softCapLog(worldTime, stage.name))
			break
		}
		logs = append(logs, stage.run()...)
	}
	return logs
}

// currentWeatherEffect looks up the content-table effect for yesterday's
// sampled condition. Returns nil before the first day rollover has ever
// sampled one, matching internal/travel's own "no weather yet" contract
// (AdvanceTravel and Encounters.Resolve both treat a nil weather as no
// modifier).
func (o *Orchestrator) currentWeatherEffect() *content.WeatherEffect {
	if o.State.WeatherCondition == "" {
		return nil
	}
	effect, ok := o.Tables.WeatherEffects[o.State.WeatherCondition]
	if !ok {
		return nil
	}
	return &effect
}

// runTravel advances every travelling party one hour, composes its
// arrival log on the hour it reaches its destination, and otherwise
// rolls that hour's encounter (spec.md §4.2's "travel → encounters",
// folded into one stage since both act on the same travelling-party
// set).
func (o *Orchestrator) runTravel(worldTime int64) []model.LogEntry {
	weather := o.currentWeatherEffect()
	facts := o.Calendar.Derive(o.instant(worldTime))
	hourOfDay := int(worldTime % 24)

	var logs []model.LogEntry
	for _, id := range o.World.Parties.Ids() {
		party, _ := o.World.Parties.Get(id)
		if party.Status != model.PartyTravel {
			continue
		}
		terrain := party.Travel.Terrain
		arrived := travel.AdvanceTravel(party, weather)
		if arrived {
			logs = append(logs, o.composeArrival(party, worldTime))
			continue
		}

		partyState := o.State.PartyState(id)
		alwaysHostile := partyState.Vendetta != ""
		result := o.Encounters.Resolve(o.Rng, party, partyState, terrain, hourOfDay, weather, facts.IsFullMoon, alwaysHostile, worldTime)
		if result == nil {
			continue
		}
		logs = append(logs, result.Log)
		if result.PartyKilled {
			party.Travel = nil
			party.Status = model.PartyIdle
		}
	}
	return logs
}

func (o *Orchestrator) composeArrival(party *model.Party, worldTime int64) model.LogEntry {
	comp := o.Composer.Compose(o.Rng, composeContext(model.LogCategoryTravel, party.Location, []string{party.ID}, "the party arrives"))
	loc := party.Location
	return model.LogEntry{
		Category:  model.LogCategoryTravel,
		Summary:   comp.Summary,
		Details:   comp.Details,
		Actors:    []string{party.ID},
		Location:  &loc,
		WorldTime: worldTime,
		Seed:      o.Seed,
	}
}

// runAntagonistActs sub-samples every living antagonist for an act tick
// (spec.md §4.2: "antagonist actions (sub-sampled)"). Each antagonist's
// weekly cadence (constants.AntagonistActCadenceHours) is expressed as a
// per-hour chance rather than last-acted bookkeeping, mirroring the
// memory subsystem's own probability-based sub-sampling instead of
// adding a side-table this subsystem doesn't otherwise need.
func (o *Orchestrator) runAntagonistActs(worldTime int64) []model.LogEntry {
	chance := 1.0 / float64(constants.AntagonistActCadenceHours)
	var logs []model.LogEntry
	for _, id := range o.World.LivingAntagonistIDs() {
		if !o.Rng.Chance(chance) {
			continue
		}
		ant, ok := o.World.Antagonists.Get(id)
		if !ok {
			continue
		}
		logs = append(logs, o.Antagonist.Act(ant, worldTime)...)
	}
	return logs
}

// runMemorySurfacing implements spec.md §4.5/§4.2's per-hour,
// per-living-NPC memory surfacing pass.
func (o *Orchestrator) runMemorySurfacing(worldTime int64) []model.LogEntry {
	results := memory.GenerateMemoryEvents(o.Rng, o.State, o.Composer, o.World.LivingNPCIDs(), worldTime, o.Seed)
	if len(results) == 0 {
		return nil
	}
	logs := make([]model.LogEntry, 0, len(results))
	for _, r := range results {
		logs = append(logs, r.Log)
	}
	return logs
}
