package calendar

import (
	"github.com/worldforge/sim/backend/internal/content"
	"github.com/worldforge/sim/backend/internal/worldrand"
)

// weatherPersistChance is spec.md §4.10's "weather persists with 0.6
// probability; else samples from season-conditioned distribution".
const weatherPersistChance = 0.6

// WeatherState is the current weather condition plus the effect modifiers
// content tables assign it, carried on World (or passed to subsystems)
// between ticks so persistence can be evaluated each day.
type WeatherState struct {
	Condition string
	Effect    content.WeatherEffect
}

// Generator rolls the daily weather condition. It is a pure function of
// (rng, season, previous condition, tables) — no hidden state of its own.
type Generator struct {
	Tables *content.Tables
}

// NewGenerator constructs a Generator bound to a content-table set.
func NewGenerator(tables *content.Tables) *Generator {
	return &Generator{Tables: tables}
}

// Roll returns the day's weather: with 0.6 probability it repeats prev
// (if prev is non-empty), otherwise it samples the season's weighted
// distribution.
func (g *Generator) Roll(rng *worldrand.Rng, season Season, prev string) WeatherState {
	if prev != "" && rng.Chance(weatherPersistChance) {
		return WeatherState{Condition: prev, Effect: g.Tables.WeatherEffects[prev]}
	}
	condition := g.sample(rng, season)
	return WeatherState{Condition: condition, Effect: g.Tables.WeatherEffects[condition]}
}

// sample draws one condition from the season's weighted odds table. A
// missing or empty table yields "clear" — a tick never fails over a
// content gap this shallow (content.Tables.Validate already rejects an
// entirely-empty WeatherOddsBySeason at bootstrap).
func (g *Generator) sample(rng *worldrand.Rng, season Season) string {
	odds, ok := g.Tables.WeatherOddsBySeason[string(season)]
	if !ok || len(odds) == 0 {
		return "clear"
	}
	total := 0
	for _, w := range odds {
		total += w
	}
	if total <= 0 {
		return "clear"
	}
	roll := rng.Int(total)
	cursor := 0
	// Map iteration order is unspecified, so sort the condition names to
	// keep the weighted draw deterministic for a given rng draw.
	names := sortedKeys(odds)
	for _, name := range names {
		cursor += odds[name]
		if roll < cursor {
			return name
		}
	}
	return names[len(names)-1]
}

func sortedKeys(m content.WeatherOdds) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
