// Package travel implements the encounter & travel subsystem (spec.md
// §2 item 9, §4.6): hourly party movement and the encounter roll/outcome
// pipeline. Grounded on spec.md §4.6's formulas; the teacher has no
// overland-movement concept to adapt (its travel is turn-based combat
// positioning, not a multi-hour journey), so the shapes here follow
// internal/causality's handler-per-concern split instead.
package travel

import (
	"github.com/worldforge/sim/backend/internal/constants"
	"github.com/worldforge/sim/backend/internal/content"
	"github.com/worldforge/sim/backend/internal/model"
)

// terrainSpeedMod slows overland travel on difficult terrain (spec.md
// §4.7's extraction trip-time terrain multiplier is the nearest spec-named
// precedent for a per-terrain speed penalty; reused here for travel since
// spec.md §4.6 names no separate table).
func terrainSpeedMod(t model.Terrain) float64 {
	switch t {
	case model.TerrainSwamp:
		return 1.5
	case model.TerrainMountains:
		return 1.3
	case model.TerrainForest, model.TerrainHills:
		return 1.1
	default:
		return 1.0
	}
}

// AdvanceTravel moves a travelling party one simulated hour closer to its
// destination, applying the terrain and (if present) weather speed
// multipliers, and reports whether the party arrived this hour (spec.md
// §3 invariant 4 / §8: "milesRemaining <= 0 on entry transitions
// immediately to idle and emits an arrival log exactly once").
func AdvanceTravel(party *model.Party, weather *content.WeatherEffect) bool {
	if party.Travel == nil {
		return false
	}
	if party.Travel.MilesRemaining <= 0 {
		return party.ArriveIfDone()
	}

	speedMod := 1.0
	if weather != nil && weather.TravelSpeedMod > 0 {
		speedMod = weather.TravelSpeedMod
	}
	miles := constants.BasePartyMilesPerHour / terrainSpeedMod(party.Travel.Terrain) * speedMod
	party.Travel.MilesRemaining -= miles
	if party.Travel.MilesRemaining < 0 {
		party.Travel.MilesRemaining = 0
	}
	return party.ArriveIfDone()
}
