package travel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/worldforge/sim/backend/internal/content"
	"github.com/worldforge/sim/backend/internal/model"
)

func TestAdvanceTravel_DecrementsMilesByTerrainAndWeather(t *testing.T) {
	party := &model.Party{
		Travel: &model.TravelPlan{MilesRemaining: 10, Terrain: model.TerrainClear},
		Status: model.PartyTravel,
	}
	arrived := AdvanceTravel(party, nil)
	assert.False(t, arrived)
	assert.Less(t, party.Travel.MilesRemaining, 10.0)
}

func TestAdvanceTravel_SwampIsSlowerThanClear(t *testing.T) {
	clear := &model.Party{Travel: &model.TravelPlan{MilesRemaining: 10, Terrain: model.TerrainClear}}
	swamp := &model.Party{Travel: &model.TravelPlan{MilesRemaining: 10, Terrain: model.TerrainSwamp}}
	AdvanceTravel(clear, nil)
	AdvanceTravel(swamp, nil)
	assert.Less(t, clear.Travel.MilesRemaining, swamp.Travel.MilesRemaining)
}

func TestAdvanceTravel_WeatherSlowsFurther(t *testing.T) {
	fast := &model.Party{Travel: &model.TravelPlan{MilesRemaining: 10, Terrain: model.TerrainClear}}
	slow := &model.Party{Travel: &model.TravelPlan{MilesRemaining: 10, Terrain: model.TerrainClear}}
	storm := &content.WeatherEffect{TravelSpeedMod: 0.4}
	AdvanceTravel(fast, nil)
	AdvanceTravel(slow, storm)
	assert.Less(t, fast.Travel.MilesRemaining, slow.Travel.MilesRemaining)
}

func TestAdvanceTravel_ArrivesExactlyOnceWhenMilesExhausted(t *testing.T) {
	party := &model.Party{
		Travel: &model.TravelPlan{MilesRemaining: 0.01, Terrain: model.TerrainRoad},
		Status: model.PartyTravel,
	}
	arrived := AdvanceTravel(party, nil)
	assert.True(t, arrived)
	assert.Nil(t, party.Travel)
	assert.Equal(t, model.PartyIdle, party.Status)

	arrivedAgain := AdvanceTravel(party, nil)
	assert.False(t, arrivedAgain)
}

func TestAdvanceTravel_NoTravelPlanIsNoop(t *testing.T) {
	party := &model.Party{Status: model.PartyIdle}
	assert.False(t, AdvanceTravel(party, nil))
}
