package naval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/worldforge/sim/backend/internal/calendar"
	"github.com/worldforge/sim/backend/internal/model"
)

func TestProcessPirateRaids_SkippedDuringStorm(t *testing.T) {
	m := newTestManager("piracy-seed-1")
	m.World.Pirates.Put("fleet-1", &model.PirateFleet{ID: "fleet-1", Crew: 100})
	m.World.Ships.Put("ship-1", &model.Ship{ID: "ship-1", Status: model.ShipAtSea})

	logs := m.processPirateRaids(24, calendar.SeasonSummer, "storm")

	assert.Nil(t, logs)
}

func TestProcessPirateRaids_RespectsCooldown(t *testing.T) {
	m := newTestManager("piracy-seed-2")
	m.World.Pirates.Put("fleet-1", &model.PirateFleet{ID: "fleet-1", Crew: 100, LastRaid: 10})
	m.World.Ships.Put("ship-1", &model.Ship{ID: "ship-1", Status: model.ShipAtSea, Crew: 10, Marines: 2, Condition: 80})

	m.processPirateRaids(20, calendar.SeasonSummer, "clear")

	fleet, _ := m.World.Pirates.Get("fleet-1")
	assert.Equal(t, int64(10), fleet.LastRaid)
}

func TestResolveRaid_OverwhelmingPirateStrengthCapturesShip(t *testing.T) {
	m := newTestManager("piracy-seed-3")
	fleet := &model.PirateFleet{ID: "fleet-1", Name: "Black Tide", Crew: 1000}
	target := &model.Ship{ID: "ship-1", Name: "Gull", Crew: 1, Marines: 0, Condition: 10}

	m.resolveRaid(fleet, target, 24)

	assert.Equal(t, model.ShipShipwrecked, target.Status)
	assert.Equal(t, 10, fleet.Notoriety)
}

func TestResolveRaid_WeakPirateStrengthIsRepelled(t *testing.T) {
	m := newTestManager("piracy-seed-4")
	fleet := &model.PirateFleet{ID: "fleet-1", Name: "Black Tide", Crew: 5}
	target := &model.Ship{ID: "ship-1", Name: "Warship", Crew: 80, Marines: 40, Condition: 100}

	m.resolveRaid(fleet, target, 24)

	assert.Less(t, fleet.Crew, 5)
	assert.NotEqual(t, model.ShipShipwrecked, target.Status)
}

func TestProcessStorms_EventuallyWrecksAWeakShip(t *testing.T) {
	m := newTestManager("piracy-seed-5")
	var wrecked bool
	for i := 0; i < 200 && !wrecked; i++ {
		m.World.Ships.Put("ship-1", &model.Ship{
			ID: "ship-1", Name: "Leaky", Type: "sloop", Status: model.ShipAtSea, Condition: 5,
		})
		m.processStorms(int64(i), "clear")
		ship, _ := m.World.Ships.Get("ship-1")
		if ship.Status == model.ShipShipwrecked {
			wrecked = true
		}
	}
	assert.True(t, wrecked)
}

func TestProcessSeaMonsterSighting_EventuallyFires(t *testing.T) {
	m := newTestManager("piracy-seed-6")
	var sawSighting bool
	for i := 0; i < 500; i++ {
		if logs := m.processSeaMonsterSighting(int64(i)); len(logs) > 0 {
			sawSighting = true
			break
		}
	}
	assert.True(t, sawSighting)
}
