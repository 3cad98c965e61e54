package naval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldforge/sim/backend/internal/calendar"
	"github.com/worldforge/sim/backend/internal/model"
)

func TestDepartChance_StormAndWinterReduceBaseline(t *testing.T) {
	base := departChance("clear", calendar.SeasonSummer)
	storm := departChance("storm", calendar.SeasonSummer)
	winter := departChance("clear", calendar.SeasonWinter)

	assert.Less(t, storm, base)
	assert.Less(t, winter, base)
}

func TestProcessDepartures_DockedShipEventuallyDeparts(t *testing.T) {
	m := newTestManager("daily-seed-1")
	putPort(m.World, "porta", 0, 0)
	putPort(m.World, "portb", 4, 0)
	m.GenerateRoutes()
	m.World.Ships.Put("ship-1", &model.Ship{
		ID: "ship-1", Name: "Gull", Status: model.ShipDocked, CurrentLocation: "porta",
	})

	var departed bool
	for i := 0; i < 200; i++ {
		m.processDepartures(int64(i), calendar.SeasonSummer, "clear")
		ship, _ := m.World.Ships.Get("ship-1")
		if ship.Status == model.ShipAtSea {
			departed = true
			break
		}
	}
	require.True(t, departed)
	ship, _ := m.World.Ships.Get("ship-1")
	assert.NotEmpty(t, ship.Cargo)
	assert.Greater(t, ship.ArrivesAt, int64(0))
}

func TestProcessDepartures_PirateShipNeverDepartsAsMerchant(t *testing.T) {
	m := newTestManager("daily-seed-2")
	putPort(m.World, "porta", 0, 0)
	putPort(m.World, "portb", 4, 0)
	m.GenerateRoutes()
	m.World.Ships.Put("ship-1", &model.Ship{ID: "ship-1", Name: "Reaver", Status: model.ShipDocked, CurrentLocation: "porta"})
	m.World.Pirates.Put("fleet-1", &model.PirateFleet{ID: "fleet-1", ShipIDs: []string{"ship-1"}})

	for i := 0; i < 200; i++ {
		m.processDepartures(int64(i), calendar.SeasonSummer, "clear")
	}
	ship, _ := m.World.Ships.Get("ship-1")
	assert.Equal(t, model.ShipDocked, ship.Status)
}

func TestDailyTick_RunsAllFourPhasesWithoutPanicking(t *testing.T) {
	m := newTestManager("daily-seed-3")
	putPort(m.World, "porta", 0, 0)
	putPort(m.World, "portb", 4, 0)
	m.GenerateRoutes()
	m.World.Ships.Put("ship-1", &model.Ship{
		ID: "ship-1", Name: "Gull", Status: model.ShipAtSea, CurrentLocation: "porta",
		Destination: "portb", Condition: 80,
	})
	m.World.Pirates.Put("fleet-1", &model.PirateFleet{ID: "fleet-1", Name: "Black Tide", Crew: 40})

	assert.NotPanics(t, func() {
		m.DailyTick(48, calendar.SeasonSummer, "clear")
	})
}
