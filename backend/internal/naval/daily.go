package naval

import (
	"github.com/worldforge/sim/backend/internal/calendar"
	"github.com/worldforge/sim/backend/internal/model"
)

// departChance implements spec.md §4.9's "depart probability 0.15,
// scaled 0.02 in storm / 0.08 in rain, x0.5 in winter".
func departChance(weather string, season calendar.Season) float64 {
	chance := 0.15
	switch weather {
	case "storm":
		chance = 0.02
	case "rain":
		chance = 0.08
	}
	if season == calendar.SeasonWinter {
		chance *= 0.5
	}
	return chance
}

// DailyTick implements spec.md §4.9's daily bullet in full: departures,
// pirate raids, storms, and sea-monster sightings, in that order.
func (m *Manager) DailyTick(worldTime int64, season calendar.Season, weather string) []model.LogEntry {
	var logs []model.LogEntry
	logs = append(logs, m.processDepartures(worldTime, season, weather)...)
	logs = append(logs, m.processPirateRaids(worldTime, season, weather)...)
	logs = append(logs, m.processStorms(worldTime, weather)...)
	logs = append(logs, m.processSeaMonsterSighting(worldTime)...)
	return logs
}

func (m *Manager) processDepartures(worldTime int64, season calendar.Season, weather string) []model.LogEntry {
	chance := departChance(weather, season)
	var logs []model.LogEntry
	for _, id := range m.World.Ships.Ids() {
		ship, _ := m.World.Ships.Get(id)
		if ship.Status != model.ShipDocked || m.isPirateShip(id) {
			continue
		}
		if !m.Rng.Chance(chance) {
			continue
		}
		route := m.pickRouteFrom(ship.CurrentLocation)
		if route == nil {
			continue
		}
		dest := route.PortB
		if dest == ship.CurrentLocation {
			dest = route.PortA
		}
		ship.Status = model.ShipAtSea
		ship.Destination = dest
		ship.DepartedAt = worldTime
		ship.ArrivesAt = worldTime + int64(route.DistanceDays)*24
		ship.Cargo = loadCargo(route)
		logs = append(logs, m.compose(worldTime, ship.CurrentLocation, ship.Name+" sets sail for "+dest))
	}
	return logs
}

func loadCargo(route *model.SeaRoute) map[string]int {
	cargo := make(map[string]int)
	for _, good := range route.PrimaryGoods {
		cargo[good] = 100
	}
	return cargo
}

func (m *Manager) pickRouteFrom(portID string) *model.SeaRoute {
	var candidates []*model.SeaRoute
	for _, id := range sortedKeys(m.State.Naval.Routes) {
		route := m.State.Naval.Routes[id]
		if route.PortA == portID || route.PortB == portID {
			candidates = append(candidates, route)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	idx, err := m.Rng.PickIndex(len(candidates))
	if err != nil {
		return nil
	}
	return candidates[idx]
}

func (m *Manager) isPirateShip(shipID string) bool {
	found := false
	m.World.Pirates.Each(func(_ string, fleet *model.PirateFleet) bool {
		for _, id := range fleet.ShipIDs {
			if id == shipID {
				found = true
				return false
			}
		}
		return true
	})
	return found
}
