package naval

import (
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/prose"
)

// HourlyTick implements spec.md §4.9's hourly bullet: for each at-sea
// ship whose arrivesAt <= now, dock it, offload cargo, update port
// activity, and with ~25% probability emit a distant-land rumor.
func (m *Manager) HourlyTick(worldTime int64) []model.LogEntry {
	var logs []model.LogEntry
	for _, id := range m.World.Ships.Ids() {
		ship, _ := m.World.Ships.Get(id)
		if ship.Status != model.ShipAtSea || ship.ArrivesAt > worldTime {
			continue
		}
		logs = append(logs, m.dockShip(ship, worldTime)...)
	}
	return logs
}

func (m *Manager) dockShip(ship *model.Ship, worldTime int64) []model.LogEntry {
	destPort := ship.Destination
	if destPort == "" {
		destPort = ship.CurrentLocation
	}
	ship.Status = model.ShipDocked
	ship.CurrentLocation = destPort
	ship.Destination = ""

	activity := m.State.Naval.PortActivity[destPort]
	if activity == nil {
		activity = &model.PortActivity{}
		m.State.Naval.PortActivity[destPort] = activity
	}
	activity.ShipsInPort = appendUnique(activity.ShipsInPort, ship.ID)

	for good := range ship.Cargo {
		activity.ExoticGoodsAvailable = appendUnique(activity.ExoticGoodsAvailable, good)
	}
	ship.Cargo = make(map[string]int)

	var logs []model.LogEntry
	logs = append(logs, m.compose(worldTime, destPort, ship.Name+" makes port"))

	if m.Rng.Chance(0.25) {
		logs = append(logs, m.emitDistantLandRumor(worldTime, destPort))
	}
	return logs
}

// emitDistantLandRumor implements spec.md §4.9's "procedurally reusing a
// DistantLand/DistantFigure, 70%/60% reuse probabilities respectively".
func (m *Manager) emitDistantLandRumor(worldTime int64, portID string) model.LogEntry {
	land := m.reuseOrCreateLand()
	figure := m.reuseOrCreateFigure()

	rumor := &model.Rumor{
		ID:        m.Rng.UID("rumor"),
		Kind:      "distant-land",
		Text:      "sailors speak of " + land.Name + " and one " + figure.Name,
		Target:    land.ID,
		Origin:    portID,
		Freshness: 14,
	}
	m.World.ActiveRumors.Put(rumor.ID, rumor)

	return m.compose(worldTime, portID, rumor.Text)
}

func (m *Manager) reuseOrCreateLand() *model.DistantLand {
	if len(m.State.Naval.DistantLands) > 0 && m.Rng.Chance(0.7) {
		keys := sortedKeys(m.State.Naval.DistantLands)
		if idx, err := m.Rng.PickIndex(len(keys)); err == nil {
			return m.State.Naval.DistantLands[keys[idx]]
		}
	}
	name, err := m.Rng.PickString(m.Tables.PlacePool)
	if err != nil {
		name = "an uncharted shore"
	}
	land := &model.DistantLand{ID: m.Rng.UID("land"), Name: name}
	m.State.Naval.DistantLands[land.ID] = land
	return land
}

func (m *Manager) reuseOrCreateFigure() *model.DistantFigure {
	if len(m.State.Naval.DistantFigures) > 0 && m.Rng.Chance(0.6) {
		keys := sortedKeys(m.State.Naval.DistantFigures)
		if idx, err := m.Rng.PickIndex(len(keys)); err == nil {
			return m.State.Naval.DistantFigures[keys[idx]]
		}
	}
	name, err := m.Rng.PickString(m.Tables.NamePool)
	if err != nil {
		name = "a nameless wanderer"
	}
	figure := &model.DistantFigure{ID: m.Rng.UID("figure"), Name: name}
	m.State.Naval.DistantFigures[figure.ID] = figure
	return figure
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

func (m *Manager) compose(worldTime int64, portID string, note string) model.LogEntry {
	var loc model.HexCoord
	var settlementName string
	if port, ok := m.World.Settlements.Get(portID); ok {
		loc = port.Coord
		settlementName = port.Name
	}
	comp := m.Composer.Compose(m.Rng, prose.Context{
		Category:       model.LogCategoryNaval,
		SettlementName: settlementName,
		Location:       loc,
		Extra:          map[string]string{"note": note},
	})
	entry := model.LogEntry{
		Category:  model.LogCategoryNaval,
		Summary:   comp.Summary,
		Details:   comp.Details,
		WorldTime: worldTime,
		Seed:      m.Seed,
	}
	if settlementName != "" {
		entry.Location = &loc
	}
	return entry
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}
