package naval

import (
	"github.com/worldforge/sim/backend/internal/calendar"
	"github.com/worldforge/sim/backend/internal/model"
)

// raidCooldownHours is spec.md §4.9's "skipped if lastRaid < 3 days".
const raidCooldownHours = 3 * 24

// pirateStrength/targetStrength stand in for the combat-strength formula
// spec.md §4.9 names ("combat outcome by pirateStrength vs
// targetStrength") but never defines. Resolved as the fleet's crew
// headcount (PirateFleet tracks no marines) against the target ship's
// crew + 2*marines, scaled by its condition fraction (a crippled ship
// fights worse).
func pirateStrength(fleet *model.PirateFleet) float64 {
	return float64(fleet.Crew)
}

func targetStrength(ship *model.Ship) float64 {
	return float64(ship.Crew+2*ship.Marines) * (float64(ship.Condition) / 100)
}

// processPirateRaids implements spec.md §4.9's pirate-raid bullet: base
// 0.08 raid chance, 0 in storm, x1.5 in summer, skipped if lastRaid < 3
// days. The three-tier outcome (decisive capture, loot, repel) is
// resolved by comparing pirateStrength to targetStrength.
func (m *Manager) processPirateRaids(worldTime int64, season calendar.Season, weather string) []model.LogEntry {
	if weather == "storm" {
		return nil
	}
	chance := 0.08
	if season == calendar.SeasonSummer {
		chance *= 1.5
	}

	var logs []model.LogEntry
	for _, id := range m.World.Pirates.Ids() {
		fleet, _ := m.World.Pirates.Get(id)
		if fleet.Promoted {
			continue
		}
		if worldTime-fleet.LastRaid < raidCooldownHours && fleet.LastRaid != 0 {
			continue
		}
		if !m.Rng.Chance(chance) {
			continue
		}
		target := m.pickRaidTarget(id)
		if target == nil {
			continue
		}
		fleet.LastRaid = worldTime
		logs = append(logs, m.resolveRaid(fleet, target, worldTime)...)
	}
	return logs
}

func (m *Manager) pickRaidTarget(pirateFleetID string) *model.Ship {
	var candidates []*model.Ship
	for _, id := range m.World.Ships.Ids() {
		ship, _ := m.World.Ships.Get(id)
		if ship.Status != model.ShipAtSea {
			continue
		}
		if m.isPirateShip(id) {
			continue
		}
		candidates = append(candidates, ship)
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

func (m *Manager) resolveRaid(fleet *model.PirateFleet, target *model.Ship, worldTime int64) []model.LogEntry {
	ps := pirateStrength(fleet)
	ts := targetStrength(target)

	var note string
	switch {
	case ps >= ts*1.5:
		target.Status = model.ShipShipwrecked
		fleet.Notoriety += 10
		fleet.Bounty += 500
		note = fleet.Name + " captures " + target.Name + " outright"
	case ps >= ts*0.75:
		target.AdjustCondition(-30)
		target.Cargo = make(map[string]int)
		note = fleet.Name + " loots " + target.Name + " and leaves it adrift"
	default:
		fleet.Crew -= fleet.Crew / 5
		if fleet.Crew < 0 {
			fleet.Crew = 0
		}
		note = target.Name + "'s crew repels " + fleet.Name
	}

	return []model.LogEntry{m.compose(worldTime, target.CurrentLocation, note)}
}

// processStorms implements spec.md §4.9's storm bullet: per at-sea ship,
// probability 0.2 of storm effect; survival probability =
// seaworthiness*condition/100; failure wrecks, success costs condition
// and delays arrival 12h.
func (m *Manager) processStorms(worldTime int64, weather string) []model.LogEntry {
	var logs []model.LogEntry
	for _, id := range m.World.Ships.Ids() {
		ship, _ := m.World.Ships.Get(id)
		if ship.Status != model.ShipAtSea {
			continue
		}
		if !m.Rng.Chance(0.2) {
			continue
		}
		cfg, ok := m.Tables.ShipTypes[ship.Type]
		seaworthy := 0.7
		if ok {
			seaworthy = cfg.Seaworthiness
		}
		survival := seaworthy * (float64(ship.Condition) / 100)
		if !m.Rng.Chance(survival) {
			ship.Status = model.ShipShipwrecked
			m.State.Naval.Wrecks = append(m.State.Naval.Wrecks, ship.ID)
			logs = append(logs, m.compose(worldTime, ship.CurrentLocation, ship.Name+" is lost to a storm"))
			continue
		}
		ship.AdjustCondition(-(20 + m.Rng.Int(21)))
		ship.ArrivesAt += 12
		logs = append(logs, m.compose(worldTime, ship.CurrentLocation, ship.Name+" weathers a storm, delayed"))
	}
	return logs
}

// processSeaMonsterSighting implements spec.md §4.9's "sea-monster
// sighting: probability 0.03 per day" as a rumor, not a combat
// encounter — the spec names only the sighting, not a resolution.
func (m *Manager) processSeaMonsterSighting(worldTime int64) []model.LogEntry {
	if !m.Rng.Chance(0.03) {
		return nil
	}
	rumor := &model.Rumor{
		ID:        m.Rng.UID("rumor"),
		Kind:      "sea-monster",
		Text:      "a sea monster is sighted far from any shore",
		Freshness: 7,
	}
	m.World.ActiveRumors.Put(rumor.ID, rumor)
	return []model.LogEntry{m.compose(worldTime, "", rumor.Text)}
}
