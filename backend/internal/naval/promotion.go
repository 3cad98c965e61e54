package naval

import (
	"github.com/worldforge/sim/backend/internal/antagonist"
	"github.com/worldforge/sim/backend/internal/model"
)

// pirateAntagonistThreshold implements spec.md §4.9's "pirate promotion:
// notoriety >= 80 graduates to a full antagonist".
const pirateAntagonistThreshold = 80

// PromotePirates checks every pirate fleet's notoriety and, once a fleet
// crosses the threshold, generates a pirate-captain antagonist in its
// territory and retires the fleet from independent pirate-raid rolls
// (its ships remain in the world; future raids are driven by the
// generated antagonist's acts instead).
func (m *Manager) PromotePirates() []model.LogEntry {
	var logs []model.LogEntry
	for _, id := range m.World.Pirates.Ids() {
		fleet, _ := m.World.Pirates.Get(id)
		if fleet.Promoted || fleet.Notoriety < pirateAntagonistThreshold {
			continue
		}
		fleet.Promoted = true
		territory := ""
		if len(fleet.Territory) > 0 {
			territory = fleet.Territory[0]
		}
		ant := antagonist.Generate(m.Rng, m.Tables, model.ArchetypePirateCaptain, territory, 0)
		ant.Name = fleet.Captain
		ant.Treasure += fleet.Bounty
		m.World.Antagonists.Put(ant.ID, ant)
		logs = append(logs, m.compose(0, "", fleet.Captain+" of "+fleet.Name+" becomes a name sailors fear"))
	}
	return logs
}
