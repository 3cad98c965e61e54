// Package sim implements spec.md §6's Runtime API: NewSimulation,
// Advance, Snapshot, Restore, QueryEvents. Grounded directly on spec.md
// §6 and §8 scenario 1 (the "seed alpha, archetype Standard" worked
// example); the teacher's only settlement/world-generation precedent
// (internal/services/settlement_generator.go) calls out to an LLM to
// invent content, which the no-AI non-goal rules out, so genesis here is
// original procedural construction in the same worldrand-driven,
// deterministic style every other from-scratch engine package in this
// module already follows.
package sim

import (
	"fmt"
	"sort"

	"github.com/worldforge/sim/backend/internal/constants"
	"github.com/worldforge/sim/backend/internal/content"
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/naval"
	"github.com/worldforge/sim/backend/internal/world"
	"github.com/worldforge/sim/backend/internal/worldrand"
)

// genesisConfig scales world construction by archetype. spec.md names
// "archetype" as a newSimulation parameter but gives it no concrete
// shape; these three are the module's own choice, picked to exercise
// every registry (settlements, dungeons, parties, NPCs, factions,
// antagonists, ships) regardless of which is chosen.
type genesisConfig struct {
	GridRadius      int
	SettlementCount int
	DungeonCount    int
	PartyCount      int
	NPCCount        int
	FactionCount    int
	AntagonistCount int
	PortFraction    float64 // chance a coastal settlement also becomes a port
	ShipsPerPort    int
}

var archetypes = map[string]genesisConfig{
	"Standard": {
		GridRadius: 6, SettlementCount: 5, DungeonCount: 4, PartyCount: 2,
		NPCCount: 10, FactionCount: 2, AntagonistCount: 2,
		PortFraction: 0.5, ShipsPerPort: 1,
	},
	"Frontier": {
		GridRadius: 8, SettlementCount: 3, DungeonCount: 7, PartyCount: 1,
		NPCCount: 6, FactionCount: 1, AntagonistCount: 3,
		PortFraction: 0.25, ShipsPerPort: 1,
	},
	"Maritime": {
		GridRadius: 7, SettlementCount: 6, DungeonCount: 3, PartyCount: 2,
		NPCCount: 10, FactionCount: 2, AntagonistCount: 1,
		PortFraction: 0.8, ShipsPerPort: 2,
	},
}

// archetypeConfig resolves an archetype name to its genesisConfig,
// falling back to "Standard" for any name this module doesn't define —
// spec.md §6 treats archetype as an opaque companion-chosen label, not a
// closed enum the engine must reject unknown values from.
func archetypeConfig(archetype string) genesisConfig {
	if cfg, ok := archetypes[archetype]; ok {
		return cfg
	}
	return archetypes["Standard"]
}

var classPool = []string{"Fighter", "Rogue", "Wizard", "Cleric", "Ranger", "Paladin"}

var factionFocusPool = []string{"trade", "faith", "war", "shadow", "lore"}

// generateWorld builds a fresh World/State pair for a named archetype.
// It is the only place in the engine that invents entities rather than
// reacting to ticks; every id is minted through rng.UID so two runs of
// the same seed produce an identical world (spec.md invariant 1, §4.1).
func generateWorld(rng *worldrand.Rng, tables *content.Tables, archetype string) (*world.World, *world.State) {
	cfg := archetypeConfig(archetype)
	w := world.NewWorld()
	st := world.NewState(constants.WorldHistoryTail, constants.NPCMemoryCap)

	hexes := generateHexGrid(w, rng, cfg.GridRadius)
	settlementIDs := generateSettlements(w, rng, tables, cfg, hexes)
	generateDungeons(w, rng, tables, cfg, hexes)
	generateParties(w, rng, tables, cfg, settlementIDs)
	generateNPCs(w, rng, tables, cfg, settlementIDs)
	generateFactions(w, st, rng, tables, cfg, settlementIDs)
	generateAntagonists(w, rng, tables, cfg, settlementIDs)

	return w, st
}

// generateHexGrid fills every axial coordinate within radius of the
// origin, banding terrain by distance: the outer two rings are ocean and
// coastal (so the naval subsystem always has a coastline to work with),
// the interior is a weighted mix of land terrains. Returns the
// coordinates in deterministic (q, then r) order for downstream
// placement passes to iterate over.
func generateHexGrid(w *world.World, rng *worldrand.Rng, radius int) []model.HexCoord {
	interiorTerrains := []model.Terrain{
		model.TerrainClear, model.TerrainClear, model.TerrainForest,
		model.TerrainHills, model.TerrainMountains, model.TerrainSwamp,
		model.TerrainDesert, model.TerrainRiver,
	}

	var coords []model.HexCoord
	for q := -radius; q <= radius; q++ {
		rMin, rMax := -radius, radius
		if q < 0 {
			rMin = -radius - q
		}
		if q > 0 {
			rMax = radius - q
		}
		for r := rMin; r <= rMax; r++ {
			coords = append(coords, model.HexCoord{Q: q, R: r})
		}
	}

	for _, coord := range coords {
		dist := coord.Distance(model.HexCoord{})
		var terrain model.Terrain
		switch {
		case dist == radius:
			terrain = model.TerrainOcean
		case dist == radius-1:
			terrain = model.TerrainCoastal
		default:
			pick, err := rng.PickIndex(len(interiorTerrains))
			if err != nil {
				terrain = model.TerrainClear
			} else {
				terrain = interiorTerrains[pick]
			}
		}
		w.Hexes.Put(fmt.Sprintf("%d,%d", coord.Q, coord.R), &model.HexTile{Coord: coord, Terrain: terrain})
	}
	return coords
}

func tilesByTerrain(hexes []model.HexCoord, w *world.World, wanted map[model.Terrain]bool) []model.HexCoord {
	var out []model.HexCoord
	for _, c := range hexes {
		tile, ok := w.HexAt(c)
		if ok && wanted[tile.Terrain] {
			out = append(out, c)
		}
	}
	return out
}

// generateSettlements places cfg.SettlementCount settlements, picking
// uniformly among coastal tiles and clear/forest/hills tiles together;
// only coastal settlements can become ports (spec.md §4.9 needs at least
// one port pair to generate a sea route).
func generateSettlements(w *world.World, rng *worldrand.Rng, tables *content.Tables, cfg genesisConfig, hexes []model.HexCoord) []string {
	coastal := tilesByTerrain(hexes, w, map[model.Terrain]bool{model.TerrainCoastal: true})
	inland := tilesByTerrain(hexes, w, map[model.Terrain]bool{
		model.TerrainClear: true, model.TerrainForest: true, model.TerrainHills: true,
	})

	names := rng.ShuffleStrings(append([]string(nil), tables.NamePool...))
	var candidates []model.HexCoord
	candidates = append(candidates, coastal...)
	candidates = append(candidates, inland...)

	var ids []string
	used := map[model.HexCoord]bool{}
	for i := 0; i < cfg.SettlementCount && len(candidates) > 0; i++ {
		idx, err := rng.PickIndex(len(candidates))
		if err != nil {
			break
		}
		coord := candidates[idx]
		candidates = append(candidates[:idx], candidates[idx+1:]...)
		if used[coord] {
			continue
		}
		used[coord] = true

		id := rng.UID("settlement")
		name := names[i%len(names)]
		tile, _ := w.HexAt(coord)
		isCoastal := tile.Terrain == model.TerrainCoastal
		isPort := isCoastal && rng.Chance(cfg.PortFraction)

		population := 200 + rng.Int(4800)
		kind := model.SettlementVillage
		switch {
		case population > 3000:
			kind = model.SettlementCity
		case population > 800:
			kind = model.SettlementTown
		}

		portSize := model.PortSize("")
		if isPort {
			switch {
			case population > 3000:
				portSize = model.PortGreat
			case population > 800:
				portSize = model.PortMajor
			default:
				portSize = model.PortMinor
			}
		}

		settlement := &model.Settlement{
			ID:         id,
			Name:       name,
			Population: population,
			Kind:       kind,
			Coord:      coord,
			Supply:     map[string]int{"food": 100 + rng.Int(100), "timber": 50 + rng.Int(50), "ore": 20 + rng.Int(30)},
			Mood:       rng.Range(-1, 1),
			IsPort:     isPort,
			PortSize:   portSize,
			Shipyard:   isPort && rng.Chance(0.3),
			Lighthouse: isPort && rng.Chance(0.2),
		}
		w.Settlements.Put(id, settlement)
		ids = append(ids, id)
	}
	return ids
}

// generateDungeons places cfg.DungeonCount dungeons on any tile not
// already occupied by a settlement.
func generateDungeons(w *world.World, rng *worldrand.Rng, tables *content.Tables, cfg genesisConfig, hexes []model.HexCoord) {
	occupied := map[model.HexCoord]bool{}
	w.Settlements.Each(func(_ string, s *model.Settlement) bool {
		occupied[s.Coord] = true
		return true
	})

	var candidates []model.HexCoord
	for _, c := range hexes {
		tile, ok := w.HexAt(c)
		if !ok || occupied[c] || tile.Terrain == model.TerrainOcean {
			continue
		}
		candidates = append(candidates, c)
	}

	places := rng.ShuffleStrings(append([]string(nil), tables.PlacePool...))
	for i := 0; i < cfg.DungeonCount && len(candidates) > 0; i++ {
		idx, err := rng.PickIndex(len(candidates))
		if err != nil {
			break
		}
		coord := candidates[idx]
		candidates = append(candidates[:idx], candidates[idx+1:]...)

		id := rng.UID("dungeon")
		name := places[i%len(places)]
		depth := 1 + rng.Int(5)
		dungeon := &model.Dungeon{
			ID:     id,
			Name:   name,
			Coord:  coord,
			Depth:  depth,
			Danger: 1 + rng.Int(10),
			Rooms:  3 + depth*2 + rng.Int(4),
		}
		w.Dungeons.Put(id, dungeon)
	}
}

// generateParties spawns cfg.PartyCount starting adventuring parties,
// each at a randomly chosen settlement with 2-4 members drawn from the
// class pool internal/travel's encounter resolution already recognizes
// (classBonus).
func generateParties(w *world.World, rng *worldrand.Rng, tables *content.Tables, cfg genesisConfig, settlementIDs []string) {
	if len(settlementIDs) == 0 {
		return
	}
	names := rng.ShuffleStrings(append([]string(nil), tables.NamePool...))
	for i := 0; i < cfg.PartyCount; i++ {
		homeIdx, err := rng.PickIndex(len(settlementIDs))
		if err != nil {
			return
		}
		home, _ := w.Settlements.Get(settlementIDs[homeIdx])

		memberCount := 2 + rng.Int(3)
		members := make([]model.PartyMember, 0, memberCount)
		for m := 0; m < memberCount; m++ {
			classIdx, _ := rng.PickIndex(len(classPool))
			level := 1 + rng.Int(3)
			maxHP := 8 + level*6 + rng.Int(6)
			members = append(members, model.PartyMember{
				Name:  names[(i*7+m)%len(names)],
				Class: classPool[classIdx],
				Level: level,
				HP:    maxHP,
				MaxHP: maxHP,
			})
		}

		id := rng.UID("party")
		party := &model.Party{
			ID:       id,
			Name:     names[(i*13)%len(names)] + "'s Company",
			Members:  members,
			Location: home.Coord,
			Status:   model.PartyIdle,
		}
		w.Parties.Put(id, party)
	}
}

var rolePool = []string{"merchant", "guard", "priest", "innkeeper", "blacksmith", "scholar", "ruler"}

// generateNPCs spawns cfg.NPCCount named NPCs distributed across the
// generated settlements, giving memory/agenda and rumor subsystems
// living referents to act on from turn zero.
func generateNPCs(w *world.World, rng *worldrand.Rng, tables *content.Tables, cfg genesisConfig, settlementIDs []string) {
	if len(settlementIDs) == 0 {
		return
	}
	names := rng.ShuffleStrings(append([]string(nil), tables.NamePool...))
	for i := 0; i < cfg.NPCCount; i++ {
		homeIdx, err := rng.PickIndex(len(settlementIDs))
		if err != nil {
			return
		}
		home, _ := w.Settlements.Get(settlementIDs[homeIdx])
		roleIdx, _ := rng.PickIndex(len(rolePool))

		id := rng.UID("npc")
		npc := &model.NPC{
			ID:         id,
			Name:       names[(i*5)%len(names)],
			Role:       rolePool[roleIdx],
			Home:       settlementIDs[homeIdx],
			Location:   home.Coord,
			Reputation: rng.Range(-1, 1),
			Alive:      true,
		}
		w.NPCs.Put(id, npc)
	}
}

// generateFactions spawns cfg.FactionCount factions, each with an
// attitude entry toward every settlement so faction-operations
// resolution has something to read from turn zero.
func generateFactions(w *world.World, st *world.State, rng *worldrand.Rng, tables *content.Tables, cfg genesisConfig, settlementIDs []string) {
	names := rng.ShuffleStrings(append([]string(nil), tables.NamePool...))
	for i := 0; i < cfg.FactionCount; i++ {
		focusIdx, _ := rng.PickIndex(len(factionFocusPool))
		id := rng.UID("faction")
		attitude := make(map[string]int, len(settlementIDs))
		for _, sid := range settlementIDs {
			attitude[sid] = rng.Range(-2, 2)
		}
		faction := &model.Faction{
			ID:       id,
			Name:     names[(i*17)%len(names)] + " " + factionFocusPool[focusIdx],
			Focus:    factionFocusPool[focusIdx],
			Attitude: attitude,
			Wealth:   500 + rng.Int(1500),
		}
		w.Factions.Put(id, faction)
		fs := st.FactionState(id)
		fs.Power = 20 + rng.Int(30)
		fs.Resources = 100 + rng.Int(200)
		fs.Morale = rng.Range(-2, 2)
	}
}

var epithetPool = []string{"the Grim", "the Unbound", "of the Ashfields", "the Pale", "the Hollow"}
var motivationPool = []string{"conquest", "vengeance", "hunger", "pride", "fear of being forgotten"}
var traitPool = []string{"cunning", "ruthless", "superstitious", "patient", "vain"}
var weaknessPool = []string{"overconfidence", "a blood feud", "a cursed relic", "loyal but brittle followers"}
var antagonistArchetypes = []model.AntagonistArchetype{
	model.ArchetypeBanditChief, model.ArchetypeOrcWarlord, model.ArchetypeDarkWizard,
	model.ArchetypeCultLeader, model.ArchetypeCorruptNoble, model.ArchetypeBeastLord,
}

// generateAntagonists spawns cfg.AntagonistCount recurring threats, each
// anchored to one generated settlement's territory.
func generateAntagonists(w *world.World, rng *worldrand.Rng, tables *content.Tables, cfg genesisConfig, settlementIDs []string) {
	if len(settlementIDs) == 0 {
		return
	}
	names := rng.ShuffleStrings(append([]string(nil), tables.NamePool...))
	for i := 0; i < cfg.AntagonistCount; i++ {
		archIdx, _ := rng.PickIndex(len(antagonistArchetypes))
		territoryIdx, err := rng.PickIndex(len(settlementIDs))
		if err != nil {
			return
		}
		epithetIdx, _ := rng.PickIndex(len(epithetPool))
		motivationIdx, _ := rng.PickIndex(len(motivationPool))
		traitIdx, _ := rng.PickIndex(len(traitPool))
		weaknessIdx, _ := rng.PickIndex(len(weaknessPool))

		id := rng.UID("antagonist")
		antagonist := &model.Antagonist{
			ID:         id,
			Name:       names[(i*23)%len(names)],
			Epithet:    epithetPool[epithetIdx],
			Archetype:  antagonistArchetypes[archIdx],
			Threat:     1 + rng.Int(5),
			Territory:  settlementIDs[territoryIdx],
			Motivation: motivationPool[motivationIdx],
			Notoriety:  rng.Int(3),
			Followers:  rng.Int(20),
			Alive:      true,
			Traits:     []string{traitPool[traitIdx]},
			Weaknesses: []string{weaknessPool[weaknessIdx]},
		}
		w.Antagonists.Put(id, antagonist)
	}
}

// generateNavalLayer seeds cfg.ShipsPerPort docked ships at every port
// settlement and
// calls naval.Manager.GenerateRoutes once, at genesis, per
// naval/routes.go's own contract that routes are generated between all
// port pairs rather than discovered incrementally during ticks.
func generateNavalLayer(w *world.World, navalMgr *naval.Manager, rng *worldrand.Rng, tables *content.Tables, cfg genesisConfig) {
	var portIDs []string
	w.Settlements.Each(func(id string, s *model.Settlement) bool {
		if s.IsPort {
			portIDs = append(portIDs, id)
		}
		return true
	})
	sort.Strings(portIDs)

	shipTypeKeys := sortedShipTypeKeys(tables.ShipTypes)
	for _, portID := range portIDs {
		for n := 0; n < cfg.ShipsPerPort && len(shipTypeKeys) > 0; n++ {
			typeIdx, err := rng.PickIndex(len(shipTypeKeys))
			if err != nil {
				break
			}
			shipType := shipTypeKeys[typeIdx]
			cfgType := tables.ShipTypes[shipType]
			id := rng.UID("ship")
			ship := &model.Ship{
				ID:              id,
				Name:            shipType + " " + id,
				Type:            shipType,
				Owner:           portID,
				Status:          model.ShipDocked,
				HomePort:        portID,
				CurrentLocation: portID,
				Cargo:           make(map[string]int),
				Crew:            cfgType.Crew,
				Marines:         cfgType.Marines,
				Condition:       100,
			}
			w.Ships.Put(id, ship)
		}
	}

	navalMgr.GenerateRoutes()
}

func sortedShipTypeKeys(m map[string]content.ShipTypeConfig) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
