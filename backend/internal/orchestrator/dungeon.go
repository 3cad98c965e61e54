package orchestrator

import (
	"sort"

	"github.com/worldforge/sim/backend/internal/constants"
	"github.com/worldforge/sim/backend/internal/content"
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/treasure"
	apperrors "github.com/worldforge/sim/backend/pkg/errors"
)

// runExtractions implements spec.md §4.2's "extraction" stage: an idle
// party standing on an uncleared dungeon explores it a little further
// and, on the roll, opens a treasure.Discover (spec.md §4.7's Discovery
// bullet never names its own trigger rate or exploration pace, and
// names no dungeon/party linkage for a multi-trip TreasureExtraction;
// both are resolved here — see DESIGN.md), followed by ticking every
// extraction already in flight.
func (o *Orchestrator) runExtractions(worldTime int64) []model.LogEntry {
	var logs []model.LogEntry
	logs = append(logs, o.exploreDungeons(worldTime)...)
	logs = append(logs, o.tickExtractions(worldTime)...)
	return logs
}

func (o *Orchestrator) exploreDungeons(worldTime int64) []model.LogEntry {
	var logs []model.LogEntry
	for _, partyID := range o.World.Parties.Ids() {
		party, _ := o.World.Parties.Get(partyID)
		if party.Status != model.PartyIdle {
			continue
		}
		dungeon := o.dungeonAt(party.Location)
		if dungeon == nil || dungeon.Cleared {
			continue
		}

		rooms := constants.DungeonExplorationRoomsPerHour
		if rooms > dungeon.Rooms {
			rooms = dungeon.Rooms
		}
		dungeon.Explore(rooms)

		if !o.Rng.Chance(constants.DungeonTreasureChancePerRoom * float64(rooms)) {
			continue
		}
		entry, extractionID, err := o.Treasure.Discover(o.randomTreasureType(), len(party.Members), dungeon.Rooms, o.terrainAt(dungeon.Coord), worldTime, dungeon.Coord, partyID)
		if err != nil {
			// randomTreasureType only picks keys content.Tables.Validate
			// already confirmed exist, so a not-found miss here would be
			// an unexpected drift between the two; anything else isn't
			// recoverable per-party and the orchestrator logs it rather
			// than silently dropping the discovery.
			if !apperrors.IsNotFound(err) && o.Logger != nil {
				o.Logger.Warn().Str("partyId", partyID).Err(err).Msg("orchestrator: treasure discovery failed")
			}
			continue
		}
		logs = append(logs, entry)
		if extractionID == "" {
			continue
		}
		o.linkExtraction(extractionID, partyID, dungeon)
	}
	return logs
}

// linkExtraction fills in the orchestrator-owned bookkeeping fields
// treasure.Manager.Discover leaves blank: which party is hauling the
// hoard, out of which dungeon, to the nearest settlement, and how long
// each trip takes.
func (o *Orchestrator) linkExtraction(extractionID, partyID string, dungeon *model.Dungeon) {
	ext, ok := o.State.Treasure.Extractions[extractionID]
	if !ok {
		return
	}
	settlement := o.nearestSettlement(dungeon.Coord)
	ext.PartyID = partyID
	ext.DungeonID = dungeon.ID
	ext.TripHours = treasure.TripHours(dungeon.Rooms, o.terrainAt(dungeon.Coord))
	if settlement != nil {
		ext.SettlementID = settlement.ID
	}
}

func (o *Orchestrator) tickExtractions(worldTime int64) []model.LogEntry {
	day := dayOf(worldTime)
	var logs []model.LogEntry
	for _, id := range sortedStringKeys(o.State.Treasure.Extractions) {
		ext := o.State.Treasure.Extractions[id]
		if ext.Completed || ext.Abandoned || ext.PartyID == "" {
			continue
		}
		party, ok := o.World.Parties.Get(ext.PartyID)
		if !ok {
			continue
		}
		logs = append(logs, o.Treasure.TickExtraction(ext, party, worldTime, day, ext.TripHours, ext.SettlementID)...)
	}
	return logs
}

func (o *Orchestrator) dungeonAt(coord model.HexCoord) *model.Dungeon {
	var found *model.Dungeon
	o.World.Dungeons.Each(func(_ string, d *model.Dungeon) bool {
		if d.Coord == coord {
			found = d
			return false
		}
		return true
	})
	return found
}

func (o *Orchestrator) terrainAt(coord model.HexCoord) model.Terrain {
	if tile, ok := o.World.HexAt(coord); ok {
		return tile.Terrain
	}
	return model.TerrainClear
}

func (o *Orchestrator) nearestSettlement(coord model.HexCoord) *model.Settlement {
	var nearest *model.Settlement
	best := -1
	o.World.Settlements.Each(func(_ string, s *model.Settlement) bool {
		d := coord.Distance(s.Coord)
		if best == -1 || d < best {
			best = d
			nearest = s
		}
		return true
	})
	return nearest
}

// randomTreasureType picks uniformly among every injected treasure-type
// table rather than hard-coding one of the default content pack's letter
// codes, so the orchestrator stays correct against any Tables
// implementation content.Tables.Validate accepts.
func (o *Orchestrator) randomTreasureType() string {
	keys := sortedTreasureTypeKeysOf(o.Tables.TreasureTypes)
	if len(keys) == 0 {
		return ""
	}
	idx, err := o.Rng.PickIndex(len(keys))
	if err != nil {
		return keys[0]
	}
	return keys[idx]
}

func sortedTreasureTypeKeysOf(m map[string]content.TreasureTypeConfig) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedStringKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
