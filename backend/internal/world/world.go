package world

import "github.com/worldforge/sim/backend/internal/model"

// World is the flat-registry aggregate spec.md §6's serialization format
// calls `world { hexes, settlements, dungeons, parties, npcs, factions,
// antagonists, storyThreads, activeRumors, ... }`.
type World struct {
	Hexes        *Registry[*model.HexTile]       `json:"hexes"`
	Settlements  *Registry[*model.Settlement]    `json:"settlements"`
	Dungeons     *Registry[*model.Dungeon]       `json:"dungeons"`
	Parties      *Registry[*model.Party]         `json:"parties"`
	NPCs         *Registry[*model.NPC]           `json:"npcs"`
	Factions     *Registry[*model.Faction]       `json:"factions"`
	Antagonists  *Registry[*model.Antagonist]    `json:"antagonists"`
	StoryThreads *Registry[*model.StoryThread]   `json:"storyThreads"`
	ActiveRumors *Registry[*model.Rumor]         `json:"activeRumors"`
	Armies       *Registry[*model.Army]          `json:"armies"`
	Ships        *Registry[*model.Ship]          `json:"ships"`
	Pirates      *Registry[*model.PirateFleet]   `json:"pirates"`
}

// NewWorld returns an empty World with every registry initialized.
func NewWorld() *World {
	return &World{
		Hexes:        NewRegistry[*model.HexTile](),
		Settlements:  NewRegistry[*model.Settlement](),
		Dungeons:     NewRegistry[*model.Dungeon](),
		Parties:      NewRegistry[*model.Party](),
		NPCs:         NewRegistry[*model.NPC](),
		Factions:     NewRegistry[*model.Faction](),
		Antagonists:  NewRegistry[*model.Antagonist](),
		StoryThreads: NewRegistry[*model.StoryThread](),
		ActiveRumors: NewRegistry[*model.Rumor](),
		Armies:       NewRegistry[*model.Army](),
		Ships:        NewRegistry[*model.Ship](),
		Pirates:      NewRegistry[*model.PirateFleet](),
	}
}

// HexAt returns the tile at coord, if genesis placed one there.
func (w *World) HexAt(coord model.HexCoord) (*model.HexTile, bool) {
	var found *model.HexTile
	var ok bool
	w.Hexes.Each(func(_ string, t *model.HexTile) bool {
		if t.Coord == coord {
			found, ok = t, true
			return false
		}
		return true
	})
	return found, ok
}

// LivingNPCIDs returns the ids of every NPC whose Alive flag is true, in
// registry order (used by memory surfacing and antagonist acts, both of
// which must visit entities in a deterministic order per spec.md §5).
func (w *World) LivingNPCIDs() []string {
	var out []string
	w.NPCs.Each(func(id string, n *model.NPC) bool {
		if n.Alive {
			out = append(out, id)
		}
		return true
	})
	return out
}

// LivingAntagonistIDs returns the ids of every antagonist still alive.
func (w *World) LivingAntagonistIDs() []string {
	var out []string
	w.Antagonists.Each(func(id string, a *model.Antagonist) bool {
		if a.Alive {
			out = append(out, id)
		}
		return true
	})
	return out
}

// NPCsAtLocation returns the ids of living NPCs located at coord, in
// registry order — used by handlers that need to "pick a living NPC at
// that location" (spec.md §4.4.1).
func (w *World) NPCsAtLocation(coord model.HexCoord) []string {
	var out []string
	w.NPCs.Each(func(id string, n *model.NPC) bool {
		if n.Alive && n.Location == coord {
			out = append(out, id)
		}
		return true
	})
	return out
}
