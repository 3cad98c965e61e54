package travel

import (
	"strings"

	"github.com/worldforge/sim/backend/internal/consequence"
	"github.com/worldforge/sim/backend/internal/constants"
	"github.com/worldforge/sim/backend/internal/content"
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/prose"
	"github.com/worldforge/sim/backend/internal/world"
	"github.com/worldforge/sim/backend/internal/worldrand"
)

// Reaction is the encountered creatures' disposition (spec.md §4.6).
type Reaction string

const (
	ReactionFriendly Reaction = "friendly"
	ReactionCautious Reaction = "cautious"
	ReactionHostile  Reaction = "hostile"
)

// Outcome is the resolution of a hostile encounter (spec.md §4.6).
type Outcome string

const (
	OutcomeVictory Outcome = "victory"
	OutcomeDefeat  Outcome = "defeat"
	OutcomeFlight  Outcome = "flight"
)

// Result is everything one encounter roll produced; Log is always
// populated when Happened is true.
type Result struct {
	Happened  bool
	Discovery bool
	Reaction  Reaction
	Outcome   Outcome
	XPAwarded int
	PartyKilled bool
	Log       model.LogEntry
}

// baseOdds is the per-hour encounter chance table (spec.md §4.6: "road
// 1/12, clear 1/8, forest 1/6, hills 1/6, mountains 1/5, swamp 1/5,
// desert 1/6").
func baseOdds(t model.Terrain) float64 {
	switch t {
	case model.TerrainRoad:
		return 1.0 / 12.0
	case model.TerrainClear:
		return 1.0 / 8.0
	case model.TerrainForest, model.TerrainHills:
		return 1.0 / 6.0
	case model.TerrainMountains, model.TerrainSwamp:
		return 1.0 / 5.0
	case model.TerrainDesert:
		return 1.0 / 6.0
	default:
		return 1.0 / 8.0
	}
}

// Encounters owns the dependencies every encounter roll needs: the
// content tables its creature picks and archetype-agnostic prose draw
// from, the composer for log text, and the consequence queue a
// story-escalating victory may enqueue onto.
type Encounters struct {
	Tables   *content.Tables
	Composer *prose.Composer
	Queue    *consequence.Queue
	Dungeons *world.Registry[*model.Dungeon]
	Seed     string
}

// NewEncounters wires an Encounters resolver.
func NewEncounters(tables *content.Tables, composer *prose.Composer, queue *consequence.Queue, dungeons *world.Registry[*model.Dungeon], seed string) *Encounters {
	return &Encounters{Tables: tables, Composer: composer, Queue: queue, Dungeons: dungeons, Seed: seed}
}

// Resolve runs one hour's encounter roll for a travelling party (spec.md
// §4.6's maybeEncounter, generalized to also cover the 0.05 non-combat
// discovery branch and the hostile outcome table). Returns a nil Result
// when nothing happens this hour.
func (en *Encounters) Resolve(
	rng *worldrand.Rng,
	party *model.Party,
	partyState *model.PartyState,
	terrain model.Terrain,
	hour int,
	weather *content.WeatherEffect,
	fullMoon bool,
	alwaysHostile bool,
	worldTime int64,
) *Result {
	odds := baseOdds(terrain)
	if terrain != model.TerrainRoad && (hour < 6 || hour >= 18) {
		odds *= constants.EncounterNightMultiplier
	}
	if weather != nil && weather.EncounterChanceMod > 0 {
		odds *= weather.EncounterChanceMod
	}
	if fullMoon {
		odds *= constants.EncounterFullMoonMultiplier
	}

	if !rng.Chance(odds) {
		if !rng.Chance(constants.NonCombatDiscoveryChance) {
			return nil
		}
		return en.resolveDiscovery(rng, party, worldTime)
	}

	creatureName := en.pickCreature(rng, terrain)
	reaction := en.rollReaction(rng, alwaysHostile)

	result := &Result{Happened: true, Reaction: reaction}
	switch reaction {
	case ReactionFriendly:
		result.Log = en.compose(rng, party, worldTime, map[string]string{"note": "a " + creatureName + " approaches without hostility"})
		return result
	case ReactionCautious:
		result.Log = en.compose(rng, party, worldTime, map[string]string{"note": "a wary " + creatureName + " keeps its distance"})
		return result
	}

	return en.resolveHostile(rng, party, partyState, creatureName, worldTime)
}

func (en *Encounters) pickCreature(rng *worldrand.Rng, terrain model.Terrain) string {
	entries := en.Tables.CreaturesByTerrain[string(terrain)]
	if len(entries) == 0 {
		return "creature"
	}
	totalWeight := 0
	for _, e := range entries {
		totalWeight += e.Weight
	}
	if totalWeight <= 0 {
		return entries[0].Name
	}
	roll := rng.Int(totalWeight)
	running := 0
	for _, e := range entries {
		running += e.Weight
		if roll < running {
			return e.Name
		}
	}
	return entries[len(entries)-1].Name
}

// rollReaction implements spec.md §4.6's "2 + rng(6) + rng(6); >=10
// friendly, >=6 cautious, else hostile", with alwaysHostile forcing
// hostile regardless of the roll.
func (en *Encounters) rollReaction(rng *worldrand.Rng, alwaysHostile bool) Reaction {
	if alwaysHostile {
		return ReactionHostile
	}
	roll := 2 + rng.Int(6) + rng.Int(6)
	switch {
	case roll >= constants.EncounterReactionFriendlyThreshold:
		return ReactionFriendly
	case roll >= constants.EncounterReactionCautiousThreshold:
		return ReactionCautious
	default:
		return ReactionHostile
	}
}

// partyStrength implements spec.md §4.6's hostile-outcome formula:
// "0.6 + fame*0.02 + arcaneBonus + divineBonus + thiefBonus +
// (avgLevel-1)*0.05".
func partyStrength(party *model.Party) float64 {
	strength := 0.6 + float64(party.Fame)*0.02
	if len(party.Members) > 0 {
		totalLevel := 0
		for _, m := range party.Members {
			totalLevel += m.Level
			strength += classBonus(m.Class)
		}
		avgLevel := float64(totalLevel) / float64(len(party.Members))
		strength += (avgLevel - 1) * 0.05
	}
	return strength
}

func (en *Encounters) resolveHostile(rng *worldrand.Rng, party *model.Party, partyState *model.PartyState, creatureName string, worldTime int64) *Result {
	strength := partyStrength(party)
	r := rng.Next()

	result := &Result{Happened: true, Reaction: ReactionHostile}

	switch {
	case r < strength:
		result.Outcome = OutcomeVictory
		xp := constants.EncounterVictoryXPBase + rng.Int(constants.EncounterVictoryXPRange)
		result.XPAwarded = xp
		party.XP += xp
		party.AdjustFame(1)
		if partyState.Vendetta != "" && partyState.Vendetta == creatureName {
			partyState.ClearVendetta(creatureName)
		}
		named, horde := classifyEscalation(rng, creatureName)
		if named || horde {
			en.escalate(creatureName, worldTime)
		}
		result.Log = en.compose(rng, party, worldTime, map[string]string{"note": "the party defeats the " + creatureName})
	case r < strength+constants.HostileFleeWindow:
		result.Outcome = OutcomeDefeat
		party.Wounded = true
		if rng.Chance(constants.EncounterDefeatDeathChance) {
			result.PartyKilled = true
		}
		party.AdjustFame(-1)
		result.Log = en.compose(rng, party, worldTime, map[string]string{"note": "the party is defeated by the " + creatureName})
	default:
		result.Outcome = OutcomeFlight
		party.Fatigue += 2
		result.Log = en.compose(rng, party, worldTime, map[string]string{"note": "the party flees the " + creatureName})
	}
	return result
}

// classifyEscalation decides whether a victorious encounter should flag
// storyEscalation (spec.md §4.6: "named or horde-sized victorious
// encounters"). Neither "named" nor "horde-sized" is defined further by
// spec.md; resolved here as: a title-bearing creature name counts as
// named, else a 1-in-6 chance stands in for a horde-sized pack.
func classifyEscalation(rng *worldrand.Rng, creatureName string) (named, horde bool) {
	for _, title := range []string{"Chief", "Lord", "Captain", "Witch", "Warlord", "King", "Queen"} {
		if strings.Contains(creatureName, title) {
			return true, false
		}
	}
	return false, rng.Chance(1.0 / 6.0)
}

func (en *Encounters) escalate(creatureName string, worldTime int64) {
	en.Queue.Enqueue(&model.ConsequenceEntry{
		Tag:          model.ConsequenceSpawnAntagonist,
		DueTurnIndex: int(worldTime) + 24,
		Priority:     2,
		Data:         model.ConsequenceData{Archetype: model.ArchetypeBanditChief, Territory: creatureName},
	})
}

// resolveDiscovery implements spec.md §4.6's non-combat discovery
// branch: "procedural landmark or ruin, with persistence in the world".
// The discovered site is recorded as a small model.Dungeon so later
// ticks (and other parties) can find and explore it — the nearest
// spec-named persistent site entity, rather than inventing a new one.
func (en *Encounters) resolveDiscovery(rng *worldrand.Rng, party *model.Party, worldTime int64) *Result {
	name := "an unmarked ruin"
	if len(en.Tables.PlacePool) > 0 {
		if idx, err := rng.PickIndex(len(en.Tables.PlacePool)); err == nil {
			name = en.Tables.PlacePool[idx]
		}
	}
	if en.Dungeons != nil {
		id := rng.UID("site")
		en.Dungeons.Put(id, &model.Dungeon{
			ID:     id,
			Name:   name,
			Coord:  party.Location,
			Depth:  1,
			Danger: rng.Range(1, 3),
			Rooms:  rng.Range(2, 6),
		})
	}
	return &Result{
		Happened:  true,
		Discovery: true,
		Log:       en.compose(rng, party, worldTime, map[string]string{"note": "the party discovers " + name}),
	}
}

func (en *Encounters) compose(rng *worldrand.Rng, party *model.Party, worldTime int64, extra map[string]string) model.LogEntry {
	comp := en.Composer.Compose(rng, prose.Context{
		Category: model.LogCategoryTravel,
		Location: party.Location,
		Actors:   []string{party.ID},
		Extra:    extra,
	})
	loc := party.Location
	return model.LogEntry{
		Category:  model.LogCategoryTravel,
		Summary:   comp.Summary,
		Details:   comp.Details,
		Location:  &loc,
		Actors:    []string{party.ID},
		WorldTime: worldTime,
		Seed:      en.Seed,
	}
}
