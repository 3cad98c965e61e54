// Package constants centralizes the simulation's bounded-growth and
// clamping constants (spec.md §3 invariants, §5 "bounded growth"), in the
// same flat typed-const-block style as the teacher's game_constants.go.
package constants

import "time"

// Bounded growth (spec.md §5).
const (
	// WorldHistoryTail is the maximum number of WorldEvent entries retained
	// in the append-only world history (spec.md invariant 8).
	WorldHistoryTail = 200

	// NPCMemoryCap is the maximum number of memories a ReactiveNPC retains;
	// eviction is deterministic by (intensity desc, recency desc)
	// (spec.md invariant 9).
	NPCMemoryCap = 30

	// ExtractionRetentionDays prunes completed/abandoned treasure
	// extractions older than this many in-game days.
	ExtractionRetentionDays = 7

	// TreasureInfluxTrackingDays is how long a settlement keeps a recent
	// treasure influx entry before it is pruned (spec.md §4.7).
	TreasureInfluxTrackingDays = 60
)

// Numeric clamps (spec.md §3 invariant 3, §9 open questions).
const (
	SettlementMoodMin = -5
	SettlementMoodMax = 5

	PartyMoraleMin = -10
	PartyMoraleMax = 10

	NPCReputationMin = -3
	NPCReputationMax = 3

	MemoryIntensityMin = 0
	MemoryIntensityMax = 10

	StoryTensionMin = 0
	StoryTensionMax = 10

	AntagonistNotorietyMin = 0
	AntagonistNotorietyMax = 10

	ArmySuppliesMin = 0
	ArmySuppliesMax = 100

	ArmyMoraleMin = 2
	ArmyMoraleMax = 12

	ShipConditionMin = 0
	ShipConditionMax = 100

	FactionPowerMin = 0
	FactionPowerMax = 100

	RumorFreshnessMin = 0
)

// Coin values, in gold-piece equivalents (spec.md §4.7).
var CoinGoldValue = map[string]float64{
	"cp": 0.01,
	"sp": 0.1,
	"ep": 0.5,
	"gp": 1,
	"pp": 5,
}

// Item weights, in pounds (spec.md §4.7).
const (
	CoinWeight = 0.1
	GemWeight  = 1.0
	JewelryWeight = 10.0
)

// MagicItemWeightByCategory holds per-category magic item weights.
var MagicItemWeightByCategory = map[string]float64{
	"potion":   5,
	"scroll":   1,
	"ring":     1,
	"wand":     5,
	"staff":    40,
	"rod":      20,
	"weapon":   50,
	"armor":    100,
	"misc":     20,
	"artifact": 30,
}

// PartyCarryCapacityPerMember is pounds of carry capacity per party member
// (spec.md §4.7: "partySize · 500").
const PartyCarryCapacityPerMember = 500.0

// Tick orchestrator (spec.md §4.2, §5).
const (
	// TickWallClockSoftCap is the implementation-defined per-tick soft cap
	// (spec.md §5 "cancellation & timeouts"). A tick that exceeds this
	// finishes its current subsystem, logs a system entry, and returns.
	TickWallClockSoftCap = 250 * time.Millisecond

	// MemorySurfaceProbabilityPerNPCPerHour is the per-hour, per-living-NPC
	// chance a memory surfaces as behavior (spec.md §4.5).
	MemorySurfaceProbabilityPerNPCPerHour = 0.01

	// AntagonistActCadenceHours is how often (in hours) each living
	// antagonist is sub-sampled for an act tick (spec.md §4.2: "antagonist
	// actions (sub-sampled)"); weekly cadence per the antagonist subsystem.
	AntagonistActCadenceHours = 24 * 7
)

// SchemaVersion is the simulation-compatibility tag (spec.md §4.2 and
// SPEC_FULL.md §5 "simulation-compatibility tag"). Bump this whenever
// subsystem execution order changes; restore refuses a snapshot whose
// meta.schemaVersion does not match.
const SchemaVersion = "worldforge-sim/v1"

// Travel & encounters (spec.md §4.6). The base travel pace (miles/hour on
// clear terrain, no weather penalty) is an Open Question spec.md leaves
// unspecified; resolved here as the standard fantasy travel-pace figure
// (24 miles/day) the terrain/weather multipliers then scale.
const (
	BasePartyMilesPerHour = 1.0

	NonCombatDiscoveryChance = 0.05

	EncounterReactionFriendlyThreshold = 10
	EncounterReactionCautiousThreshold = 6

	EncounterNightMultiplier    = 1.5
	EncounterFullMoonMultiplier = 1.2

	HostileFleeWindow = 0.25

	EncounterVictoryXPBase  = 100
	EncounterVictoryXPRange = 500

	EncounterDefeatDeathChance = 0.15
)

// War-machine subsystem (spec.md §2 item 13). spec.md names the `Army`
// entity and its battle-relevant fields but, unlike §4.6-§4.9, never
// numbers a dedicated war-machine contract; these figures are resolved
// here at the same granularity spec.md uses for its other subsystems.
const (
	// ArmyMilesPerHour is an army's overland march pace, slower than a
	// party's (BasePartyMilesPerHour) since it hauls supply.
	ArmyMilesPerHour = 0.5

	// ArmySupplyConsumptionPerHour is how many supply points an army
	// burns per hour while marching or besieging.
	ArmySupplyConsumptionPerHour = 1

	// ArmyStarvationMoraleLoss is the morale penalty applied once an
	// army's supplies reach 0.
	ArmyStarvationMoraleLoss = 1

	// ArmySupplyLineDeliveryPerDay is how much supply a connected
	// settlement ships to its army per day, capped by the settlement's
	// own "food" stock.
	ArmySupplyLineDeliveryPerDay = 20

	// SiegeAttritionPerDay is the defense-level damage a siege inflicts
	// on its target settlement each day it continues.
	SiegeAttritionPerDay = 1

	// SiegeSallyChancePerDay is the probability a besieged settlement's
	// garrison sallies to force a battle on a given day rather than
	// waiting out the siege.
	SiegeSallyChancePerDay = 0.2

	// SiegeSurrenderDefenseThreshold is the defense level at or below
	// which a besieged settlement capitulates.
	SiegeSurrenderDefenseThreshold = 0

	// ArmyRetreatMoraleThreshold is the morale at or below which a
	// marching or besieging army breaks off and stands idle where it is.
	ArmyRetreatMoraleThreshold = 2

	// GarrisonStrengthPerDefenseLevel converts a settlement's
	// DefenseLevel into an implicit garrison strength for battle
	// resolution against a besieging army.
	GarrisonStrengthPerDefenseLevel = 15
	GarrisonStrengthPerPopulation   = 0.01
)

// Tick orchestrator: dungeon exploration and faction operations
// resolution (spec.md §4.2's day-rollover bullet "faction operations
// resolution" names no contract of its own; these figures are resolved
// here at the same granularity as the war-machine subsystem's).
const (
	// DungeonExplorationRoomsPerHour is how many rooms an idle party at
	// an uncleared dungeon's hex explores per hour it lingers there.
	DungeonExplorationRoomsPerHour = 1

	// DungeonTreasureChancePerRoom is the chance exploring a room
	// triggers a treasure discovery (spec.md §4.7's Discovery bullet
	// doesn't specify its own trigger rate; the travel subsystem's
	// NonCombatDiscoveryChance is the nearest precedent, reused here).
	DungeonTreasureChancePerRoom = NonCombatDiscoveryChance

	// FactionWarPowerThreshold is the Power a faction needs before it
	// will act on a held CasusBelli by marching an army.
	FactionWarPowerThreshold = 40

	// FactionCasusBelliResolveMagnitude is the cumulative magnitude at
	// which a faction's grievance against another is considered acted
	// upon and is cleared.
	FactionCasusBelliResolveMagnitude = 3

	// FactionPeaceLossesThreshold is the RecentLosses count at which a
	// faction sues for peace with its enemies instead of pursuing them
	// further.
	FactionPeaceLossesThreshold = 3
)
