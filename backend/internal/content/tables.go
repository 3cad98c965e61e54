// Package content defines the injected-configuration interfaces spec.md
// §6 calls the "Content-table contract": monster/treasure regex tables,
// per-terrain creature weights, antagonist archetype pools, weather
// odds, ship configurations, and name/place pools. The engine never
// hard-codes these; it consumes whatever Tables implementation the
// embedding process supplies at construction (spec.md §2 item 3:
// "config-only... injected pools"). DefaultTables returns a small,
// internally-consistent sample set sufficient to run a simulation
// end-to-end and to exercise every engine code path in tests.
package content

import (
	"fmt"

	"github.com/worldforge/sim/backend/pkg/dice"
	apperrors "github.com/worldforge/sim/backend/pkg/errors"
)

// TreasureTypeConfig is one of the 22 treasure-type tables (A-V + Nil)
// named in spec.md §4.7.
type TreasureTypeConfig struct {
	Key             string
	CoinChance      map[string]float64 // coin code -> chance [0,1]
	CoinDice        map[string]string  // coin code -> dice notation
	GemChance       float64
	GemDice         string
	JewelryChance   float64
	JewelryDice     string
	MagicChance     float64
	MagicCount      string // dice notation
	MagicCategories []string
	IsLair          bool
	TypicalValueMin float64
	TypicalValueMax float64
}

// CreatureTableEntry is one weighted creature choice for a terrain's
// encounter table.
type CreatureTableEntry struct {
	Name   string
	Weight int
}

// AntagonistArchetypePool holds the epithet/motivation/trait/weakness/
// action pools for one archetype (spec.md §4.8).
type AntagonistArchetypePool struct {
	Epithets    []string
	Motivations []string
	Traits      []string
	Weaknesses  []string
	Actions     []string
}

// ShipTypeConfig defines one ship class's stats (spec.md §4.9).
type ShipTypeConfig struct {
	Crew          int
	CargoCapacity int
	SpeedMPD      int // miles per day
	Seaworthiness float64
	Cost          int
	Marines       int
}

// WeatherOdds maps a weather condition name to its sampling weight for
// one season.
type WeatherOdds map[string]int

// WeatherEffect defines per-condition modifiers (spec.md §4.10).
type WeatherEffect struct {
	TravelSpeedMod   float64
	EncounterChanceMod float64
	ReducedVisibility bool
	MoodMod          int
	MagicMod         int
}

// Tables is the full content-table contract the engine is constructed
// with. Every field is read-only configuration; mutating it after
// construction is undefined.
type Tables struct {
	MonsterToTreasureType map[string]string // regex pattern -> treasure type key
	TreasureTypes         map[string]TreasureTypeConfig
	CreaturesByTerrain    map[string][]CreatureTableEntry
	Archetypes            map[string]AntagonistArchetypePool
	WeatherOddsBySeason   map[string]WeatherOdds
	WeatherEffects        map[string]WeatherEffect
	ShipTypes             map[string]ShipTypeConfig
	NamePool              []string
	PlacePool             []string
}

// Validate checks that every required table entry is present, per
// spec.md §4.11: "Malformed content table (missing required entry) →
// fatal at bootstrap; never during tick." This must be called once at
// construction, before any tick runs.
func (t *Tables) Validate() error {
	if len(t.TreasureTypes) == 0 {
		return apperrors.NewContentTableError("no treasure type tables configured")
	}
	if len(t.CreaturesByTerrain) == 0 {
		return apperrors.NewContentTableError("no per-terrain creature tables configured")
	}
	if len(t.Archetypes) == 0 {
		return apperrors.NewContentTableError("no antagonist archetype pools configured")
	}
	if len(t.WeatherOddsBySeason) == 0 {
		return apperrors.NewContentTableError("no weather odds configured")
	}
	if len(t.ShipTypes) == 0 {
		return apperrors.NewContentTableError("no ship type configurations")
	}
	if len(t.NamePool) == 0 || len(t.PlacePool) == 0 {
		return apperrors.NewContentTableError("name/place pools must be non-empty")
	}
	for key, tt := range t.TreasureTypes {
		for coin, notation := range tt.CoinDice {
			if _, _, _, err := dice.Parse(notation); err != nil {
				return apperrors.NewContentTableError(fmt.Sprintf("treasure type %q coin %q: %v", key, coin, err))
			}
		}
		if tt.GemDice != "" {
			if _, _, _, err := dice.Parse(tt.GemDice); err != nil {
				return apperrors.NewContentTableError(fmt.Sprintf("treasure type %q gem dice: %v", key, err))
			}
		}
		if tt.JewelryDice != "" {
			if _, _, _, err := dice.Parse(tt.JewelryDice); err != nil {
				return apperrors.NewContentTableError(fmt.Sprintf("treasure type %q jewelry dice: %v", key, err))
			}
		}
	}
	return nil
}
