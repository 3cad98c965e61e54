// Package dice parses and evaluates the dice notation grammar the content
// tables use for treasure, encounter, and extraction rolls: `\d+d\d+(\*\d+)?`
// (spec.md §6 "Content-table contract"). It is grounded on the teacher's
// pkg/dice.Roller, generalized to drop the D&D-specific die-type
// allowlist (content tables may define any number of sides) and to draw
// from the simulation's single seeded worldrand.Rng instead of a
// time-seeded generator, since every roll must be reproducible.
package dice

import (
	"fmt"
	"regexp"
	"strconv"
)

var notationRE = regexp.MustCompile(`^(\d+)d(\d+)(\*(\d+))?$`)

// Source is the minimal random surface a Roller needs. worldrand.Rng
// satisfies it; tests can supply a fixed-sequence fake.
type Source interface {
	Dice(sides int) int
}

// Roller evaluates dice notation against a caller-supplied random source.
type Roller struct {
	rng Source
}

// NewRoller creates a Roller that draws from rng.
func NewRoller(rng Source) *Roller {
	return &Roller{rng: rng}
}

// RollResult is the outcome of evaluating one notation string.
type RollResult struct {
	Dice       []int
	Count      int
	Sides      int
	Multiplier int
	Total      int
}

// Parse validates notation against the grammar without rolling, returning
// the parsed count/sides/multiplier. Used at bootstrap to validate content
// tables before any tick runs (a malformed entry is a ContentTableError,
// spec.md §4.11).
func Parse(notation string) (count, sides, multiplier int, err error) {
	m := notationRE.FindStringSubmatch(notation)
	if m == nil {
		return 0, 0, 0, fmt.Errorf("dice: %q does not match NdM(*K) grammar", notation)
	}
	count, _ = strconv.Atoi(m[1])
	sides, _ = strconv.Atoi(m[2])
	multiplier = 1
	if m[4] != "" {
		multiplier, _ = strconv.Atoi(m[4])
	}
	if count < 1 || sides < 1 {
		return 0, 0, 0, fmt.Errorf("dice: %q has non-positive count or sides", notation)
	}
	return count, sides, multiplier, nil
}

// Roll parses and evaluates notation like "2d6" or "1d20*10".
func (r *Roller) Roll(notation string) (*RollResult, error) {
	count, sides, multiplier, err := Parse(notation)
	if err != nil {
		return nil, err
	}

	result := &RollResult{
		Dice:       make([]int, count),
		Count:      count,
		Sides:      sides,
		Multiplier: multiplier,
	}

	sum := 0
	for i := 0; i < count; i++ {
		roll := r.rng.Dice(sides)
		result.Dice[i] = roll
		sum += roll
	}
	result.Total = sum * multiplier
	return result, nil
}

// RollNotation is a convenience one-shot helper for callers that don't keep
// a Roller around (e.g. one-off content-table bootstrap validation rolls).
func RollNotation(rng Source, notation string) (int, error) {
	res, err := NewRoller(rng).Roll(notation)
	if err != nil {
		return 0, err
	}
	return res.Total, nil
}
