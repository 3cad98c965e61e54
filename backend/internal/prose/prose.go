// Package prose is the deterministic prose composer (spec.md §2 item 5,
// §4.10): given a context and the shared Rng it returns {summary,
// details} by template lookup. No package-level state; every call is a
// pure function of its two arguments, grounded on spec.md §9's "Global
// mutable state" note against module-level template tables.
package prose

import (
	"strings"

	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/worldrand"
)

// TimeOfDay buckets an hour-of-day for template selection.
type TimeOfDay string

const (
	TimeDawn      TimeOfDay = "dawn"
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeDusk      TimeOfDay = "dusk"
	TimeNight     TimeOfDay = "night"
)

// TimeOfDayForHour maps an hour-of-day (0-23) to its TimeOfDay bucket.
func TimeOfDayForHour(hour int) TimeOfDay {
	h := ((hour % 24) + 24) % 24
	switch {
	case h >= 5 && h < 7:
		return TimeDawn
	case h >= 7 && h < 12:
		return TimeMorning
	case h >= 12 && h < 17:
		return TimeAfternoon
	case h >= 17 && h < 20:
		return TimeDusk
	default:
		return TimeNight
	}
}

// Context is the set of facts a template draws substitutions from.
// Extra carries event-specific named values (e.g. "damage", "loot")
// that a particular category's templates reference; callers only need
// to populate the Extra keys their chosen category's templates use.
type Context struct {
	Category       model.LogCategory
	TimeOfDay      TimeOfDay
	Terrain        model.Terrain
	SettlementName string
	SettlementMood int
	Weather        string
	Location       model.HexCoord
	Actors         []string
	Extra          map[string]string
}

// Composition is the {summary, details} pair a Compose call returns.
type Composition struct {
	Summary string
	Details string
}

// Template is one summary/details pair with `{name}`-style placeholders.
type Template struct {
	Summary string
	Details string
}

// Composer holds the injected template pools, keyed by log category.
// Grounded on spec.md §9's "inject as read-only configuration structs"
// note — a Composer is constructed once and never mutated afterward.
type Composer struct {
	Templates map[model.LogCategory][]Template
}

// NewComposer constructs a Composer bound to a template set.
func NewComposer(templates map[model.LogCategory][]Template) *Composer {
	return &Composer{Templates: templates}
}

// Compose deterministically picks a template for ctx.Category and fills
// its placeholders from ctx. Two calls given an Rng at the same draw
// position and an identical ctx produce an identical Composition.
func (c *Composer) Compose(rng *worldrand.Rng, ctx Context) Composition {
	pool := c.Templates[ctx.Category]
	if len(pool) == 0 {
		return Composition{Summary: fallbackSummary(ctx), Details: ""}
	}
	idx, err := rng.PickIndex(len(pool))
	if err != nil {
		return Composition{Summary: fallbackSummary(ctx), Details: ""}
	}
	tpl := pool[idx]
	subs := substitutions(ctx)
	return Composition{
		Summary: render(tpl.Summary, subs),
		Details: render(tpl.Details, subs),
	}
}

func fallbackSummary(ctx Context) string {
	return "something happened near " + ctx.SettlementName
}

func substitutions(ctx Context) map[string]string {
	subs := map[string]string{
		"timeOfDay":  string(ctx.TimeOfDay),
		"terrain":    string(ctx.Terrain),
		"settlement": ctx.SettlementName,
		"weather":    ctx.Weather,
	}
	if len(ctx.Actors) > 0 {
		subs["actor"] = ctx.Actors[0]
		subs["actors"] = strings.Join(ctx.Actors, ", ")
	}
	for k, v := range ctx.Extra {
		subs[k] = v
	}
	return subs
}

// render replaces every "{key}" occurrence in tpl with subs[key]. A key
// absent from subs is left as a literal empty string — templates are
// trusted content-table input, validated at bootstrap, never user input.
func render(tpl string, subs map[string]string) string {
	if tpl == "" {
		return ""
	}
	var b strings.Builder
	i := 0
	for i < len(tpl) {
		open := strings.IndexByte(tpl[i:], '{')
		if open < 0 {
			b.WriteString(tpl[i:])
			break
		}
		b.WriteString(tpl[i : i+open])
		rest := tpl[i+open+1:]
		close := strings.IndexByte(rest, '}')
		if close < 0 {
			b.WriteString(tpl[i+open:])
			break
		}
		key := rest[:close]
		b.WriteString(subs[key])
		i = i + open + 1 + close + 1
	}
	return b.String()
}
