// Package calendar derives day/month/season/moon-phase facts from the
// simulation's worldTime instant and resolves holiday/festival lookups
// (spec.md §2 item 4, §4.10). Grounded on spec.md §9's "Time
// representation" design note: the source interleaves a real calendar
// with a 12-month fantasy calendar, so both are modeled here as
// interchangeable implementations of one Calendar interface; the real
// (UTC) calendar is the canonical reference for all worldTime arithmetic
// (SPEC_FULL.md open-question decision), and only it drives day-boundary
// detection in the orchestrator.
package calendar

import "time"

// Season enumerates the four meteorological seasons spec.md §4.10 defines
// by month range (Jun-Aug summer, Sep-Nov autumn, etc.).
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// MoonPhase enumerates the four buckets spec.md §4.10 derives from
// floor(days-since-epoch) mod 30.
type MoonPhase string

const (
	MoonNew     MoonPhase = "new"
	MoonWaxing  MoonPhase = "waxing"
	MoonFull    MoonPhase = "full"
	MoonWaning  MoonPhase = "waning"
)

// DateFacts is the derived calendar state for one worldTime instant.
type DateFacts struct {
	Year      int
	Month     int
	Day       int
	Season    Season
	Moon      MoonPhase
	IsFullMoon bool
}

// Calendar derives DateFacts from a worldTime instant. Implementations
// never hold mutable state; Derive is a pure function of its argument.
type Calendar interface {
	Derive(worldTime time.Time) DateFacts
	// IsNewDay reports whether prev and next fall on different days
	// under this calendar's day boundary. Centralized here rather than
	// compared ad hoc per subsystem (spec.md §9: the source's per-hour
	// UTCDate comparison misfires at year boundaries; the orchestrator
	// must be the single source of truth).
	IsNewDay(prev, next time.Time) bool
}

// RealCalendar is the canonical UTC Gregorian calendar. It is the
// reference implementation all worldTime arithmetic in the orchestrator
// uses (SPEC_FULL.md open-question decision).
type RealCalendar struct{}

// Derive returns the Gregorian date/season/moon-phase facts for t (t is
// converted to UTC first; the simulation never reasons in local time).
func (RealCalendar) Derive(t time.Time) DateFacts {
	u := t.UTC()
	return DateFacts{
		Year:       u.Year(),
		Month:      int(u.Month()),
		Day:        u.Day(),
		Season:     seasonForMonth(int(u.Month())),
		Moon:       moonPhase(u),
		IsFullMoon: moonPhase(u) == MoonFull,
	}
}

// IsNewDay compares UTC calendar dates directly — unambiguous since UTC
// carries no DST transitions.
func (RealCalendar) IsNewDay(prev, next time.Time) bool {
	p, n := prev.UTC(), next.UTC()
	py, pm, pd := p.Date()
	ny, nm, nd := n.Date()
	return py != ny || pm != nm || pd != nd
}

func seasonForMonth(month int) Season {
	switch month {
	case 6, 7, 8:
		return SeasonSummer
	case 9, 10, 11:
		return SeasonAutumn
	case 12, 1, 2:
		return SeasonWinter
	default:
		return SeasonSpring
	}
}

// moonPhase implements spec.md §4.10: "moon phase from
// floor(days-since-epoch) mod 30 with buckets new/waxing/full/waning".
func moonPhase(t time.Time) MoonPhase {
	days := int64(t.Unix() / 86400)
	bucket := ((days % 30) + 30) % 30
	switch {
	case bucket < 7:
		return MoonNew
	case bucket < 15:
		return MoonWaxing
	case bucket < 22:
		return MoonFull
	default:
		return MoonWaning
	}
}

// FantasyMonth names one of the 12 custom months of FantasyCalendar.
type FantasyMonth struct {
	Name        string
	DayCount    int
	SeasonValue Season
}

// FantasyCalendar is a configurable, non-Gregorian 12-month calendar.
// Content seeds choose it instead of RealCalendar when a setting wants
// invented month names; worldTime arithmetic itself is unaffected since
// Derive only relabels the same underlying instant (spec.md §9: the
// real-calendar stays the canonical reference for arithmetic — this
// implementation only changes how that instant is *described*).
type FantasyCalendar struct {
	Months      []FantasyMonth
	EpochOffset time.Duration // applied before deriving day-of-year
}

// Derive maps t onto the fantasy month list by day-of-year. Season is the
// matched month's SeasonValue; the moon phase is taken from RealCalendar
// since it is a physical, not cultural, fact.
func (f FantasyCalendar) Derive(t time.Time) DateFacts {
	u := t.Add(f.EpochOffset).UTC()
	real := RealCalendar{}.Derive(t)
	if len(f.Months) == 0 {
		return real
	}
	dayOfYear := u.YearDay()
	remaining := dayOfYear
	monthIdx := 0
	for i, m := range f.Months {
		if remaining <= m.DayCount {
			monthIdx = i
			break
		}
		remaining -= m.DayCount
		monthIdx = i
	}
	month := f.Months[monthIdx]
	return DateFacts{
		Year:       u.Year(),
		Month:      monthIdx + 1,
		Day:        remaining,
		Season:     month.SeasonValue,
		Moon:       real.Moon,
		IsFullMoon: real.IsFullMoon,
	}
}

// IsNewDay defers to RealCalendar: day-boundary detection is always
// UTC-canonical regardless of which calendar labels the date (SPEC_FULL.md
// open-question decision).
func (f FantasyCalendar) IsNewDay(prev, next time.Time) bool {
	return RealCalendar{}.IsNewDay(prev, next)
}

// DefaultFantasyCalendar returns a 12-month fantasy calendar with
// even 30-day months mapped onto the same seasons as RealCalendar.
func DefaultFantasyCalendar() FantasyCalendar {
	names := []string{
		"Frostwane", "Thawmere", "Greentide", "Bloomrest", "Sunhigh", "Emberlight",
		"Hearthfall", "Duskharvest", "Mournwind", "Rimefall", "Longdark", "Starfall",
	}
	seasons := []Season{
		SeasonWinter, SeasonWinter, SeasonSpring, SeasonSpring, SeasonSummer, SeasonSummer,
		SeasonSummer, SeasonAutumn, SeasonAutumn, SeasonAutumn, SeasonWinter, SeasonWinter,
	}
	months := make([]FantasyMonth, 12)
	for i := range names {
		months[i] = FantasyMonth{Name: names[i], DayCount: 30, SeasonValue: seasons[i]}
	}
	return FantasyCalendar{Months: months}
}
