package calendar

// Holiday is a fixed-date annual observance. Grounded on spec.md §9's
// "Global mutable state (FESTIVALS, HOLIDAYS, ...)" note: these are
// injected as a read-only configuration struct at construction rather
// than module-level constants.
type Holiday struct {
	Name        string
	Month       int
	Day         int
	SettlementMoodBonus int
}

// Almanac is the calendar's injected holiday/festival table.
type Almanac struct {
	Holidays []Holiday
}

// On returns the holidays that fall on the given month/day, if any.
func (a Almanac) On(month, day int) []Holiday {
	var out []Holiday
	for _, h := range a.Holidays {
		if h.Month == month && h.Day == day {
			out = append(out, h)
		}
	}
	return out
}

// DefaultAlmanac returns a small sample set of annual observances spread
// across the seasons, sufficient to exercise holiday-lookup code paths.
func DefaultAlmanac() Almanac {
	return Almanac{Holidays: []Holiday{
		{Name: "Thawfest", Month: 3, Day: 20, SettlementMoodBonus: 1},
		{Name: "Midsummer Lantern Night", Month: 6, Day: 21, SettlementMoodBonus: 2},
		{Name: "Harvestide", Month: 9, Day: 22, SettlementMoodBonus: 1},
		{Name: "Longest Dark", Month: 12, Day: 21, SettlementMoodBonus: -1},
	}}
}
