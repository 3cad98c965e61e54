package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealCalendar_Derive_Season(t *testing.T) {
	tests := []struct {
		name   string
		month  time.Month
		season Season
	}{
		{"june is summer", time.June, SeasonSummer},
		{"august is summer", time.August, SeasonSummer},
		{"september is autumn", time.September, SeasonAutumn},
		{"november is autumn", time.November, SeasonAutumn},
		{"december is winter", time.December, SeasonWinter},
		{"february is winter", time.February, SeasonWinter},
		{"march is spring", time.March, SeasonSpring},
		{"may is spring", time.May, SeasonSpring},
	}

	rc := RealCalendar{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts := rc.Derive(time.Date(2026, tt.month, 15, 12, 0, 0, 0, time.UTC))
			assert.Equal(t, tt.season, facts.Season)
		})
	}
}

func TestRealCalendar_Derive_MoonPhaseIsStableForSameDay(t *testing.T) {
	rc := RealCalendar{}
	a := rc.Derive(time.Date(2026, 7, 30, 1, 0, 0, 0, time.UTC))
	b := rc.Derive(time.Date(2026, 7, 30, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, a.Moon, b.Moon)
}

func TestRealCalendar_IsNewDay(t *testing.T) {
	rc := RealCalendar{}
	sameDay := rc.IsNewDay(
		time.Date(2026, 7, 30, 1, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 30, 23, 0, 0, 0, time.UTC),
	)
	assert.False(t, sameDay)

	crossesMidnight := rc.IsNewDay(
		time.Date(2026, 7, 30, 23, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC),
	)
	assert.True(t, crossesMidnight)

	crossesYearBoundary := rc.IsNewDay(
		time.Date(2026, 12, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
	)
	assert.True(t, crossesYearBoundary)
}

func TestFantasyCalendar_Derive_UsesRealMoonAndSetsSeason(t *testing.T) {
	fc := DefaultFantasyCalendar()
	rc := RealCalendar{}
	instant := time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)
	facts := fc.Derive(instant)
	real := rc.Derive(instant)
	assert.Equal(t, real.Moon, facts.Moon)
	assert.NotEmpty(t, facts.Season)
}

func TestFantasyCalendar_IsNewDay_MatchesReal(t *testing.T) {
	fc := DefaultFantasyCalendar()
	prev := time.Date(2026, 7, 30, 23, 0, 0, 0, time.UTC)
	next := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)
	assert.True(t, fc.IsNewDay(prev, next))
}
