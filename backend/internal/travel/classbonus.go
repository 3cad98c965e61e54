package travel

import "strings"

// classBonus maps a party member's class string to the encounter-
// strength contribution spec.md §4.6 names but does not define a lookup
// table for ("arcaneBonus + divineBonus + thiefBonus"). Resolved here as
// a small case-insensitive keyword classifier over common fantasy class
// names, mirroring internal/content's archetype-pool lookup style.
func classBonus(class string) float64 {
	lower := strings.ToLower(class)
	switch {
	case strings.Contains(lower, "wizard"), strings.Contains(lower, "sorcer"), strings.Contains(lower, "warlock"):
		return 0.08
	case strings.Contains(lower, "cleric"), strings.Contains(lower, "paladin"), strings.Contains(lower, "druid"):
		return 0.06
	case strings.Contains(lower, "rogue"), strings.Contains(lower, "thief"), strings.Contains(lower, "ranger"):
		return 0.05
	default:
		return 0.0
	}
}
