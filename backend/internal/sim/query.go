package sim

import "github.com/worldforge/sim/backend/internal/model"

// EventFilter is the concrete shape SPEC_FULL.md gives spec.md §6's
// otherwise-abstract queryEvents filter parameter: category, a hex-radius
// location window, actor id, and a worldTime range. Every field is
// optional; a zero-value EventFilter matches every entry in the log.
type EventFilter struct {
	Category  model.LogCategory
	Center    *model.HexCoord
	Radius    int
	ActorID   string
	FromWorld int64
	ToWorld   int64 // 0 means "no upper bound"
}

// QueryEvents returns every entry in the handle's durable log matching
// filter, in chronological order. It never mutates the log.
func (h *SimHandle) QueryEvents(filter EventFilter) []model.LogEntry {
	var out []model.LogEntry
	for _, entry := range h.Logs {
		if !filter.matches(entry) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func (f EventFilter) matches(entry model.LogEntry) bool {
	if f.Category != "" && entry.Category != f.Category {
		return false
	}
	if f.ActorID != "" && !containsActor(entry.Actors, f.ActorID) {
		return false
	}
	if entry.WorldTime < f.FromWorld {
		return false
	}
	if f.ToWorld > 0 && entry.WorldTime > f.ToWorld {
		return false
	}
	if f.Center != nil {
		if entry.Location == nil {
			return false
		}
		if entry.Location.Distance(*f.Center) > f.Radius {
			return false
		}
	}
	return true
}

func containsActor(actors []string, id string) bool {
	for _, a := range actors {
		if a == id {
			return true
		}
	}
	return false
}
