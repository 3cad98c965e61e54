package orchestrator

import (
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/prose"
)

// composeContext builds the prose.Context shape every compose call in
// this package shares: a category, a location, zero or more actors, and
// one free-text note.
func composeContext(category model.LogCategory, loc model.HexCoord, actors []string, note string) prose.Context {
	return prose.Context{
		Category: category,
		Location: loc,
		Actors:   actors,
		Extra:    map[string]string{"note": note},
	}
}
