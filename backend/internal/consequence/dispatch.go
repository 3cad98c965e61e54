package consequence

import (
	"fmt"

	"github.com/worldforge/sim/backend/internal/model"
	apperrors "github.com/worldforge/sim/backend/pkg/errors"
	"github.com/worldforge/sim/backend/pkg/logger"
)

// Handler mutates world state in response to a dispatched consequence
// entry, returning any log entries it produces.
type Handler func(entry *model.ConsequenceEntry) ([]model.LogEntry, error)

// Dispatcher is the total function spec.md §4.3 requires: every tag maps
// to exactly one handler. Debug builds treat an unregistered tag as
// fatal; release builds drop the entry and log a warning, leaving state
// unchanged (spec.md §4.3: "unknown tags are fatal in debug and
// dropped-with-warn in release (state unchanged)").
type Dispatcher struct {
	handlers map[model.ConsequenceTag]Handler
	debug    bool
	log      *logger.LoggerV2
}

// NewDispatcher constructs an empty Dispatcher. debug selects the
// fatal-vs-warn behavior for unregistered tags; log receives the
// release-mode warning.
func NewDispatcher(debug bool, log *logger.LoggerV2) *Dispatcher {
	return &Dispatcher{handlers: make(map[model.ConsequenceTag]Handler), debug: debug, log: log}
}

// Register binds a handler to tag. Registering the same tag twice
// replaces the previous handler.
func (d *Dispatcher) Register(tag model.ConsequenceTag, h Handler) {
	d.handlers[tag] = h
}

// Dispatch routes entry to its registered handler. A stale entry (e.g.
// targeting an antagonist already dead) is expected to no-op inside its
// own handler — Dispatch itself only enforces tag-routing, not staleness.
func (d *Dispatcher) Dispatch(entry *model.ConsequenceEntry) ([]model.LogEntry, error) {
	h, ok := d.handlers[entry.Tag]
	if !ok {
		if d.debug {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrQueueDispatchUnknown, entry.Tag)
		}
		if d.log != nil {
			d.log.Warn().Str("tag", string(entry.Tag)).Str("entryId", entry.ID).
				Msg("consequence: no handler registered for tag, dropping")
		}
		return nil, nil
	}
	return h(entry)
}
