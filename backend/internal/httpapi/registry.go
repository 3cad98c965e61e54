package httpapi

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/worldforge/sim/backend/internal/content"
	"github.com/worldforge/sim/backend/internal/sim"
	"github.com/worldforge/sim/backend/pkg/logger"
)

// run is one server-managed simulation: internal/sim.SimHandle is not
// itself safe for concurrent HTTP requests (spec.md §5: no subsystem
// parallelism — one tick runs at a time), so each run owns a mutex the
// handlers hold for the duration of any call that touches Handle.
type run struct {
	mu        sync.Mutex
	ID        string
	Handle    *sim.SimHandle
	CreatedAt time.Time
}

// registry is the server's set of live runs, keyed by a non-entity
// correlation id (google/uuid, per SPEC_FULL.md's domain-stack table —
// never Rng.UID, which is reserved for in-world entities).
type registry struct {
	mu     sync.RWMutex
	runs   map[string]*run
	tables *content.Tables
	debug  bool
	log    *logger.LoggerV2
}

func newRegistry(tables *content.Tables, debug bool, log *logger.LoggerV2) *registry {
	return &registry{runs: make(map[string]*run), tables: tables, debug: debug, log: log}
}

func (reg *registry) create(seed, archetype string) (*run, error) {
	handle, err := sim.NewSimulation(seed, archetype, reg.tables, reg.debug, reg.log)
	if err != nil {
		return nil, err
	}
	r := &run{ID: uuid.NewString(), Handle: handle, CreatedAt: time.Now().UTC()}
	reg.mu.Lock()
	reg.runs[r.ID] = r
	reg.mu.Unlock()
	return r, nil
}

func (reg *registry) restore(data []byte) (*run, error) {
	handle, err := sim.Restore(data, reg.tables, reg.debug, reg.log)
	if err != nil {
		return nil, err
	}
	r := &run{ID: uuid.NewString(), Handle: handle, CreatedAt: time.Now().UTC()}
	reg.mu.Lock()
	reg.runs[r.ID] = r
	reg.mu.Unlock()
	return r, nil
}

func (reg *registry) get(id string) (*run, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	r, ok := reg.runs[id]
	return r, ok
}

func (reg *registry) delete(id string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.runs, id)
}
