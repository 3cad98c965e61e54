package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/sim"
	"github.com/worldforge/sim/backend/internal/httpapi/stream"
	apperrors "github.com/worldforge/sim/backend/pkg/errors"
	"github.com/worldforge/sim/backend/pkg/logger"
)

// Server is the httpapi's handler set, wrapping internal/sim's Runtime
// API (newSimulation/advance/snapshot/restore/queryEvents, spec.md §6) for
// HTTP/websocket callers. Construct via New, route via Router.
type Server struct {
	reg    *registry
	hub    *stream.Hub
	vreq   *requestValidator
	log    *logger.LoggerV2
	tm     *TokenManager
	onTick func(TickEvent) // hook for httpapi/jobs wiring; nil-safe
}

// TickEvent is what OnTick's callback receives after a successful advance:
// enough to enqueue a snapshot-export job without the callback needing
// access to the run's SimHandle (which httpapi/jobs' worker must never
// touch directly — see internal/jobs.ExportPayload's doc comment).
type TickEvent struct {
	RunID     string
	Seed      string
	Archetype string
	WorldTime int64
	Entries   []model.LogEntry
	Snapshot  []byte
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		status := appErr.StatusCode
		if status == 0 {
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, appErr)
		return
	}
	writeJSON(w, http.StatusInternalServerError, apperrors.NewInternalError("unexpected error", err))
}

type createRunResponse struct {
	ID        string `json:"id"`
	WorldTime int64  `json:"worldTime"`
}

// handleCreate implements POST /v1/sims (spec.md §6 newSimulation).
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req NewSimulationRequest
	if err := s.vreq.decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	run, err := s.reg.create(req.Seed, req.Archetype)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, createRunResponse{ID: run.ID, WorldTime: run.Handle.WorldTime()})
}

// handleAdvance implements POST /v1/sims/{id}/advance (spec.md §6 advance).
// It is a state-mutating route guarded by TokenManager.RequireBearer.
func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	run, ok := s.lookupRun(w, r)
	if !ok {
		return
	}
	var req AdvanceRequest
	if err := s.vreq.decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	run.mu.Lock()
	entries, err := run.Handle.Advance(req.Hours)
	worldTime := run.Handle.WorldTime()
	var snap []byte
	if err == nil && s.onTick != nil {
		snap, err = run.Handle.Snapshot()
	}
	run.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}

	if s.hub != nil {
		s.hub.Broadcast(stream.Batch{RunID: run.ID, WorldTime: worldTime, Entries: entries})
	}
	if s.onTick != nil {
		s.onTick(TickEvent{
			RunID:     run.ID,
			Seed:      run.Handle.Orch.Seed,
			Archetype: run.Handle.Archetype,
			WorldTime: worldTime,
			Entries:   entries,
			Snapshot:  snap,
		})
	}
	writeJSON(w, http.StatusOK, entries)
}

// handleSnapshot implements GET /v1/sims/{id}/snapshot (spec.md §6 snapshot).
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	run, ok := s.lookupRun(w, r)
	if !ok {
		return
	}
	run.mu.Lock()
	data, err := run.Handle.Snapshot()
	run.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

// handleRestore implements POST /v1/sims/restore (spec.md §6 restore). The
// request body is the raw snapshot document, not JSON-wrapped, matching
// what handleSnapshot emits.
func (s *Server) handleRestore(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, apperrors.NewBadRequestError("could not read request body").WithInternal(err))
		return
	}
	run, err := s.reg.restore(data)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, createRunResponse{ID: run.ID, WorldTime: run.Handle.WorldTime()})
}

// handleEvents implements GET /v1/sims/{id}/events (spec.md §6
// queryEvents), filters per SPEC_FULL.md's supplemented query-filter shape.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	run, ok := s.lookupRun(w, r)
	if !ok {
		return
	}
	filter := sim.EventFilter{
		Category: model.LogCategory(r.URL.Query().Get("category")),
		ActorID:  r.URL.Query().Get("actor"),
	}
	if v := r.URL.Query().Get("fromWorld"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.FromWorld = n
		}
	}
	if v := r.URL.Query().Get("toWorld"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.ToWorld = n
		}
	}

	run.mu.Lock()
	entries := run.Handle.QueryEvents(filter)
	run.mu.Unlock()
	writeJSON(w, http.StatusOK, entries)
}

// handleStream implements GET /v1/sims/{id}/stream: a websocket that
// receives every Batch handleAdvance broadcasts for this run id.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	run, ok := s.lookupRun(w, r)
	if !ok {
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		if s.log != nil {
			s.log.Warn().Err(err).Str("runId", run.ID).Msg("httpapi: websocket upgrade failed")
		}
		return
	}
	s.hub.Join(conn, run.ID)
}

func (s *Server) lookupRun(w http.ResponseWriter, r *http.Request) (*run, bool) {
	id := mux.Vars(r)["id"]
	run, ok := s.reg.get(id)
	if !ok {
		writeError(w, apperrors.NewNotFoundError("simulation "+id))
		return nil, false
	}
	return run, true
}
