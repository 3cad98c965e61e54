package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/worldforge/sim/backend/internal/content"
	"github.com/worldforge/sim/backend/internal/httpapi/stream"
	"github.com/worldforge/sim/backend/pkg/logger"
)

// Options configures New.
type Options struct {
	Tables         *content.Tables
	Debug          bool
	TokenManager   *TokenManager
	AllowedOrigins []string
	Log            *logger.LoggerV2
}

// New builds a Server, its registry, and its websocket hub. Callers own
// starting hub.Run() (Server.Hub().Run in a goroutine) and, eventually,
// shutting it down.
func New(opts Options) *Server {
	return &Server{
		reg:  newRegistry(opts.Tables, opts.Debug, opts.Log),
		hub:  stream.NewHub(opts.Log),
		vreq: newRequestValidator(),
		log:  opts.Log,
		tm:   opts.TokenManager,
	}
}

// Hub exposes the server's websocket hub so cmd/sim's serve subcommand can
// run it and shut it down alongside the HTTP listener.
func (s *Server) Hub() *stream.Hub { return s.hub }

// OnTick registers a callback invoked after every successful advance
// (internal/jobs wires this to enqueue an async snapshot export). Passing
// nil disables the hook; handleAdvance already nil-checks before calling it.
// Setting a non-nil callback makes handleAdvance render one extra snapshot
// per tick to pass along, so leave it nil unless something consumes it.
func (s *Server) OnTick(fn func(TickEvent)) {
	s.onTick = fn
}

// Router builds the full gorilla/mux router for this server: CORS-wrapped,
// with state-mutating routes (advance, restore) behind
// Options.TokenManager.RequireBearer — matching the teacher's
// cmd/server/main.go setupHTTPServer (mux.NewRouter + rs/cors.Handler),
// generalized from the teacher's many campaign routes to spec.md §6's
// five Runtime API operations.
func Router(s *Server, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/v1/sims", s.handleCreate).Methods(http.MethodPost)
	r.HandleFunc("/v1/sims/restore", s.tm.RequireBearer(s.handleRestore)).Methods(http.MethodPost)
	r.HandleFunc("/v1/sims/{id}/advance", s.tm.RequireBearer(s.handleAdvance)).Methods(http.MethodPost)
	r.HandleFunc("/v1/sims/{id}/snapshot", s.handleSnapshot).Methods(http.MethodGet)
	r.HandleFunc("/v1/sims/{id}/events", s.handleEvents).Methods(http.MethodGet)
	r.HandleFunc("/v1/sims/{id}/stream", s.handleStream).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	})
	return c.Handler(r)
}

// NewHTTPServer wraps handler in an *http.Server with the teacher's
// timeout conventions (cmd/server/main.go's setupHTTPServer/runServer).
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
