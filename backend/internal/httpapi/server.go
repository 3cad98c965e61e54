package httpapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/worldforge/sim/backend/pkg/logger"
)

// Run starts listening on addr and blocks until SIGINT/SIGTERM, then drains
// in-flight requests and stops s's websocket hub, matching the teacher's
// cmd/server/main.go runServer (http.Server + signal channel +
// context.WithTimeout shutdown), generalized to this package's one hub
// instead of runServer's hub-plus-refresh-token-cleanup pair.
func Run(addr string, s *Server, allowedOrigins []string, log *logger.LoggerV2) {
	srv := NewHTTPServer(addr, Router(s, allowedOrigins))

	go s.hub.Run()

	go func() {
		log.Info().Str("address", srv.Addr).Msg("httpapi: server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("httpapi: failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info().Str("signal", sig.String()).Msg("httpapi: shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("httpapi: server forced to shutdown")
	}
	if err := s.hub.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("httpapi: failed to shut down websocket hub")
	}
}
