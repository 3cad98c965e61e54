package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/worldforge/sim/backend/internal/config"
	"github.com/worldforge/sim/backend/internal/constants"
	"github.com/worldforge/sim/backend/internal/content"
	"github.com/worldforge/sim/backend/internal/httpapi"
	"github.com/worldforge/sim/backend/internal/jobs"
	"github.com/worldforge/sim/backend/internal/store/sqlitestore"
	"github.com/worldforge/sim/backend/pkg/logger"
)

// runServe implements `sim serve`: the companion-facing HTTP/websocket API
// (internal/httpapi), backed by a local sqlite3 store and an asynq worker
// for export/prune jobs. This is the daemon counterpart to new/run/verify's
// one-shot snapshot plumbing, grounded on the teacher's cmd/server/main.go
// bootstrap ordering (logger, config, storage, services, then serve).
func runServe(_ []string) int {
	log, err := logger.NewV2(&logger.ConfigV2{
		Level:       getEnvOrDefault("LOG_LEVEL", "info"),
		Pretty:      getEnvOrDefault("LOG_PRETTY", "false") == "true",
		CallerInfo:  true,
		ServiceName: "sim-httpapi",
		Environment: getEnvOrDefault("ENV", "development"),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "sim serve: logger init:", err)
		return exitMalformedSnapshot
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "sim serve: loading config:", err)
		return exitMalformedSnapshot
	}

	tables := content.DefaultTables()
	if err := tables.Validate(); err != nil {
		log.Error().Err(err).Msg("sim serve: content table error")
		return exitContentTableError
	}

	dbPath := getEnvOrDefault("SIM_STORE_PATH", "sim-store.db")
	st, err := sqlitestore.Open(dbPath, log)
	if err != nil {
		log.Error().Err(err).Msg("sim serve: opening store")
		return exitMalformedSnapshot
	}
	defer func() { _ = st.Close() }()

	queue := jobs.New(cfg.Redis, log)
	queue.RegisterHandler(jobs.JobTypeSnapshotExport, jobs.ExportHandler(st))
	queue.RegisterHandler(jobs.JobTypeRetentionPrune, jobs.PruneHandler(st))

	tokenMgr := httpapi.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenDuration)
	server := httpapi.New(httpapi.Options{
		Tables:       tables,
		Debug:        cfg.Server.Environment != "production",
		TokenManager: tokenMgr,
		Log:          log,
	})

	if cfg.Sim.AutoExportEnabled {
		if err := queue.Start(); err != nil {
			log.Error().Err(err).Msg("sim serve: starting job queue")
			return exitMalformedSnapshot
		}
		defer func() { _ = queue.Stop() }()

		statusCache, err := jobs.NewStatusCache(cfg.Redis, log)
		if err != nil {
			log.Error().Err(err).Msg("sim serve: connecting status cache")
			return exitMalformedSnapshot
		}
		defer func() { _ = statusCache.Close() }()

		server.OnTick(func(ev httpapi.TickEvent) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if statusCache.RecentlyExported(ctx, ev.RunID) {
				return
			}
			_, err := queue.EnqueueExport(ctx, jobs.ExportPayload{
				RunID:         ev.RunID,
				Seed:          ev.Seed,
				Archetype:     ev.Archetype,
				WorldTime:     ev.WorldTime,
				SchemaVersion: constants.SchemaVersion,
				Data:          ev.Snapshot,
				CapturedAt:    time.Now().UTC(),
			})
			if err != nil {
				log.Error().Err(err).Str("runId", ev.RunID).Msg("sim serve: enqueue export failed")
				return
			}
			if err := statusCache.MarkExported(ctx, ev.RunID); err != nil {
				log.Warn().Err(err).Str("runId", ev.RunID).Msg("sim serve: mark exported failed")
			}
		})
	}

	addr := ":" + cfg.Server.Port
	httpapi.Run(addr, server, []string{"*"}, log)
	return exitOK
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
