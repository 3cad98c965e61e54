// Package jobs is the asynq-backed background queue for work the
// synchronous advance/snapshot call path should not block on: exporting a
// snapshot to a store.Store and pruning runs past the retention window. Grounded
// directly on the teacher's internal/jobs.JobQueue (client/server/mux
// triple, JobOptions, the asynqLogger adapter), trimmed from the
// teacher's nine AI/email/report job types down to the two this
// simulator's SPEC_FULL.md domain-stack section names.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/hibiken/asynq"

	"github.com/worldforge/sim/backend/internal/config"
	"github.com/worldforge/sim/backend/internal/store"
	"github.com/worldforge/sim/backend/pkg/logger"
)

// JobType enumerates this package's two background task kinds.
type JobType string

const (
	// JobTypeSnapshotExport persists a completed snapshot into the store
	// ExportHandler was built with, offloading the write off the
	// synchronous `advance`/`snapshot` path.
	JobTypeSnapshotExport JobType = "sim:snapshot:export"
	// JobTypeRetentionPrune deletes snapshots older than the retention
	// window (config.SimConfig.SnapshotRetentionDays).
	JobTypeRetentionPrune JobType = "sim:retention:prune"

	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// ExportPayload is JobTypeSnapshotExport's task payload: the run's
// already-rendered snapshot document (internal/snapshot.Marshal's output),
// not a handle — the worker has no access to the live, single-threaded
// SimHandle and must not need one.
type ExportPayload struct {
	RunID         string    `json:"runId"`
	Seed          string    `json:"seed"`
	Archetype     string    `json:"archetype"`
	WorldTime     int64     `json:"worldTime"`
	SchemaVersion string    `json:"schemaVersion"`
	Data          []byte    `json:"data"`
	CapturedAt    time.Time `json:"capturedAt"`
}

// PrunePayload is JobTypeRetentionPrune's task payload.
type PrunePayload struct {
	OlderThanDays int `json:"olderThanDays"`
}

// JobHandler processes one decoded payload.
type JobHandler func(ctx context.Context, payload []byte) error

// Queue manages background job processing. One Queue instance owns both
// the asynq.Client producers enqueue through and the asynq.Server/ServeMux
// pair a worker process runs.
type Queue struct {
	client   *asynq.Client
	server   *asynq.Server
	mux      *asynq.ServeMux
	redisOpt asynq.RedisClientOpt
	log      *logger.LoggerV2
	handlers map[JobType]JobHandler
	mu       sync.RWMutex
}

// New creates a Queue from Redis connection settings. It does not connect
// eagerly; asynq dials lazily on first Enqueue/Start.
func New(cfg config.RedisConfig, log *logger.LoggerV2) *Queue {
	redisOpt := asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	serverConfig := asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			QueueCritical: 3,
			QueueDefault:  2,
			QueueLow:      1,
		},
		StrictPriority: true,
		ErrorHandler: asynq.ErrorHandlerFunc(func(_ context.Context, task *asynq.Task, err error) {
			if log != nil {
				log.Error().Err(err).Str("jobType", task.Type()).Msg("jobs: task failed")
			}
		}),
		Logger: &asynqLogger{log: log},
	}

	return &Queue{
		client:   asynq.NewClient(redisOpt),
		server:   asynq.NewServer(redisOpt, serverConfig),
		mux:      asynq.NewServeMux(),
		redisOpt: redisOpt,
		log:      log,
		handlers: make(map[JobType]JobHandler),
	}
}

// RegisterHandler wires a handler for jobType into the asynq mux.
func (q *Queue) RegisterHandler(jobType JobType, handler JobHandler) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[jobType] = handler
	q.mux.HandleFunc(string(jobType), func(ctx context.Context, task *asynq.Task) error {
		start := time.Now()
		err := handler(ctx, task.Payload())
		if q.log != nil {
			event := q.log.Info().Str("jobType", string(jobType)).Dur("duration", time.Since(start))
			if err != nil {
				event.Err(err).Msg("jobs: task failed")
			} else {
				event.Msg("jobs: task completed")
			}
		}
		return err
	})
}

// EnqueueExport schedules a snapshot export on QueueDefault with up to 3
// retries.
func (q *Queue) EnqueueExport(ctx context.Context, payload ExportPayload) (*asynq.TaskInfo, error) {
	return q.enqueue(ctx, JobTypeSnapshotExport, payload, asynq.Queue(QueueDefault), asynq.MaxRetry(3))
}

// EnqueuePrune schedules a retention sweep. processIn lets callers defer
// it (a recurring scheduler), or pass 0 to run as soon as a worker is free.
func (q *Queue) EnqueuePrune(ctx context.Context, payload PrunePayload, processIn time.Duration) (*asynq.TaskInfo, error) {
	opts := []asynq.Option{asynq.Queue(QueueLow), asynq.MaxRetry(1)}
	if processIn > 0 {
		opts = append(opts, asynq.ProcessIn(processIn))
	}
	return q.enqueue(ctx, JobTypeRetentionPrune, payload, opts...)
}

func (q *Queue) enqueue(ctx context.Context, jobType JobType, payload interface{}, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("jobs: marshal payload: %w", err)
	}
	task := asynq.NewTask(string(jobType), data)
	info, err := q.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return nil, fmt.Errorf("jobs: enqueue %s: %w", jobType, err)
	}
	if q.log != nil {
		q.log.Info().Str("jobType", string(jobType)).Str("taskId", info.ID).Str("queue", info.Queue).Msg("jobs: enqueued")
	}
	return info, nil
}

// Start begins processing jobs in background goroutines and returns
// immediately; pair with Stop for graceful shutdown (matches asynq's
// Start/Shutdown split, not the blocking Run).
func (q *Queue) Start() error {
	if q.log != nil {
		q.log.Info().Msg("jobs: worker starting")
	}
	return q.server.Start(q.mux)
}

// Stop gracefully shuts the worker and client down.
func (q *Queue) Stop() error {
	q.server.Shutdown()
	return q.client.Close()
}

// asynqLogger adapts *logger.LoggerV2 to asynq's logging interface,
// matching the teacher's internal/jobs.asynqLogger verbatim.
type asynqLogger struct {
	log *logger.LoggerV2
}

func (l *asynqLogger) Debug(args ...interface{}) {
	if l.log != nil {
		l.log.Debug().Msg(fmt.Sprint(args...))
	}
}
func (l *asynqLogger) Info(args ...interface{}) {
	if l.log != nil {
		l.log.Info().Msg(fmt.Sprint(args...))
	}
}
func (l *asynqLogger) Warn(args ...interface{}) {
	if l.log != nil {
		l.log.Warn().Msg(fmt.Sprint(args...))
	}
}
func (l *asynqLogger) Error(args ...interface{}) {
	if l.log != nil {
		l.log.Error().Msg(fmt.Sprint(args...))
	}
}
func (l *asynqLogger) Fatal(args ...interface{}) {
	if l.log != nil {
		l.log.Fatal().Msg(fmt.Sprint(args...))
	}
}

// ExportHandler builds the JobTypeSnapshotExport handler against a
// concrete store.Store (sqlitestore or pgstore).
func ExportHandler(st store.Store) JobHandler {
	return func(ctx context.Context, payload []byte) error {
		var p ExportPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("jobs: decode export payload: %w", err)
		}
		return st.SaveSnapshot(ctx, store.SnapshotRecord{
			ID: p.RunID, Seed: p.Seed, Archetype: p.Archetype,
			WorldTime: p.WorldTime, SchemaVersion: p.SchemaVersion,
			Data: p.Data, UpdatedAt: p.CapturedAt,
		})
	}
}

// PruneHandler builds the JobTypeRetentionPrune handler against st.
func PruneHandler(st store.Store) JobHandler {
	return func(ctx context.Context, payload []byte) error {
		var p PrunePayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("jobs: decode prune payload: %w", err)
		}
		cutoff := time.Now().Add(-time.Duration(p.OlderThanDays) * 24 * time.Hour)
		_, err := st.PruneOlderThan(ctx, cutoff)
		return err
	}
}
