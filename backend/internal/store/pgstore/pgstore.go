// Package pgstore is a Postgres-backed store.Store for deployments with a
// Postgres instance; backend/cmd/sim's `serve` subcommand opens
// sqlitestore, not this package. Grounded directly on the teacher's
// internal/database.DB (sqlx.DB wrapper, Config struct, logged queries,
// WithTx) and internal/database/migrate.go's embed.FS + golang-migrate/
// iofs pattern, narrowed from the teacher's many campaign tables to this
// package's two (sim_snapshots, sim_events).
package pgstore

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/worldforge/sim/backend/internal/store"
	"github.com/worldforge/sim/backend/pkg/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Config holds the Postgres connection parameters, matching the teacher's
// internal/database.Config shape field-for-field.
type Config struct {
	Host         string
	Port         int
	User         string
	Password     string
	DatabaseName string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// Store is a Postgres-backed store.Store.
type Store struct {
	db  *sqlx.DB
	log *logger.LoggerV2
}

// Open connects to Postgres, runs the embedded migrations, and returns a
// ready Store.
func Open(cfg Config, log *logger.LoggerV2) (*Store, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DatabaseName, cfg.SSLMode)

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("pgstore: open: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.MaxLifetime)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pgstore: ping: %w", err)
	}

	s := &Store{db: db, log: log}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// newFromDB wraps an already-open *sqlx.DB (used by tests against
// go-sqlmock, which cannot open a real Postgres connection through DSN).
// Migrations are not run against a mock.
func newFromDB(db *sqlx.DB, log *logger.LoggerV2) *Store {
	return &Store{db: db, log: log}
}

func (s *Store) migrate() error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("pgstore: migration source: %w", err)
	}
	driver, err := postgres.WithInstance(s.db.DB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("pgstore: migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("pgstore: migrate instance: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("pgstore: migrate up: %w", err)
	}
	return nil
}

func (s *Store) logQuery(op string, err error, start time.Time) {
	if s.log == nil {
		return
	}
	event := s.log.Debug().Str("op", op).Dur("duration", time.Since(start))
	if err != nil {
		event.Err(err).Msg("pgstore: query failed")
		return
	}
	event.Msg("pgstore: query executed")
}

func (s *Store) SaveSnapshot(ctx context.Context, rec store.SnapshotRecord) error {
	start := time.Now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sim_snapshots (id, seed, archetype, world_time, schema_version, data, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			seed = excluded.seed, archetype = excluded.archetype,
			world_time = excluded.world_time, schema_version = excluded.schema_version,
			data = excluded.data, updated_at = excluded.updated_at`,
		rec.ID, rec.Seed, rec.Archetype, rec.WorldTime, rec.SchemaVersion, rec.Data, rec.UpdatedAt)
	s.logQuery("SaveSnapshot", err, start)
	return err
}

func (s *Store) LoadSnapshot(ctx context.Context, id string) (*store.SnapshotRecord, error) {
	start := time.Now()
	var rec store.SnapshotRecord
	err := s.db.QueryRowContext(ctx, `
		SELECT id, seed, archetype, world_time, schema_version, data, updated_at
		FROM sim_snapshots WHERE id = $1`, id).
		Scan(&rec.ID, &rec.Seed, &rec.Archetype, &rec.WorldTime, &rec.SchemaVersion, &rec.Data, &rec.UpdatedAt)
	s.logQuery("LoadSnapshot", err, start)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("pgstore: snapshot %q: %w", id, sql.ErrNoRows)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) ListSnapshots(ctx context.Context) ([]store.SnapshotRecord, error) {
	start := time.Now()
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seed, archetype, world_time, schema_version, updated_at
		FROM sim_snapshots ORDER BY updated_at DESC`)
	s.logQuery("ListSnapshots", err, start)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.SnapshotRecord
	for rows.Next() {
		var rec store.SnapshotRecord
		if err := rows.Scan(&rec.ID, &rec.Seed, &rec.Archetype, &rec.WorldTime, &rec.SchemaVersion, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *Store) DeleteSnapshot(ctx context.Context, id string) error {
	start := time.Now()
	// sim_events rows cascade via the FOREIGN KEY ... ON DELETE CASCADE
	// in 0001_init.up.sql.
	_, err := s.db.ExecContext(ctx, `DELETE FROM sim_snapshots WHERE id = $1`, id)
	s.logQuery("DeleteSnapshot", err, start)
	return err
}

func (s *Store) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	start := time.Now()
	res, err := s.db.ExecContext(ctx, `DELETE FROM sim_snapshots WHERE updated_at < $1`, cutoff)
	s.logQuery("PruneOlderThan", err, start)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) AppendEvents(ctx context.Context, runID string, events []store.EventRecord) error {
	if len(events) == 0 {
		return nil
	}
	start := time.Now()
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("pgstore: begin tx: %w", err)
	}
	for _, ev := range events {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO sim_events (run_id, seq, category, summary, details, world_time, data)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			runID, ev.Seq, ev.Category, ev.Summary, ev.Details, ev.WorldTime, ev.Data); err != nil {
			_ = tx.Rollback()
			s.logQuery("AppendEvents", err, start)
			return err
		}
	}
	err = tx.Commit()
	s.logQuery("AppendEvents", err, start)
	return err
}

func (s *Store) Events(ctx context.Context, runID string) ([]store.EventRecord, error) {
	start := time.Now()
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, seq, category, summary, details, world_time, data
		FROM sim_events WHERE run_id = $1 ORDER BY seq ASC`, runID)
	s.logQuery("Events", err, start)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.EventRecord
	for rows.Next() {
		var ev store.EventRecord
		if err := rows.Scan(&ev.RunID, &ev.Seq, &ev.Category, &ev.Summary, &ev.Details, &ev.WorldTime, &ev.Data); err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}

var _ store.Store = (*Store)(nil)
