// Package sqlitestore is the CLI's embedded local store. backend/cmd/sim's
// `serve` subcommand opens it to persist run snapshots and event history
// in a local file rather than a shared Postgres instance.
// Grounded on the teacher's internal/database.DB (sqlx wrapper, logged
// queries) and internal/testutil.SetupTestDB's sqlite3 dialect choice,
// adapted from the teacher's many-table campaign schema to this package's
// two-table store.Store shape (sim_snapshots, sim_events).
package sqlitestore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/worldforge/sim/backend/internal/store"
	"github.com/worldforge/sim/backend/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS sim_snapshots (
	id             TEXT PRIMARY KEY,
	seed           TEXT NOT NULL,
	archetype      TEXT NOT NULL,
	world_time     INTEGER NOT NULL,
	schema_version TEXT NOT NULL,
	data           BLOB NOT NULL,
	updated_at     DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS sim_events (
	run_id     TEXT NOT NULL,
	seq        INTEGER NOT NULL,
	category   TEXT NOT NULL,
	summary    TEXT NOT NULL,
	details    TEXT NOT NULL,
	world_time INTEGER NOT NULL,
	data       BLOB NOT NULL,
	PRIMARY KEY (run_id, seq)
);
`

// Store is a sqlite3-backed store.Store. Opening it runs schema creation
// inline (CREATE TABLE IF NOT EXISTS) rather than through golang-migrate:
// a single-file embedded store has no multi-version migration history to
// track, unlike pgstore's long-running server schema.
type Store struct {
	db  *sqlx.DB
	log *logger.LoggerV2
}

// Open opens (creating if absent) the sqlite3 database at path and
// ensures its schema exists. path may be ":memory:" for tests.
func Open(path string, log *logger.LoggerV2) (*Store, error) {
	db, err := sqlx.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("sqlitestore: open: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite3 allows exactly one writer at a time

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("sqlitestore: ping: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlitestore: create schema: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

func (s *Store) logQuery(op string, err error, start time.Time) {
	if s.log == nil {
		return
	}
	event := s.log.Debug().Str("op", op).Dur("duration", time.Since(start))
	if err != nil {
		event.Err(err).Msg("sqlitestore: query failed")
		return
	}
	event.Msg("sqlitestore: query executed")
}

func (s *Store) SaveSnapshot(_ context.Context, rec store.SnapshotRecord) error {
	start := time.Now()
	_, err := s.db.Exec(`
		INSERT INTO sim_snapshots (id, seed, archetype, world_time, schema_version, data, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			seed = excluded.seed, archetype = excluded.archetype,
			world_time = excluded.world_time, schema_version = excluded.schema_version,
			data = excluded.data, updated_at = excluded.updated_at`,
		rec.ID, rec.Seed, rec.Archetype, rec.WorldTime, rec.SchemaVersion, rec.Data, rec.UpdatedAt)
	s.logQuery("SaveSnapshot", err, start)
	return err
}

func (s *Store) LoadSnapshot(_ context.Context, id string) (*store.SnapshotRecord, error) {
	start := time.Now()
	var rec store.SnapshotRecord
	err := s.db.QueryRow(`
		SELECT id, seed, archetype, world_time, schema_version, data, updated_at
		FROM sim_snapshots WHERE id = ?`, id).
		Scan(&rec.ID, &rec.Seed, &rec.Archetype, &rec.WorldTime, &rec.SchemaVersion, &rec.Data, &rec.UpdatedAt)
	s.logQuery("LoadSnapshot", err, start)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("sqlitestore: snapshot %q: %w", id, sql.ErrNoRows)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) ListSnapshots(_ context.Context) ([]store.SnapshotRecord, error) {
	start := time.Now()
	rows, err := s.db.Queryx(`
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

func (s *Store) DeleteSnapshot(_ context.Context, id string) error {
	start := time.Now()
	_, err := s.db.Exec(`DELETE FROM sim_events WHERE run_id = ?`, id)
	if err == nil {
		_, err = s.db.Exec(`DELETE FROM sim_snapshots WHERE id = ?`, id)
	}
	s.logQuery("DeleteSnapshot", err, start)
	return err
}

func (s *Store) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	start := time.Now()
	rows, err := s.db.Queryx(`SELECT id FROM sim_snapshots WHERE updated_at < ?`, cutoff)
	if err != nil {
		s.logQuery("PruneOlderThan", err, start)
		return 0, err
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, err
		}
		ids = append(ids, id)
	}
	rows.Close()

	var pruned int64
	for _, id := range ids {
		if err := s.DeleteSnapshot(ctx, id); err != nil {
			return pruned, err
		}
		pruned++
	}
	s.logQuery("PruneOlderThan", nil, start)
	return pruned, nil
}

func (s *Store) AppendEvents(_ context.Context, runID string, events []store.EventRecord) error {
	if len(events) == 0 {
		return nil
	}
	start := time.Now()
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("sqlitestore: begin tx: %w", err)
	}
	for _, ev := range events {
		if _, err := tx.Exec(`
			INSERT INTO sim_events (run_id, seq, category, summary, details, world_time, data)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
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

func (s *Store) Events(_ context.Context, runID string) ([]store.EventRecord, error) {
	start := time.Now()
	rows, err := s.db.Queryx(`
		SELECT run_id, seq, category, summary, details, world_time, data
		FROM sim_events WHERE run_id = ? ORDER BY seq ASC`, runID)
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
