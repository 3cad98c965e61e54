// Package store defines the snapshot/event-history repository contract
// that backend/internal/store/sqlitestore and backend/internal/store/pgstore
// both implement. It is the generalization of the teacher's
// internal/database repository-per-aggregate layout to this simulator's
// one-aggregate-per-run shape: a run is identified by its id and has
// exactly one current snapshot plus an append-only event log, rather than
// the many related tables a campaign-management schema needs.
package store

import (
	"context"
	"time"
)

// SnapshotRecord is one persisted run: the opaque snapshot document
// internal/snapshot.Marshal produces, plus the bookkeeping fields a
// repository needs to list/prune runs without decoding the document body.
type SnapshotRecord struct {
	ID            string
	Seed          string
	Archetype     string
	WorldTime     int64
	SchemaVersion string
	Data          []byte
	UpdatedAt     time.Time
}

// EventRecord is one durable log entry (model.LogEntry) persisted under a
// run id, in append order.
type EventRecord struct {
	RunID     string
	Seq       int64
	Category  string
	Summary   string
	Details   string
	WorldTime int64
	Data      []byte // the full model.LogEntry, JSON-encoded
}

// Store persists simulation snapshots and their event history. Both
// sqlitestore (the CLI's embedded local store) and pgstore (the server's
// store) implement it identically; internal/httpapi and internal/jobs
// depend only on this interface, never on a concrete driver.
type Store interface {
	// SaveSnapshot upserts rec, keyed by rec.ID.
	SaveSnapshot(ctx context.Context, rec SnapshotRecord) error
	// LoadSnapshot returns the current snapshot for id, or ErrNotFound.
	LoadSnapshot(ctx context.Context, id string) (*SnapshotRecord, error)
	// ListSnapshots returns every stored run's bookkeeping fields (not
	// the Data body), most recently updated first.
	ListSnapshots(ctx context.Context) ([]SnapshotRecord, error)
	// DeleteSnapshot removes a run's snapshot and event history.
	DeleteSnapshot(ctx context.Context, id string) error
	// PruneOlderThan deletes every run last updated before cutoff and
	// returns how many were removed (internal/jobs' retention sweep).
	PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	// AppendEvents records newly-produced log entries for a run.
	AppendEvents(ctx context.Context, runID string, events []EventRecord) error
	// Events returns a run's event history in append order.
	Events(ctx context.Context, runID string) ([]EventRecord, error)

	Close() error
}
