package pgstore

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldforge/sim/backend/internal/store"
)

func newMock(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db := sqlx.NewDb(mockDB, "postgres")
	return newFromDB(db, nil), mock
}

func TestSaveSnapshot_ExecutesUpsert(t *testing.T) {
	s, mock := newMock(t)
	rec := store.SnapshotRecord{
		ID: "run-1", Seed: "alpha", Archetype: "Standard",
		WorldTime: 24, SchemaVersion: "worldforge-sim/v1",
		Data: []byte("{}"), UpdatedAt: time.Now(),
	}
	mock.ExpectExec("INSERT INTO sim_snapshots").
		WithArgs(rec.ID, rec.Seed, rec.Archetype, rec.WorldTime, rec.SchemaVersion, rec.Data, rec.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.SaveSnapshot(context.Background(), rec))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSnapshot_ScansRow(t *testing.T) {
	s, mock := newMock(t)
	updated := time.Now()
	rows := sqlmock.NewRows([]string{"id", "seed", "archetype", "world_time", "schema_version", "data", "updated_at"}).
		AddRow("run-1", "alpha", "Standard", int64(24), "worldforge-sim/v1", []byte("{}"), updated)
	mock.ExpectQuery("SELECT id, seed, archetype, world_time, schema_version, data, updated_at").
		WithArgs("run-1").
		WillReturnRows(rows)

	rec, err := s.LoadSnapshot(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, "alpha", rec.Seed)
	assert.Equal(t, int64(24), rec.WorldTime)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSnapshot_NoRowsReturnsError(t *testing.T) {
	s, mock := newMock(t)
	mock.ExpectQuery("SELECT id, seed, archetype, world_time, schema_version, data, updated_at").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "seed", "archetype", "world_time", "schema_version", "data", "updated_at"}))

	_, err := s.LoadSnapshot(context.Background(), "missing")
	assert.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPruneOlderThan_ReturnsRowsAffected(t *testing.T) {
	s, mock := newMock(t)
	cutoff := time.Now().Add(-24 * time.Hour)
	mock.ExpectExec("DELETE FROM sim_snapshots WHERE updated_at").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := s.PruneOlderThan(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendEvents_CommitsWithinTransaction(t *testing.T) {
	s, mock := newMock(t)
	events := []store.EventRecord{
		{RunID: "run-1", Seq: 1, Category: "weather", Summary: "rain begins", Details: "", WorldTime: 1, Data: []byte("{}")},
		{RunID: "run-1", Seq: 2, Category: "travel", Summary: "party departs", Details: "", WorldTime: 2, Data: []byte("{}")},
	}

	mock.ExpectBegin()
	for _, ev := range events {
		mock.ExpectExec("INSERT INTO sim_events").
			WithArgs(ev.RunID, ev.Seq, ev.Category, ev.Summary, ev.Details, ev.WorldTime, ev.Data).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, s.AppendEvents(context.Background(), "run-1", events))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendEvents_RollsBackOnFailure(t *testing.T) {
	s, mock := newMock(t)
	events := []store.EventRecord{{RunID: "run-1", Seq: 1, Data: []byte("{}")}}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO sim_events").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := s.AppendEvents(context.Background(), "run-1", events)
	assert.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendEvents_EmptyIsNoop(t *testing.T) {
	s, _ := newMock(t)
	require.NoError(t, s.AppendEvents(context.Background(), "run-1", nil))
}
