package jobs

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldforge/sim/backend/internal/store/sqlitestore"
)

func TestExportHandler_SavesSnapshot(t *testing.T) {
	st, err := sqlitestore.Open(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	handler := ExportHandler(st)
	payload, err := json.Marshal(ExportPayload{
		RunID: "run-1", Seed: "alpha", Archetype: "Standard",
		WorldTime: 72, SchemaVersion: "worldforge-sim/v1",
		Data: []byte(`{"meta":{}}`), CapturedAt: time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, handler(context.Background(), payload))

	rec, err := st.LoadSnapshot(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, int64(72), rec.WorldTime)
}

func TestExportHandler_RejectsMalformedPayload(t *testing.T) {
	st, err := sqlitestore.Open(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	handler := ExportHandler(st)
	assert.Error(t, handler(context.Background(), []byte("not json")))
}

func TestPruneHandler_DeletesOldSnapshots(t *testing.T) {
	st, err := sqlitestore.Open(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	oldPayload, _ := json.Marshal(struct {
		RunID         string
		Seed          string
		Archetype     string
		WorldTime     int64
		SchemaVersion string
		Data          []byte
		CapturedAt    time.Time
	}{RunID: "old-run", Seed: "s", Archetype: "Standard", WorldTime: 1, SchemaVersion: "v1", Data: []byte("{}"), CapturedAt: time.Now().Add(-48 * time.Hour)})
	require.NoError(t, ExportHandler(st)(context.Background(), oldPayload))

	prune, err := json.Marshal(PrunePayload{OlderThanDays: 1})
	require.NoError(t, err)
	require.NoError(t, PruneHandler(st)(context.Background(), prune))

	_, err = st.LoadSnapshot(context.Background(), "old-run")
	assert.Error(t, err)
}
