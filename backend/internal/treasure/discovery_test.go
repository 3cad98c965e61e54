package treasure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldforge/sim/backend/internal/model"
)

func TestDiscover_LightTreasureIsClaimedImmediately(t *testing.T) {
	m := newTestManager("discover-seed-1")

	_, extractionID, err := m.Discover("B", 4, 2, model.TerrainClear, 24, model.HexCoord{Q: 2, R: 2}, "party-1")

	require.NoError(t, err)
	assert.Empty(t, extractionID)
	assert.Len(t, m.State.Treasure.Hoards, 1)
	for _, hoard := range m.State.Treasure.Hoards {
		assert.True(t, hoard.Liquidated)
		assert.Equal(t, 1.0, hoard.PercentSpent)
	}
}

func TestDiscover_HeavyHoardOpensExtraction(t *testing.T) {
	m := newTestManager("discover-seed-2")

	_, extractionID, err := m.Discover("G", 4, 20, model.TerrainMountains, 24, model.HexCoord{Q: 3, R: 3}, "party-1")

	require.NoError(t, err)
	require.NotEmpty(t, extractionID)

	ext, ok := m.State.Treasure.Extractions[extractionID]
	require.True(t, ok)
	assert.False(t, ext.Completed)
	assert.False(t, ext.Abandoned)
	assert.Greater(t, ext.NextTripCompletes, int64(24))
}

func TestDiscover_UnknownTreasureTypePropagatesError(t *testing.T) {
	m := newTestManager("discover-seed-3")

	_, _, err := m.Discover("not-a-type", 4, 2, model.TerrainClear, 0, model.HexCoord{}, "party-1")

	require.Error(t, err)
}
