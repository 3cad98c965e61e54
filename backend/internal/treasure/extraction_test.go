package treasure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldforge/sim/backend/internal/model"
)

func newTestExtraction() *model.TreasureExtraction {
	return &model.TreasureExtraction{
		ID:            "ext-1",
		HoardID:       "hoard-1",
		RemainingCoin: map[string]int{"gp": 500, "sp": 200},
		TotalWeight:   100,
	}
}

func newTestParty() *model.Party {
	return &model.Party{ID: "party-1", Members: []model.PartyMember{
		{Name: "p1"}, {Name: "p2"}, {Name: "p3"}, {Name: "p4"},
	}}
}

func TestTickExtraction_NotYetDueIsNoop(t *testing.T) {
	m := newTestManager("ext-seed-1")
	ext := newTestExtraction()
	ext.NextTripCompletes = 100
	party := newTestParty()

	logs := m.TickExtraction(ext, party, 10, 0, 12, "riverhold")

	assert.Nil(t, logs)
	assert.Equal(t, 0, ext.TripsCompleted)
}

func TestTickExtraction_CompletesWhenFullyDrained(t *testing.T) {
	m := newTestManager("ext-seed-2")
	ext := &model.TreasureExtraction{
		ID:            "ext-2",
		HoardID:       "hoard-2",
		RemainingCoin: map[string]int{"gp": 10},
		TotalWeight:   1,
	}
	m.State.Treasure.Hoards["hoard-2"] = &model.DiscoveredHoard{ID: "hoard-2", TotalValue: 50}
	party := newTestParty()

	var logs []model.LogEntry
	for i := 0; i < 20 && !ext.Completed && !ext.Abandoned; i++ {
		logs = m.TickExtraction(ext, party, int64(i*12), 0, 12, "riverhold")
	}

	assert.True(t, ext.Completed || ext.Abandoned)
	_ = logs
}

func TestTickExtraction_LargeHoardLiquidationSchedulesInflux(t *testing.T) {
	m := newTestManager("ext-seed-3")
	ext := &model.TreasureExtraction{
		ID:            "ext-3",
		HoardID:       "hoard-3",
		RemainingCoin: map[string]int{"gp": 2000},
		TotalWeight:   10,
	}
	m.State.Treasure.Hoards["hoard-3"] = &model.DiscoveredHoard{ID: "hoard-3", TotalValue: 2000}
	party := newTestParty()

	for i := 0; i < 50 && !ext.Completed && !ext.Abandoned; i++ {
		m.TickExtraction(ext, party, int64(i*12), 0, 12, "riverhold")
	}

	require.True(t, ext.Completed)
	assert.Equal(t, 1, m.Queue.Len())
}

func TestLoadTrip_PrioritizesMagicItemsOverCoin(t *testing.T) {
	m := newTestManager("ext-seed-4")
	m.State.Treasure.MagicItems["item-1"] = &model.MagicItem{ID: "item-1", Category: "ring"}
	ext := &model.TreasureExtraction{
		RemainingMagicIDs: []string{"item-1"},
		RemainingCoin:     map[string]int{"gp": 10000},
	}

	loaded := m.loadTrip(ext, 1000, "party-1")

	assert.Greater(t, loaded, 0.0)
	assert.Empty(t, ext.RemainingMagicIDs)
	assert.Equal(t, "party-1", m.State.Treasure.MagicItems["item-1"].OwnerID)
}

func TestShouldAbandon_OnlySmallChangeRemains(t *testing.T) {
	m := newTestManager("ext-seed-5")
	ext := &model.TreasureExtraction{RemainingCoin: map[string]int{"cp": 100}}

	abandoned := false
	for i := 0; i < 50; i++ {
		if shouldAbandon(ext, m.Rng) {
			abandoned = true
			break
		}
	}
	assert.True(t, abandoned)
}

func TestShouldAbandon_NeverWhenGoldRemains(t *testing.T) {
	m := newTestManager("ext-seed-6")
	ext := &model.TreasureExtraction{RemainingCoin: map[string]int{"gp": 5, "cp": 100}}

	for i := 0; i < 50; i++ {
		assert.False(t, shouldAbandon(ext, m.Rng))
	}
}
