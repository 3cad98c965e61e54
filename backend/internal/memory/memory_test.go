package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/prose"
	"github.com/worldforge/sim/backend/internal/world"
	"github.com/worldforge/sim/backend/internal/worldrand"
)

func TestCreateRichMemory_ClampsIntensityAndFillsNarrative(t *testing.T) {
	rng := worldrand.New("memory-test")
	templates := DefaultNarrativeTemplates()

	mem := CreateRichMemory(rng, templates, model.MemoryWasBetrayed, model.EmotionAngry, 99, "npc-2", "", model.HexCoord{}, 1000, false)
	assert.Equal(t, 10, mem.Intensity)
	assert.NotEmpty(t, mem.Narrative)
	assert.Equal(t, "npc-2", mem.Target)
}

func TestAddMemory_TruncatesAtCapByIntensityThenRecency(t *testing.T) {
	npc := model.NewReactiveNPC()
	for i := 0; i < 3; i++ {
		AddMemory(npc, model.Memory{Intensity: 5, Timestamp: int64(i)}, 3)
	}
	require.Len(t, npc.Memories, 3)

	// A higher-intensity memory should displace the oldest low-intensity one.
	AddMemory(npc, model.Memory{Intensity: 9, Timestamp: 100}, 3)
	require.Len(t, npc.Memories, 3)
	assert.Equal(t, 9, npc.Memories[0].Intensity)
}

func TestDecayMonth_PrunesZeroIntensity(t *testing.T) {
	npc := model.NewReactiveNPC()
	npc.Memories = []model.Memory{
		{Intensity: 1, Target: "will-be-pruned"},
		{Intensity: 5, Target: "survives"},
	}
	DecayMonth(npc)
	require.Len(t, npc.Memories, 1)
	assert.Equal(t, "survives", npc.Memories[0].Target)
	assert.Equal(t, 4, npc.Memories[0].Intensity)
}

func TestGenerateMemoryEvents_SurfacesEligibleMemoryAndMarksActed(t *testing.T) {
	state := world.NewState(200, 30)
	reactive := state.ReactiveNPC("npc-1")
	reactive.Memories = []model.Memory{
		{Intensity: 1, Acted: false},
		{Intensity: 5, Acted: false, Target: "npc-2"},
	}
	composer := prose.NewComposer(prose.DefaultTemplates())

	// Several seeds are tried; the test only asserts structural behavior (acted
	// flipped, a result emitted iff the Bernoulli trial and eligible
	// memory both line up) rather than a specific seed's outcome.
	for _, seed := range []string{"surf-a", "surf-b", "surf-c", "surf-d", "surf-e"} {
		reactive.Memories[1].Acted = false
		rng := worldrand.New(seed)
		results := GenerateMemoryEvents(rng, state, composer, []string{"npc-1"}, 1000, seed)
		if len(results) > 0 {
			assert.Equal(t, "npc-1", results[0].NPCID)
			assert.True(t, reactive.Memories[1].Acted)
			return
		}
	}
}

func TestPickSurfacableMemory_SkipsLowIntensityAndActed(t *testing.T) {
	npc := model.NewReactiveNPC()
	npc.Memories = []model.Memory{
		{Intensity: 2, Acted: false},
		{Intensity: 5, Acted: true},
		{Intensity: 4, Acted: false},
	}
	assert.Equal(t, 2, pickSurfacableMemory(npc))
}
