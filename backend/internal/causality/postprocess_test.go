package causality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldforge/sim/backend/internal/model"
)

func TestFormWitnessMemories_BystandersGetWitnessedEventMemory(t *testing.T) {
	e := newTestEngine("postprocess-seed")
	loc := model.HexCoord{Q: 1, R: 1}
	e.World.NPCs.Put("actor", &model.NPC{ID: "actor", Alive: true, Location: loc})
	e.World.NPCs.Put("bystander", &model.NPC{ID: "bystander", Alive: true, Location: loc})

	evt := &model.WorldEvent{
		ID:        "witness-1",
		Type:      model.EventFestival,
		Timestamp: 1,
		Location:  loc,
		Actors:    []string{"actor"},
		Witnessed: true,
		Magnitude: 1,
	}
	e.Process(evt)

	bystander := e.State.ReactiveNPC("bystander")
	require.Len(t, bystander.Memories, 1)
	assert.Equal(t, model.MemoryWitnessedEvent, bystander.Memories[0].Category)

	actorReactive := e.State.ReactiveNPC("actor")
	assert.Empty(t, actorReactive.Memories)
}

func TestFormWitnessMemories_UnwitnessedEventsFormNoMemory(t *testing.T) {
	e := newTestEngine("postprocess-seed-2")
	loc := model.HexCoord{Q: 0, R: 0}
	e.World.NPCs.Put("bystander", &model.NPC{ID: "bystander", Alive: true, Location: loc})

	evt := &model.WorldEvent{
		ID:        "witness-2",
		Type:      model.EventFestival,
		Timestamp: 1,
		Location:  loc,
		Witnessed: false,
		Magnitude: 1,
	}
	e.Process(evt)

	assert.Empty(t, e.State.ReactiveNPC("bystander").Memories)
}

func TestApplySocialShift_PositiveAndNegativeEvents(t *testing.T) {
	e := newTestEngine("postprocess-seed-3")
	e.World.NPCs.Put("hero", &model.NPC{ID: "hero", Alive: true, Reputation: 0})
	e.World.NPCs.Put("traitor", &model.NPC{ID: "traitor", Alive: true, Reputation: 0})

	e.Process(&model.WorldEvent{ID: "e1", Type: model.EventAlliance, Timestamp: 1, Actors: []string{"hero"}})
	e.Process(&model.WorldEvent{ID: "e2", Type: model.EventBetrayal, Timestamp: 1, Actors: []string{"traitor"}})

	hero, _ := e.World.NPCs.Get("hero")
	traitor, _ := e.World.NPCs.Get("traitor")
	assert.Equal(t, 1, hero.Reputation)
	assert.Equal(t, -1, traitor.Reputation)
}

func TestUpdateStoryThread_OpensAndAccumulatesOnSharedActor(t *testing.T) {
	e := newTestEngine("postprocess-seed-4")

	e.Process(&model.WorldEvent{ID: "e1", Type: model.EventBattle, Timestamp: 1, Actors: []string{"hero"}, Magnitude: 2})
	require.Equal(t, 1, e.World.StoryThreads.Len())

	e.Process(&model.WorldEvent{ID: "e2", Type: model.EventBattle, Timestamp: 2, Actors: []string{"hero"}, Magnitude: 2})
	assert.Equal(t, 1, e.World.StoryThreads.Len())

	var thread *model.StoryThread
	e.World.StoryThreads.Each(func(_ string, th *model.StoryThread) bool {
		thread = th
		return false
	})
	require.NotNil(t, thread)
	assert.Len(t, thread.Beats, 2)
}

func TestUpdateStoryThread_NoActorsSkipsThread(t *testing.T) {
	e := newTestEngine("postprocess-seed-5")
	e.Process(&model.WorldEvent{ID: "e1", Type: model.EventFestival, Timestamp: 1})
	assert.Equal(t, 0, e.World.StoryThreads.Len())
}
