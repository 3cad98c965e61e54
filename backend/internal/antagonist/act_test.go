package antagonist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldforge/sim/backend/internal/causality"
	"github.com/worldforge/sim/backend/internal/consequence"
	"github.com/worldforge/sim/backend/internal/content"
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/prose"
	"github.com/worldforge/sim/backend/internal/world"
	"github.com/worldforge/sim/backend/internal/worldrand"
)

func newTestActor(seed string) (*Actor, *world.World) {
	w := world.NewWorld()
	st := world.NewState(200, 30)
	tables := content.DefaultTables()
	composer := prose.NewComposer(prose.DefaultTemplates())
	queue := consequence.NewQueue()
	rng := worldrand.New(seed)
	engine := causality.NewEngine(w, st, rng, composer, queue, seed)
	return NewActor(w, st, tables, composer, queue, engine, rng, seed), w
}

func TestAct_DeadAntagonistIsNoop(t *testing.T) {
	actor, _ := newTestActor("act-seed-1")
	ant := &model.Antagonist{ID: "a1", Alive: false}
	assert.Nil(t, actor.Act(ant, 10))
}

func TestAct_IncrementsNotorietyAndFollowers(t *testing.T) {
	actor, w := newTestActor("act-seed-2")
	w.Settlements.Put("riverhold", &model.Settlement{
		ID: "riverhold", Coord: model.HexCoord{Q: 1, R: 1},
		Supply: map[string]int{"grain": 50, "iron": 20},
	})
	ant := &model.Antagonist{ID: "a1", Name: "Korrath", Epithet: "the Red Hand", Archetype: model.ArchetypeBanditChief, Territory: "riverhold", Alive: true, Followers: 10}

	logs := actor.Act(ant, 100)

	require.NotEmpty(t, logs)
	assert.Equal(t, 1, ant.Notoriety)
	assert.Greater(t, ant.Followers, 10)
}

func TestAct_BanditChiefStealsSupply(t *testing.T) {
	actor, w := newTestActor("act-seed-3")
	w.Settlements.Put("riverhold", &model.Settlement{
		ID: "riverhold", Coord: model.HexCoord{Q: 1, R: 1},
		Supply: map[string]int{"grain": 50},
	})
	ant := &model.Antagonist{ID: "a1", Archetype: model.ArchetypeBanditChief, Territory: "riverhold", Alive: true}

	actor.Act(ant, 100)

	s, _ := w.Settlements.Get("riverhold")
	assert.Less(t, s.Supply["grain"], 50)
}

func TestAct_CultLeaderLowersNPCReputation(t *testing.T) {
	actor, w := newTestActor("act-seed-4")
	coord := model.HexCoord{Q: 2, R: 2}
	w.Settlements.Put("hollow", &model.Settlement{ID: "hollow", Coord: coord})
	w.NPCs.Put("npc1", &model.NPC{ID: "npc1", Alive: true, Location: coord, Reputation: 2})
	ant := &model.Antagonist{ID: "a1", Archetype: model.ArchetypeCultLeader, Territory: "hollow", Alive: true}

	actor.Act(ant, 100)

	npc, _ := w.NPCs.Get("npc1")
	assert.Equal(t, 1, npc.Reputation)
}

func TestAct_VampireKillsNPCThroughDeathPipeline(t *testing.T) {
	actor, w := newTestActor("act-seed-5")
	coord := model.HexCoord{Q: 3, R: 3}
	w.Settlements.Put("crypt", &model.Settlement{ID: "crypt", Coord: coord})
	w.NPCs.Put("npc1", &model.NPC{ID: "npc1", Alive: true, Location: coord})
	ant := &model.Antagonist{ID: "a1", Archetype: model.ArchetypeVampire, Territory: "crypt", Alive: true}

	logs := actor.Act(ant, 100)

	npc, _ := w.NPCs.Get("npc1")
	assert.False(t, npc.Alive)
	assert.NotEmpty(t, logs)
}

func TestAct_HighNotorietyCanPropagateRumor(t *testing.T) {
	actor, w := newTestActor("act-seed-6")
	w.Settlements.Put("s1", &model.Settlement{ID: "s1", Coord: model.HexCoord{Q: 1}})
	w.Settlements.Put("s2", &model.Settlement{ID: "s2", Coord: model.HexCoord{Q: 2}})
	ant := &model.Antagonist{ID: "a1", Name: "Korrath", Epithet: "the Red Hand", Archetype: model.ArchetypeBanditChief, Territory: "s1", Alive: true, Notoriety: 5}

	var sawRumor bool
	for i := 0; i < 30; i++ {
		actor.Act(ant, int64(i))
		if w.ActiveRumors.Len() > 0 {
			sawRumor = true
			break
		}
	}
	assert.True(t, sawRumor)
}
