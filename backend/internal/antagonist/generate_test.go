package antagonist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldforge/sim/backend/internal/content"
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/worldrand"
)

func TestGenerate_DefaultThreatFollowersAndTreasure(t *testing.T) {
	rng := worldrand.New("generate-seed")
	tables := content.DefaultTables()

	ant := Generate(rng, tables, model.ArchetypeBanditChief, "riverhold", 0)

	require.NotNil(t, ant)
	assert.True(t, ant.Alive)
	assert.GreaterOrEqual(t, ant.Threat, 3)
	assert.LessOrEqual(t, ant.Threat, 7)
	assert.GreaterOrEqual(t, ant.Followers, 5)
	assert.GreaterOrEqual(t, ant.Treasure, 100*ant.Threat)
	assert.Equal(t, "riverhold", ant.Territory)
	assert.NotEmpty(t, ant.Name)
	assert.NotEmpty(t, ant.Epithet)
	assert.NotEmpty(t, ant.Motivation)
	assert.Len(t, ant.Traits, 2)
	assert.Len(t, ant.Weaknesses, 1)
}

func TestGenerate_ExplicitThreatScalesFollowersAndTreasure(t *testing.T) {
	rng := worldrand.New("generate-seed-2")
	tables := content.DefaultTables()

	ant := Generate(rng, tables, model.ArchetypeDragon, "ashfall", 9)

	assert.Equal(t, 9, ant.Threat)
	assert.GreaterOrEqual(t, ant.Followers, 5)
	assert.GreaterOrEqual(t, ant.Treasure, 900)
}

func TestGenerate_UnknownArchetypeStillProducesAnAntagonist(t *testing.T) {
	rng := worldrand.New("generate-seed-3")
	tables := content.DefaultTables()

	ant := Generate(rng, tables, model.AntagonistArchetype("unheard-of"), "nowhere", 4)

	assert.Equal(t, 4, ant.Threat)
	assert.Empty(t, ant.Epithet)
	assert.Empty(t, ant.Traits)
}
