package consequence

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldforge/sim/backend/internal/model"
	apperrors "github.com/worldforge/sim/backend/pkg/errors"
	"github.com/worldforge/sim/backend/pkg/logger"
)

func TestDispatcher_Dispatch_RoutesToRegisteredHandler(t *testing.T) {
	d := NewDispatcher(false, nil)
	called := false
	d.Register(model.ConsequenceSpawnRumor, func(entry *model.ConsequenceEntry) ([]model.LogEntry, error) {
		called = true
		return []model.LogEntry{{Category: model.LogCategoryRumor, Summary: "ok"}}, nil
	})

	logs, err := d.Dispatch(&model.ConsequenceEntry{Tag: model.ConsequenceSpawnRumor})
	require.NoError(t, err)
	assert.True(t, called)
	require.Len(t, logs, 1)
}

func TestDispatcher_Dispatch_UnknownTagFatalInDebug(t *testing.T) {
	d := NewDispatcher(true, nil)
	_, err := d.Dispatch(&model.ConsequenceEntry{Tag: model.ConsequenceGuildHeistTarget})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrQueueDispatchUnknown)
}

func TestDispatcher_Dispatch_UnknownTagDroppedInRelease(t *testing.T) {
	nop := zerolog.Nop()
	log := &logger.LoggerV2{Logger: &nop}
	d := NewDispatcher(false, log)
	logs, err := d.Dispatch(&model.ConsequenceEntry{Tag: model.ConsequenceGuildHeistTarget})
	require.NoError(t, err)
	assert.Nil(t, logs)
}
