package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCelebrationFor(t *testing.T) {
	t.Run("failure celebrates nothing", func(t *testing.T) {
		mp, err := Answer(ModuleProgress{}, 1, false)
		require.NoError(t, err)
		got := CelebrationFor(mp, 1, ProgressMap{1: mp}, false)
		assert.Equal(t, CelebrationNone, got)
	})

	t.Run("mid-module pass celebrates the mission", func(t *testing.T) {
		mp, err := Answer(ModuleProgress{}, 1, true)
		require.NoError(t, err)
		got := CelebrationFor(mp, 1, ProgressMap{1: mp}, true)
		assert.Equal(t, CelebrationMission, got)
	})

	t.Run("last mission of a mid subject module celebrates the module", func(t *testing.T) {
		mp := passedModule()
		got := CelebrationFor(mp, 2, ProgressMap{1: passedModule(), 2: mp}, true)
		assert.Equal(t, CelebrationModule, got)
	})

	t.Run("module 4 completion with earlier gaps is only a module", func(t *testing.T) {
		mp := passedModule()
		pm := ProgressMap{
			1: passedModule(),
			2: {Missions: [4]MissionState{Passed, Passed}},
			3: passedModule(),
			4: mp,
		}
		got := CelebrationFor(mp, 4, pm, true)
		assert.Equal(t, CelebrationModule, got)
	})

	t.Run("full subject completion regularizes", func(t *testing.T) {
		mp := passedModule()
		pm := ProgressMap{1: passedModule(), 2: passedModule(), 3: passedModule(), 4: mp}
		got := CelebrationFor(mp, 4, pm, true)
		assert.Equal(t, CelebrationRegularization, got)
	})
}
