package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passedModule() ModuleProgress {
	return ModuleProgress{Missions: [MissionCount]MissionState{Passed, Passed, Passed, Passed}}
}

func TestStateFromBool(t *testing.T) {
	yes, no := true, false
	assert.Equal(t, Unanswered, StateFromBool(nil))
	assert.Equal(t, Passed, StateFromBool(&yes))
	assert.Equal(t, Failed, StateFromBool(&no))

	assert.Nil(t, Unanswered.Bool())
	require.NotNil(t, Passed.Bool())
	assert.True(t, *Passed.Bool())
	require.NotNil(t, Failed.Bool())
	assert.False(t, *Failed.Bool())
}

func TestCurrentMission(t *testing.T) {
	tests := []struct {
		name string
		mp   ModuleProgress
		want int
	}{
		{"fresh module", ModuleProgress{}, 1},
		{"first passed", ModuleProgress{Missions: [4]MissionState{Passed}}, 2},
		{"three passed", ModuleProgress{Missions: [4]MissionState{Passed, Passed, Passed}}, 4},
		{"all passed", passedModule(), MissionAllDone},
		{"blocked wins over everything", ModuleProgress{Missions: [4]MissionState{Passed, Passed, Passed, Passed}, Blocked: true}, MissionBlocked},
		{"blocked with failures", ModuleProgress{Missions: [4]MissionState{Passed, Failed}, Blocked: true}, MissionBlocked},
		{"failed but not blocked resumes at the failure", ModuleProgress{Missions: [4]MissionState{Passed, Failed}}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrentMission(tt.mp))
		})
	}
}

func TestCurrentModule(t *testing.T) {
	t.Run("empty map starts at module 1", func(t *testing.T) {
		assert.Equal(t, 1, CurrentModule(ProgressMap{}))
	})

	t.Run("incomplete module holds the student", func(t *testing.T) {
		pm := ProgressMap{
			1: passedModule(),
			2: {Missions: [4]MissionState{Passed, Passed}},
		}
		assert.Equal(t, 2, CurrentModule(pm))
	})

	t.Run("blocked module is current regardless of values", func(t *testing.T) {
		blocked := passedModule()
		blocked.Blocked = true
		pm := ProgressMap{1: blocked}
		assert.Equal(t, 1, CurrentModule(pm))
	})

	t.Run("gap in modules stops the scan", func(t *testing.T) {
		pm := ProgressMap{1: passedModule(), 3: passedModule()}
		assert.Equal(t, 2, CurrentModule(pm))
	})

	t.Run("fully complete saturates at the last module", func(t *testing.T) {
		pm := ProgressMap{1: passedModule(), 2: passedModule(), 3: passedModule(), 4: passedModule()}
		assert.Equal(t, ModuleCount, CurrentModule(pm))
		assert.True(t, Regularized(pm))
	})

	t.Run("complete module advances past it", func(t *testing.T) {
		pm := ProgressMap{1: passedModule()}
		assert.Equal(t, 2, CurrentModule(pm))
		assert.Equal(t, MissionAllDone, CurrentMission(pm[1]))
	})
}

func TestAnswer(t *testing.T) {
	t.Run("negative answer blocks and touches only its mission", func(t *testing.T) {
		mp := ModuleProgress{Missions: [4]MissionState{Passed, Passed, Passed}}
		got, err := Answer(mp, 4, false)
		require.NoError(t, err)
		assert.True(t, got.Blocked)
		assert.Equal(t, Failed, got.Mission(4))
		assert.Equal(t, Passed, got.Mission(1))
		assert.Equal(t, Passed, got.Mission(2))
		assert.Equal(t, Passed, got.Mission(3))
		assert.Equal(t, MissionBlocked, CurrentMission(got))
	})

	t.Run("positive answer never blocks", func(t *testing.T) {
		got, err := Answer(ModuleProgress{}, 1, true)
		require.NoError(t, err)
		assert.False(t, got.Blocked)
		assert.Equal(t, 1, got.PassedCount())
	})

	t.Run("repeating a positive answer does not double count", func(t *testing.T) {
		mp, err := Answer(ModuleProgress{}, 2, true)
		require.NoError(t, err)
		again, err := Answer(mp, 2, true)
		require.NoError(t, err)
		assert.Equal(t, 1, again.PassedCount())
		assert.Equal(t, PointsPerMission, ModulePoints(again))
	})

	t.Run("mission out of range", func(t *testing.T) {
		_, err := Answer(ModuleProgress{}, 0, true)
		assert.ErrorIs(t, err, ErrBadMission)
		_, err = Answer(ModuleProgress{}, 5, false)
		assert.ErrorIs(t, err, ErrBadMission)
	})
}

func TestTotalPoints(t *testing.T) {
	pm := ProgressMap{
		1: passedModule(),
		2: {Missions: [4]MissionState{Passed, Passed, Failed}},
		3: {Missions: [4]MissionState{Passed}},
	}
	// 4 + 2 + 1 passed missions, 25 each; failures and blanks score nothing.
	assert.Equal(t, 7*PointsPerMission, TotalPoints(pm))

	t.Run("order independent", func(t *testing.T) {
		reordered := ProgressMap{3: pm[3], 1: pm[1], 2: pm[2]}
		assert.Equal(t, TotalPoints(pm), TotalPoints(reordered))
	})

	t.Run("bonus is narrative only", func(t *testing.T) {
		full := ProgressMap{1: passedModule(), 2: passedModule(), 3: passedModule(), 4: passedModule()}
		assert.Equal(t, ModuleCount*MissionCount*PointsPerMission, TotalPoints(full))
	})
}

// The end-to-end story from a first login through a failed practical and
// the next-day retry.
func TestProgressionScenario(t *testing.T) {
	// New student: synthesized module-1 record, everything unanswered.
	pm := ProgressMap{1: {}}
	assert.Equal(t, 1, CurrentModule(pm))
	assert.Equal(t, 1, CurrentMission(pm[1]))

	mp := pm[1]
	var err error
	for mission := 1; mission <= 3; mission++ {
		mp, err = Answer(mp, mission, true)
		require.NoError(t, err)
		assert.Equal(t, mission+1, CurrentMission(mp))
	}

	mp, err = Answer(mp, 4, false)
	require.NoError(t, err)
	pm[1] = mp

	assert.Equal(t, Failed, mp.Mission(4))
	assert.True(t, mp.Blocked)
	assert.Equal(t, MissionBlocked, CurrentMission(mp))
	assert.Equal(t, 75, TotalPoints(pm))

	// Next calendar day: the reset clears the failure, keeps the passes.
	pm, changed := ApplyNewSession(pm)
	assert.Equal(t, []int{1}, changed)
	assert.Equal(t, 4, CurrentMission(pm[1]))
	assert.Equal(t, Unanswered, pm[1].Mission(4))
	assert.Equal(t, 75, TotalPoints(pm))
}
