package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsNewSession(t *testing.T) {
	now := time.Date(2025, 9, 15, 10, 30, 0, 0, time.Local)

	t.Run("no previous session", func(t *testing.T) {
		assert.True(t, IsNewSession(nil, now))
	})

	t.Run("same calendar day regardless of elapsed minutes", func(t *testing.T) {
		earlier := now.Add(-9 * time.Hour)
		assert.False(t, IsNewSession(&earlier, now))
		justNow := now.Add(-time.Minute)
		assert.False(t, IsNewSession(&justNow, now))
	})

	t.Run("previous calendar day even minutes apart", func(t *testing.T) {
		midnight := time.Date(2025, 9, 15, 0, 0, 0, 0, time.Local)
		beforeMidnight := midnight.Add(-5 * time.Minute)
		assert.True(t, IsNewSession(&beforeMidnight, now))
	})

	t.Run("any later date counts", func(t *testing.T) {
		lastWeek := now.AddDate(0, 0, -7)
		assert.True(t, IsNewSession(&lastWeek, now))
	})
}

func TestResetForNewSession(t *testing.T) {
	t.Run("failed goes back to unanswered, passed is kept", func(t *testing.T) {
		mp := ModuleProgress{
			Missions: [4]MissionState{Passed, Passed, Failed, Unanswered},
			Blocked:  true,
		}
		got := ResetForNewSession(mp)
		assert.False(t, got.Blocked)
		assert.Equal(t, Passed, got.Mission(1))
		assert.Equal(t, Passed, got.Mission(2))
		assert.Equal(t, Unanswered, got.Mission(3))
		assert.Equal(t, Unanswered, got.Mission(4))
	})

	t.Run("idempotent", func(t *testing.T) {
		mp := ModuleProgress{Missions: [4]MissionState{Passed, Failed}, Blocked: true}
		once := ResetForNewSession(mp)
		twice := ResetForNewSession(once)
		assert.Equal(t, once, twice)
	})

	t.Run("unblocked module untouched", func(t *testing.T) {
		mp := ModuleProgress{Missions: [4]MissionState{Passed, Failed}}
		assert.Equal(t, mp, ResetForNewSession(mp))
	})
}

func TestApplyNewSession(t *testing.T) {
	pm := ProgressMap{
		1: passedModule(),
		2: {Missions: [4]MissionState{Passed, Failed}, Blocked: true},
	}
	got, changed := ApplyNewSession(pm)
	assert.Equal(t, []int{2}, changed)
	assert.Equal(t, passedModule(), got[1])
	assert.False(t, got[2].Blocked)
	assert.Equal(t, 2, CurrentMission(got[2]))

	t.Run("second application is a no-op", func(t *testing.T) {
		again, changed := ApplyNewSession(got)
		assert.Empty(t, changed)
		assert.Equal(t, got, again)
	})
}
