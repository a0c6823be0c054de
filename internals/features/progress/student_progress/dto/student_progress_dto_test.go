package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialearning_backend/internals/features/academics/students/model"
	"socialearning_backend/internals/features/progress/engine"
)

func TestToModuleStateDTO(t *testing.T) {
	mp := engine.ModuleProgress{
		Missions: [engine.MissionCount]engine.MissionState{
			engine.Passed, engine.Passed, engine.Failed, engine.Unanswered,
		},
		Blocked: true,
	}

	out := ToModuleStateDTO(2, mp)

	assert.Equal(t, 2, out.Module)
	assert.Equal(t, "passed", out.M1)
	assert.Equal(t, "passed", out.M2)
	assert.Equal(t, "failed", out.M3)
	assert.Equal(t, "unanswered", out.M4)
	assert.True(t, out.Blocked)
	assert.Equal(t, engine.MissionBlocked, out.CurrentMission)
	assert.Equal(t, 50, out.Points)
}

func TestToBoardDTO(t *testing.T) {
	student := model.StudentModel{
		StudentDNI:      "12345678",
		StudentNickname: "Lucía",
		StudentSubject:  "Matemáticas",
		StudentTutor:    "Prof. Rivas",
	}

	pm := engine.ProgressMap{
		1: {Missions: [engine.MissionCount]engine.MissionState{
			engine.Passed, engine.Passed, engine.Passed, engine.Passed,
		}},
		2: {Missions: [engine.MissionCount]engine.MissionState{
			engine.Passed, engine.Unanswered, engine.Unanswered, engine.Unanswered,
		}},
	}

	last := time.Date(2025, 4, 10, 15, 0, 0, 0, time.UTC)
	board := ToBoardDTO(student, pm, &last)

	assert.Equal(t, "12345678", board.DNI)
	assert.Equal(t, "Lucía", board.Nickname)
	assert.Equal(t, "Matemáticas", board.Subject)
	assert.Equal(t, "Prof. Rivas", board.Tutor)

	assert.Equal(t, 2, board.CurrentModule)
	assert.Equal(t, 2, board.CurrentMission)
	assert.False(t, board.Blocked)
	assert.Equal(t, 125, board.TotalPoints)
	assert.False(t, board.Regularized)

	require.Len(t, board.Modules, 2)
	assert.Equal(t, 1, board.Modules[0].Module)
	assert.Equal(t, engine.MissionAllDone, board.Modules[0].CurrentMission)
	assert.Equal(t, 2, board.Modules[1].Module)

	require.NotNil(t, board.LastSessionDate)
	assert.Equal(t, last, *board.LastSessionDate)
}

func TestToBoardDTOBlockedModule(t *testing.T) {
	student := model.StudentModel{StudentDNI: "87654321", StudentNickname: "Mario", StudentSubject: "Física"}

	pm := engine.ProgressMap{
		1: {
			Missions: [engine.MissionCount]engine.MissionState{
				engine.Passed, engine.Failed, engine.Unanswered, engine.Unanswered,
			},
			Blocked: true,
		},
	}

	board := ToBoardDTO(student, pm, nil)

	assert.Equal(t, 1, board.CurrentModule)
	assert.Equal(t, engine.MissionBlocked, board.CurrentMission)
	assert.True(t, board.Blocked)
	assert.Equal(t, 25, board.TotalPoints)
	assert.Nil(t, board.LastSessionDate)
}
