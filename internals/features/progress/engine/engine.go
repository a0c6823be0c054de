// Package engine derives everything the portal shows a student from the
// persisted per-module mission records: current module, current mission,
// blocking state, points. All functions are pure; persistence and HTTP
// live elsewhere.
package engine

import "errors"

const (
	// MissionCount is the number of missions per module:
	// 1 read confirmation, 2 graded activity, 3 module question, 4 practical delivery.
	MissionCount = 4

	// ModuleCount is the number of modules per subject.
	ModuleCount = 4

	// PointsPerMission is awarded for each mission answered positively.
	PointsPerMission = 25

	// ModuleBonusPoints is the celebratory "+100" shown when a module is
	// completed. It is narrative only and is never added to the total.
	ModuleBonusPoints = 100
)

// Sentinels returned by CurrentMission.
const (
	MissionBlocked = -1               // module locked until the next class
	MissionAllDone = MissionCount + 1 // every mission of the module passed
)

var ErrBadMission = errors.New("engine: mission number out of range")

// MissionState is the tri-state answer of a single mission.
type MissionState int8

const (
	Unanswered MissionState = iota // not attempted yet
	Passed
	Failed
)

// StateFromBool maps the stored nullable boolean to a MissionState.
func StateFromBool(v *bool) MissionState {
	switch {
	case v == nil:
		return Unanswered
	case *v:
		return Passed
	default:
		return Failed
	}
}

// Bool maps a MissionState back to the stored nullable boolean.
func (s MissionState) Bool() *bool {
	switch s {
	case Passed:
		v := true
		return &v
	case Failed:
		v := false
		return &v
	default:
		return nil
	}
}

func (s MissionState) String() string {
	switch s {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	default:
		return "unanswered"
	}
}

// ModuleProgress is the state of one module's four missions.
type ModuleProgress struct {
	Missions [MissionCount]MissionState
	Blocked  bool
}

// Mission returns the state of mission n (1-based).
func (mp ModuleProgress) Mission(n int) MissionState {
	if n < 1 || n > MissionCount {
		return Unanswered
	}
	return mp.Missions[n-1]
}

// Complete reports whether every mission of the module is passed.
func (mp ModuleProgress) Complete() bool {
	for _, s := range mp.Missions {
		if s != Passed {
			return false
		}
	}
	return true
}

// PassedCount returns how many missions of the module are passed.
func (mp ModuleProgress) PassedCount() int {
	n := 0
	for _, s := range mp.Missions {
		if s == Passed {
			n++
		}
	}
	return n
}

// ProgressMap holds a student's module records for one subject, keyed by
// module number 1..ModuleCount. Absent modules are simply not started.
type ProgressMap map[int]ModuleProgress

// CurrentModule scans modules 1..ModuleCount in order and returns the
// first one that is missing, blocked, or incomplete. When everything is
// done it saturates at ModuleCount; completion is reported separately by
// Regularized.
func CurrentModule(pm ProgressMap) int {
	for module := 1; module <= ModuleCount; module++ {
		mp, ok := pm[module]
		if !ok || mp.Blocked || !mp.Complete() {
			return module
		}
	}
	return ModuleCount
}

// CurrentMission returns the mission the student should face inside one
// module: MissionBlocked while the module is locked, the first mission
// that is not yet passed, or MissionAllDone.
func CurrentMission(mp ModuleProgress) int {
	if mp.Blocked {
		return MissionBlocked
	}
	for i, s := range mp.Missions {
		if s != Passed {
			return i + 1
		}
	}
	return MissionAllDone
}

// Answer records the outcome of mission n on a module. A negative answer
// blocks the whole module until the session-reset policy lifts it; a
// positive answer never blocks. Only mission n changes.
func Answer(mp ModuleProgress, n int, passed bool) (ModuleProgress, error) {
	if n < 1 || n > MissionCount {
		return mp, ErrBadMission
	}
	if passed {
		mp.Missions[n-1] = Passed
	} else {
		mp.Missions[n-1] = Failed
		mp.Blocked = true
	}
	return mp, nil
}

// ModulePoints is the point total of a single module record.
func ModulePoints(mp ModuleProgress) int {
	return mp.PassedCount() * PointsPerMission
}

// TotalPoints sums mission points over every module record. The module
// completion bonus is intentionally excluded (see ModuleBonusPoints).
func TotalPoints(pm ProgressMap) int {
	total := 0
	for _, mp := range pm {
		total += ModulePoints(mp)
	}
	return total
}

// Regularized reports whether the student completed all modules of the
// subject, the milestone required for course eligibility.
func Regularized(pm ProgressMap) bool {
	for module := 1; module <= ModuleCount; module++ {
		mp, ok := pm[module]
		if !ok || !mp.Complete() {
			return false
		}
	}
	return true
}
