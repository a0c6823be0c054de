package engine

// Celebration is the single view-state the client shows after an answer.
// Modeling it as one enum (instead of independent "show X" flags) makes
// impossible combinations, like two overlays at once, unrepresentable.
type Celebration int8

const (
	CelebrationNone Celebration = iota
	CelebrationMission
	CelebrationModule
	CelebrationRegularization
)

func (c Celebration) String() string {
	switch c {
	case CelebrationMission:
		return "mission"
	case CelebrationModule:
		return "module"
	case CelebrationRegularization:
		return "regularization"
	default:
		return "none"
	}
}

// CelebrationFor decides what to celebrate after mission outcome `passed`
// was applied to `module`, whose updated record is answered and whose
// full subject state is all. Failures celebrate nothing; the caller
// surfaces the "see you next class" message off the blocked state.
func CelebrationFor(answered ModuleProgress, module int, all ProgressMap, passed bool) Celebration {
	if !passed {
		return CelebrationNone
	}
	if CurrentMission(answered) != MissionAllDone {
		return CelebrationMission
	}
	if module == ModuleCount && Regularized(all) {
		return CelebrationRegularization
	}
	return CelebrationModule
}
