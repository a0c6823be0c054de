package engine

import "time"

// IsNewSession reports whether a new class session has started since the
// last recorded activity. Sessions are calendar days in local time: any
// login on a later date counts, no matter how few hours elapsed.
func IsNewSession(last *time.Time, now time.Time) bool {
	if last == nil {
		return true
	}
	y1, m1, d1 := last.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 != y2 || m1 != m2 || d1 != d2
}

// ResetForNewSession lifts the block on a module at the start of a new
// session: failed missions go back to unanswered, passed ones are kept.
// Unblocked modules pass through untouched, which makes the reset
// idempotent.
func ResetForNewSession(mp ModuleProgress) ModuleProgress {
	if !mp.Blocked {
		return mp
	}
	for i, s := range mp.Missions {
		if s == Failed {
			mp.Missions[i] = Unanswered
		}
	}
	mp.Blocked = false
	return mp
}

// ApplyNewSession runs ResetForNewSession over every blocked module and
// returns the module numbers that changed so the caller can persist just
// those records. It is meant to run once, at load time, before any
// current-module/mission derivation.
func ApplyNewSession(pm ProgressMap) (ProgressMap, []int) {
	var changed []int
	out := make(ProgressMap, len(pm))
	for module, mp := range pm {
		if mp.Blocked {
			out[module] = ResetForNewSession(mp)
			changed = append(changed, module)
		} else {
			out[module] = mp
		}
	}
	return out, changed
}
