package engine

import "sort"

// Standing is one row of a subject leaderboard.
type Standing struct {
	DNI      string `json:"dni"`
	Nickname string `json:"nickname"`
	Points   int    `json:"points"`
	Rank     int    `json:"rank"`
}

// RankStandings orders a leaderboard by points descending and assigns
// ordinal ranks starting at 1. The original board had no documented
// tie-break; ties here break by dni ascending so ranks are stable
// between reloads.
func RankStandings(list []Standing) []Standing {
	out := make([]Standing, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].DNI < out[j].DNI
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
