package dto

// MonitorRowDTO is one row of the tutor monitoring table: the student's
// position in the subject plus the current module's mission states.
type MonitorRowDTO struct {
	DNI      string `json:"dni"`
	Nickname string `json:"nickname"`
	Subject  string `json:"subject"`

	CurrentModule int    `json:"current_module"`
	M1            string `json:"m1"`
	M2            string `json:"m2"`
	M3            string `json:"m3"`
	M4            string `json:"m4"`
	Blocked       bool   `json:"blocked_until_next_class"`

	Points     int `json:"points"`
	Percentage int `json:"percentage"` // completed missions over all 16
	Rank       int `json:"rank"`
}
