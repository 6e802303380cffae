package domain

// DraftTask is an analyzer-proposed task before review. It has no id and no
// completion state; both are assigned when the reviewer confirms.
type DraftTask struct {
	Description string   `json:"description"`
	Assignee    string   `json:"assignee"`
	Priority    Priority `json:"priority"`
	Department  string   `json:"department"`
	Deadline    string   `json:"deadline"`
}

// DraftResult is the analyzer's output for one upload: transient, never
// persisted directly. It exists only between analysis and the reviewer's
// confirm or cancel.
type DraftResult struct {
	Summary   string      `json:"summary"`
	Tasks     []DraftTask `json:"tasks"`
	Decisions []Decision  `json:"decisions"`
}
