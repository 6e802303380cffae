package domain

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[Priority]bool{
	PriorityHigh:   true,
	PriorityMedium: true,
	PriorityLow:    true,
}

type TaskSource string

const (
	SourcePersonal TaskSource = "personal"
	SourceTeam     TaskSource = "team"
)
