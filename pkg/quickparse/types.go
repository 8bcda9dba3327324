package quickparse

import "time"

// Priority is a task priority level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ParsePriority maps a priority string to its Priority value,
// defaulting to medium for anything unrecognized.
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityLow, PriorityHigh, PriorityUrgent:
		return Priority(s)
	default:
		return PriorityMedium
	}
}

// Project is a known project available for @reference resolution.
type Project struct {
	ID   string
	Name string
}

// Draft is the structured result of parsing one quick-entry line.
// It is ephemeral: recomputed in full on every parse, never persisted as-is.
type Draft struct {
	Title       string
	DueDate     *time.Time // calendar date only, no time component
	DueTime     string     // "HH:MM" 24-hour, empty when absent
	Priority    Priority   // defaults to medium
	Tags        []string   // insertion order, duplicates preserved
	ProjectName string     // typed token or resolved canonical name
	ProjectID   string     // empty means unresolved reference
	IsImportant bool
	Warning     string // empty means no warning
}

// Submittable reports whether the draft meets both hard requirements:
// a non-empty title and a resolved project.
func (d Draft) Submittable() bool {
	return d.Title != "" && d.ProjectID != ""
}

// HasWarning reports whether the draft carries an advisory warning.
func (d Draft) HasWarning() bool {
	return d.Warning != ""
}

// Warning messages surfaced on drafts.
const (
	WarningEmptyLine = "Empty line"
	WarningNoTitle   = "No task title found"
)
