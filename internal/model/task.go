package model

import (
	"fmt"
	"strings"
)

// TaskPriority orders tasks by urgency.
type TaskPriority string

const (
	// PriorityLow is for tasks that can slip.
	PriorityLow TaskPriority = "Low"
	// PriorityMedium is the default priority.
	PriorityMedium TaskPriority = "Medium"
	// PriorityHigh is for must-do tasks.
	PriorityHigh TaskPriority = "High"
)

// ParseTaskPriority maps a string to a priority, defaulting to Medium.
func ParseTaskPriority(s string) TaskPriority {
	switch {
	case strings.EqualFold(s, string(PriorityLow)):
		return PriorityLow
	case strings.EqualFold(s, string(PriorityHigh)):
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

// TaskCategory groups tasks by sphere of life.
type TaskCategory string

const (
	// TaskWork is professional work.
	TaskWork TaskCategory = "Work"
	// TaskPersonal is personal errands and self-care.
	TaskPersonal TaskCategory = "Personal"
	// TaskAdmin is paperwork and administrative chores.
	TaskAdmin TaskCategory = "Admin"
)

// ParseTaskCategory maps a string to a task category, defaulting to Personal.
func ParseTaskCategory(s string) TaskCategory {
	switch {
	case strings.EqualFold(s, string(TaskWork)):
		return TaskWork
	case strings.EqualFold(s, string(TaskAdmin)):
		return TaskAdmin
	default:
		return TaskPersonal
	}
}

// Task is a unit of planned work for a single calendar day. Estimated
// effort in minutes is the unit of daily load.
type Task struct {
	Title           string
	Date            string
	Priority        TaskPriority
	Category        TaskCategory
	ID              int64
	EstimatedEffort int
	Completed       bool
}

// Validate checks the invariants enforced at the write boundary.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task title is required")
	}
	if t.EstimatedEffort <= 0 {
		return fmt.Errorf("task effort must be positive minutes, got %d", t.EstimatedEffort)
	}
	if _, err := ParseDay(t.Date); err != nil {
		return fmt.Errorf("invalid task date %q: %w", t.Date, err)
	}
	return nil
}
