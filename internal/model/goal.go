package model

import (
	"fmt"
	"strings"
)

// GoalStatus is derived from progress, never stored directly.
type GoalStatus string

const (
	// GoalActive is a goal still in progress.
	GoalActive GoalStatus = "Active"
	// GoalAtRisk is an incomplete goal whose target date has passed.
	GoalAtRisk GoalStatus = "At-Risk"
	// GoalCompleted is a goal at 100% progress.
	GoalCompleted GoalStatus = "Completed"
)

// Goal is a longer-horizon objective with a target date and 0-100 progress.
type Goal struct {
	Title      string
	Category   string
	TargetDate string
	Notes      string
	Status     GoalStatus
	ID         int64
	Progress   int
}

// DeriveStatus computes the goal status for a given reference day.
// Progress of 100 always wins; otherwise a past target date means at risk.
func (g *Goal) DeriveStatus(today string) GoalStatus {
	if g.Progress >= 100 {
		return GoalCompleted
	}
	if g.TargetDate != "" && g.TargetDate < today {
		return GoalAtRisk
	}
	return GoalActive
}

// Validate checks the invariants enforced at the write boundary.
func (g *Goal) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return fmt.Errorf("goal title is required")
	}
	if g.Progress < 0 || g.Progress > 100 {
		return fmt.Errorf("goal progress must be 0-100, got %d", g.Progress)
	}
	if _, err := ParseDay(g.TargetDate); err != nil {
		return fmt.Errorf("invalid goal target date %q: %w", g.TargetDate, err)
	}
	return nil
}
