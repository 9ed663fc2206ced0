package insight

import (
	"math"

	"github.com/vitahq/vita/internal/model"
)

// LoadLevel classifies a day's planned effort.
type LoadLevel string

const (
	// LoadLight is at most 2 hours of planned effort.
	LoadLight LoadLevel = "Light"
	// LoadNormal is between 2 and 5 hours.
	LoadNormal LoadLevel = "Normal"
	// LoadHeavy is more than 5 hours.
	LoadHeavy LoadLevel = "Heavy"
)

// Effort thresholds in minutes.
const (
	heavyLoadMinutes  = 300
	normalLoadMinutes = 120
)

// DailyLoad summarizes one day of tasks.
type DailyLoad struct {
	LoadLevel       LoadLevel
	StatusMessage   string
	TotalEffort     int
	CompletedEffort int
	TaskCount       int
	CompletionRate  int
}

// AnalyzeDailyLoad aggregates a single day's tasks into a load summary.
// Planned effort counts whether or not the task is done; the completion
// rate is by task count, not effort.
func AnalyzeDailyLoad(tasks []model.Task) DailyLoad {
	load := DailyLoad{TaskCount: len(tasks)}

	var completedCount int
	for _, t := range tasks {
		load.TotalEffort += t.EstimatedEffort
		if t.Completed {
			load.CompletedEffort += t.EstimatedEffort
			completedCount++
		}
	}

	if load.TaskCount > 0 {
		load.CompletionRate = int(math.Round(float64(completedCount) / float64(load.TaskCount) * 100))
	}

	switch {
	case load.TotalEffort > heavyLoadMinutes:
		load.LoadLevel = LoadHeavy
		load.StatusMessage = "High Load! Watch your energy."
	case load.TotalEffort > normalLoadMinutes:
		load.LoadLevel = LoadNormal
		load.StatusMessage = "Balanced day."
	default:
		load.LoadLevel = LoadLight
		load.StatusMessage = "Smooth sailing."
	}

	return load
}
