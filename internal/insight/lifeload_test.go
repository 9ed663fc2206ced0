package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vitahq/vita/internal/model"
)

var lifeLoadNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func TestCalculateLifeLoadHeavy(t *testing.T) {
	week := WeeklyTaskStats{AvgLoad: 300}
	goals := []model.Goal{
		{Title: "Ship release", TargetDate: "2026-08-30", Progress: 50},
		{Title: "Renew passport", TargetDate: "2026-09-02", Progress: 10},
	}

	report := CalculateLifeLoad(week, goals, 0, lifeLoadNow)

	// Tasks 100*0.4 + goals 50*0.3 + money 0*0.3 = 55.
	assert.Equal(t, 55, report.Score)
	assert.Equal(t, LifeHeavy, report.Status)
	assert.InDelta(t, 100.0, report.Breakdown.TaskScore, 0.001)
	assert.InDelta(t, 50.0, report.Breakdown.GoalScore, 0.001)
	assert.InDelta(t, 0.0, report.Breakdown.MoneyScore, 0.001)

	assert.Equal(t, []string{"High Task Volume"}, report.Contributors)
	assert.Len(t, report.Suggestions, 1)
}

func TestCalculateLifeLoadEmpty(t *testing.T) {
	report := CalculateLifeLoad(WeeklyTaskStats{}, nil, 0, lifeLoadNow)

	assert.Zero(t, report.Score)
	assert.Equal(t, LifeBalanced, report.Status)
	assert.Empty(t, report.Contributors)
	assert.Equal(t, []string{"✨ Great balance! You are in a sustainable rhythm."}, report.Suggestions)
}

func TestCalculateLifeLoadOverloadRisk(t *testing.T) {
	week := WeeklyTaskStats{AvgLoad: 400}
	goals := []model.Goal{
		{Title: "a", TargetDate: "2026-08-29", Progress: 0},
		{Title: "b", TargetDate: "2026-08-30", Progress: 0},
		{Title: "c", TargetDate: "2026-08-31", Progress: 0},
	}

	report := CalculateLifeLoad(week, goals, 90, lifeLoadNow)

	// Tasks clamp at 100: 40 + goals 75*0.3 = 22.5 + money 27 = 90 (rounded).
	assert.Equal(t, 90, report.Score)
	assert.Equal(t, LifeOverloadRisk, report.Status)
	assert.ElementsMatch(t, []string{"High Task Volume", "Deadline Pressure", "Financial Instability"}, report.Contributors)
	assert.Len(t, report.Suggestions, 3)
}

func TestCalculateLifeLoadUrgentGoalWindow(t *testing.T) {
	tests := []struct {
		name       string
		targetDate string
		progress   int
		wantUrgent bool
	}{
		{"due today", "2026-08-28", 50, true},
		{"due in exactly seven days", "2026-09-04", 50, true},
		{"due in eight days", "2026-09-05", 50, false},
		{"already overdue", "2026-08-20", 50, false},
		{"due soon but completed", "2026-08-30", 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goals := []model.Goal{{Title: "g", TargetDate: tt.targetDate, Progress: tt.progress}}
			report := CalculateLifeLoad(WeeklyTaskStats{}, goals, 0, lifeLoadNow)

			if tt.wantUrgent {
				assert.InDelta(t, 25.0, report.Breakdown.GoalScore, 0.001)
			} else {
				assert.Zero(t, report.Breakdown.GoalScore)
			}
		})
	}
}

func TestCalculateLifeLoadGoalScoreCap(t *testing.T) {
	var goals []model.Goal
	for i := 0; i < 6; i++ {
		goals = append(goals, model.Goal{Title: "g", TargetDate: "2026-08-30", Progress: 0})
	}

	report := CalculateLifeLoad(WeeklyTaskStats{}, goals, 0, lifeLoadNow)
	assert.InDelta(t, 100.0, report.Breakdown.GoalScore, 0.001)
}
