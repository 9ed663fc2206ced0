package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func day(effort, rate int) DayLoad {
	load := DailyLoad{TotalEffort: effort, CompletionRate: rate}
	if effort > 0 {
		load.TaskCount = 1
	}
	switch {
	case effort > heavyLoadMinutes:
		load.LoadLevel = LoadHeavy
	case effort > normalLoadMinutes:
		load.LoadLevel = LoadNormal
	default:
		load.LoadLevel = LoadLight
	}
	return DayLoad{Load: load}
}

func TestAnalyzeWeek(t *testing.T) {
	week := []DayLoad{
		day(0, 0),
		day(310, 100),
		day(100, 50),
		day(0, 0),
		day(400, 0),
		day(200, 100),
		day(0, 0),
	}

	stats := AnalyzeWeek(week)

	assert.Equal(t, 4, stats.DaysWithData)
	assert.Equal(t, 2, stats.HeavyDays)
	assert.InDelta(t, (310+100+400+200)/4.0, stats.AvgLoad, 0.001)
	assert.Equal(t, 63, stats.AvgCompletionRate) // round(250/4)
}

func TestAnalyzeWeekEmpty(t *testing.T) {
	stats := AnalyzeWeek(nil)

	assert.Zero(t, stats.DaysWithData)
	assert.Zero(t, stats.HeavyDays)
	assert.Zero(t, stats.AvgLoad)
	assert.Zero(t, stats.AvgCompletionRate)
}

func TestDetectBurnout(t *testing.T) {
	tests := []struct {
		name      string
		stats     WeeklyTaskStats
		wantCount int
	}{
		{
			name:      "quiet week",
			stats:     WeeklyTaskStats{DaysWithData: 1, AvgLoad: 60, AvgCompletionRate: 100},
			wantCount: 0,
		},
		{
			name:      "consistent tracking only",
			stats:     WeeklyTaskStats{DaysWithData: 5, AvgLoad: 100, AvgCompletionRate: 90},
			wantCount: 1,
		},
		{
			name:      "heavy pattern",
			stats:     WeeklyTaskStats{DaysWithData: 4, HeavyDays: 3, AvgLoad: 200, AvgCompletionRate: 80},
			wantCount: 1,
		},
		{
			name:      "everything fires",
			stats:     WeeklyTaskStats{DaysWithData: 6, HeavyDays: 4, AvgLoad: 320, AvgCompletionRate: 20},
			wantCount: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, DetectBurnout(tt.stats), tt.wantCount)
		})
	}
}

func TestDetectBurnoutLowCompletionNeedsData(t *testing.T) {
	// Low completion with only 2 tracked days is not enough signal.
	insights := DetectBurnout(WeeklyTaskStats{DaysWithData: 2, AvgCompletionRate: 10})
	assert.Empty(t, insights)

	insights = DetectBurnout(WeeklyTaskStats{DaysWithData: 3, AvgCompletionRate: 10})
	assert.Len(t, insights, 1)
	assert.Contains(t, insights[0], "Low completion")
}

func TestLoadHistory(t *testing.T) {
	week := []DayLoad{
		{Date: "2026-08-24", Load: DailyLoad{TotalEffort: 120}},
		{Date: "2026-08-25", Load: DailyLoad{TotalEffort: 0}},
		{Date: "2026-08-26", Load: DailyLoad{TotalEffort: 300}},
	}

	points := LoadHistory(week)

	assert.Len(t, points, 3)
	assert.Equal(t, "Mon", points[0].Label)
	assert.Equal(t, "Tue", points[1].Label)
	assert.Equal(t, "Wed", points[2].Label)
	assert.Equal(t, 120, points[0].Effort)
	assert.Equal(t, 0, points[1].Effort)
	assert.Equal(t, "2026-08-26", points[2].Date)
}
