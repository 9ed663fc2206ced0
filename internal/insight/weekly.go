package insight

import (
	"fmt"
	"math"
	"time"
)

// DayLoad pairs a calendar day with its analyzed load. Week slices are
// always ordered oldest-first.
type DayLoad struct {
	Date string
	Load DailyLoad
}

// LoadPoint is one bar of the weekly load chart.
type LoadPoint struct {
	Label  string
	Date   string
	Effort int
}

// WeeklyTaskStats aggregates the last seven days of daily loads.
type WeeklyTaskStats struct {
	HeavyDays         int
	DaysWithData      int
	AvgLoad           float64
	AvgCompletionRate int
}

// AnalyzeWeek computes weekly statistics from per-day loads. Averages are
// taken over days that have at least one task; the completion average is
// an unweighted mean of per-day rates.
func AnalyzeWeek(week []DayLoad) WeeklyTaskStats {
	var stats WeeklyTaskStats

	var effortSum, rateSum int
	for _, day := range week {
		if day.Load.LoadLevel == LoadHeavy {
			stats.HeavyDays++
		}
		if day.Load.TaskCount == 0 {
			continue
		}
		stats.DaysWithData++
		effortSum += day.Load.TotalEffort
		rateSum += day.Load.CompletionRate
	}

	if stats.DaysWithData > 0 {
		stats.AvgLoad = float64(effortSum) / float64(stats.DaysWithData)
		stats.AvgCompletionRate = int(math.Round(float64(rateSum) / float64(stats.DaysWithData)))
	}

	return stats
}

// Burnout thresholds.
const (
	burnoutHeavyDays     = 3
	burnoutAvgLoad       = 240
	consistentDays       = 5
	lowCompletionPct     = 50
	lowCompletionMinData = 2
)

// DetectBurnout runs the independent burnout rules over weekly stats.
// Several insights can fire at once; a quiet week yields none.
func DetectBurnout(stats WeeklyTaskStats) []string {
	var insights []string

	if stats.DaysWithData >= consistentDays {
		insights = append(insights, fmt.Sprintf("✅ Consistent tracking: you planned tasks on %d of the last 7 days.", stats.DaysWithData))
	}
	if stats.HeavyDays >= burnoutHeavyDays {
		insights = append(insights, fmt.Sprintf("🔥 Burnout pattern: %d heavy days this week. Schedule recovery time.", stats.HeavyDays))
	}
	if stats.AvgLoad > burnoutAvgLoad {
		insights = append(insights, fmt.Sprintf("⚠️ High baseline: you average %.0f min of planned work per day.", stats.AvgLoad))
	}
	if stats.AvgCompletionRate < lowCompletionPct && stats.DaysWithData > lowCompletionMinData {
		insights = append(insights, fmt.Sprintf("📉 Low completion: only %d%% of planned tasks got done this week.", stats.AvgCompletionRate))
	}

	return insights
}

// LoadHistory converts per-day loads into chart points labeled by
// weekday, preserving the oldest-first order.
func LoadHistory(week []DayLoad) []LoadPoint {
	points := make([]LoadPoint, 0, len(week))
	for _, day := range week {
		label := day.Date
		if t, err := time.Parse("2006-01-02", day.Date); err == nil {
			label = t.Format("Mon")
		}
		points = append(points, LoadPoint{
			Label:  label,
			Date:   day.Date,
			Effort: day.Load.TotalEffort,
		})
	}
	return points
}
