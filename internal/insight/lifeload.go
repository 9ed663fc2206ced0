package insight

import (
	"math"
	"time"

	"github.com/vitahq/vita/internal/model"
)

// LifeLoadStatus buckets the fused life-load score.
type LifeLoadStatus string

const (
	// LifeBalanced is a sustainable rhythm.
	LifeBalanced LifeLoadStatus = "Balanced"
	// LifeHeavy is a score above 40.
	LifeHeavy LifeLoadStatus = "Heavy"
	// LifeOverloadRisk is a score above 70.
	LifeOverloadRisk LifeLoadStatus = "Overload Risk"
)

// LifeLoadBreakdown exposes the three weighted inputs.
type LifeLoadBreakdown struct {
	TaskScore  float64
	GoalScore  float64
	MoneyScore float64
}

// LifeLoadReport fuses task, goal and money pressure into one stress
// metric.
type LifeLoadReport struct {
	Status       LifeLoadStatus
	Contributors []string
	Suggestions  []string
	Breakdown    LifeLoadBreakdown
	Score        int
}

// Life load weights and thresholds. A 300-minute average day counts as
// full task capacity; each goal due within a week adds 25 pressure points.
const (
	fullCapacityMinutes = 300.0
	urgentGoalPoints    = 25.0
	urgentGoalWindow    = 7

	overloadRiskScore  = 70
	heavyLifeScore     = 40
	taskContribution   = 60.0
	goalContribution   = 50.0
	moneyContribution  = 50.0
)

// CalculateLifeLoad fuses weekly task stats, goal deadlines and spending
// instability. The reference time fixes the urgency window so the result
// is deterministic for a given snapshot.
func CalculateLifeLoad(week WeeklyTaskStats, goals []model.Goal, instability int, now time.Time) LifeLoadReport {
	taskScore := clampScore(week.AvgLoad / fullCapacityMinutes * 100)

	today := model.Day(now)
	windowEnd := model.Day(now.AddDate(0, 0, urgentGoalWindow))
	urgent := 0
	for _, g := range goals {
		if g.DeriveStatus(today) == model.GoalCompleted {
			continue
		}
		if g.TargetDate >= today && g.TargetDate <= windowEnd {
			urgent++
		}
	}
	goalScore := math.Min(100, float64(urgent)*urgentGoalPoints)

	moneyScore := float64(instability)

	score := int(math.Round(weightedSum(
		[2]float64{taskScore, 0.4},
		[2]float64{goalScore, 0.3},
		[2]float64{moneyScore, 0.3},
	)))

	status := LifeBalanced
	switch {
	case score > overloadRiskScore:
		status = LifeOverloadRisk
	case score > heavyLifeScore:
		status = LifeHeavy
	}

	var contributors, suggestions []string
	if taskScore > taskContribution {
		contributors = append(contributors, "High Task Volume")
		suggestions = append(suggestions, "📉 Workload is high. Delegate or reschedule 20% of tasks.")
	}
	if goalScore > goalContribution {
		contributors = append(contributors, "Deadline Pressure")
		suggestions = append(suggestions, "🎯 Multiple deadlines imminent. Pick 1 priority goal, postpone others.")
	}
	if moneyScore > moneyContribution {
		contributors = append(contributors, "Financial Instability")
		suggestions = append(suggestions, "💰 Money stress detected. Initiate a 3-day spending freeze.")
	}

	if status == LifeBalanced && len(contributors) == 0 {
		suggestions = append(suggestions, "✨ Great balance! You are in a sustainable rhythm.")
	}

	return LifeLoadReport{
		Score:        score,
		Status:       status,
		Contributors: contributors,
		Suggestions:  suggestions,
		Breakdown: LifeLoadBreakdown{
			TaskScore:  taskScore,
			GoalScore:  goalScore,
			MoneyScore: moneyScore,
		},
	}
}
