package insight

import "math"

// StabilityLabel buckets the combined stability score.
type StabilityLabel string

const (
	// StabilityExcellent is a score of 80 or above.
	StabilityExcellent StabilityLabel = "Excellent"
	// StabilityGood is a score of 70-79.
	StabilityGood StabilityLabel = "Good"
	// StabilityFair is a score of 50-69.
	StabilityFair StabilityLabel = "Fair"
	// StabilityUnstable is a score below 50.
	StabilityUnstable StabilityLabel = "Unstable"
)

// StabilityMetrics is the combined money plus task stability readout.
type StabilityMetrics struct {
	Label      StabilityLabel
	Score      int
	MoneyScore int
	TaskScore  int
}

// Spending instability rule points.
const (
	instabilityOverspend     = 50
	instabilityNearLimit     = 30
	instabilityConcentration = 20
	nearLimitRatio           = 0.9
	topCategoryShare         = 60.0
)

// SpendingInstability scores 0-100 how risky the month's spending looks
// against salary. Zero salary or an empty month reads as no signal, not
// as risk.
func SpendingInstability(stats []CategoryStat, salary float64) int {
	if salary <= 0 || len(stats) == 0 {
		return 0
	}

	var total float64
	for _, s := range stats {
		total += s.Total
	}
	if total <= 0 {
		return 0
	}

	score := 0
	switch {
	case total > salary:
		score += instabilityOverspend
	case total > nearLimitRatio*salary:
		score += instabilityNearLimit
	}

	// Stats are sorted descending, so the first entry is the top category.
	if stats[0].Percentage > topCategoryShare {
		score += instabilityConcentration
	}

	return int(clampScore(float64(score)))
}

// CalculateStability fuses the spending instability with the last seven
// days of task load into a single 0-100 score.
func CalculateStability(instability int, week []DayLoad) StabilityMetrics {
	moneyScore := 100 - instability

	trackedDays := 0
	heavyDays := 0
	for _, day := range week {
		if day.Load.TotalEffort > 0 {
			trackedDays++
		}
		if day.Load.LoadLevel == LoadHeavy {
			heavyDays++
		}
	}

	taskScore := 50.0
	switch {
	case trackedDays >= 5:
		taskScore += 30
	case trackedDays >= 3:
		taskScore += 10
	}
	if heavyDays >= 3 {
		taskScore -= 30
	}
	taskScore = clampScore(taskScore)

	score := int(math.Round(weightedSum(
		[2]float64{float64(moneyScore), 0.5},
		[2]float64{taskScore, 0.5},
	)))

	var label StabilityLabel
	switch {
	case score >= 80:
		label = StabilityExcellent
	case score < 50:
		label = StabilityUnstable
	case score < 70:
		label = StabilityFair
	default:
		label = StabilityGood
	}

	return StabilityMetrics{
		Score:      score,
		Label:      label,
		MoneyScore: moneyScore,
		TaskScore:  int(taskScore),
	}
}
