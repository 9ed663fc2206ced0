package insight

import (
	"fmt"
	"math"
	"strings"

	"github.com/vitahq/vita/internal/model"
)

// SavingsStatus buckets the financial health score.
type SavingsStatus string

const (
	// SavingsExcellent is a health score of 80 or above.
	SavingsExcellent SavingsStatus = "Excellent"
	// SavingsHealthy is 60-79.
	SavingsHealthy SavingsStatus = "Healthy"
	// SavingsFair is 40-59.
	SavingsFair SavingsStatus = "Fair"
	// SavingsCritical is below 40.
	SavingsCritical SavingsStatus = "Critical"
)

// SavingsReport classifies one month of spending into needs and wants and
// scores financial health against the 50/30/20 heuristic.
type SavingsReport struct {
	Status           SavingsStatus
	Insights         []string
	Income           float64
	TotalExpenses    float64
	Needs            float64
	Wants            float64
	SavingsPotential float64
	ActualSavings    float64
	HealthScore      int
}

// wantsKeywords flags Food expenses that are really delivery or ride
// orders rather than groceries.
var wantsKeywords = []string{"zomato", "swiggy", "uber", "pizza"}

// savingsTargetRate is the savings slice of the 50/30/20 rule.
const savingsTargetRate = 0.20

// AnalyzeSavings classifies expenses and subscriptions into needs/wants
// and derives the monthly savings health readout.
func AnalyzeSavings(salary float64, expenses []model.Expense, subs []model.Subscription) SavingsReport {
	var needs, wants float64

	// Subscriptions are treated as wants across the board.
	for _, s := range subs {
		wants += s.Amount
	}

	for _, e := range expenses {
		switch e.Category {
		case model.CategoryRent, model.CategoryTransport:
			needs += e.Amount
		case model.CategoryFood:
			if noteMatchesWants(e.NormalizedNote()) {
				wants += e.Amount
			} else {
				// Basic groceries count as a need.
				needs += e.Amount
			}
		default:
			// Fun, Other and anything unclassified default to wants.
			wants += e.Amount
		}
	}

	totalExpenses := needs + wants
	actualSavings := salary - totalExpenses
	savingsPotential := math.Max(0, salary*savingsTargetRate)

	score := 50.0

	var savingsRate float64
	if salary > 0 {
		savingsRate = actualSavings / salary
	}
	switch {
	case savingsRate >= 0.20:
		score += 30
	case savingsRate >= 0.10:
		score += 15
	case savingsRate < 0:
		score -= 20
	}

	if salary > 0 {
		needsRatio := needs / salary
		if needsRatio < 0.60 {
			score += 10
		} else if needsRatio > 0.80 {
			score -= 10
		}
		if wants/salary < 0.30 {
			score += 10
		}
	}
	score = clampScore(score)

	status := SavingsFair
	switch {
	case score >= 80:
		status = SavingsExcellent
	case score >= 60:
		status = SavingsHealthy
	case score < 40:
		status = SavingsCritical
	}

	var insights []string
	if actualSavings < savingsPotential {
		saved := math.Max(0, actualSavings)
		insights = append(insights, fmt.Sprintf("📉 Savings Gap: You saved ₹%.0f, but safe target is ₹%.0f.", saved, savingsPotential))
	} else {
		insights = append(insights, fmt.Sprintf("✅ On Track: You are saving %d%% of your income!", roundPct(savingsRate)))
	}
	if salary > 0 && wants/salary > 0.35 {
		insights = append(insights, fmt.Sprintf("💸 High Wants: 'Wants' (Fun, Shopping) take %d%% of income. Aim for <30%%.", roundPct(wants/salary)))
	}
	if salary > 0 && needs/salary > 0.70 {
		insights = append(insights, fmt.Sprintf("🏠 High Fixed Costs: Needs take %d%% of income. Rent/Transport might be too high.", roundPct(needs/salary)))
	}

	return SavingsReport{
		Income:           salary,
		TotalExpenses:    totalExpenses,
		Needs:            needs,
		Wants:            wants,
		SavingsPotential: savingsPotential,
		ActualSavings:    actualSavings,
		HealthScore:      int(score),
		Status:           status,
		Insights:         insights,
	}
}

func noteMatchesWants(note string) bool {
	for _, kw := range wantsKeywords {
		if strings.Contains(note, kw) {
			return true
		}
	}
	return false
}
