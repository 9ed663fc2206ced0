package insight

import (
	"fmt"
	"time"

	"github.com/vitahq/vita/internal/model"
)

// FinancialReport is the end-of-month narrative summary.
type FinancialReport struct {
	Summary  string
	Status   HealthStatus
	Insights []string
}

// Report rule thresholds.
const (
	subOverloadShare  = 0.15
	highSpendingShare = 0.85
)

// ComposeFinancialReport combines category stats and subscription load
// into a summary with flagged insights. The Critical rule is evaluated
// after the Warning rule on purpose: when both fire, the later write
// wins and the report ends up Critical.
func ComposeFinancialReport(stats []CategoryStat, salary float64, subs []model.Subscription) FinancialReport {
	report := FinancialReport{
		Summary: "Start adding expenses.",
		Status:  StatusStable,
	}

	var totalSpent, funSpend float64
	for _, c := range stats {
		totalSpent += c.Total
		if c.Category == model.CategoryFun {
			funSpend += c.Total
		}
	}

	if len(stats) > 0 {
		top := stats[0]
		report.Summary = fmt.Sprintf("Top spend: %s (₹%.0f).", top.Category, top.Total)
	}

	subTotal := totalSubscriptionCost(subs)
	if salary > 0 && subTotal/salary > subOverloadShare {
		report.Insights = append(report.Insights, fmt.Sprintf("⚠️ Subscription Overload: Recurring bills take %d%% of your income.", roundPct(subTotal/salary)))
		report.Status = StatusWarning
	}

	if salary > 0 && totalSpent > highSpendingShare*salary {
		report.Insights = append(report.Insights, "🔥 High Spending: You have used over 85% of your salary.")
		report.Status = StatusCritical
	}

	if len(subs) > 0 && funSpend == 0 {
		report.Insights = append(report.Insights, "💡 Usage Check: You have active subscriptions but logged 0 'Fun' expenses. Are you using them?")
	}

	return report
}

// DaysLeftInMonth counts the days between now and the end of its month.
func DaysLeftInMonth(now time.Time) int {
	lastDay := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location())
	return lastDay.Day() - now.Day()
}

// ReportUnlocked reports whether the monthly report is available: it
// unlocks in the final week of the month.
func ReportUnlocked(now time.Time) bool {
	return DaysLeftInMonth(now) <= 7
}
