package insight

import (
	"sort"

	"github.com/vitahq/vita/internal/model"
)

// CategoryStat is one month's spend in a single category with its share
// of the month's total.
type CategoryStat struct {
	Category   model.ExpenseCategory
	Total      float64
	Percentage float64
}

// CategoryStats groups one month of expenses by category, sorted by
// descending total. Percentages sum to ~100 when the month has spend and
// are all 0 otherwise. Empty input yields an empty slice.
func CategoryStats(expenses []model.Expense) []CategoryStat {
	if len(expenses) == 0 {
		return nil
	}

	totals := make(map[model.ExpenseCategory]float64)
	var order []model.ExpenseCategory
	var grandTotal float64
	for _, e := range expenses {
		if _, seen := totals[e.Category]; !seen {
			order = append(order, e.Category)
		}
		totals[e.Category] += e.Amount
		grandTotal += e.Amount
	}

	stats := make([]CategoryStat, 0, len(order))
	for _, cat := range order {
		stat := CategoryStat{Category: cat, Total: totals[cat]}
		if grandTotal > 0 {
			stat.Percentage = stat.Total / grandTotal * 100
		}
		stats = append(stats, stat)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Total > stats[j].Total
	})

	return stats
}

// totalSpend sums expense amounts.
func totalSpend(expenses []model.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// totalSubscriptionCost sums subscription amounts.
func totalSubscriptionCost(subs []model.Subscription) float64 {
	var total float64
	for _, s := range subs {
		total += s.Amount
	}
	return total
}
