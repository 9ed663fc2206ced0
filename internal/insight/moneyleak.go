package insight

import (
	"fmt"
	"strings"

	"github.com/vitahq/vita/internal/model"
)

// HealthStatus is the shared Stable/Warning/Critical classification used
// by the money analyzers.
type HealthStatus string

const (
	// StatusStable means no concerning pattern was found.
	StatusStable HealthStatus = "Stable"
	// StatusWarning means at least one pattern deserves attention.
	StatusWarning HealthStatus = "Warning"
	// StatusCritical means spending needs immediate correction.
	StatusCritical HealthStatus = "Critical"
)

// LeakType identifies which rule produced a leak.
type LeakType string

const (
	// LeakOverspend is a category running over its income share limit.
	LeakOverspend LeakType = "Overspend"
	// LeakMicro is a cluster of frequent small purchases.
	LeakMicro LeakType = "Micro"
	// LeakSubscription is recurring bills eating too much income.
	LeakSubscription LeakType = "Subscription"
	// LeakSpike is a month-over-month jump in total spend.
	LeakSpike LeakType = "Spike"
)

// LeakSeverity grades a leak.
type LeakSeverity string

const (
	// SeverityHigh marks leaks that move real money.
	SeverityHigh LeakSeverity = "High"
	// SeverityMedium marks leaks worth reviewing.
	SeverityMedium LeakSeverity = "Medium"
	// SeverityLow marks minor leaks.
	SeverityLow LeakSeverity = "Low"
)

// LeakItem is one detected wasteful or risky spending pattern.
type LeakItem struct {
	Type        LeakType
	Title       string
	Description string
	Severity    LeakSeverity
	Category    model.ExpenseCategory
	Amount      float64
}

// LeakReport is the full money-leak analysis for one month.
type LeakReport struct {
	Status               HealthStatus
	ActionableSuggestion string
	Leaks                []LeakItem
	Score                int
}

// MoneyLeakInput carries the snapshots the detector reads.
type MoneyLeakInput struct {
	Expenses      []model.Expense
	PrevExpenses  []model.Expense
	Categories    []CategoryStat
	Subscriptions []model.Subscription
	Salary        float64
}

// Leak rule thresholds and points.
const (
	foodShareLimit    = 0.25
	funShareLimit     = 0.15
	defaultShareLimit = 0.10
	microAmountLimit  = 300.0
	microFrequency    = 8
	subShareLimit     = 0.05
	spikeGrowthLimit  = 0.20

	overspendPoints    = 30
	microPoints        = 25
	subscriptionPoints = 20
	spikePoints        = 25

	criticalLeakScore = 60
	warningLeakScore  = 30
)

// DetectMoneyLeaks runs the four independent leak rules over one month of
// data. Rules that would divide by a zero salary or a zero previous-month
// total are skipped rather than failed.
func DetectMoneyLeaks(in MoneyLeakInput) LeakReport {
	var leaks []LeakItem
	score := 0

	// Rule 1: category overspend against income share limits.
	if in.Salary > 0 {
		for _, cat := range in.Categories {
			ratio := cat.Total / in.Salary
			limit := defaultShareLimit
			switch cat.Category {
			case model.CategoryFood:
				limit = foodShareLimit
			case model.CategoryFun:
				limit = funShareLimit
			}

			if ratio > limit {
				leaks = append(leaks, LeakItem{
					Type:        LeakOverspend,
					Title:       fmt.Sprintf("High %s Spend", cat.Category),
					Description: fmt.Sprintf("You spent %d%% of income on %s (Limit: %.0f%%).", roundPct(ratio), cat.Category, limit*100),
					Severity:    SeverityHigh,
					Category:    cat.Category,
					Amount:      cat.Total,
				})
				score += overspendPoints
			}
		}
	}

	// Rule 2: recurring micro-expenses, grouped by normalized note with
	// the category name as fallback. The category fallback can merge
	// unrelated small buys; that matches the product behavior.
	type microGroup struct {
		count int
		total float64
	}
	groups := make(map[string]*microGroup)
	var groupOrder []string
	for _, e := range in.Expenses {
		if e.Amount >= microAmountLimit {
			continue
		}
		key := e.NormalizedNote()
		if key == "" {
			key = string(e.Category)
		}
		g, ok := groups[key]
		if !ok {
			g = &microGroup{}
			groups[key] = g
			groupOrder = append(groupOrder, key)
		}
		g.count++
		g.total += e.Amount
	}
	for _, key := range groupOrder {
		g := groups[key]
		if g.count < microFrequency {
			continue
		}
		leaks = append(leaks, LeakItem{
			Type:        LeakMicro,
			Title:       "Frequent Small Buys",
			Description: fmt.Sprintf("Small daily expenses on %q added up to ₹%.0f/mo.", key, g.total),
			Severity:    SeverityMedium,
			Amount:      g.total,
		})
		score += microPoints
	}

	// Rule 3: subscription fatigue.
	subTotal := totalSubscriptionCost(in.Subscriptions)
	if in.Salary > 0 && subTotal/in.Salary > subShareLimit {
		leaks = append(leaks, LeakItem{
			Type:        LeakSubscription,
			Title:       "Subscription Fatigue",
			Description: fmt.Sprintf("Recurring bills take %d%% of your income.", roundPct(subTotal/in.Salary)),
			Severity:    SeverityMedium,
			Amount:      subTotal,
		})
		score += subscriptionPoints
	}

	// Rule 4: month-over-month spike.
	currentTotal := totalSpend(in.Expenses)
	prevTotal := totalSpend(in.PrevExpenses)
	if prevTotal > 0 {
		growth := (currentTotal - prevTotal) / prevTotal
		if growth > spikeGrowthLimit {
			leaks = append(leaks, LeakItem{
				Type:        LeakSpike,
				Title:       "Spending Spike",
				Description: fmt.Sprintf("Expenses increased by %d%% compared to last month.", roundPct(growth)),
				Severity:    SeverityHigh,
				Amount:      currentTotal - prevTotal,
			})
			score += spikePoints
		}
	}

	score = int(clampScore(float64(score)))

	status := StatusStable
	switch {
	case score > criticalLeakScore:
		status = StatusCritical
	case score > warningLeakScore:
		status = StatusWarning
	}

	return LeakReport{
		Score:                score,
		Status:               status,
		Leaks:                leaks,
		ActionableSuggestion: leakSuggestion(leaks),
	}
}

// leakSuggestion picks advice from the leak with the largest amount,
// breaking ties in favor of the earlier detection.
func leakSuggestion(leaks []LeakItem) string {
	if len(leaks) == 0 {
		return "Great job! Your spending is stable."
	}

	top := leaks[0]
	for _, leak := range leaks[1:] {
		if leak.Amount > top.Amount {
			top = leak
		}
	}

	switch top.Type {
	case LeakOverspend:
		return fmt.Sprintf("Reducing %s can save you the most money right now.", strings.TrimPrefix(top.Title, "High "))
	case LeakMicro:
		return fmt.Sprintf("Try cutting out the daily small purchases to save ₹%.0f.", top.Amount)
	case LeakSubscription:
		return "Review your subscriptions and cancel one you don't use."
	default:
		return "Check what caused the sudden spike this month."
	}
}
