package insight

import (
	"context"
	"fmt"
	"time"

	"github.com/vitahq/vita/internal/model"
	"github.com/vitahq/vita/internal/service"
)

// Engine wires the pure analyzers to a storage backend. It holds no
// mutable state of its own; identical stored data and reference time
// always produce identical reports.
type Engine struct {
	store service.Storage
}

// NewEngine creates an insight engine over the given store.
func NewEngine(store service.Storage) *Engine {
	return &Engine{store: store}
}

// MonthCategoryStats aggregates the month containing the reference time.
func (e *Engine) MonthCategoryStats(ctx context.Context, now time.Time) ([]CategoryStat, error) {
	expenses, err := e.store.GetExpensesByMonth(ctx, model.Month(now))
	if err != nil {
		return nil, fmt.Errorf("failed to load month expenses: %w", err)
	}
	return CategoryStats(expenses), nil
}

// DailyLoad analyzes the tasks of a single calendar day.
func (e *Engine) DailyLoad(ctx context.Context, date string) (DailyLoad, error) {
	tasks, err := e.store.GetTasksByDate(ctx, date)
	if err != nil {
		return DailyLoad{}, fmt.Errorf("failed to load tasks for %s: %w", date, err)
	}
	return AnalyzeDailyLoad(tasks), nil
}

// weekLoads resolves the last seven days (today and six prior) through
// the daily load analyzer, oldest first.
func (e *Engine) weekLoads(ctx context.Context, now time.Time) ([]DayLoad, error) {
	week := make([]DayLoad, 0, 7)
	for i := 6; i >= 0; i-- {
		date := model.Day(now.AddDate(0, 0, -i))
		load, err := e.DailyLoad(ctx, date)
		if err != nil {
			return nil, err
		}
		week = append(week, DayLoad{Date: date, Load: load})
	}
	return week, nil
}

// WeeklyStats aggregates the last seven days of task load.
func (e *Engine) WeeklyStats(ctx context.Context, now time.Time) (WeeklyTaskStats, error) {
	week, err := e.weekLoads(ctx, now)
	if err != nil {
		return WeeklyTaskStats{}, err
	}
	return AnalyzeWeek(week), nil
}

// BurnoutInsights runs the burnout rules over the last seven days.
func (e *Engine) BurnoutInsights(ctx context.Context, now time.Time) ([]string, error) {
	stats, err := e.WeeklyStats(ctx, now)
	if err != nil {
		return nil, err
	}
	return DetectBurnout(stats), nil
}

// LoadHistory returns the last seven days as chart points, oldest first.
func (e *Engine) LoadHistory(ctx context.Context, now time.Time) ([]LoadPoint, error) {
	week, err := e.weekLoads(ctx, now)
	if err != nil {
		return nil, err
	}
	return LoadHistory(week), nil
}

// SpendingInstability scores the current month's spending risk.
func (e *Engine) SpendingInstability(ctx context.Context, now time.Time) (int, error) {
	stats, err := e.MonthCategoryStats(ctx, now)
	if err != nil {
		return 0, err
	}
	salary, err := e.store.GetMonthlySalary(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load salary: %w", err)
	}
	return SpendingInstability(stats, salary), nil
}

// StabilityScore combines money and task stability for the reference time.
func (e *Engine) StabilityScore(ctx context.Context, now time.Time) (StabilityMetrics, error) {
	instability, err := e.SpendingInstability(ctx, now)
	if err != nil {
		return StabilityMetrics{}, err
	}
	week, err := e.weekLoads(ctx, now)
	if err != nil {
		return StabilityMetrics{}, err
	}
	return CalculateStability(instability, week), nil
}

// MoneyLeaks runs the leak detector for the month containing now,
// comparing against the month before it.
func (e *Engine) MoneyLeaks(ctx context.Context, now time.Time) (LeakReport, error) {
	monthKey := model.Month(now)
	expenses, err := e.store.GetExpensesByMonth(ctx, monthKey)
	if err != nil {
		return LeakReport{}, fmt.Errorf("failed to load month expenses: %w", err)
	}
	salary, err := e.store.GetMonthlySalary(ctx)
	if err != nil {
		return LeakReport{}, fmt.Errorf("failed to load salary: %w", err)
	}
	subs, err := e.store.GetActiveSubscriptions(ctx)
	if err != nil {
		return LeakReport{}, fmt.Errorf("failed to load subscriptions: %w", err)
	}

	prevKey, err := model.PreviousMonth(monthKey)
	if err != nil {
		return LeakReport{}, fmt.Errorf("failed to resolve previous month: %w", err)
	}
	prevExpenses, err := e.store.GetExpensesByMonth(ctx, prevKey)
	if err != nil {
		return LeakReport{}, fmt.Errorf("failed to load previous month expenses: %w", err)
	}

	return DetectMoneyLeaks(MoneyLeakInput{
		Salary:        salary,
		Expenses:      expenses,
		PrevExpenses:  prevExpenses,
		Categories:    CategoryStats(expenses),
		Subscriptions: subs,
	}), nil
}

// Savings runs the savings planner for the month containing now.
func (e *Engine) Savings(ctx context.Context, now time.Time) (SavingsReport, error) {
	expenses, err := e.store.GetExpensesByMonth(ctx, model.Month(now))
	if err != nil {
		return SavingsReport{}, fmt.Errorf("failed to load month expenses: %w", err)
	}
	salary, err := e.store.GetMonthlySalary(ctx)
	if err != nil {
		return SavingsReport{}, fmt.Errorf("failed to load salary: %w", err)
	}
	subs, err := e.store.GetActiveSubscriptions(ctx)
	if err != nil {
		return SavingsReport{}, fmt.Errorf("failed to load subscriptions: %w", err)
	}
	return AnalyzeSavings(salary, expenses, subs), nil
}

// LifeLoad fuses task, goal and money pressure for the reference time.
func (e *Engine) LifeLoad(ctx context.Context, now time.Time) (LifeLoadReport, error) {
	week, err := e.WeeklyStats(ctx, now)
	if err != nil {
		return LifeLoadReport{}, err
	}
	goals, err := e.store.GetGoals(ctx)
	if err != nil {
		return LifeLoadReport{}, fmt.Errorf("failed to load goals: %w", err)
	}
	instability, err := e.SpendingInstability(ctx, now)
	if err != nil {
		return LifeLoadReport{}, err
	}
	return CalculateLifeLoad(week, goals, instability, now), nil
}

// GoalRisks flags overdue, incomplete goals.
func (e *Engine) GoalRisks(ctx context.Context, now time.Time) ([]string, error) {
	goals, err := e.store.GetGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}
	return DetectGoalRisks(goals, now), nil
}

// Preparedness scores the document vault.
func (e *Engine) Preparedness(ctx context.Context, now time.Time) (PreparednessReport, error) {
	docs, err := e.store.GetDocuments(ctx)
	if err != nil {
		return PreparednessReport{}, fmt.Errorf("failed to load documents: %w", err)
	}
	return CalculatePreparedness(docs, now), nil
}

// FinancialReport composes the end-of-month narrative for the month
// containing now.
func (e *Engine) FinancialReport(ctx context.Context, now time.Time) (FinancialReport, error) {
	stats, err := e.MonthCategoryStats(ctx, now)
	if err != nil {
		return FinancialReport{}, err
	}
	salary, err := e.store.GetMonthlySalary(ctx)
	if err != nil {
		return FinancialReport{}, fmt.Errorf("failed to load salary: %w", err)
	}
	subs, err := e.store.GetActiveSubscriptions(ctx)
	if err != nil {
		return FinancialReport{}, fmt.Errorf("failed to load subscriptions: %w", err)
	}
	return ComposeFinancialReport(stats, salary, subs), nil
}
