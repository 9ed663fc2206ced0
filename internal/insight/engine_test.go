package insight

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitahq/vita/internal/model"
)

// fakeStore serves canned data keyed the same way the real store is
// queried. Write operations are not part of engine behavior.
type fakeStore struct {
	expensesByMonth map[string][]model.Expense
	tasksByDate     map[string][]model.Task
	subs            []model.Subscription
	goals           []model.Goal
	docs            []model.Document
	salary          float64
	premium         bool
}

func (f *fakeStore) AddExpense(_ context.Context, _ *model.Expense) (int64, error) { return 0, nil }
func (f *fakeStore) DeleteExpense(_ context.Context, _ int64) error                { return nil }
func (f *fakeStore) GetExpensesByMonth(_ context.Context, monthKey string) ([]model.Expense, error) {
	return f.expensesByMonth[monthKey], nil
}

func (f *fakeStore) AddSubscription(_ context.Context, _ *model.Subscription) (int64, error) {
	return 0, nil
}
func (f *fakeStore) DeactivateSubscription(_ context.Context, _ int64) error { return nil }
func (f *fakeStore) GetActiveSubscriptions(_ context.Context) ([]model.Subscription, error) {
	return f.subs, nil
}

func (f *fakeStore) AddTask(_ context.Context, _ *model.Task) (int64, error)     { return 0, nil }
func (f *fakeStore) SetTaskCompleted(_ context.Context, _ int64, _ bool) error   { return nil }
func (f *fakeStore) DeleteTask(_ context.Context, _ int64) error                 { return nil }
func (f *fakeStore) GetTasksByDate(_ context.Context, date string) ([]model.Task, error) {
	return f.tasksByDate[date], nil
}

func (f *fakeStore) AddGoal(_ context.Context, _ *model.Goal) (int64, error)      { return 0, nil }
func (f *fakeStore) UpdateGoalProgress(_ context.Context, _ int64, _ int) error   { return nil }
func (f *fakeStore) DeleteGoal(_ context.Context, _ int64) error                  { return nil }
func (f *fakeStore) GetGoals(_ context.Context) ([]model.Goal, error)             { return f.goals, nil }

func (f *fakeStore) AddDocument(_ context.Context, _ *model.Document) (int64, error) { return 0, nil }
func (f *fakeStore) DeleteDocument(_ context.Context, _ int64) error                 { return nil }
func (f *fakeStore) GetDocuments(_ context.Context) ([]model.Document, error)        { return f.docs, nil }

func (f *fakeStore) GetMonthlySalary(_ context.Context) (float64, error)   { return f.salary, nil }
func (f *fakeStore) SetMonthlySalary(_ context.Context, _ float64) error   { return nil }
func (f *fakeStore) GetPremium(_ context.Context) (bool, error)            { return f.premium, nil }
func (f *fakeStore) SetPremium(_ context.Context, _ bool) error            { return nil }

func (f *fakeStore) LogEnergy(_ context.Context, _ string, _ model.EnergyLevel) error { return nil }
func (f *fakeStore) GetEnergy(_ context.Context, _ string) (*model.EnergyLog, error) {
	return nil, nil
}

func (f *fakeStore) Migrate(_ context.Context) error      { return nil }
func (f *fakeStore) ClearAllData(_ context.Context) error { return nil }
func (f *fakeStore) Close() error                         { return nil }

var engineNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func TestEngineWeeklyStatsWindow(t *testing.T) {
	store := &fakeStore{
		tasksByDate: map[string][]model.Task{
			"2026-08-22": {{EstimatedEffort: 400}},
			"2026-08-25": {{EstimatedEffort: 100, Completed: true}},
			"2026-08-28": {{EstimatedEffort: 200}},
			// Outside the 7-day window, must be ignored.
			"2026-08-21": {{EstimatedEffort: 999}},
		},
	}
	engine := NewEngine(store)

	stats, err := engine.WeeklyStats(context.Background(), engineNow)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.DaysWithData)
	assert.Equal(t, 1, stats.HeavyDays)
	assert.InDelta(t, (400+100+200)/3.0, stats.AvgLoad, 0.001)
}

func TestEngineLoadHistoryOrder(t *testing.T) {
	engine := NewEngine(&fakeStore{})

	points, err := engine.LoadHistory(context.Background(), engineNow)
	require.NoError(t, err)

	require.Len(t, points, 7)
	assert.Equal(t, "2026-08-22", points[0].Date)
	assert.Equal(t, "2026-08-28", points[6].Date)
	assert.Equal(t, "Sat", points[0].Label)
	assert.Equal(t, "Fri", points[6].Label)
}

func TestEngineMoneyLeaksComparesPreviousMonth(t *testing.T) {
	store := &fakeStore{
		salary: 100000,
		expensesByMonth: map[string][]model.Expense{
			"2026-08": {{Amount: 2600, Category: model.CategoryOther}},
			"2026-07": {{Amount: 2000, Category: model.CategoryOther}},
		},
	}
	engine := NewEngine(store)

	report, err := engine.MoneyLeaks(context.Background(), engineNow)
	require.NoError(t, err)

	require.Len(t, report.Leaks, 1)
	assert.Equal(t, LeakSpike, report.Leaks[0].Type)
	assert.Equal(t, "Expenses increased by 30% compared to last month.", report.Leaks[0].Description)
}

func TestEngineStabilityDeterministic(t *testing.T) {
	store := &fakeStore{
		salary: 50000,
		expensesByMonth: map[string][]model.Expense{
			"2026-08": {{Amount: 48000, Category: model.CategoryRent}},
		},
		tasksByDate: map[string][]model.Task{
			"2026-08-27": {{EstimatedEffort: 60, Completed: true}},
		},
	}
	engine := NewEngine(store)
	ctx := context.Background()

	first, err := engine.StabilityScore(ctx, engineNow)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := engine.StabilityScore(ctx, engineNow)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEngineFinancialReport(t *testing.T) {
	store := &fakeStore{
		salary: 50000,
		expensesByMonth: map[string][]model.Expense{
			"2026-08": {
				{Amount: 20000, Category: model.CategoryRent},
				{Amount: 5000, Category: model.CategoryFood},
			},
		},
		subs: []model.Subscription{{Name: "Netflix", Amount: 649}},
	}
	engine := NewEngine(store)

	report, err := engine.FinancialReport(context.Background(), engineNow)
	require.NoError(t, err)

	assert.Equal(t, "Top spend: Rent (₹20000).", report.Summary)
	assert.Equal(t, StatusStable, report.Status)
	// Subscriptions exist but no Fun spend was logged.
	require.Len(t, report.Insights, 1)
	assert.Contains(t, report.Insights[0], "Usage Check")
}
