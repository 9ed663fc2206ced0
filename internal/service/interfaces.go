// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/vitahq/vita/internal/model"
)

// Storage defines the contract for our persistence layer. The insight
// engine depends only on this interface; commands construct a concrete
// store and inject it.
type Storage interface {
	// Expense operations
	AddExpense(ctx context.Context, expense *model.Expense) (int64, error)
	DeleteExpense(ctx context.Context, id int64) error
	GetExpensesByMonth(ctx context.Context, monthKey string) ([]model.Expense, error)

	// Subscription operations
	AddSubscription(ctx context.Context, sub *model.Subscription) (int64, error)
	DeactivateSubscription(ctx context.Context, id int64) error
	GetActiveSubscriptions(ctx context.Context) ([]model.Subscription, error)

	// Task operations
	AddTask(ctx context.Context, task *model.Task) (int64, error)
	SetTaskCompleted(ctx context.Context, id int64, completed bool) error
	DeleteTask(ctx context.Context, id int64) error
	GetTasksByDate(ctx context.Context, date string) ([]model.Task, error)

	// Goal operations
	AddGoal(ctx context.Context, goal *model.Goal) (int64, error)
	UpdateGoalProgress(ctx context.Context, id int64, progress int) error
	DeleteGoal(ctx context.Context, id int64) error
	GetGoals(ctx context.Context) ([]model.Goal, error)

	// Document vault operations
	AddDocument(ctx context.Context, doc *model.Document) (int64, error)
	DeleteDocument(ctx context.Context, id int64) error
	GetDocuments(ctx context.Context) ([]model.Document, error)

	// Profile operations
	GetMonthlySalary(ctx context.Context) (float64, error)
	SetMonthlySalary(ctx context.Context, amount float64) error
	GetPremium(ctx context.Context) (bool, error)
	SetPremium(ctx context.Context, premium bool) error

	// Energy log operations
	LogEnergy(ctx context.Context, date string, level model.EnergyLevel) error
	GetEnergy(ctx context.Context, date string) (*model.EnergyLog, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	ClearAllData(ctx context.Context) error
	Close() error
}
