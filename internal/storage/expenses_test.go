package storage

import (
	"context"
	"testing"

	"github.com/vitahq/vita/internal/model"
)

func TestAddAndGetExpenses(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	expenses := []model.Expense{
		{Amount: 250, Category: model.CategoryFood, Date: "2026-08-05", Note: "Zomato", PaymentMethod: model.PaymentUPI},
		{Amount: 12000, Category: model.CategoryRent, Date: "2026-08-01", PaymentMethod: model.PaymentCard},
		{Amount: 500, Category: model.CategoryFun, Date: "2026-07-28", PaymentMethod: model.PaymentCash},
	}
	for i := range expenses {
		id, err := store.AddExpense(ctx, &expenses[i])
		if err != nil {
			t.Fatalf("Failed to add expense %d: %v", i, err)
		}
		if id <= 0 {
			t.Errorf("Expected positive id, got %d", id)
		}
	}

	august, err := store.GetExpensesByMonth(ctx, "2026-08")
	if err != nil {
		t.Fatalf("Failed to get August expenses: %v", err)
	}
	if len(august) != 2 {
		t.Fatalf("Expected 2 August expenses, got %d", len(august))
	}

	// Newest first.
	if august[0].Date != "2026-08-05" {
		t.Errorf("Expected newest expense first, got date %s", august[0].Date)
	}
	if august[0].Note != "Zomato" {
		t.Errorf("Expected note to round-trip, got %q", august[0].Note)
	}
	if august[0].Category != model.CategoryFood {
		t.Errorf("Expected Food category, got %s", august[0].Category)
	}
	if august[0].PaymentMethod != model.PaymentUPI {
		t.Errorf("Expected UPI payment, got %s", august[0].PaymentMethod)
	}

	july, err := store.GetExpensesByMonth(ctx, "2026-07")
	if err != nil {
		t.Fatalf("Failed to get July expenses: %v", err)
	}
	if len(july) != 1 {
		t.Errorf("Expected 1 July expense, got %d", len(july))
	}
}

func TestAddExpenseValidation(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	tests := []struct {
		name    string
		expense model.Expense
	}{
		{"zero amount", model.Expense{Amount: 0, Category: model.CategoryFood, Date: "2026-08-01"}},
		{"negative amount", model.Expense{Amount: -50, Category: model.CategoryFood, Date: "2026-08-01"}},
		{"bad date", model.Expense{Amount: 100, Category: model.CategoryFood, Date: "01-08-2026"}},
		{"missing date", model.Expense{Amount: 100, Category: model.CategoryFood}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.AddExpense(ctx, &tt.expense); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}

func TestDeleteExpense(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	id, err := store.AddExpense(ctx, &model.Expense{Amount: 100, Category: model.CategoryOther, Date: "2026-08-10"})
	if err != nil {
		t.Fatalf("Failed to add expense: %v", err)
	}

	if err := store.DeleteExpense(ctx, id); err != nil {
		t.Fatalf("Failed to delete expense: %v", err)
	}

	expenses, err := store.GetExpensesByMonth(ctx, "2026-08")
	if err != nil {
		t.Fatalf("Failed to get expenses: %v", err)
	}
	if len(expenses) != 0 {
		t.Errorf("Expected no expenses after delete, got %d", len(expenses))
	}
}

func TestGetExpensesByMonthEmpty(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	expenses, err := store.GetExpensesByMonth(context.Background(), "2026-01")
	if err != nil {
		t.Fatalf("Failed to get expenses: %v", err)
	}
	if len(expenses) != 0 {
		t.Errorf("Expected empty result, got %d expenses", len(expenses))
	}
}
