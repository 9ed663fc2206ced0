package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/vitahq/vita/internal/common"
	"github.com/vitahq/vita/internal/model"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

func TestMigrateIsIdempotent(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// A second migration run must be a no-op.
	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("Second migrate failed: %v", err)
	}
}

func TestClearAllData(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := store.AddExpense(ctx, &model.Expense{Amount: 100, Category: model.CategoryFood, Date: "2026-08-01"}); err != nil {
		t.Fatalf("Failed to add expense: %v", err)
	}
	if err := store.SetMonthlySalary(ctx, 50000); err != nil {
		t.Fatalf("Failed to set salary: %v", err)
	}

	if err := store.ClearAllData(ctx); err != nil {
		t.Fatalf("Failed to clear data: %v", err)
	}

	expenses, err := store.GetExpensesByMonth(ctx, "2026-08")
	if err != nil {
		t.Fatalf("Failed to get expenses: %v", err)
	}
	if len(expenses) != 0 {
		t.Errorf("Expected no expenses after clear, got %d", len(expenses))
	}

	salary, err := store.GetMonthlySalary(ctx)
	if err != nil {
		t.Fatalf("Failed to get salary: %v", err)
	}
	if salary != 0 {
		t.Errorf("Expected salary 0 after clear, got %v", salary)
	}
}

func TestValidationErrors(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := store.AddExpense(ctx, nil); !errors.Is(err, ErrNilParameter) {
		t.Errorf("Expected ErrNilParameter for nil expense, got %v", err)
	}
	//nolint:staticcheck // passing a nil context on purpose
	if _, err := store.GetExpensesByMonth(nil, "2026-08"); !errors.Is(err, ErrNilContext) {
		t.Errorf("Expected ErrNilContext, got %v", err)
	}
	if _, err := store.GetExpensesByMonth(ctx, ""); !errors.Is(err, ErrEmptyString) {
		t.Errorf("Expected ErrEmptyString for empty month, got %v", err)
	}
	if err := store.DeleteExpense(ctx, 0); !errors.Is(err, ErrInvalidID) {
		t.Errorf("Expected ErrInvalidID for id 0, got %v", err)
	}
	if err := store.DeleteExpense(ctx, 9999); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing id, got %v", err)
	}
}
