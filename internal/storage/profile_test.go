package storage

import (
	"context"
	"testing"

	"github.com/vitahq/vita/internal/model"
)

func TestMonthlySalary(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	// Unset salary reads as zero.
	salary, err := store.GetMonthlySalary(ctx)
	if err != nil {
		t.Fatalf("Failed to get salary: %v", err)
	}
	if salary != 0 {
		t.Errorf("Expected zero salary before setting, got %v", salary)
	}

	if err := store.SetMonthlySalary(ctx, 50000); err != nil {
		t.Fatalf("Failed to set salary: %v", err)
	}
	if err := store.SetMonthlySalary(ctx, 62000); err != nil {
		t.Fatalf("Failed to overwrite salary: %v", err)
	}

	salary, err = store.GetMonthlySalary(ctx)
	if err != nil {
		t.Fatalf("Failed to get salary: %v", err)
	}
	if salary != 62000 {
		t.Errorf("Expected latest salary 62000, got %v", salary)
	}

	if err := store.SetMonthlySalary(ctx, 0); err == nil {
		t.Error("Expected error for zero salary")
	}
	if err := store.SetMonthlySalary(ctx, -100); err == nil {
		t.Error("Expected error for negative salary")
	}
}

func TestPremiumFlag(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	premium, err := store.GetPremium(ctx)
	if err != nil {
		t.Fatalf("Failed to get premium flag: %v", err)
	}
	if premium {
		t.Error("Expected premium off by default")
	}

	if err := store.SetPremium(ctx, true); err != nil {
		t.Fatalf("Failed to set premium flag: %v", err)
	}
	premium, _ = store.GetPremium(ctx)
	if !premium {
		t.Error("Expected premium on after setting")
	}

	if err := store.SetPremium(ctx, false); err != nil {
		t.Fatalf("Failed to clear premium flag: %v", err)
	}
	premium, _ = store.GetPremium(ctx)
	if premium {
		t.Error("Expected premium off after clearing")
	}
}

func TestPremiumSharesProfileRow(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	// Salary first, then premium; both upsert the same profile row.
	if err := store.SetMonthlySalary(ctx, 40000); err != nil {
		t.Fatalf("Failed to set salary: %v", err)
	}
	if err := store.SetPremium(ctx, true); err != nil {
		t.Fatalf("Failed to set premium flag: %v", err)
	}

	salary, err := store.GetMonthlySalary(ctx)
	if err != nil {
		t.Fatalf("Failed to get salary: %v", err)
	}
	if salary != 40000 {
		t.Errorf("Expected salary to survive premium update, got %v", salary)
	}
	premium, err := store.GetPremium(ctx)
	if err != nil {
		t.Fatalf("Failed to get premium flag: %v", err)
	}
	if !premium {
		t.Error("Expected premium to survive alongside salary")
	}
}

func TestEnergyLog(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	// Missing log reads as nil without error.
	log, err := store.GetEnergy(ctx, "2026-08-28")
	if err != nil {
		t.Fatalf("Failed to get energy log: %v", err)
	}
	if log != nil {
		t.Errorf("Expected nil log for missing date, got %+v", log)
	}

	if err := store.LogEnergy(ctx, "2026-08-28", model.EnergyLow); err != nil {
		t.Fatalf("Failed to log energy: %v", err)
	}
	// Second log on the same date overwrites.
	if err := store.LogEnergy(ctx, "2026-08-28", model.EnergyHigh); err != nil {
		t.Fatalf("Failed to overwrite energy log: %v", err)
	}

	log, err = store.GetEnergy(ctx, "2026-08-28")
	if err != nil {
		t.Fatalf("Failed to get energy log: %v", err)
	}
	if log == nil {
		t.Fatal("Expected a log for the date")
	}
	if log.Level != model.EnergyHigh {
		t.Errorf("Expected overwritten level High, got %d", log.Level)
	}
	if log.Date != "2026-08-28" {
		t.Errorf("Expected date to round-trip, got %q", log.Date)
	}
}

func TestLogEnergyValidation(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	if err := store.LogEnergy(ctx, "2026-08-28", model.EnergyLevel(2)); err == nil {
		t.Error("Expected error for level outside 1/3/5")
	}
	if err := store.LogEnergy(ctx, "not-a-date", model.EnergyLow); err == nil {
		t.Error("Expected error for invalid date")
	}
}
