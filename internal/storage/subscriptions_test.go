package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/vitahq/vita/internal/common"
	"github.com/vitahq/vita/internal/model"
)

func TestAddAndGetSubscriptions(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	subs := []model.Subscription{
		{Name: "Netflix", Amount: 649, Category: model.CategoryFun, BillingCycle: model.BillingMonthly, NextBillingDate: "2026-09-15"},
		{Name: "Prime", Amount: 1499, Category: model.CategoryFun, BillingCycle: model.BillingYearly, NextBillingDate: "2026-09-01"},
	}
	for i := range subs {
		if _, err := store.AddSubscription(ctx, &subs[i]); err != nil {
			t.Fatalf("Failed to add subscription %q: %v", subs[i].Name, err)
		}
	}

	active, err := store.GetActiveSubscriptions(ctx)
	if err != nil {
		t.Fatalf("Failed to get subscriptions: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("Expected 2 active subscriptions, got %d", len(active))
	}

	// Ordered by next billing date.
	if active[0].Name != "Prime" {
		t.Errorf("Expected Prime first, got %s", active[0].Name)
	}
	if active[0].BillingCycle != model.BillingYearly {
		t.Errorf("Expected yearly cycle, got %s", active[0].BillingCycle)
	}
	if !active[0].Active {
		t.Error("Expected subscription to read as active")
	}
}

func TestDeactivateSubscription(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	id, err := store.AddSubscription(ctx, &model.Subscription{Name: "Gym", Amount: 1200})
	if err != nil {
		t.Fatalf("Failed to add subscription: %v", err)
	}

	if err := store.DeactivateSubscription(ctx, id); err != nil {
		t.Fatalf("Failed to deactivate: %v", err)
	}

	active, err := store.GetActiveSubscriptions(ctx)
	if err != nil {
		t.Fatalf("Failed to get subscriptions: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("Expected no active subscriptions, got %d", len(active))
	}

	if err := store.DeactivateSubscription(ctx, 9999); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing subscription, got %v", err)
	}
}

func TestAddSubscriptionValidation(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := store.AddSubscription(ctx, &model.Subscription{Name: "", Amount: 100}); err == nil {
		t.Error("Expected error for empty name")
	}
	if _, err := store.AddSubscription(ctx, &model.Subscription{Name: "X", Amount: 0}); err == nil {
		t.Error("Expected error for zero amount")
	}
}
