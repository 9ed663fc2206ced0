package model

import (
	"fmt"
	"strings"
)

// BillingCycle is how often a subscription renews.
type BillingCycle string

const (
	// BillingMonthly renews every month. This is the default cycle.
	BillingMonthly BillingCycle = "Monthly"
	// BillingYearly renews once a year.
	BillingYearly BillingCycle = "Yearly"
)

// ParseBillingCycle maps a string to a billing cycle, defaulting to Monthly.
func ParseBillingCycle(s string) BillingCycle {
	if strings.EqualFold(s, string(BillingYearly)) {
		return BillingYearly
	}
	return BillingMonthly
}

// Subscription is a recurring charge. Analyzers only ever see active
// subscriptions; deactivated rows stay in the store for history.
type Subscription struct {
	Name            string
	NextBillingDate string
	Category        ExpenseCategory
	BillingCycle    BillingCycle
	ID              int64
	Amount          float64
	Active          bool
}

// MonthlyAmount normalizes the subscription cost to a per-month figure.
func (s *Subscription) MonthlyAmount() float64 {
	if s.BillingCycle == BillingYearly {
		return s.Amount / 12
	}
	return s.Amount
}

// Validate checks the invariants enforced at the write boundary.
func (s *Subscription) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("subscription name is required")
	}
	if s.Amount <= 0 {
		return fmt.Errorf("subscription amount must be positive, got %v", s.Amount)
	}
	if s.NextBillingDate != "" {
		if _, err := ParseDay(s.NextBillingDate); err != nil {
			return fmt.Errorf("invalid next billing date %q: %w", s.NextBillingDate, err)
		}
	}
	return nil
}
