// Package model defines the typed records persisted by the store and
// consumed by the insight engine.
package model

import (
	"fmt"
	"strings"
)

// ExpenseCategory is the closed set of spending buckets.
type ExpenseCategory string

const (
	// CategoryFood covers groceries and eating out.
	CategoryFood ExpenseCategory = "Food"
	// CategoryRent covers housing costs.
	CategoryRent ExpenseCategory = "Rent"
	// CategoryTransport covers commute and travel costs.
	CategoryTransport ExpenseCategory = "Transport"
	// CategoryFun covers entertainment and discretionary shopping.
	CategoryFun ExpenseCategory = "Fun"
	// CategoryOther is the named fallback bucket for everything else.
	CategoryOther ExpenseCategory = "Other"
)

// ExpenseCategories lists all valid categories in display order.
var ExpenseCategories = []ExpenseCategory{
	CategoryFood,
	CategoryRent,
	CategoryTransport,
	CategoryFun,
	CategoryOther,
}

// ParseExpenseCategory maps a string to a known category, falling back
// to Other for anything unrecognized.
func ParseExpenseCategory(s string) ExpenseCategory {
	for _, c := range ExpenseCategories {
		if strings.EqualFold(s, string(c)) {
			return c
		}
	}
	return CategoryOther
}

// PaymentMethod identifies how an expense was paid.
type PaymentMethod string

const (
	// PaymentUPI is the default payment method.
	PaymentUPI PaymentMethod = "UPI"
	// PaymentCash is a cash payment.
	PaymentCash PaymentMethod = "Cash"
	// PaymentCard is a debit or credit card payment.
	PaymentCard PaymentMethod = "Card"
)

// ParsePaymentMethod maps a string to a payment method, defaulting to UPI.
func ParsePaymentMethod(s string) PaymentMethod {
	switch {
	case strings.EqualFold(s, string(PaymentCash)):
		return PaymentCash
	case strings.EqualFold(s, string(PaymentCard)):
		return PaymentCard
	default:
		return PaymentUPI
	}
}

// Expense is a single logged spend. Records are immutable once written;
// users delete and re-add to correct mistakes.
type Expense struct {
	Date          string
	Note          string
	Category      ExpenseCategory
	PaymentMethod PaymentMethod
	ID            int64
	Amount        float64
}

// NormalizedNote returns the note lowercased and trimmed, used as the
// grouping key for micro-expense detection.
func (e *Expense) NormalizedNote() string {
	return strings.ToLower(strings.TrimSpace(e.Note))
}

// Validate checks the invariants enforced at the write boundary.
func (e *Expense) Validate() error {
	if e.Amount <= 0 {
		return fmt.Errorf("expense amount must be positive, got %v", e.Amount)
	}
	if _, err := ParseDay(e.Date); err != nil {
		return fmt.Errorf("invalid expense date %q: %w", e.Date, err)
	}
	return nil
}
