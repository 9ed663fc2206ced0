package storage

import (
	"context"
	"fmt"

	"github.com/vitahq/vita/internal/common"
	"github.com/vitahq/vita/internal/model"
)

// AddSubscription inserts a new active subscription and returns its id.
func (s *SQLiteStorage) AddSubscription(ctx context.Context, sub *model.Subscription) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if sub == nil {
		return 0, fmt.Errorf("%w: sub", ErrNilParameter)
	}
	if err := sub.Validate(); err != nil {
		return 0, fmt.Errorf("invalid subscription: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO subscriptions (name, amount, billing_cycle, next_billing_date, category, is_active)
		VALUES (?, ?, ?, ?, ?, 1)
	`, sub.Name, sub.Amount, string(sub.BillingCycle), sub.NextBillingDate, string(sub.Category))
	if err != nil {
		return 0, fmt.Errorf("failed to insert subscription: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get subscription id: %w", err)
	}
	return id, nil
}

// DeactivateSubscription marks a subscription inactive. The row is kept
// for history; analyzers only read active subscriptions.
func (s *SQLiteStorage) DeactivateSubscription(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `UPDATE subscriptions SET is_active = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate subscription: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("subscription %d: %w", id, common.ErrNotFound)
	}
	return nil
}

// GetActiveSubscriptions retrieves all active subscriptions ordered by
// next billing date.
func (s *SQLiteStorage) GetActiveSubscriptions(ctx context.Context) ([]model.Subscription, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, amount, billing_cycle, COALESCE(next_billing_date, ''), COALESCE(category, 'Other')
		FROM subscriptions
		WHERE is_active = 1
		ORDER BY next_billing_date ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var subs []model.Subscription
	for rows.Next() {
		var sub model.Subscription
		var cycle, category string
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Amount, &cycle, &sub.NextBillingDate, &category); err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		sub.BillingCycle = model.ParseBillingCycle(cycle)
		sub.Category = model.ParseExpenseCategory(category)
		sub.Active = true
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subscriptions: %w", err)
	}
	return subs, nil
}
