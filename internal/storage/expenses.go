package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vitahq/vita/internal/common"
	"github.com/vitahq/vita/internal/model"
)

// AddExpense inserts a new expense and returns its id.
func (s *SQLiteStorage) AddExpense(ctx context.Context, expense *model.Expense) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if expense == nil {
		return 0, fmt.Errorf("%w: expense", ErrNilParameter)
	}
	if err := expense.Validate(); err != nil {
		return 0, fmt.Errorf("invalid expense: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (amount, category, date, note, payment_method)
		VALUES (?, ?, ?, ?, ?)
	`, expense.Amount, string(expense.Category), expense.Date, expense.Note, string(expense.PaymentMethod))
	if err != nil {
		return 0, fmt.Errorf("failed to insert expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get expense id: %w", err)
	}
	return id, nil
}

// DeleteExpense removes an expense by id.
func (s *SQLiteStorage) DeleteExpense(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("expense %d: %w", id, common.ErrNotFound)
	}
	return nil
}

// GetExpensesByMonth retrieves all expenses whose date falls in the given
// month key (YYYY-MM, matched as a date prefix), newest first.
func (s *SQLiteStorage) GetExpensesByMonth(ctx context.Context, monthKey string) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(monthKey, "monthKey"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, amount, category, date, COALESCE(note, ''), COALESCE(payment_method, 'UPI')
		FROM expenses
		WHERE date LIKE ?
		ORDER BY date DESC, id DESC
	`, monthKey+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		var e model.Expense
		var category, payment string
		if err := rows.Scan(&e.ID, &e.Amount, &category, &e.Date, &e.Note, &payment); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.Category = model.ParseExpenseCategory(category)
		e.PaymentMethod = model.ParsePaymentMethod(payment)
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}

// getExpenseByID is test and command support, not part of the Storage
// contract.
func (s *SQLiteStorage) getExpenseByID(ctx context.Context, id int64) (*model.Expense, error) {
	var e model.Expense
	var category, payment string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, amount, category, date, COALESCE(note, ''), COALESCE(payment_method, 'UPI')
		FROM expenses WHERE id = ?
	`, id).Scan(&e.ID, &e.Amount, &category, &e.Date, &e.Note, &payment)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("expense %d: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	e.Category = model.ParseExpenseCategory(category)
	e.PaymentMethod = model.ParsePaymentMethod(payment)
	return &e, nil
}
