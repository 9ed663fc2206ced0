package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/vitahq/vita/internal/common"
	"github.com/vitahq/vita/internal/model"
)

// AddGoal inserts a new goal and returns its id.
func (s *SQLiteStorage) AddGoal(ctx context.Context, goal *model.Goal) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if goal == nil {
		return 0, fmt.Errorf("%w: goal", ErrNilParameter)
	}
	if err := goal.Validate(); err != nil {
		return 0, fmt.Errorf("invalid goal: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO goals (title, category, target_date, progress, notes)
		VALUES (?, ?, ?, ?, ?)
	`, goal.Title, goal.Category, goal.TargetDate, goal.Progress, goal.Notes)
	if err != nil {
		return 0, fmt.Errorf("failed to insert goal: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get goal id: %w", err)
	}
	return id, nil
}

// UpdateGoalProgress sets a goal's progress percentage.
func (s *SQLiteStorage) UpdateGoalProgress(ctx context.Context, id int64, progress int) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}
	if progress < 0 || progress > 100 {
		return fmt.Errorf("progress must be 0-100, got %d", progress)
	}

	res, err := s.db.ExecContext(ctx, `UPDATE goals SET progress = ? WHERE id = ?`, progress, id)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("goal %d: %w", id, common.ErrNotFound)
	}
	return nil
}

// DeleteGoal removes a goal by id.
func (s *SQLiteStorage) DeleteGoal(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("goal %d: %w", id, common.ErrNotFound)
	}
	return nil
}

// GetGoals retrieves all goals ordered by target date, with status derived
// against the store's wall clock. Analyzers that need a deterministic
// reference date re-derive status themselves.
func (s *SQLiteStorage) GetGoals(ctx context.Context) ([]model.Goal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, COALESCE(category, ''), target_date, progress, COALESCE(notes, '')
		FROM goals
		ORDER BY target_date ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	today := model.Day(time.Now())

	var goals []model.Goal
	for rows.Next() {
		var g model.Goal
		if err := rows.Scan(&g.ID, &g.Title, &g.Category, &g.TargetDate, &g.Progress, &g.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		g.Status = g.DeriveStatus(today)
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate goals: %w", err)
	}
	return goals, nil
}
