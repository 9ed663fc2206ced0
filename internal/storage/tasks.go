package storage

import (
	"context"
	"fmt"

	"github.com/vitahq/vita/internal/common"
	"github.com/vitahq/vita/internal/model"
)

// AddTask inserts a new task and returns its id.
func (s *SQLiteStorage) AddTask(ctx context.Context, task *model.Task) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if task == nil {
		return 0, fmt.Errorf("%w: task", ErrNilParameter)
	}
	if err := task.Validate(); err != nil {
		return 0, fmt.Errorf("invalid task: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (title, is_completed, priority, estimated_effort, category, date)
		VALUES (?, ?, ?, ?, ?, ?)
	`, task.Title, boolToInt(task.Completed), string(task.Priority), task.EstimatedEffort, string(task.Category), task.Date)
	if err != nil {
		return 0, fmt.Errorf("failed to insert task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get task id: %w", err)
	}
	return id, nil
}

// SetTaskCompleted toggles a task's completion flag.
func (s *SQLiteStorage) SetTaskCompleted(ctx context.Context, id int64, completed bool) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `UPDATE tasks SET is_completed = ? WHERE id = ?`, boolToInt(completed), id)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("task %d: %w", id, common.ErrNotFound)
	}
	return nil
}

// DeleteTask removes a task by id.
func (s *SQLiteStorage) DeleteTask(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("task %d: %w", id, common.ErrNotFound)
	}
	return nil
}

// GetTasksByDate retrieves all tasks for one calendar day in insertion
// order.
func (s *SQLiteStorage) GetTasksByDate(ctx context.Context, date string) ([]model.Task, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(date, "date"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, is_completed, priority, estimated_effort, category, date
		FROM tasks
		WHERE date = ?
		ORDER BY id ASC
	`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		var completed int
		var priority, category string
		if err := rows.Scan(&t.ID, &t.Title, &completed, &priority, &t.EstimatedEffort, &category, &t.Date); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		t.Completed = completed != 0
		t.Priority = model.ParseTaskPriority(priority)
		t.Category = model.ParseTaskCategory(category)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	return tasks, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
