package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/vitahq/vita/internal/common"
	"github.com/vitahq/vita/internal/model"
)

func TestAddAndGetTasks(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	tasks := []model.Task{
		{Title: "Write report", Date: "2026-08-28", Priority: model.PriorityHigh, Category: model.TaskWork, EstimatedEffort: 120},
		{Title: "Buy groceries", Date: "2026-08-28", Priority: model.PriorityLow, Category: model.TaskPersonal, EstimatedEffort: 45},
		{Title: "Other day", Date: "2026-08-29", Priority: model.PriorityMedium, Category: model.TaskAdmin, EstimatedEffort: 30},
	}
	for i := range tasks {
		if _, err := store.AddTask(ctx, &tasks[i]); err != nil {
			t.Fatalf("Failed to add task %q: %v", tasks[i].Title, err)
		}
	}

	today, err := store.GetTasksByDate(ctx, "2026-08-28")
	if err != nil {
		t.Fatalf("Failed to get tasks: %v", err)
	}
	if len(today) != 2 {
		t.Fatalf("Expected 2 tasks for the day, got %d", len(today))
	}

	// Insertion order.
	if today[0].Title != "Write report" {
		t.Errorf("Expected insertion order, got %q first", today[0].Title)
	}
	if today[0].Priority != model.PriorityHigh {
		t.Errorf("Expected High priority, got %s", today[0].Priority)
	}
	if today[0].EstimatedEffort != 120 {
		t.Errorf("Expected effort 120, got %d", today[0].EstimatedEffort)
	}
	if today[0].Completed {
		t.Error("New task should not be completed")
	}
}

func TestSetTaskCompleted(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	id, err := store.AddTask(ctx, &model.Task{Title: "Toggle me", Date: "2026-08-28", EstimatedEffort: 10})
	if err != nil {
		t.Fatalf("Failed to add task: %v", err)
	}

	if err := store.SetTaskCompleted(ctx, id, true); err != nil {
		t.Fatalf("Failed to complete task: %v", err)
	}

	tasks, err := store.GetTasksByDate(ctx, "2026-08-28")
	if err != nil {
		t.Fatalf("Failed to get tasks: %v", err)
	}
	if !tasks[0].Completed {
		t.Error("Expected task to be completed")
	}

	// And back.
	if err := store.SetTaskCompleted(ctx, id, false); err != nil {
		t.Fatalf("Failed to reopen task: %v", err)
	}
	tasks, _ = store.GetTasksByDate(ctx, "2026-08-28")
	if tasks[0].Completed {
		t.Error("Expected task to be reopened")
	}

	if err := store.SetTaskCompleted(ctx, 9999, true); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTask(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	id, err := store.AddTask(ctx, &model.Task{Title: "Doomed", Date: "2026-08-28", EstimatedEffort: 10})
	if err != nil {
		t.Fatalf("Failed to add task: %v", err)
	}

	if err := store.DeleteTask(ctx, id); err != nil {
		t.Fatalf("Failed to delete task: %v", err)
	}

	tasks, err := store.GetTasksByDate(ctx, "2026-08-28")
	if err != nil {
		t.Fatalf("Failed to get tasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("Expected no tasks after delete, got %d", len(tasks))
	}
}

func TestAddTaskValidation(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := store.AddTask(ctx, &model.Task{Title: "", Date: "2026-08-28", EstimatedEffort: 10}); err == nil {
		t.Error("Expected error for empty title")
	}
	if _, err := store.AddTask(ctx, &model.Task{Title: "X", Date: "2026-08-28", EstimatedEffort: 0}); err == nil {
		t.Error("Expected error for zero effort")
	}
}
