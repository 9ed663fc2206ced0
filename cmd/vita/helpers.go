package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/vitahq/vita/internal/config"
	"github.com/vitahq/vita/internal/insight"
	"github.com/vitahq/vita/internal/model"
	"github.com/vitahq/vita/internal/service"
	"github.com/vitahq/vita/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/vita/vita.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	// Initialize storage
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initEngine opens storage and wraps it in an insight engine. The caller
// owns the returned store and must Close it.
func initEngine(ctx context.Context) (service.Storage, *insight.Engine, error) {
	store, err := initStorage(ctx)
	if err != nil {
		return nil, nil, err
	}
	return store, insight.NewEngine(store), nil
}

// parseDateArg accepts YYYY-MM-DD or the words "today" and "yesterday".
func parseDateArg(arg string) (string, error) {
	switch arg {
	case "", "today":
		return model.Day(time.Now()), nil
	case "yesterday":
		return model.Day(time.Now().AddDate(0, 0, -1)), nil
	}
	if _, err := model.ParseDay(arg); err != nil {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", arg, err)
	}
	return arg, nil
}

// currentMonthArg accepts YYYY-MM or empty for the current month.
func currentMonthArg(arg string) (string, error) {
	if arg == "" {
		return model.Month(time.Now()), nil
	}
	if _, err := time.Parse(model.MonthLayout, arg); err != nil {
		return "", fmt.Errorf("invalid month %q (want YYYY-MM): %w", arg, err)
	}
	return arg, nil
}
