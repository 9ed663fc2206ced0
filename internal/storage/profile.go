package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vitahq/vita/internal/model"
)

// The profile is a single row with a fixed id, created lazily on first
// write. A missing row reads as the zero profile.
const profileRowID = 1

// GetMonthlySalary returns the configured monthly salary, 0 if unset.
func (s *SQLiteStorage) GetMonthlySalary(ctx context.Context) (float64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var salary float64
	err := s.db.QueryRowContext(ctx, `
		SELECT monthly_salary FROM user_profile WHERE id = ?
	`, profileRowID).Scan(&salary)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get salary: %w", err)
	}
	return salary, nil
}

// SetMonthlySalary stores the monthly salary.
func (s *SQLiteStorage) SetMonthlySalary(ctx context.Context, amount float64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf("salary must be positive, got %v", amount)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_profile (id, monthly_salary) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET monthly_salary = excluded.monthly_salary
	`, profileRowID, amount)
	if err != nil {
		return fmt.Errorf("failed to set salary: %w", err)
	}
	return nil
}

// GetPremium reports whether the premium flag is set.
func (s *SQLiteStorage) GetPremium(ctx context.Context) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}

	var premium int
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(is_premium, 0) FROM user_profile WHERE id = ?
	`, profileRowID).Scan(&premium)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to get premium flag: %w", err)
	}
	return premium != 0, nil
}

// SetPremium stores the premium flag.
func (s *SQLiteStorage) SetPremium(ctx context.Context, premium bool) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_profile (id, is_premium) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET is_premium = excluded.is_premium
	`, profileRowID, boolToInt(premium))
	if err != nil {
		return fmt.Errorf("failed to set premium flag: %w", err)
	}
	return nil
}

// LogEnergy upserts the energy level for one calendar day.
func (s *SQLiteStorage) LogEnergy(ctx context.Context, date string, level model.EnergyLevel) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(date, "date"); err != nil {
		return err
	}
	if _, err := model.ParseEnergyLevel(int(level)); err != nil {
		return err
	}
	if _, err := model.ParseDay(date); err != nil {
		return fmt.Errorf("invalid energy log date %q: %w", date, err)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO energy_logs (date, energy_level) VALUES (?, ?)
		ON CONFLICT(date) DO UPDATE SET energy_level = excluded.energy_level
	`, date, int(level))
	if err != nil {
		return fmt.Errorf("failed to log energy: %w", err)
	}
	return nil
}

// GetEnergy returns the energy log for one day, or nil if none exists.
func (s *SQLiteStorage) GetEnergy(ctx context.Context, date string) (*model.EnergyLog, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(date, "date"); err != nil {
		return nil, err
	}

	var log model.EnergyLog
	var level int
	err := s.db.QueryRowContext(ctx, `
		SELECT id, date, energy_level FROM energy_logs WHERE date = ?
	`, date).Scan(&log.ID, &log.Date, &level)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get energy log: %w", err)
	}
	log.Level = model.EnergyLevel(level)
	return &log, nil
}
