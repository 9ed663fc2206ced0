package model

import "fmt"

// EnergyLevel is the daily self-reported energy on a 1/3/5 scale.
type EnergyLevel int

const (
	// EnergyLow is a drained day.
	EnergyLow EnergyLevel = 1
	// EnergyOkay is an average day.
	EnergyOkay EnergyLevel = 3
	// EnergyHigh is a strong day.
	EnergyHigh EnergyLevel = 5
)

// ParseEnergyLevel validates a raw level value.
func ParseEnergyLevel(v int) (EnergyLevel, error) {
	switch EnergyLevel(v) {
	case EnergyLow, EnergyOkay, EnergyHigh:
		return EnergyLevel(v), nil
	}
	return 0, fmt.Errorf("energy level must be 1, 3 or 5, got %d", v)
}

// Label returns the human name for the level.
func (l EnergyLevel) Label() string {
	switch l {
	case EnergyLow:
		return "Low"
	case EnergyOkay:
		return "Okay"
	case EnergyHigh:
		return "High"
	}
	return fmt.Sprintf("Unknown(%d)", int(l))
}

// EnergyLog is one day's energy entry. At most one row per date.
type EnergyLog struct {
	Date  string
	ID    int64
	Level EnergyLevel
}

// Profile is the single-row user profile. Salary defaults to 0 until the
// user sets it; analyzers treat a zero salary as "no signal".
type Profile struct {
	Name          string
	MonthlySalary float64
	Premium       bool
}
