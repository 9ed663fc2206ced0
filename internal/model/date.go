package model

import "time"

// Date layouts used throughout the application. Records carry calendar
// dates as plain ISO strings so month scoping is a simple prefix match.
const (
	DayLayout   = "2006-01-02"
	MonthLayout = "2006-01"
)

// Day formats a time as an ISO calendar day (YYYY-MM-DD).
func Day(t time.Time) string {
	return t.Format(DayLayout)
}

// Month formats a time as a month key (YYYY-MM).
func Month(t time.Time) string {
	return t.Format(MonthLayout)
}

// ParseDay parses an ISO calendar day string.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayLayout, s)
}

// PreviousMonth returns the month key immediately before the given one.
func PreviousMonth(monthKey string) (string, error) {
	t, err := time.Parse(MonthLayout, monthKey)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, -1, 0).Format(MonthLayout), nil
}
