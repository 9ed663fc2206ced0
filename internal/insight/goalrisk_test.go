package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vitahq/vita/internal/model"
)

func TestDetectGoalRisks(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	goals := []model.Goal{
		{Title: "Run a 10k", TargetDate: "2026-08-20", Progress: 70},
		{Title: "Finished early", TargetDate: "2026-08-01", Progress: 100},
		{Title: "Still on schedule", TargetDate: "2026-09-15", Progress: 10},
		{Title: "Due today", TargetDate: "2026-08-28", Progress: 0},
	}

	risks := DetectGoalRisks(goals, now)

	assert.Equal(t, []string{
		`⏰ "Run a 10k" is past its target date (2026-08-20) at 70% progress.`,
	}, risks)
}

func TestDetectGoalRisksEmpty(t *testing.T) {
	now := time.Now()
	assert.Empty(t, DetectGoalRisks(nil, now))
	assert.Empty(t, DetectGoalRisks([]model.Goal{}, now))
}
