package insight

import (
	"fmt"
	"time"

	"github.com/vitahq/vita/internal/model"
)

// DetectGoalRisks flags goals that are past their target date without
// being finished. One risk string per overdue goal, in input order.
func DetectGoalRisks(goals []model.Goal, now time.Time) []string {
	today := model.Day(now)

	var risks []string
	for _, g := range goals {
		if g.Progress >= 100 {
			continue
		}
		if g.TargetDate != "" && g.TargetDate < today {
			risks = append(risks, fmt.Sprintf("⏰ %q is past its target date (%s) at %d%% progress.", g.Title, g.TargetDate, g.Progress))
		}
	}
	return risks
}
