package insight

import (
	"math"
	"time"

	"github.com/vitahq/vita/internal/model"
)

// PreparednessReport measures how well the document vault covers the
// essential categories and tracks expiry health.
type PreparednessReport struct {
	MissingEssentials []model.DocumentCategory
	Score             int
	ExpiredCount      int
	ExpiringSoonCount int
}

// expiringSoonDays is the warning window before a document expires.
const expiringSoonDays = 30

// CalculatePreparedness scores vault coverage of the essential categories
// and counts expired and soon-to-expire documents against the reference
// date. Documents without an expiry date are ignored by the expiry check.
func CalculatePreparedness(docs []model.Document, now time.Time) PreparednessReport {
	var report PreparednessReport

	covered := make(map[model.DocumentCategory]bool)
	for _, d := range docs {
		covered[d.Category] = true
	}

	for _, essential := range model.EssentialDocumentCategories {
		if !covered[essential] {
			report.MissingEssentials = append(report.MissingEssentials, essential)
		}
	}

	total := len(model.EssentialDocumentCategories)
	missing := len(report.MissingEssentials)
	report.Score = int(math.Round(100 * float64(total-missing) / float64(total)))

	today := model.Day(now)
	soonCutoff := model.Day(now.AddDate(0, 0, expiringSoonDays))
	for _, d := range docs {
		if d.ExpiryDate == "" {
			continue
		}
		switch {
		case d.ExpiryDate < today:
			report.ExpiredCount++
		case d.ExpiryDate <= soonCutoff:
			report.ExpiringSoonCount++
		}
	}

	return report
}
