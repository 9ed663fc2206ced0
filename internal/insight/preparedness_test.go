package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vitahq/vita/internal/model"
)

var prepNow = time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

func TestCalculatePreparednessPartialCoverage(t *testing.T) {
	docs := []model.Document{
		{Title: "Aadhaar", Category: model.DocIdentity},
		{Title: "Offer letter", Category: model.DocWork},
	}

	report := CalculatePreparedness(docs, prepNow)

	assert.Equal(t, []model.DocumentCategory{model.DocFinance, model.DocEducation}, report.MissingEssentials)
	assert.Equal(t, 50, report.Score)
	assert.Zero(t, report.ExpiredCount)
	assert.Zero(t, report.ExpiringSoonCount)
}

func TestCalculatePreparednessFullCoverage(t *testing.T) {
	docs := []model.Document{
		{Category: model.DocIdentity},
		{Category: model.DocFinance},
		{Category: model.DocEducation},
		{Category: model.DocWork},
		{Category: model.DocOther},
	}

	report := CalculatePreparedness(docs, prepNow)

	assert.Empty(t, report.MissingEssentials)
	assert.Equal(t, 100, report.Score)
}

func TestCalculatePreparednessEmptyVault(t *testing.T) {
	report := CalculatePreparedness(nil, prepNow)

	assert.Len(t, report.MissingEssentials, 4)
	assert.Zero(t, report.Score)
}

func TestCalculatePreparednessExpiry(t *testing.T) {
	docs := []model.Document{
		{Category: model.DocIdentity, ExpiryDate: "2026-08-20"}, // expired
		{Category: model.DocFinance, ExpiryDate: "2026-09-10"},  // within 30 days
		{Category: model.DocEducation, ExpiryDate: "2026-09-27"}, // exactly 30 days out
		{Category: model.DocWork, ExpiryDate: "2027-01-01"},
		{Category: model.DocOther}, // no expiry, ignored
	}

	report := CalculatePreparedness(docs, prepNow)

	assert.Equal(t, 1, report.ExpiredCount)
	assert.Equal(t, 2, report.ExpiringSoonCount)
}
