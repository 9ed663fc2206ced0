package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vitahq/vita/internal/model"
)

func TestCategoryStats(t *testing.T) {
	expenses := []model.Expense{
		{Amount: 1000, Category: model.CategoryFood},
		{Amount: 5000, Category: model.CategoryRent},
		{Amount: 2000, Category: model.CategoryFood},
		{Amount: 2000, Category: model.CategoryFun},
	}

	stats := CategoryStats(expenses)

	assert.Len(t, stats, 3)
	assert.Equal(t, model.CategoryRent, stats[0].Category)
	assert.InDelta(t, 5000.0, stats[0].Total, 0.001)
	assert.Equal(t, model.CategoryFood, stats[1].Category)
	assert.InDelta(t, 3000.0, stats[1].Total, 0.001)
	assert.Equal(t, model.CategoryFun, stats[2].Category)

	var pctSum float64
	for _, s := range stats {
		pctSum += s.Percentage
	}
	assert.InDelta(t, 100.0, pctSum, 0.01)
}

func TestCategoryStatsSortedDescending(t *testing.T) {
	expenses := []model.Expense{
		{Amount: 10, Category: model.CategoryFun},
		{Amount: 90, Category: model.CategoryFood},
		{Amount: 50, Category: model.CategoryTransport},
	}

	stats := CategoryStats(expenses)

	for i := 1; i < len(stats); i++ {
		assert.GreaterOrEqual(t, stats[i-1].Total, stats[i].Total)
	}
}

func TestCategoryStatsEmpty(t *testing.T) {
	assert.Empty(t, CategoryStats(nil))
	assert.Empty(t, CategoryStats([]model.Expense{}))
}
