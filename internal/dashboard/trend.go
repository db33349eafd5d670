package dashboard

import (
	"time"

	"hearth/internal/models"
)

// MonthKeyLayout is the time layout for month bucket keys (YYYY-MM).
const MonthKeyLayout = "2006-01"

// TrendPoint is one month's income/expense totals in a trend series.
type TrendPoint struct {
	Month    string `json:"month"`
	Income   int64  `json:"income"`
	Expenses int64  `json:"expenses"`
}

// Trend builds a fixed-size series of the trailing months ending at end,
// inclusive. Every bucket is present even with zero transactions;
// transactions dated outside the window contribute to no bucket.
func Trend(transactions []models.Transaction, end time.Time, months int) []TrendPoint {
	if months <= 0 {
		return []TrendPoint{}
	}

	series := make([]TrendPoint, months)
	index := make(map[string]int, months)
	first := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)
	for i := 0; i < months; i++ {
		key := first.AddDate(0, i, 0).Format(MonthKeyLayout)
		series[i] = TrendPoint{Month: key}
		index[key] = i
	}

	for _, t := range transactions {
		i, ok := index[t.Date.Format(MonthKeyLayout)]
		if !ok {
			continue
		}
		if isIncome(t) {
			series[i].Income += abs(t.Amount)
		} else {
			series[i].Expenses += abs(t.Amount)
		}
	}
	return series
}
