package dashboard

import "hearth/internal/models"

// Overview summarizes a month's income and expenses. Amounts are in cents.
type Overview struct {
	Month         string `json:"month"`
	TotalIncome   int64  `json:"total_income"`
	TotalExpenses int64  `json:"total_expenses"`
	Balance       int64  `json:"balance"`
}

// MonthlyOverview partitions transactions by their joined category type and
// sums absolute amounts, so the storage sign convention (negative expenses)
// never leaks into displayed totals. A transaction without a resolved income
// category counts as an expense.
func MonthlyOverview(transactions []models.Transaction, month string) Overview {
	o := Overview{Month: month}
	for _, t := range transactions {
		if isIncome(t) {
			o.TotalIncome += abs(t.Amount)
		} else {
			o.TotalExpenses += abs(t.Amount)
		}
	}
	o.Balance = o.TotalIncome - o.TotalExpenses
	return o
}

func isIncome(t models.Transaction) bool {
	return t.Category != nil && t.Category.Type == models.CategoryTypeIncome
}

// isExpense requires a resolved expense category; transactions with a missing
// category join are excluded from per-category views.
func isExpense(t models.Transaction) bool {
	return t.Category != nil && t.Category.Type == models.CategoryTypeExpense
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
