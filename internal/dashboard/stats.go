package dashboard

import "hearth/internal/models"

// BiggestExpense highlights the single largest expense transaction.
type BiggestExpense struct {
	TransactionID string `json:"transaction_id"`
	Amount        int64  `json:"amount"`
	Description   string `json:"description"`
	CategoryName  string `json:"category_name"`
}

// CategoryTotal is a category name with its summed spend.
type CategoryTotal struct {
	CategoryName string `json:"category_name"`
	Total        int64  `json:"total"`
}

// Stats holds quick dashboard statistics for the current month. Pointer
// fields are nil (absent), not zero-valued, when there is nothing to report.
type Stats struct {
	BiggestExpense   *BiggestExpense `json:"biggest_expense,omitempty"`
	TopCategory      *CategoryTotal  `json:"top_category,omitempty"`
	AvgDailySpend    int64           `json:"avg_daily_spend"`
	DaysWithExpenses int             `json:"days_with_expenses"`
	TransactionCount int             `json:"transaction_count"`
}

// QuickStats computes summary statistics over the month's transactions.
// Ties (equal amounts, equal category totals) resolve to the first
// encountered entry, keeping the result stable across renders.
func QuickStats(transactions []models.Transaction) Stats {
	stats := Stats{TransactionCount: len(transactions)}

	var totalExpenses int64
	days := make(map[string]bool)
	categoryOrder := []string{}
	categoryTotals := make(map[string]int64)

	for _, t := range transactions {
		if !isExpense(t) {
			continue
		}
		amount := abs(t.Amount)
		totalExpenses += amount
		days[t.Date.Format("2006-01-02")] = true

		if stats.BiggestExpense == nil || amount > stats.BiggestExpense.Amount {
			stats.BiggestExpense = &BiggestExpense{
				TransactionID: t.ID,
				Amount:        amount,
				Description:   t.Description,
				CategoryName:  t.Category.Name,
			}
		}

		name := t.Category.Name
		if _, seen := categoryTotals[name]; !seen {
			categoryOrder = append(categoryOrder, name)
		}
		categoryTotals[name] += amount
	}

	for _, name := range categoryOrder {
		if stats.TopCategory == nil || categoryTotals[name] > stats.TopCategory.Total {
			stats.TopCategory = &CategoryTotal{CategoryName: name, Total: categoryTotals[name]}
		}
	}

	stats.DaysWithExpenses = len(days)
	if stats.DaysWithExpenses > 0 {
		stats.AvgDailySpend = totalExpenses / int64(stats.DaysWithExpenses)
	}
	return stats
}
