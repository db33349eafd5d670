package dashboard

import (
	"sort"

	"hearth/internal/models"
)

// BudgetStatus classifies spending against a budget ceiling.
type BudgetStatus string

const (
	StatusOK       BudgetStatus = "ok"
	StatusWarning  BudgetStatus = "warning"
	StatusOver     BudgetStatus = "over"
	StatusNoBudget BudgetStatus = "no-budget"
)

const warningThreshold = 80.0

// CategorySpending is one expense category's spend vs budget for a month.
type CategorySpending struct {
	CategoryID   string       `json:"category_id"`
	CategoryName string       `json:"category_name"`
	CategoryIcon string       `json:"category_icon,omitempty"`
	Spent        int64        `json:"spent"`
	Budget       *int64       `json:"budget,omitempty"`
	Remaining    int64        `json:"remaining"`
	Percentage   float64      `json:"percentage"`
	Status       BudgetStatus `json:"status"`
}

// SpendingByCategory groups expense transactions by category, sums absolute
// amounts, and matches each group against its monthly budget. The result is
// sorted by descending spend; categories tied on spend keep first-encounter
// order. Transactions without a resolved expense category are excluded.
func SpendingByCategory(transactions []models.Transaction, budgets []models.Budget) []CategorySpending {
	budgetByCategory := make(map[string]int64, len(budgets))
	for _, b := range budgets {
		budgetByCategory[b.CategoryID] = b.Amount
	}

	index := make(map[string]int)
	var result []CategorySpending
	for _, t := range transactions {
		if !isExpense(t) || t.CategoryID == nil {
			continue
		}
		catID := *t.CategoryID
		if i, ok := index[catID]; ok {
			result[i].Spent += abs(t.Amount)
			continue
		}
		cs := CategorySpending{
			CategoryID:   catID,
			CategoryName: t.Category.Name,
			CategoryIcon: t.Category.Icon,
			Spent:        abs(t.Amount),
		}
		if amount, ok := budgetByCategory[catID]; ok {
			cs.Budget = &amount
		}
		index[catID] = len(result)
		result = append(result, cs)
	}

	for i := range result {
		result[i].Remaining, result[i].Percentage, result[i].Status = classify(result[i].Spent, result[i].Budget)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Spent > result[j].Spent
	})
	return result
}

// classify computes remaining/percentage and the 3-way threshold status. A
// missing or zero budget is "no-budget" regardless of spend.
func classify(spent int64, budget *int64) (remaining int64, percentage float64, status BudgetStatus) {
	if budget == nil || *budget <= 0 {
		return 0, 0, StatusNoBudget
	}
	remaining = *budget - spent
	percentage = float64(spent) / float64(*budget) * 100
	switch {
	case percentage >= 100:
		status = StatusOver
	case percentage >= warningThreshold:
		status = StatusWarning
	default:
		status = StatusOK
	}
	return remaining, percentage, status
}

// TopSpending caps a category spending view at n entries for chart display.
func TopSpending(spending []CategorySpending, n int) []CategorySpending {
	if len(spending) <= n {
		return spending
	}
	return spending[:n]
}
