package dashboard

import (
	"testing"
	"time"

	"hearth/internal/models"
)

func expenseCategory(id, name string) *models.Category {
	return &models.Category{
		Base: models.Base{ID: id},
		Name: name,
		Type: models.CategoryTypeExpense,
	}
}

func incomeCategory(id, name string) *models.Category {
	return &models.Category{
		Base: models.Base{ID: id},
		Name: name,
		Type: models.CategoryTypeIncome,
	}
}

func tx(id string, cat *models.Category, amount int64, date time.Time) models.Transaction {
	t := models.Transaction{
		Base:   models.Base{ID: id},
		Amount: amount,
		Date:   date,
	}
	if cat != nil {
		t.CategoryID = &cat.ID
		t.Category = cat
	}
	return t
}

func TestMonthlyOverview(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	salary := incomeCategory("c-salary", "Salary")
	groceries := expenseCategory("c-groceries", "Groceries")

	t.Run("partitions_by_category_type", func(t *testing.T) {
		transactions := []models.Transaction{
			tx("t1", salary, 250000, now),
			tx("t2", groceries, -4500, now),
			tx("t3", groceries, -12050, now),
		}

		o := MonthlyOverview(transactions, "2026-08")
		if o.TotalIncome != 250000 {
			t.Errorf("expected income 250000, got %d", o.TotalIncome)
		}
		if o.TotalExpenses != 16550 {
			t.Errorf("expected expenses 16550, got %d", o.TotalExpenses)
		}
		if o.Balance != 233450 {
			t.Errorf("expected balance 233450, got %d", o.Balance)
		}
	})

	t.Run("sign_convention_does_not_leak", func(t *testing.T) {
		// A stored expense of -5000 must surface as 5000 spent.
		o := MonthlyOverview([]models.Transaction{tx("t1", groceries, -5000, now)}, "2026-08")
		if o.TotalExpenses != 5000 {
			t.Errorf("expected expenses 5000, got %d", o.TotalExpenses)
		}
	})

	t.Run("missing_category_counts_as_expense", func(t *testing.T) {
		o := MonthlyOverview([]models.Transaction{tx("t1", nil, -3000, now)}, "2026-08")
		if o.TotalExpenses != 3000 {
			t.Errorf("expected expenses 3000, got %d", o.TotalExpenses)
		}
		if o.TotalIncome != 0 {
			t.Errorf("expected income 0, got %d", o.TotalIncome)
		}
	})

	t.Run("empty", func(t *testing.T) {
		o := MonthlyOverview(nil, "2026-08")
		if o.TotalIncome != 0 || o.TotalExpenses != 0 || o.Balance != 0 {
			t.Errorf("expected zero overview, got %+v", o)
		}
	})
}

func TestSpendingByCategory(t *testing.T) {
	now := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	groceries := expenseCategory("c-groceries", "Groceries")
	dining := expenseCategory("c-dining", "Dining")
	salary := incomeCategory("c-salary", "Salary")

	budget := func(catID string, amount int64) models.Budget {
		return models.Budget{CategoryID: catID, Month: "2026-08", Amount: amount}
	}

	t.Run("groups_and_sorts_by_spend", func(t *testing.T) {
		transactions := []models.Transaction{
			tx("t1", dining, -2000, now),
			tx("t2", groceries, -4000, now),
			tx("t3", groceries, -3000, now),
			tx("t4", salary, 100000, now), // income excluded
			tx("t5", nil, -9999, now),     // unresolved category excluded
		}

		result := SpendingByCategory(transactions, nil)
		if len(result) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(result))
		}
		if result[0].CategoryName != "Groceries" || result[0].Spent != 7000 {
			t.Errorf("expected Groceries 7000 first, got %s %d", result[0].CategoryName, result[0].Spent)
		}
		if result[1].CategoryName != "Dining" || result[1].Spent != 2000 {
			t.Errorf("expected Dining 2000 second, got %s %d", result[1].CategoryName, result[1].Spent)
		}
	})

	t.Run("threshold_boundaries", func(t *testing.T) {
		cases := []struct {
			name   string
			spent  int64
			budget int64
			want   BudgetStatus
		}{
			{"under_warning", 7999, 10000, StatusOK},
			{"at_warning", 8000, 10000, StatusWarning},
			{"at_limit", 10000, 10000, StatusOver},
			{"over_limit", 15000, 10000, StatusOver},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				transactions := []models.Transaction{tx("t1", groceries, -tc.spent, now)}
				result := SpendingByCategory(transactions, []models.Budget{budget(groceries.ID, tc.budget)})
				if len(result) != 1 {
					t.Fatalf("expected 1 category, got %d", len(result))
				}
				if result[0].Status != tc.want {
					t.Errorf("spent=%d budget=%d: expected status %s, got %s", tc.spent, tc.budget, tc.want, result[0].Status)
				}
			})
		}
	})

	t.Run("zero_budget_is_no_budget", func(t *testing.T) {
		transactions := []models.Transaction{tx("t1", groceries, -5000, now)}
		result := SpendingByCategory(transactions, []models.Budget{budget(groceries.ID, 0)})
		if result[0].Status != StatusNoBudget {
			t.Errorf("expected no-budget for zero budget, got %s", result[0].Status)
		}
		if result[0].Percentage != 0 {
			t.Errorf("expected percentage 0, got %f", result[0].Percentage)
		}
	})

	t.Run("absent_budget_is_no_budget", func(t *testing.T) {
		transactions := []models.Transaction{tx("t1", groceries, -5000, now)}
		result := SpendingByCategory(transactions, nil)
		if result[0].Status != StatusNoBudget {
			t.Errorf("expected no-budget, got %s", result[0].Status)
		}
		if result[0].Budget != nil {
			t.Errorf("expected nil budget, got %d", *result[0].Budget)
		}
	})

	t.Run("remaining_and_percentage", func(t *testing.T) {
		transactions := []models.Transaction{tx("t1", groceries, -2500, now)}
		result := SpendingByCategory(transactions, []models.Budget{budget(groceries.ID, 10000)})
		if result[0].Remaining != 7500 {
			t.Errorf("expected remaining 7500, got %d", result[0].Remaining)
		}
		if result[0].Percentage != 25.0 {
			t.Errorf("expected percentage 25, got %f", result[0].Percentage)
		}
	})
}

func TestTopSpending(t *testing.T) {
	spending := make([]CategorySpending, 10)
	capped := TopSpending(spending, 8)
	if len(capped) != 8 {
		t.Errorf("expected 8 entries, got %d", len(capped))
	}
	short := TopSpending(spending[:3], 8)
	if len(short) != 3 {
		t.Errorf("expected 3 entries, got %d", len(short))
	}
}

func TestTrend(t *testing.T) {
	end := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	groceries := expenseCategory("c-groceries", "Groceries")
	salary := incomeCategory("c-salary", "Salary")

	t.Run("window_completeness", func(t *testing.T) {
		series := Trend(nil, end, 6)
		if len(series) != 6 {
			t.Fatalf("expected 6 buckets, got %d", len(series))
		}
		wantKeys := []string{"2026-03", "2026-04", "2026-05", "2026-06", "2026-07", "2026-08"}
		for i, want := range wantKeys {
			if series[i].Month != want {
				t.Errorf("bucket %d: expected %s, got %s", i, want, series[i].Month)
			}
			if series[i].Income != 0 || series[i].Expenses != 0 {
				t.Errorf("bucket %s: expected zero totals", series[i].Month)
			}
		}
	})

	t.Run("folds_into_matching_bucket", func(t *testing.T) {
		transactions := []models.Transaction{
			tx("t1", salary, 100000, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)),
			tx("t2", groceries, -4000, time.Date(2026, 6, 28, 0, 0, 0, 0, time.UTC)),
			tx("t3", groceries, -1000, time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)),
		}
		series := Trend(transactions, end, 6)
		if series[3].Income != 100000 || series[3].Expenses != 4000 {
			t.Errorf("2026-06: expected income 100000 expenses 4000, got %d/%d", series[3].Income, series[3].Expenses)
		}
		if series[5].Expenses != 1000 {
			t.Errorf("2026-08: expected expenses 1000, got %d", series[5].Expenses)
		}
	})

	t.Run("out_of_window_ignored", func(t *testing.T) {
		transactions := []models.Transaction{
			tx("t1", groceries, -4000, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)),
			tx("t2", groceries, -4000, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)),
		}
		series := Trend(transactions, end, 6)
		for _, p := range series {
			if p.Income != 0 || p.Expenses != 0 {
				t.Errorf("bucket %s: expected zero, got income=%d expenses=%d", p.Month, p.Income, p.Expenses)
			}
		}
	})

	t.Run("year_boundary", func(t *testing.T) {
		series := Trend(nil, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), 6)
		wantKeys := []string{"2025-09", "2025-10", "2025-11", "2025-12", "2026-01", "2026-02"}
		for i, want := range wantKeys {
			if series[i].Month != want {
				t.Errorf("bucket %d: expected %s, got %s", i, want, series[i].Month)
			}
		}
	})
}

func TestQuickStats(t *testing.T) {
	now := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	groceries := expenseCategory("c-groceries", "Groceries")
	dining := expenseCategory("c-dining", "Dining")
	salary := incomeCategory("c-salary", "Salary")

	t.Run("empty_input_has_absent_stats", func(t *testing.T) {
		stats := QuickStats(nil)
		if stats.BiggestExpense != nil {
			t.Error("expected biggest expense to be absent")
		}
		if stats.TopCategory != nil {
			t.Error("expected top category to be absent")
		}
		if stats.TransactionCount != 0 {
			t.Errorf("expected count 0, got %d", stats.TransactionCount)
		}
		if stats.AvgDailySpend != 0 {
			t.Errorf("expected avg daily spend 0, got %d", stats.AvgDailySpend)
		}
	})

	t.Run("biggest_expense_stable_on_tie", func(t *testing.T) {
		transactions := []models.Transaction{
			tx("t1", groceries, -5000, now),
			tx("t2", dining, -5000, now),
		}
		stats := QuickStats(transactions)
		if stats.BiggestExpense == nil || stats.BiggestExpense.TransactionID != "t1" {
			t.Errorf("expected first-encountered t1 to win the tie, got %+v", stats.BiggestExpense)
		}
	})

	t.Run("top_category", func(t *testing.T) {
		transactions := []models.Transaction{
			tx("t1", dining, -2000, now),
			tx("t2", groceries, -3000, now),
			tx("t3", groceries, -2500, now),
			tx("t4", salary, 100000, now),
		}
		stats := QuickStats(transactions)
		if stats.TopCategory == nil || stats.TopCategory.CategoryName != "Groceries" {
			t.Fatalf("expected Groceries as top category, got %+v", stats.TopCategory)
		}
		if stats.TopCategory.Total != 5500 {
			t.Errorf("expected total 5500, got %d", stats.TopCategory.Total)
		}
	})

	t.Run("avg_daily_spend_by_distinct_dates", func(t *testing.T) {
		transactions := []models.Transaction{
			tx("t1", groceries, -3000, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)),
			tx("t2", groceries, -1000, time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)),
			tx("t3", dining, -2000, time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)),
		}
		stats := QuickStats(transactions)
		if stats.DaysWithExpenses != 2 {
			t.Errorf("expected 2 days with expenses, got %d", stats.DaysWithExpenses)
		}
		if stats.AvgDailySpend != 3000 {
			t.Errorf("expected avg 3000, got %d", stats.AvgDailySpend)
		}
	})

	t.Run("counts_all_transactions_but_stats_expenses_only", func(t *testing.T) {
		transactions := []models.Transaction{
			tx("t1", salary, 100000, now),
			tx("t2", nil, -500, now), // unresolved join excluded from expense stats
		}
		stats := QuickStats(transactions)
		if stats.TransactionCount != 2 {
			t.Errorf("expected count 2, got %d", stats.TransactionCount)
		}
		if stats.BiggestExpense != nil {
			t.Errorf("expected no biggest expense, got %+v", stats.BiggestExpense)
		}
	})
}
