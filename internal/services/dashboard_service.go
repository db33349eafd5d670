package services

import (
	"time"

	"gorm.io/gorm"

	"hearth/internal/dashboard"
	apperrors "hearth/internal/errors"
	"hearth/internal/models"
)

// trendMonths is the trailing window length for the monthly trend series.
const trendMonths = 6

// recentTransactionLimit caps the recent-transactions list on the dashboard.
const recentTransactionLimit = 50

// dashboardService assembles derived dashboard views. It fetches the rows
// for one household and month as a snapshot and hands them to the pure
// aggregation functions in internal/dashboard.
type dashboardService struct {
	db         *gorm.DB
	households HouseholdServicer
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB, households HouseholdServicer) DashboardServicer {
	return &dashboardService{db: db, households: households}
}

// GetDashboard computes every dashboard view for the household and month.
// Reads within one call form a consistent-enough snapshot for display;
// concurrent writes by other members may or may not appear in a given render.
func (s *dashboardService) GetDashboard(userID, householdID, month string) (*DashboardView, error) {
	if _, err := s.households.RequireMember(userID, householdID); err != nil {
		return nil, err
	}

	monthStart, err := time.Parse(dashboard.MonthKeyLayout, month)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be in YYYY-MM format")
	}
	monthEnd := monthStart.AddDate(0, 1, 0)
	trendStart := monthStart.AddDate(0, -(trendMonths - 1), 0)

	var monthTransactions []models.Transaction
	if err := s.db.Preload("Category").Preload("Member").Preload("Account").
		Where("household_id = ? AND date >= ? AND date < ?", householdID, monthStart, monthEnd).
		Order("date DESC").
		Find(&monthTransactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var windowTransactions []models.Transaction
	if err := s.db.Preload("Category").
		Where("household_id = ? AND date >= ? AND date < ?", householdID, trendStart, monthEnd).
		Find(&windowTransactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var budgets []models.Budget
	if err := s.db.Where("household_id = ? AND month = ?", householdID, month).
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	spending := dashboard.SpendingByCategory(monthTransactions, budgets)

	recent := monthTransactions
	if len(recent) > recentTransactionLimit {
		recent = recent[:recentTransactionLimit]
	}

	return &DashboardView{
		Month:              month,
		Overview:           dashboard.MonthlyOverview(monthTransactions, month),
		CategorySpending:   spending,
		TopSpending:        dashboard.TopSpending(spending, 8),
		Trend:              dashboard.Trend(windowTransactions, monthStart, trendMonths),
		Stats:              dashboard.QuickStats(monthTransactions),
		RecentTransactions: recent,
	}, nil
}
