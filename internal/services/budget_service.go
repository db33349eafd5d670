package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db         *gorm.DB
	households HouseholdServicer
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB, households HouseholdServicer) BudgetServicer {
	return &budgetService{db: db, households: households}
}

// UpsertBudget writes the budget for (household, category, month). Writing
// an existing key overwrites the amount in a single conditional statement,
// so concurrent upserts cannot lose an update or leave two rows.
func (s *budgetService) UpsertBudget(userID, householdID, categoryID, month string, amount int64) (*models.Budget, error) {
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget amount must not be negative")
	}
	if _, err := s.households.RequireMember(userID, householdID); err != nil {
		return nil, err
	}

	var category models.Category
	if err := s.db.Where("id = ? AND household_id = ?", categoryID, householdID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	budget := &models.Budget{
		HouseholdID: householdID,
		CategoryID:  categoryID,
		Month:       month,
		Amount:      amount,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "household_id"}, {Name: "category_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(budget).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Re-read so the caller sees the surviving row, not the candidate insert.
	var saved models.Budget
	if err := s.db.Preload("Category").
		Where("household_id = ? AND category_id = ? AND month = ?", householdID, categoryID, month).
		First(&saved).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &saved, nil
}

// GetMonthBudgets lists a household's budgets for a month with categories resolved.
func (s *budgetService) GetMonthBudgets(userID, householdID, month string) ([]models.Budget, error) {
	if _, err := s.households.RequireMember(userID, householdID); err != nil {
		return nil, err
	}

	var budgets []models.Budget
	if err := s.db.Preload("Category").
		Where("household_id = ? AND month = ?", householdID, month).
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}
