package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db         *gorm.DB
	households HouseholdServicer
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB, households HouseholdServicer) CategoryServicer {
	return &categoryService{db: db, households: households}
}

// GetHouseholdCategories lists a household's categories ordered by type then name.
func (s *categoryService) GetHouseholdCategories(userID, householdID string) ([]models.Category, error) {
	if _, err := s.households.RequireMember(userID, householdID); err != nil {
		return nil, err
	}

	var categories []models.Category
	if err := s.db.Where("household_id = ?", householdID).
		Order("type ASC").
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// UpdateCategory updates a category's display fields. The type is immutable
// after creation; changing it would silently rebucket historical aggregates.
func (s *categoryService) UpdateCategory(userID, categoryID, name, icon, color string) (*models.Category, error) {
	category, err := s.getOwned(userID, categoryID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if icon != "" {
		updates["icon"] = icon
	}
	if color != "" {
		updates["color"] = color
	}

	if len(updates) > 0 {
		if err := s.db.Model(category).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return category, nil
}

// DeleteCategory soft-deletes a category. Existing transactions keep their
// category_id; aggregation treats the unresolved join as unknown.
func (s *categoryService) DeleteCategory(userID, categoryID string) error {
	category, err := s.getOwned(userID, categoryID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// getOwned fetches a category and verifies the caller belongs to its household.
func (s *categoryService) getOwned(userID, categoryID string) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, "id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if _, err := s.households.RequireMember(userID, category.HouseholdID); err != nil {
		// Hide the category's existence from non-members.
		return nil, apperrors.ErrCategoryNotFound
	}
	return &category, nil
}
