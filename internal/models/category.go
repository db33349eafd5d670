package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents a transaction category scoped to a household.
// A default set is seeded when the household is created.
type Category struct {
	Base
	HouseholdID string       `gorm:"type:uuid;not null;index" json:"household_id"`
	Name        string       `gorm:"not null" json:"name"`
	Type        CategoryType `gorm:"not null" json:"type"`
	Icon        string       `json:"icon"`
	Color       string       `json:"color"`
	IsDefault   bool         `gorm:"default:false" json:"is_default"`

	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"transactions,omitempty"`
	Budgets      []Budget      `gorm:"foreignKey:CategoryID" json:"budgets,omitempty"`
}
