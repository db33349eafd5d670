package models

// Budget is a monthly spending target for an expense category. The composite
// unique index on (household_id, category_id, month) backs the upsert
// semantics: writing an existing key overwrites the amount.
type Budget struct {
	Base
	HouseholdID string `gorm:"type:uuid;not null;uniqueIndex:idx_budget_key" json:"household_id"`
	CategoryID  string `gorm:"type:uuid;not null;uniqueIndex:idx_budget_key" json:"category_id"`
	Month       string `gorm:"size:7;not null;uniqueIndex:idx_budget_key" json:"month"`
	Amount      int64  `gorm:"type:bigint;not null" json:"amount"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
