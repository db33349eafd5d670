package models

import "time"

// Transaction represents a single income or expense entry. Amount is stored
// in cents, signed: negative for expenses, positive for income. The sign is
// forced at the write boundary to match the category type, not by a store
// constraint.
type Transaction struct {
	Base
	HouseholdID string    `gorm:"type:uuid;not null;index" json:"household_id"`
	AccountID   string    `gorm:"type:uuid;not null;index" json:"account_id"`
	CategoryID  *string   `gorm:"type:uuid;index" json:"category_id,omitempty"`
	MemberID    string    `gorm:"type:uuid;not null" json:"member_id"`
	Amount      int64     `gorm:"type:bigint;not null" json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `gorm:"not null;index" json:"date"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Member   *Member   `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Account  *Account  `gorm:"foreignKey:AccountID" json:"account,omitempty"`
}
