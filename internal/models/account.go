package models

// AccountType represents the type of account
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCash       AccountType = "cash"
	AccountTypeCreditCard AccountType = "credit_card"
	AccountTypeOther      AccountType = "other"
)

// Account represents a financial account within a household. The current
// balance is never stored; it is derived as initial_balance plus the sum of
// all transaction amounts on the account.
type Account struct {
	Base
	HouseholdID    string      `gorm:"type:uuid;not null;index" json:"household_id"`
	Name           string      `gorm:"not null" json:"name"`
	Type           AccountType `gorm:"not null" json:"type"`
	IsShared       bool        `gorm:"default:true" json:"is_shared"`
	OwnerID        *string     `gorm:"type:uuid" json:"owner_id,omitempty"`
	InitialBalance int64       `gorm:"type:bigint;not null;default:0" json:"initial_balance"`
	Currency       string      `gorm:"not null;default:'EUR'" json:"currency"`

	Owner        *Member       `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"transactions,omitempty"`
}
