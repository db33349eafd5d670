package models

// HouseholdSettings holds display preferences shared by every member of a
// household.
type HouseholdSettings struct {
	Currency  string `gorm:"default:'EUR'" json:"currency"`
	Locale    string `gorm:"default:'de-DE'" json:"locale"`
	ShowCents bool   `gorm:"default:true" json:"show_cents"`
}

// Household is the shared financial unit and top-level tenant boundary.
// The invite code is generated once at creation and never changes.
type Household struct {
	Base
	Name       string            `gorm:"not null" json:"name"`
	InviteCode string            `gorm:"size:8;uniqueIndex;not null" json:"invite_code"`
	Settings   HouseholdSettings `gorm:"embedded;embeddedPrefix:settings_" json:"settings"`

	Members      []Member      `gorm:"foreignKey:HouseholdID" json:"members,omitempty"`
	Categories   []Category    `gorm:"foreignKey:HouseholdID" json:"categories,omitempty"`
	Accounts     []Account     `gorm:"foreignKey:HouseholdID" json:"accounts,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:HouseholdID" json:"transactions,omitempty"`
	Budgets      []Budget      `gorm:"foreignKey:HouseholdID" json:"budgets,omitempty"`
}
