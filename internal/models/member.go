package models

// Role represents a member's role within a household
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Member associates a user with a household. The composite unique index on
// (household_id, user_id) is what makes duplicate joins fail at the store.
type Member struct {
	Base
	HouseholdID string `gorm:"type:uuid;not null;uniqueIndex:idx_household_user" json:"household_id"`
	UserID      string `gorm:"type:uuid;not null;uniqueIndex:idx_household_user" json:"user_id"`
	DisplayName string `gorm:"not null" json:"display_name"`
	Role        Role   `gorm:"not null;default:'member'" json:"role"`

	Household *Household `gorm:"foreignKey:HouseholdID" json:"household,omitempty"`
}
