package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hearth/internal/invite"
	"hearth/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestHousehold creates a household with a fresh invite code.
func CreateTestHousehold(t *testing.T, db *gorm.DB) *models.Household {
	t.Helper()

	code, err := invite.NewCode()
	if err != nil {
		t.Fatalf("failed to generate invite code: %v", err)
	}

	household := &models.Household{
		Name:       fmt.Sprintf("Test Household %d", nextID()),
		InviteCode: code,
		Settings:   models.HouseholdSettings{Currency: "EUR", Locale: "de-DE", ShowCents: true},
	}
	if err := db.Create(household).Error; err != nil {
		t.Fatalf("failed to create test household: %v", err)
	}
	return household
}

// CreateTestMember adds a user to a household with the given role.
func CreateTestMember(t *testing.T, db *gorm.DB, householdID, userID string, role models.Role) *models.Member {
	t.Helper()

	member := &models.Member{
		HouseholdID: householdID,
		UserID:      userID,
		DisplayName: fmt.Sprintf("Member %d", nextID()),
		Role:        role,
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to create test member: %v", err)
	}
	return member
}

// CreateTestCategory creates a category of the given type in the household.
func CreateTestCategory(t *testing.T, db *gorm.DB, householdID string, categoryType models.CategoryType) *models.Category {
	t.Helper()

	category := &models.Category{
		HouseholdID: householdID,
		Name:        fmt.Sprintf("Test Category %d", nextID()),
		Type:        categoryType,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestAccount creates a checking account with the given initial balance (in cents).
func CreateTestAccount(t *testing.T, db *gorm.DB, householdID string, initialBalance int64) *models.Account {
	t.Helper()

	account := &models.Account{
		HouseholdID:    householdID,
		Name:           fmt.Sprintf("Test Account %d", nextID()),
		Type:           models.AccountTypeChecking,
		IsShared:       true,
		InitialBalance: initialBalance,
		Currency:       "EUR",
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestTransaction creates a transaction with the given signed amount (in cents).
func CreateTestTransaction(t *testing.T, db *gorm.DB, householdID, accountID, memberID string, categoryID *string, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		HouseholdID: householdID,
		AccountID:   accountID,
		CategoryID:  categoryID,
		MemberID:    memberID,
		Amount:      amount,
		Date:        date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestBudget creates a budget for the category and month (amount in cents).
func CreateTestBudget(t *testing.T, db *gorm.DB, householdID, categoryID, month string, amount int64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		HouseholdID: householdID,
		CategoryID:  categoryID,
		Month:       month,
		Amount:      amount,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}
