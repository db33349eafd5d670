package services

import (
	"testing"
	"time"

	"hearth/internal/models"
	"hearth/internal/testutil"
)

func TestCreateAccount(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		households := NewHouseholdService(db)
		svc := NewAccountService(db, households)
		user := testutil.CreateTestUser(t, db)
		household := testutil.CreateTestHousehold(t, db)
		member := testutil.CreateTestMember(t, db, household.ID, user.ID, models.RoleOwner)

		account, err := svc.CreateAccount(user.ID, household.ID, "Joint Checking", models.AccountTypeChecking, true, 150000, &member.ID)
		testutil.AssertNoError(t, err)
		if account.ID == "" {
			t.Fatal("expected generated account ID")
		}
		if account.InitialBalance != 150000 {
			t.Errorf("expected initial balance 150000, got %d", account.InitialBalance)
		}
	})

	t.Run("missing_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		households := NewHouseholdService(db)
		svc := NewAccountService(db, households)
		user := testutil.CreateTestUser(t, db)
		household := testutil.CreateTestHousehold(t, db)
		testutil.CreateTestMember(t, db, household.ID, user.ID, models.RoleOwner)

		_, err := svc.CreateAccount(user.ID, household.ID, "", models.AccountTypeCash, false, 0, nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("non_member", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		households := NewHouseholdService(db)
		svc := NewAccountService(db, households)
		outsider := testutil.CreateTestUser(t, db)
		household := testutil.CreateTestHousehold(t, db)

		_, err := svc.CreateAccount(outsider.ID, household.ID, "Sneaky", models.AccountTypeCash, false, 0, nil)
		testutil.AssertAppError(t, err, "HOUSEHOLD_NOT_FOUND")
	})
}

func TestGetHouseholdAccounts(t *testing.T) {
	t.Run("derived_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		households := NewHouseholdService(db)
		svc := NewAccountService(db, households)
		user := testutil.CreateTestUser(t, db)
		household := testutil.CreateTestHousehold(t, db)
		member := testutil.CreateTestMember(t, db, household.ID, user.ID, models.RoleOwner)
		account := testutil.CreateTestAccount(t, db, household.ID, 10000)
		expense := testutil.CreateTestCategory(t, db, household.ID, models.CategoryTypeExpense)
		income := testutil.CreateTestCategory(t, db, household.ID, models.CategoryTypeIncome)

		now := time.Now()
		testutil.CreateTestTransaction(t, db, household.ID, account.ID, member.ID, &expense.ID, -2500, now)
		testutil.CreateTestTransaction(t, db, household.ID, account.ID, member.ID, &income.ID, 5000, now)

		accounts, err := svc.GetHouseholdAccounts(user.ID, household.ID)
		testutil.AssertNoError(t, err)
		if len(accounts) != 1 {
			t.Fatalf("expected 1 account, got %d", len(accounts))
		}
		// 10000 initial - 2500 expense + 5000 income.
		if accounts[0].Balance != 12500 {
			t.Errorf("expected derived balance 12500, got %d", accounts[0].Balance)
		}
	})

	t.Run("deleted_transactions_do_not_count", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		households := NewHouseholdService(db)
		svc := NewAccountService(db, households)
		user := testutil.CreateTestUser(t, db)
		household := testutil.CreateTestHousehold(t, db)
		member := testutil.CreateTestMember(t, db, household.ID, user.ID, models.RoleOwner)
		account := testutil.CreateTestAccount(t, db, household.ID, 10000)
		expense := testutil.CreateTestCategory(t, db, household.ID, models.CategoryTypeExpense)

		tx := testutil.CreateTestTransaction(t, db, household.ID, account.ID, member.ID, &expense.ID, -2500, time.Now())
		testutil.AssertNoError(t, db.Delete(tx).Error)

		accounts, err := svc.GetHouseholdAccounts(user.ID, household.ID)
		testutil.AssertNoError(t, err)
		if accounts[0].Balance != 10000 {
			t.Errorf("expected balance 10000 after delete, got %d", accounts[0].Balance)
		}
	})
}

func TestGetAccountByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	households := NewHouseholdService(db)
	svc := NewAccountService(db, households)
	user := testutil.CreateTestUser(t, db)
	outsider := testutil.CreateTestUser(t, db)
	household := testutil.CreateTestHousehold(t, db)
	testutil.CreateTestMember(t, db, household.ID, user.ID, models.RoleOwner)
	account := testutil.CreateTestAccount(t, db, household.ID, 0)

	got, err := svc.GetAccountByID(user.ID, account.ID)
	testutil.AssertNoError(t, err)
	if got.ID != account.ID {
		t.Errorf("expected account %s, got %s", account.ID, got.ID)
	}

	// Membership is required; existence is hidden from outsiders.
	_, err = svc.GetAccountByID(outsider.ID, account.ID)
	testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")

	_, err = svc.GetAccountByID(user.ID, "no-such-account")
	testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
}
