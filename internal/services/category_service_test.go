package services

import (
	"testing"

	"hearth/internal/models"
	"hearth/internal/testutil"
)

func TestGetHouseholdCategories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	households := NewHouseholdService(db)
	svc := NewCategoryService(db, households)
	user := testutil.CreateTestUser(t, db)

	household, err := households.CreateHousehold(user.ID, "Home", "Alex")
	testutil.AssertNoError(t, err)

	categories, err := svc.GetHouseholdCategories(user.ID, household.ID)
	testutil.AssertNoError(t, err)
	if len(categories) == 0 {
		t.Fatal("expected seeded default categories")
	}

	// Ordered by type, then name.
	for i := 1; i < len(categories); i++ {
		prev, cur := categories[i-1], categories[i]
		if prev.Type > cur.Type || (prev.Type == cur.Type && prev.Name > cur.Name) {
			t.Errorf("categories out of order: %s/%s before %s/%s", prev.Type, prev.Name, cur.Type, cur.Name)
		}
	}
}

func TestUpdateCategory(t *testing.T) {
	t.Run("updates_display_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		households := NewHouseholdService(db)
		svc := NewCategoryService(db, households)
		user := testutil.CreateTestUser(t, db)
		household := testutil.CreateTestHousehold(t, db)
		testutil.CreateTestMember(t, db, household.ID, user.ID, models.RoleOwner)
		category := testutil.CreateTestCategory(t, db, household.ID, models.CategoryTypeExpense)

		updated, err := svc.UpdateCategory(user.ID, category.ID, "Food & Drink", "utensils", "#ff0000")
		testutil.AssertNoError(t, err)
		if updated.Name != "Food & Drink" {
			t.Errorf("expected updated name, got %s", updated.Name)
		}
		if updated.Type != models.CategoryTypeExpense {
			t.Errorf("type must not change, got %s", updated.Type)
		}
	})

	t.Run("non_member_sees_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		households := NewHouseholdService(db)
		svc := NewCategoryService(db, households)
		outsider := testutil.CreateTestUser(t, db)
		household := testutil.CreateTestHousehold(t, db)
		category := testutil.CreateTestCategory(t, db, household.ID, models.CategoryTypeExpense)

		_, err := svc.UpdateCategory(outsider.ID, category.ID, "Hijacked", "", "")
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestDeleteCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	households := NewHouseholdService(db)
	svc := NewCategoryService(db, households)
	user := testutil.CreateTestUser(t, db)
	household := testutil.CreateTestHousehold(t, db)
	testutil.CreateTestMember(t, db, household.ID, user.ID, models.RoleOwner)
	category := testutil.CreateTestCategory(t, db, household.ID, models.CategoryTypeExpense)

	testutil.AssertNoError(t, svc.DeleteCategory(user.ID, category.ID))

	categories, err := svc.GetHouseholdCategories(user.ID, household.ID)
	testutil.AssertNoError(t, err)
	for _, c := range categories {
		if c.ID == category.ID {
			t.Error("deleted category still listed")
		}
	}
}
