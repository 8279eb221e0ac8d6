package testutil_test

import (
	"testing"

	"coinbudget/internal/errors"
	"coinbudget/internal/models"
	"coinbudget/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	for _, table := range []string{"users", "monthly_ledgers", "category_allocations", "expense_entries"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDB_Isolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	testutil.CreateTestUser(t, first)

	var count int64
	if err := second.Model(&models.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected isolated database, found %d users", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == "" {
		t.Fatal("user should have an ID")
	}

	ledger := testutil.CreateTestLedger(t, db, user.ID, "2026-03-01", 80000)
	if ledger.BudgetTotal != 80000 {
		t.Errorf("expected budget 80000, got %d", ledger.BudgetTotal)
	}

	alloc := testutil.CreateTestAllocation(t, db, ledger.ID, "Rent", 70000)
	if alloc.LedgerID != ledger.ID {
		t.Errorf("expected allocation on ledger %s, got %s", ledger.ID, alloc.LedgerID)
	}

	testutil.CreateTestExpense(t, db, ledger, "Rent", 1500)
	testutil.CreateTestExpense(t, db, ledger, "Rent", 500)

	var stored models.MonthlyLedger
	if err := db.First(&stored, "id = ?", ledger.ID).Error; err != nil {
		t.Fatalf("failed to reload ledger: %v", err)
	}
	if stored.ExpenseTotal != 2000 || ledger.ExpenseTotal != 2000 {
		t.Errorf("expected expense total 2000, got stored=%d local=%d", stored.ExpenseTotal, ledger.ExpenseTotal)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrBudgetNotFound, "custom message")
	testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	testutil.AssertAppErrorKind(t, err, errors.KindNotFound)
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
