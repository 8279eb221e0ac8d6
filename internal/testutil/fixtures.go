package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"coinbudget/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique login name.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithLogin(t, db, fmt.Sprintf("user%d", nextID()))
}

// CreateTestUserWithLogin creates a user with the given login name.
func CreateTestUserWithLogin(t *testing.T, db *gorm.DB, loginName string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		DisplayName: "Test " + loginName,
		LoginName:   loginName,
		Password:    string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestLedger creates a ledger for the month key (YYYY-MM-01) with the
// given budget total in cents and no expenses.
func CreateTestLedger(t *testing.T, db *gorm.DB, userID, monthKey string, budgetTotal int64) *models.MonthlyLedger {
	t.Helper()

	ledger := &models.MonthlyLedger{
		UserID:      userID,
		MonthKey:    monthKey,
		BudgetTotal: budgetTotal,
	}
	if err := db.Create(ledger).Error; err != nil {
		t.Fatalf("failed to create test ledger: %v", err)
	}
	return ledger
}

// CreateTestAllocation adds a category allocation (in cents) to a ledger.
func CreateTestAllocation(t *testing.T, db *gorm.DB, ledgerID, name string, amount int64) *models.CategoryAllocation {
	t.Helper()

	alloc := &models.CategoryAllocation{
		LedgerID:        ledgerID,
		Name:            name,
		AllocatedAmount: amount,
	}
	if err := db.Create(alloc).Error; err != nil {
		t.Fatalf("failed to create test allocation: %v", err)
	}
	return alloc
}

// CreateTestExpense appends an expense and bumps the ledger's cached total,
// keeping the aggregate consistent with the entries.
func CreateTestExpense(t *testing.T, db *gorm.DB, ledger *models.MonthlyLedger, category string, amount int64) *models.ExpenseEntry {
	t.Helper()

	entry := &models.ExpenseEntry{
		LedgerID:     ledger.ID,
		UserID:       ledger.UserID,
		CategoryName: category,
		Amount:       amount,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return tx.Model(&models.MonthlyLedger{}).
			Where("id = ?", ledger.ID).
			UpdateColumn("expense_total", gorm.Expr("expense_total + ?", amount)).Error
	})
	if err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	ledger.ExpenseTotal += amount
	return entry
}
