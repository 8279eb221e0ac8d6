package models

import "time"

// MonthlyLedger is the per-user, per-month aggregate. ExpenseTotal caches the
// sum of the ledger's ExpenseEntry amounts and is only ever changed in the
// same transaction that appends an entry.
type MonthlyLedger struct {
	Base
	UserID       string `gorm:"type:varchar(36);not null;uniqueIndex:idx_ledger_user_month,priority:1" json:"user_id"`
	MonthKey     string `gorm:"type:varchar(10);not null;uniqueIndex:idx_ledger_user_month,priority:2" json:"month_key"`
	BudgetTotal  int64  `gorm:"type:bigint;not null;default:0" json:"budget_total"`
	ExpenseTotal int64  `gorm:"type:bigint;not null;default:0" json:"expense_total"`

	// Relationships
	Categories []CategoryAllocation `gorm:"foreignKey:LedgerID;constraint:OnDelete:CASCADE" json:"categories,omitempty"`
	Expenses   []ExpenseEntry       `gorm:"foreignKey:LedgerID;constraint:OnDelete:CASCADE" json:"expenses,omitempty"`
}

// CategoryAllocation is a budgeted amount for one named category of a ledger.
// The whole set is replaced on every budget save.
type CategoryAllocation struct {
	Base
	LedgerID        string `gorm:"type:varchar(36);not null;uniqueIndex:idx_allocation_ledger_name,priority:1" json:"ledger_id"`
	Name            string `gorm:"not null;uniqueIndex:idx_allocation_ledger_name,priority:2" json:"name"`
	AllocatedAmount int64  `gorm:"type:bigint;not null" json:"allocated_amount"`
	Position        int    `gorm:"not null;default:0" json:"position"`
}

// ExpenseEntry is one append-only expense. CategoryName matches allocations
// by string equality, not by foreign key.
type ExpenseEntry struct {
	Base
	LedgerID     string     `gorm:"type:varchar(36);not null;index:idx_expense_ledger_category,priority:1" json:"ledger_id"`
	UserID       string     `gorm:"type:varchar(36);not null;index" json:"user_id"`
	CategoryName string     `gorm:"not null;index:idx_expense_ledger_category,priority:2" json:"category_name"`
	Amount       int64      `gorm:"type:bigint;not null" json:"amount"`
	SpentOn      *time.Time `json:"spent_on,omitempty"`
}
