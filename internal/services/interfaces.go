package services

import (
	"context"
	"time"

	"coinbudget/internal/models"
	"coinbudget/internal/pagination"
)

// UserServicer defines the contract for the identity collaborator.
type UserServicer interface {
	CreateUser(ctx context.Context, displayName, loginName, password string) (*models.User, error)
	Authenticate(ctx context.Context, loginName, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// AllocationInput is one submitted category allocation, amount in cents.
type AllocationInput struct {
	Name   string
	Amount int64
}

// SaveBudgetInput is a full budget submission for one month. Month may be in
// any form accepted by monthkey.Normalize.
type SaveBudgetInput struct {
	Month       string
	BudgetTotal int64
	Categories  []AllocationInput
}

// CategoryView is an allocation with its spent amount summed at read time.
type CategoryView struct {
	Name      string `json:"name"`
	Allocated int64  `json:"allocated"`
	Spent     int64  `json:"spent"`
}

// BudgetView is the point-in-time projection of one month's ledger.
// Unallocated lists spending on category names outside the allocation set.
type BudgetView struct {
	LedgerID     string         `json:"ledger_id"`
	MonthKey     string         `json:"month_key"`
	BudgetTotal  int64          `json:"budget_total"`
	ExpenseTotal int64          `json:"expense_total"`
	Categories   []CategoryView `json:"categories"`
	Unallocated  []CategoryView `json:"unallocated"`
}

// BudgetServicer defines the contract for budget saves and month projections.
type BudgetServicer interface {
	SaveBudget(ctx context.Context, userID string, input SaveBudgetInput) (*models.MonthlyLedger, error)
	LoadBudget(ctx context.Context, userID, month string) (*BudgetView, error)
	DeleteBudget(ctx context.Context, userID, month string) error
	ListBudgetMonths(ctx context.Context, userID string) ([]string, error)
}

// AddExpenseInput is one expense to append, amount in cents.
type AddExpenseInput struct {
	LedgerID     string
	CategoryName string
	Amount       int64
	SpentOn      *time.Time
}

// ExpenseResult carries the stored entry and the totals after the append.
type ExpenseResult struct {
	Entry         *models.ExpenseEntry
	CategoryTotal int64
	ExpenseTotal  int64
}

// MonthSummary is the ledger's cached budget and expense totals.
type MonthSummary struct {
	LedgerID     string `json:"ledger_id"`
	MonthKey     string `json:"month_key"`
	BudgetTotal  int64  `json:"budget_total"`
	ExpenseTotal int64  `json:"expense_total"`
}

// ExpenseServicer defines the contract for the append-only expense ledger.
type ExpenseServicer interface {
	AddExpense(ctx context.Context, userID string, input AddExpenseInput) (*ExpenseResult, error)
	GetLedgerExpenses(ctx context.Context, userID, ledgerID string, page pagination.PageRequest) (*pagination.PageResponse[models.ExpenseEntry], error)
	GetMonthSummary(ctx context.Context, userID, ledgerID string) (*MonthSummary, error)
}

// MonthRollup is one month of a trailing window.
type MonthRollup struct {
	MonthKey    string `json:"month_key"`
	TotalBudget int64  `json:"total_budget"`
	TotalSpent  int64  `json:"total_spent"`
}

// ReportServicer defines the contract for historical rollups.
type ReportServicer interface {
	GetTrailingMonths(ctx context.Context, userID string, months int) ([]MonthRollup, error)
}
