package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "coinbudget/internal/errors"
	"coinbudget/internal/logger"
	"coinbudget/internal/models"
	"coinbudget/internal/pagination"
)

// expenseService appends expenses and keeps the ledger aggregate in step.
type expenseService struct {
	db               *gorm.DB
	strictCategories bool
}

// NewExpenseService creates a new ExpenseServicer. With strictCategories set,
// expenses may only name categories allocated in the ledger's current budget.
func NewExpenseService(db *gorm.DB, strictCategories bool) ExpenseServicer {
	return &expenseService{db: db, strictCategories: strictCategories}
}

// AddExpense appends an entry and increments the ledger's expense total in the
// same transaction, holding the ledger row lock for its duration.
func (s *expenseService) AddExpense(ctx context.Context, userID string, input AddExpenseInput) (*ExpenseResult, error) {
	if input.Amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "amount must be greater than zero")
	}
	category := strings.TrimSpace(input.CategoryName)
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}

	var result ExpenseResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ledger, err := ownedLedger(forUpdate(tx), userID, input.LedgerID)
		if err != nil {
			return err
		}

		if s.strictCategories {
			var allocated int64
			if err := tx.Model(&models.CategoryAllocation{}).
				Where("ledger_id = ? AND name = ?", ledger.ID, category).
				Count(&allocated).Error; err != nil {
				return err
			}
			if allocated == 0 {
				return apperrors.WithMessage(apperrors.ErrUnknownCategory,
					fmt.Sprintf("category %q is not allocated in the %s budget", category, ledger.MonthKey))
			}
		}

		entry := &models.ExpenseEntry{
			LedgerID:     ledger.ID,
			UserID:       userID,
			CategoryName: category,
			Amount:       input.Amount,
			SpentOn:      input.SpentOn,
		}
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		res := tx.Model(&models.MonthlyLedger{}).
			Where("id = ?", ledger.ID).
			UpdateColumn("expense_total", gorm.Expr("expense_total + ?", entry.Amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return fmt.Errorf("expense total increment affected %d rows", res.RowsAffected)
		}

		var totals models.MonthlyLedger
		if err := tx.Select("expense_total").Where("id = ?", ledger.ID).First(&totals).Error; err != nil {
			return err
		}

		var categoryTotal int64
		if err := tx.Model(&models.ExpenseEntry{}).
			Select("CAST(COALESCE(SUM(amount), 0) AS BIGINT)").
			Where("ledger_id = ? AND category_name = ?", ledger.ID, category).
			Scan(&categoryTotal).Error; err != nil {
			return err
		}

		result = ExpenseResult{
			Entry:         entry,
			CategoryTotal: categoryTotal,
			ExpenseTotal:  totals.ExpenseTotal,
		}
		return nil
	})
	if err != nil {
		logger.Get().Warnw("expense append rejected", "user_id", userID, "ledger_id", input.LedgerID, "error", err)
		return nil, txError(err)
	}

	return &result, nil
}

// GetLedgerExpenses returns a paginated list of the ledger's entries, newest first.
func (s *expenseService) GetLedgerExpenses(ctx context.Context, userID, ledgerID string, page pagination.PageRequest) (*pagination.PageResponse[models.ExpenseEntry], error) {
	db := s.db.WithContext(ctx)

	if _, err := ownedLedger(db, userID, ledgerID); err != nil {
		return nil, readError(err)
	}

	page.Defaults()

	base := db.Model(&models.ExpenseEntry{}).Where("ledger_id = ?", ledgerID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var entries []models.ExpenseEntry
	if err := base.Order("created_at DESC, id DESC").Scopes(pagination.Paginate(page)).Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(entries, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetMonthSummary returns the ledger's budget and expense totals.
func (s *expenseService) GetMonthSummary(ctx context.Context, userID, ledgerID string) (*MonthSummary, error) {
	ledger, err := ownedLedger(s.db.WithContext(ctx), userID, ledgerID)
	if err != nil {
		return nil, readError(err)
	}

	return &MonthSummary{
		LedgerID:     ledger.ID,
		MonthKey:     ledger.MonthKey,
		BudgetTotal:  ledger.BudgetTotal,
		ExpenseTotal: ledger.ExpenseTotal,
	}, nil
}
