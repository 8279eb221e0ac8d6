package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	apperrors "coinbudget/internal/errors"
	"coinbudget/internal/logger"
	"coinbudget/internal/models"
	"coinbudget/internal/monthkey"
)

// budgetService handles budget saves and point-in-time projections.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// SaveBudget upserts the month's ledger and replaces its whole category set
// in one transaction. The expense total of an existing ledger is untouched.
func (s *budgetService) SaveBudget(ctx context.Context, userID string, input SaveBudgetInput) (*models.MonthlyLedger, error) {
	key, err := normalizeMonth(input.Month)
	if err != nil {
		return nil, err
	}
	if input.BudgetTotal < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "budget total must not be negative")
	}

	allocations := validAllocations(input.Categories)

	var ledger models.MonthlyLedger
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := forUpdate(tx).Where("user_id = ? AND month_key = ?", userID, key).First(&ledger).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			ledger = models.MonthlyLedger{
				UserID:      userID,
				MonthKey:    key,
				BudgetTotal: input.BudgetTotal,
			}
			if err := tx.Create(&ledger).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(&ledger).Update("budget_total", input.BudgetTotal).Error; err != nil {
				return err
			}
			ledger.BudgetTotal = input.BudgetTotal
		}

		if err := tx.Where("ledger_id = ?", ledger.ID).Delete(&models.CategoryAllocation{}).Error; err != nil {
			return err
		}

		ledger.Categories = make([]models.CategoryAllocation, len(allocations))
		for i, a := range allocations {
			ledger.Categories[i] = models.CategoryAllocation{
				LedgerID:        ledger.ID,
				Name:            a.Name,
				AllocatedAmount: a.Amount,
				Position:        i,
			}
		}
		if len(ledger.Categories) == 0 {
			return nil
		}
		return tx.Create(&ledger.Categories).Error
	})
	if err != nil {
		logger.Get().Errorw("budget save failed", "user_id", userID, "month_key", key, "error", err)
		return nil, txError(err)
	}

	return &ledger, nil
}

// LoadBudget returns the month's ledger with per-category spending.
func (s *budgetService) LoadBudget(ctx context.Context, userID, month string) (*BudgetView, error) {
	key, err := normalizeMonth(month)
	if err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)

	var ledger models.MonthlyLedger
	if err := db.Where("user_id = ? AND month_key = ?", userID, key).First(&ledger).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrBudgetNotFound, fmt.Sprintf("no budget saved for %s", key))
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var allocations []models.CategoryAllocation
	if err := db.Where("ledger_id = ?", ledger.ID).Order("position ASC").Find(&allocations).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	spent, err := categorySpent(db, ledger.ID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	view := &BudgetView{
		LedgerID:     ledger.ID,
		MonthKey:     ledger.MonthKey,
		BudgetTotal:  ledger.BudgetTotal,
		ExpenseTotal: ledger.ExpenseTotal,
		Categories:   make([]CategoryView, 0, len(allocations)),
		Unallocated:  []CategoryView{},
	}
	allocated := make(map[string]bool, len(allocations))
	for _, a := range allocations {
		allocated[a.Name] = true
		view.Categories = append(view.Categories, CategoryView{
			Name:      a.Name,
			Allocated: a.AllocatedAmount,
			Spent:     spent[a.Name],
		})
	}
	for _, row := range spentRows(spent) {
		if !allocated[row.Name] {
			view.Unallocated = append(view.Unallocated, row)
		}
	}

	return view, nil
}

// DeleteBudget removes the month's ledger along with its allocations and entries.
func (s *budgetService) DeleteBudget(ctx context.Context, userID, month string) error {
	key, err := normalizeMonth(month)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ledger models.MonthlyLedger
		if err := forUpdate(tx).Where("user_id = ? AND month_key = ?", userID, key).First(&ledger).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.WithMessage(apperrors.ErrBudgetNotFound, fmt.Sprintf("no budget saved for %s", key))
			}
			return err
		}
		if err := tx.Where("ledger_id = ?", ledger.ID).Delete(&models.ExpenseEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("ledger_id = ?", ledger.ID).Delete(&models.CategoryAllocation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ledger).Error
	})
	if err != nil {
		return txError(err)
	}
	return nil
}

// ListBudgetMonths returns the month keys the user has saved, newest first.
func (s *budgetService) ListBudgetMonths(ctx context.Context, userID string) ([]string, error) {
	months := []string{}
	if err := s.db.WithContext(ctx).Model(&models.MonthlyLedger{}).
		Where("user_id = ?", userID).
		Order("month_key DESC").
		Pluck("month_key", &months).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return months, nil
}

func normalizeMonth(month string) (string, error) {
	key, err := monthkey.NormalizeString(month)
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidMonthFormat, fmt.Sprintf("unrecognized month %q", month))
	}
	return key, nil
}

// validAllocations trims names and drops blank or non-positive entries.
// A repeated name keeps its first position and takes the last amount.
func validAllocations(in []AllocationInput) []AllocationInput {
	out := make([]AllocationInput, 0, len(in))
	seen := make(map[string]int, len(in))
	for _, a := range in {
		name := strings.TrimSpace(a.Name)
		if name == "" || a.Amount <= 0 {
			continue
		}
		if i, ok := seen[name]; ok {
			out[i].Amount = a.Amount
			continue
		}
		seen[name] = len(out)
		out = append(out, AllocationInput{Name: name, Amount: a.Amount})
	}
	return out
}

type categorySum struct {
	CategoryName string
	Total        int64
}

// categorySpent sums a ledger's entries per category name.
func categorySpent(db *gorm.DB, ledgerID string) (map[string]int64, error) {
	var sums []categorySum
	if err := db.Model(&models.ExpenseEntry{}).
		Select("category_name, CAST(SUM(amount) AS BIGINT) AS total").
		Where("ledger_id = ?", ledgerID).
		Group("category_name").
		Scan(&sums).Error; err != nil {
		return nil, err
	}
	spent := make(map[string]int64, len(sums))
	for _, sum := range sums {
		spent[sum.CategoryName] = sum.Total
	}
	return spent, nil
}

func spentRows(spent map[string]int64) []CategoryView {
	rows := make([]CategoryView, 0, len(spent))
	for name, total := range spent {
		rows = append(rows, CategoryView{Name: name, Spent: total})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}
