package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "coinbudget/internal/errors"
	"coinbudget/internal/models"
	"coinbudget/internal/monthkey"
)

// reportService builds historical rollups over a user's ledgers.
type reportService struct {
	db        *gorm.DB
	maxMonths int
	now       func() time.Time
}

// NewReportService creates a new ReportServicer accepting windows of up to maxMonths.
func NewReportService(db *gorm.DB, maxMonths int) ReportServicer {
	return &reportService{db: db, maxMonths: maxMonths, now: time.Now}
}

// GetTrailingMonths returns exactly months entries ending with the current
// month, oldest first. Months without a ledger are zero-filled.
func (s *reportService) GetTrailingMonths(ctx context.Context, userID string, months int) ([]MonthRollup, error) {
	if months < 1 || months > s.maxMonths {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidWindow,
			fmt.Sprintf("months must be between 1 and %d", s.maxMonths))
	}

	keys := monthkey.Trailing(s.now(), months)
	first, last := monthkey.Format(keys[0]), monthkey.Format(keys[len(keys)-1])

	var ledgers []models.MonthlyLedger
	if err := s.db.WithContext(ctx).
		Select("month_key", "budget_total", "expense_total").
		Where("user_id = ? AND month_key BETWEEN ? AND ?", userID, first, last).
		Find(&ledgers).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	byKey := make(map[string]models.MonthlyLedger, len(ledgers))
	for _, l := range ledgers {
		byKey[l.MonthKey] = l
	}

	rollups := make([]MonthRollup, len(keys))
	for i, k := range keys {
		key := monthkey.Format(k)
		rollups[i] = MonthRollup{MonthKey: key}
		if l, ok := byKey[key]; ok {
			rollups[i].TotalBudget = l.BudgetTotal
			rollups[i].TotalSpent = l.ExpenseTotal
		}
	}
	return rollups, nil
}
