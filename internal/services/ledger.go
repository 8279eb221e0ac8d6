package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "coinbudget/internal/errors"
	"coinbudget/internal/models"
)

// forUpdate locks the selected ledger rows until the transaction ends.
// SQLite has no row locks; its single writer serializes transactions instead.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// txError maps an error returned from db.Transaction. AppErrors raised inside
// the callback pass through; anything else is a storage failure.
func txError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.Wrap(apperrors.ErrTransactionFailed, err)
}

// ownedLedger loads a ledger by id scoped to its owner. A missing ledger and
// one owned by someone else are indistinguishable to the caller.
func ownedLedger(db *gorm.DB, userID, ledgerID string) (*models.MonthlyLedger, error) {
	var ledger models.MonthlyLedger
	if err := db.Where("id = ? AND user_id = ?", ledgerID, userID).First(&ledger).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLedgerForbidden
		}
		return nil, err
	}
	return &ledger, nil
}

// readError maps a failed read outside a transaction.
func readError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
