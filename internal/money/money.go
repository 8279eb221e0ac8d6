// Package money converts between decimal amounts used on the wire and the
// integer cents stored in the ledger. Cents keep the aggregate exact under
// incremental SQL updates.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned for amounts that cannot be represented in cents.
var ErrInvalidAmount = errors.New("amount must have at most two decimal places")

var maxCents = decimal.NewFromInt(1 << 53)

// ToCents converts d to integer cents. Values with more than two decimal
// places or outside the storable range are rejected.
func ToCents(d decimal.Decimal) (int64, error) {
	if !d.Equal(d.Round(2)) {
		return 0, ErrInvalidAmount
	}
	cents := d.Shift(2)
	if cents.Abs().GreaterThan(maxCents) {
		return 0, ErrInvalidAmount
	}
	return cents.IntPart(), nil
}

// FromCents converts integer cents back to a decimal amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
