package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	apperrors "coinbudget/internal/errors"
	"coinbudget/internal/middleware"
	"coinbudget/internal/money"
	"coinbudget/internal/uuid"
)

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}

// parseLedgerID reads the :id path parameter as a canonical UUID.
func parseLedgerID(c *gin.Context) (string, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid ledger id")
	}
	return id, nil
}

// bindError maps a binding failure to the matching validation error.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch {
			case fe.Tag() == "month_key":
				return apperrors.WithMessage(apperrors.ErrInvalidMonthFormat, fmt.Sprintf("unrecognized month %q", fe.Value()))
			case fe.Tag() == "gt" || fe.Tag() == "gte":
				return apperrors.WithMessage(apperrors.ErrInvalidAmount, fmt.Sprintf("%s is out of range", strings.ToLower(fe.Field())))
			}
		}
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// toCents converts a wire amount, rejecting sub-cent precision.
func toCents(field string, d decimal.Decimal) (int64, error) {
	cents, err := money.ToCents(d)
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidAmount, field+" must have at most two decimal places")
	}
	return cents, nil
}

// respondWithError writes the shared JSON error body.
func respondWithError(c *gin.Context, err error) {
	middleware.WriteError(c, err)
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message"`
	Kind    string `json:"kind" example:"ValidationError"`
	Code    string `json:"code" example:"INVALID_INPUT"`
}
