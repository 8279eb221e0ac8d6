package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "coinbudget/internal/errors"
	"coinbudget/internal/models"
	"coinbudget/internal/money"
	"coinbudget/internal/pagination"
	"coinbudget/internal/services"
)

const spentOnLayout = "2006-01-02"

// ExpenseHandler handles expense ledger requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// AddExpenseRequest represents the request payload for logging an expense.
type AddExpenseRequest struct {
	Category string          `json:"category" binding:"required,max=100" example:"Groceries"`
	Amount   decimal.Decimal `json:"amount" binding:"gt=0" swaggertype:"string" example:"45.50"`
	Date     string          `json:"date" binding:"omitempty,datetime=2006-01-02" example:"2026-03-09"`
}

// ExpenseResponse is one stored expense.
type ExpenseResponse struct {
	ID        string          `json:"id"`
	LedgerID  string          `json:"ledger_id"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string"`
	Date      *string         `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
}

// AddExpenseResponse is returned after an expense is appended.
type AddExpenseResponse struct {
	Success          bool            `json:"success"`
	Expense          ExpenseResponse `json:"expense"`
	NewCategoryTotal decimal.Decimal `json:"new_category_total" swaggertype:"string"`
	TotalSpent       decimal.Decimal `json:"total_spent" swaggertype:"string"`
}

// SummaryResponse is a ledger's budget and spent totals.
type SummaryResponse struct {
	LedgerID    string          `json:"ledger_id"`
	MonthKey    string          `json:"month_key"`
	TotalBudget decimal.Decimal `json:"total_budget" swaggertype:"string"`
	TotalSpent  decimal.Decimal `json:"total_spent" swaggertype:"string"`
}

func newExpenseResponse(entry models.ExpenseEntry) ExpenseResponse {
	resp := ExpenseResponse{
		ID:        entry.ID,
		LedgerID:  entry.LedgerID,
		Category:  entry.CategoryName,
		Amount:    money.FromCents(entry.Amount),
		CreatedAt: entry.CreatedAt,
	}
	if entry.SpentOn != nil {
		d := entry.SpentOn.Format(spentOnLayout)
		resp.Date = &d
	}
	return resp
}

// AddExpense handles appending an expense to a ledger.
// @Summary     Add an expense
// @Description Append an expense to a ledger and return the new category total
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Ledger ID"
// @Param       request body AddExpenseRequest true "Expense details"
// @Success     201 {object} AddExpenseResponse "Expense added"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Ledger not owned by caller"
// @Failure     500 {object} ErrorResponse "Transaction failed"
// @Router      /ledgers/{id}/expenses [post]
func (h *ExpenseHandler) AddExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	ledgerID, err := parseLedgerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	amount, err := toCents("amount", req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	input := services.AddExpenseInput{
		LedgerID:     ledgerID,
		CategoryName: strings.TrimSpace(req.Category),
		Amount:       amount,
	}
	if req.Date != "" {
		spentOn, err := time.Parse(spentOnLayout, req.Date)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be YYYY-MM-DD"))
			return
		}
		input.SpentOn = &spentOn
	}

	result, err := h.expenseService.AddExpense(c.Request.Context(), userID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, AddExpenseResponse{
		Success:          true,
		Expense:          newExpenseResponse(*result.Entry),
		NewCategoryTotal: money.FromCents(result.CategoryTotal),
		TotalSpent:       money.FromCents(result.ExpenseTotal),
	})
}

// GetLedgerExpenses handles listing a ledger's expenses.
// @Summary     List ledger expenses
// @Description Get a paginated list of a ledger's expenses, newest first
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  string true  "Ledger ID"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[ExpenseResponse] "Paginated expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Ledger not owned by caller"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /ledgers/{id}/expenses [get]
func (h *ExpenseHandler) GetLedgerExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	ledgerID, err := parseLedgerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.expenseService.GetLedgerExpenses(c.Request.Context(), userID, ledgerID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "expenses": pagination.Map(*result, newExpenseResponse)})
}

// GetMonthSummary handles fetching a ledger's totals.
// @Summary     Ledger summary
// @Description Get the budget and spent totals of a ledger
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Ledger ID"
// @Success     200 {object} SummaryResponse "Totals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Ledger not owned by caller"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /ledgers/{id}/summary [get]
func (h *ExpenseHandler) GetMonthSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	ledgerID, err := parseLedgerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.expenseService.GetMonthSummary(c.Request.Context(), userID, ledgerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "summary": SummaryResponse{
		LedgerID:    summary.LedgerID,
		MonthKey:    summary.MonthKey,
		TotalBudget: money.FromCents(summary.BudgetTotal),
		TotalSpent:  money.FromCents(summary.ExpenseTotal),
	}})
}
