package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"coinbudget/internal/models"
	"coinbudget/internal/money"
	"coinbudget/internal/monthkey"
	"coinbudget/internal/services"
)

// BudgetHandler handles monthly budget requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// AllocationRequest is one category allocation. Entries with a blank name or
// a non-positive amount are ignored.
type AllocationRequest struct {
	Name   string          `json:"name" binding:"max=100" example:"Groceries"`
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"100.00"`
}

// SaveBudgetRequest represents the request payload for saving a month's budget.
type SaveBudgetRequest struct {
	Month      string              `json:"month" binding:"required,month_key" example:"March 2026"`
	Total      decimal.Decimal     `json:"total" binding:"gte=0" swaggertype:"string" example:"800.00"`
	Categories []AllocationRequest `json:"categories" binding:"max=200,dive"`
}

// MonthQuery selects a month; empty means the current month.
type MonthQuery struct {
	Month string `form:"month" binding:"omitempty,month_key"`
}

// AllocationResponse is a saved category allocation.
type AllocationResponse struct {
	Name      string          `json:"name"`
	Allocated decimal.Decimal `json:"allocated" swaggertype:"string"`
}

// SaveBudgetResponse is returned after a successful save.
type SaveBudgetResponse struct {
	Success     bool                 `json:"success"`
	LedgerID    string               `json:"ledger_id"`
	MonthKey    string               `json:"month_key"`
	TotalBudget decimal.Decimal      `json:"total_budget" swaggertype:"string"`
	Categories  []AllocationResponse `json:"categories"`
}

// CategoryResponse is an allocation with its spending.
type CategoryResponse struct {
	Name      string          `json:"name"`
	Allocated decimal.Decimal `json:"allocated" swaggertype:"string"`
	Spent     decimal.Decimal `json:"spent" swaggertype:"string"`
}

// BudgetResponse is the point-in-time view of a month.
type BudgetResponse struct {
	LedgerID    string             `json:"ledger_id"`
	MonthKey    string             `json:"month_key"`
	TotalBudget decimal.Decimal    `json:"total_budget" swaggertype:"string"`
	TotalSpent  decimal.Decimal    `json:"total_spent" swaggertype:"string"`
	Categories  []CategoryResponse `json:"categories"`
	Unallocated []CategoryResponse `json:"unallocated"`
}

func newCategoryResponses(views []services.CategoryView) []CategoryResponse {
	out := make([]CategoryResponse, len(views))
	for i, v := range views {
		out[i] = CategoryResponse{
			Name:      v.Name,
			Allocated: money.FromCents(v.Allocated),
			Spent:     money.FromCents(v.Spent),
		}
	}
	return out
}

func newBudgetResponse(view *services.BudgetView) BudgetResponse {
	return BudgetResponse{
		LedgerID:    view.LedgerID,
		MonthKey:    view.MonthKey,
		TotalBudget: money.FromCents(view.BudgetTotal),
		TotalSpent:  money.FromCents(view.ExpenseTotal),
		Categories:  newCategoryResponses(view.Categories),
		Unallocated: newCategoryResponses(view.Unallocated),
	}
}

func newSaveBudgetResponse(ledger *models.MonthlyLedger) SaveBudgetResponse {
	resp := SaveBudgetResponse{
		Success:     true,
		LedgerID:    ledger.ID,
		MonthKey:    ledger.MonthKey,
		TotalBudget: money.FromCents(ledger.BudgetTotal),
		Categories:  make([]AllocationResponse, len(ledger.Categories)),
	}
	for i, a := range ledger.Categories {
		resp.Categories[i] = AllocationResponse{Name: a.Name, Allocated: money.FromCents(a.AllocatedAmount)}
	}
	return resp
}

// SaveBudget handles saving a month's budget and replacing its categories.
// @Summary     Save a monthly budget
// @Description Create or update the budget for a month, replacing its whole category set
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SaveBudgetRequest true "Budget details"
// @Success     200 {object} SaveBudgetResponse "Budget saved"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Transaction failed"
// @Router      /budgets [post]
func (h *BudgetHandler) SaveBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SaveBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	total, err := toCents("total", req.Total)
	if err != nil {
		respondWithError(c, err)
		return
	}

	input := services.SaveBudgetInput{
		Month:       req.Month,
		BudgetTotal: total,
		Categories:  make([]services.AllocationInput, 0, len(req.Categories)),
	}
	for _, a := range req.Categories {
		amount, err := toCents("category amount", a.Amount)
		if err != nil {
			respondWithError(c, err)
			return
		}
		input.Categories = append(input.Categories, services.AllocationInput{Name: a.Name, Amount: amount})
	}

	ledger, err := h.budgetService.SaveBudget(c.Request.Context(), userID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newSaveBudgetResponse(ledger))
}

// GetBudget handles loading a month's budget with per-category spending.
// @Summary     Load a monthly budget
// @Description Get the budget, categories and spending for a month
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month (e.g. March 2026, 2026-03, 2026-03-15); defaults to the current month"
// @Success     200 {object} BudgetResponse "Budget"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No budget for month"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, month, ok := h.monthRequest(c)
	if !ok {
		return
	}

	view, err := h.budgetService.LoadBudget(c.Request.Context(), userID, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "budget": newBudgetResponse(view)})
}

// DeleteBudget handles removing a month's budget and its expenses.
// @Summary     Delete a monthly budget
// @Description Delete the month's ledger together with its categories and expenses
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month; defaults to the current month"
// @Success     200 {object} map[string]interface{} "Budget deleted"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No budget for month"
// @Failure     500 {object} ErrorResponse "Transaction failed"
// @Router      /budgets [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	userID, month, ok := h.monthRequest(c)
	if !ok {
		return
	}

	if err := h.budgetService.DeleteBudget(c.Request.Context(), userID, month); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Budget deleted successfully"})
}

// ListBudgetMonths handles listing the months that have a saved budget.
// @Summary     List budget months
// @Description List month keys with a saved budget, newest first
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Month keys"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/months [get]
func (h *BudgetHandler) ListBudgetMonths(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	months, err := h.budgetService.ListBudgetMonths(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "months": months})
}

// monthRequest resolves the caller and the requested month, writing the
// error response itself when either is missing or malformed.
func (h *BudgetHandler) monthRequest(c *gin.Context) (string, string, bool) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return "", "", false
	}

	var q MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return "", "", false
	}
	if q.Month == "" {
		q.Month = monthkey.Format(time.Now())
	}
	return userID, q.Month, true
}
