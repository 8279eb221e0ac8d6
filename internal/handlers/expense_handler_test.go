package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "coinbudget/internal/errors"
	"coinbudget/internal/models"
	"coinbudget/internal/pagination"
	"coinbudget/internal/services"
)

// --- mock expense service ---

type mockExpenseService struct {
	addExpenseFn        func(ctx context.Context, userID string, input services.AddExpenseInput) (*services.ExpenseResult, error)
	getLedgerExpensesFn func(ctx context.Context, userID, ledgerID string, page pagination.PageRequest) (*pagination.PageResponse[models.ExpenseEntry], error)
	getMonthSummaryFn   func(ctx context.Context, userID, ledgerID string) (*services.MonthSummary, error)
}

func (m *mockExpenseService) AddExpense(ctx context.Context, userID string, input services.AddExpenseInput) (*services.ExpenseResult, error) {
	if m.addExpenseFn != nil {
		return m.addExpenseFn(ctx, userID, input)
	}
	return &services.ExpenseResult{Entry: &models.ExpenseEntry{}}, nil
}

func (m *mockExpenseService) GetLedgerExpenses(ctx context.Context, userID, ledgerID string, page pagination.PageRequest) (*pagination.PageResponse[models.ExpenseEntry], error) {
	if m.getLedgerExpensesFn != nil {
		return m.getLedgerExpensesFn(ctx, userID, ledgerID, page)
	}
	resp := pagination.NewPageResponse([]models.ExpenseEntry{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockExpenseService) GetMonthSummary(ctx context.Context, userID, ledgerID string) (*services.MonthSummary, error) {
	if m.getMonthSummaryFn != nil {
		return m.getMonthSummaryFn(ctx, userID, ledgerID)
	}
	return &services.MonthSummary{}, nil
}

var _ services.ExpenseServicer = (*mockExpenseService)(nil)

func setupExpenseRouter(handler *ExpenseHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/ledgers/:id/expenses", handler.AddExpense)
	auth.GET("/ledgers/:id/expenses", handler.GetLedgerExpenses)
	auth.GET("/ledgers/:id/summary", handler.GetMonthSummary)
	return r
}

func TestExpenseHandler_AddExpense(t *testing.T) {
	t.Run("returns 201 with new category total", func(t *testing.T) {
		var got services.AddExpenseInput
		svc := &mockExpenseService{
			addExpenseFn: func(_ context.Context, userID string, input services.AddExpenseInput) (*services.ExpenseResult, error) {
				if userID != testUserID {
					t.Errorf("expected user %s, got %s", testUserID, userID)
				}
				got = input
				return &services.ExpenseResult{
					Entry: &models.ExpenseEntry{
						Base:         models.Base{ID: "0190a2b4-0000-7000-8000-0000000000cc"},
						LedgerID:     input.LedgerID,
						CategoryName: input.CategoryName,
						Amount:       input.Amount,
						SpentOn:      input.SpentOn,
					},
					CategoryTotal: 4550,
					ExpenseTotal:  74550,
				}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "POST", "/ledgers/"+testLedgerID+"/expenses",
			`{"category":" Groceries ","amount":"45.50","date":"2026-03-09"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.LedgerID != testLedgerID || got.CategoryName != "Groceries" || got.Amount != 4550 {
			t.Errorf("unexpected input %+v", got)
		}
		if got.SpentOn == nil || !got.SpentOn.Equal(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected spent_on 2026-03-09, got %v", got.SpentOn)
		}

		result := parseJSON(t, rec)
		if result["new_category_total"] != "45.5" || result["total_spent"] != "745.5" {
			t.Errorf("unexpected totals %v", result)
		}
		expense := result["expense"].(map[string]interface{})
		if expense["amount"] != "45.5" || expense["date"] != "2026-03-09" {
			t.Errorf("unexpected expense %v", expense)
		}
	})

	t.Run("returns 400 on invalid ledger id", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, "POST", "/ledgers/42/expenses", `{"category":"Food","amount":1}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on non-positive amount", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		for _, body := range []string{`{"category":"Food","amount":0}`, `{"category":"Food","amount":"-3"}`, `{"category":"Food"}`} {
			rec := doRequest(r, "POST", "/ledgers/"+testLedgerID+"/expenses", body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 for %s, got %d", body, rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_AMOUNT")
		}
	})

	t.Run("returns 400 on bad date", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, "POST", "/ledgers/"+testLedgerID+"/expenses", `{"category":"Food","amount":1,"date":"09/03/2026"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 403 for a ledger the caller does not own", func(t *testing.T) {
		svc := &mockExpenseService{
			addExpenseFn: func(context.Context, string, services.AddExpenseInput) (*services.ExpenseResult, error) {
				return nil, apperrors.ErrLedgerForbidden
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "POST", "/ledgers/"+testLedgerID+"/expenses", `{"category":"Food","amount":1}`)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "LEDGER_FORBIDDEN")
		if result["kind"] != "AuthorizationError" {
			t.Errorf("expected AuthorizationError kind, got %v", result["kind"])
		}
	})
}

func TestExpenseHandler_GetLedgerExpenses(t *testing.T) {
	t.Run("returns paginated expenses", func(t *testing.T) {
		svc := &mockExpenseService{
			getLedgerExpensesFn: func(_ context.Context, _ string, ledgerID string, page pagination.PageRequest) (*pagination.PageResponse[models.ExpenseEntry], error) {
				if page.Page != 2 || page.PageSize != 1 {
					t.Errorf("expected page 2 size 1, got %+v", page)
				}
				resp := pagination.NewPageResponse([]models.ExpenseEntry{
					{LedgerID: ledgerID, CategoryName: "Rent", Amount: 70000},
				}, 2, 1, 2)
				return &resp, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "GET", "/ledgers/"+testLedgerID+"/expenses?page=2&page_size=1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		expenses := parseJSON(t, rec)["expenses"].(map[string]interface{})
		if expenses["total_items"].(float64) != 2 {
			t.Errorf("expected 2 total items, got %v", expenses["total_items"])
		}
		data := expenses["data"].([]interface{})
		if len(data) != 1 || data[0].(map[string]interface{})["amount"] != "700" {
			t.Errorf("unexpected data %v", data)
		}
	})

	t.Run("returns 400 on oversized page", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, "GET", "/ledgers/"+testLedgerID+"/expenses?page_size=1000", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestExpenseHandler_GetMonthSummary(t *testing.T) {
	t.Run("returns totals", func(t *testing.T) {
		svc := &mockExpenseService{
			getMonthSummaryFn: func(_ context.Context, _ string, ledgerID string) (*services.MonthSummary, error) {
				return &services.MonthSummary{LedgerID: ledgerID, MonthKey: "2026-03-01", BudgetTotal: 80000, ExpenseTotal: 74550}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "GET", "/ledgers/"+testLedgerID+"/summary", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		summary := parseJSON(t, rec)["summary"].(map[string]interface{})
		if summary["total_budget"] != "800" || summary["total_spent"] != "745.5" {
			t.Errorf("unexpected summary %v", summary)
		}
	})

	t.Run("returns 403 for foreign ledger", func(t *testing.T) {
		svc := &mockExpenseService{
			getMonthSummaryFn: func(context.Context, string, string) (*services.MonthSummary, error) {
				return nil, apperrors.ErrLedgerForbidden
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "GET", "/ledgers/"+testLedgerID+"/summary", "")

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "LEDGER_FORBIDDEN")
	})
}
