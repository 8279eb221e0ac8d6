package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"coinbudget/internal/money"
	"coinbudget/internal/services"
)

// ReportHandler handles historical rollup requests.
type ReportHandler struct {
	reportService services.ReportServicer
	defaultMonths int
}

// NewReportHandler creates a new ReportHandler using defaultMonths when the
// request does not name a window.
func NewReportHandler(reportService services.ReportServicer, defaultMonths int) *ReportHandler {
	return &ReportHandler{reportService: reportService, defaultMonths: defaultMonths}
}

// TrailingQuery is the window length query.
type TrailingQuery struct {
	Months *int `form:"months"`
}

// MonthRollupResponse is one month of a trailing window.
type MonthRollupResponse struct {
	MonthKey    string          `json:"month_key"`
	TotalBudget decimal.Decimal `json:"total_budget" swaggertype:"string"`
	TotalSpent  decimal.Decimal `json:"total_spent" swaggertype:"string"`
}

// GetTrailingMonths handles the trailing N-month rollup.
// @Summary     Trailing months
// @Description Budget and spent totals for the last N months, oldest first; months without a budget are zero
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       months query int false "Window length (default 6)"
// @Success     200 {array}  MonthRollupResponse "Rollup"
// @Failure     400 {object} ErrorResponse "Invalid window"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/trailing [get]
func (h *ReportHandler) GetTrailingMonths(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q TrailingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	months := h.defaultMonths
	if q.Months != nil {
		months = *q.Months
	}

	rollups, err := h.reportService.GetTrailingMonths(c.Request.Context(), userID, months)
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := make([]MonthRollupResponse, len(rollups))
	for i, r := range rollups {
		resp[i] = MonthRollupResponse{
			MonthKey:    r.MonthKey,
			TotalBudget: money.FromCents(r.TotalBudget),
			TotalSpent:  money.FromCents(r.TotalSpent),
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "months": resp})
}
