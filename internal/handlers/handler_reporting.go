package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/simcard_ledger/internal/core/ports/services"
	"github.com/SscSPs/simcard_ledger/internal/dto"
	"github.com/SscSPs/simcard_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/summary", h.getSummary)
		reportingGroup.GET("/monthly", h.getMonthly)
		reportingGroup.GET("/by-operator", h.getByOperator)
	}
}

// bindPeriod reads the optional from/to query bounds.
func bindPeriod(c *gin.Context) (dto.ReportPeriodParams, bool) {
	var params dto.ReportPeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid report query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return params, false
	}
	return params, true
}

// getSummary godoc
// @Summary Finance summary
// @Description Totals income and outcome over the whole ledger
// @Tags reports
// @Produce json
// @Success 200 {object} domain.FinanceSummary
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	summary, err := h.reportingService.FinanceSummary(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to generate finance summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getMonthly godoc
// @Summary Monthly report
// @Description Income, expense and balance per month, ordered by month
// @Tags reports
// @Produce json
// @Param from query string false "Lower bound (YYYY-MM-DD or YYYY-MM-DD HH:MM:SS)"
// @Param to query string false "Upper bound (YYYY-MM-DD or YYYY-MM-DD HH:MM:SS)"
// @Success 200 {object} dto.MonthlyReportResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthly(c *gin.Context) {
	params, ok := bindPeriod(c)
	if !ok {
		return
	}

	rows, err := h.reportingService.MonthlyReport(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to generate monthly report")
		return
	}
	c.JSON(http.StatusOK, dto.MonthlyReportResponse{From: params.From, To: params.To, Rows: rows})
}

// getByOperator godoc
// @Summary Per-operator report
// @Description Income and expense of SIM-linked transactions per carrier
// @Tags reports
// @Produce json
// @Param from query string false "Lower bound (YYYY-MM-DD or YYYY-MM-DD HH:MM:SS)"
// @Param to query string false "Upper bound (YYYY-MM-DD or YYYY-MM-DD HH:MM:SS)"
// @Success 200 {object} dto.OperatorReportResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Router /reports/by-operator [get]
func (h *reportingHandler) getByOperator(c *gin.Context) {
	params, ok := bindPeriod(c)
	if !ok {
		return
	}

	rows, err := h.reportingService.ByOperatorReport(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to generate operator report")
		return
	}
	c.JSON(http.StatusOK, dto.OperatorReportResponse{From: params.From, To: params.To, Rows: rows})
}
