package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bizledger/backoffice/internal/core/ports/services"
	"github.com/bizledger/backoffice/internal/dto"
	"github.com/bizledger/backoffice/internal/middleware"
)

// reportingHandler handles HTTP requests for derived balances and KPIs.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := newReportingHandler(reportingService)

	rg.GET("/balances", h.getBalances)
	rg.GET("/overview", h.getOverview)
}

// getBalances godoc
// @Summary Account balances by category
// @Description Returns per-account debit/credit totals and balances, grouped into the five category buckets
// @Tags reporting
// @Produce json
// @Success 200 {object} dto.BalancesResponse
// @Failure 504 {object} map[string]string "Operation timed out"
// @Failure 500 {object} map[string]string "Failed to compute balances"
// @Router /balances [get]
func (h *reportingHandler) getBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.AccountBalances(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute balances")
		return
	}

	c.JSON(http.StatusOK, dto.ToBalancesResponse(report))
}

// getOverview godoc
// @Summary Financial overview
// @Description Returns one summary figure per category plus net income
// @Tags reporting
// @Produce json
// @Success 200 {object} dto.OverviewResponse
// @Failure 504 {object} map[string]string "Operation timed out"
// @Failure 500 {object} map[string]string "Failed to compute overview"
// @Router /overview [get]
func (h *reportingHandler) getOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	overview, err := h.reportingService.Overview(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute overview")
		return
	}

	c.JSON(http.StatusOK, dto.ToOverviewResponse(overview))
}
