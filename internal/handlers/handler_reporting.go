package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mandikhata/trade_ledger_app/internal/core/ports/services"
)

// reportingHandler handles HTTP requests for the dashboard stats surface.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// registerReportingRoutes registers reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	reports.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Get the dashboard summary
// @Description Recomputes total receivable, total payable and invoice settlement counts across all active parties
// @Tags reports
// @Produce json
// @Success 200 {object} domain.DashboardSummary
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	summary, err := h.reportingService.DashboardSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to build dashboard summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}
