package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/mandikhata/trade_ledger_app/internal/core/ledger"
	portssvc "github.com/mandikhata/trade_ledger_app/internal/core/ports/services"
	"github.com/mandikhata/trade_ledger_app/internal/dto"
	"github.com/mandikhata/trade_ledger_app/internal/middleware"
)

// statementHandler handles HTTP requests for statement previews and their
// persisted snapshots.
type statementHandler struct {
	statementService portssvc.StatementSvcFacade
}

// registerStatementRoutes registers the statement preview and snapshot
// routes. Previews recompute from the live streams; snapshots are frozen
// rows managed explicitly.
func registerStatementRoutes(rg *gin.RouterGroup, statementService portssvc.StatementSvcFacade) {
	h := &statementHandler{statementService: statementService}

	parties := rg.Group("/parties/:partyID/statements")
	{
		parties.GET("/period", h.previewPeriodStatement)
		parties.POST("/period", h.savePeriodStatement)
		parties.GET("/period/saved", h.listPeriodStatements)
	}

	vendors := rg.Group("/vendors/:vendorID/statements")
	{
		vendors.GET("/yield", h.previewVendorStatement)
		vendors.POST("/yield", h.saveVendorStatement)
		vendors.GET("/yield/saved", h.listVendorStatements)
	}

	statements := rg.Group("/statements")
	{
		statements.GET("/period/:statementID", h.getPeriodStatement)
		statements.PUT("/period/:statementID", h.updatePeriodStatement)
		statements.DELETE("/period/:statementID", h.deletePeriodStatement)
		statements.GET("/yield/:statementID", h.getVendorStatement)
		statements.PUT("/yield/:statementID", h.updateVendorStatement)
		statements.DELETE("/yield/:statementID", h.deleteVendorStatement)
	}
}

// decimalQuery parses an optional decimal query parameter, defaulting to
// zero when absent.
func decimalQuery(c *gin.Context, name string) (decimal.Decimal, error) {
	raw := c.Query(name)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: expected a decimal number", name)
	}
	return d, nil
}

// boolQuery parses an optional boolean query parameter.
func boolQuery(c *gin.Context, name string, defaultValue bool) (bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: expected a boolean", name)
	}
	return b, nil
}

// previewPeriodStatement godoc
// @Summary Preview a period statement
// @Description Recomputes a customer period statement over the inclusive date range without persisting anything
// @Tags statements
// @Produce json
// @Param partyID path string true "Party ID"
// @Param fromDate query string true "Range start (YYYY-MM-DD)"
// @Param toDate query string true "Range end (YYYY-MM-DD)"
// @Param discount query string false "Manual statement-level discount"
// @Param otherCharges query string false "Manual statement-level charges"
// @Param includePayments query bool false "Include payments in the day rows (default true)"
// @Success 200 {object} ledger.StatementResult
// @Failure 400 {object} ErrorResponse "Invalid range or parameters"
// @Failure 404 {object} ErrorResponse "Party not found"
// @Security BearerAuth
// @Router /parties/{partyID}/statements/period [get]
func (h *statementHandler) previewPeriodStatement(c *gin.Context) {
	from, err := requireDateQuery(c, "fromDate")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := requireDateQuery(c, "toDate")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	discount, err := decimalQuery(c, "discount")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	otherCharges, err := decimalQuery(c, "otherCharges")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	includePayments, err := boolQuery(c, "includePayments", true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.statementService.BuildPeriodStatement(c.Request.Context(), c.Param("partyID"), from, to, dto.PeriodStatementOptions{
		Discount:        discount,
		OtherCharges:    otherCharges,
		IncludePayments: includePayments,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to build period statement")
		return
	}

	c.JSON(http.StatusOK, result)
}

// savePeriodStatement godoc
// @Summary Save a period statement snapshot
// @Description Recomputes the statement and freezes its figures; the snapshot never changes until explicitly re-saved
// @Tags statements
// @Accept json
// @Produce json
// @Param partyID path string true "Party ID"
// @Param statement body dto.SavePeriodStatementRequest true "Snapshot parameters"
// @Success 201 {object} domain.PeriodStatement
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Party not found"
// @Security BearerAuth
// @Router /parties/{partyID}/statements/period [post]
func (h *statementHandler) savePeriodStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SavePeriodStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for savePeriodStatement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	statement, err := h.statementService.SavePeriodStatement(c.Request.Context(), c.Param("partyID"), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to save period statement")
		return
	}

	c.JSON(http.StatusCreated, statement)
}

// listPeriodStatements godoc
// @Summary List a party's saved period statements
// @Tags statements
// @Produce json
// @Param partyID path string true "Party ID"
// @Success 200 {array} domain.PeriodStatement
// @Security BearerAuth
// @Router /parties/{partyID}/statements/period/saved [get]
func (h *statementHandler) listPeriodStatements(c *gin.Context) {
	statements, err := h.statementService.ListPeriodStatementsByParty(c.Request.Context(), c.Param("partyID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list period statements")
		return
	}
	c.JSON(http.StatusOK, statements)
}

// getPeriodStatement godoc
// @Summary Get a saved period statement
// @Tags statements
// @Produce json
// @Param statementID path string true "Statement ID"
// @Success 200 {object} domain.PeriodStatement
// @Failure 404 {object} ErrorResponse "Statement not found"
// @Security BearerAuth
// @Router /statements/period/{statementID} [get]
func (h *statementHandler) getPeriodStatement(c *gin.Context) {
	statement, err := h.statementService.GetPeriodStatementByID(c.Request.Context(), c.Param("statementID"))
	if err != nil {
		respondServiceError(c, err, "Failed to get period statement")
		return
	}
	c.JSON(http.StatusOK, statement)
}

// updatePeriodStatement godoc
// @Summary Re-save a period statement snapshot
// @Description Recomputes from the current transaction streams; this is the only way a snapshot's figures change
// @Tags statements
// @Accept json
// @Produce json
// @Param statementID path string true "Statement ID"
// @Param statement body dto.SavePeriodStatementRequest true "Snapshot parameters"
// @Success 200 {object} domain.PeriodStatement
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Statement not found"
// @Security BearerAuth
// @Router /statements/period/{statementID} [put]
func (h *statementHandler) updatePeriodStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SavePeriodStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updatePeriodStatement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	statement, err := h.statementService.UpdatePeriodStatement(c.Request.Context(), c.Param("statementID"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update period statement")
		return
	}
	c.JSON(http.StatusOK, statement)
}

// deletePeriodStatement godoc
// @Summary Delete a saved period statement
// @Tags statements
// @Produce json
// @Param statementID path string true "Statement ID"
// @Success 204 "No content"
// @Failure 404 {object} ErrorResponse "Statement not found"
// @Security BearerAuth
// @Router /statements/period/{statementID} [delete]
func (h *statementHandler) deletePeriodStatement(c *gin.Context) {
	if err := h.statementService.DeletePeriodStatement(c.Request.Context(), c.Param("statementID")); err != nil {
		respondServiceError(c, err, "Failed to delete period statement")
		return
	}
	c.Status(http.StatusNoContent)
}

// previewVendorStatement godoc
// @Summary Preview a vendor yield statement
// @Description Reconciles a vendor's in-range purchases against the weighbridge reading without persisting anything
// @Tags statements
// @Produce json
// @Param vendorID path string true "Vendor ID"
// @Param fromDate query string true "Range start (YYYY-MM-DD)"
// @Param toDate query string true "Range end (YYYY-MM-DD)"
// @Param load query string false "Weighbridge load"
// @Param mt query string false "Empty vehicle weight"
// @Param rent query string false "Rent amount"
// @Param rentIsAddition query bool false "Rent is added instead of deducted"
// @Param otherExpenses query string false "Other expense amount"
// @Param otherExpensesIsAddition query bool false "Other expenses are added instead of deducted"
// @Success 200 {object} ledger.VendorStatementResult
// @Failure 400 {object} ErrorResponse "Invalid range or parameters"
// @Failure 404 {object} ErrorResponse "Vendor not found"
// @Security BearerAuth
// @Router /vendors/{vendorID}/statements/yield [get]
func (h *statementHandler) previewVendorStatement(c *gin.Context) {
	from, err := requireDateQuery(c, "fromDate")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := requireDateQuery(c, "toDate")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := ledger.VendorStatementParams{}
	if params.Load, err = decimalQuery(c, "load"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if params.MT, err = decimalQuery(c, "mt"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if params.Rent, err = decimalQuery(c, "rent"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if params.RentIsAddition, err = boolQuery(c, "rentIsAddition", false); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if params.OtherExpenses, err = decimalQuery(c, "otherExpenses"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if params.OtherExpensesIsAddition, err = boolQuery(c, "otherExpensesIsAddition", false); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.statementService.BuildVendorStatement(c.Request.Context(), c.Param("vendorID"), from, to, params)
	if err != nil {
		respondServiceError(c, err, "Failed to build vendor statement")
		return
	}

	c.JSON(http.StatusOK, result)
}

// saveVendorStatement godoc
// @Summary Save a vendor yield statement snapshot
// @Description Recomputes the yield statement and freezes it with the vehicle metadata
// @Tags statements
// @Accept json
// @Produce json
// @Param vendorID path string true "Vendor ID"
// @Param statement body dto.SaveVendorStatementRequest true "Snapshot parameters"
// @Success 201 {object} domain.VendorStatement
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Vendor not found"
// @Security BearerAuth
// @Router /vendors/{vendorID}/statements/yield [post]
func (h *statementHandler) saveVendorStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveVendorStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for saveVendorStatement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	statement, err := h.statementService.SaveVendorStatement(c.Request.Context(), c.Param("vendorID"), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to save vendor statement")
		return
	}

	c.JSON(http.StatusCreated, statement)
}

// listVendorStatements godoc
// @Summary List a vendor's saved yield statements
// @Tags statements
// @Produce json
// @Param vendorID path string true "Vendor ID"
// @Success 200 {array} domain.VendorStatement
// @Security BearerAuth
// @Router /vendors/{vendorID}/statements/yield/saved [get]
func (h *statementHandler) listVendorStatements(c *gin.Context) {
	statements, err := h.statementService.ListVendorStatementsByVendor(c.Request.Context(), c.Param("vendorID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list vendor statements")
		return
	}
	c.JSON(http.StatusOK, statements)
}

// getVendorStatement godoc
// @Summary Get a saved vendor yield statement
// @Tags statements
// @Produce json
// @Param statementID path string true "Statement ID"
// @Success 200 {object} domain.VendorStatement
// @Failure 404 {object} ErrorResponse "Statement not found"
// @Security BearerAuth
// @Router /statements/yield/{statementID} [get]
func (h *statementHandler) getVendorStatement(c *gin.Context) {
	statement, err := h.statementService.GetVendorStatementByID(c.Request.Context(), c.Param("statementID"))
	if err != nil {
		respondServiceError(c, err, "Failed to get vendor statement")
		return
	}
	c.JSON(http.StatusOK, statement)
}

// updateVendorStatement godoc
// @Summary Re-save a vendor yield statement snapshot
// @Tags statements
// @Accept json
// @Produce json
// @Param statementID path string true "Statement ID"
// @Param statement body dto.SaveVendorStatementRequest true "Snapshot parameters"
// @Success 200 {object} domain.VendorStatement
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Statement not found"
// @Security BearerAuth
// @Router /statements/yield/{statementID} [put]
func (h *statementHandler) updateVendorStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveVendorStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateVendorStatement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	statement, err := h.statementService.UpdateVendorStatement(c.Request.Context(), c.Param("statementID"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update vendor statement")
		return
	}
	c.JSON(http.StatusOK, statement)
}

// deleteVendorStatement godoc
// @Summary Delete a saved vendor yield statement
// @Tags statements
// @Produce json
// @Param statementID path string true "Statement ID"
// @Success 204 "No content"
// @Failure 404 {object} ErrorResponse "Statement not found"
// @Security BearerAuth
// @Router /statements/yield/{statementID} [delete]
func (h *statementHandler) deleteVendorStatement(c *gin.Context) {
	if err := h.statementService.DeleteVendorStatement(c.Request.Context(), c.Param("statementID")); err != nil {
		respondServiceError(c, err, "Failed to delete vendor statement")
		return
	}
	c.Status(http.StatusNoContent)
}
