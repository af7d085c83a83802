package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	portssvc "github.com/mandikhata/trade_ledger_app/internal/core/ports/services"
	"github.com/mandikhata/trade_ledger_app/internal/dto"
	"github.com/mandikhata/trade_ledger_app/internal/middleware"
)

// partyHandler handles HTTP requests for customers and vendors.
type partyHandler struct {
	partyService      portssvc.PartySvcFacade
	invoiceService    portssvc.InvoiceSvcFacade
	paymentService    portssvc.PaymentSvcFacade
	adjustmentService portssvc.AdjustmentSvcFacade
}

// RegisterPartyRoutes registers routes related to parties and their
// transaction streams.
func RegisterPartyRoutes(
	rg *gin.RouterGroup,
	partyService portssvc.PartySvcFacade,
	invoiceService portssvc.InvoiceSvcFacade,
	paymentService portssvc.PaymentSvcFacade,
	adjustmentService portssvc.AdjustmentSvcFacade,
) {
	h := &partyHandler{
		partyService:      partyService,
		invoiceService:    invoiceService,
		paymentService:    paymentService,
		adjustmentService: adjustmentService,
	}

	parties := rg.Group("/parties")
	{
		parties.POST("", h.createParty)
		parties.GET("", h.listParties)
		parties.GET("/balances", h.listPartiesWithBalances)
		parties.GET("/:partyID", h.getParty)
		parties.PUT("/:partyID", h.updateParty)
		parties.DELETE("/:partyID", h.deactivateParty)
		parties.GET("/:partyID/balance", h.getPartyBalance)
		parties.GET("/:partyID/invoices", h.listPartyInvoices)
		parties.GET("/:partyID/payments", h.listPartyPayments)
		parties.GET("/:partyID/adjustments", h.listPartyAdjustments)
	}
}

// partyTypeQuery parses the mandatory type query parameter.
func partyTypeQuery(c *gin.Context) (domain.PartyType, bool) {
	switch c.Query("type") {
	case "CUSTOMER":
		return domain.Customer, true
	case "VENDOR":
		return domain.Vendor, true
	default:
		return "", false
	}
}

// createParty godoc
// @Summary Create a party
// @Description Creates a customer or vendor with an optional opening balance
// @Tags parties
// @Accept json
// @Produce json
// @Param party body dto.CreatePartyRequest true "Party details"
// @Success 201 {object} dto.PartyResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /parties [post]
func (h *partyHandler) createParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	party, err := h.partyService.CreateParty(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create party")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPartyResponse(*party))
}

// listParties godoc
// @Summary List parties
// @Description Lists active parties of the given type
// @Tags parties
// @Produce json
// @Param type query string true "Party type" Enums(CUSTOMER, VENDOR)
// @Success 200 {array} dto.PartyResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid type"
// @Security BearerAuth
// @Router /parties [get]
func (h *partyHandler) listParties(c *gin.Context) {
	partyType, ok := partyTypeQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be CUSTOMER or VENDOR"})
		return
	}

	parties, err := h.partyService.ListParties(c.Request.Context(), partyType)
	if err != nil {
		respondServiceError(c, err, "Failed to list parties")
		return
	}

	out := make([]dto.PartyResponse, len(parties))
	for i, p := range parties {
		out[i] = dto.ToPartyResponse(p)
	}
	c.JSON(http.StatusOK, out)
}

// listPartiesWithBalances godoc
// @Summary List parties with balances
// @Description Lists active parties of the given type with their ledger balances recomputed from source transactions
// @Tags parties
// @Produce json
// @Param type query string true "Party type" Enums(CUSTOMER, VENDOR)
// @Success 200 {array} dto.PartyBalanceResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid type"
// @Security BearerAuth
// @Router /parties/balances [get]
func (h *partyHandler) listPartiesWithBalances(c *gin.Context) {
	partyType, ok := partyTypeQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be CUSTOMER or VENDOR"})
		return
	}

	balances, err := h.partyService.ListPartiesWithBalances(c.Request.Context(), partyType)
	if err != nil {
		respondServiceError(c, err, "Failed to list party balances")
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyBalanceResponses(balances))
}

// getParty godoc
// @Summary Get a party by ID
// @Tags parties
// @Produce json
// @Param partyID path string true "Party ID"
// @Success 200 {object} dto.PartyResponse
// @Failure 404 {object} ErrorResponse "Party not found"
// @Security BearerAuth
// @Router /parties/{partyID} [get]
func (h *partyHandler) getParty(c *gin.Context) {
	party, err := h.partyService.GetPartyByID(c.Request.Context(), c.Param("partyID"))
	if err != nil {
		respondServiceError(c, err, "Failed to get party")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(*party))
}

// updateParty godoc
// @Summary Update a party
// @Description Updates party details; omitted fields are left unchanged
// @Tags parties
// @Accept json
// @Produce json
// @Param partyID path string true "Party ID"
// @Param party body dto.UpdatePartyRequest true "Fields to update"
// @Success 200 {object} dto.PartyResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Party not found"
// @Security BearerAuth
// @Router /parties/{partyID} [put]
func (h *partyHandler) updateParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	party, err := h.partyService.UpdateParty(c.Request.Context(), c.Param("partyID"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update party")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(*party))
}

// deactivateParty godoc
// @Summary Deactivate a party
// @Description Soft-deletes a party; its transactions remain on the ledger
// @Tags parties
// @Produce json
// @Param partyID path string true "Party ID"
// @Success 204 "No content"
// @Failure 404 {object} ErrorResponse "Party not found"
// @Security BearerAuth
// @Router /parties/{partyID} [delete]
func (h *partyHandler) deactivateParty(c *gin.Context) {
	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.partyService.DeactivateParty(c.Request.Context(), c.Param("partyID"), updaterUserID); err != nil {
		respondServiceError(c, err, "Failed to deactivate party")
		return
	}
	c.Status(http.StatusNoContent)
}

// getPartyBalance godoc
// @Summary Get a party's ledger balance
// @Description Recomputes the signed balance from the party's transaction streams, optionally as of an inclusive cutoff date
// @Tags parties
// @Produce json
// @Param partyID path string true "Party ID"
// @Param asOf query string false "Inclusive cutoff date (YYYY-MM-DD)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Invalid asOf"
// @Failure 404 {object} ErrorResponse "Party not found"
// @Security BearerAuth
// @Router /parties/{partyID}/balance [get]
func (h *partyHandler) getPartyBalance(c *gin.Context) {
	asOf, err := parseDateQuery(c, "asOf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	balance, err := h.partyService.GetPartyBalance(c.Request.Context(), c.Param("partyID"), asOf)
	if err != nil {
		respondServiceError(c, err, "Failed to compute party balance")
		return
	}

	c.JSON(http.StatusOK, gin.H{"partyID": c.Param("partyID"), "balance": balance})
}

// listPartyInvoices godoc
// @Summary List a party's invoices
// @Tags parties
// @Produce json
// @Param partyID path string true "Party ID"
// @Param fromDate query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param toDate query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {array} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse "Invalid date bound"
// @Security BearerAuth
// @Router /parties/{partyID}/invoices [get]
func (h *partyHandler) listPartyInvoices(c *gin.Context) {
	from, err := parseDateQuery(c, "fromDate")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := parseDateQuery(c, "toDate")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invoices, err := h.invoiceService.ListInvoicesByParty(c.Request.Context(), c.Param("partyID"), from, to)
	if err != nil {
		respondServiceError(c, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponses(invoices))
}

// listPartyPayments godoc
// @Summary List a party's payments
// @Tags parties
// @Produce json
// @Param partyID path string true "Party ID"
// @Param fromDate query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param toDate query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {array} domain.Payment
// @Failure 400 {object} ErrorResponse "Invalid date bound"
// @Security BearerAuth
// @Router /parties/{partyID}/payments [get]
func (h *partyHandler) listPartyPayments(c *gin.Context) {
	from, err := parseDateQuery(c, "fromDate")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := parseDateQuery(c, "toDate")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payments, err := h.paymentService.ListPaymentsByParty(c.Request.Context(), c.Param("partyID"), from, to)
	if err != nil {
		respondServiceError(c, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, payments)
}

// listPartyAdjustments godoc
// @Summary List a party's manual adjustments
// @Tags parties
// @Produce json
// @Param partyID path string true "Party ID"
// @Param fromDate query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param toDate query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {array} domain.Adjustment
// @Failure 400 {object} ErrorResponse "Invalid date bound"
// @Security BearerAuth
// @Router /parties/{partyID}/adjustments [get]
func (h *partyHandler) listPartyAdjustments(c *gin.Context) {
	from, err := parseDateQuery(c, "fromDate")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := parseDateQuery(c, "toDate")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adjustments, err := h.adjustmentService.ListAdjustmentsByParty(c.Request.Context(), c.Param("partyID"), from, to)
	if err != nil {
		respondServiceError(c, err, "Failed to list adjustments")
		return
	}
	c.JSON(http.StatusOK, adjustments)
}
