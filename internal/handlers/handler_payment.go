package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mandikhata/trade_ledger_app/internal/core/ports/services"
	"github.com/mandikhata/trade_ledger_app/internal/dto"
	"github.com/mandikhata/trade_ledger_app/internal/middleware"
)

// paymentHandler handles HTTP requests for payment recording.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// registerPaymentRoutes registers payment routes. Listing by party lives
// under /parties.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := &paymentHandler{paymentService: paymentService}

	payments := rg.Group("/payments")
	{
		payments.POST("", h.createPayment)
		payments.DELETE("/:paymentID", h.deletePayment)
	}
}

// createPayment godoc
// @Summary Record a payment
// @Description Records a payment against a party's ledger; the bundled discount credits the ledger together with the amount
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} domain.Payment
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Party or invoice not found"
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to record payment")
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// deletePayment godoc
// @Summary Delete a payment
// @Description Removes a payment; ledger balances reflect the removal immediately
// @Tags payments
// @Produce json
// @Param paymentID path string true "Payment ID"
// @Success 204 "No content"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Security BearerAuth
// @Router /payments/{paymentID} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	if err := h.paymentService.DeletePayment(c.Request.Context(), c.Param("paymentID")); err != nil {
		respondServiceError(c, err, "Failed to delete payment")
		return
	}
	c.Status(http.StatusNoContent)
}
