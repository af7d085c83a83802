package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mandikhata/trade_ledger_app/internal/core/ports/services"
	"github.com/mandikhata/trade_ledger_app/internal/dto"
	"github.com/mandikhata/trade_ledger_app/internal/middleware"
)

// adjustmentHandler handles HTTP requests for manual ledger adjustments.
type adjustmentHandler struct {
	adjustmentService portssvc.AdjustmentSvcFacade
}

// registerAdjustmentRoutes registers adjustment routes. Listing by party
// lives under /parties.
func registerAdjustmentRoutes(rg *gin.RouterGroup, adjustmentService portssvc.AdjustmentSvcFacade) {
	h := &adjustmentHandler{adjustmentService: adjustmentService}

	adjustments := rg.Group("/adjustments")
	{
		adjustments.POST("", h.createAdjustment)
		adjustments.DELETE("/:adjustmentID", h.deleteAdjustment)
	}
}

// createAdjustment godoc
// @Summary Record a manual ledger adjustment
// @Description Records an unsigned adjustment whose type (DISCOUNT or ADDITIONAL) decides the sign applied to the ledger
// @Tags adjustments
// @Accept json
// @Produce json
// @Param adjustment body dto.CreateAdjustmentRequest true "Adjustment details"
// @Success 201 {object} domain.Adjustment
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Party not found"
// @Security BearerAuth
// @Router /adjustments [post]
func (h *adjustmentHandler) createAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAdjustment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	adjustment, err := h.adjustmentService.CreateAdjustment(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to record adjustment")
		return
	}

	c.JSON(http.StatusCreated, adjustment)
}

// deleteAdjustment godoc
// @Summary Delete an adjustment
// @Tags adjustments
// @Produce json
// @Param adjustmentID path string true "Adjustment ID"
// @Success 204 "No content"
// @Failure 404 {object} ErrorResponse "Adjustment not found"
// @Security BearerAuth
// @Router /adjustments/{adjustmentID} [delete]
func (h *adjustmentHandler) deleteAdjustment(c *gin.Context) {
	if err := h.adjustmentService.DeleteAdjustment(c.Request.Context(), c.Param("adjustmentID")); err != nil {
		respondServiceError(c, err, "Failed to delete adjustment")
		return
	}
	c.Status(http.StatusNoContent)
}
