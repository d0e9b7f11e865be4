package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/fieldkhata/khata_backend/internal/apperrors"
	"github.com/fieldkhata/khata_backend/internal/core/domain"
	portssvc "github.com/fieldkhata/khata_backend/internal/core/ports/services"
	"github.com/fieldkhata/khata_backend/internal/dto"
	"github.com/fieldkhata/khata_backend/internal/middleware"
	"github.com/fieldkhata/khata_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests for recording payments.
type paymentHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newPaymentHandler(ls portssvc.LedgerSvcFacade) *paymentHandler {
	return &paymentHandler{ledgerService: ls}
}

// RegisterPaymentRoutes registers payment routes on an authenticated group.
// Exported for handler tests.
func RegisterPaymentRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newPaymentHandler(ledgerService)

	payments := rg.Group("/payments")
	{
		payments.POST("", middleware.RequireRole(domain.RoleSalesman), h.recordPayment)
	}
}

// recordPayment godoc
// @Summary Record payment
// @Description Appends a bill/payment event to a client's khata and returns the updated balance snapshot.
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.RecordPaymentRequest true "Payment Info"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Client not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	// A salesman may only write into khatas they own.
	client, err := h.ledgerService.GetClient(c.Request.Context(), req.ClientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Client not found"})
			return
		}
		logger.Error("Failed to load client for payment", slog.String("error", err.Error()), slog.String("client_id", req.ClientID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record payment"})
		return
	}
	if client.SalesmanID != userID {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "You do not have access to this client"})
		return
	}

	payment, err := h.ledgerService.RecordPayment(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Client not found"})
			return
		}
		logger.Error("Failed to record payment", slog.String("error", err.Error()), slog.String("client_id", req.ClientID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record payment"})
		return
	}

	resp := dto.ToPaymentResponse(payment)
	resp.ConfirmationText = fmt.Sprintf("Payment of %s received. Remaining balance %s.",
		utils.FormatRupees(payment.PaidAmount), utils.FormatRupees(payment.RemainingAmount))
	c.JSON(http.StatusCreated, resp)
}
