package handlers

import (
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fieldkhata/khata_backend/internal/apperrors"
	"github.com/fieldkhata/khata_backend/internal/core/domain"
	portssvc "github.com/fieldkhata/khata_backend/internal/core/ports/services"
	"github.com/fieldkhata/khata_backend/internal/dto"
	"github.com/fieldkhata/khata_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// receiptHandler handles the advisory receipt-scan and speech routes.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

func newReceiptHandler(rs portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{receiptService: rs}
}

// RegisterReceiptRoutes registers receipt/speech routes on an authenticated
// group. Exported for handler tests.
func RegisterReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade) {
	h := newReceiptHandler(receiptService)

	rg.POST("/receipts/scan", middleware.RequireRole(domain.RoleSalesman), h.scanReceipt)
	rg.POST("/speech/confirm", middleware.RequireRole(domain.RoleSalesman), h.speakConfirmation)
}

// scanReceipt godoc
// @Summary Scan receipt image
// @Description Extracts an advisory merchant/amount suggestion from a receipt photo. The suggestion pre-fills the payment form and is never authoritative.
// @Tags receipts
// @Accept json
// @Produce json
// @Param scan body dto.ScanReceiptRequest true "Receipt Image"
// @Success 200 {object} dto.ScanReceiptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Upstream analysis failed"
// @Security BearerAuth
// @Router /receipts/scan [post]
func (h *receiptHandler) scanReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ScanReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	image, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "imageBase64 is not valid base64"})
		return
	}

	scan, err := h.receiptService.AnalyzeReceipt(c.Request.Context(), image, req.MimeType)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Warn("Receipt analysis failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Receipt analysis failed"})
		return
	}

	c.JSON(http.StatusOK, dto.ToScanReceiptResponse(scan))
}

// speakConfirmation godoc
// @Summary Spoken payment confirmation
// @Description Synthesizes a spoken confirmation of a recorded payment for low-literacy users.
// @Tags receipts
// @Accept json
// @Produce json
// @Param confirm body dto.SpeakConfirmationRequest true "Confirmation Text"
// @Success 200 {object} dto.SpeakConfirmationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Upstream synthesis failed"
// @Security BearerAuth
// @Router /speech/confirm [post]
func (h *receiptHandler) speakConfirmation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SpeakConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	audio, mimeType, err := h.receiptService.SpeakConfirmation(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Warn("Speech synthesis failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Speech synthesis failed"})
		return
	}

	c.JSON(http.StatusOK, dto.SpeakConfirmationResponse{
		AudioBase64: base64.StdEncoding.EncodeToString(audio),
		MimeType:    mimeType,
	})
}
