package dto

import (
	"github.com/fieldkhata/khata_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ScanReceiptRequest carries a captured receipt image ("parchi") as base64.
type ScanReceiptRequest struct {
	ImageBase64 string `json:"imageBase64" binding:"required"`
	MimeType    string `json:"mimeType" binding:"required"`
}

// ScanReceiptResponse is the advisory OCR suggestion. Amount is a
// pre-fill hint for paidAmount, never authoritative.
type ScanReceiptResponse struct {
	Merchant   string           `json:"merchant,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Confidence string           `json:"confidence,omitempty"`
}

// ToScanReceiptResponse converts a domain ReceiptScan to its DTO
func ToScanReceiptResponse(s *domain.ReceiptScan) ScanReceiptResponse {
	return ScanReceiptResponse{
		Merchant:   s.Merchant,
		Amount:     s.Amount,
		Confidence: s.Confidence,
	}
}

// SpeakConfirmationRequest asks for a spoken confirmation of a ledger update.
type SpeakConfirmationRequest struct {
	Text string `json:"text" binding:"required"`
}

// SpeakConfirmationResponse carries synthesized audio as base64.
type SpeakConfirmationResponse struct {
	AudioBase64 string `json:"audioBase64"`
	MimeType    string `json:"mimeType"`
}
