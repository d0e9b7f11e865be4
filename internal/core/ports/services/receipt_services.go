package services

import (
	"context"

	"github.com/fieldkhata/khata_backend/internal/core/domain"
)

// ReceiptSvcFacade wraps the external receipt-understanding and
// speech-synthesis collaborators. Both are advisory: failures here must never
// block or fail a ledger write.
type ReceiptSvcFacade interface {
	// AnalyzeReceipt extracts an advisory amount/merchant guess from raw
	// receipt image bytes.
	AnalyzeReceipt(ctx context.Context, image []byte, mimeType string) (*domain.ReceiptScan, error)

	// SpeakConfirmation synthesizes the spoken payment confirmation and
	// returns encoded audio bytes with their MIME type.
	SpeakConfirmation(ctx context.Context, text string) ([]byte, string, error)
}
