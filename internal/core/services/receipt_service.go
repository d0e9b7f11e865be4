package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	"github.com/fieldkhata/khata_backend/internal/apperrors"
	"github.com/fieldkhata/khata_backend/internal/core/domain"
	portssvc "github.com/fieldkhata/khata_backend/internal/core/ports/services"
	"github.com/fieldkhata/khata_backend/internal/middleware"
	"github.com/fieldkhata/khata_backend/internal/platform/config"
)

const (
	receiptModelName = "gemini-2.0-flash-001"
	speechModelName  = "gemini-2.5-flash-preview-tts"

	receiptPrompt = `You are reading a photo of a shop receipt or bill from Pakistan.
Extract the merchant name and the final payable amount in rupees.
Respond with JSON only, shaped as:
{"merchant": string, "amount": string, "confidence": "high"|"medium"|"low"}
Use an empty string for any field you cannot read. The amount must be digits
with an optional decimal point, no currency symbol and no thousands separators.`
)

// receiptService calls Gemini for receipt understanding and spoken payment
// confirmations. Both calls are advisory; the ledger never depends on them.
type receiptService struct {
	cfg *config.Config
}

// NewReceiptService creates a new ReceiptService.
func NewReceiptService(cfg *config.Config) portssvc.ReceiptSvcFacade {
	return &receiptService{cfg: cfg}
}

// Ensure receiptService implements the portssvc.ReceiptSvcFacade interface
var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

// scanResult is the JSON shape the receipt prompt asks the model for.
type scanResult struct {
	Merchant   string `json:"merchant"`
	Amount     string `json:"amount"`
	Confidence string `json:"confidence"`
}

// AnalyzeReceipt sends the receipt image to Gemini and parses the structured
// guess out of the reply. A malformed amount degrades to a scan with no
// amount rather than an error.
func (s *receiptService) AnalyzeReceipt(ctx context.Context, image []byte, mimeType string) (*domain.ReceiptScan, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if s.cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: receipt scanning is not configured", apperrors.ErrInternal)
	}
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: empty image", apperrors.ErrValidation)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(receiptModelName)
	model.GenerationConfig.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: mimeType, Data: image},
		genai.Text(receiptPrompt),
	)
	if err != nil {
		return nil, fmt.Errorf("receipt analysis request failed: %w", err)
	}

	raw := collectText(resp)
	if raw == "" {
		return nil, fmt.Errorf("%w: model returned no text for receipt", apperrors.ErrInternal)
	}

	var parsed scanResult
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		logger.Warn("Unparseable receipt scan reply", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: unparseable receipt analysis reply", apperrors.ErrInternal)
	}

	scan := &domain.ReceiptScan{
		Merchant:   parsed.Merchant,
		Confidence: parsed.Confidence,
	}
	if parsed.Amount != "" {
		if amount, err := decimal.NewFromString(parsed.Amount); err == nil && !amount.IsNegative() {
			scan.Amount = &amount
		} else {
			logger.Warn("Dropping unusable scanned amount", slog.String("amount", parsed.Amount))
		}
	}
	return scan, nil
}

// SpeakConfirmation synthesizes the confirmation phrase and returns the audio
// bytes with their MIME type.
func (s *receiptService) SpeakConfirmation(ctx context.Context, text string) ([]byte, string, error) {
	if s.cfg.GeminiAPIKey == "" {
		return nil, "", fmt.Errorf("%w: speech synthesis is not configured", apperrors.ErrInternal)
	}
	if strings.TrimSpace(text) == "" {
		return nil, "", fmt.Errorf("%w: empty confirmation text", apperrors.ErrValidation)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.cfg.GeminiAPIKey))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(speechModelName)
	resp, err := model.GenerateContent(ctx, genai.Text(text))
	if err != nil {
		return nil, "", fmt.Errorf("speech synthesis request failed: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if blob, ok := part.(genai.Blob); ok && len(blob.Data) > 0 {
				return blob.Data, blob.MIMEType, nil
			}
		}
	}
	return nil, "", fmt.Errorf("%w: model returned no audio", apperrors.ErrInternal)
}

// collectText concatenates the text parts of the first candidate.
func collectText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
		break
	}
	return strings.TrimSpace(sb.String())
}
