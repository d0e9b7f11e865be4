package dto

import (
	"time"

	"github.com/fieldkhata/khata_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest appends a ledger event. Note there is no remaining
// amount field: the store recomputes the balance from its own persisted
// state, and any client-side figure is advisory UI state only.
type RecordPaymentRequest struct {
	ClientID    string          `json:"clientID" binding:"required"`
	TotalBill   decimal.Decimal `json:"totalBill"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
	PaymentType string          `json:"paymentType" binding:"required,paymenttype"`
	ReceiptURL  string          `json:"receiptUrl"`
}

// PaymentResponse is the public view of a payment.
type PaymentResponse struct {
	PaymentID       string          `json:"paymentID"`
	ClientID        string          `json:"clientID"`
	SalesmanID      string          `json:"salesmanID"`
	TotalBill       decimal.Decimal `json:"totalBill"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	PaymentType     string          `json:"paymentType"`
	ReceiptURL      string          `json:"receiptUrl,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`

	// ConfirmationText is a ready-to-speak summary of the event, set only on
	// the record-payment response. The app feeds it to the speech endpoint.
	ConfirmationText string `json:"confirmationText,omitempty"`
}

// ListPaymentsResponse wraps a client's payment history.
type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// ToPaymentResponse converts a domain Payment to a PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:       p.PaymentID,
		ClientID:        p.ClientID,
		SalesmanID:      p.SalesmanID,
		TotalBill:       p.TotalBill,
		PaidAmount:      p.PaidAmount,
		RemainingAmount: p.RemainingAmount,
		PaymentType:     string(p.PaymentType),
		ReceiptURL:      p.ReceiptURL,
		CreatedAt:       p.CreatedAt,
	}
}

// ToListPaymentsResponse converts a slice of domain Payments to a ListPaymentsResponse DTO
func ToListPaymentsResponse(ps []domain.Payment) ListPaymentsResponse {
	out := make([]PaymentResponse, len(ps))
	for i := range ps {
		out[i] = ToPaymentResponse(&ps[i])
	}
	return ListPaymentsResponse{Payments: out}
}
