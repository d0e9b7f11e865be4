package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType is the closed set of recovery channels.
type PaymentType string

const (
	PaymentCash   PaymentType = "CASH"
	PaymentBank   PaymentType = "BANK"
	PaymentCheque PaymentType = "CHEQUE"
)

// IsValid reports whether the payment type is one of the known variants.
func (t PaymentType) IsValid() bool {
	switch t {
	case PaymentCash, PaymentBank, PaymentCheque:
		return true
	}
	return false
}

// Payment is an immutable ledger event: a new invoice amount (TotalBill) and a
// recovered amount (PaidAmount) applied to a client's running balance.
// RemainingAmount is the client's pending balance snapshot after this event,
// computed by the store from its own persisted balance, never from the caller.
// Payments are append-only; they are never updated or deleted.
type Payment struct {
	PaymentID       string          `json:"paymentID"` // Primary Key (UUID)
	Seq             int64           `json:"-"`         // Insertion order, assigned by the database
	ClientID        string          `json:"clientID"`
	SalesmanID      string          `json:"salesmanID"`
	TotalBill       decimal.Decimal `json:"totalBill"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	PaymentType     PaymentType     `json:"paymentType"`
	ReceiptURL      string          `json:"receiptUrl,omitempty"` // Opaque reference to a captured receipt image
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}
