package domain

import (
	"github.com/shopspring/decimal"
)

// DashboardStats aggregates a salesman's book (or the whole book for the
// company admin) for the dashboard header cards.
type DashboardStats struct {
	ClientCount    int64           `json:"clientCount"`
	TotalPending   decimal.Decimal `json:"totalPending"`
	PaymentCount   int64           `json:"paymentCount"`   // Payments within the trailing window
	RecoveredTotal decimal.Decimal `json:"recoveredTotal"` // Sum of paid amounts within the trailing window
	WindowDays     int             `json:"windowDays"`
}

// ReceiptScan is the advisory output of the receipt-understanding
// collaborator. Amount pre-fills the paid amount in the app; it is never
// authoritative for balance computation.
type ReceiptScan struct {
	Merchant   string           `json:"merchant,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Confidence string           `json:"confidence,omitempty"`
}
