package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the database row shape for a ledger event. Rows are append-only.
type Payment struct {
	PaymentID       string          `db:"payment_id"`
	Seq             int64           `db:"seq"` // BIGSERIAL; stable tie-break for same-timestamp rows
	ClientID        string          `db:"client_id"`
	SalesmanID      string          `db:"salesman_id"`
	TotalBill       decimal.Decimal `db:"total_bill"`
	PaidAmount      decimal.Decimal `db:"paid_amount"`
	RemainingAmount decimal.Decimal `db:"remaining_amount"`
	PaymentType     string          `db:"payment_type"`
	ReceiptURL      sql.NullString  `db:"receipt_url"`
	CreatedAt       time.Time       `db:"created_at"`
	CreatedBy       string          `db:"created_by"`
}
