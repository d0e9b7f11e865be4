package repositories

import (
	"context"
	"time"

	"github.com/fieldkhata/khata_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentReader defines read operations for payment history
type PaymentReader interface {
	// FindPaymentsByClientID retrieves all payments for a client, newest
	// first with insertion order as the stable tie-break.
	FindPaymentsByClientID(ctx context.Context, clientID string) ([]domain.Payment, error)

	// PaymentStatsSince returns the count of payments and the sum of paid
	// amounts recorded since the given time, optionally scoped to a salesman
	// (salesmanID empty means all).
	PaymentStatsSince(ctx context.Context, salesmanID string, since time.Time) (int64, decimal.Decimal, error)
}

// PaymentWriter defines the single mutating operation of the payment ledger.
type PaymentWriter interface {
	// RecordPayment appends the payment and updates the client's pending
	// balance atomically. The client's persisted balance is read under a row
	// lock inside the transaction; payment.RemainingAmount as passed in is
	// ignored and recomputed. Returns the stored payment with its computed
	// RemainingAmount and assigned Seq.
	//
	// Fails with apperrors.ErrNotFound if the client does not exist; on any
	// failure nothing is persisted.
	RecordPayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
