package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fieldkhata/khata_backend/internal/apperrors"
	"github.com/fieldkhata/khata_backend/internal/core/domain"
	portsrepo "github.com/fieldkhata/khata_backend/internal/core/ports/repositories"
	"github.com/fieldkhata/khata_backend/internal/models"
	"github.com/fieldkhata/khata_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryFacade
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

// RecordPayment appends the payment and updates the client's pending balance
// within a single database transaction. The client row is locked FOR UPDATE so
// the remaining amount is always computed against the persisted balance; no
// two payments for the same client can interleave their read-compute-write
// sequences.
func (r *PgxPaymentRepository) RecordPayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Ignored if the transaction commits.
	defer r.Rollback(ctx, tx)

	// 1. Lock the client row and read the authoritative pending balance.
	var currentPending decimal.Decimal
	err = tx.QueryRow(ctx,
		`SELECT total_pending FROM clients WHERE client_id = $1 FOR UPDATE;`,
		payment.ClientID,
	).Scan(&currentPending)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: client %s", apperrors.ErrNotFound, payment.ClientID)
		}
		return nil, apperrors.NewAppError(500, "failed to lock client row for payment", err)
	}

	// 2. Recompute the balance snapshot from the locked row.
	remaining := currentPending.Add(payment.TotalBill).Sub(payment.PaidAmount)
	payment.RemainingAmount = remaining

	// 3. Insert the payment; seq comes from the sequence.
	m := mapping.ToModelPayment(payment)
	err = tx.QueryRow(ctx, `
		INSERT INTO payments (payment_id, client_id, salesman_id, total_bill, paid_amount,
			remaining_amount, payment_type, receipt_url, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING seq;
	`,
		m.PaymentID,
		m.ClientID,
		m.SalesmanID,
		m.TotalBill,
		m.PaidAmount,
		m.RemainingAmount,
		m.PaymentType,
		m.ReceiptURL,
		m.CreatedAt,
		m.CreatedBy,
	).Scan(&payment.Seq)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert payment "+m.PaymentID, err)
	}

	// 4. Update the client's running balance in the same transaction.
	_, err = tx.Exec(ctx, `
		UPDATE clients
		SET total_pending = $2, last_updated_at = $3, last_updated_by = $4
		WHERE client_id = $1;
	`,
		payment.ClientID,
		remaining,
		payment.CreatedAt,
		payment.CreatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update client balance for payment "+m.PaymentID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &payment, nil
}

func (r *PgxPaymentRepository) FindPaymentsByClientID(ctx context.Context, clientID string) ([]domain.Payment, error) {
	query := `
		SELECT payment_id, seq, client_id, salesman_id, total_bill, paid_amount,
			remaining_amount, payment_type, receipt_url, created_at, created_by
		FROM payments
		WHERE client_id = $1
		ORDER BY created_at DESC, seq DESC;
	`
	rows, err := r.Pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for client %s: %w", clientID, err)
	}
	defer rows.Close()

	modelPayments := []models.Payment{}
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(
			&m.PaymentID,
			&m.Seq,
			&m.ClientID,
			&m.SalesmanID,
			&m.TotalBill,
			&m.PaidAmount,
			&m.RemainingAmount,
			&m.PaymentType,
			&m.ReceiptURL,
			&m.CreatedAt,
			&m.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		modelPayments = append(modelPayments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	return mapping.ToDomainPaymentSlice(modelPayments), nil
}

func (r *PgxPaymentRepository) PaymentStatsSince(ctx context.Context, salesmanID string, since time.Time) (int64, decimal.Decimal, error) {
	var count int64
	var recovered decimal.Decimal
	query := `
		SELECT COUNT(*), COALESCE(SUM(paid_amount), 0)
		FROM payments
		WHERE created_at >= $2 AND ($1 = '' OR salesman_id = $1);
	`
	if err := r.Pool.QueryRow(ctx, query, salesmanID, since).Scan(&count, &recovered); err != nil {
		return 0, decimal.Zero, fmt.Errorf("failed to aggregate payment stats: %w", err)
	}
	return count, recovered, nil
}
