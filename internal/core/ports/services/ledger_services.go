package services

import (
	"context"

	"github.com/fieldkhata/khata_backend/internal/core/domain"
	"github.com/fieldkhata/khata_backend/internal/dto"
)

// LedgerSvcFacade is the single persistence and consistency authority for
// clients and payments. It is the only writer of ledger state.
type LedgerSvcFacade interface {
	// CreateClient opens a new khata for a shop under the given salesman.
	// The pending balance starts at zero.
	CreateClient(ctx context.Context, salesmanID string, req dto.CreateClientRequest) (*domain.Client, error)

	// GetClient retrieves a single client.
	GetClient(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients lists clients, scoped to a salesman when salesmanID is
	// non-empty.
	ListClients(ctx context.Context, salesmanID string, limit int, offset int) ([]domain.Client, error)

	// RecordPayment appends a payment and updates the client's pending
	// balance atomically, recomputing the remaining amount from the
	// persisted balance.
	RecordPayment(ctx context.Context, salesmanID string, req dto.RecordPaymentRequest) (*domain.Payment, error)

	// ListPayments returns a client's payments, newest first.
	ListPayments(ctx context.Context, clientID string) ([]domain.Payment, error)
}
