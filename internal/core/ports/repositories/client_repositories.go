package repositories

import (
	"context"

	"github.com/fieldkhata/khata_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ClientReader defines read operations for client ledgers
type ClientReader interface {
	// FindClientByID retrieves a specific client by ID.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// FindClients retrieves clients, optionally filtered by owning salesman
	// (salesmanID empty means all clients). Ordered newest first.
	FindClients(ctx context.Context, salesmanID string, limit int, offset int) ([]domain.Client, error)

	// FindClientByCNIC retrieves the client whose cnic matches, if any.
	FindClientByCNIC(ctx context.Context, cnic string) (*domain.Client, error)

	// FindClientByPhone retrieves the client whose phone matches, if any.
	FindClientByPhone(ctx context.Context, phone string) (*domain.Client, error)

	// CountClients counts clients, optionally scoped to a salesman.
	CountClients(ctx context.Context, salesmanID string) (int64, error)

	// SumTotalPending sums pending balances, optionally scoped to a salesman.
	SumTotalPending(ctx context.Context, salesmanID string) (decimal.Decimal, error)
}

// ClientWriter defines write operations for client ledgers.
// TotalPending is deliberately absent here: only the payment repository's
// transactional write path mutates it.
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error
}

// ClientRepositoryFacade combines all client-related repository interfaces.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
