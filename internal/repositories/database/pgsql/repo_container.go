package pgsql

import (
	portsrepo "github.com/fieldkhata/khata_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgx-backed repositories over a single pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:    newPgxUserRepository(pool),
		ClientRepo:  newPgxClientRepository(pool),
		PaymentRepo: newPgxPaymentRepository(pool),
	}
}
