package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldkhata/khata_backend/internal/apperrors"
	"github.com/fieldkhata/khata_backend/internal/core/domain"
	portsrepo "github.com/fieldkhata/khata_backend/internal/core/ports/repositories"
	"github.com/fieldkhata/khata_backend/internal/models"
	"github.com/fieldkhata/khata_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxClientRepository implements portsrepo.ClientRepositoryFacade
var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

const clientColumns = `client_id, salesman_id, shop_name, phone, cnic, total_pending,
	created_at, created_by, last_updated_at, last_updated_by`

func scanClient(row pgx.Row) (*domain.Client, error) {
	var m models.Client
	err := row.Scan(
		&m.ClientID,
		&m.SalesmanID,
		&m.ShopName,
		&m.Phone,
		&m.CNIC,
		&m.TotalPending,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan client row: %w", err)
	}
	d := mapping.ToDomainClient(m)
	return &d, nil
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		INSERT INTO clients (client_id, salesman_id, shop_name, phone, cnic, total_pending,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ClientID,
		m.SalesmanID,
		m.ShopName,
		m.Phone,
		m.CNIC,
		m.TotalPending,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: client already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save client: %w", err)
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1;`
	return scanClient(r.Pool.QueryRow(ctx, query, clientID))
}

func (r *PgxClientRepository) FindClients(ctx context.Context, salesmanID string, limit int, offset int) ([]domain.Client, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	// salesman_id = '' never matches a real ID, so the OR collapses the
	// scoped and unscoped cases into one query.
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE ($1 = '' OR salesman_id = $1)
		ORDER BY created_at DESC, client_id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, salesmanID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	modelClients := []models.Client{}
	for rows.Next() {
		var m models.Client
		if err := rows.Scan(
			&m.ClientID,
			&m.SalesmanID,
			&m.ShopName,
			&m.Phone,
			&m.CNIC,
			&m.TotalPending,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		modelClients = append(modelClients, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}

	return mapping.ToDomainClientSlice(modelClients), nil
}

func (r *PgxClientRepository) FindClientByCNIC(ctx context.Context, cnic string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE cnic = $1 ORDER BY created_at LIMIT 1;`
	return scanClient(r.Pool.QueryRow(ctx, query, cnic))
}

func (r *PgxClientRepository) FindClientByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE phone = $1 ORDER BY created_at LIMIT 1;`
	return scanClient(r.Pool.QueryRow(ctx, query, phone))
}

func (r *PgxClientRepository) CountClients(ctx context.Context, salesmanID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM clients WHERE ($1 = '' OR salesman_id = $1);`
	if err := r.Pool.QueryRow(ctx, query, salesmanID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count clients: %w", err)
	}
	return count, nil
}

func (r *PgxClientRepository) SumTotalPending(ctx context.Context, salesmanID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(total_pending), 0) FROM clients WHERE ($1 = '' OR salesman_id = $1);`
	if err := r.Pool.QueryRow(ctx, query, salesmanID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum pending balances: %w", err)
	}
	return sum, nil
}
