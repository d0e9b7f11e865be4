package services

import (
	"context"

	"github.com/fieldkhata/khata_backend/internal/core/domain"
)

// ReportingSvcFacade provides the read-only derived views used by dashboards.
type ReportingSvcFacade interface {
	// DashboardStats aggregates client count, pending total, and
	// trailing-window payment stats. salesmanID empty means company-wide.
	DashboardStats(ctx context.Context, salesmanID string) (*domain.DashboardStats, error)

	// ClientHistory returns payments sorted by createdAt descending, ties
	// broken by insertion order.
	ClientHistory(ctx context.Context, clientID string) ([]domain.Payment, error)

	// ResolveClientForUser finds the Client linked to a CLIENT-role user by
	// cnic match, else phone match. apperrors.ErrNotFound means the user's
	// ledger is not linked yet.
	ResolveClientForUser(ctx context.Context, user *domain.User) (*domain.Client, error)
}
