package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fieldkhata/khata_backend/internal/apperrors"
	"github.com/fieldkhata/khata_backend/internal/core/domain"
	portsrepo "github.com/fieldkhata/khata_backend/internal/core/ports/repositories"
	portssvc "github.com/fieldkhata/khata_backend/internal/core/ports/services"
	"github.com/fieldkhata/khata_backend/internal/platform/config"
)

// reportingService derives dashboard views from the ledger. Everything here
// is read-only; the numbers are recomputed per request rather than cached.
type reportingService struct {
	cfg         *config.Config
	clientRepo  portsrepo.ClientRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(cfg *config.Config, clientRepo portsrepo.ClientRepositoryFacade, paymentRepo portsrepo.PaymentRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		cfg:         cfg,
		clientRepo:  clientRepo,
		paymentRepo: paymentRepo,
	}
}

// Ensure reportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// DashboardStats aggregates the book for one salesman, or the whole book when
// salesmanID is empty (company admin view).
func (s *reportingService) DashboardStats(ctx context.Context, salesmanID string) (*domain.DashboardStats, error) {
	clientCount, err := s.clientRepo.CountClients(ctx, salesmanID)
	if err != nil {
		return nil, fmt.Errorf("failed to count clients for dashboard: %w", err)
	}

	totalPending, err := s.clientRepo.SumTotalPending(ctx, salesmanID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum pending balances for dashboard: %w", err)
	}

	windowDays := s.cfg.DashboardWindowDays
	since := time.Now().UTC().AddDate(0, 0, -windowDays)
	paymentCount, recovered, err := s.paymentRepo.PaymentStatsSince(ctx, salesmanID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate payment stats for dashboard: %w", err)
	}

	return &domain.DashboardStats{
		ClientCount:    clientCount,
		TotalPending:   totalPending,
		PaymentCount:   paymentCount,
		RecoveredTotal: recovered,
		WindowDays:     windowDays,
	}, nil
}

func (s *reportingService) ClientHistory(ctx context.Context, clientID string) ([]domain.Payment, error) {
	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		return nil, fmt.Errorf("failed to verify client %s: %w", clientID, err)
	}
	payments, err := s.paymentRepo.FindPaymentsByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history for client %s: %w", clientID, err)
	}
	return payments, nil
}

// ResolveClientForUser links a CLIENT-role user to a khata at read time. CNIC
// is the stronger identifier so it wins; phone is the fallback. ErrNotFound
// means no khata references this person yet.
func (s *reportingService) ResolveClientForUser(ctx context.Context, user *domain.User) (*domain.Client, error) {
	if user.CNIC != "" {
		client, err := s.clientRepo.FindClientByCNIC(ctx, user.CNIC)
		if err == nil {
			return client, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to resolve client by cnic: %w", err)
		}
	}

	if user.Phone != "" {
		client, err := s.clientRepo.FindClientByPhone(ctx, user.Phone)
		if err == nil {
			return client, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to resolve client by phone: %w", err)
		}
	}

	return nil, apperrors.ErrNotFound
}
