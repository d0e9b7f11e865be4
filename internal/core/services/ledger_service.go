package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fieldkhata/khata_backend/internal/apperrors"
	"github.com/fieldkhata/khata_backend/internal/core/domain"
	portsrepo "github.com/fieldkhata/khata_backend/internal/core/ports/repositories"
	portssvc "github.com/fieldkhata/khata_backend/internal/core/ports/services"
	"github.com/fieldkhata/khata_backend/internal/dto"
	"github.com/fieldkhata/khata_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

var (
	ErrNotASalesman   = errors.New("owning user is not a salesman")
	ErrNegativeAmount = errors.New("bill and paid amounts must be non-negative")
)

// ledgerService is the single persistence and consistency authority for
// clients and payments. All ledger mutations flow through here; dashboards
// and other read paths go through the reporting service.
type ledgerService struct {
	userRepo    portsrepo.UserRepositoryFacade
	clientRepo  portsrepo.ClientRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(userRepo portsrepo.UserRepositoryFacade, clientRepo portsrepo.ClientRepositoryFacade, paymentRepo portsrepo.PaymentRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		userRepo:    userRepo,
		clientRepo:  clientRepo,
		paymentRepo: paymentRepo,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// CreateClient opens a new khata for a shop under the given salesman. The
// pending balance starts at zero and is only ever moved by RecordPayment.
func (s *ledgerService) CreateClient(ctx context.Context, salesmanID string, req dto.CreateClientRequest) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	owner, err := s.userRepo.FindUserByID(ctx, salesmanID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: salesman %s", apperrors.ErrNotFound, salesmanID)
		}
		return nil, fmt.Errorf("failed to verify salesman: %w", err)
	}
	if owner.Role != domain.RoleSalesman {
		return nil, fmt.Errorf("%w: user %s", ErrNotASalesman, salesmanID)
	}

	if !domain.ValidPhone(req.Phone) {
		return nil, fmt.Errorf("%w: invalid phone number", apperrors.ErrValidation)
	}
	if req.CNIC != "" && !domain.ValidCNIC(req.CNIC) {
		return nil, fmt.Errorf("%w: cnic must be exactly 13 digits", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	client := domain.Client{
		ClientID:     uuid.NewString(),
		SalesmanID:   salesmanID,
		ShopName:     req.ShopName,
		Phone:        req.Phone,
		CNIC:         req.CNIC,
		TotalPending: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     salesmanID,
			LastUpdatedAt: now,
			LastUpdatedBy: salesmanID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		logger.Error("Failed to save client", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	logger.Info("Client created", slog.String("client_id", client.ClientID), slog.String("salesman_id", salesmanID))
	return &client, nil
}

func (s *ledgerService) GetClient(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client %s: %w", clientID, err)
	}
	return client, nil
}

func (s *ledgerService) ListClients(ctx context.Context, salesmanID string, limit int, offset int) ([]domain.Client, error) {
	clients, err := s.clientRepo.FindClients(ctx, salesmanID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// RecordPayment validates and appends a ledger event. The remaining amount is
// recomputed by the repository from the persisted balance under a row lock;
// whatever balance the caller was looking at is treated as advisory UI state.
// On any failure nothing is persisted.
func (s *ledgerService) RecordPayment(ctx context.Context, salesmanID string, req dto.RecordPaymentRequest) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.ValidAmount(req.TotalBill) || !domain.ValidAmount(req.PaidAmount) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNegativeAmount)
	}

	paymentType := domain.PaymentType(req.PaymentType)
	if !paymentType.IsValid() {
		return nil, fmt.Errorf("%w: unknown payment type %q", apperrors.ErrValidation, req.PaymentType)
	}

	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		ClientID:    req.ClientID,
		SalesmanID:  salesmanID,
		TotalBill:   req.TotalBill,
		PaidAmount:  req.PaidAmount,
		PaymentType: paymentType,
		ReceiptURL:  req.ReceiptURL,
		CreatedAt:   time.Now().UTC(),
		CreatedBy:   salesmanID,
	}

	stored, err := s.paymentRepo.RecordPayment(ctx, payment)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to record payment", slog.String("error", err.Error()), slog.String("client_id", req.ClientID))
		}
		return nil, err
	}

	logger.Info("Payment recorded",
		slog.String("payment_id", stored.PaymentID),
		slog.String("client_id", stored.ClientID),
		slog.String("remaining", stored.RemainingAmount.String()),
	)
	return stored, nil
}

// ListPayments returns a client's payments newest first. Ordering is done by
// the repository query (created_at DESC, seq DESC).
func (s *ledgerService) ListPayments(ctx context.Context, clientID string) ([]domain.Payment, error) {
	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		return nil, fmt.Errorf("failed to verify client %s: %w", clientID, err)
	}
	payments, err := s.paymentRepo.FindPaymentsByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for client %s: %w", clientID, err)
	}
	return payments, nil
}
