package services

import (
	portsrepo "github.com/fieldkhata/khata_backend/internal/core/ports/repositories"
	portssvc "github.com/fieldkhata/khata_backend/internal/core/ports/services"
	"github.com/fieldkhata/khata_backend/internal/platform/config"
)

// NewServiceContainer wires all services with their dependencies.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	userService := NewUserService(repos.UserRepo)
	tokenService := NewTokenService(cfg, userService)
	ledgerService := NewLedgerService(repos.UserRepo, repos.ClientRepo, repos.PaymentRepo)
	reportingService := NewReportingService(cfg, repos.ClientRepo, repos.PaymentRepo)
	receiptService := NewReceiptService(cfg)

	return &portssvc.ServiceContainer{
		User:      userService,
		Token:     tokenService,
		Ledger:    ledgerService,
		Reporting: reportingService,
		Receipt:   receiptService,
	}
}
