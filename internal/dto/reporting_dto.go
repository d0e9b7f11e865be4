package dto

import (
	"github.com/fieldkhata/khata_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardStatsResponse is the dashboard header payload.
type DashboardStatsResponse struct {
	ClientCount    int64           `json:"clientCount"`
	TotalPending   decimal.Decimal `json:"totalPending"`
	PaymentCount   int64           `json:"paymentCount"`
	RecoveredTotal decimal.Decimal `json:"recoveredTotal"`
	WindowDays     int             `json:"windowDays"`
}

// ToDashboardStatsResponse converts domain DashboardStats to its DTO
func ToDashboardStatsResponse(s *domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		ClientCount:    s.ClientCount,
		TotalPending:   s.TotalPending,
		PaymentCount:   s.PaymentCount,
		RecoveredTotal: s.RecoveredTotal,
		WindowDays:     s.WindowDays,
	}
}

// MyLedgerResponse is the CLIENT-role dashboard: the resolved khata plus its
// history. Client is null when the ledger is not linked yet.
type MyLedgerResponse struct {
	Linked   bool              `json:"linked"`
	Client   *ClientResponse   `json:"client,omitempty"`
	Payments []PaymentResponse `json:"payments,omitempty"`
}
