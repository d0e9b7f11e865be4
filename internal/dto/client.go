package dto

import (
	"time"

	"github.com/fieldkhata/khata_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateClientRequest opens a new shop khata.
type CreateClientRequest struct {
	ShopName string `json:"shopName" binding:"required"`
	Phone    string `json:"phone" binding:"required,pkphone"`
	CNIC     string `json:"cnic" binding:"omitempty,cnic"`
}

// ClientResponse is the public view of a client ledger.
type ClientResponse struct {
	ClientID     string          `json:"clientID"`
	SalesmanID   string          `json:"salesmanID"`
	ShopName     string          `json:"shopName"`
	Phone        string          `json:"phone"`
	CNIC         string          `json:"cnic,omitempty"`
	TotalPending decimal.Decimal `json:"totalPending"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ListClientsParams defines query parameters for listing clients.
type ListClientsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListClientsResponse wraps the list of clients.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToClientResponse converts a domain Client to a ClientResponse DTO
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:     c.ClientID,
		SalesmanID:   c.SalesmanID,
		ShopName:     c.ShopName,
		Phone:        c.Phone,
		CNIC:         c.CNIC,
		TotalPending: c.TotalPending,
		CreatedAt:    c.CreatedAt,
	}
}

// ToListClientsResponse converts a slice of domain Clients to a ListClientsResponse DTO
func ToListClientsResponse(cs []domain.Client) ListClientsResponse {
	out := make([]ClientResponse, len(cs))
	for i := range cs {
		out[i] = ToClientResponse(&cs[i])
	}
	return ListClientsResponse{Clients: out}
}
