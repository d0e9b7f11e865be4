package domain

import (
	"github.com/shopspring/decimal"
)

// Client is a shop ledger ("khata") owned by a salesman. Clients are never
// deleted; they are the historical record the pending balance hangs off.
//
// TotalPending always equals the RemainingAmount of the client's most recent
// payment, or zero if no payment exists. Only the payment repository's
// transactional write path may change it.
type Client struct {
	ClientID     string          `json:"clientID"`   // Primary Key (UUID)
	SalesmanID   string          `json:"salesmanID"` // FK -> users.user_id (role SALESMAN)
	ShopName     string          `json:"shopName"`
	Phone        string          `json:"phone"`
	CNIC         string          `json:"cnic,omitempty"` // Optional; used for the weak CLIENT-user link
	TotalPending decimal.Decimal `json:"totalPending"`
	AuditFields
}
