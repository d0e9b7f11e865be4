package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Client is the database row shape for a shop ledger.
type Client struct {
	ClientID     string          `db:"client_id"`
	SalesmanID   string          `db:"salesman_id"`
	ShopName     string          `db:"shop_name"`
	Phone        string          `db:"phone"`
	CNIC         sql.NullString  `db:"cnic"`
	TotalPending decimal.Decimal `db:"total_pending"`
	AuditFields
}
