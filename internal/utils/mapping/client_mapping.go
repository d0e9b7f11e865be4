package mapping

import (
	"database/sql"

	"github.com/fieldkhata/khata_backend/internal/core/domain"
	"github.com/fieldkhata/khata_backend/internal/models"
)

// ToModelClient converts a domain Client to a model Client
func ToModelClient(d domain.Client) models.Client {
	m := models.Client{
		ClientID:     d.ClientID,
		SalesmanID:   d.SalesmanID,
		ShopName:     d.ShopName,
		Phone:        d.Phone,
		TotalPending: d.TotalPending,
		AuditFields:  toModelAudit(d.AuditFields),
	}
	if d.CNIC != "" {
		m.CNIC = sql.NullString{String: d.CNIC, Valid: true}
	}
	return m
}

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	d := domain.Client{
		ClientID:     m.ClientID,
		SalesmanID:   m.SalesmanID,
		ShopName:     m.ShopName,
		Phone:        m.Phone,
		TotalPending: m.TotalPending,
		AuditFields:  toDomainAudit(m.AuditFields),
	}
	if m.CNIC.Valid {
		d.CNIC = m.CNIC.String
	}
	return d
}

// ToDomainClientSlice converts a slice of model Clients to a slice of domain Clients
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}
