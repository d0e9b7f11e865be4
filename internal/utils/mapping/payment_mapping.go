package mapping

import (
	"database/sql"

	"github.com/fieldkhata/khata_backend/internal/core/domain"
	"github.com/fieldkhata/khata_backend/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	m := models.Payment{
		PaymentID:       d.PaymentID,
		Seq:             d.Seq,
		ClientID:        d.ClientID,
		SalesmanID:      d.SalesmanID,
		TotalBill:       d.TotalBill,
		PaidAmount:      d.PaidAmount,
		RemainingAmount: d.RemainingAmount,
		PaymentType:     string(d.PaymentType),
		CreatedAt:       d.CreatedAt,
		CreatedBy:       d.CreatedBy,
	}
	if d.ReceiptURL != "" {
		m.ReceiptURL = sql.NullString{String: d.ReceiptURL, Valid: true}
	}
	return m
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	d := domain.Payment{
		PaymentID:       m.PaymentID,
		Seq:             m.Seq,
		ClientID:        m.ClientID,
		SalesmanID:      m.SalesmanID,
		TotalBill:       m.TotalBill,
		PaidAmount:      m.PaidAmount,
		RemainingAmount: m.RemainingAmount,
		PaymentType:     domain.PaymentType(m.PaymentType),
		CreatedAt:       m.CreatedAt,
		CreatedBy:       m.CreatedBy,
	}
	if m.ReceiptURL.Valid {
		d.ReceiptURL = m.ReceiptURL.String
	}
	return d
}

// ToDomainPaymentSlice converts a slice of model Payments to a slice of domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
