package repositories

import (
	"context"
	"time"

	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByParty retrieves a party's payments, optionally bounded
	// to from <= payment_date <= to (inclusive).
	ListPaymentsByParty(ctx context.Context, partyID string, from, to *time.Time) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	SavePayment(ctx context.Context, payment domain.Payment) error
	DeletePayment(ctx context.Context, paymentID string) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
