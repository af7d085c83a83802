package services

import (
	"context"
	"time"

	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	"github.com/mandikhata/trade_ledger_app/internal/dto"
)

// PaymentSvcFacade defines payment recording operations.
type PaymentSvcFacade interface {
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error)
	ListPaymentsByParty(ctx context.Context, partyID string, from, to *time.Time) ([]domain.Payment, error)
	DeletePayment(ctx context.Context, paymentID string) error
}

// AdjustmentSvcFacade defines manual ledger adjustment operations.
type AdjustmentSvcFacade interface {
	CreateAdjustment(ctx context.Context, req dto.CreateAdjustmentRequest, creatorUserID string) (*domain.Adjustment, error)
	ListAdjustmentsByParty(ctx context.Context, partyID string, from, to *time.Time) ([]domain.Adjustment, error)
	DeleteAdjustment(ctx context.Context, adjustmentID string) error
}
