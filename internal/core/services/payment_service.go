package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mandikhata/trade_ledger_app/internal/apperrors"
	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	portsrepo "github.com/mandikhata/trade_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/mandikhata/trade_ledger_app/internal/core/ports/services"
	"github.com/mandikhata/trade_ledger_app/internal/dto"
)

// paymentService records payments against a party's ledger. A payment may
// reference the invoice it settles; the invoice id is retained as metadata
// and the ledger credit always flows through the party stream.
type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
	partyRepo   portsrepo.PartyReader
	invoiceRepo portsrepo.InvoiceReader
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, partyRepo portsrepo.PartyReader, invoiceRepo portsrepo.InvoiceReader) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo: paymentRepo,
		partyRepo:   partyRepo,
		invoiceRepo: invoiceRepo,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error) {
	partyID := req.PartyID

	// An invoice-linked payment may omit the party; it is resolved from the
	// invoice so the ledger credit lands on the right stream.
	if req.InvoiceID != nil {
		invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, *req.InvoiceID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve payment invoice %s: %w", *req.InvoiceID, err)
		}
		if partyID == nil {
			partyID = &invoice.PartyID
		} else if *partyID != invoice.PartyID {
			return nil, fmt.Errorf("%w: payment party does not match invoice party", apperrors.ErrValidation)
		}
	}

	if partyID == nil {
		return nil, fmt.Errorf("%w: payment requires a party or an invoice", apperrors.ErrValidation)
	}
	if _, err := s.partyRepo.FindPartyByID(ctx, *partyID); err != nil {
		return nil, fmt.Errorf("failed to resolve payment party %s: %w", *partyID, err)
	}
	if req.Amount.IsNegative() || req.Discount.IsNegative() {
		return nil, fmt.Errorf("%w: payment amount and discount must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		PartyID:     partyID,
		InvoiceID:   req.InvoiceID,
		Amount:      req.Amount,
		Discount:    req.Discount,
		PaymentDate: req.PaymentDate,
		Method:      req.Method,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "failed to save payment", slog.String("party_id", *partyID))
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	s.LogInfo(ctx, "payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("party_id", *partyID),
		slog.String("amount", payment.Amount.String()))
	return &payment, nil
}

func (s *paymentService) ListPaymentsByParty(ctx context.Context, partyID string, from, to *time.Time) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPaymentsByParty(ctx, partyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for party %s: %w", partyID, err)
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, paymentID string) error {
	if _, err := s.paymentRepo.FindPaymentByID(ctx, paymentID); err != nil {
		return fmt.Errorf("failed to find payment %s for deletion: %w", paymentID, err)
	}
	if err := s.paymentRepo.DeletePayment(ctx, paymentID); err != nil {
		return fmt.Errorf("failed to delete payment %s: %w", paymentID, err)
	}
	s.LogInfo(ctx, "payment deleted", slog.String("payment_id", paymentID))
	return nil
}
