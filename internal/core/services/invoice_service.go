package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	"github.com/mandikhata/trade_ledger_app/internal/core/ledger"
	portsrepo "github.com/mandikhata/trade_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/mandikhata/trade_ledger_app/internal/core/ports/services"
	"github.com/mandikhata/trade_ledger_app/internal/dto"
)

// invoiceService provides invoice entry operations. All derived fields
// (net weights, line totals, subtotal, total, status) are recomputed on
// every save; the stored invoice is always internally consistent.
type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	partyRepo   portsrepo.PartyReader
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, partyRepo portsrepo.PartyReader) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		partyRepo:   partyRepo,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	if _, err := s.partyRepo.FindPartyByID(ctx, req.PartyID); err != nil {
		return nil, fmt.Errorf("failed to resolve invoice party %s: %w", req.PartyID, err)
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:      uuid.NewString(),
		PartyID:        req.PartyID,
		InvoiceDate:    req.InvoiceDate,
		Discount:       req.Discount,
		OtherCharges:   req.OtherCharges,
		ReceivedAmount: req.ReceivedAmount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.applyItems(&invoice, req.Items, req.LooseItems); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "failed to save invoice", slog.String("party_id", req.PartyID))
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	s.LogInfo(ctx, "invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("party_id", invoice.PartyID),
		slog.String("total", invoice.Total.String()))
	return &invoice, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, updaterUserID string) (*domain.Invoice, error) {
	existing, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice %s for update: %w", invoiceID, err)
	}

	invoice := domain.Invoice{
		InvoiceID:      existing.InvoiceID,
		PartyID:        existing.PartyID,
		InvoiceDate:    req.InvoiceDate,
		Discount:       req.Discount,
		OtherCharges:   req.OtherCharges,
		ReceivedAmount: req.ReceivedAmount,
		AuditFields: domain.AuditFields{
			CreatedAt:     existing.CreatedAt,
			CreatedBy:     existing.CreatedBy,
			LastUpdatedAt: time.Now(),
			LastUpdatedBy: updaterUserID,
		},
	}

	if err := s.applyItems(&invoice, req.Items, req.LooseItems); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.UpdateInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "failed to update invoice", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to update invoice %s: %w", invoiceID, err)
	}
	return &invoice, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice %s: %w", invoiceID, err)
	}
	return invoice, nil
}

func (s *invoiceService) ListInvoicesByParty(ctx context.Context, partyID string, from, to *time.Time) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoicesByParty(ctx, partyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices for party %s: %w", partyID, err)
	}
	if invoices == nil {
		return []domain.Invoice{}, nil
	}
	return invoices, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	if _, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID); err != nil {
		return fmt.Errorf("failed to find invoice %s for deletion: %w", invoiceID, err)
	}
	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	s.LogInfo(ctx, "invoice deleted", slog.String("invoice_id", invoiceID))
	return nil
}

// applyItems derives every computed field from the requested items: net
// weights and line totals, then subtotal, total and settlement status. A
// single invalid line item rejects the whole invoice.
func (s *invoiceService) applyItems(invoice *domain.Invoice, items []dto.LineItemRequest, looseItems []dto.LooseItemRequest) error {
	subtotal := decimal.Zero

	invoice.Items = make([]domain.InvoiceLineItem, 0, len(items))
	for i, item := range items {
		derived, err := ledger.ComputeLineItem(ledger.LineItemInput{
			Quantity:      item.Quantity,
			GrossWeight:   item.GrossWeight,
			BoxWeight:     item.BoxWeight,
			BenchesWeight: item.BenchesWeight,
			Rate:          item.Rate,
		})
		if err != nil {
			return fmt.Errorf("line item %d: %w", i+1, err)
		}
		invoice.Items = append(invoice.Items, domain.InvoiceLineItem{
			LineItemID:    uuid.NewString(),
			InvoiceID:     invoice.InvoiceID,
			VendorID:      item.VendorID,
			ProductID:     item.ProductID,
			ProductName:   item.ProductName,
			Quantity:      item.Quantity,
			GrossWeight:   item.GrossWeight,
			BoxWeight:     item.BoxWeight,
			BenchesWeight: item.BenchesWeight,
			NetWeight:     derived.NetWeight,
			Rate:          item.Rate,
			Total:         derived.Total,
		})
		subtotal = subtotal.Add(derived.Total)
	}

	invoice.LooseItems = make([]domain.LooseLineItem, 0, len(looseItems))
	for _, item := range looseItems {
		total := ledger.ComputeLooseItemTotal(item.NetWeight, item.Rate)
		invoice.LooseItems = append(invoice.LooseItems, domain.LooseLineItem{
			LineItemID:  uuid.NewString(),
			InvoiceID:   invoice.InvoiceID,
			VendorID:    item.VendorID,
			ProductName: item.ProductName,
			NetWeight:   item.NetWeight,
			WeightUnit:  item.WeightUnit,
			Rate:        item.Rate,
			Total:       total,
		})
		subtotal = subtotal.Add(total)
	}

	invoice.Subtotal = subtotal
	invoice.Total = subtotal.Sub(invoice.Discount).Add(invoice.OtherCharges)
	invoice.Status = domain.DeriveStatus(invoice.Total, invoice.ReceivedAmount)
	return nil
}
