package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	portsrepo "github.com/mandikhata/trade_ledger_app/internal/core/ports/repositories"
)

// --- Mock PartyRepository ---
type MockPartyRepository struct {
	mock.Mock
}

var _ portsrepo.PartyRepositoryFacade = (*MockPartyRepository)(nil)

func (m *MockPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) ListParties(ctx context.Context, partyType domain.PartyType) ([]domain.Party, error) {
	args := m.Called(ctx, partyType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) DeactivateParty(ctx context.Context, partyID string, updatedBy string) error {
	args := m.Called(ctx, partyID, updatedBy)
	return args.Error(0)
}

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoicesByParty(ctx context.Context, partyID string, from, to *time.Time) ([]domain.Invoice, error) {
	args := m.Called(ctx, partyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) CountInvoicesByStatus(ctx context.Context, statuses ...domain.InvoiceStatus) (int, error) {
	args := m.Called(ctx, statuses)
	return args.Int(0), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

var _ portsrepo.PaymentRepositoryFacade = (*MockPaymentRepository)(nil)

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByParty(ctx context.Context, partyID string, from, to *time.Time) ([]domain.Payment, error) {
	args := m.Called(ctx, partyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

// --- Mock AdjustmentRepository ---
type MockAdjustmentRepository struct {
	mock.Mock
}

var _ portsrepo.AdjustmentRepositoryFacade = (*MockAdjustmentRepository)(nil)

func (m *MockAdjustmentRepository) FindAdjustmentByID(ctx context.Context, adjustmentID string) (*domain.Adjustment, error) {
	args := m.Called(ctx, adjustmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Adjustment), args.Error(1)
}

func (m *MockAdjustmentRepository) ListAdjustmentsByParty(ctx context.Context, partyID string, from, to *time.Time) ([]domain.Adjustment, error) {
	args := m.Called(ctx, partyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Adjustment), args.Error(1)
}

func (m *MockAdjustmentRepository) SaveAdjustment(ctx context.Context, adjustment domain.Adjustment) error {
	args := m.Called(ctx, adjustment)
	return args.Error(0)
}

func (m *MockAdjustmentRepository) DeleteAdjustment(ctx context.Context, adjustmentID string) error {
	args := m.Called(ctx, adjustmentID)
	return args.Error(0)
}

// --- Mock PurchaseRepository ---
type MockPurchaseRepository struct {
	mock.Mock
}

var _ portsrepo.PurchaseReader = (*MockPurchaseRepository)(nil)

func (m *MockPurchaseRepository) ListPurchasesByVendor(ctx context.Context, vendorID string, from, to *time.Time) ([]domain.PurchaseRecord, error) {
	args := m.Called(ctx, vendorID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseRecord), args.Error(1)
}

// --- Mock StatementRepository ---
type MockStatementRepository struct {
	mock.Mock
}

var _ portsrepo.StatementRepositoryFacade = (*MockStatementRepository)(nil)

func (m *MockStatementRepository) SavePeriodStatement(ctx context.Context, statement domain.PeriodStatement) error {
	args := m.Called(ctx, statement)
	return args.Error(0)
}

func (m *MockStatementRepository) UpdatePeriodStatement(ctx context.Context, statement domain.PeriodStatement) error {
	args := m.Called(ctx, statement)
	return args.Error(0)
}

func (m *MockStatementRepository) FindPeriodStatementByID(ctx context.Context, statementID string) (*domain.PeriodStatement, error) {
	args := m.Called(ctx, statementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodStatement), args.Error(1)
}

func (m *MockStatementRepository) ListPeriodStatementsByParty(ctx context.Context, partyID string) ([]domain.PeriodStatement, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PeriodStatement), args.Error(1)
}

func (m *MockStatementRepository) DeletePeriodStatement(ctx context.Context, statementID string) error {
	args := m.Called(ctx, statementID)
	return args.Error(0)
}

func (m *MockStatementRepository) SaveVendorStatement(ctx context.Context, statement domain.VendorStatement) error {
	args := m.Called(ctx, statement)
	return args.Error(0)
}

func (m *MockStatementRepository) UpdateVendorStatement(ctx context.Context, statement domain.VendorStatement) error {
	args := m.Called(ctx, statement)
	return args.Error(0)
}

func (m *MockStatementRepository) FindVendorStatementByID(ctx context.Context, statementID string) (*domain.VendorStatement, error) {
	args := m.Called(ctx, statementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VendorStatement), args.Error(1)
}

func (m *MockStatementRepository) ListVendorStatementsByVendor(ctx context.Context, vendorID string) ([]domain.VendorStatement, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VendorStatement), args.Error(1)
}

func (m *MockStatementRepository) DeleteVendorStatement(ctx context.Context, statementID string) error {
	args := m.Called(ctx, statementID)
	return args.Error(0)
}
