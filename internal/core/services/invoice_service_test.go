package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mandikhata/trade_ledger_app/internal/apperrors"
	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	"github.com/mandikhata/trade_ledger_app/internal/core/ledger"
	portssvc "github.com/mandikhata/trade_ledger_app/internal/core/ports/services"
	"github.com/mandikhata/trade_ledger_app/internal/core/services"
	"github.com/mandikhata/trade_ledger_app/internal/dto"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	mockPartyRepo   *MockPartyRepository
	service         portssvc.InvoiceSvcFacade
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.service = services.NewInvoiceService(suite.mockInvoiceRepo, suite.mockPartyRepo)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DerivesItemAndHeaderFigures() {
	ctx := context.Background()
	partyID := uuid.NewString()
	vendorID := uuid.NewString()
	creatorUserID := uuid.NewString()
	invoiceDate := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	req := dto.CreateInvoiceRequest{
		PartyID:      partyID,
		InvoiceDate:  invoiceDate,
		Discount:     decimal.NewFromInt(5),
		OtherCharges: decimal.NewFromInt(10),
		Items: []dto.LineItemRequest{
			{
				VendorID:      vendorID,
				ProductID:     "prod-1",
				ProductName:   "Tomato",
				Quantity:      decimal.NewFromInt(3),
				GrossWeight:   decimal.NewFromInt(12),
				BoxWeight:     decimal.NewFromInt(1),
				BenchesWeight: decimal.RequireFromString("0.5"),
				Rate:          decimal.NewFromInt(10),
			},
		},
		LooseItems: []dto.LooseItemRequest{
			{
				ProductName: "Coriander",
				NetWeight:   decimal.NewFromInt(2),
				WeightUnit:  domain.Kilogram,
				Rate:        decimal.NewFromInt(50),
			},
		},
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(&domain.Party{PartyID: partyID, PartyType: domain.Customer}, nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.Require().Len(invoice.Items, 1)
	suite.Require().Len(invoice.LooseItems, 1)

	// net = 12 - 1 - 0.5 = 10.5, line total = 105, loose total = 100
	suite.True(invoice.Items[0].NetWeight.Equal(decimal.RequireFromString("10.5")))
	suite.True(invoice.Items[0].Total.Equal(decimal.NewFromInt(105)))
	suite.True(invoice.LooseItems[0].Total.Equal(decimal.NewFromInt(100)))
	suite.True(invoice.Subtotal.Equal(decimal.NewFromInt(205)))
	// total = 205 - 5 + 10
	suite.True(invoice.Total.Equal(decimal.NewFromInt(210)))
	suite.Equal(domain.StatusPending, invoice.Status)
	suite.Equal(creatorUserID, invoice.CreatedBy)

	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockPartyRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_NegativeNetWeightRejectsWholeInvoice() {
	ctx := context.Background()
	partyID := uuid.NewString()

	req := dto.CreateInvoiceRequest{
		PartyID:     partyID,
		InvoiceDate: time.Now(),
		Items: []dto.LineItemRequest{
			{
				VendorID:      uuid.NewString(),
				ProductID:     "prod-1",
				ProductName:   "Tomato",
				GrossWeight:   decimal.NewFromInt(5),
				BoxWeight:     decimal.NewFromInt(4),
				BenchesWeight: decimal.NewFromInt(2),
				Rate:          decimal.NewFromInt(10),
			},
		},
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(&domain.Party{PartyID: partyID}, nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, ledger.ErrInvalidLineItem)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_PartyNotFound() {
	ctx := context.Background()
	partyID := uuid.NewString()
	req := dto.CreateInvoiceRequest{PartyID: partyID, InvoiceDate: time.Now()}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(nil, apperrors.ErrNotFound).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_StatusFollowsReceivedAmount() {
	ctx := context.Background()
	partyID := uuid.NewString()

	req := dto.CreateInvoiceRequest{
		PartyID:        partyID,
		InvoiceDate:    time.Now(),
		ReceivedAmount: decimal.NewFromInt(40),
		Items: []dto.LineItemRequest{
			{
				VendorID:    uuid.NewString(),
				ProductID:   "prod-1",
				ProductName: "Tomato",
				GrossWeight: decimal.NewFromInt(10),
				Rate:        decimal.NewFromInt(10),
			},
		},
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(&domain.Party{PartyID: partyID}, nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Status == domain.StatusPartial && inv.Total.Equal(decimal.NewFromInt(100))
	})).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPartial, invoice.Status)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_PreservesOriginAndRecomputes() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	partyID := uuid.NewString()
	originalCreator := uuid.NewString()
	updaterUserID := uuid.NewString()
	createdAt := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	existing := &domain.Invoice{
		InvoiceID: invoiceID,
		PartyID:   partyID,
		AuditFields: domain.AuditFields{
			CreatedAt: createdAt,
			CreatedBy: originalCreator,
		},
	}
	req := dto.UpdateInvoiceRequest{
		InvoiceDate: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		Items: []dto.LineItemRequest{
			{
				VendorID:    uuid.NewString(),
				ProductID:   "prod-1",
				ProductName: "Tomato",
				GrossWeight: decimal.NewFromInt(20),
				Rate:        decimal.NewFromInt(5),
			},
		},
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.InvoiceID == invoiceID &&
			inv.PartyID == partyID &&
			inv.CreatedAt.Equal(createdAt) &&
			inv.CreatedBy == originalCreator &&
			inv.LastUpdatedBy == updaterUserID &&
			inv.Total.Equal(decimal.NewFromInt(100))
	})).Return(nil).Once()

	invoice, err := suite.service.UpdateInvoice(ctx, invoiceID, req, updaterUserID)

	suite.Require().NoError(err)
	suite.Equal(originalCreator, invoice.CreatedBy)
	suite.True(invoice.Subtotal.Equal(decimal.NewFromInt(100)))
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_NotFound() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteInvoice(ctx, invoiceID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "DeleteInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestListInvoicesByParty_NilBecomesEmpty() {
	ctx := context.Background()
	partyID := uuid.NewString()

	suite.mockInvoiceRepo.On("ListInvoicesByParty", ctx, partyID, (*time.Time)(nil), (*time.Time)(nil)).
		Return([]domain.Invoice(nil), nil).Once()

	invoices, err := suite.service.ListInvoicesByParty(ctx, partyID, nil, nil)

	suite.Require().NoError(err)
	suite.NotNil(invoices)
	suite.Empty(invoices)
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
