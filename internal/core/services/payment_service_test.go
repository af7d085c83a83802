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
	portssvc "github.com/mandikhata/trade_ledger_app/internal/core/ports/services"
	"github.com/mandikhata/trade_ledger_app/internal/core/services"
	"github.com/mandikhata/trade_ledger_app/internal/dto"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockPartyRepo   *MockPartyRepository
	mockInvoiceRepo *MockInvoiceRepository
	service         portssvc.PaymentSvcFacade
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.service = services.NewPaymentService(suite.mockPaymentRepo, suite.mockPartyRepo, suite.mockInvoiceRepo)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_AgainstParty() {
	ctx := context.Background()
	partyID := uuid.NewString()
	creatorUserID := uuid.NewString()
	req := dto.CreatePaymentRequest{
		PartyID:     &partyID,
		Amount:      decimal.NewFromInt(500),
		Discount:    decimal.NewFromInt(25),
		PaymentDate: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		Method:      domain.MethodCash,
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(&domain.Party{PartyID: partyID}, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.PartyID != nil && *p.PartyID == partyID &&
			p.InvoiceID == nil &&
			p.Amount.Equal(req.Amount) &&
			p.Discount.Equal(req.Discount) &&
			p.CreatedBy == creatorUserID
	})).Return(nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.True(payment.EffectiveCredit().Equal(decimal.NewFromInt(525)))
	suite.mockPaymentRepo.AssertExpectations(suite.T())
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "FindInvoiceByID", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_ResolvesPartyFromInvoice() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	partyID := uuid.NewString()
	req := dto.CreatePaymentRequest{
		InvoiceID:   &invoiceID,
		Amount:      decimal.NewFromInt(100),
		PaymentDate: time.Now(),
		Method:      domain.MethodUPI,
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(&domain.Invoice{InvoiceID: invoiceID, PartyID: partyID}, nil).Once()
	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(&domain.Party{PartyID: partyID}, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.PartyID != nil && *p.PartyID == partyID &&
			p.InvoiceID != nil && *p.InvoiceID == invoiceID
	})).Return(nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(payment.PartyID)
	suite.Equal(partyID, *payment.PartyID)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_PartyInvoiceMismatch() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	requestedParty := uuid.NewString()
	invoiceParty := uuid.NewString()
	req := dto.CreatePaymentRequest{
		PartyID:     &requestedParty,
		InvoiceID:   &invoiceID,
		Amount:      decimal.NewFromInt(100),
		PaymentDate: time.Now(),
		Method:      domain.MethodBank,
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(&domain.Invoice{InvoiceID: invoiceID, PartyID: invoiceParty}, nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_RequiresPartyOrInvoice() {
	ctx := context.Background()
	req := dto.CreatePaymentRequest{
		Amount:      decimal.NewFromInt(100),
		PaymentDate: time.Now(),
		Method:      domain.MethodCash,
	}

	payment, err := suite.service.CreatePayment(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_NegativeAmountRejected() {
	ctx := context.Background()
	partyID := uuid.NewString()
	req := dto.CreatePaymentRequest{
		PartyID:     &partyID,
		Amount:      decimal.NewFromInt(-10),
		PaymentDate: time.Now(),
		Method:      domain.MethodCash,
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(&domain.Party{PartyID: partyID}, nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestDeletePayment_NotFound() {
	ctx := context.Background()
	paymentID := uuid.NewString()

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, paymentID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeletePayment(ctx, paymentID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "DeletePayment", mock.Anything, mock.Anything)
}

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
