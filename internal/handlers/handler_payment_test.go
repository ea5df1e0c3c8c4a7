package handlers_test

import (
	"encoding/json"
	"net/http"

	"github.com/SscSPs/payment_voucher_app/internal/apperrors"
	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
	"github.com/SscSPs/payment_voucher_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *SettlementHandlerTestSuite) TestGetOutstanding() {
	outstanding := &domain.PartyOutstanding{
		PartyID: "party-1",
		Bills:   []domain.Bill{{BillID: "b1", BillType: domain.BillTypePurchase, RemainingAmount: decimal.NewFromInt(40)}},
		Balance: domain.PartyBalance{
			PartyID:        "party-1",
			CurrentBalance: decimal.NewFromInt(40),
			Orientation:    domain.OrientationCredit,
			AdvanceAmount:  decimal.NewFromInt(5),
		},
	}
	suite.mockPaymentService.On("GetOutstanding", mock.Anything, "party-1").Return(outstanding, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/parties/party-1/outstanding", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.OutstandingResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.OrientationCredit, resp.Orientation)
	suite.Len(resp.Bills, 1)
}

func (suite *SettlementHandlerTestSuite) TestGetOutstanding_NotFound() {
	suite.mockPaymentService.On("GetOutstanding", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/parties/ghost/outstanding", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *SettlementHandlerTestSuite) TestListPartyPayments() {
	next := "token-2"
	suite.mockPaymentService.On("ListPartyPayments", mock.Anything, "party-1", 5, (*string)(nil)).
		Return([]domain.PaymentVoucher{{PaymentID: "pay-1"}}, &next, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/parties/party-1/payments?limit=5", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListPaymentsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Payments, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)
}

func (suite *SettlementHandlerTestSuite) TestListPartyPayments_LimitTooLarge() {
	w := suite.do(http.MethodGet, "/api/v1/parties/party-1/payments?limit=500", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPaymentService.AssertNotCalled(suite.T(), "ListPartyPayments")
}

func (suite *SettlementHandlerTestSuite) TestGetPayment() {
	suite.mockPaymentService.On("GetPayment", mock.Anything, "pay-1").
		Return(&domain.PaymentVoucher{PaymentID: "pay-1"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/payments/pay-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PaymentResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("pay-1", resp.PaymentID)
	suite.NotNil(resp.Allocations)
}
