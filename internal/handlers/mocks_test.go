package handlers_test

import (
	"context"

	"github.com/SscSPs/payment_voucher_app/internal/core/allocation"
	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
	portssvc "github.com/SscSPs/payment_voucher_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock SettlementService ---
type MockSettlementService struct {
	mock.Mock
}

func (m *MockSettlementService) session(args mock.Arguments) (*domain.SettlementSession, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SettlementSession), args.Error(1)
}

func (m *MockSettlementService) CreateSession(ctx context.Context, userID string, paymentType domain.PaymentType) (*domain.SettlementSession, error) {
	return m.session(m.Called(ctx, userID, paymentType))
}
func (m *MockSettlementService) GetSession(ctx context.Context, sessionID, userID string) (*domain.SettlementSession, error) {
	return m.session(m.Called(ctx, sessionID, userID))
}
func (m *MockSettlementService) DeleteSession(ctx context.Context, sessionID, userID string) error {
	return m.Called(ctx, sessionID, userID).Error(0)
}
func (m *MockSettlementService) SelectParty(ctx context.Context, sessionID, userID, partyID string) (*domain.SettlementSession, error) {
	return m.session(m.Called(ctx, sessionID, userID, partyID))
}
func (m *MockSettlementService) RefreshBills(ctx context.Context, sessionID, userID string) (*domain.SettlementSession, error) {
	return m.session(m.Called(ctx, sessionID, userID))
}
func (m *MockSettlementService) ToggleBill(ctx context.Context, sessionID, userID, billID string) (*domain.SettlementSession, error) {
	return m.session(m.Called(ctx, sessionID, userID, billID))
}
func (m *MockSettlementService) ToggleAll(ctx context.Context, sessionID, userID string) (*domain.SettlementSession, error) {
	return m.session(m.Called(ctx, sessionID, userID))
}
func (m *MockSettlementService) SetAllocation(ctx context.Context, sessionID, userID, billID, raw string) (*domain.SettlementSession, bool, error) {
	args := m.Called(ctx, sessionID, userID, billID, raw)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.SettlementSession), args.Bool(1), args.Error(2)
}
func (m *MockSettlementService) SetUseAdvance(ctx context.Context, sessionID, userID string, useAdvance bool) (*domain.SettlementSession, error) {
	return m.session(m.Called(ctx, sessionID, userID, useAdvance))
}
func (m *MockSettlementService) SetAmounts(ctx context.Context, sessionID, userID string, amount, discount *decimal.Decimal) (*domain.SettlementSession, error) {
	return m.session(m.Called(ctx, sessionID, userID, amount, discount))
}
func (m *MockSettlementService) Submit(ctx context.Context, sessionID, userID string, header allocation.Header) (*domain.PaymentVoucher, error) {
	args := m.Called(ctx, sessionID, userID, header)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentVoucher), args.Error(1)
}

var _ portssvc.SettlementSvcFacade = (*MockSettlementService)(nil)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) GetOutstanding(ctx context.Context, partyID string) (*domain.PartyOutstanding, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PartyOutstanding), args.Error(1)
}
func (m *MockPaymentService) GetPayment(ctx context.Context, paymentID string) (*domain.PaymentVoucher, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentVoucher), args.Error(1)
}
func (m *MockPaymentService) ListPartyPayments(ctx context.Context, partyID string, limit int, nextToken *string) ([]domain.PaymentVoucher, *string, error) {
	args := m.Called(ctx, partyID, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.PaymentVoucher), next, args.Error(2)
}
func (m *MockPaymentService) SubmitPayment(ctx context.Context, submission domain.PaymentSubmission, userID string) (*domain.PaymentVoucher, error) {
	args := m.Called(ctx, submission, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentVoucher), args.Error(1)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)
