package services_test

import (
	"context"

	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock PartyRepository ---
type MockPartyRepository struct {
	mock.Mock
}

func (m *MockPartyRepository) FindUnpaidBills(ctx context.Context, partyID string) ([]domain.Bill, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

func (m *MockPartyRepository) FindPartyBalance(ctx context.Context, partyID string) (*domain.PartyBalance, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PartyBalance), args.Error(1)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.PaymentVoucher, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentVoucher), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByParty(ctx context.Context, partyID string, limit int, nextToken *string) ([]domain.PaymentVoucher, *string, error) {
	args := m.Called(ctx, partyID, limit, nextToken)
	var payments []domain.PaymentVoucher
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.PaymentVoucher)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return payments, next, args.Error(2)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, voucher domain.PaymentVoucher) error {
	args := m.Called(ctx, voucher)
	return args.Error(0)
}

// --- Mock PartyReaderSvc ---
type MockPartyReaderSvc struct {
	mock.Mock
}

func (m *MockPartyReaderSvc) GetOutstanding(ctx context.Context, partyID string) (*domain.PartyOutstanding, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PartyOutstanding), args.Error(1)
}

// --- Mock PaymentWriterSvc ---
type MockPaymentWriterSvc struct {
	mock.Mock
}

func (m *MockPaymentWriterSvc) SubmitPayment(ctx context.Context, submission domain.PaymentSubmission, userID string) (*domain.PaymentVoucher, error) {
	args := m.Called(ctx, submission, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentVoucher), args.Error(1)
}
