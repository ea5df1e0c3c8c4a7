package services

import (
	"context"

	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
)

// PartyReaderSvc defines read operations for a party's outstanding position
type PartyReaderSvc interface {
	// GetOutstanding returns the party's unpaid bills and current balance.
	GetOutstanding(ctx context.Context, partyID string) (*domain.PartyOutstanding, error)
}

// PaymentReaderSvc defines read operations for payment vouchers
type PaymentReaderSvc interface {
	GetPayment(ctx context.Context, paymentID string) (*domain.PaymentVoucher, error)
	ListPartyPayments(ctx context.Context, partyID string, limit int, nextToken *string) ([]domain.PaymentVoucher, *string, error)
}

// PaymentWriterSvc defines write operations for payment vouchers
type PaymentWriterSvc interface {
	// SubmitPayment validates and persists a submission payload.
	// Invalid payloads are rejected with apperrors.ErrSubmissionRejected.
	SubmitPayment(ctx context.Context, submission domain.PaymentSubmission, userID string) (*domain.PaymentVoucher, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PartyReaderSvc
	PaymentReaderSvc
	PaymentWriterSvc
}
