package repositories

import (
	"context"

	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
)

// PaymentReader defines read operations for payment vouchers
type PaymentReader interface {
	// FindPaymentByID retrieves a voucher and its allocation lines.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.PaymentVoucher, error)

	// ListPaymentsByParty retrieves a page of vouchers for a party, newest first.
	ListPaymentsByParty(ctx context.Context, partyID string, limit int, nextToken *string) ([]domain.PaymentVoucher, *string, error)
}

// PaymentWriter defines write operations for payment vouchers
type PaymentWriter interface {
	// SavePayment persists a voucher, its allocation lines, and the resulting
	// bill and party balance changes atomically.
	SavePayment(ctx context.Context, voucher domain.PaymentVoucher) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// PaymentRepositoryWithTx extends PaymentRepositoryFacade with transaction capabilities
type PaymentRepositoryWithTx interface {
	PaymentRepositoryFacade
	TransactionManager
}
