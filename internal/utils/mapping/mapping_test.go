package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
	"github.com/SscSPs/payment_voucher_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestToDomainBill_RemainingAmount(t *testing.T) {
	bill := ToDomainBill(models.Bill{BillID: "b1", BillType: "SALE", NetTotal: d("450"), PaidAmount: d("150")})
	assert.True(t, d("300").Equal(bill.RemainingAmount))
	assert.Equal(t, domain.BillTypeSale, bill.BillType)

	overpaid := ToDomainBill(models.Bill{NetTotal: d("100"), PaidAmount: d("120")})
	assert.True(t, overpaid.RemainingAmount.IsZero())
}

func TestToDomainPartyBalance_Orientation(t *testing.T) {
	credit := ToDomainPartyBalance(models.Party{PartyID: "p", Balance: d("-800"), AdvanceBalance: d("25")})
	assert.Equal(t, domain.OrientationCredit, credit.Orientation)
	assert.True(t, d("800").Equal(credit.CurrentBalance))
	assert.True(t, d("25").Equal(credit.AdvanceAmount))

	debit := ToDomainPartyBalance(models.Party{Balance: d("40")})
	assert.Equal(t, domain.OrientationDebit, debit.Orientation)
}

func TestPaymentMapping_Cheque(t *testing.T) {
	chequeDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	voucher := domain.PaymentVoucher{
		PaymentID: "pay-1",
		PaymentSubmission: domain.PaymentSubmission{
			PartyAccountID: "party-1",
			PaymentMethod:  domain.PaymentMethodCheque,
			Cheque:         &domain.ChequeDetails{ChequeNo: "000123", ChequeDate: chequeDate},
			Allocations:    []domain.AllocationLine{{BillID: "b1", BillType: domain.BillTypePurchase, Amount: d("10")}},
		},
	}

	row := ToModelPayment(voucher)
	require.NotNil(t, row.ChequeNo)
	assert.Equal(t, "000123", *row.ChequeNo)
	assert.Equal(t, "party-1", row.PartyID)

	lines := ToModelAllocations(voucher, chequeDate)
	require.Len(t, lines, 1)
	assert.NotEmpty(t, lines[0].AllocationID)
	assert.Equal(t, "pay-1", lines[0].PaymentID)

	back := ToDomainPayment(row, lines)
	require.NotNil(t, back.Cheque)
	assert.Equal(t, voucher.Cheque.ChequeNo, back.Cheque.ChequeNo)
	assert.Equal(t, voucher.Allocations, back.Allocations)
}

func TestToDomainPayment_NoCheque(t *testing.T) {
	back := ToDomainPayment(models.Payment{PaymentMethod: "CASH"}, nil)

	assert.Nil(t, back.Cheque)
	assert.NotNil(t, back.Allocations)
	assert.Empty(t, back.Allocations)
}
