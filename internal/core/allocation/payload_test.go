package allocation_test

import (
	"testing"
	"time"

	"github.com/SscSPs/payment_voucher_app/internal/core/allocation"
	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSubmissionPayload_DropsNonPositiveLines(t *testing.T) {
	s := allocation.ToggleAll(twoBillState("0"))
	s, _, err := allocation.SetAllocation(s, "2", "0")
	require.NoError(t, err)
	s = allocation.SetAmount(s, dec("500"))

	payload := allocation.BuildSubmissionPayload(s, allocation.Header{
		PaymentDate:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		PaymentAccountID: "bank-1",
		PaymentMethod:    domain.PaymentMethodBank,
	})

	require.Len(t, payload.Allocations, 1)
	assert.Equal(t, "1", payload.Allocations[0].BillID)
	assert.Equal(t, domain.BillTypePurchase, payload.Allocations[0].BillType)
	assertDecimal(t, "500", payload.Allocations[0].Amount)
	assert.Equal(t, "party-1", payload.PartyAccountID)
	assert.Equal(t, domain.PaymentTypeOutbound, payload.PaymentType)
}

func TestBuildSubmissionPayload_NeverEmitsNonPositive(t *testing.T) {
	s := allocation.ToggleAll(twoBillState("0"))
	for _, raw := range []string{"-10", "0", "0.00", "0.01", "250"} {
		for _, b := range s.Bills {
			edited, _, err := allocation.SetAllocation(s, b.BillID, raw)
			require.NoError(t, err)

			payload := allocation.BuildSubmissionPayload(edited, allocation.Header{PaymentMethod: domain.PaymentMethodCash})
			for _, line := range payload.Allocations {
				assert.True(t, line.Amount.IsPositive(), "line %s has amount %s", line.BillID, line.Amount)
			}
		}
	}
}

func TestBuildSubmissionPayload_OnlySelectedBills(t *testing.T) {
	s := allocation.ToggleBill(twoBillState("0"), "2", dec("300"))

	payload := allocation.BuildSubmissionPayload(s, allocation.Header{PaymentMethod: domain.PaymentMethodCash})

	require.Len(t, payload.Allocations, 1)
	assert.Equal(t, "2", payload.Allocations[0].BillID)
}

func TestBuildSubmissionPayload_Totals(t *testing.T) {
	s := allocation.ToggleAll(twoBillState("0"))
	s = allocation.SetDiscount(allocation.SetAmount(s, dec("1000")), dec("50"))

	payload := allocation.BuildSubmissionPayload(s, allocation.Header{PaymentMethod: domain.PaymentMethodCash})

	assertDecimal(t, "1000", payload.Amount)
	assertDecimal(t, "50", payload.Discount)
	assertDecimal(t, "950", payload.NetAmount)
	assertDecimal(t, "150", payload.UnallocatedAmount)
	assert.True(t, payload.AppliedFromAdvance.IsZero())
}

func TestBuildSubmissionPayload_ChequeDetails(t *testing.T) {
	cheque := &domain.ChequeDetails{ChequeNo: "000123", ChequeDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
	s := allocation.ToggleAll(twoBillState("0"))

	byCheque := allocation.BuildSubmissionPayload(s, allocation.Header{PaymentMethod: domain.PaymentMethodCheque, Cheque: cheque})
	require.NotNil(t, byCheque.Cheque)
	assert.Equal(t, "000123", byCheque.Cheque.ChequeNo)
	assert.NotSame(t, cheque, byCheque.Cheque)

	byCash := allocation.BuildSubmissionPayload(s, allocation.Header{PaymentMethod: domain.PaymentMethodCash, Cheque: cheque})
	assert.Nil(t, byCash.Cheque)
}
