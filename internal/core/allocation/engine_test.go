package allocation_test

import (
	"testing"
	"time"

	"github.com/SscSPs/payment_voucher_app/internal/apperrors"
	"github.com/SscSPs/payment_voucher_app/internal/core/allocation"
	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

// twoBillState is a party with two bills of 500 and 300 outstanding.
func twoBillState(advance string) domain.PaymentFormState {
	s := allocation.NewState(domain.PaymentTypeOutbound)
	s, seq := allocation.BeginPartyLoad(s, "party-1")
	s, _ = allocation.ApplyPartyLoad(s, seq, domain.PartyOutstanding{
		PartyID: "party-1",
		Bills: []domain.Bill{
			{BillID: "1", BillType: domain.BillTypePurchase, InvoiceNo: "INV-1", BillDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), NetTotal: dec("500"), RemainingAmount: dec("500")},
			{BillID: "2", BillType: domain.BillTypePurchase, InvoiceNo: "INV-2", BillDate: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), NetTotal: dec("450"), RemainingAmount: dec("300")},
		},
		Balance: domain.PartyBalance{PartyID: "party-1", CurrentBalance: dec("800"), Orientation: domain.OrientationCredit, AdvanceAmount: dec(advance)},
	})
	return s
}

func TestToggleAll_SelectsEveryBillThenToggleOne(t *testing.T) {
	s := allocation.ToggleAll(twoBillState("0"))

	assert.Equal(t, []string{"1", "2"}, s.Selection())
	assertDecimal(t, "500", s.Allocations["1"])
	assertDecimal(t, "300", s.Allocations["2"])
	assertDecimal(t, "800", s.Amount)

	s = allocation.ToggleBill(s, "1", dec("500"))

	assert.Equal(t, []string{"2"}, s.Selection())
	assert.Len(t, s.Allocations, 1)
	assertDecimal(t, "300", s.Allocations["2"])
	assertDecimal(t, "300", s.Amount)
}

func TestToggleAll_TwiceRestoresOriginal(t *testing.T) {
	original := twoBillState("0")

	s := allocation.ToggleAll(allocation.ToggleAll(original))

	assert.Empty(t, s.Selection())
	assert.Empty(t, s.Allocations)
	assert.True(t, s.Amount.IsZero())
}

func TestToggleAll_PartialSelectionSelectsAll(t *testing.T) {
	s := twoBillState("0")
	s = allocation.ToggleBill(s, "2", dec("300"))

	s = allocation.ToggleAll(s)

	assert.Equal(t, []string{"1", "2"}, s.Selection())
	assertDecimal(t, "800", s.Amount)
}

func TestToggleAll_EmptyBillListClears(t *testing.T) {
	s := allocation.SetAmount(allocation.NewState(domain.PaymentTypeInbound), dec("120"))

	s = allocation.ToggleAll(s)

	assert.Empty(t, s.Allocations)
	assert.True(t, s.Amount.IsZero())
}

func TestToggleAll_AppliesAdvance(t *testing.T) {
	s := allocation.ToggleUseAdvance(twoBillState("200"), true)

	s = allocation.ToggleAll(s)

	assertDecimal(t, "600", s.Amount)
}

func TestToggleBill_TwiceRestoresSelection(t *testing.T) {
	tests := []struct {
		name  string
		start func() domain.PaymentFormState
	}{
		{"from unselected", func() domain.PaymentFormState { return twoBillState("0") }},
		{"from fully selected", func() domain.PaymentFormState { return allocation.ToggleAll(twoBillState("0")) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := tt.start()
			for _, b := range start.Bills {
				s := allocation.ToggleBill(allocation.ToggleBill(start, b.BillID, b.RemainingAmount), b.BillID, b.RemainingAmount)
				assert.Equal(t, start.Selection(), s.Selection())
				assert.Equal(t, start.Allocations, s.Allocations)
			}
		})
	}
}

func TestToggleBill_RoundsAllocationAndAmount(t *testing.T) {
	s := twoBillState("0")

	s = allocation.ToggleBill(s, "x", dec("10.005"))

	assertDecimal(t, "10.01", s.Allocations["x"])
	assertDecimal(t, "10.01", s.Amount)
}

func TestToggleBill_AdvanceFloorsAmountAtZero(t *testing.T) {
	s := allocation.ToggleUseAdvance(twoBillState("1000"), true)

	s = allocation.ToggleBill(s, "2", dec("300"))

	assert.True(t, s.Amount.IsZero())
	assertDecimal(t, "300", s.Allocations["2"])
}

func TestToggleBill_DoesNotMutateInput(t *testing.T) {
	start := twoBillState("0")

	_ = allocation.ToggleBill(start, "1", dec("500"))

	assert.Empty(t, start.Allocations)
	assert.True(t, start.Amount.IsZero())
}

func TestSetAllocation(t *testing.T) {
	selected := allocation.ToggleAll(twoBillState("0"))

	tests := []struct {
		name        string
		state       domain.PaymentFormState
		billID      string
		raw         string
		want        string
		wantClamped bool
		wantChanged bool
	}{
		{"partial allocation", selected, "1", "120.50", "120.50", false, true},
		{"over-allocation is clamped", selected, "1", "900", "500", true, true},
		{"exactly remaining", selected, "2", "300", "300", false, true},
		{"zero allowed", selected, "2", "0", "0", false, true},
		{"blank counts as zero", selected, "2", "  ", "0", false, true},
		{"negative passes through", selected, "2", "-5", "-5", false, true},
		{"unknown bill is ignored", selected, "nope", "10", "", false, false},
		{"unselected bill is ignored", twoBillState("0"), "1", "10", "", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, clamped, err := allocation.SetAllocation(tt.state, tt.billID, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantClamped, clamped)
			if !tt.wantChanged {
				assert.Equal(t, tt.state, next)
				return
			}
			assertDecimal(t, tt.want, next.Allocations[tt.billID])
			// Amount is left as it was.
			assert.True(t, tt.state.Amount.Equal(next.Amount))
		})
	}
}

func TestSetAllocation_NeverExceedsRemaining(t *testing.T) {
	s := allocation.ToggleAll(twoBillState("0"))
	for _, raw := range []string{"0", "1", "299.99", "300", "300.01", "1e6", "123456789.123"} {
		for _, b := range s.Bills {
			next, _, err := allocation.SetAllocation(s, b.BillID, raw)
			require.NoError(t, err)
			assert.True(t, next.Allocations[b.BillID].LessThanOrEqual(b.RemainingAmount), "bill %s raw %s", b.BillID, raw)
		}
	}
}

func TestSetAllocation_RoundsToCents(t *testing.T) {
	s := allocation.ToggleAll(twoBillState("0"))

	s, clamped, err := allocation.SetAllocation(s, "1", "0.004")
	require.NoError(t, err)
	assert.False(t, clamped)
	assert.True(t, s.Allocations["1"].IsZero())

	s, _, err = allocation.SetAllocation(s, "2", "12.345")
	require.NoError(t, err)
	assertDecimal(t, "12.35", s.Allocations["2"])

	totals := allocation.TotalsOf(s)
	assertDecimal(t, "12.35", totals.TotalAllocated)
	assert.GreaterOrEqual(t, totals.TotalAllocated.Exponent(), int32(-2))

	payload := allocation.BuildSubmissionPayload(s, allocation.Header{PaymentMethod: domain.PaymentMethodCash})
	require.Len(t, payload.Allocations, 1)
	assert.Equal(t, "2", payload.Allocations[0].BillID)
	assertDecimal(t, "12.35", payload.Allocations[0].Amount)
}

func TestSetAllocation_NotANumber(t *testing.T) {
	s := allocation.ToggleAll(twoBillState("0"))

	next, _, err := allocation.SetAllocation(s, "1", "abc")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, s, next)
}

func TestToggleUseAdvance_Symmetric(t *testing.T) {
	s := allocation.ToggleAll(twoBillState("200"))
	require.True(t, dec("800").Equal(s.Amount))

	s = allocation.ToggleUseAdvance(s, true)
	assertDecimal(t, "600", s.Amount)
	assert.True(t, s.UseAdvance)

	s = allocation.ToggleUseAdvance(s, false)
	assertDecimal(t, "800", s.Amount)
	assert.False(t, s.UseAdvance)
}

// Switching the advance on floors Amount at zero, so switching it back off adds
// the full advance to zero rather than restoring the original amount.
func TestToggleUseAdvance_FloorIsNotInvertible(t *testing.T) {
	s := allocation.SetAmount(twoBillState("200"), dec("50"))

	s = allocation.ToggleUseAdvance(s, true)
	assert.True(t, s.Amount.IsZero())

	s = allocation.ToggleUseAdvance(s, false)
	assertDecimal(t, "200", s.Amount)
}

func TestToggleUseAdvance_SameValueIsNoop(t *testing.T) {
	s := allocation.SetAmount(twoBillState("200"), dec("800"))

	assert.Equal(t, s, allocation.ToggleUseAdvance(s, false))

	on := allocation.ToggleUseAdvance(s, true)
	assert.Equal(t, on, allocation.ToggleUseAdvance(on, true))
}

func TestSetAmountAndDiscount(t *testing.T) {
	s := allocation.SetDiscount(allocation.SetAmount(twoBillState("0"), dec("1000")), dec("50"))

	assertDecimal(t, "1000", s.Amount)
	assertDecimal(t, "50", s.Discount)
}
