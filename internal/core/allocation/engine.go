// Package allocation holds the bill allocation and settlement calculator behind a
// payment voucher form. Every function is a pure transition: it takes a
// domain.PaymentFormState and returns a new one without touching its input.
package allocation

import (
	"fmt"
	"strings"

	"github.com/SscSPs/payment_voucher_app/internal/apperrors"
	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
	"github.com/SscSPs/payment_voucher_app/internal/utils/accounting"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// NewState returns an empty form for the given payment direction.
func NewState(paymentType domain.PaymentType) domain.PaymentFormState {
	return domain.PaymentFormState{
		PaymentType: paymentType,
		Allocations: map[string]decimal.Decimal{},
	}
}

func clone(s domain.PaymentFormState) domain.PaymentFormState {
	return s.Clone()
}

// amountFromAllocations is the tendered amount implied by the allocations:
// their sum, less the party's advance when it is being used, floored at zero.
func amountFromAllocations(s domain.PaymentFormState) decimal.Decimal {
	amount := accounting.SumAmounts(s.Allocations)
	if s.UseAdvance {
		amount = amount.Sub(s.Balance.AdvanceAmount)
	}
	return accounting.RoundMoney(accounting.FloorAtZero(amount))
}

// ToggleBill deselects billID if it is selected, otherwise selects it with an
// allocation of its full remaining amount. Amount is recomputed from the allocations.
func ToggleBill(s domain.PaymentFormState, billID string, remaining decimal.Decimal) domain.PaymentFormState {
	next := clone(s)
	if next.IsSelected(billID) {
		delete(next.Allocations, billID)
	} else {
		next.Allocations[billID] = accounting.RoundMoney(remaining)
	}
	next.Amount = amountFromAllocations(next)
	return next
}

// ToggleAll clears everything when every bill is already selected, otherwise
// selects every bill at its full remaining amount. An empty bill list counts as
// fully selected.
func ToggleAll(s domain.PaymentFormState) domain.PaymentFormState {
	next := clone(s)
	allSelected := lo.EveryBy(next.Bills, func(b domain.Bill) bool {
		return next.IsSelected(b.BillID)
	})
	if allSelected {
		next.Allocations = map[string]decimal.Decimal{}
		next.Amount = decimal.Zero
		return next
	}

	next.Allocations = make(map[string]decimal.Decimal, len(next.Bills))
	for _, b := range next.Bills {
		next.Allocations[b.BillID] = accounting.RoundMoney(b.RemainingAmount)
	}
	next.Amount = amountFromAllocations(next)
	return next
}

// SetAllocation overrides the allocation of a selected bill with raw, rounded to
// cents and clamped to the bill's remaining amount. The returned flag reports whether clamping happened.
// Unknown or unselected bills are left alone. Amount is not recomputed; after a
// manual edit the tendered amount and the allocated total move independently.
func SetAllocation(s domain.PaymentFormState, billID string, raw string) (domain.PaymentFormState, bool, error) {
	bill, ok := s.FindBill(billID)
	if !ok || !s.IsSelected(billID) {
		return s, false, nil
	}

	value := decimal.Zero
	if trimmed := strings.TrimSpace(raw); trimmed != "" {
		parsed, err := decimal.NewFromString(trimmed)
		if err != nil {
			return s, false, fmt.Errorf("%w: allocation '%s' is not a number", apperrors.ErrValidation, raw)
		}
		value = accounting.RoundMoney(parsed)
	}

	clamped := value.GreaterThan(bill.RemainingAmount)
	if clamped {
		value = bill.RemainingAmount
	}

	next := clone(s)
	next.Allocations[billID] = value
	return next, clamped, nil
}

// ToggleUseAdvance shifts Amount by the party's advance: down (floored at zero)
// when switching on, up when switching off. Because of the floor, switching on and
// back off does not restore Amount when it was below the advance.
// Setting the flag to its current value changes nothing.
func ToggleUseAdvance(s domain.PaymentFormState, checked bool) domain.PaymentFormState {
	if checked == s.UseAdvance {
		return s
	}
	next := clone(s)
	next.UseAdvance = checked
	advance := next.Balance.AdvanceAmount
	if checked {
		next.Amount = accounting.FloorAtZero(next.Amount.Sub(advance))
	} else {
		next.Amount = next.Amount.Add(advance)
	}
	return next
}

// SetAmount records a tendered amount typed in by the user.
func SetAmount(s domain.PaymentFormState, amount decimal.Decimal) domain.PaymentFormState {
	next := clone(s)
	next.Amount = amount
	return next
}

// SetDiscount records the discount granted on the payment.
func SetDiscount(s domain.PaymentFormState, discount decimal.Decimal) domain.PaymentFormState {
	next := clone(s)
	next.Discount = discount
	return next
}
