package allocation

import (
	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
	"github.com/SscSPs/payment_voucher_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Totals are the figures derived from a form. They are never stored.
type Totals struct {
	TotalAllocated     decimal.Decimal `json:"totalAllocated"`
	NetPaid            decimal.Decimal `json:"netPaid"`
	AppliedFromAdvance decimal.Decimal `json:"appliedFromAdvance"`
	UnallocatedAmount  decimal.Decimal `json:"unallocatedAmount"`
}

// DeriveTotals computes the aggregate payment figures.
// At most one of AppliedFromAdvance and UnallocatedAmount is nonzero, and
// NetPaid == TotalAllocated + UnallocatedAmount - AppliedFromAdvance.
func DeriveTotals(amount, discount decimal.Decimal, allocations map[string]decimal.Decimal) Totals {
	totalAllocated := accounting.SumAmounts(allocations)
	netPaid := amount.Sub(discount)
	return Totals{
		TotalAllocated:     totalAllocated,
		NetPaid:            netPaid,
		AppliedFromAdvance: accounting.FloorAtZero(totalAllocated.Sub(netPaid)),
		UnallocatedAmount:  accounting.FloorAtZero(netPaid.Sub(totalAllocated)),
	}
}

// TotalsOf derives the totals of a form.
func TotalsOf(s domain.PaymentFormState) Totals {
	return DeriveTotals(s.Amount, s.Discount, s.Allocations)
}
