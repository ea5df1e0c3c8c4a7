package allocation

import (
	"time"

	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
	"github.com/samber/lo"
)

// Header carries the voucher fields that are not derived from the form.
type Header struct {
	PaymentDate      time.Time
	PaymentAccountID string
	PaymentMethod    domain.PaymentMethod
	Cheque           *domain.ChequeDetails
	Remarks          string
	MessageLineID    *string
}

// BuildSubmissionPayload turns a form into the write payload. Only selected bills
// produce allocation lines, in bill list order, and lines that are not strictly
// positive are dropped. Cheque details survive only for cheque payments.
func BuildSubmissionPayload(s domain.PaymentFormState, h Header) domain.PaymentSubmission {
	lines := lo.FilterMap(s.Bills, func(b domain.Bill, _ int) (domain.AllocationLine, bool) {
		amount, ok := s.Allocations[b.BillID]
		if !ok || !amount.IsPositive() {
			return domain.AllocationLine{}, false
		}
		return domain.AllocationLine{BillID: b.BillID, BillType: b.BillType, Amount: amount}, true
	})

	var cheque *domain.ChequeDetails
	if h.PaymentMethod == domain.PaymentMethodCheque && h.Cheque != nil {
		c := *h.Cheque
		cheque = &c
	}

	totals := TotalsOf(s)
	return domain.PaymentSubmission{
		PaymentDate:        h.PaymentDate,
		PartyAccountID:     s.PartyID,
		PaymentAccountID:   h.PaymentAccountID,
		Amount:             s.Amount,
		Discount:           s.Discount,
		NetAmount:          totals.NetPaid,
		PaymentType:        s.PaymentType,
		PaymentMethod:      h.PaymentMethod,
		Cheque:             cheque,
		Remarks:            h.Remarks,
		MessageLineID:      h.MessageLineID,
		Allocations:        lines,
		AppliedFromAdvance: totals.AppliedFromAdvance,
		UnallocatedAmount:  totals.UnallocatedAmount,
	}
}
