package allocation

import (
	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BeginPartyLoad marks the start of a fetch for partyID and returns the sequence
// number the response must present. The current bills stay on the form until
// the response is applied.
func BeginPartyLoad(s domain.PaymentFormState, partyID string) (domain.PaymentFormState, uint64) {
	next := clone(s)
	next.PartyRequestSeq++
	next.PendingPartyID = partyID
	return next, next.PartyRequestSeq
}

// ApplyPartyLoad replaces the whole form with a freshly fetched party, provided
// seq is still the latest request. Selection, allocations and amounts are reset.
// It reports false, leaving s untouched, for a superseded response.
func ApplyPartyLoad(s domain.PaymentFormState, seq uint64, outstanding domain.PartyOutstanding) (domain.PaymentFormState, bool) {
	if seq != s.PartyRequestSeq {
		return s, false
	}
	return domain.PaymentFormState{
		PaymentType:     s.PaymentType,
		PartyID:         outstanding.PartyID,
		Bills:           append([]domain.Bill(nil), outstanding.Bills...),
		Balance:         outstanding.Balance,
		Allocations:     map[string]decimal.Decimal{},
		Amount:          decimal.Zero,
		Discount:        decimal.Zero,
		PartyRequestSeq: s.PartyRequestSeq,
	}, true
}

// ApplyRefresh installs a refetched bill list for the current party, provided seq
// is still the latest request and the party did not change in between. Selection,
// allocations and amount are reset; discount and the advance flag are kept.
func ApplyRefresh(s domain.PaymentFormState, seq uint64, outstanding domain.PartyOutstanding) (domain.PaymentFormState, bool) {
	if seq != s.PartyRequestSeq || outstanding.PartyID != s.PartyID {
		return s, false
	}
	next := clone(s)
	next.Bills = append([]domain.Bill(nil), outstanding.Bills...)
	next.Balance = outstanding.Balance
	next.Allocations = map[string]decimal.Decimal{}
	next.Amount = decimal.Zero
	next.PendingPartyID = ""
	return next, true
}
