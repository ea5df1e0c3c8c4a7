package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentFormState is the complete state of one payment voucher form.
// The selection set is the key set of Allocations, so a bill is selected
// exactly when it has an allocation entry.
type PaymentFormState struct {
	PaymentType PaymentType                `json:"paymentType"`
	PartyID     string                     `json:"partyID"`
	Bills       []Bill                     `json:"bills"`
	Balance     PartyBalance               `json:"balance"`
	Allocations map[string]decimal.Decimal `json:"allocations"`
	Amount      decimal.Decimal            `json:"amount"`
	Discount    decimal.Decimal            `json:"discount"`
	UseAdvance  bool                       `json:"useAdvance"`

	// PartyRequestSeq identifies the most recent party fetch; responses
	// carrying an older sequence are discarded.
	PartyRequestSeq uint64 `json:"partyRequestSeq"`
	PendingPartyID  string `json:"pendingPartyID,omitempty"`
}

// IsSelected reports whether billID is part of the selection.
func (s PaymentFormState) IsSelected(billID string) bool {
	_, ok := s.Allocations[billID]
	return ok
}

// Selection returns the selected bill IDs in bill list order.
func (s PaymentFormState) Selection() []string {
	ids := make([]string, 0, len(s.Allocations))
	for _, b := range s.Bills {
		if s.IsSelected(b.BillID) {
			ids = append(ids, b.BillID)
		}
	}
	return ids
}

// FindBill looks a bill up by ID in the current bill list.
func (s PaymentFormState) FindBill(billID string) (Bill, bool) {
	for _, b := range s.Bills {
		if b.BillID == billID {
			return b, true
		}
	}
	return Bill{}, false
}

// SettlementSession is a PaymentFormState owned by one user.
type SettlementSession struct {
	SessionID string           `json:"sessionID"`
	UserID    string           `json:"userID"`
	State     PaymentFormState `json:"state"`
	ExpiresAt time.Time        `json:"expiresAt"`
	// Version counts saves; a store only accepts the direct successor of what it holds.
	Version   uint64           `json:"version"`
	AuditFields
}

// Clone returns a copy that shares no map or slice with s.
func (s PaymentFormState) Clone() PaymentFormState {
	out := s
	out.Allocations = make(map[string]decimal.Decimal, len(s.Allocations))
	for id, amt := range s.Allocations {
		out.Allocations[id] = amt
	}
	out.Bills = append([]Bill(nil), s.Bills...)
	return out
}
