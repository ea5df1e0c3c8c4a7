package dto

import (
	"time"

	"github.com/SscSPs/payment_voucher_app/internal/core/allocation"
	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSettlementRequest opens a new payment voucher form.
type CreateSettlementRequest struct {
	PaymentType domain.PaymentType `json:"paymentType" binding:"required,oneof=INBOUND OUTBOUND"`
}

// SelectPartyRequest switches the form to another party.
type SelectPartyRequest struct {
	PartyID string `json:"partyID" binding:"required"`
}

// SetAllocationRequest carries the raw allocation typed for one bill.
// An empty value means zero.
type SetAllocationRequest struct {
	Amount string `json:"amount" binding:"max=32"`
}

// SetUseAdvanceRequest turns use of the party's advance on or off.
type SetUseAdvanceRequest struct {
	UseAdvance *bool `json:"useAdvance" binding:"required"`
}

// SetAmountsRequest updates the tendered amount and/or the discount.
// Use pointers to distinguish between zero-value updates and fields not provided.
type SetAmountsRequest struct {
	Amount   *decimal.Decimal `json:"amount" binding:"omitempty,gte=0"`
	Discount *decimal.Decimal `json:"discount" binding:"omitempty,gte=0"`
}

// SubmitSettlementRequest carries the voucher header fields needed to submit a form.
type SubmitSettlementRequest struct {
	PaymentDate      time.Time            `json:"paymentDate" binding:"required"`
	PaymentAccountID string               `json:"paymentAccountID" binding:"required"`
	PaymentMethod    domain.PaymentMethod `json:"paymentMethod" binding:"required,oneof=CASH BANK CHEQUE ONLINE"`
	ChequeNo         string               `json:"chequeNo" binding:"required_if=PaymentMethod CHEQUE,max=50"`
	ChequeDate       *time.Time           `json:"chequeDate" binding:"required_if=PaymentMethod CHEQUE"`
	ChequeClearDate  *time.Time           `json:"chequeClearDate"`
	Remarks          string               `json:"remarks" binding:"max=500"`
	MessageLineID    *string              `json:"messageLineID"`
}

// ToHeader converts the request into the allocation engine's voucher header.
func (r SubmitSettlementRequest) ToHeader() allocation.Header {
	h := allocation.Header{
		PaymentDate:      r.PaymentDate,
		PaymentAccountID: r.PaymentAccountID,
		PaymentMethod:    r.PaymentMethod,
		Remarks:          r.Remarks,
		MessageLineID:    r.MessageLineID,
	}
	if r.PaymentMethod == domain.PaymentMethodCheque && r.ChequeDate != nil {
		h.Cheque = &domain.ChequeDetails{
			ChequeNo:        r.ChequeNo,
			ChequeDate:      *r.ChequeDate,
			ChequeClearDate: r.ChequeClearDate,
		}
	}
	return h
}

// BillLineResponse is one row of the bill list on the form.
type BillLineResponse struct {
	domain.Bill
	Selected   bool             `json:"selected"`
	Allocation *decimal.Decimal `json:"allocation,omitempty"`
}

// SettlementResponse defines the data returned for a settlement session.
type SettlementResponse struct {
	SessionID      string              `json:"sessionID"`
	PaymentType    domain.PaymentType  `json:"paymentType"`
	PartyID        string              `json:"partyID"`
	PendingPartyID string              `json:"pendingPartyID,omitempty"`
	Bills          []BillLineResponse  `json:"bills"`
	Balance        domain.PartyBalance `json:"balance"`
	Selection      []string            `json:"selection"`
	Amount         decimal.Decimal     `json:"amount"`
	Discount       decimal.Decimal     `json:"discount"`
	UseAdvance     bool                `json:"useAdvance"`
	Totals         allocation.Totals   `json:"totals"`
	ExpiresAt      time.Time           `json:"expiresAt"`
}

// SetAllocationResponse adds whether the typed allocation was clamped to the bill's remaining amount.
type SetAllocationResponse struct {
	SettlementResponse
	Clamped bool `json:"clamped"`
}

// ToSettlementResponse converts a domain.SettlementSession to SettlementResponse DTO
func ToSettlementResponse(session *domain.SettlementSession) SettlementResponse {
	s := session.State
	bills := make([]BillLineResponse, len(s.Bills))
	for i, b := range s.Bills {
		line := BillLineResponse{Bill: b}
		if amt, ok := s.Allocations[b.BillID]; ok {
			line.Selected = true
			line.Allocation = &amt
		}
		bills[i] = line
	}
	return SettlementResponse{
		SessionID:      session.SessionID,
		PaymentType:    s.PaymentType,
		PartyID:        s.PartyID,
		PendingPartyID: s.PendingPartyID,
		Bills:          bills,
		Balance:        s.Balance,
		Selection:      s.Selection(),
		Amount:         s.Amount,
		Discount:       s.Discount,
		UseAdvance:     s.UseAdvance,
		Totals:         allocation.TotalsOf(s),
		ExpiresAt:      session.ExpiresAt,
	}
}
