package dto

import (
	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OutstandingResponse defines the data returned for a party's unpaid bills and balance.
type OutstandingResponse struct {
	PartyID        string             `json:"partyID"`
	Bills          []domain.Bill      `json:"bills"`
	CurrentBalance decimal.Decimal    `json:"currentBalance"`
	Orientation    domain.Orientation `json:"orientation"`
	AdvanceAmount  decimal.Decimal    `json:"advanceAmount"`
}

// ToOutstandingResponse converts a domain.PartyOutstanding to OutstandingResponse DTO
func ToOutstandingResponse(o *domain.PartyOutstanding) OutstandingResponse {
	bills := o.Bills
	if bills == nil {
		bills = []domain.Bill{}
	}
	return OutstandingResponse{
		PartyID:        o.PartyID,
		Bills:          bills,
		CurrentBalance: o.Balance.CurrentBalance,
		Orientation:    o.Balance.Orientation,
		AdvanceAmount:  o.Balance.AdvanceAmount,
	}
}
