package dto

import (
	"time"

	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentResponse defines the data returned for a payment voucher.
type PaymentResponse struct {
	PaymentID          string                  `json:"paymentID"`
	PaymentDate        time.Time               `json:"paymentDate"`
	PartyAccountID     string                  `json:"partyAccountID"`
	PaymentAccountID   string                  `json:"paymentAccountID"`
	Amount             decimal.Decimal         `json:"amount"`
	Discount           decimal.Decimal         `json:"discount"`
	NetAmount          decimal.Decimal         `json:"netAmount"`
	PaymentType        domain.PaymentType      `json:"paymentType"`
	PaymentMethod      domain.PaymentMethod    `json:"paymentMethod"`
	Cheque             *domain.ChequeDetails   `json:"cheque,omitempty"`
	Remarks            string                  `json:"remarks"`
	MessageLineID      *string                 `json:"messageLineID,omitempty"`
	Allocations        []domain.AllocationLine `json:"allocations"`
	AppliedFromAdvance decimal.Decimal         `json:"appliedFromAdvance"`
	UnallocatedAmount  decimal.Decimal         `json:"unallocatedAmount"`
	CreatedAt          time.Time               `json:"createdAt"`
	CreatedBy          string                  `json:"createdBy"`
}

// ToPaymentResponse converts a domain.PaymentVoucher to PaymentResponse DTO
func ToPaymentResponse(p *domain.PaymentVoucher) PaymentResponse {
	allocations := p.Allocations
	if allocations == nil {
		allocations = []domain.AllocationLine{}
	}
	return PaymentResponse{
		PaymentID:          p.PaymentID,
		PaymentDate:        p.PaymentDate,
		PartyAccountID:     p.PartyAccountID,
		PaymentAccountID:   p.PaymentAccountID,
		Amount:             p.Amount,
		Discount:           p.Discount,
		NetAmount:          p.NetAmount,
		PaymentType:        p.PaymentType,
		PaymentMethod:      p.PaymentMethod,
		Cheque:             p.Cheque,
		Remarks:            p.Remarks,
		MessageLineID:      p.MessageLineID,
		Allocations:        allocations,
		AppliedFromAdvance: p.AppliedFromAdvance,
		UnallocatedAmount:  p.UnallocatedAmount,
		CreatedAt:          p.CreatedAt,
		CreatedBy:          p.CreatedBy,
	}
}

// ToListPaymentResponse converts a slice of domain.PaymentVoucher to a slice of PaymentResponse DTOs
func ToListPaymentResponse(payments []domain.PaymentVoucher) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = ToPaymentResponse(&p) // Reuse the single converter
	}
	return res
}

// ListPaymentsParams defines query parameters for listing a party's payments.
type ListPaymentsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListPaymentsResponse wraps a page of payments.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken *string           `json:"nextToken,omitempty"`
}
