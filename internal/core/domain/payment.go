package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType is the direction money moves in.
type PaymentType string

const (
	PaymentTypeInbound  PaymentType = "INBOUND"  // Receipt from a customer
	PaymentTypeOutbound PaymentType = "OUTBOUND" // Payment to a supplier
)

// PaymentMethod is how the money was tendered.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "CASH"
	PaymentMethodBank   PaymentMethod = "BANK"
	PaymentMethodCheque PaymentMethod = "CHEQUE"
	PaymentMethodOnline PaymentMethod = "ONLINE"
)

// IsValid reports whether t is a known payment direction.
func (t PaymentType) IsValid() bool {
	return t == PaymentTypeInbound || t == PaymentTypeOutbound
}

// IsValid reports whether m is a known payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBank, PaymentMethodCheque, PaymentMethodOnline:
		return true
	}
	return false
}

// AllocationLine assigns part of a payment to one bill.
type AllocationLine struct {
	BillID   string          `json:"billID"`
	BillType BillType        `json:"billType"`
	Amount   decimal.Decimal `json:"amount"`
}

// ChequeDetails is only present when the payment method is CHEQUE.
type ChequeDetails struct {
	ChequeNo        string     `json:"chequeNo"`
	ChequeDate      time.Time  `json:"chequeDate"`
	ChequeClearDate *time.Time `json:"chequeClearDate,omitempty"`
}

// PaymentSubmission is the write payload produced by a settlement session.
type PaymentSubmission struct {
	PaymentDate      time.Time        `json:"paymentDate"`
	PartyAccountID   string           `json:"partyAccountID"`
	PaymentAccountID string           `json:"paymentAccountID"`
	Amount           decimal.Decimal  `json:"amount"`
	Discount         decimal.Decimal  `json:"discount"`
	NetAmount        decimal.Decimal  `json:"netAmount"`
	PaymentType      PaymentType      `json:"paymentType"`
	PaymentMethod    PaymentMethod    `json:"paymentMethod"`
	Cheque           *ChequeDetails   `json:"cheque,omitempty"`
	Remarks          string           `json:"remarks"`
	MessageLineID    *string          `json:"messageLineID,omitempty"`
	Allocations      []AllocationLine `json:"allocations"`

	// Derived at the time the payload was built.
	AppliedFromAdvance decimal.Decimal `json:"appliedFromAdvance"`
	UnallocatedAmount  decimal.Decimal `json:"unallocatedAmount"`
}

// PaymentVoucher is a persisted payment submission.
type PaymentVoucher struct {
	PaymentID string `json:"paymentID"`
	PaymentSubmission
	AuditFields
}
