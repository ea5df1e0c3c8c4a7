package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a row of the payments table.
type Payment struct {
	PaymentID          string          `json:"paymentID"`
	PaymentDate        time.Time       `json:"paymentDate"`
	PartyID            string          `json:"partyID"`
	PaymentAccountID   string          `json:"paymentAccountID"`
	Amount             decimal.Decimal `json:"amount"`
	Discount           decimal.Decimal `json:"discount"`
	NetAmount          decimal.Decimal `json:"netAmount"`
	PaymentType        string          `json:"paymentType"`
	PaymentMethod      string          `json:"paymentMethod"`
	ChequeNo           *string         `json:"chequeNo"` // Nullable
	ChequeDate         *time.Time      `json:"chequeDate"`
	ChequeClearDate    *time.Time      `json:"chequeClearDate"`
	Remarks            string          `json:"remarks"`
	MessageLineID      *string         `json:"messageLineID"`
	AppliedFromAdvance decimal.Decimal `json:"appliedFromAdvance"`
	UnallocatedAmount  decimal.Decimal `json:"unallocatedAmount"`
	AuditFields
}

// PaymentAllocation is a row of the payment_allocations table.
type PaymentAllocation struct {
	AllocationID string          `json:"allocationID"`
	PaymentID    string          `json:"paymentID"`
	BillID       string          `json:"billID"`
	BillType     string          `json:"billType"`
	Amount       decimal.Decimal `json:"amount"`
	CreatedAt    time.Time       `json:"createdAt"`
}
