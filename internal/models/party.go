package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Party is a row of the parties table.
type Party struct {
	PartyID        string          `json:"partyID"`
	Name           string          `json:"name"`
	Balance        decimal.Decimal `json:"balance"`        // Signed: positive is debit, negative is credit
	AdvanceBalance decimal.Decimal `json:"advanceBalance"` // Unapplied advance credit, never negative
	AuditFields
}

// Bill is a row of the bills table.
type Bill struct {
	BillID     string          `json:"billID"`
	PartyID    string          `json:"partyID"`
	BillType   string          `json:"billType"`
	InvoiceNo  string          `json:"invoiceNo"`
	BillDate   time.Time       `json:"billDate"`
	NetTotal   decimal.Decimal `json:"netTotal"`
	PaidAmount decimal.Decimal `json:"paidAmount"`
	AuditFields
}
