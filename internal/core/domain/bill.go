package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillType tags the kind of document a bill was raised from.
type BillType string

const (
	BillTypePurchase       BillType = "PURCHASE"
	BillTypeSale           BillType = "SALE"
	BillTypeSalesReturn    BillType = "SALES_RETURN"
	BillTypePurchaseReturn BillType = "PURCHASE_RETURN"
)

// IsValid reports whether t is a known bill type.
func (t BillType) IsValid() bool {
	switch t {
	case BillTypePurchase, BillTypeSale, BillTypeSalesReturn, BillTypePurchaseReturn:
		return true
	}
	return false
}

// Bill is an outstanding document owned by a party.
// RemainingAmount is the ceiling for any allocation against the bill.
type Bill struct {
	BillID          string          `json:"billID"`
	BillType        BillType        `json:"billType"`
	InvoiceNo       string          `json:"invoiceNo"`
	BillDate        time.Time       `json:"billDate"`
	NetTotal        decimal.Decimal `json:"netTotal"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
}
