package accounting

import (
	"fmt"

	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places money is rounded to.
const MoneyPlaces = 2

// RoundMoney rounds d to MoneyPlaces, half away from zero.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// FloorAtZero returns d, or zero when d is negative.
func FloorAtZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// SumAmounts adds up every value in amounts.
func SumAmounts(amounts map[string]decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range amounts {
		sum = sum.Add(a)
	}
	return sum
}

// OrientBalance splits a signed balance into its magnitude and orientation.
// Positive balances are debit (the party owes us), negative are credit.
// Zero is reported as debit.
func OrientBalance(signed decimal.Decimal) (decimal.Decimal, domain.Orientation) {
	if signed.IsNegative() {
		return signed.Neg(), domain.OrientationCredit
	}
	return signed, domain.OrientationDebit
}

// SignedBalance is the inverse of OrientBalance.
func SignedBalance(magnitude decimal.Decimal, orientation domain.Orientation) (decimal.Decimal, error) {
	switch orientation {
	case domain.OrientationDebit:
		return magnitude, nil
	case domain.OrientationCredit:
		return magnitude.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown balance orientation '%s'", orientation)
	}
}

// SettlementDelta is the change a settled gross amount makes to a party's signed balance.
// An inbound receipt reduces what the customer owes us; an outbound payment reduces
// what we owe the supplier, moving the balance towards debit.
func SettlementDelta(paymentType domain.PaymentType, gross decimal.Decimal) (decimal.Decimal, error) {
	switch paymentType {
	case domain.PaymentTypeInbound:
		return gross.Neg(), nil
	case domain.PaymentTypeOutbound:
		return gross, nil
	default:
		return decimal.Zero, fmt.Errorf("unknown payment type '%s'", paymentType)
	}
}

// NextAdvance computes a party's advance after a payment consumed applied and left unallocated over.
func NextAdvance(current, applied, unallocated decimal.Decimal) (decimal.Decimal, error) {
	if applied.GreaterThan(current) {
		return decimal.Zero, fmt.Errorf("applied advance %s exceeds available advance %s", applied.String(), current.String())
	}
	return current.Sub(applied).Add(unallocated), nil
}
