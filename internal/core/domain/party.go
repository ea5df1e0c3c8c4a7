package domain

import "github.com/shopspring/decimal"

// Orientation says which side of the ledger a party balance sits on.
type Orientation string

const (
	// OrientationDebit means the party owes us.
	OrientationDebit Orientation = "DR"
	// OrientationCredit means we owe the party.
	OrientationCredit Orientation = "CR"
)

// PartyBalance is read-only reference data for one settlement session.
type PartyBalance struct {
	PartyID        string          `json:"partyID"`
	CurrentBalance decimal.Decimal `json:"currentBalance"` // Magnitude, never negative
	Orientation    Orientation     `json:"orientation"`
	AdvanceAmount  decimal.Decimal `json:"advanceAmount"` // Existing advance credit, never negative
}

// PartyOutstanding is what a party fetch returns: unpaid bills plus the balance.
type PartyOutstanding struct {
	PartyID string       `json:"partyID"`
	Bills   []Bill       `json:"bills"`
	Balance PartyBalance `json:"balance"`
}
