package repositories

import (
	"context"

	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
)

// BillReader defines read operations for outstanding bills
type BillReader interface {
	// FindUnpaidBills returns the bills of a party that still have a positive remaining amount, oldest first.
	FindUnpaidBills(ctx context.Context, partyID string) ([]domain.Bill, error)
}

// PartyBalanceReader defines read operations for party balances
type PartyBalanceReader interface {
	// FindPartyBalance returns the current balance, orientation and advance of a party.
	FindPartyBalance(ctx context.Context, partyID string) (*domain.PartyBalance, error)
}

// PartyRepositoryFacade combines all party-related repository interfaces
type PartyRepositoryFacade interface {
	BillReader
	PartyBalanceReader
}
