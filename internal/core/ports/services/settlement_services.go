package services

import (
	"context"

	"github.com/SscSPs/payment_voucher_app/internal/core/allocation"
	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SettlementSessionSvc manages the lifecycle of settlement sessions.
// Every method returns apperrors.ErrNotFound when the session does not exist,
// has expired, or belongs to another user.
type SettlementSessionSvc interface {
	CreateSession(ctx context.Context, userID string, paymentType domain.PaymentType) (*domain.SettlementSession, error)
	GetSession(ctx context.Context, sessionID, userID string) (*domain.SettlementSession, error)
	DeleteSession(ctx context.Context, sessionID, userID string) error
}

// SettlementPartySvc loads a party's outstanding bills into a session.
type SettlementPartySvc interface {
	// SelectParty switches the session to partyID and loads its bills and balance.
	// A response superseded by a later selection is discarded with apperrors.ErrStaleResponse.
	SelectParty(ctx context.Context, sessionID, userID, partyID string) (*domain.SettlementSession, error)

	// RefreshBills reloads the current party's bills, clearing the selection.
	RefreshBills(ctx context.Context, sessionID, userID string) (*domain.SettlementSession, error)
}

// SettlementAllocationSvc applies the allocation engine's transitions to a session.
type SettlementAllocationSvc interface {
	ToggleBill(ctx context.Context, sessionID, userID, billID string) (*domain.SettlementSession, error)
	ToggleAll(ctx context.Context, sessionID, userID string) (*domain.SettlementSession, error)
	// SetAllocation reports whether the value was clamped to the bill's remaining amount.
	SetAllocation(ctx context.Context, sessionID, userID, billID, raw string) (*domain.SettlementSession, bool, error)
	SetUseAdvance(ctx context.Context, sessionID, userID string, useAdvance bool) (*domain.SettlementSession, error)
	// SetAmounts updates whichever of amount and discount is not nil.
	SetAmounts(ctx context.Context, sessionID, userID string, amount, discount *decimal.Decimal) (*domain.SettlementSession, error)
}

// SettlementSubmitSvc turns a session into a persisted payment voucher.
type SettlementSubmitSvc interface {
	// Submit persists the session's payload and discards the session on success.
	Submit(ctx context.Context, sessionID, userID string, header allocation.Header) (*domain.PaymentVoucher, error)
}

// SettlementSvcFacade combines all settlement-related service interfaces
type SettlementSvcFacade interface {
	SettlementSessionSvc
	SettlementPartySvc
	SettlementAllocationSvc
	SettlementSubmitSvc
}
