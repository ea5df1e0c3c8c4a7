package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/payment_voucher_app/internal/apperrors"
	"github.com/SscSPs/payment_voucher_app/internal/core/allocation"
	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
	portsrepo "github.com/SscSPs/payment_voucher_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/payment_voucher_app/internal/core/ports/services"
	"github.com/SscSPs/payment_voucher_app/internal/platform/metrics"
	"github.com/SscSPs/payment_voucher_app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultSessionTTL   = 30 * time.Minute
	defaultFetchTimeout = 10 * time.Second
)

// settlementService implements the SettlementSvcFacade interface.
// Transitions on one session are serialised by a per-session lock; the lock is
// released while a party fetch is in flight so the form stays usable.
type settlementService struct {
	BaseService
	sessions     portsrepo.SessionStore
	parties      portssvc.PartyReaderSvc
	payments     portssvc.PaymentWriterSvc
	locks        *sessionLocks
	ttl          time.Duration
	fetchTimeout time.Duration
	metrics      *metrics.Metrics
	now          func() time.Time
}

// SettlementServiceOption is a functional option for configuring the settlement service
type SettlementServiceOption func(*settlementService)

// WithSessionTTL sets how long an idle session is kept.
func WithSessionTTL(ttl time.Duration) SettlementServiceOption {
	return func(s *settlementService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithPartyFetchTimeout bounds each outstanding bills fetch.
func WithPartyFetchTimeout(timeout time.Duration) SettlementServiceOption {
	return func(s *settlementService) {
		if timeout > 0 {
			s.fetchTimeout = timeout
		}
	}
}

// WithSettlementMetrics records session and fetch outcomes on m.
func WithSettlementMetrics(m *metrics.Metrics) SettlementServiceOption {
	return func(s *settlementService) {
		s.metrics = m
	}
}

// WithSettlementClock overrides the clock used for expiry and audit fields.
func WithSettlementClock(now func() time.Time) SettlementServiceOption {
	return func(s *settlementService) {
		s.now = now
	}
}

// NewSettlementService creates a new settlement service with the provided options
func NewSettlementService(
	sessions portsrepo.SessionStore,
	parties portssvc.PartyReaderSvc,
	payments portssvc.PaymentWriterSvc,
	options ...SettlementServiceOption,
) portssvc.SettlementSvcFacade {
	svc := &settlementService{
		sessions:     sessions,
		parties:      parties,
		payments:     payments,
		locks:        newSessionLocks(),
		ttl:          defaultSessionTTL,
		fetchTimeout: defaultFetchTimeout,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.SettlementSvcFacade = (*settlementService)(nil)

func (s *settlementService) CreateSession(ctx context.Context, userID string, paymentType domain.PaymentType) (*domain.SettlementSession, error) {
	if !paymentType.IsValid() {
		return nil, fmt.Errorf("%w: unknown payment type '%s'", apperrors.ErrValidation, paymentType)
	}

	now := s.now()
	session := &domain.SettlementSession{
		SessionID: uuid.NewString(),
		UserID:    userID,
		State:     allocation.NewState(paymentType),
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: userID,
		},
	}
	if err := s.save(ctx, session, userID); err != nil {
		return nil, err
	}

	s.metrics.SessionCreated()
	s.LogInfo(ctx, "Settlement session created",
		slog.String("session_id", session.SessionID),
		slog.String("payment_type", string(paymentType)))
	return session, nil
}

func (s *settlementService) GetSession(ctx context.Context, sessionID, userID string) (*domain.SettlementSession, error) {
	return s.load(ctx, sessionID, userID)
}

func (s *settlementService) DeleteSession(ctx context.Context, sessionID, userID string) error {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	if _, err := s.load(ctx, sessionID, userID); err != nil {
		return err
	}
	if err := s.sessions.DeleteSession(ctx, sessionID); err != nil {
		s.LogError(ctx, err, "Failed to delete settlement session", slog.String("session_id", sessionID))
		return err
	}
	s.LogInfo(ctx, "Settlement session discarded", slog.String("session_id", sessionID))
	return nil
}

func (s *settlementService) SelectParty(ctx context.Context, sessionID, userID, partyID string) (*domain.SettlementSession, error) {
	partyID = strings.TrimSpace(partyID)
	if partyID == "" {
		return nil, fmt.Errorf("%w: party ID is required", apperrors.ErrValidation)
	}
	return s.loadParty(ctx, sessionID, userID, func(state domain.PaymentFormState) (string, error) {
		return partyID, nil
	}, allocation.ApplyPartyLoad)
}

func (s *settlementService) RefreshBills(ctx context.Context, sessionID, userID string) (*domain.SettlementSession, error) {
	return s.loadParty(ctx, sessionID, userID, func(state domain.PaymentFormState) (string, error) {
		if state.PartyID == "" {
			return "", fmt.Errorf("%w: no party selected", apperrors.ErrValidation)
		}
		return state.PartyID, nil
	}, allocation.ApplyRefresh)
}

type applyLoadFunc func(domain.PaymentFormState, uint64, domain.PartyOutstanding) (domain.PaymentFormState, bool)

// loadParty runs one party fetch in three steps: record the request under the
// session lock, fetch without the lock, then apply under the lock again if no
// newer request was recorded meanwhile.
func (s *settlementService) loadParty(
	ctx context.Context,
	sessionID, userID string,
	target func(domain.PaymentFormState) (string, error),
	apply applyLoadFunc,
) (*domain.SettlementSession, error) {
	var (
		partyID string
		seq     uint64
	)
	_, err := s.mutate(ctx, sessionID, userID, func(state domain.PaymentFormState) (domain.PaymentFormState, error) {
		id, err := target(state)
		if err != nil {
			return state, err
		}
		partyID = id
		var next domain.PaymentFormState
		next, seq = allocation.BeginPartyLoad(state, partyID)
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	start := s.now()
	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	outstanding, fetchErr := s.parties.GetOutstanding(fetchCtx, partyID)
	cancel()
	elapsed := s.now().Sub(start)

	stale := false
	session, err := s.mutate(ctx, sessionID, userID, func(state domain.PaymentFormState) (domain.PaymentFormState, error) {
		result := outstanding
		if fetchErr != nil {
			result = &domain.PartyOutstanding{
				PartyID: partyID,
				Bills:   []domain.Bill{},
				Balance: domain.PartyBalance{PartyID: partyID, Orientation: domain.OrientationDebit},
			}
		}
		next, applied := apply(state, seq, *result)
		if !applied {
			stale = true
			return state, fmt.Errorf("%w: party %s superseded by a newer request", apperrors.ErrStaleResponse, partyID)
		}
		return next, nil
	})

	switch {
	case stale:
		s.metrics.ObservePartyFetch(metrics.FetchStale, elapsed)
		s.LogInfo(ctx, "Discarded stale party response",
			slog.String("session_id", sessionID),
			slog.String("party_id", partyID),
			slog.Uint64("seq", seq))
		return nil, err
	case err != nil:
		return nil, err
	case fetchErr != nil:
		s.metrics.ObservePartyFetch(metrics.FetchFailed, elapsed)
		s.LogError(ctx, fetchErr, "Failed to load party outstanding",
			slog.String("session_id", sessionID),
			slog.String("party_id", partyID))
		return session, fmt.Errorf("%w: %w", apperrors.ErrPartyFetchFailed, fetchErr)
	}

	s.metrics.ObservePartyFetch(metrics.FetchApplied, elapsed)
	s.LogDebug(ctx, "Party loaded into settlement session",
		slog.String("session_id", sessionID),
		slog.String("party_id", partyID),
		slog.Int("bills", len(session.State.Bills)))
	return session, nil
}

func (s *settlementService) ToggleBill(ctx context.Context, sessionID, userID, billID string) (*domain.SettlementSession, error) {
	return s.mutate(ctx, sessionID, userID, func(state domain.PaymentFormState) (domain.PaymentFormState, error) {
		bill, ok := state.FindBill(billID)
		if !ok {
			return state, fmt.Errorf("%w: bill %s is not on the form", apperrors.ErrNotFound, billID)
		}
		return allocation.ToggleBill(state, billID, bill.RemainingAmount), nil
	})
}

func (s *settlementService) ToggleAll(ctx context.Context, sessionID, userID string) (*domain.SettlementSession, error) {
	return s.mutate(ctx, sessionID, userID, func(state domain.PaymentFormState) (domain.PaymentFormState, error) {
		return allocation.ToggleAll(state), nil
	})
}

// SetAllocation rejects negative values; values above the bill's remaining
// amount are clamped by the engine and reported through the returned flag.
func (s *settlementService) SetAllocation(ctx context.Context, sessionID, userID, billID, raw string) (*domain.SettlementSession, bool, error) {
	clamped := false
	session, err := s.mutate(ctx, sessionID, userID, func(state domain.PaymentFormState) (domain.PaymentFormState, error) {
		if _, ok := state.FindBill(billID); !ok {
			return state, fmt.Errorf("%w: bill %s is not on the form", apperrors.ErrNotFound, billID)
		}
		if !state.IsSelected(billID) {
			return state, fmt.Errorf("%w: bill %s is not selected", apperrors.ErrValidation, billID)
		}
		next, c, err := allocation.SetAllocation(state, billID, raw)
		if err != nil {
			return state, err
		}
		if next.Allocations[billID].IsNegative() {
			return state, fmt.Errorf("%w: allocation for bill %s must not be negative", apperrors.ErrAllocationOutOfRange, billID)
		}
		clamped = c
		return next, nil
	})
	if err != nil {
		return nil, false, err
	}
	if clamped {
		s.LogDebug(ctx, "Allocation clamped to remaining amount",
			slog.String("session_id", sessionID),
			slog.String("bill_id", billID))
	}
	return session, clamped, nil
}

func (s *settlementService) SetUseAdvance(ctx context.Context, sessionID, userID string, useAdvance bool) (*domain.SettlementSession, error) {
	return s.mutate(ctx, sessionID, userID, func(state domain.PaymentFormState) (domain.PaymentFormState, error) {
		return allocation.ToggleUseAdvance(state, useAdvance), nil
	})
}

func (s *settlementService) SetAmounts(ctx context.Context, sessionID, userID string, amount, discount *decimal.Decimal) (*domain.SettlementSession, error) {
	if (amount != nil && amount.IsNegative()) || (discount != nil && discount.IsNegative()) {
		return nil, fmt.Errorf("%w: amount and discount must not be negative", apperrors.ErrValidation)
	}
	return s.mutate(ctx, sessionID, userID, func(state domain.PaymentFormState) (domain.PaymentFormState, error) {
		next := state
		if amount != nil {
			next = allocation.SetAmount(next, accounting.RoundMoney(*amount))
		}
		if discount != nil {
			next = allocation.SetDiscount(next, accounting.RoundMoney(*discount))
		}
		return next, nil
	})
}

func (s *settlementService) Submit(ctx context.Context, sessionID, userID string, header allocation.Header) (*domain.PaymentVoucher, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	session, err := s.load(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	state := session.State
	if state.PartyID == "" {
		return nil, fmt.Errorf("%w: no party selected", apperrors.ErrSubmissionRejected)
	}
	if state.PendingPartyID != "" {
		return nil, fmt.Errorf("%w: party %s is still loading", apperrors.ErrSubmissionRejected, state.PendingPartyID)
	}

	payload := allocation.BuildSubmissionPayload(state, header)
	voucher, err := s.payments.SubmitPayment(ctx, payload, userID)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.DeleteSession(ctx, sessionID); err != nil {
		s.LogError(ctx, err, "Failed to discard submitted settlement session", slog.String("session_id", sessionID))
	}
	s.LogInfo(ctx, "Settlement session submitted",
		slog.String("session_id", sessionID),
		slog.String("payment_id", voucher.PaymentID))
	return voucher, nil
}

// mutate loads a session under its lock, applies fn to its state and saves the result.
// When fn fails nothing is saved.
func (s *settlementService) mutate(
	ctx context.Context,
	sessionID, userID string,
	fn func(domain.PaymentFormState) (domain.PaymentFormState, error),
) (*domain.SettlementSession, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	session, err := s.load(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	next, err := fn(session.State)
	if err != nil {
		return nil, err
	}
	session.State = next
	if err := s.save(ctx, session, userID); err != nil {
		return nil, err
	}
	return session, nil
}

// load returns apperrors.ErrNotFound for sessions owned by another user.
func (s *settlementService) load(ctx context.Context, sessionID, userID string) (*domain.SettlementSession, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load settlement session", slog.String("session_id", sessionID))
		}
		return nil, err
	}
	if session.UserID != userID {
		s.LogWarn(ctx, "Settlement session requested by another user", slog.String("session_id", sessionID))
		return nil, fmt.Errorf("%w: settlement session %s", apperrors.ErrNotFound, sessionID)
	}
	return session, nil
}

// save bumps the version, refreshes the expiry and audit fields and writes the
// session back. Another instance saving first surfaces as apperrors.ErrConflict.
func (s *settlementService) save(ctx context.Context, session *domain.SettlementSession, userID string) error {
	now := s.now()
	session.LastUpdatedAt = now
	session.LastUpdatedBy = userID
	session.ExpiresAt = now.Add(s.ttl)
	session.Version++
	if err := s.sessions.SaveSession(ctx, *session, s.ttl); err != nil {
		session.Version--
		if errors.Is(err, apperrors.ErrConflict) {
			s.LogWarn(ctx, "Settlement session changed concurrently", slog.String("session_id", session.SessionID))
			return err
		}
		s.LogError(ctx, err, "Failed to save settlement session", slog.String("session_id", session.SessionID))
		return err
	}
	return nil
}
