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
	"github.com/SscSPs/payment_voucher_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// paymentService implements the PaymentSvcFacade interface
type paymentService struct {
	BaseService
	partyRepo   portsrepo.PartyRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
	metrics     *metrics.Metrics
	now         func() time.Time
}

// PaymentServiceOption is a functional option for configuring the payment service
type PaymentServiceOption func(*paymentService)

// WithPaymentMetrics records persisted vouchers on m.
func WithPaymentMetrics(m *metrics.Metrics) PaymentServiceOption {
	return func(s *paymentService) {
		s.metrics = m
	}
}

// WithPaymentClock overrides the clock used for audit fields.
func WithPaymentClock(now func() time.Time) PaymentServiceOption {
	return func(s *paymentService) {
		s.now = now
	}
}

// NewPaymentService creates a new payment service with the provided options
func NewPaymentService(partyRepo portsrepo.PartyRepositoryFacade, paymentRepo portsrepo.PaymentRepositoryFacade, options ...PaymentServiceOption) portssvc.PaymentSvcFacade {
	svc := &paymentService{
		partyRepo:   partyRepo,
		paymentRepo: paymentRepo,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// GetOutstanding fetches the unpaid bills and the balance of a party concurrently.
func (s *paymentService) GetOutstanding(ctx context.Context, partyID string) (*domain.PartyOutstanding, error) {
	if strings.TrimSpace(partyID) == "" {
		return nil, fmt.Errorf("%w: party ID is required", apperrors.ErrValidation)
	}

	var (
		bills   []domain.Bill
		balance *domain.PartyBalance
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bills, err = s.partyRepo.FindUnpaidBills(gctx, partyID)
		if err != nil {
			return fmt.Errorf("failed to load unpaid bills: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		balance, err = s.partyRepo.FindPartyBalance(gctx, partyID)
		if err != nil {
			return fmt.Errorf("failed to load party balance: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to fetch party outstanding", slog.String("party_id", partyID))
		}
		return nil, err
	}

	if bills == nil {
		bills = []domain.Bill{}
	}
	s.LogDebug(ctx, "Party outstanding fetched", slog.String("party_id", partyID), slog.Int("bills", len(bills)))
	return &domain.PartyOutstanding{PartyID: partyID, Bills: bills, Balance: *balance}, nil
}

func (s *paymentService) GetPayment(ctx context.Context, paymentID string) (*domain.PaymentVoucher, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find payment", slog.String("payment_id", paymentID))
		}
		return nil, err
	}
	return payment, nil
}

// ListPartyPayments returns a page of a party's vouchers, newest first.
// A non-positive limit selects the default page size; larger limits are capped.
func (s *paymentService) ListPartyPayments(ctx context.Context, partyID string, limit int, nextToken *string) ([]domain.PaymentVoucher, *string, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if nextToken != nil && *nextToken == "" {
		nextToken = nil
	}
	if nextToken != nil {
		if _, err := pagination.DecodeToken(*nextToken); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	}

	payments, next, err := s.paymentRepo.ListPaymentsByParty(ctx, partyID, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("party_id", partyID))
		return nil, nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if payments == nil {
		payments = []domain.PaymentVoucher{}
	}
	return payments, next, nil
}

// SubmitPayment validates a submission, recomputes its derived totals from the
// allocation lines, and persists it as a new voucher.
func (s *paymentService) SubmitPayment(ctx context.Context, submission domain.PaymentSubmission, userID string) (*domain.PaymentVoucher, error) {
	if err := validateSubmission(&submission); err != nil {
		s.LogWarn(ctx, "Payment submission rejected",
			slog.String("party_id", submission.PartyAccountID),
			slog.String("reason", err.Error()))
		return nil, err
	}

	now := s.now()
	voucher := domain.PaymentVoucher{
		PaymentID:         uuid.NewString(),
		PaymentSubmission: submission,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, voucher); err != nil {
		if errors.Is(err, apperrors.ErrSubmissionRejected) || errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Payment rejected by repository",
				slog.String("payment_id", voucher.PaymentID),
				slog.String("reason", err.Error()))
		} else {
			s.LogError(ctx, err, "Failed to save payment", slog.String("payment_id", voucher.PaymentID))
		}
		return nil, err
	}

	s.metrics.PaymentSubmitted(string(voucher.PaymentType), voucher.NetAmount.InexactFloat64())
	s.LogInfo(ctx, "Payment voucher saved",
		slog.String("payment_id", voucher.PaymentID),
		slog.String("party_id", voucher.PartyAccountID),
		slog.String("net_amount", voucher.NetAmount.StringFixed(accounting.MoneyPlaces)),
		slog.Int("lines", len(voucher.Allocations)))
	return &voucher, nil
}

func rejectf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrSubmissionRejected, fmt.Sprintf(format, args...))
}

// validateSubmission checks sub and normalises its money fields in place.
func validateSubmission(sub *domain.PaymentSubmission) error {
	if strings.TrimSpace(sub.PartyAccountID) == "" {
		return rejectf("party is required")
	}
	if strings.TrimSpace(sub.PaymentAccountID) == "" {
		return rejectf("payment account is required")
	}
	if !sub.PaymentType.IsValid() {
		return rejectf("unknown payment type '%s'", sub.PaymentType)
	}
	if !sub.PaymentMethod.IsValid() {
		return rejectf("unknown payment method '%s'", sub.PaymentMethod)
	}
	if sub.PaymentDate.IsZero() {
		return rejectf("payment date is required")
	}
	if sub.Amount.IsNegative() || sub.Discount.IsNegative() {
		return rejectf("amount and discount must not be negative")
	}

	if sub.PaymentMethod == domain.PaymentMethodCheque {
		if sub.Cheque == nil || strings.TrimSpace(sub.Cheque.ChequeNo) == "" || sub.Cheque.ChequeDate.IsZero() {
			return rejectf("cheque number and date are required for cheque payments")
		}
	} else {
		sub.Cheque = nil
	}

	sub.Allocations = append([]domain.AllocationLine(nil), sub.Allocations...)
	seen := make(map[string]struct{}, len(sub.Allocations))
	for i := range sub.Allocations {
		sub.Allocations[i].Amount = accounting.RoundMoney(sub.Allocations[i].Amount)
		line := sub.Allocations[i]
		if line.BillID == "" {
			return rejectf("allocation line without bill")
		}
		if _, dup := seen[line.BillID]; dup {
			return rejectf("bill %s allocated more than once", line.BillID)
		}
		seen[line.BillID] = struct{}{}
		if !line.Amount.IsPositive() {
			return rejectf("allocation for bill %s must be positive", line.BillID)
		}
		if !line.BillType.IsValid() {
			return rejectf("unknown bill type '%s' for bill %s", line.BillType, line.BillID)
		}
	}

	sub.Amount = accounting.RoundMoney(sub.Amount)
	sub.Discount = accounting.RoundMoney(sub.Discount)
	allocations := lo.SliceToMap(sub.Allocations, func(l domain.AllocationLine) (string, decimal.Decimal) {
		return l.BillID, l.Amount
	})
	totals := allocation.DeriveTotals(sub.Amount, sub.Discount, allocations)
	if totals.NetPaid.IsNegative() {
		return rejectf("discount %s exceeds amount %s", sub.Discount, sub.Amount)
	}
	sub.NetAmount = totals.NetPaid
	sub.AppliedFromAdvance = totals.AppliedFromAdvance
	sub.UnallocatedAmount = totals.UnallocatedAmount
	return nil
}
