package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/SscSPs/payment_voucher_app/internal/apperrors"
	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
	portsrepo "github.com/SscSPs/payment_voucher_app/internal/core/ports/repositories"
	"github.com/SscSPs/payment_voucher_app/internal/models"
	"github.com/SscSPs/payment_voucher_app/internal/utils/accounting"
	"github.com/SscSPs/payment_voucher_app/internal/utils/mapping"
	"github.com/SscSPs/payment_voucher_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const paymentColumns = `
	payment_id, payment_date, party_id, payment_account_id, amount, discount, net_amount,
	payment_type, payment_method, cheque_no, cheque_date, cheque_clear_date, remarks,
	message_line_id, applied_from_advance, unallocated_amount,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment vouchers.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryWithTx {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

type lockedBill struct {
	partyID   string
	billType  string
	remaining decimal.Decimal
}

// checkLines rejects lines whose bill is missing, owned by another party,
// of a different type than recorded, or has less outstanding than allocated.
func checkLines(partyID string, lines []models.PaymentAllocation, locked map[string]lockedBill) error {
	for _, line := range lines {
		bill, ok := locked[line.BillID]
		if !ok {
			return fmt.Errorf("%w: bill %s does not exist", apperrors.ErrSubmissionRejected, line.BillID)
		}
		if bill.partyID != partyID {
			return fmt.Errorf("%w: bill %s belongs to another party", apperrors.ErrSubmissionRejected, line.BillID)
		}
		if line.BillType != bill.billType {
			return fmt.Errorf("%w: bill %s is a %s bill, not %s",
				apperrors.ErrSubmissionRejected, line.BillID, bill.billType, line.BillType)
		}
		if line.Amount.GreaterThan(bill.remaining) {
			return fmt.Errorf("%w: allocation %s exceeds remaining %s on bill %s",
				apperrors.ErrSubmissionRejected, line.Amount, bill.remaining, line.BillID)
		}
	}
	return nil
}

// SavePayment inserts a voucher and its lines, settles the allocated bills and
// moves the party balance and advance, all in one transaction.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, voucher domain.PaymentVoucher) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	payment := mapping.ToModelPayment(voucher)
	lines := mapping.ToModelAllocations(voucher, payment.CreatedAt)

	// 1. Lock the party so concurrent vouchers serialise on its advance.
	var balance, advance decimal.Decimal
	err = tx.QueryRow(ctx,
		`SELECT balance, advance_balance FROM parties WHERE party_id = $1 FOR UPDATE;`,
		payment.PartyID,
	).Scan(&balance, &advance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: party %s", apperrors.ErrNotFound, payment.PartyID)
		}
		return apperrors.NewAppError(500, "failed to lock party "+payment.PartyID, err)
	}

	// 2. Lock the allocated bills and check every line still fits.
	if len(lines) > 0 {
		locked, err := r.lockBills(ctx, tx, lines)
		if err != nil {
			return err
		}
		if err := checkLines(payment.PartyID, lines, locked); err != nil {
			return err
		}
	}

	nextAdvance, err := accounting.NextAdvance(advance, payment.AppliedFromAdvance, payment.UnallocatedAmount)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrSubmissionRejected, err)
	}
	delta, err := accounting.SettlementDelta(voucher.PaymentType, payment.Amount)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrSubmissionRejected, err)
	}

	// 3. Insert the voucher.
	_, err = tx.Exec(ctx, `
		INSERT INTO payments (`+paymentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);`,
		payment.PaymentID,
		payment.PaymentDate,
		payment.PartyID,
		payment.PaymentAccountID,
		payment.Amount,
		payment.Discount,
		payment.NetAmount,
		payment.PaymentType,
		payment.PaymentMethod,
		payment.ChequeNo,
		payment.ChequeDate,
		payment.ChequeClearDate,
		payment.Remarks,
		payment.MessageLineID,
		payment.AppliedFromAdvance,
		payment.UnallocatedAmount,
		payment.CreatedAt,
		payment.CreatedBy,
		payment.LastUpdatedAt,
		payment.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert payment "+payment.PaymentID, err)
	}

	// 4. Insert the lines and settle the bills in one batch.
	batch := &pgx.Batch{}
	for _, line := range lines {
		batch.Queue(`
			INSERT INTO payment_allocations (allocation_id, payment_id, bill_id, bill_type, amount, created_at)
			VALUES ($1, $2, $3, $4, $5, $6);`,
			line.AllocationID, line.PaymentID, line.BillID, line.BillType, line.Amount, line.CreatedAt,
		)
		batch.Queue(`
			UPDATE bills SET paid_amount = paid_amount + $1, last_updated_at = $2, last_updated_by = $3
			WHERE bill_id = $4;`,
			line.Amount, payment.LastUpdatedAt, payment.LastUpdatedBy, line.BillID,
		)
	}
	batch.Queue(`
		UPDATE parties SET balance = $1, advance_balance = $2, last_updated_at = $3, last_updated_by = $4
		WHERE party_id = $5;`,
		balance.Add(delta), nextAdvance, payment.LastUpdatedAt, payment.LastUpdatedBy, payment.PartyID,
	)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute allocation batch for payment "+payment.PaymentID, err)
	}

	return r.Commit(ctx, tx)
}

// lockBills locks the bills referenced by lines in id order.
func (r *PgxPaymentRepository) lockBills(ctx context.Context, tx pgx.Tx, lines []models.PaymentAllocation) (map[string]lockedBill, error) {
	ids := make([]string, len(lines))
	for i, line := range lines {
		ids[i] = line.BillID
	}
	sort.Strings(ids)

	rows, err := tx.Query(ctx, `
		SELECT bill_id, party_id, bill_type, net_total - paid_amount
		FROM bills
		WHERE bill_id = ANY($1)
		ORDER BY bill_id
		FOR UPDATE;`, ids)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock bills", err)
	}
	defer rows.Close()

	locked := make(map[string]lockedBill, len(ids))
	for rows.Next() {
		var id string
		var b lockedBill
		if err := rows.Scan(&id, &b.partyID, &b.billType, &b.remaining); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan locked bill", err)
		}
		locked[id] = b
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating locked bills", err)
	}
	return locked, nil
}

// FindPaymentByID retrieves a voucher and its allocation lines.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.PaymentVoucher, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE payment_id = $1;`, paymentID)
	payment, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, paymentID)
		}
		return nil, apperrors.NewAppError(500, "failed to query payment "+paymentID, err)
	}

	lines, err := r.findAllocations(ctx, []string{paymentID})
	if err != nil {
		return nil, err
	}

	voucher := mapping.ToDomainPayment(payment, lines[paymentID])
	return &voucher, nil
}

// ListPaymentsByParty retrieves a page of vouchers for a party ordered by
// payment date, then creation time, newest first.
func (r *PgxPaymentRepository) ListPaymentsByParty(ctx context.Context, partyID string, limit int, nextToken *string) ([]domain.PaymentVoucher, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row tells us whether a next page exists.
	fetchLimit := limit + 1

	args := []any{partyID}
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE party_id = $1`
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		query += ` AND (payment_date, created_at, payment_id) < ($2, $3, $4)`
		args = append(args, cursor.PaymentDate, cursor.CreatedAt, cursor.PaymentID)
	}
	query += ` ORDER BY payment_date DESC, created_at DESC, payment_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query payments for party "+partyID, err)
	}
	defer rows.Close()

	payments := make([]models.Payment, 0, fetchLimit)
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan payment row for party "+partyID, err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating payment rows", err)
	}

	var next *string
	if len(payments) > limit {
		last := payments[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{
			PaymentDate: last.PaymentDate,
			CreatedAt:   last.CreatedAt,
			PaymentID:   last.PaymentID,
		})
		next = &token
		payments = payments[:limit]
	}

	ids := make([]string, len(payments))
	for i, p := range payments {
		ids[i] = p.PaymentID
	}
	lines, err := r.findAllocations(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	vouchers := make([]domain.PaymentVoucher, len(payments))
	for i, p := range payments {
		vouchers[i] = mapping.ToDomainPayment(p, lines[p.PaymentID])
	}
	return vouchers, next, nil
}

// findAllocations loads the lines of the given payments keyed by payment ID.
func (r *PgxPaymentRepository) findAllocations(ctx context.Context, paymentIDs []string) (map[string][]models.PaymentAllocation, error) {
	byPayment := make(map[string][]models.PaymentAllocation, len(paymentIDs))
	if len(paymentIDs) == 0 {
		return byPayment, nil
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT allocation_id, payment_id, bill_id, bill_type, amount, created_at
		FROM payment_allocations
		WHERE payment_id = ANY($1)
		ORDER BY payment_id, created_at, allocation_id;`, paymentIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payment allocations", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a models.PaymentAllocation
		if err := rows.Scan(&a.AllocationID, &a.PaymentID, &a.BillID, &a.BillType, &a.Amount, &a.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment allocation", err)
		}
		byPayment[a.PaymentID] = append(byPayment[a.PaymentID], a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment allocations", err)
	}
	return byPayment, nil
}

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.PaymentDate,
		&m.PartyID,
		&m.PaymentAccountID,
		&m.Amount,
		&m.Discount,
		&m.NetAmount,
		&m.PaymentType,
		&m.PaymentMethod,
		&m.ChequeNo,
		&m.ChequeDate,
		&m.ChequeClearDate,
		&m.Remarks,
		&m.MessageLineID,
		&m.AppliedFromAdvance,
		&m.UnallocatedAmount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
