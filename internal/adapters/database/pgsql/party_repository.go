package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/payment_voucher_app/internal/apperrors"
	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
	portsrepo "github.com/SscSPs/payment_voucher_app/internal/core/ports/repositories"
	"github.com/SscSPs/payment_voucher_app/internal/models"
	"github.com/SscSPs/payment_voucher_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPartyRepository struct {
	BaseRepository
}

// newPgxPartyRepository creates a new repository for parties and their bills.
func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

// FindUnpaidBills returns the bills of a party with a positive remaining amount, oldest first.
func (r *PgxPartyRepository) FindUnpaidBills(ctx context.Context, partyID string) ([]domain.Bill, error) {
	query := `
		SELECT bill_id, party_id, bill_type, invoice_no, bill_date, net_total, paid_amount,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM bills
		WHERE party_id = $1 AND net_total - paid_amount > 0
		ORDER BY bill_date ASC, bill_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, partyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query unpaid bills for party "+partyID, err)
	}
	defer rows.Close()

	bills := make([]models.Bill, 0)
	for rows.Next() {
		var m models.Bill
		if err := rows.Scan(
			&m.BillID,
			&m.PartyID,
			&m.BillType,
			&m.InvoiceNo,
			&m.BillDate,
			&m.NetTotal,
			&m.PaidAmount,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan bill row for party "+partyID, err)
		}
		bills = append(bills, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating bill rows", err)
	}

	return mapping.ToDomainBills(bills), nil
}

// FindPartyBalance returns the oriented balance and advance of a party.
func (r *PgxPartyRepository) FindPartyBalance(ctx context.Context, partyID string) (*domain.PartyBalance, error) {
	query := `
		SELECT party_id, name, balance, advance_balance,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM parties
		WHERE party_id = $1;
	`
	var m models.Party
	err := r.Pool.QueryRow(ctx, query, partyID).Scan(
		&m.PartyID,
		&m.Name,
		&m.Balance,
		&m.AdvanceBalance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: party %s", apperrors.ErrNotFound, partyID)
		}
		return nil, apperrors.NewAppError(500, "failed to query party "+partyID, err)
	}

	balance := mapping.ToDomainPartyBalance(m)
	return &balance, nil
}
