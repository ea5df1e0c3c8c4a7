package pgsql

import (
	portsrepo "github.com/SscSPs/payment_voucher_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres repositories together with the session store.
func NewRepositoryProvider(dbPool *pgxpool.Pool, sessionStore portsrepo.SessionStore) portsrepo.RepositoryProvider {
	partyRepo := newPgxPartyRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)

	return portsrepo.RepositoryProvider{
		PartyRepo:    partyRepo,
		PaymentRepo:  paymentRepo,
		SessionStore: sessionStore,
	}
}
