package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
)

// SessionStore keeps settlement sessions between requests.
// Get returns apperrors.ErrNotFound for unknown or expired sessions.
// Save accepts a session only when its Version is one past the stored one, or 1
// for a new session; otherwise it returns apperrors.ErrConflict.
type SessionStore interface {
	GetSession(ctx context.Context, sessionID string) (*domain.SettlementSession, error)
	SaveSession(ctx context.Context, session domain.SettlementSession, ttl time.Duration) error
	DeleteSession(ctx context.Context, sessionID string) error
}
