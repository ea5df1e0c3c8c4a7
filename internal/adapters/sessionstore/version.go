package sessionstore

import (
	"fmt"

	"github.com/SscSPs/payment_voucher_app/internal/apperrors"
	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
)

// checkVersion accepts session when it directly follows stored, or when it is
// the first save of a session nothing is stored for. stored is nil when the
// key is absent or expired.
func checkVersion(session domain.SettlementSession, stored *domain.SettlementSession) error {
	if stored == nil {
		if session.Version > 1 {
			return fmt.Errorf("%w: settlement session %s", apperrors.ErrNotFound, session.SessionID)
		}
		return nil
	}
	if session.Version != stored.Version+1 {
		return fmt.Errorf("%w: settlement session %s is at version %d, save was based on %d",
			apperrors.ErrConflict, session.SessionID, stored.Version, session.Version-1)
	}
	return nil
}
