package quota

import (
	"context"

	"github.com/google/uuid"
)

// Ledger covers account-level operations. Reserve/release run inside the
// file catalog's transactions (see the postgres file repository) so that a
// metadata rollback also reverts the reservation.
type Ledger interface {
	// EnsureAccount returns the user's account, creating one with the
	// system-default capacity if absent. Idempotent.
	EnsureAccount(ctx context.Context, userID uuid.UUID) (*Account, error)
	FetchAccount(ctx context.Context, userID uuid.UUID) (*Account, error)
	// UpdateAccount is the administrative resize: sets the total and,
	// when usedBytes is non-nil, the used counter. No validation against
	// current usage, an operator may overdraw an account on purpose.
	UpdateAccount(ctx context.Context, userID uuid.UUID, totalBytes int64, usedBytes *int64) (*Account, error)
}
