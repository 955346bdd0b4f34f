package quota

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("quota account not found")
	// ErrInsufficientSpace is returned by a reservation that would push
	// used bytes over the account total; state is left unchanged.
	ErrInsufficientSpace = errors.New("not enough storage space")
)

// Account tracks the byte allowance of one user.
// Invariant: 0 <= UsedBytes <= TotalBytes at every commit point, except for
// administratively overdrawn accounts (total lowered below usage), which
// simply block new reservations until usage drops.
type Account struct {
	UUID   uuid.UUID
	UserID uuid.UUID

	TotalBytes int64
	UsedBytes  int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a *Account) AvailableBytes() int64 {
	if a.UsedBytes >= a.TotalBytes {
		return 0
	}
	return a.TotalBytes - a.UsedBytes
}
