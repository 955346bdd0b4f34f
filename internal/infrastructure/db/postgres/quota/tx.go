package quota

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domain "file-manager-api/internal/domain/quota"
)

// The helpers below run inside a caller-owned transaction. The row lock
// taken by SelectUsageForUpdate serializes all quota mutations for one
// user until that transaction commits or rolls back, which is what keeps
// concurrent reservations from jointly overflowing the account.

// Ensure creates the account with the default capacity if it does not
// exist yet.
func Ensure(ctx context.Context, tx pgx.Tx, userID uuid.UUID, defaultTotal int64) error {
	_, err := tx.Exec(ctx, InsertAccountIfAbsent, userID, defaultTotal)
	return err
}

// Reserve debits delta bytes, failing with ErrInsufficientSpace without
// mutating state when the account cannot hold them.
func Reserve(ctx context.Context, tx pgx.Tx, userID uuid.UUID, delta int64) error {
	var total, used int64
	err := tx.QueryRow(ctx, SelectUsageForUpdate, userID).Scan(&total, &used)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	if used+delta > total {
		return domain.ErrInsufficientSpace
	}

	_, err = tx.Exec(ctx, AddUsedBytes, userID, delta)
	return err
}

// Release credits delta bytes back, floored at zero.
func Release(ctx context.Context, tx pgx.Tx, userID uuid.UUID, delta int64) error {
	var total, used int64
	err := tx.QueryRow(ctx, SelectUsageForUpdate, userID).Scan(&total, &used)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	_, err = tx.Exec(ctx, SubtractUsedBytes, userID, delta)
	return err
}
