package quota

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domain "file-manager-api/internal/domain/quota"
	"file-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db           postgres.DB
	defaultTotal int64
}

func NewRepository(db postgres.DB, defaultTotal int64) domain.Ledger {
	return &Repository{db: db, defaultTotal: defaultTotal}
}

func (r *Repository) EnsureAccount(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	if _, err := r.db.Exec(ctx, InsertAccountIfAbsent, userID, r.defaultTotal); err != nil {
		return nil, err
	}

	return r.FetchAccount(ctx, userID)
}

func (r *Repository) FetchAccount(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	a := new(domain.Account)
	err := r.db.QueryRow(ctx, SelectAccount, userID).Scan(
		&a.UUID,
		&a.UserID,
		&a.TotalBytes,
		&a.UsedBytes,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return a, nil
}

func (r *Repository) UpdateAccount(ctx context.Context, userID uuid.UUID, totalBytes int64, usedBytes *int64) (*domain.Account, error) {
	a := new(domain.Account)

	var row pgx.Row
	if usedBytes != nil {
		row = r.db.QueryRow(ctx, UpdateAccountTotalAndUsed, userID, totalBytes, *usedBytes)
	} else {
		row = r.db.QueryRow(ctx, UpdateAccountTotal, userID, totalBytes)
	}

	err := row.Scan(
		&a.UUID,
		&a.UserID,
		&a.TotalBytes,
		&a.UsedBytes,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return a, nil
}
