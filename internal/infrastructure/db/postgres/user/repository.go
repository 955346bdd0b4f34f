package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "file-manager-api/internal/domain/user"
	"file-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := new(domain.User)
	err := r.db.QueryRow(ctx, SelectUserByEmail, email).Scan(
		&u.UUID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Name,
		&u.Lastname,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return u, nil
}

func (r *Repository) FetchIDs(ctx context.Context) ([]domain.UUID, error) {
	rows, err := r.db.Query(ctx, SelectUserIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []domain.UUID
	for rows.Next() {
		var id domain.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
