package file

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domain "file-manager-api/internal/domain/file"
	"file-manager-api/internal/infrastructure/db/postgres"
	quotaDB "file-manager-api/internal/infrastructure/db/postgres/quota"
)

// Repository implements both the file catalog and its read-only analytics
// view. Mutations that change a file's footprint run in one transaction
// with the quota delta: the quota row lock serializes concurrent
// reservations per user, and a constraint violation rolls the reservation
// back together with the metadata.
type Repository struct {
	db           postgres.DB
	defaultQuota int64
}

func NewRepository(db postgres.DB, defaultQuota int64) *Repository {
	return &Repository{db: db, defaultQuota: defaultQuota}
}

func (r *Repository) Create(ctx context.Context, rec *domain.FileRecord) (*domain.FileRecord, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err = quotaDB.Ensure(ctx, tx, rec.UserID, r.defaultQuota); err != nil {
		return nil, err
	}
	if err = quotaDB.Reserve(ctx, tx, rec.UserID, rec.SizeBytes); err != nil {
		return nil, err
	}

	f := new(FileRecord)
	err = tx.QueryRow(
		ctx,
		InsertFile,
		rec.UserID, rec.FileName, string(rec.FileType), rec.SizeBytes, rec.StorageKey, rec.FileURL,
	).Scan(scanColumns(f)...)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, domain.ErrDuplicateName
		}
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return fromDBModel(f), nil
}

func (r *Repository) Rename(ctx context.Context, userID, fileID uuid.UUID, newName string) (*domain.FileRecord, error) {
	f := new(FileRecord)
	err := r.db.QueryRow(ctx, RenameFile, fileID, userID, newName).Scan(scanColumns(f)...)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, domain.ErrDuplicateName
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return fromDBModel(f), nil
}

func (r *Repository) Replace(ctx context.Context, userID, fileID uuid.UUID, newSize int64, newKey, newURL string) (*domain.FileRecord, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var oldSize int64
	err = tx.QueryRow(ctx, SelectFileSizeForUpdate, fileID, userID).Scan(&oldSize)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	switch delta := newSize - oldSize; {
	case delta > 0:
		if err = quotaDB.Reserve(ctx, tx, userID, delta); err != nil {
			return nil, err
		}
	case delta < 0:
		if err = quotaDB.Release(ctx, tx, userID, -delta); err != nil {
			return nil, err
		}
	}

	f := new(FileRecord)
	if err = tx.QueryRow(ctx, ReplaceFile, fileID, userID, newSize, newKey, newURL).Scan(scanColumns(f)...); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return fromDBModel(f), nil
}

func (r *Repository) Delete(ctx context.Context, userID, fileID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var size int64
	err = tx.QueryRow(ctx, DeleteFile, fileID, userID).Scan(&size)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	if err = quotaDB.Release(ctx, tx, userID, size); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *Repository) Fetch(ctx context.Context, userID, fileID uuid.UUID) (*domain.FileRecord, error) {
	f := new(FileRecord)
	err := r.db.QueryRow(ctx, SelectFileByID, fileID, userID).Scan(scanColumns(f)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return fromDBModel(f), nil
}

func (r *Repository) FetchList(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (domain.FileRecords, int, error) {
	var typeArg *string
	if filter.Type != nil {
		s := string(*filter.Type)
		typeArg = &s
	}

	// total is independent of the pagination window
	var total int
	if err := r.db.QueryRow(ctx, CountFiles, userID, typeArg).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, SelectFiles, userID, typeArg, filter.Limit, filter.Skip)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	fs, err := collectFiles(rows)
	if err != nil {
		return nil, 0, err
	}

	return fs, total, nil
}

func collectFiles(rows pgx.Rows) (domain.FileRecords, error) {
	var fs FileRecords
	for rows.Next() {
		f := new(FileRecord)
		if err := rows.Scan(scanColumns(f)...); err != nil {
			return nil, err
		}
		fs = append(fs, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(fs), nil
}
