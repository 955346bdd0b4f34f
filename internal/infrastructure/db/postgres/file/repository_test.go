package file

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "file-manager-api/internal/domain/file"
	domainQuota "file-manager-api/internal/domain/quota"
	quotaDB "file-manager-api/internal/infrastructure/db/postgres/quota"
)

const defaultQuota = int64(1 << 20)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *Repository) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewRepository(mock, defaultQuota)
}

func fileRows(rec *domain.FileRecord) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows([]string{
		"uuid", "user_id", "file_name", "file_type", "size_bytes", "storage_key", "file_url", "created_at", "updated_at",
	}).AddRow(
		rec.UUID, rec.UserID, rec.FileName, string(rec.FileType), rec.SizeBytes, rec.StorageKey, rec.FileURL, now, now,
	)
}

func usageRows(total, used int64) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"total_bytes", "used_bytes"}).AddRow(total, used)
}

func TestRepository_Create(t *testing.T) {
	userID := uuid.New()
	rec := &domain.FileRecord{
		UUID:       uuid.New(),
		UserID:     userID,
		FileName:   "doc.pdf",
		FileType:   domain.TypeDocument,
		SizeBytes:  2048,
		StorageKey: userID.String() + "/abc/doc.pdf",
		FileURL:    "https://bucket.s3.eu-west-1.amazonaws.com/doc.pdf",
	}

	t.Run("reserves quota and inserts in one tx", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(quotaDB.InsertAccountIfAbsent).
			WithArgs(userID, defaultQuota).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))
		mock.ExpectQuery(quotaDB.SelectUsageForUpdate).
			WithArgs(userID).
			WillReturnRows(usageRows(defaultQuota, 0))
		mock.ExpectExec(quotaDB.AddUsedBytes).
			WithArgs(userID, rec.SizeBytes).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(InsertFile).
			WithArgs(userID, rec.FileName, string(rec.FileType), rec.SizeBytes, rec.StorageKey, rec.FileURL).
			WillReturnRows(fileRows(rec))
		mock.ExpectCommit()

		out, err := repo.Create(context.Background(), rec)
		require.NoError(t, err)
		assert.Equal(t, rec.UUID, out.UUID)
		assert.Equal(t, domain.TypeDocument, out.FileType)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("quota overflow rolls back", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(quotaDB.InsertAccountIfAbsent).
			WithArgs(userID, defaultQuota).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))
		mock.ExpectQuery(quotaDB.SelectUsageForUpdate).
			WithArgs(userID).
			WillReturnRows(usageRows(defaultQuota, defaultQuota-1))
		mock.ExpectRollback()

		_, err := repo.Create(context.Background(), rec)
		require.ErrorIs(t, err, domainQuota.ErrInsufficientSpace)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate name rolls the reservation back", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(quotaDB.InsertAccountIfAbsent).
			WithArgs(userID, defaultQuota).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))
		mock.ExpectQuery(quotaDB.SelectUsageForUpdate).
			WithArgs(userID).
			WillReturnRows(usageRows(defaultQuota, 0))
		mock.ExpectExec(quotaDB.AddUsedBytes).
			WithArgs(userID, rec.SizeBytes).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(InsertFile).
			WithArgs(userID, rec.FileName, string(rec.FileType), rec.SizeBytes, rec.StorageKey, rec.FileURL).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "files_user_id_file_name_key"})
		mock.ExpectRollback()

		_, err := repo.Create(context.Background(), rec)
		require.ErrorIs(t, err, domain.ErrDuplicateName)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Rename(t *testing.T) {
	userID := uuid.New()
	fileID := uuid.New()

	t.Run("not found", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectQuery(RenameFile).
			WithArgs(fileID, userID, "new.pdf").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.Rename(context.Background(), userID, fileID, "new.pdf")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("duplicate target name", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectQuery(RenameFile).
			WithArgs(fileID, userID, "taken.pdf").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := repo.Rename(context.Background(), userID, fileID, "taken.pdf")
		require.ErrorIs(t, err, domain.ErrDuplicateName)
	})

	t.Run("renamed", func(t *testing.T) {
		mock, repo := newMockRepo(t)
		rec := &domain.FileRecord{UUID: fileID, UserID: userID, FileName: "new.pdf", FileType: domain.TypeDocument}

		mock.ExpectQuery(RenameFile).
			WithArgs(fileID, userID, "new.pdf").
			WillReturnRows(fileRows(rec))

		out, err := repo.Rename(context.Background(), userID, fileID, "new.pdf")
		require.NoError(t, err)
		assert.Equal(t, "new.pdf", out.FileName)
	})
}

func TestRepository_Replace(t *testing.T) {
	userID := uuid.New()
	fileID := uuid.New()

	t.Run("growth reserves the delta", func(t *testing.T) {
		mock, repo := newMockRepo(t)
		rec := &domain.FileRecord{UUID: fileID, UserID: userID, FileName: "doc.pdf", SizeBytes: 3000}

		mock.ExpectBegin()
		mock.ExpectQuery(SelectFileSizeForUpdate).
			WithArgs(fileID, userID).
			WillReturnRows(pgxmock.NewRows([]string{"size_bytes"}).AddRow(int64(1000)))
		mock.ExpectQuery(quotaDB.SelectUsageForUpdate).
			WithArgs(userID).
			WillReturnRows(usageRows(defaultQuota, 1000))
		mock.ExpectExec(quotaDB.AddUsedBytes).
			WithArgs(userID, int64(2000)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(ReplaceFile).
			WithArgs(fileID, userID, int64(3000), "new-key", "new-url").
			WillReturnRows(fileRows(rec))
		mock.ExpectCommit()

		out, err := repo.Replace(context.Background(), userID, fileID, 3000, "new-key", "new-url")
		require.NoError(t, err)
		assert.EqualValues(t, 3000, out.SizeBytes)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("shrink releases the delta", func(t *testing.T) {
		mock, repo := newMockRepo(t)
		rec := &domain.FileRecord{UUID: fileID, UserID: userID, FileName: "doc.pdf", SizeBytes: 400}

		mock.ExpectBegin()
		mock.ExpectQuery(SelectFileSizeForUpdate).
			WithArgs(fileID, userID).
			WillReturnRows(pgxmock.NewRows([]string{"size_bytes"}).AddRow(int64(1000)))
		mock.ExpectQuery(quotaDB.SelectUsageForUpdate).
			WithArgs(userID).
			WillReturnRows(usageRows(defaultQuota, 1000))
		mock.ExpectExec(quotaDB.SubtractUsedBytes).
			WithArgs(userID, int64(600)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(ReplaceFile).
			WithArgs(fileID, userID, int64(400), "new-key", "new-url").
			WillReturnRows(fileRows(rec))
		mock.ExpectCommit()

		_, err := repo.Replace(context.Background(), userID, fileID, 400, "new-key", "new-url")
		require.NoError(t, err)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("overflow keeps the old record", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(SelectFileSizeForUpdate).
			WithArgs(fileID, userID).
			WillReturnRows(pgxmock.NewRows([]string{"size_bytes"}).AddRow(int64(1000)))
		mock.ExpectQuery(quotaDB.SelectUsageForUpdate).
			WithArgs(userID).
			WillReturnRows(usageRows(2000, 1000))
		mock.ExpectRollback()

		_, err := repo.Replace(context.Background(), userID, fileID, 5000, "new-key", "new-url")
		require.ErrorIs(t, err, domainQuota.ErrInsufficientSpace)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(SelectFileSizeForUpdate).
			WithArgs(fileID, userID).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		_, err := repo.Replace(context.Background(), userID, fileID, 100, "k", "u")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	userID := uuid.New()
	fileID := uuid.New()

	t.Run("releases the file's bytes", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(DeleteFile).
			WithArgs(fileID, userID).
			WillReturnRows(pgxmock.NewRows([]string{"size_bytes"}).AddRow(int64(2048)))
		mock.ExpectQuery(quotaDB.SelectUsageForUpdate).
			WithArgs(userID).
			WillReturnRows(usageRows(defaultQuota, 2048))
		mock.ExpectExec(quotaDB.SubtractUsedBytes).
			WithArgs(userID, int64(2048)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Delete(context.Background(), userID, fileID))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(DeleteFile).
			WithArgs(fileID, userID).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		err := repo.Delete(context.Background(), userID, fileID)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRepository_FetchList(t *testing.T) {
	userID := uuid.New()

	t.Run("filters by type with total", func(t *testing.T) {
		mock, repo := newMockRepo(t)
		ft := domain.TypeImage
		typeArg := string(ft)

		mock.ExpectQuery(CountFiles).
			WithArgs(userID, &typeArg).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))
		rec := &domain.FileRecord{UUID: uuid.New(), UserID: userID, FileName: "a.png", FileType: ft, SizeBytes: 10}
		mock.ExpectQuery(SelectFiles).
			WithArgs(userID, &typeArg, 20, 5).
			WillReturnRows(fileRows(rec))

		fs, total, err := repo.FetchList(context.Background(), userID, domain.ListFilter{Type: &ft, Skip: 5, Limit: 20})
		require.NoError(t, err)
		assert.Equal(t, 7, total)
		require.Len(t, fs, 1)
		assert.Equal(t, domain.TypeImage, fs[0].FileType)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil filter matches all types", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectQuery(CountFiles).
			WithArgs(userID, (*string)(nil)).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(SelectFiles).
			WithArgs(userID, (*string)(nil), 100, 0).
			WillReturnRows(pgxmock.NewRows([]string{
				"uuid", "user_id", "file_name", "file_type", "size_bytes", "storage_key", "file_url", "created_at", "updated_at",
			}))

		fs, total, err := repo.FetchList(context.Background(), userID, domain.ListFilter{Limit: 100})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, fs)
	})
}
