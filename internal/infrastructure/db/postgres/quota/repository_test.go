package quota

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "file-manager-api/internal/domain/quota"
)

const defaultTotal = int64(1024)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *Repository) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, &Repository{db: mock, defaultTotal: defaultTotal}
}

func accountRows(userID uuid.UUID, total, used int64) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows([]string{"uuid", "user_id", "total_bytes", "used_bytes", "created_at", "updated_at"}).
		AddRow(uuid.New(), userID, total, used, now, now)
}

func TestRepository_EnsureAccount(t *testing.T) {
	mock, repo := newMockRepo(t)
	userID := uuid.New()

	mock.ExpectExec(InsertAccountIfAbsent).
		WithArgs(userID, defaultTotal).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(SelectAccount).
		WithArgs(userID).
		WillReturnRows(accountRows(userID, defaultTotal, 0))

	a, err := repo.EnsureAccount(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, a.UserID)
	assert.Equal(t, defaultTotal, a.TotalBytes)
	assert.Zero(t, a.UsedBytes)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchAccount_NotFound(t *testing.T) {
	mock, repo := newMockRepo(t)
	userID := uuid.New()

	mock.ExpectQuery(SelectAccount).
		WithArgs(userID).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FetchAccount(context.Background(), userID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateAccount(t *testing.T) {
	t.Run("total only", func(t *testing.T) {
		mock, repo := newMockRepo(t)
		userID := uuid.New()

		mock.ExpectQuery(UpdateAccountTotal).
			WithArgs(userID, int64(4096)).
			WillReturnRows(accountRows(userID, 4096, 100))

		a, err := repo.UpdateAccount(context.Background(), userID, 4096, nil)
		require.NoError(t, err)
		assert.EqualValues(t, 4096, a.TotalBytes)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("total and used", func(t *testing.T) {
		mock, repo := newMockRepo(t)
		userID := uuid.New()
		used := int64(512)

		mock.ExpectQuery(UpdateAccountTotalAndUsed).
			WithArgs(userID, int64(4096), used).
			WillReturnRows(accountRows(userID, 4096, used))

		a, err := repo.UpdateAccount(context.Background(), userID, 4096, &used)
		require.NoError(t, err)
		assert.Equal(t, used, a.UsedBytes)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing account", func(t *testing.T) {
		mock, repo := newMockRepo(t)
		userID := uuid.New()

		mock.ExpectQuery(UpdateAccountTotal).
			WithArgs(userID, int64(4096)).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.UpdateAccount(context.Background(), userID, 4096, nil)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestReserve(t *testing.T) {
	t.Run("debits within capacity", func(t *testing.T) {
		mock, _ := newMockRepo(t)
		userID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(SelectUsageForUpdate).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"total_bytes", "used_bytes"}).AddRow(int64(100), int64(40)))
		mock.ExpectExec(AddUsedBytes).
			WithArgs(userID, int64(60)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		ctx := context.Background()
		tx, err := mock.Begin(ctx)
		require.NoError(t, err)

		require.NoError(t, Reserve(ctx, tx, userID, 60))
		require.NoError(t, tx.Commit(ctx))

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects overflow without mutating", func(t *testing.T) {
		mock, _ := newMockRepo(t)
		userID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(SelectUsageForUpdate).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"total_bytes", "used_bytes"}).AddRow(int64(100), int64(90)))
		mock.ExpectRollback()

		ctx := context.Background()
		tx, err := mock.Begin(ctx)
		require.NoError(t, err)

		err = Reserve(ctx, tx, userID, 11)
		require.ErrorIs(t, err, domain.ErrInsufficientSpace)
		require.NoError(t, tx.Rollback(ctx))

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing account", func(t *testing.T) {
		mock, _ := newMockRepo(t)
		userID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(SelectUsageForUpdate).
			WithArgs(userID).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		ctx := context.Background()
		tx, err := mock.Begin(ctx)
		require.NoError(t, err)

		err = Reserve(ctx, tx, userID, 1)
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, tx.Rollback(ctx))
	})
}

func TestRelease_FlooredAtZero(t *testing.T) {
	mock, _ := newMockRepo(t)
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(SelectUsageForUpdate).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"total_bytes", "used_bytes"}).AddRow(int64(100), int64(10)))
	mock.ExpectExec(SubtractUsedBytes).
		WithArgs(userID, int64(50)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	ctx := context.Background()
	tx, err := mock.Begin(ctx)
	require.NoError(t, err)

	require.NoError(t, Release(ctx, tx, userID, 50))
	require.NoError(t, tx.Commit(ctx))

	require.NoError(t, mock.ExpectationsWereMet())
}
