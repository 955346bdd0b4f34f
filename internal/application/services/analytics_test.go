package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"file-manager-api/internal/domain/analytics"
	"file-manager-api/internal/domain/file"
)

type fakeAnalyticsRepo struct {
	CountByTypeFunc      func(ctx context.Context, userID uuid.UUID) (map[file.Type]int, error)
	CreatedPerDayFunc    func(ctx context.Context, userID uuid.UUID, since time.Time) ([]analytics.TrendBucket, error)
	RecentlyModifiedFunc func(ctx context.Context, userID uuid.UUID, limit int) (file.FileRecords, error)
	FilesAtLeastFunc     func(ctx context.Context, userID uuid.UUID, minBytes int64, limit int) (file.FileRecords, error)
}

func (f *fakeAnalyticsRepo) CountByType(ctx context.Context, userID uuid.UUID) (map[file.Type]int, error) {
	if f.CountByTypeFunc == nil {
		return map[file.Type]int{}, nil
	}
	return f.CountByTypeFunc(ctx, userID)
}
func (f *fakeAnalyticsRepo) CreatedPerDay(ctx context.Context, userID uuid.UUID, since time.Time) ([]analytics.TrendBucket, error) {
	if f.CreatedPerDayFunc == nil {
		return nil, nil
	}
	return f.CreatedPerDayFunc(ctx, userID, since)
}
func (f *fakeAnalyticsRepo) RecentlyModified(ctx context.Context, userID uuid.UUID, limit int) (file.FileRecords, error) {
	if f.RecentlyModifiedFunc == nil {
		return nil, nil
	}
	return f.RecentlyModifiedFunc(ctx, userID, limit)
}
func (f *fakeAnalyticsRepo) FilesAtLeast(ctx context.Context, userID uuid.UUID, minBytes int64, limit int) (file.FileRecords, error) {
	if f.FilesAtLeastFunc == nil {
		return nil, nil
	}
	return f.FilesAtLeastFunc(ctx, userID, minBytes, limit)
}

func TestAnalyticsService_TypeDistribution_ZeroFills(t *testing.T) {
	userID := uuid.New()
	repo := &fakeAnalyticsRepo{
		CountByTypeFunc: func(ctx context.Context, gotUser uuid.UUID) (map[file.Type]int, error) {
			assert.Equal(t, userID, gotUser)
			// the query only returns types that have rows
			return map[file.Type]int{file.TypeImage: 7}, nil
		},
	}
	svc := NewAnalyticsService(repo)

	dist, err := svc.TypeDistribution(context.Background(), userID)
	require.NoError(t, err)

	require.Len(t, dist, len(file.Types()))
	assert.Equal(t, 7, dist[file.TypeImage])
	for _, ty := range []file.Type{file.TypeDocument, file.TypeVideo, file.TypeAudio, file.TypeOther} {
		assert.Equal(t, 0, dist[ty])
	}
}

func TestAnalyticsService_UsageTrend_Window(t *testing.T) {
	userID := uuid.New()
	repo := &fakeAnalyticsRepo{
		CreatedPerDayFunc: func(ctx context.Context, gotUser uuid.UUID, since time.Time) ([]analytics.TrendBucket, error) {
			wantSince := time.Now().UTC().AddDate(0, 0, -7)
			assert.WithinDuration(t, wantSince, since, time.Minute)
			return []analytics.TrendBucket{}, nil
		},
	}
	svc := NewAnalyticsService(repo)

	buckets, err := svc.UsageTrend(context.Background(), userID, 7)
	require.NoError(t, err)
	assert.Empty(t, buckets)
}

func TestAnalyticsService_RecentActivity_ActionTagging(t *testing.T) {
	userID := uuid.New()
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	repo := &fakeAnalyticsRepo{
		RecentlyModifiedFunc: func(ctx context.Context, gotUser uuid.UUID, limit int) (file.FileRecords, error) {
			return file.FileRecords{
				{UUID: uuid.New(), FileName: "fresh.png", CreatedAt: created, UpdatedAt: created},
				{UUID: uuid.New(), FileName: "edited.pdf", CreatedAt: created, UpdatedAt: created.Add(time.Hour)},
			}, nil
		},
	}
	svc := NewAnalyticsService(repo)

	items, err := svc.RecentActivity(context.Background(), userID, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, analytics.ActionUploaded, items[0].Action)
	assert.Equal(t, analytics.ActionUpdated, items[1].Action)
}

func TestAnalyticsService_LargeFiles_Rounding(t *testing.T) {
	userID := uuid.New()

	repo := &fakeAnalyticsRepo{
		FilesAtLeastFunc: func(ctx context.Context, gotUser uuid.UUID, minBytes int64, limit int) (file.FileRecords, error) {
			assert.EqualValues(t, 10*mb, minBytes)
			return file.FileRecords{
				{UUID: uuid.New(), FileName: "exact.bin", SizeBytes: 25 * mb},
				{UUID: uuid.New(), FileName: "odd.bin", SizeBytes: 10*mb + 567890},
			}, nil
		},
	}
	svc := NewAnalyticsService(repo)

	files, err := svc.LargeFiles(context.Background(), userID, 10, 10)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, 25.0, files[0].SizeMB)
	assert.Equal(t, 10.54, files[1].SizeMB)
}

func TestAnalyticsService_Dashboard_EmptyCatalog(t *testing.T) {
	userID := uuid.New()
	svc := NewAnalyticsService(&fakeAnalyticsRepo{})

	d, err := svc.Dashboard(context.Background(), userID, 30)
	require.NoError(t, err)
	require.NotNil(t, d)

	assert.Len(t, d.Distribution, len(file.Types()))
	assert.Empty(t, d.Trend)
	assert.Empty(t, d.Recent)
	assert.Empty(t, d.LargeFiles)
}

func TestAnalyticsService_Dashboard_RepoError(t *testing.T) {
	userID := uuid.New()
	repo := &fakeAnalyticsRepo{
		CountByTypeFunc: func(ctx context.Context, userID uuid.UUID) (map[file.Type]int, error) {
			return nil, errors.New("db error")
		},
	}
	svc := NewAnalyticsService(repo)

	_, err := svc.Dashboard(context.Background(), userID, 30)
	require.Error(t, err)
}
