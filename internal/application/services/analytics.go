package services

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"file-manager-api/internal/application/ports"
	domain "file-manager-api/internal/domain/analytics"
	"file-manager-api/internal/domain/file"
)

const mb = 1024 * 1024

// AnalyticsService derives read-only views over the file catalog.
// Every report tolerates zero rows and returns zeroed/empty structures.
type AnalyticsService struct {
	repository domain.Repository
}

func NewAnalyticsService(repository domain.Repository) ports.AnalyticsService {
	return &AnalyticsService{repository: repository}
}

// TypeDistribution reports a count for every enum value, zero included.
func (as *AnalyticsService) TypeDistribution(ctx context.Context, userID uuid.UUID) (map[file.Type]int, error) {
	counts, err := as.repository.CountByType(ctx, userID)
	if err != nil {
		return nil, err
	}

	dist := make(map[file.Type]int, len(file.Types()))
	for _, t := range file.Types() {
		dist[t] = counts[t]
	}

	return dist, nil
}

// UsageTrend buckets files created within the last `days` by UTC calendar
// day; days without activity are omitted rather than zero-filled.
func (as *AnalyticsService) UsageTrend(ctx context.Context, userID uuid.UUID, days int) ([]domain.TrendBucket, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)
	return as.repository.CreatedPerDay(ctx, userID, since)
}

func (as *AnalyticsService) RecentActivity(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ActivityItem, error) {
	files, err := as.repository.RecentlyModified(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	items := make([]domain.ActivityItem, len(files))
	for idx, f := range files {
		action := domain.ActionUpdated
		if f.UpdatedAt.Equal(f.CreatedAt) {
			action = domain.ActionUploaded
		}
		items[idx] = domain.ActivityItem{
			FileID:    f.UUID,
			FileName:  f.FileName,
			FileType:  f.FileType,
			SizeBytes: f.SizeBytes,
			CreatedAt: f.CreatedAt,
			UpdatedAt: f.UpdatedAt,
			Action:    action,
		}
	}

	return items, nil
}

func (as *AnalyticsService) LargeFiles(ctx context.Context, userID uuid.UUID, minSizeMB, limit int) ([]domain.LargeFile, error) {
	files, err := as.repository.FilesAtLeast(ctx, userID, int64(minSizeMB)*mb, limit)
	if err != nil {
		return nil, err
	}

	out := make([]domain.LargeFile, len(files))
	for idx, f := range files {
		out[idx] = domain.LargeFile{
			FileID:    f.UUID,
			FileName:  f.FileName,
			FileType:  f.FileType,
			SizeBytes: f.SizeBytes,
			SizeMB:    roundMB(f.SizeBytes),
			CreatedAt: f.CreatedAt,
		}
	}

	return out, nil
}

func (as *AnalyticsService) Dashboard(ctx context.Context, userID uuid.UUID, days int) (*domain.Dashboard, error) {
	dist, err := as.TypeDistribution(ctx, userID)
	if err != nil {
		return nil, err
	}
	trend, err := as.UsageTrend(ctx, userID, days)
	if err != nil {
		return nil, err
	}
	recent, err := as.RecentActivity(ctx, userID, defaultActivityLimit)
	if err != nil {
		return nil, err
	}
	large, err := as.LargeFiles(ctx, userID, defaultLargeFileMinMB, defaultActivityLimit)
	if err != nil {
		return nil, err
	}

	return &domain.Dashboard{
		Distribution: dist,
		Trend:        trend,
		Recent:       recent,
		LargeFiles:   large,
	}, nil
}

const (
	defaultActivityLimit  = 10
	defaultLargeFileMinMB = 10
)

// roundMB converts bytes to megabytes with 2-decimal precision.
func roundMB(sizeBytes int64) float64 {
	return math.Round(float64(sizeBytes)/mb*100) / 100
}
