package ports

import (
	"context"

	"github.com/google/uuid"

	"file-manager-api/internal/domain/analytics"
	"file-manager-api/internal/domain/file"
)

type AnalyticsService interface {
	TypeDistribution(ctx context.Context, userID uuid.UUID) (map[file.Type]int, error)
	UsageTrend(ctx context.Context, userID uuid.UUID, days int) ([]analytics.TrendBucket, error)
	RecentActivity(ctx context.Context, userID uuid.UUID, limit int) ([]analytics.ActivityItem, error)
	LargeFiles(ctx context.Context, userID uuid.UUID, minSizeMB, limit int) ([]analytics.LargeFile, error)
	Dashboard(ctx context.Context, userID uuid.UUID, days int) (*analytics.Dashboard, error)
}
