package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"

	"file-manager-api/internal/domain/file"
)

// Repository is the read-only view over the file catalog that the
// aggregator derives its reports from.
type Repository interface {
	CountByType(ctx context.Context, userID uuid.UUID) (map[file.Type]int, error)
	CreatedPerDay(ctx context.Context, userID uuid.UUID, since time.Time) ([]TrendBucket, error)
	RecentlyModified(ctx context.Context, userID uuid.UUID, limit int) (file.FileRecords, error)
	FilesAtLeast(ctx context.Context, userID uuid.UUID, minBytes int64, limit int) (file.FileRecords, error)
}
