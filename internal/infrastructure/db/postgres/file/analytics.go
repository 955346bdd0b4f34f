package file

import (
	"context"
	"time"

	"github.com/google/uuid"

	"file-manager-api/internal/domain/analytics"
	domain "file-manager-api/internal/domain/file"
)

func (r *Repository) CountByType(ctx context.Context, userID uuid.UUID) (map[domain.Type]int, error) {
	rows, err := r.db.Query(ctx, CountFilesByType, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.Type]int)
	for rows.Next() {
		var (
			t string
			n int
		)
		if err = rows.Scan(&t, &n); err != nil {
			return nil, err
		}
		counts[domain.Type(t)] = n
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

func (r *Repository) CreatedPerDay(ctx context.Context, userID uuid.UUID, since time.Time) ([]analytics.TrendBucket, error) {
	rows, err := r.db.Query(ctx, SelectCreatedPerDay, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buckets []analytics.TrendBucket
	for rows.Next() {
		var b analytics.TrendBucket
		if err = rows.Scan(&b.Day, &b.FileCount, &b.TotalBytes); err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return buckets, nil
}

func (r *Repository) RecentlyModified(ctx context.Context, userID uuid.UUID, limit int) (domain.FileRecords, error) {
	rows, err := r.db.Query(ctx, SelectRecentlyModified, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectFiles(rows)
}

func (r *Repository) FilesAtLeast(ctx context.Context, userID uuid.UUID, minBytes int64, limit int) (domain.FileRecords, error) {
	rows, err := r.db.Query(ctx, SelectFilesAtLeast, userID, minBytes, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectFiles(rows)
}
