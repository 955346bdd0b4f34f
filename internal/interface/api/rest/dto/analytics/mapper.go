package analytics

import (
	domain "file-manager-api/internal/domain/analytics"
	"file-manager-api/internal/domain/file"
)

func ToResponseDistribution(dist map[file.Type]int) TypeDistribution {
	out := make(map[string]int, len(dist))
	for t, n := range dist {
		out[string(t)] = n
	}

	return TypeDistribution{Distribution: out}
}

func ToResponseTrend(buckets []domain.TrendBucket) []TrendBucket {
	out := make([]TrendBucket, len(buckets))
	for idx, b := range buckets {
		out[idx] = TrendBucket{
			Date:       b.Day.UTC().Format("2006-01-02"),
			FileCount:  b.FileCount,
			TotalBytes: b.TotalBytes,
		}
	}

	return out
}

func ToResponseActivity(items []domain.ActivityItem) []ActivityItem {
	out := make([]ActivityItem, len(items))
	for idx, it := range items {
		out[idx] = ActivityItem{
			FileID:    it.FileID,
			FileName:  it.FileName,
			FileType:  string(it.FileType),
			SizeBytes: it.SizeBytes,
			CreatedAt: it.CreatedAt.UTC(),
			UpdatedAt: it.UpdatedAt.UTC(),
			Action:    string(it.Action),
		}
	}

	return out
}

func ToResponseLargeFiles(files []domain.LargeFile) []LargeFile {
	out := make([]LargeFile, len(files))
	for idx, f := range files {
		out[idx] = LargeFile{
			FileID:    f.FileID,
			FileName:  f.FileName,
			FileType:  string(f.FileType),
			SizeBytes: f.SizeBytes,
			SizeMB:    f.SizeMB,
			CreatedAt: f.CreatedAt.UTC(),
		}
	}

	return out
}

func ToResponseDashboard(d *domain.Dashboard) Dashboard {
	return Dashboard{
		Distribution: ToResponseDistribution(d.Distribution).Distribution,
		Trend:        ToResponseTrend(d.Trend),
		Recent:       ToResponseActivity(d.Recent),
		LargeFiles:   ToResponseLargeFiles(d.LargeFiles),
	}
}
