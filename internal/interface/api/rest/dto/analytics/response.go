package analytics

import (
	"time"

	"github.com/google/uuid"
)

type (
	TypeDistribution struct {
		Distribution map[string]int `json:"distribution"`
	}

	TrendBucket struct {
		Date       string `json:"date"`
		FileCount  int    `json:"file_count"`
		TotalBytes int64  `json:"total_bytes"`
	}
	UsageTrend struct {
		Days    int           `json:"days"`
		Buckets []TrendBucket `json:"buckets"`
	}

	ActivityItem struct {
		FileID    uuid.UUID `json:"file_id"`
		FileName  string    `json:"file_name"`
		FileType  string    `json:"file_type"`
		SizeBytes int64     `json:"size_bytes"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
		Action    string    `json:"action"`
	}
	RecentActivity struct {
		Data []ActivityItem `json:"data"`
	}

	LargeFile struct {
		FileID    uuid.UUID `json:"file_id"`
		FileName  string    `json:"file_name"`
		FileType  string    `json:"file_type"`
		SizeBytes int64     `json:"size_bytes"`
		SizeMB    float64   `json:"size_mb"`
		CreatedAt time.Time `json:"created_at"`
	}
	LargeFiles struct {
		Data []LargeFile `json:"data"`
	}

	Dashboard struct {
		Distribution map[string]int `json:"distribution"`
		Trend        []TrendBucket  `json:"trend"`
		Recent       []ActivityItem `json:"recent_activity"`
		LargeFiles   []LargeFile    `json:"large_files"`
	}
)
