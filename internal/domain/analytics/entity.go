package analytics

import (
	"time"

	"github.com/google/uuid"

	"file-manager-api/internal/domain/file"
)

type Action string

const (
	ActionUploaded Action = "uploaded"
	ActionUpdated  Action = "updated"
)

type (
	// TrendBucket aggregates files created on one UTC calendar day.
	// Days without activity produce no bucket.
	TrendBucket struct {
		Day        time.Time
		FileCount  int
		TotalBytes int64
	}

	ActivityItem struct {
		FileID    uuid.UUID
		FileName  string
		FileType  file.Type
		SizeBytes int64
		CreatedAt time.Time
		UpdatedAt time.Time
		Action    Action
	}

	LargeFile struct {
		FileID    uuid.UUID
		FileName  string
		FileType  file.Type
		SizeBytes int64
		SizeMB    float64
		CreatedAt time.Time
	}

	Dashboard struct {
		Distribution map[file.Type]int
		Trend        []TrendBucket
		Recent       []ActivityItem
		LargeFiles   []LargeFile
	}
)
