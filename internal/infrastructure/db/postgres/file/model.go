package file

import (
	"time"

	"github.com/google/uuid"

	domain "file-manager-api/internal/domain/file"
)

type (
	FileRecord struct {
		UUID   uuid.UUID
		UserID uuid.UUID

		FileName   string
		FileType   string
		SizeBytes  int64
		StorageKey string
		FileURL    string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	FileRecords []*FileRecord
)

func scanColumns(f *FileRecord) []any {
	return []any{
		&f.UUID,
		&f.UserID,

		&f.FileName,
		&f.FileType,
		&f.SizeBytes,
		&f.StorageKey,
		&f.FileURL,

		&f.CreatedAt,
		&f.UpdatedAt,
	}
}

func fromDBModel(model *FileRecord) *domain.FileRecord {
	return &domain.FileRecord{
		UUID:   model.UUID,
		UserID: model.UserID,

		FileName:   model.FileName,
		FileType:   domain.Type(model.FileType),
		SizeBytes:  model.SizeBytes,
		StorageKey: model.StorageKey,
		FileURL:    model.FileURL,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func fromDBModels(models FileRecords) domain.FileRecords {
	fs := make(domain.FileRecords, len(models))
	for idx, f := range models {
		fs[idx] = fromDBModel(f)
	}

	return fs
}
