package file

import (
	"context"

	"github.com/google/uuid"
)

// Repository owns the file catalog. Every mutating operation also applies
// the matching quota delta inside the same transaction, so a failed commit
// never leaves a credited reservation behind.
type Repository interface {
	Create(ctx context.Context, rec *FileRecord) (*FileRecord, error)
	Rename(ctx context.Context, userID, fileID uuid.UUID, newName string) (*FileRecord, error)
	Replace(ctx context.Context, userID, fileID uuid.UUID, newSize int64, newKey, newURL string) (*FileRecord, error)
	Delete(ctx context.Context, userID, fileID uuid.UUID) error
	Fetch(ctx context.Context, userID, fileID uuid.UUID) (*FileRecord, error)
	FetchList(ctx context.Context, userID uuid.UUID, filter ListFilter) (FileRecords, int, error)
}
