package ports

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"file-manager-api/internal/domain/file"
)

type FileService interface {
	CreateFile(ctx context.Context, userID uuid.UUID, in *multipart.FileHeader, fileType file.Type) (*file.FileRecord, error)
	RenameFile(ctx context.Context, userID, fileID uuid.UUID, newName string) (*file.FileRecord, error)
	ReplaceFile(ctx context.Context, userID, fileID uuid.UUID, in *multipart.FileHeader) (*file.FileRecord, error)
	DeleteFile(ctx context.Context, userID, fileID uuid.UUID) error
	FindFile(ctx context.Context, userID, fileID uuid.UUID) (*file.FileRecord, error)
	FindFiles(ctx context.Context, userID uuid.UUID, filter file.ListFilter) (file.FileRecords, int, error)
}
