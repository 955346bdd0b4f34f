package file

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("file not found")
	ErrDuplicateName = errors.New("file with this name already exists")
	// ErrStorageFailure wraps an object-storage error; metadata and quota
	// stay untouched when it is returned.
	ErrStorageFailure = errors.New("object storage operation failed")
)

type Type string

const (
	TypeImage    Type = "image"
	TypeDocument Type = "document"
	TypeVideo    Type = "video"
	TypeAudio    Type = "audio"
	TypeOther    Type = "other"
)

// Types returns every value of the closed enum, in a stable order.
func Types() []Type {
	return []Type{TypeImage, TypeDocument, TypeVideo, TypeAudio, TypeOther}
}

func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case TypeImage:
		return TypeImage, nil
	case TypeDocument:
		return TypeDocument, nil
	case TypeVideo:
		return TypeVideo, nil
	case TypeAudio:
		return TypeAudio, nil
	case TypeOther:
		return TypeOther, nil
	}
	return "", fmt.Errorf("unknown file type %q", s)
}

var extTypes = map[string]Type{
	".jpg": TypeImage, ".jpeg": TypeImage, ".png": TypeImage, ".gif": TypeImage,
	".bmp": TypeImage, ".webp": TypeImage, ".svg": TypeImage,

	".pdf": TypeDocument, ".doc": TypeDocument, ".docx": TypeDocument,
	".xls": TypeDocument, ".xlsx": TypeDocument, ".ppt": TypeDocument,
	".pptx": TypeDocument, ".txt": TypeDocument, ".csv": TypeDocument,

	".mp4": TypeVideo, ".avi": TypeVideo, ".mov": TypeVideo, ".wmv": TypeVideo,
	".flv": TypeVideo, ".mkv": TypeVideo, ".webm": TypeVideo,

	".mp3": TypeAudio, ".wav": TypeAudio, ".ogg": TypeAudio,
	".m4a": TypeAudio, ".flac": TypeAudio,
}

// TypeFromName maps a filename extension onto the type enum,
// falling back to TypeOther.
func TypeFromName(filename string) Type {
	if t, ok := extTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return t
	}
	return TypeOther
}

type (
	FileRecord struct {
		UUID   uuid.UUID
		UserID uuid.UUID

		FileName   string
		FileType   Type
		SizeBytes  int64
		StorageKey string
		FileURL    string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	FileRecords []*FileRecord
)

// ListFilter scopes FetchList; Type nil means all types.
type ListFilter struct {
	Type  *Type
	Skip  int
	Limit int
}
