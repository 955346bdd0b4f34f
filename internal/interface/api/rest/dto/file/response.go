package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		UUID      uuid.UUID `json:"uuid"`
		FileName  string    `json:"file_name"`
		FileType  string    `json:"file_type"`
		SizeBytes int64     `json:"size_bytes"`
		FileURL   string    `json:"file_url"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
	Files []File

	ListResponse struct {
		Data  Files `json:"data"`
		Total int   `json:"total"`
	}
)
