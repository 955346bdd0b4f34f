package quota

import (
	"github.com/google/uuid"
)

type (
	Account struct {
		UUID           uuid.UUID `json:"uuid"`
		UserID         uuid.UUID `json:"user_id"`
		TotalBytes     int64     `json:"total_bytes"`
		UsedBytes      int64     `json:"used_bytes"`
		AvailableBytes int64     `json:"available_bytes"`
	}

	ExtendRequest struct {
		TotalBytes int64  `json:"total_bytes"`
		UsedBytes  *int64 `json:"used_bytes,omitempty"`
	}
)
