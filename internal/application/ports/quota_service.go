package ports

import (
	"context"

	"github.com/google/uuid"

	"file-manager-api/internal/domain/quota"
)

type QuotaService interface {
	Usage(ctx context.Context, userID uuid.UUID) (*quota.Account, error)
	Extend(ctx context.Context, userID uuid.UUID, totalBytes int64, usedBytes *int64) (*quota.Account, error)
}
