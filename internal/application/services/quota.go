package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"file-manager-api/internal/application/ports"
	domain "file-manager-api/internal/domain/quota"
)

type QuotaService struct {
	ledger   domain.Ledger
	mCounter *prometheus.CounterVec
}

func NewQuotaService(ledger domain.Ledger, mCounter *prometheus.CounterVec) ports.QuotaService {
	return &QuotaService{
		ledger:   ledger,
		mCounter: mCounter,
	}
}

// Usage ensures the account exists so a fresh user sees the default
// capacity instead of a 404.
func (qs *QuotaService) Usage(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	return qs.ledger.EnsureAccount(ctx, userID)
}

func (qs *QuotaService) Extend(ctx context.Context, userID uuid.UUID, totalBytes int64, usedBytes *int64) (*domain.Account, error) {
	if _, err := qs.ledger.EnsureAccount(ctx, userID); err != nil {
		return nil, err
	}

	a, err := qs.ledger.UpdateAccount(ctx, userID, totalBytes, usedBytes)
	if err != nil {
		return nil, err
	}

	qs.mCounter.WithLabelValues("quota_extended_total").Inc()

	return a, nil
}
