package quota

import (
	domain "file-manager-api/internal/domain/quota"
)

func ToResponseAccount(aDomain *domain.Account) Account {
	return Account{
		UUID:           aDomain.UUID,
		UserID:         aDomain.UserID,
		TotalBytes:     aDomain.TotalBytes,
		UsedBytes:      aDomain.UsedBytes,
		AvailableBytes: aDomain.AvailableBytes(),
	}
}
