package ports

import (
	"context"

	"file-manager-api/internal/domain/user"
)

type UserService interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}
