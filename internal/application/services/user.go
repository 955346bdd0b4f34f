package services

import (
	"context"

	"go.uber.org/zap"

	"file-manager-api/internal/application/ports"
	"file-manager-api/internal/domain/user"
)

type UserService struct {
	userRepository user.Repository
	logger         *zap.Logger
}

func NewUserService(
	userRepository user.Repository,
	logger *zap.Logger,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (us *UserService) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return us.userRepository.FetchByEmail(ctx, email)
}
