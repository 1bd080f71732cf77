package service

import (
	"context"

	"go.uber.org/zap"

	"bistro/internal/domain"
)

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Insert(ctx context.Context, user domain.User) (int64, error)
}

type UserService struct {
	users  UserRepository
	logger *zap.Logger
}

func NewUserService(users UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger,
	}
}

func (s *UserService) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.logger.Info("user created", zap.Int64("userId", id))

	return &user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}
