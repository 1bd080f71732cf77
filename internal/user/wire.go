package user

import (
	"database/sql"

	"go.uber.org/zap"

	"bistro/internal/user/controller"
	"bistro/internal/user/repository"
	"bistro/internal/user/service"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.UserController {
	userRepo := repository.NewMySQLUserRepository(db)
	userSvc := service.NewUserService(userRepo, logger)

	return controller.NewUserController(userSvc, logger)
}
