package order

import (
	"database/sql"

	"go.uber.org/zap"

	menurepo "bistro/internal/menu/repository"
	"bistro/internal/order/controller"
	orderrepo "bistro/internal/order/repository"
	"bistro/internal/order/service"
	restaurantrepo "bistro/internal/restaurant/repository"
	userrepo "bistro/internal/user/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.OrderController {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	orderItemRepo := orderrepo.NewMySQLOrderItemRepository(db)
	userRepo := userrepo.NewMySQLUserRepository(db)
	restaurantRepo := restaurantrepo.NewMySQLRestaurantRepository(db)
	menuItemRepo := menurepo.NewMySQLMenuItemRepository(db)

	orderSvc := service.NewOrderService(
		db,
		orderRepo,
		orderItemRepo,
		userRepo,
		restaurantRepo,
		menuItemRepo,
		logger,
	)

	return controller.NewOrderController(orderSvc, logger)
}
