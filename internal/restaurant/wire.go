package restaurant

import (
	"database/sql"

	"go.uber.org/zap"

	menurepo "bistro/internal/menu/repository"
	menuservice "bistro/internal/menu/service"
	"bistro/internal/restaurant/controller"
	"bistro/internal/restaurant/repository"
	"bistro/internal/restaurant/service"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.RestaurantController {
	restaurantRepo := repository.NewMySQLRestaurantRepository(db)
	menuItemRepo := menurepo.NewMySQLMenuItemRepository(db)

	menuSvc := menuservice.NewMenuItemService(menuItemRepo, restaurantRepo, logger)
	restaurantSvc := service.NewRestaurantService(restaurantRepo, menuSvc, logger)

	return controller.NewRestaurantController(restaurantSvc, logger)
}
