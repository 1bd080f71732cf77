package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"bistro/internal/domain"
	"bistro/internal/errors"
)

type MenuItemRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.MenuItem, error)
	FindByRestaurantID(ctx context.Context, restaurantID int64) ([]domain.MenuItem, error)
	Insert(ctx context.Context, item domain.MenuItem) (int64, error)
	Update(ctx context.Context, item domain.MenuItem) error
	DeleteByID(ctx context.Context, id int64) error
}

type RestaurantRepository interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// MenuItemService manages the menu catalog of a restaurant. Every read, update
// and delete is scoped: the item's stored restaurant reference must match the
// restaurant it is accessed through.
type MenuItemService struct {
	items       MenuItemRepository
	restaurants RestaurantRepository
	logger      *zap.Logger
}

func NewMenuItemService(items MenuItemRepository, restaurants RestaurantRepository, logger *zap.Logger) *MenuItemService {
	return &MenuItemService{
		items:       items,
		restaurants: restaurants,
		logger:      logger,
	}
}

func (s *MenuItemService) CreateMenuItem(ctx context.Context, restaurantID int64, item domain.MenuItem) (*domain.MenuItem, error) {
	exists, err := s.restaurants.ExistsByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NewNotFoundError("Restaurant", restaurantID)
	}

	item.RestaurantID = restaurantID

	id, err := s.items.Insert(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = id

	s.logger.Info("menu item created",
		zap.Int64("restaurantId", restaurantID), zap.Int64("menuItemId", id))

	return &item, nil
}

func (s *MenuItemService) GetMenuItem(ctx context.Context, restaurantID, menuItemID int64) (*domain.MenuItem, error) {
	item, err := s.items.FindByID(ctx, menuItemID)
	if err != nil {
		return nil, err
	}

	if item.RestaurantID != restaurantID {
		return nil, errors.NewForbiddenError(fmt.Sprintf(
			"Access denied: Menu item %d does not belong to restaurant %d", menuItemID, restaurantID))
	}

	return item, nil
}

func (s *MenuItemService) GetMenuByRestaurant(ctx context.Context, restaurantID int64) ([]domain.MenuItem, error) {
	exists, err := s.restaurants.ExistsByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NewNotFoundError("Restaurant", restaurantID)
	}

	return s.items.FindByRestaurantID(ctx, restaurantID)
}

// UpdateMenuItem overwrites name and description unconditionally; a negative
// price aborts the whole update before anything is persisted.
func (s *MenuItemService) UpdateMenuItem(ctx context.Context, restaurantID, menuItemID int64, updated domain.MenuItem) (*domain.MenuItem, error) {
	existing, err := s.GetMenuItem(ctx, restaurantID, menuItemID)
	if err != nil {
		return nil, err
	}

	if updated.Price < 0 {
		return nil, errors.NewBadRequestError("Price cannot be negative")
	}

	existing.Name = updated.Name
	existing.Description = updated.Description
	existing.Price = updated.Price

	if err := s.items.Update(ctx, *existing); err != nil {
		return nil, err
	}

	s.logger.Info("menu item updated",
		zap.Int64("restaurantId", restaurantID), zap.Int64("menuItemId", menuItemID))

	return existing, nil
}

func (s *MenuItemService) DeleteMenuItem(ctx context.Context, restaurantID, menuItemID int64) error {
	item, err := s.GetMenuItem(ctx, restaurantID, menuItemID)
	if err != nil {
		return err
	}

	if err := s.items.DeleteByID(ctx, item.ID); err != nil {
		return err
	}

	s.logger.Info("menu item deleted",
		zap.Int64("restaurantId", restaurantID), zap.Int64("menuItemId", menuItemID))

	return nil
}
