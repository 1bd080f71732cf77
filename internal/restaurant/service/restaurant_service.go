package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"bistro/internal/domain"
	"bistro/internal/errors"
)

type RestaurantRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Restaurant, error)
	FindAll(ctx context.Context) ([]domain.Restaurant, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Insert(ctx context.Context, restaurant domain.Restaurant) (int64, error)
	Update(ctx context.Context, restaurant domain.Restaurant) error
	DeleteByID(ctx context.Context, id int64) error
}

type MenuService interface {
	CreateMenuItem(ctx context.Context, restaurantID int64, item domain.MenuItem) (*domain.MenuItem, error)
	GetMenuItem(ctx context.Context, restaurantID, menuItemID int64) (*domain.MenuItem, error)
	GetMenuByRestaurant(ctx context.Context, restaurantID int64) ([]domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, restaurantID, menuItemID int64, updated domain.MenuItem) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, restaurantID, menuItemID int64) error
}

// RestaurantPatch carries partial update semantics: nil fields are left
// untouched, except the phone number which must be valid on every update.
type RestaurantPatch struct {
	Name        *string
	Address     *string
	PhoneNumber *string
}

type RestaurantService struct {
	restaurants RestaurantRepository
	menu        MenuService
	logger      *zap.Logger
}

func NewRestaurantService(restaurants RestaurantRepository, menu MenuService, logger *zap.Logger) *RestaurantService {
	return &RestaurantService{
		restaurants: restaurants,
		menu:        menu,
		logger:      logger,
	}
}

func (s *RestaurantService) RegisterRestaurant(ctx context.Context, restaurant domain.Restaurant) (*domain.Restaurant, error) {
	id, err := s.restaurants.Insert(ctx, restaurant)
	if err != nil {
		return nil, err
	}
	restaurant.ID = id

	s.logger.Info("restaurant registered", zap.Int64("restaurantId", id), zap.String("name", restaurant.Name))

	return &restaurant, nil
}

func (s *RestaurantService) GetRestaurantDetails(ctx context.Context, restaurantID int64) (*domain.Restaurant, error) {
	return s.restaurants.FindByID(ctx, restaurantID)
}

func (s *RestaurantService) GetAllRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return s.restaurants.FindAll(ctx)
}

func (s *RestaurantService) UpdateRestaurantDetails(ctx context.Context, restaurantID int64, patch RestaurantPatch) (*domain.Restaurant, error) {
	existing, err := s.GetRestaurantDetails(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	// Validate the phone before touching any field so a bad patch leaves the
	// restaurant entirely unchanged.
	if patch.PhoneNumber == nil || strings.TrimSpace(*patch.PhoneNumber) == "" || *patch.PhoneNumber == "0" {
		return nil, errors.NewBadRequestError("Phone number cannot be empty or zero")
	}

	if patch.Name != nil {
		existing.Name = *patch.Name
	}
	if patch.Address != nil {
		existing.Address = *patch.Address
	}
	existing.PhoneNumber = *patch.PhoneNumber

	if err := s.restaurants.Update(ctx, *existing); err != nil {
		return nil, err
	}

	s.logger.Info("restaurant updated", zap.Int64("restaurantId", restaurantID))

	return existing, nil
}

func (s *RestaurantService) DeleteRestaurant(ctx context.Context, restaurantID int64) error {
	exists, err := s.restaurants.ExistsByID(ctx, restaurantID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewNotFoundError("Restaurant", restaurantID)
	}

	if err := s.restaurants.DeleteByID(ctx, restaurantID); err != nil {
		return err
	}

	s.logger.Info("restaurant deleted", zap.Int64("restaurantId", restaurantID))

	return nil
}

// Menu operations delegate to the menu catalog after the restaurant itself is
// resolved, so an unknown restaurant fails NotFound before any item lookup.

func (s *RestaurantService) GetRestaurantMenu(ctx context.Context, restaurantID int64) ([]domain.MenuItem, error) {
	if _, err := s.GetRestaurantDetails(ctx, restaurantID); err != nil {
		return nil, err
	}
	return s.menu.GetMenuByRestaurant(ctx, restaurantID)
}

func (s *RestaurantService) AddMenuItemToRestaurant(ctx context.Context, restaurantID int64, item domain.MenuItem) (*domain.MenuItem, error) {
	if _, err := s.GetRestaurantDetails(ctx, restaurantID); err != nil {
		return nil, err
	}
	return s.menu.CreateMenuItem(ctx, restaurantID, item)
}

func (s *RestaurantService) GetMenuItem(ctx context.Context, restaurantID, menuItemID int64) (*domain.MenuItem, error) {
	if _, err := s.GetRestaurantDetails(ctx, restaurantID); err != nil {
		return nil, err
	}
	return s.menu.GetMenuItem(ctx, restaurantID, menuItemID)
}

func (s *RestaurantService) UpdateMenuItem(ctx context.Context, restaurantID, menuItemID int64, updated domain.MenuItem) (*domain.MenuItem, error) {
	if _, err := s.GetRestaurantDetails(ctx, restaurantID); err != nil {
		return nil, err
	}
	return s.menu.UpdateMenuItem(ctx, restaurantID, menuItemID, updated)
}

func (s *RestaurantService) DeleteMenuItem(ctx context.Context, restaurantID, menuItemID int64) error {
	if _, err := s.GetRestaurantDetails(ctx, restaurantID); err != nil {
		return err
	}
	return s.menu.DeleteMenuItem(ctx, restaurantID, menuItemID)
}
