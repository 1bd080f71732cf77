package service

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"bistro/internal/domain"
	"bistro/internal/errors"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type OrderRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	FindByUserID(ctx context.Context, userID int64) ([]domain.Order, error)
	Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type OrderItemRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (int64, error)
	FindByOrderID(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

type RestaurantRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Restaurant, error)
}

type MenuItemRepository interface {
	FindByIDs(ctx context.Context, ids []int64) ([]domain.MenuItem, error)
}

// OrderService validates and places orders and drives the order status state
// machine. Placement writes the order row and all of its line items in a
// single transaction; a failed validation never reaches the store.
type OrderService struct {
	db          TransactionManager
	orders      OrderRepository
	orderItems  OrderItemRepository
	users       UserRepository
	restaurants RestaurantRepository
	menuItems   MenuItemRepository
	logger      *zap.Logger
}

func NewOrderService(
	db TransactionManager,
	orders OrderRepository,
	orderItems OrderItemRepository,
	users UserRepository,
	restaurants RestaurantRepository,
	menuItems MenuItemRepository,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		db:          db,
		orders:      orders,
		orderItems:  orderItems,
		users:       users,
		restaurants: restaurants,
		menuItems:   menuItems,
		logger:      logger,
	}
}

func (s *OrderService) PlaceOrder(ctx context.Context, userID, restaurantID int64, itemsWithQuantity map[int64]int) (*domain.Order, error) {
	if len(itemsWithQuantity) == 0 {
		return nil, errors.NewBadRequestError("Order must contain at least one item")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	restaurant, err := s.restaurants.FindByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	for menuItemID, quantity := range itemsWithQuantity {
		if quantity <= 0 {
			return nil, errors.NewBadRequestError(fmt.Sprintf("Invalid quantity for menu item: %d", menuItemID))
		}
	}

	ids := make([]int64, 0, len(itemsWithQuantity))
	for menuItemID := range itemsWithQuantity {
		ids = append(ids, menuItemID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	menuItems, err := s.menuItems.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(menuItems) != len(itemsWithQuantity) {
		return nil, errors.NewNotFoundError("MenuItem", nil)
	}

	var totalPrice float64
	var totalItemCount int
	lines := make([]domain.OrderItem, 0, len(menuItems))

	for _, item := range menuItems {
		if item.RestaurantID != restaurantID {
			return nil, errors.NewBadRequestError(fmt.Sprintf(
				"MenuItem %d does not belong to this restaurant", item.ID))
		}

		quantity := itemsWithQuantity[item.ID]
		lines = append(lines, domain.OrderItem{
			MenuItemID: item.ID,
			Quantity:   quantity,
			Price:      item.Price,
		})

		totalPrice += item.Price * float64(quantity)
		totalItemCount += quantity
	}

	order := domain.Order{
		UserID:       user.ID,
		RestaurantID: restaurant.ID,
		Status:       domain.OrderStatusPlaced,
		ItemCount:    totalItemCount,
		TotalPrice:   totalPrice,
	}

	orderID, err := s.persistOrder(ctx, order, lines)
	if err != nil {
		return nil, err
	}

	order.ID = orderID
	for i := range lines {
		lines[i].OrderID = orderID
	}
	order.Items = lines

	s.logger.Info("order placed",
		zap.Int64("orderId", orderID),
		zap.Int64("userId", userID),
		zap.Int64("restaurantId", restaurantID),
		zap.Int("itemCount", totalItemCount),
		zap.Float64("totalPrice", totalPrice),
	)

	return &order, nil
}

// persistOrder writes the order and its line items as one transaction so a
// partially written order is never observable.
func (s *OrderService) persistOrder(ctx context.Context, order domain.Order, lines []domain.OrderItem) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return 0, err
	}
	// Rollback is a no-op once the transaction has committed.
	defer tx.Rollback()

	orderID, err := s.orders.Insert(ctx, tx, order)
	if err != nil {
		return 0, err
	}

	for _, line := range lines {
		line.OrderID = orderID
		if _, err := s.orderItems.Insert(ctx, tx, line); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit order transaction", zap.Int64("orderId", orderID), zap.Error(err))
		return 0, err
	}

	return orderID, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	items, err := s.orderItems.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

// GetOrdersByUser performs no existence check on the user; an unknown user
// simply has no orders.
func (s *OrderService) GetOrdersByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	orders, err := s.orders.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := s.orderItems.FindByOrderID(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

// UpdateOrderStatus overwrites the status of a non-terminal order. DELIVERED
// and CANCELLED are absorbing: any transition out of them is rejected. The
// target status is not checked against a forward-transition table, so e.g.
// PLACED -> DELIVERED in one step is accepted.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID int64, newStatus string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status == domain.OrderStatusDelivered {
		return nil, errors.NewInvalidOrderStateError("Cannot update order - already delivered")
	}

	if order.Status == domain.OrderStatusCancelled {
		return nil, errors.NewInvalidOrderStateError("Cannot update order - already cancelled")
	}

	if err := s.orders.UpdateStatus(ctx, orderID, newStatus); err != nil {
		return nil, err
	}

	s.logger.Info("order status updated",
		zap.Int64("orderId", orderID),
		zap.String("from", order.Status),
		zap.String("to", newStatus),
	)

	order.Status = newStatus
	return order, nil
}
