package domain

import "time"

const (
	OrderStatusPlaced         = "PLACED"
	OrderStatusConfirmed      = "CONFIRMED"
	OrderStatusPreparing      = "PREPARING"
	OrderStatusOutForDelivery = "OUT_FOR_DELIVERY"
	OrderStatusDelivered      = "DELIVERED"
	OrderStatusCancelled      = "CANCELLED"
)

// Order is created once by placement; after that only Status ever changes.
type Order struct {
	ID           int64
	UserID       int64
	RestaurantID int64
	Status       string
	ItemCount    int
	TotalPrice   float64
	Items        []OrderItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type OrderItem struct {
	ID         int64
	OrderID    int64
	MenuItemID int64
	Quantity   int
	Price      float64
}

// IsTerminalStatus reports whether a status has no outgoing transitions.
func IsTerminalStatus(status string) bool {
	return status == OrderStatusDelivered || status == OrderStatusCancelled
}

func IsValidStatus(status string) bool {
	switch status {
	case OrderStatusPlaced, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
