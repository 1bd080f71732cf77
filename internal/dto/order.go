package dto

import (
	"time"

	"bistro/internal/domain"
)

type OrderResponse struct {
	ID           int64          `json:"id"`
	UserID       int64          `json:"userId"`
	RestaurantID int64          `json:"restaurantId"`
	Status       string         `json:"status"`
	ItemCount    int            `json:"itemCount"`
	TotalPrice   float64        `json:"totalPrice"`
	Items        []OrderItemDTO `json:"items"`
	CreatedAt    time.Time      `json:"createdAt"`
}

type OrderItemDTO struct {
	MenuItemID int64   `json:"menuItemId"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

func NewOrderResponse(order domain.Order) OrderResponse {
	items := make([]OrderItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemDTO{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			Price:      item.Price,
		})
	}

	return OrderResponse{
		ID:           order.ID,
		UserID:       order.UserID,
		RestaurantID: order.RestaurantID,
		Status:       order.Status,
		ItemCount:    order.ItemCount,
		TotalPrice:   order.TotalPrice,
		Items:        items,
		CreatedAt:    order.CreatedAt,
	}
}
