package dto

// PlaceOrderRequest carries line items as a map keyed by menu item id, so a
// duplicate item in a request is impossible by construction.
type PlaceOrderRequest struct {
	UserID       int64         `json:"userId"`
	RestaurantID int64         `json:"restaurantId"`
	Items        map[int64]int `json:"items"`
}
