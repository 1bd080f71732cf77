package domain

import "time"

// MenuItem belongs to exactly one restaurant; RestaurantID is the owning
// reference checked on every scoped read, update and delete.
type MenuItem struct {
	ID           int64
	RestaurantID int64
	Name         string
	Description  string
	Price        float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
