package domain

import "time"

type Restaurant struct {
	ID          int64
	Name        string
	Address     string
	PhoneNumber string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
