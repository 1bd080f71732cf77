package repository

import (
	"context"
	"database/sql"
	"fmt"

	"bistro/internal/domain"
	"bistro/internal/errors"
)

type MySQLRestaurantRepository struct {
	db *sql.DB
}

func NewMySQLRestaurantRepository(db *sql.DB) *MySQLRestaurantRepository {
	return &MySQLRestaurantRepository{db: db}
}

func (r *MySQLRestaurantRepository) FindByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	query := `
		SELECT id, name, address, phoneNumber, createdAt, updatedAt
		FROM Restaurants
		WHERE id = ?
	`

	var restaurant domain.Restaurant
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&restaurant.ID, &restaurant.Name, &restaurant.Address, &restaurant.PhoneNumber,
		&restaurant.CreatedAt, &restaurant.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("Restaurant", id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying restaurant by id: %w", err)
	}

	return &restaurant, nil
}

func (r *MySQLRestaurantRepository) FindAll(ctx context.Context) ([]domain.Restaurant, error) {
	query := `
		SELECT id, name, address, phoneNumber, createdAt, updatedAt
		FROM Restaurants
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var restaurant domain.Restaurant
		err := rows.Scan(
			&restaurant.ID, &restaurant.Name, &restaurant.Address, &restaurant.PhoneNumber,
			&restaurant.CreatedAt, &restaurant.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning restaurant row: %w", err)
		}
		restaurants = append(restaurants, restaurant)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating restaurant rows: %w", err)
	}

	return restaurants, nil
}

func (r *MySQLRestaurantRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT 1 FROM Restaurants WHERE id = ?`

	var one int
	err := r.db.QueryRowContext(ctx, query, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking restaurant existence: %w", err)
	}

	return true, nil
}

func (r *MySQLRestaurantRepository) Insert(ctx context.Context, restaurant domain.Restaurant) (int64, error) {
	query := `INSERT INTO Restaurants (name, address, phoneNumber) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, restaurant.Name, restaurant.Address, restaurant.PhoneNumber)
	if err != nil {
		return 0, fmt.Errorf("inserting restaurant: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return lastInsertID, nil
}

func (r *MySQLRestaurantRepository) Update(ctx context.Context, restaurant domain.Restaurant) error {
	query := `UPDATE Restaurants SET name = ?, address = ?, phoneNumber = ? WHERE id = ?`

	// Callers resolve the restaurant before updating, so a zero rows-affected
	// result here only means the row already held these values.
	_, err := r.db.ExecContext(ctx, query,
		restaurant.Name, restaurant.Address, restaurant.PhoneNumber, restaurant.ID,
	)
	if err != nil {
		return fmt.Errorf("updating restaurant: %w", err)
	}

	return nil
}

func (r *MySQLRestaurantRepository) DeleteByID(ctx context.Context, id int64) error {
	query := `DELETE FROM Restaurants WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting restaurant: %w", err)
	}

	return nil
}
