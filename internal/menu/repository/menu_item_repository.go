package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"bistro/internal/domain"
	"bistro/internal/errors"
)

type MySQLMenuItemRepository struct {
	db *sql.DB
}

func NewMySQLMenuItemRepository(db *sql.DB) *MySQLMenuItemRepository {
	return &MySQLMenuItemRepository{db: db}
}

func (r *MySQLMenuItemRepository) FindByID(ctx context.Context, id int64) (*domain.MenuItem, error) {
	query := `
		SELECT id, restaurantId, name, description, price, createdAt, updatedAt
		FROM MenuItems
		WHERE id = ?
	`

	var item domain.MenuItem
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price,
		&item.CreatedAt, &item.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("MenuItem", id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying menu item by id: %w", err)
	}

	return &item, nil
}

func (r *MySQLMenuItemRepository) FindByRestaurantID(ctx context.Context, restaurantID int64) ([]domain.MenuItem, error) {
	query := `
		SELECT id, restaurantId, name, description, price, createdAt, updatedAt
		FROM MenuItems
		WHERE restaurantId = ?
	`

	rows, err := r.db.QueryContext(ctx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("querying menu items by restaurant: %w", err)
	}
	defer rows.Close()

	return scanMenuItems(rows)
}

func (r *MySQLMenuItemRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, 0, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args = append(args, id)
	}

	query := fmt.Sprintf(`
		SELECT id, restaurantId, name, description, price, createdAt, updatedAt
		FROM MenuItems
		WHERE id IN (%s)`,
		strings.Join(placeholders, ", "),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying menu items by ids: %w", err)
	}
	defer rows.Close()

	return scanMenuItems(rows)
}

func (r *MySQLMenuItemRepository) Insert(ctx context.Context, item domain.MenuItem) (int64, error) {
	query := `INSERT INTO MenuItems (restaurantId, name, description, price) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, item.RestaurantID, item.Name, item.Description, item.Price)
	if err != nil {
		return 0, fmt.Errorf("inserting menu item: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return lastInsertID, nil
}

func (r *MySQLMenuItemRepository) Update(ctx context.Context, item domain.MenuItem) error {
	query := `UPDATE MenuItems SET name = ?, description = ?, price = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, item.Name, item.Description, item.Price, item.ID)
	if err != nil {
		return fmt.Errorf("updating menu item: %w", err)
	}

	return nil
}

func (r *MySQLMenuItemRepository) DeleteByID(ctx context.Context, id int64) error {
	query := `DELETE FROM MenuItems WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting menu item: %w", err)
	}

	return nil
}

func scanMenuItems(rows *sql.Rows) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		err := rows.Scan(
			&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price,
			&item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning menu item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating menu item rows: %w", err)
	}

	return items, nil
}
