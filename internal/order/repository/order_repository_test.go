package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistro/internal/domain"
	"bistro/internal/errors"
	"bistro/internal/testutil"
)

// Unit Tests

func TestNewMySQLOrderRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLOrderRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestOrderRepository_FindByID_Success(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	result, err := db.Exec(`
		INSERT INTO Orders (userId, restaurantId, status, itemCount, totalPrice)
		VALUES (1, 2, 'PLACED', 3, 25.50)
	`)
	require.NoError(t, err)

	id, err := result.LastInsertId()
	require.NoError(t, err)

	order, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, order.ID)
	assert.Equal(t, int64(1), order.UserID)
	assert.Equal(t, int64(2), order.RestaurantID)
	assert.Equal(t, domain.OrderStatusPlaced, order.Status)
	assert.Equal(t, 3, order.ItemCount)
	assert.Equal(t, 25.50, order.TotalPrice)
}

func TestOrderRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	order, err := repo.FindByID(context.Background(), 9999)
	assert.Error(t, err)
	assert.Nil(t, order)

	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.Equal(t, "Order", nfe.Entity)
}

func TestOrderRepository_Insert_WithLineItems(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	orderRepo := NewMySQLOrderRepository(db)
	itemRepo := NewMySQLOrderItemRepository(db)

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	orderID, err := orderRepo.Insert(ctx, tx, domain.Order{
		UserID:       1,
		RestaurantID: 2,
		Status:       domain.OrderStatusPlaced,
		ItemCount:    3,
		TotalPrice:   25.50,
	})
	require.NoError(t, err)

	_, err = itemRepo.Insert(ctx, tx, domain.OrderItem{OrderID: orderID, MenuItemID: 5, Quantity: 2, Price: 10.00})
	require.NoError(t, err)
	_, err = itemRepo.Insert(ctx, tx, domain.OrderItem{OrderID: orderID, MenuItemID: 6, Quantity: 1, Price: 5.50})
	require.NoError(t, err)

	require.NoError(t, tx.Commit())

	items, err := itemRepo.FindByOrderID(ctx, orderID)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	order, err := orderRepo.FindByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, 3, order.ItemCount)
}

func TestOrderRepository_Insert_RollbackDiscardsOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	orderRepo := NewMySQLOrderRepository(db)

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	orderID, err := orderRepo.Insert(ctx, tx, domain.Order{
		UserID:       1,
		RestaurantID: 2,
		Status:       domain.OrderStatusPlaced,
		ItemCount:    1,
		TotalPrice:   10.00,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	_, err = orderRepo.FindByID(ctx, orderID)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	result, err := db.Exec(`
		INSERT INTO Orders (userId, restaurantId, status, itemCount, totalPrice)
		VALUES (1, 2, 'PLACED', 1, 10.00)
	`)
	require.NoError(t, err)

	id, err := result.LastInsertId()
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(context.Background(), id, domain.OrderStatusConfirmed))

	order, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusConfirmed, order.Status)
}

func TestOrderRepository_FindByUserID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	for i := 0; i < 2; i++ {
		_, err := db.Exec(`
			INSERT INTO Orders (userId, restaurantId, status, itemCount, totalPrice)
			VALUES (7, 2, 'PLACED', 1, 10.00)
		`)
		require.NoError(t, err)
	}

	orders, err := repo.FindByUserID(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	orders, err = repo.FindByUserID(context.Background(), 9999)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
