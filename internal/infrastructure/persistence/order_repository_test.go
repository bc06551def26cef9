package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopx/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormOrderRepository_PlaceOrder(t *testing.T) {
	t.Run("empty cart rolls back and reports empty-cart", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(gormDB)

		userID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "cart_entries" WHERE user_id = \$1 ORDER BY created_at ASC FOR UPDATE`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "created_at", "updated_at", "user_id", "product_id", "quantity", "locked_price",
			}))
		mock.ExpectRollback()

		_, err := repo.PlaceOrder(context.Background(), userID)
		assert.Equal(t, shared.ErrEmptyCart, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("converts cart rows into order, items and a cleared cart", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(gormDB)

		userID := uuid.New()
		productID := uuid.New()
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "cart_entries" WHERE user_id = \$1 ORDER BY created_at ASC FOR UPDATE`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "created_at", "updated_at", "user_id", "product_id", "quantity", "locked_price",
			}).AddRow(uuid.New(), now, now, userID, productID, 5, decimal.RequireFromString("100")))
		mock.ExpectExec(`INSERT INTO "orders"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "order_items"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM "cart_entries" WHERE user_id = \$1`).
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		placed, err := repo.PlaceOrder(context.Background(), userID)
		require.NoError(t, err)
		require.NotNil(t, placed)

		assert.Equal(t, userID, placed.UserID)
		assert.True(t, placed.Total.Equal(decimal.RequireFromString("500")), "got %s", placed.Total)
		require.Len(t, placed.Items, 1)
		assert.Equal(t, productID, placed.Items[0].ProductID)
		assert.Equal(t, 5, placed.Items[0].Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure while inserting items rolls everything back", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(gormDB)

		userID := uuid.New()
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "cart_entries" WHERE user_id = \$1 ORDER BY created_at ASC FOR UPDATE`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "created_at", "updated_at", "user_id", "product_id", "quantity", "locked_price",
			}).AddRow(uuid.New(), now, now, userID, uuid.New(), 1, decimal.RequireFromString("10")))
		mock.ExpectExec(`INSERT INTO "orders"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "order_items"`).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		_, err := repo.PlaceOrder(context.Background(), userID)
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOrderRepository_FindByUser(t *testing.T) {
	t.Run("empty history yields empty slice", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(gormDB)

		userID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE user_id = \$1 ORDER BY created_at DESC`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at", "user_id", "total"}))

		orders, err := repo.FindByUser(context.Background(), userID)
		require.NoError(t, err)
		assert.Empty(t, orders)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
