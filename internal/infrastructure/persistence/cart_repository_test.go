package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopx/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB creates a GORM handle backed by a mocked SQL connection
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func cartEntryRows(userID, productID uuid.UUID, qty int, price string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "created_at", "updated_at", "user_id", "product_id", "quantity", "locked_price",
	}).AddRow(uuid.New(), now, now, userID, productID, qty, decimal.RequireFromString(price))
}

func TestGormCartRepository_FindEntry(t *testing.T) {
	t.Run("finds existing entry", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCartRepository(gormDB)

		userID := uuid.New()
		productID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "cart_entries" WHERE user_id = \$1 AND product_id = \$2`).
			WithArgs(userID, productID, 1).
			WillReturnRows(cartEntryRows(userID, productID, 3, "49.99"))

		entry, err := repo.FindEntry(context.Background(), userID, productID)
		require.NoError(t, err)
		assert.Equal(t, userID, entry.UserID)
		assert.Equal(t, productID, entry.ProductID)
		assert.Equal(t, 3, entry.Quantity)
		assert.True(t, entry.LockedPrice.Equal(decimal.RequireFromString("49.99")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing entry to domain not-found", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCartRepository(gormDB)

		mock.ExpectQuery(`SELECT \* FROM "cart_entries"`).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindEntry(context.Background(), uuid.New(), uuid.New())
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestGormCartRepository_FindByUser(t *testing.T) {
	t.Run("empty cart yields empty slice", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCartRepository(gormDB)

		userID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "cart_entries" WHERE user_id = \$1 ORDER BY created_at ASC`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "created_at", "updated_at", "user_id", "product_id", "quantity", "locked_price",
			}))

		entries, err := repo.FindByUser(context.Background(), userID)
		require.NoError(t, err)
		assert.Empty(t, entries)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCartRepository_DeleteEntry(t *testing.T) {
	t.Run("deletes existing entry", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCartRepository(gormDB)

		userID := uuid.New()
		productID := uuid.New()

		mock.ExpectExec(`DELETE FROM "cart_entries" WHERE user_id = \$1 AND product_id = \$2`).
			WithArgs(userID, productID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteEntry(context.Background(), userID, productID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing entry yields not-found", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCartRepository(gormDB)

		mock.ExpectExec(`DELETE FROM "cart_entries"`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteEntry(context.Background(), uuid.New(), uuid.New())
		assert.Equal(t, shared.ErrNotFound, err)
	})
}
