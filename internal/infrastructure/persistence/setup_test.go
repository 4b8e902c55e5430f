package persistence

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sergey87kuzin/stripe-payments/internal/domain/catalog"
	"github.com/sergey87kuzin/stripe-payments/internal/domain/order"
)

// setupTestDB opens a throwaway sqlite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&catalog.Tax{},
		&catalog.Discount{},
		&catalog.Item{},
		&order.Order{},
		&order.OrderLine{},
	))
	return db
}

func newTestItem(t *testing.T, name string) *catalog.Item {
	t.Helper()
	item, err := catalog.NewItem(name, "",
		decimal.NewFromFloat(12.50),
		decimal.NewFromFloat(11.90),
		decimal.NewFromFloat(13.20),
		catalog.CurrencyUSD)
	require.NoError(t, err)
	return item
}

func newTestTax(t *testing.T, name string, percentage int) *catalog.Tax {
	t.Helper()
	tax, err := catalog.NewTax(name, "", percentage)
	require.NoError(t, err)
	return tax
}

func newTestDiscount(t *testing.T, name string, percentage int) *catalog.Discount {
	t.Helper()
	discount, err := catalog.NewDiscount(name, percentage)
	require.NoError(t, err)
	return discount
}
