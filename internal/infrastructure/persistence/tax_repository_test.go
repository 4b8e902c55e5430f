package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergey87kuzin/stripe-payments/internal/domain/shared"
)

func TestTaxRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTaxRepository(db)
	ctx := context.Background()

	tax := newTestTax(t, "VAT", 20)
	tax.StripeTaxRateID = "txr_123"
	require.NoError(t, repo.Save(ctx, tax))

	found, err := repo.FindByID(ctx, tax.ID)

	require.NoError(t, err)
	assert.Equal(t, "VAT", found.Name)
	assert.Equal(t, 20, found.Percentage)
	assert.Equal(t, "txr_123", found.StripeTaxRateID)
}

func TestTaxRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTaxRepository(db)

	found, err := repo.FindByID(context.Background(), uuid.New())

	assert.Nil(t, found)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestTaxRepository_FindAll_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTaxRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newTestTax(t, "VAT Standard", 20)))
	require.NoError(t, repo.Save(ctx, newTestTax(t, "VAT Reduced", 7)))
	require.NoError(t, repo.Save(ctx, newTestTax(t, "City Tax", 3)))

	taxes, total, err := repo.FindAll(ctx, shared.Filter{Search: "vat"})

	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, taxes, 2)
}

func TestTaxRepository_Delete_DetachesItems(t *testing.T) {
	db := setupTestDB(t)
	taxRepo := NewGormTaxRepository(db)
	itemRepo := NewGormItemRepository(db)
	ctx := context.Background()

	tax := newTestTax(t, "VAT", 20)
	require.NoError(t, taxRepo.Save(ctx, tax))

	item := newTestItem(t, "Coffee Mug")
	require.NoError(t, itemRepo.Save(ctx, item))
	require.NoError(t, itemRepo.ReplaceTaxes(ctx, item, []uuid.UUID{tax.ID}))

	require.NoError(t, taxRepo.Delete(ctx, tax.ID))

	// The item survives with the association gone
	found, err := itemRepo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Taxes)
}

func TestTaxRepository_Delete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTaxRepository(db)

	err := repo.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, shared.ErrNotFound)
}
