package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergey87kuzin/stripe-payments/internal/domain/shared"
)

func TestDiscountRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormDiscountRepository(db)
	ctx := context.Background()

	discount := newTestDiscount(t, "Summer Sale", 15)
	discount.StripeCouponID = "co_123"
	require.NoError(t, repo.Save(ctx, discount))

	found, err := repo.FindByID(ctx, discount.ID)

	require.NoError(t, err)
	assert.Equal(t, "Summer Sale", found.Name)
	assert.Equal(t, 15, found.Percentage)
	assert.Equal(t, "co_123", found.StripeCouponID)
}

func TestDiscountRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormDiscountRepository(db)

	found, err := repo.FindByID(context.Background(), uuid.New())

	assert.Nil(t, found)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestDiscountRepository_Delete_LeavesItemReferences(t *testing.T) {
	db := setupTestDB(t)
	discountRepo := NewGormDiscountRepository(db)
	itemRepo := NewGormItemRepository(db)
	ctx := context.Background()

	discount := newTestDiscount(t, "Summer Sale", 15)
	require.NoError(t, discountRepo.Save(ctx, discount))

	item := newTestItem(t, "Coffee Mug")
	item.DiscountID = &discount.ID
	require.NoError(t, itemRepo.Save(ctx, item))

	require.NoError(t, discountRepo.Delete(ctx, discount.ID))

	// The item keeps its now-stale discount reference
	found, err := itemRepo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, found.DiscountID)
	assert.Equal(t, discount.ID, *found.DiscountID)

	_, err = discountRepo.FindByID(ctx, discount.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestDiscountRepository_Delete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormDiscountRepository(db)

	err := repo.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, shared.ErrNotFound)
}
