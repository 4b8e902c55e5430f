package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/sergey87kuzin/stripe-payments/internal/domain/shared"
)

// ItemRepository defines the persistence interface for items
type ItemRepository interface {
	Save(ctx context.Context, item *Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*Item, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceTaxes(ctx context.Context, item *Item, taxIDs []uuid.UUID) error
}

// TaxRepository defines the persistence interface for taxes
type TaxRepository interface {
	Save(ctx context.Context, tax *Tax) error
	FindByID(ctx context.Context, id uuid.UUID) (*Tax, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*Tax, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DiscountRepository defines the persistence interface for discounts
type DiscountRepository interface {
	Save(ctx context.Context, discount *Discount) error
	FindByID(ctx context.Context, id uuid.UUID) (*Discount, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*Discount, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
