package order

import (
	"context"

	"github.com/google/uuid"

	"github.com/sergey87kuzin/stripe-payments/internal/domain/shared"
)

// Repository defines the persistence interface for orders.
// FindByID loads the order together with its lines, ordered by
// creation time. Delete removes the order and its lines atomically.
type Repository interface {
	Save(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*Order, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SaveLine(ctx context.Context, line *OrderLine) error
	DeleteLine(ctx context.Context, id uuid.UUID) error
}
