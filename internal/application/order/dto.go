package order

import (
	"github.com/google/uuid"

	"github.com/sergey87kuzin/stripe-payments/internal/domain/order"
)

// CreateOrderRequest holds the fields for creating an order
type CreateOrderRequest struct {
	Number     int              `json:"number" binding:"required,min=1"`
	DiscountID *uuid.UUID       `json:"discount_id"`
	Lines      []AddLineRequest `json:"lines"`
}

// UpdateOrderRequest holds the fields for updating an order
type UpdateOrderRequest struct {
	Number     int        `json:"number" binding:"required,min=1"`
	DiscountID *uuid.UUID `json:"discount_id"`
}

// AddLineRequest holds the fields for adding a line to an order
type AddLineRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1,max=99"`
}

// OrderLineResponse is the API representation of an order line
type OrderLineResponse struct {
	ID       uuid.UUID `json:"id"`
	ItemID   uuid.UUID `json:"item_id"`
	Quantity int       `json:"quantity"`
}

// OrderResponse is the API representation of an order
type OrderResponse struct {
	ID         uuid.UUID           `json:"id"`
	Number     int                 `json:"number"`
	Lines      []OrderLineResponse `json:"lines"`
	DiscountID *uuid.UUID          `json:"discount_id,omitempty"`
}

// ToOrderResponse converts a domain order to its API representation
func ToOrderResponse(o *order.Order) *OrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, OrderLineResponse{
			ID:       line.ID,
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
		})
	}
	return &OrderResponse{
		ID:         o.ID,
		Number:     o.Number,
		Lines:      lines,
		DiscountID: o.DiscountID,
	}
}

// ListFilter carries pagination options for order list endpoints
type ListFilter struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}
