package order

import (
	"github.com/google/uuid"

	"github.com/sergey87kuzin/stripe-payments/internal/domain/shared"
)

// Order groups order lines under a human-facing order number.
// Deleting an order removes its lines with it; the discount reference
// is left untouched when the discount itself goes away.
type Order struct {
	shared.BaseEntity
	Number     int         `gorm:"not null" json:"number"`
	Lines      []OrderLine `gorm:"foreignKey:OrderID" json:"lines,omitempty"`
	DiscountID *uuid.UUID  `gorm:"type:uuid" json:"discount_id,omitempty"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a validated order
func NewOrder(number int) (*Order, error) {
	o := &Order{
		BaseEntity: shared.NewBaseEntity(),
		Number:     number,
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate checks the order invariants
func (o *Order) Validate() error {
	if o.Number <= 0 {
		return shared.NewDomainError("INVALID_NUMBER", "Order number must be positive")
	}
	return nil
}

// AddLine appends a validated line for the given item
func (o *Order) AddLine(itemID uuid.UUID, quantity int) (*OrderLine, error) {
	line, err := NewOrderLine(o.ID, itemID, quantity)
	if err != nil {
		return nil, err
	}
	o.Lines = append(o.Lines, *line)
	return line, nil
}
