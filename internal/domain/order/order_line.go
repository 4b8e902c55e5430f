package order

import (
	"github.com/google/uuid"

	"github.com/sergey87kuzin/stripe-payments/internal/domain/shared"
)

// OrderLine ties an item to an order with a purchase quantity
type OrderLine struct {
	shared.BaseEntity
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	ItemID   uuid.UUID `gorm:"type:uuid;not null" json:"item_id"`
	Quantity int       `gorm:"not null" json:"quantity"`
}

// TableName returns the table name for GORM
func (OrderLine) TableName() string {
	return "order_lines"
}

// NewOrderLine creates a validated order line
func NewOrderLine(orderID, itemID uuid.UUID, quantity int) (*OrderLine, error) {
	line := &OrderLine{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    orderID,
		ItemID:     itemID,
		Quantity:   quantity,
	}
	if err := line.Validate(); err != nil {
		return nil, err
	}
	return line, nil
}

// Validate checks the order line invariants
func (l *OrderLine) Validate() error {
	if l.Quantity < 1 || l.Quantity > 99 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be between 1 and 99")
	}
	return nil
}
