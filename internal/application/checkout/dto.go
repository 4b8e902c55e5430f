package checkout

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sergey87kuzin/stripe-payments/internal/domain/catalog"
	"github.com/sergey87kuzin/stripe-payments/internal/domain/order"
)

// ItemDetailResponse is the storefront view of an item
type ItemDetailResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	Currency       string          `json:"currency"`
	PublishableKey string          `json:"publishableKey"`
}

// ToItemDetailResponse builds the storefront view of an item. Price is
// the item's price in its own currency.
func ToItemDetailResponse(item *catalog.Item, publishableKey string) *ItemDetailResponse {
	return &ItemDetailResponse{
		ID:             item.ID,
		Name:           item.Name,
		Description:    item.Description,
		Price:          item.DisplayPrice(),
		Currency:       string(item.Currency),
		PublishableKey: publishableKey,
	}
}

// OrderLineDetail is one line in the storefront view of an order
type OrderLineDetail struct {
	ItemID   uuid.UUID `json:"item_id"`
	Quantity int       `json:"quantity"`
}

// OrderDetailResponse is the storefront view of an order
type OrderDetailResponse struct {
	ID             uuid.UUID         `json:"id"`
	Number         int               `json:"number"`
	Lines          []OrderLineDetail `json:"lines"`
	PublishableKey string            `json:"publishableKey"`
}

// ToOrderDetailResponse builds the storefront view of an order
func ToOrderDetailResponse(o *order.Order, publishableKey string) *OrderDetailResponse {
	lines := make([]OrderLineDetail, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, OrderLineDetail{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
		})
	}
	return &OrderDetailResponse{
		ID:             o.ID,
		Number:         o.Number,
		Lines:          lines,
		PublishableKey: publishableKey,
	}
}
