package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sergey87kuzin/stripe-payments/internal/domain/catalog"
)

// CreateItemRequest holds the fields for creating an item
type CreateItemRequest struct {
	Name        string          `json:"name" binding:"required,max=200"`
	Description string          `json:"description"`
	PriceUSD    decimal.Decimal `json:"price_usd" binding:"required"`
	PriceEUR    decimal.Decimal `json:"price_eur" binding:"required"`
	PriceCHF    decimal.Decimal `json:"price_chf" binding:"required"`
	Currency    string          `json:"currency" binding:"required,oneof=usd eur chf"`
	TaxIDs      []uuid.UUID     `json:"tax_ids"`
	DiscountID  *uuid.UUID      `json:"discount_id"`
}

// UpdateItemRequest holds the fields for updating an item
type UpdateItemRequest struct {
	Name        string          `json:"name" binding:"required,max=200"`
	Description string          `json:"description"`
	PriceUSD    decimal.Decimal `json:"price_usd" binding:"required"`
	PriceEUR    decimal.Decimal `json:"price_eur" binding:"required"`
	PriceCHF    decimal.Decimal `json:"price_chf" binding:"required"`
	Currency    string          `json:"currency" binding:"required,oneof=usd eur chf"`
	TaxIDs      []uuid.UUID     `json:"tax_ids"`
	DiscountID  *uuid.UUID      `json:"discount_id"`
}

// ItemResponse is the API representation of an item
type ItemResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	PriceUSD        decimal.Decimal `json:"price_usd"`
	PriceEUR        decimal.Decimal `json:"price_eur"`
	PriceCHF        decimal.Decimal `json:"price_chf"`
	Currency        string          `json:"currency"`
	Taxes           []TaxResponse   `json:"taxes"`
	DiscountID      *uuid.UUID      `json:"discount_id,omitempty"`
	StripeProductID string          `json:"stripe_product_id,omitempty"`
	StripePriceID   string          `json:"stripe_price_id,omitempty"`
}

// ToItemResponse converts a domain item to its API representation
func ToItemResponse(item *catalog.Item) *ItemResponse {
	taxes := make([]TaxResponse, 0, len(item.Taxes))
	for i := range item.Taxes {
		taxes = append(taxes, *ToTaxResponse(&item.Taxes[i]))
	}
	return &ItemResponse{
		ID:              item.ID,
		Name:            item.Name,
		Description:     item.Description,
		PriceUSD:        item.PriceUSD,
		PriceEUR:        item.PriceEUR,
		PriceCHF:        item.PriceCHF,
		Currency:        string(item.Currency),
		Taxes:           taxes,
		DiscountID:      item.DiscountID,
		StripeProductID: item.StripeProductID,
		StripePriceID:   item.StripePriceID,
	}
}

// CreateTaxRequest holds the fields for creating a tax
type CreateTaxRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description"`
	Percentage  int    `json:"percentage" binding:"min=0,max=99"`
}

// UpdateTaxRequest holds the fields for updating a tax
type UpdateTaxRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description"`
	Percentage  int    `json:"percentage" binding:"min=0,max=99"`
}

// TaxResponse is the API representation of a tax
type TaxResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Percentage      int       `json:"percentage"`
	StripeTaxRateID string    `json:"stripe_tax_rate_id,omitempty"`
}

// ToTaxResponse converts a domain tax to its API representation
func ToTaxResponse(tax *catalog.Tax) *TaxResponse {
	return &TaxResponse{
		ID:              tax.ID,
		Name:            tax.Name,
		Description:     tax.Description,
		Percentage:      tax.Percentage,
		StripeTaxRateID: tax.StripeTaxRateID,
	}
}

// CreateDiscountRequest holds the fields for creating a discount
type CreateDiscountRequest struct {
	Name       string `json:"name" binding:"required,max=200"`
	Percentage int    `json:"percentage" binding:"min=0,max=99"`
}

// UpdateDiscountRequest holds the fields for updating a discount
type UpdateDiscountRequest struct {
	Name       string `json:"name" binding:"required,max=200"`
	Percentage int    `json:"percentage" binding:"min=0,max=99"`
}

// DiscountResponse is the API representation of a discount
type DiscountResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Percentage     int       `json:"percentage"`
	StripeCouponID string    `json:"stripe_coupon_id,omitempty"`
}

// ToDiscountResponse converts a domain discount to its API representation
func ToDiscountResponse(discount *catalog.Discount) *DiscountResponse {
	return &DiscountResponse{
		ID:             discount.ID,
		Name:           discount.Name,
		Percentage:     discount.Percentage,
		StripeCouponID: discount.StripeCouponID,
	}
}

// ListFilter carries pagination and search options for list endpoints
type ListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
}
