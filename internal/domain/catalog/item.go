package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sergey87kuzin/stripe-payments/internal/domain/shared"
)

// Currency is a supported settlement currency
type Currency string

const (
	CurrencyUSD Currency = "usd"
	CurrencyEUR Currency = "eur"
	CurrencyCHF Currency = "chf"
)

// Currencies lists every supported currency
func Currencies() []Currency {
	return []Currency{CurrencyUSD, CurrencyEUR, CurrencyCHF}
}

// Valid reports whether the currency is one of the supported codes
func (c Currency) Valid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyCHF:
		return true
	}
	return false
}

// Item is a sellable catalog entry priced in three currencies.
// The Currency field selects which price is the display and settlement
// price; the other two are offered as currency options when synced to
// the payment provider.
type Item struct {
	shared.BaseEntity
	Name            string          `gorm:"type:varchar(200);not null" json:"name"`
	Description     string          `gorm:"type:text" json:"description"`
	PriceUSD        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_usd"`
	PriceEUR        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_eur"`
	PriceCHF        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_chf"`
	Currency        Currency        `gorm:"type:varchar(3);not null;default:'usd'" json:"currency"`
	Taxes           []Tax           `gorm:"many2many:item_taxes" json:"taxes,omitempty"`
	DiscountID      *uuid.UUID      `gorm:"type:uuid" json:"discount_id,omitempty"`
	StripeProductID string          `gorm:"type:varchar(100)" json:"stripe_product_id,omitempty"`
	StripePriceID   string          `gorm:"type:varchar(100)" json:"stripe_price_id,omitempty"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "items"
}

// NewItem creates a validated catalog item
func NewItem(name, description string, priceUSD, priceEUR, priceCHF decimal.Decimal, currency Currency) (*Item, error) {
	item := &Item{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
		PriceUSD:    priceUSD,
		PriceEUR:    priceEUR,
		PriceCHF:    priceCHF,
		Currency:    currency,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

// Validate checks the item invariants
func (i *Item) Validate() error {
	if i.Name == "" || len(i.Name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Item name must be 1-200 characters")
	}
	if !i.Currency.Valid() {
		return shared.NewDomainError("INVALID_CURRENCY", "Currency must be one of usd, eur, chf")
	}
	for _, p := range []decimal.Decimal{i.PriceUSD, i.PriceEUR, i.PriceCHF} {
		if p.IsNegative() {
			return shared.NewDomainError("INVALID_PRICE", "Prices must not be negative")
		}
	}
	return nil
}

// PriceFor returns the price in the given currency
func (i *Item) PriceFor(c Currency) decimal.Decimal {
	switch c {
	case CurrencyEUR:
		return i.PriceEUR
	case CurrencyCHF:
		return i.PriceCHF
	default:
		return i.PriceUSD
	}
}

// DisplayPrice returns the price in the item's own currency
func (i *Item) DisplayPrice() decimal.Decimal {
	return i.PriceFor(i.Currency)
}

// UnitAmount returns the price in minor units for the given currency,
// rounded half away from zero to the nearest cent.
func (i *Item) UnitAmount(c Currency) int64 {
	return i.PriceFor(c).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// SecondaryCurrencies returns the supported currencies other than the
// item's own, in a stable order.
func (i *Item) SecondaryCurrencies() []Currency {
	out := make([]Currency, 0, 2)
	for _, c := range Currencies() {
		if c != i.Currency {
			out = append(out, c)
		}
	}
	return out
}

// TaxRateIDs collects the remote tax rate ids of every synced tax
// attached to the item. Taxes that never synced are skipped.
func (i *Item) TaxRateIDs() []string {
	ids := make([]string, 0, len(i.Taxes))
	for _, t := range i.Taxes {
		if t.StripeTaxRateID != "" {
			ids = append(ids, t.StripeTaxRateID)
		}
	}
	return ids
}
