package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/sergey87kuzin/stripe-payments/internal/domain/catalog"
	"github.com/sergey87kuzin/stripe-payments/internal/infrastructure/billing"
)

// PricingGateway is the payment-provider surface the sync service needs
type PricingGateway interface {
	CreateProduct(ctx context.Context, input billing.CreateProductInput) (string, error)
	CreatePrice(ctx context.Context, input billing.CreatePriceInput) (string, error)
	CreateTaxRate(ctx context.Context, input billing.CreateTaxRateInput) (string, error)
	CreateCoupon(ctx context.Context, input billing.CreateCouponInput) (string, error)
}

// SyncResult reports the outcome of one mirroring attempt
type SyncResult struct {
	Synced bool
	Reason string
}

func syncOK() SyncResult {
	return SyncResult{Synced: true}
}

func syncFailed(err error) SyncResult {
	return SyncResult{Synced: false, Reason: err.Error()}
}

// PricingSyncService mirrors catalog records to the payment provider.
// Each Sync method makes at most one attempt per remote object and
// writes any obtained ids onto the entity; it never returns an error.
// Callers persist the entity afterwards and decide how to react to a
// failed result.
type PricingSyncService struct {
	gateway PricingGateway
	logger  *zap.Logger
}

// NewPricingSyncService creates a new PricingSyncService
func NewPricingSyncService(gateway PricingGateway, logger *zap.Logger) *PricingSyncService {
	return &PricingSyncService{
		gateway: gateway,
		logger:  logger,
	}
}

// SyncItem creates a product and a price for the item. The price is
// denominated in the item's own currency with the two remaining
// currencies attached as currency options. A failure after the product
// was created leaves the product id on the item.
func (s *PricingSyncService) SyncItem(ctx context.Context, item *catalog.Item) SyncResult {
	productID, err := s.gateway.CreateProduct(ctx, billing.CreateProductInput{
		Name:        item.Name,
		Description: item.Description,
	})
	if err != nil {
		return syncFailed(err)
	}
	item.StripeProductID = productID

	options := make(map[string]int64, 2)
	for _, c := range item.SecondaryCurrencies() {
		options[string(c)] = item.UnitAmount(c)
	}

	priceID, err := s.gateway.CreatePrice(ctx, billing.CreatePriceInput{
		ProductID:       productID,
		Currency:        string(item.Currency),
		UnitAmount:      item.UnitAmount(item.Currency),
		CurrencyOptions: options,
	})
	if err != nil {
		return syncFailed(err)
	}
	item.StripePriceID = priceID

	return syncOK()
}

// SyncTax creates an exclusive tax rate for the tax
func (s *PricingSyncService) SyncTax(ctx context.Context, tax *catalog.Tax) SyncResult {
	taxRateID, err := s.gateway.CreateTaxRate(ctx, billing.CreateTaxRateInput{
		DisplayName: tax.Name,
		Description: tax.Description,
		Percentage:  float64(tax.Percentage),
	})
	if err != nil {
		return syncFailed(err)
	}
	tax.StripeTaxRateID = taxRateID

	return syncOK()
}

// SyncDiscount creates a percent-off coupon for the discount
func (s *PricingSyncService) SyncDiscount(ctx context.Context, discount *catalog.Discount) SyncResult {
	couponID, err := s.gateway.CreateCoupon(ctx, billing.CreateCouponInput{
		Name:       discount.Name,
		PercentOff: float64(discount.Percentage),
	})
	if err != nil {
		return syncFailed(err)
	}
	discount.StripeCouponID = couponID

	return syncOK()
}
