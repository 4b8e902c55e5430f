package billing

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
	"github.com/stripe/stripe-go/v81/coupon"
	"github.com/stripe/stripe-go/v81/price"
	"github.com/stripe/stripe-go/v81/product"
	"github.com/stripe/stripe-go/v81/taxrate"
	"go.uber.org/zap"
)

// StripeGateway implements the Stripe pricing and checkout operations
type StripeGateway struct {
	config *StripeConfig
	logger *zap.Logger
}

// NewStripeGateway creates a new Stripe gateway
func NewStripeGateway(config *StripeConfig, logger *zap.Logger) (*StripeGateway, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.InitStripeClient()

	return &StripeGateway{
		config: config,
		logger: logger,
	}, nil
}

// PublishableKey returns the key the frontend uses to start checkout
func (g *StripeGateway) PublishableKey() string {
	return g.config.PublishableKey
}

// CreateProduct creates a product in Stripe and returns its id
func (g *StripeGateway) CreateProduct(ctx context.Context, input CreateProductInput) (string, error) {
	g.logger.Debug("Creating Stripe product", zap.String("name", input.Name))

	params := &stripe.ProductParams{
		Name: stripe.String(input.Name),
	}
	if input.Description != "" {
		params.Description = stripe.String(input.Description)
	}

	prod, err := product.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: failed to create product: %w", err)
	}

	g.logger.Info("Created Stripe product", zap.String("product_id", prod.ID))
	return prod.ID, nil
}

// CreatePrice creates a price for a product in Stripe and returns its id
func (g *StripeGateway) CreatePrice(ctx context.Context, input CreatePriceInput) (string, error) {
	g.logger.Debug("Creating Stripe price",
		zap.String("product_id", input.ProductID),
		zap.String("currency", input.Currency),
		zap.Int64("unit_amount", input.UnitAmount))

	params := &stripe.PriceParams{
		Product:    stripe.String(input.ProductID),
		Currency:   stripe.String(input.Currency),
		UnitAmount: stripe.Int64(input.UnitAmount),
	}

	if len(input.CurrencyOptions) > 0 {
		params.CurrencyOptions = make(map[string]*stripe.PriceCurrencyOptionsParams, len(input.CurrencyOptions))
		for cur, amount := range input.CurrencyOptions {
			params.CurrencyOptions[cur] = &stripe.PriceCurrencyOptionsParams{
				UnitAmount: stripe.Int64(amount),
			}
		}
	}

	p, err := price.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: failed to create price: %w", err)
	}

	g.logger.Info("Created Stripe price",
		zap.String("price_id", p.ID),
		zap.String("product_id", input.ProductID))
	return p.ID, nil
}

// CreateTaxRate creates an exclusive tax rate in Stripe and returns its id
func (g *StripeGateway) CreateTaxRate(ctx context.Context, input CreateTaxRateInput) (string, error) {
	g.logger.Debug("Creating Stripe tax rate",
		zap.String("display_name", input.DisplayName),
		zap.Float64("percentage", input.Percentage))

	params := &stripe.TaxRateParams{
		DisplayName: stripe.String(input.DisplayName),
		Percentage:  stripe.Float64(input.Percentage),
		Inclusive:   stripe.Bool(false),
	}
	if input.Description != "" {
		params.Description = stripe.String(input.Description)
	}

	tr, err := taxrate.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: failed to create tax rate: %w", err)
	}

	g.logger.Info("Created Stripe tax rate", zap.String("tax_rate_id", tr.ID))
	return tr.ID, nil
}

// CreateCoupon creates a percent-off coupon in Stripe and returns its id
func (g *StripeGateway) CreateCoupon(ctx context.Context, input CreateCouponInput) (string, error) {
	g.logger.Debug("Creating Stripe coupon",
		zap.String("name", input.Name),
		zap.Float64("percent_off", input.PercentOff))

	params := &stripe.CouponParams{
		PercentOff: stripe.Float64(input.PercentOff),
	}
	if input.Name != "" {
		params.Name = stripe.String(input.Name)
	}

	c, err := coupon.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: failed to create coupon: %w", err)
	}

	g.logger.Info("Created Stripe coupon", zap.String("coupon_id", c.ID))
	return c.ID, nil
}

// CreateCheckoutSession creates a payment-mode checkout session and
// returns its id. Success and cancel URLs come from configuration.
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, input CreateCheckoutSessionInput) (string, error) {
	g.logger.Debug("Creating Stripe checkout session",
		zap.Int("line_items", len(input.LineItems)),
		zap.String("coupon_id", input.CouponID))

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(g.config.SuccessURL),
		CancelURL:  stripe.String(g.config.CancelURL),
	}

	for _, line := range input.LineItems {
		item := &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(line.PriceID),
			Quantity: stripe.Int64(line.Quantity),
		}
		if len(line.TaxRateIDs) > 0 {
			item.TaxRates = stripe.StringSlice(line.TaxRateIDs)
		}
		params.LineItems = append(params.LineItems, item)
	}

	if input.CouponID != "" {
		params.Discounts = []*stripe.CheckoutSessionDiscountParams{
			{Coupon: stripe.String(input.CouponID)},
		}
	}

	if input.Currency != "" {
		params.Currency = stripe.String(input.Currency)
	}

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: failed to create checkout session: %w", err)
	}

	g.logger.Info("Created Stripe checkout session", zap.String("session_id", sess.ID))
	return sess.ID, nil
}
