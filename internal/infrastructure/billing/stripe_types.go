package billing

// CreateProductInput holds the fields for creating a Stripe product
type CreateProductInput struct {
	Name        string
	Description string
}

// CreatePriceInput holds the fields for creating a Stripe price.
// UnitAmount is in minor units of Currency; CurrencyOptions carries
// minor-unit amounts for additional currencies.
type CreatePriceInput struct {
	ProductID       string
	Currency        string
	UnitAmount      int64
	CurrencyOptions map[string]int64
}

// CreateTaxRateInput holds the fields for creating an exclusive Stripe tax rate
type CreateTaxRateInput struct {
	DisplayName string
	Description string
	Percentage  float64
}

// CreateCouponInput holds the fields for creating a percent-off Stripe coupon
type CreateCouponInput struct {
	Name       string
	PercentOff float64
}

// CheckoutLineItem is one line of a checkout session
type CheckoutLineItem struct {
	PriceID    string
	Quantity   int64
	TaxRateIDs []string
}

// CreateCheckoutSessionInput holds the fields for creating a payment-mode
// checkout session. CouponID, when non-empty, attaches a discount to the
// whole session. Currency, when non-empty, forces the session currency.
type CreateCheckoutSessionInput struct {
	LineItems []CheckoutLineItem
	CouponID  string
	Currency  string
}
