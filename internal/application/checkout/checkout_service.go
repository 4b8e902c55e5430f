package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sergey87kuzin/stripe-payments/internal/domain/catalog"
	"github.com/sergey87kuzin/stripe-payments/internal/domain/order"
	"github.com/sergey87kuzin/stripe-payments/internal/domain/shared"
	"github.com/sergey87kuzin/stripe-payments/internal/infrastructure/billing"
)

// CheckoutGateway is the payment-provider surface the checkout service needs
type CheckoutGateway interface {
	CreateCheckoutSession(ctx context.Context, input billing.CreateCheckoutSessionInput) (string, error)
	PublishableKey() string
}

// CheckoutService builds payment-provider checkout sessions for single
// items and whole orders. A missing local entity fails fast, before any
// remote call; remote failures come back as plain errors for the
// handler to surface.
type CheckoutService struct {
	itemRepo     catalog.ItemRepository
	orderRepo    order.Repository
	discountRepo catalog.DiscountRepository
	gateway      CheckoutGateway
	logger       *zap.Logger
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(
	itemRepo catalog.ItemRepository,
	orderRepo order.Repository,
	discountRepo catalog.DiscountRepository,
	gateway CheckoutGateway,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		itemRepo:     itemRepo,
		orderRepo:    orderRepo,
		discountRepo: discountRepo,
		gateway:      gateway,
		logger:       logger,
	}
}

// BuyItem creates a checkout session for a single item, quantity one,
// with all of the item's synced tax rates attached and the item's
// discount as an optional coupon.
func (s *CheckoutService) BuyItem(ctx context.Context, itemID uuid.UUID) (string, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return "", err
	}

	input := billing.CreateCheckoutSessionInput{
		LineItems: []billing.CheckoutLineItem{
			{
				PriceID:    item.StripePriceID,
				Quantity:   1,
				TaxRateIDs: item.TaxRateIDs(),
			},
		},
		CouponID: s.resolveCoupon(ctx, item.DiscountID),
	}

	sessionID, err := s.gateway.CreateCheckoutSession(ctx, input)
	if err != nil {
		s.logger.Warn("Checkout session failed",
			zap.String("item_id", itemID.String()),
			zap.Error(err))
		return "", err
	}
	return sessionID, nil
}

// BuyOrder creates a checkout session with one line per order line.
// The session currency is forced to usd; the order's discount is
// attached as an optional coupon.
func (s *CheckoutService) BuyOrder(ctx context.Context, orderID uuid.UUID) (string, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return "", err
	}

	lineItems := make([]billing.CheckoutLineItem, 0, len(o.Lines))
	for _, line := range o.Lines {
		item, err := s.itemRepo.FindByID(ctx, line.ItemID)
		if err != nil {
			// A broken line reference is a checkout failure, not a
			// missing order
			return "", fmt.Errorf("order line item %s: %s", line.ItemID, err.Error())
		}
		lineItems = append(lineItems, billing.CheckoutLineItem{
			PriceID:    item.StripePriceID,
			Quantity:   int64(line.Quantity),
			TaxRateIDs: item.TaxRateIDs(),
		})
	}

	input := billing.CreateCheckoutSessionInput{
		LineItems: lineItems,
		CouponID:  s.resolveCoupon(ctx, o.DiscountID),
		Currency:  string(catalog.CurrencyUSD),
	}

	sessionID, err := s.gateway.CreateCheckoutSession(ctx, input)
	if err != nil {
		s.logger.Warn("Checkout session failed",
			zap.String("order_id", orderID.String()),
			zap.Error(err))
		return "", err
	}
	return sessionID, nil
}

// ItemDetail returns an item with its display price and the key the
// frontend needs to start checkout
func (s *CheckoutService) ItemDetail(ctx context.Context, itemID uuid.UUID) (*ItemDetailResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return ToItemDetailResponse(item, s.gateway.PublishableKey()), nil
}

// OrderDetail returns an order with its lines and the key the frontend
// needs to start checkout
func (s *CheckoutService) OrderDetail(ctx context.Context, orderID uuid.UUID) (*OrderDetailResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return ToOrderDetailResponse(o, s.gateway.PublishableKey()), nil
}

// resolveCoupon maps a discount reference to a coupon id. A nil
// reference, a deleted discount, or one that never synced all resolve
// to no coupon rather than an error.
func (s *CheckoutService) resolveCoupon(ctx context.Context, discountID *uuid.UUID) string {
	if discountID == nil {
		return ""
	}
	discount, err := s.discountRepo.FindByID(ctx, *discountID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Discount lookup failed",
				zap.String("discount_id", discountID.String()),
				zap.Error(err))
		}
		return ""
	}
	return discount.StripeCouponID
}
