package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sergey87kuzin/stripe-payments/internal/domain/catalog"
	"github.com/sergey87kuzin/stripe-payments/internal/domain/shared"
)

// DiscountService handles discount-related business operations
type DiscountService struct {
	discountRepo catalog.DiscountRepository
	sync         *PricingSyncService
	logger       *zap.Logger
}

// NewDiscountService creates a new DiscountService
func NewDiscountService(discountRepo catalog.DiscountRepository, sync *PricingSyncService, logger *zap.Logger) *DiscountService {
	return &DiscountService{
		discountRepo: discountRepo,
		sync:         sync,
		logger:       logger,
	}
}

// Create creates a new discount and mirrors it to the payment provider
func (s *DiscountService) Create(ctx context.Context, req CreateDiscountRequest) (*DiscountResponse, error) {
	discount, err := catalog.NewDiscount(req.Name, req.Percentage)
	if err != nil {
		return nil, err
	}

	if err := s.discountRepo.Save(ctx, discount); err != nil {
		return nil, err
	}

	s.mirror(ctx, discount)

	return ToDiscountResponse(discount), nil
}

// Update updates a discount and mirrors the new state to the payment provider
func (s *DiscountService) Update(ctx context.Context, id uuid.UUID, req UpdateDiscountRequest) (*DiscountResponse, error) {
	discount, err := s.discountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	discount.Name = req.Name
	discount.Percentage = req.Percentage
	if err := discount.Validate(); err != nil {
		return nil, err
	}

	if err := s.discountRepo.Save(ctx, discount); err != nil {
		return nil, err
	}

	s.mirror(ctx, discount)

	return ToDiscountResponse(discount), nil
}

// GetByID retrieves a discount by ID
func (s *DiscountService) GetByID(ctx context.Context, id uuid.UUID) (*DiscountResponse, error) {
	discount, err := s.discountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToDiscountResponse(discount), nil
}

// List retrieves discounts matching the filter
func (s *DiscountService) List(ctx context.Context, filter ListFilter) ([]*DiscountResponse, int64, error) {
	discounts, total, err := s.discountRepo.FindAll(ctx, shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
	})
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*DiscountResponse, 0, len(discounts))
	for _, discount := range discounts {
		responses = append(responses, ToDiscountResponse(discount))
	}
	return responses, total, nil
}

// Delete deletes a discount; items and orders that referenced it keep
// their stale reference
func (s *DiscountService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.discountRepo.Delete(ctx, id)
}

// mirror pushes the discount to the payment provider and persists the
// obtained coupon id. A failed attempt leaves the previous id alone.
func (s *DiscountService) mirror(ctx context.Context, discount *catalog.Discount) {
	result := s.sync.SyncDiscount(ctx, discount)
	if !result.Synced {
		s.logger.Warn("Discount sync failed",
			zap.String("discount_id", discount.ID.String()),
			zap.String("reason", result.Reason))
		return
	}
	if err := s.discountRepo.Save(ctx, discount); err != nil {
		s.logger.Warn("Failed to persist remote ids",
			zap.String("discount_id", discount.ID.String()),
			zap.Error(err))
	}
}
