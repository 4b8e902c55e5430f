package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sergey87kuzin/stripe-payments/internal/domain/catalog"
	"github.com/sergey87kuzin/stripe-payments/internal/domain/shared"
)

// ItemService handles item-related business operations.
// Every save is mirrored to the payment provider best-effort: a failed
// mirror attempt is logged and the local record kept, with whatever
// remote ids the attempt managed to obtain.
type ItemService struct {
	itemRepo     catalog.ItemRepository
	discountRepo catalog.DiscountRepository
	sync         *PricingSyncService
	logger       *zap.Logger
}

// NewItemService creates a new ItemService
func NewItemService(
	itemRepo catalog.ItemRepository,
	discountRepo catalog.DiscountRepository,
	sync *PricingSyncService,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		itemRepo:     itemRepo,
		discountRepo: discountRepo,
		sync:         sync,
		logger:       logger,
	}
}

// Create creates a new item and mirrors it to the payment provider
func (s *ItemService) Create(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	item, err := catalog.NewItem(req.Name, req.Description, req.PriceUSD, req.PriceEUR, req.PriceCHF, catalog.Currency(req.Currency))
	if err != nil {
		return nil, err
	}

	if req.DiscountID != nil {
		if err := s.checkDiscount(ctx, *req.DiscountID); err != nil {
			return nil, err
		}
		item.DiscountID = req.DiscountID
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	if len(req.TaxIDs) > 0 {
		if err := s.itemRepo.ReplaceTaxes(ctx, item, req.TaxIDs); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_TAX", "One or more taxes not found")
			}
			return nil, err
		}
	}

	s.mirror(ctx, item)

	return ToItemResponse(item), nil
}

// Update updates an item and mirrors the new state to the payment provider
func (s *ItemService) Update(ctx context.Context, id uuid.UUID, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = req.Name
	item.Description = req.Description
	item.PriceUSD = req.PriceUSD
	item.PriceEUR = req.PriceEUR
	item.PriceCHF = req.PriceCHF
	item.Currency = catalog.Currency(req.Currency)
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if req.DiscountID != nil {
		if err := s.checkDiscount(ctx, *req.DiscountID); err != nil {
			return nil, err
		}
	}
	item.DiscountID = req.DiscountID

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	if err := s.itemRepo.ReplaceTaxes(ctx, item, req.TaxIDs); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_TAX", "One or more taxes not found")
		}
		return nil, err
	}

	s.mirror(ctx, item)

	return ToItemResponse(item), nil
}

// GetByID retrieves an item by ID
func (s *ItemService) GetByID(ctx context.Context, id uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToItemResponse(item), nil
}

// List retrieves items matching the filter
func (s *ItemService) List(ctx context.Context, filter ListFilter) ([]*ItemResponse, int64, error) {
	items, total, err := s.itemRepo.FindAll(ctx, shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
	})
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToItemResponse(item))
	}
	return responses, total, nil
}

// Delete deletes an item. The mirrored product stays behind in the
// payment provider untouched.
func (s *ItemService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.itemRepo.Delete(ctx, id)
}

// mirror pushes the item to the payment provider and persists the ids
// the attempt obtained. Failures are logged and swallowed.
func (s *ItemService) mirror(ctx context.Context, item *catalog.Item) {
	result := s.sync.SyncItem(ctx, item)
	if !result.Synced {
		s.logger.Warn("Item sync failed",
			zap.String("item_id", item.ID.String()),
			zap.String("reason", result.Reason))
	}
	if item.StripeProductID == "" && item.StripePriceID == "" {
		return
	}
	if err := s.itemRepo.Save(ctx, item); err != nil {
		s.logger.Warn("Failed to persist remote ids",
			zap.String("item_id", item.ID.String()),
			zap.Error(err))
	}
}

// checkDiscount verifies the referenced discount exists
func (s *ItemService) checkDiscount(ctx context.Context, id uuid.UUID) error {
	if _, err := s.discountRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("INVALID_DISCOUNT", "Discount not found")
		}
		return err
	}
	return nil
}
