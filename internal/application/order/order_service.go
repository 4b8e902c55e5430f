package order

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sergey87kuzin/stripe-payments/internal/domain/catalog"
	"github.com/sergey87kuzin/stripe-payments/internal/domain/order"
	"github.com/sergey87kuzin/stripe-payments/internal/domain/shared"
)

// OrderService handles order-related business operations
type OrderService struct {
	orderRepo    order.Repository
	itemRepo     catalog.ItemRepository
	discountRepo catalog.DiscountRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo order.Repository,
	itemRepo catalog.ItemRepository,
	discountRepo catalog.DiscountRepository,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		itemRepo:     itemRepo,
		discountRepo: discountRepo,
	}
}

// Create creates a new order with optional initial lines
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	o, err := order.NewOrder(req.Number)
	if err != nil {
		return nil, err
	}

	if req.DiscountID != nil {
		if err := s.checkDiscount(ctx, *req.DiscountID); err != nil {
			return nil, err
		}
		o.DiscountID = req.DiscountID
	}

	for _, lineReq := range req.Lines {
		if err := s.checkItem(ctx, lineReq.ItemID); err != nil {
			return nil, err
		}
		if _, err := o.AddLine(lineReq.ItemID, lineReq.Quantity); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}
	for i := range o.Lines {
		if err := s.orderRepo.SaveLine(ctx, &o.Lines[i]); err != nil {
			return nil, err
		}
	}

	return ToOrderResponse(o), nil
}

// GetByID retrieves an order with its lines
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(o), nil
}

// List retrieves orders matching the filter
func (s *OrderService) List(ctx context.Context, filter ListFilter) ([]*OrderResponse, int64, error) {
	orders, total, err := s.orderRepo.FindAll(ctx, shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
	})
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, ToOrderResponse(o))
	}
	return responses, total, nil
}

// Update updates an order's number and discount
func (s *OrderService) Update(ctx context.Context, id uuid.UUID, req UpdateOrderRequest) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	o.Number = req.Number
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if req.DiscountID != nil {
		if err := s.checkDiscount(ctx, *req.DiscountID); err != nil {
			return nil, err
		}
	}
	o.DiscountID = req.DiscountID

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}
	return ToOrderResponse(o), nil
}

// Delete deletes an order together with its lines
func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.orderRepo.Delete(ctx, id)
}

// AddLine adds a line to an existing order
func (s *OrderService) AddLine(ctx context.Context, orderID uuid.UUID, req AddLineRequest) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.checkItem(ctx, req.ItemID); err != nil {
		return nil, err
	}

	line, err := o.AddLine(req.ItemID, req.Quantity)
	if err != nil {
		return nil, err
	}
	if err := s.orderRepo.SaveLine(ctx, line); err != nil {
		return nil, err
	}

	return ToOrderResponse(o), nil
}

// RemoveLine removes a line from an order
func (s *OrderService) RemoveLine(ctx context.Context, orderID, lineID uuid.UUID) error {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	for _, line := range o.Lines {
		if line.ID == lineID {
			return s.orderRepo.DeleteLine(ctx, lineID)
		}
	}
	return shared.ErrNotFound
}

// checkItem verifies the referenced item exists
func (s *OrderService) checkItem(ctx context.Context, id uuid.UUID) error {
	if _, err := s.itemRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("INVALID_ITEM", "Item not found")
		}
		return err
	}
	return nil
}

// checkDiscount verifies the referenced discount exists
func (s *OrderService) checkDiscount(ctx context.Context, id uuid.UUID) error {
	if _, err := s.discountRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("INVALID_DISCOUNT", "Discount not found")
		}
		return err
	}
	return nil
}
