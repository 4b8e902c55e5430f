package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/sergey87kuzin/stripe-payments/internal/domain/catalog"
	"github.com/sergey87kuzin/stripe-payments/internal/domain/shared"
	"github.com/sergey87kuzin/stripe-payments/internal/infrastructure/billing"
)

// mockPricingGateway mocks PricingGateway
type mockPricingGateway struct {
	mock.Mock
}

func (m *mockPricingGateway) CreateProduct(ctx context.Context, input billing.CreateProductInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *mockPricingGateway) CreatePrice(ctx context.Context, input billing.CreatePriceInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *mockPricingGateway) CreateTaxRate(ctx context.Context, input billing.CreateTaxRateInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *mockPricingGateway) CreateCoupon(ctx context.Context, input billing.CreateCouponInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

// mockItemRepository mocks catalog.ItemRepository
type mockItemRepository struct {
	mock.Mock
}

func (m *mockItemRepository) Save(ctx context.Context, item *catalog.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *mockItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*catalog.Item, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*catalog.Item), args.Get(1).(int64), args.Error(2)
}

func (m *mockItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockItemRepository) ReplaceTaxes(ctx context.Context, item *catalog.Item, taxIDs []uuid.UUID) error {
	args := m.Called(ctx, item, taxIDs)
	return args.Error(0)
}

// mockTaxRepository mocks catalog.TaxRepository
type mockTaxRepository struct {
	mock.Mock
}

func (m *mockTaxRepository) Save(ctx context.Context, tax *catalog.Tax) error {
	args := m.Called(ctx, tax)
	return args.Error(0)
}

func (m *mockTaxRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Tax, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Tax), args.Error(1)
}

func (m *mockTaxRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*catalog.Tax, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*catalog.Tax), args.Get(1).(int64), args.Error(2)
}

func (m *mockTaxRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockDiscountRepository mocks catalog.DiscountRepository
type mockDiscountRepository struct {
	mock.Mock
}

func (m *mockDiscountRepository) Save(ctx context.Context, discount *catalog.Discount) error {
	args := m.Called(ctx, discount)
	return args.Error(0)
}

func (m *mockDiscountRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Discount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Discount), args.Error(1)
}

func (m *mockDiscountRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*catalog.Discount, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*catalog.Discount), args.Get(1).(int64), args.Error(2)
}

func (m *mockDiscountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
