package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appcatalog "github.com/sergey87kuzin/stripe-payments/internal/application/catalog"
	"github.com/sergey87kuzin/stripe-payments/internal/application/checkout"
	"github.com/sergey87kuzin/stripe-payments/internal/domain/catalog"
	"github.com/sergey87kuzin/stripe-payments/internal/domain/order"
	"github.com/sergey87kuzin/stripe-payments/internal/domain/shared"
	"github.com/sergey87kuzin/stripe-payments/internal/infrastructure/billing"
)

// stubItemRepo implements catalog.ItemRepository backed by a fixed set
type stubItemRepo struct {
	items map[uuid.UUID]*catalog.Item
}

func (s *stubItemRepo) Save(ctx context.Context, item *catalog.Item) error { return nil }

func (s *stubItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	if item, ok := s.items[id]; ok {
		return item, nil
	}
	return nil, shared.ErrNotFound
}

func (s *stubItemRepo) FindAll(ctx context.Context, filter shared.Filter) ([]*catalog.Item, int64, error) {
	out := make([]*catalog.Item, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	return out, int64(len(out)), nil
}

func (s *stubItemRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (s *stubItemRepo) ReplaceTaxes(ctx context.Context, item *catalog.Item, taxIDs []uuid.UUID) error {
	return nil
}

// stubOrderRepo implements order.Repository backed by a fixed set
type stubOrderRepo struct {
	orders map[uuid.UUID]*order.Order
}

func (s *stubOrderRepo) Save(ctx context.Context, o *order.Order) error { return nil }

func (s *stubOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	if o, ok := s.orders[id]; ok {
		return o, nil
	}
	return nil, shared.ErrNotFound
}

func (s *stubOrderRepo) FindAll(ctx context.Context, filter shared.Filter) ([]*order.Order, int64, error) {
	return nil, 0, nil
}

func (s *stubOrderRepo) Delete(ctx context.Context, id uuid.UUID) error        { return nil }
func (s *stubOrderRepo) SaveLine(ctx context.Context, l *order.OrderLine) error { return nil }
func (s *stubOrderRepo) DeleteLine(ctx context.Context, id uuid.UUID) error    { return nil }

// stubDiscountRepo implements catalog.DiscountRepository with no discounts
type stubDiscountRepo struct{}

func (s *stubDiscountRepo) Save(ctx context.Context, d *catalog.Discount) error { return nil }

func (s *stubDiscountRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Discount, error) {
	return nil, shared.ErrNotFound
}

func (s *stubDiscountRepo) FindAll(ctx context.Context, filter shared.Filter) ([]*catalog.Discount, int64, error) {
	return nil, 0, nil
}

func (s *stubDiscountRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

// stubGateway implements both the pricing and checkout gateway surfaces
type stubGateway struct {
	sessionID  string
	sessionErr error
}

func (s *stubGateway) CreateProduct(ctx context.Context, input billing.CreateProductInput) (string, error) {
	return "prod_stub", nil
}

func (s *stubGateway) CreatePrice(ctx context.Context, input billing.CreatePriceInput) (string, error) {
	return "price_stub", nil
}

func (s *stubGateway) CreateTaxRate(ctx context.Context, input billing.CreateTaxRateInput) (string, error) {
	return "txr_stub", nil
}

func (s *stubGateway) CreateCoupon(ctx context.Context, input billing.CreateCouponInput) (string, error) {
	return "co_stub", nil
}

func (s *stubGateway) CreateCheckoutSession(ctx context.Context, input billing.CreateCheckoutSessionInput) (string, error) {
	return s.sessionID, s.sessionErr
}

func (s *stubGateway) PublishableKey() string { return "pk_test_stub" }

type storefrontFixture struct {
	engine    *gin.Engine
	item      *catalog.Item
	order     *order.Order
	orderRepo *stubOrderRepo
	gateway   *stubGateway
}

func setupStorefront(t *testing.T) *storefrontFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	item, err := catalog.NewItem("Coffee Mug", "Ceramic",
		decimal.NewFromFloat(12.50),
		decimal.NewFromFloat(11.90),
		decimal.NewFromFloat(13.20),
		catalog.CurrencyUSD)
	require.NoError(t, err)
	item.StripePriceID = "price_123"

	o, err := order.NewOrder(42)
	require.NoError(t, err)
	_, err = o.AddLine(item.ID, 2)
	require.NoError(t, err)

	itemRepo := &stubItemRepo{items: map[uuid.UUID]*catalog.Item{item.ID: item}}
	orderRepo := &stubOrderRepo{orders: map[uuid.UUID]*order.Order{o.ID: o}}
	discountRepo := &stubDiscountRepo{}
	gateway := &stubGateway{sessionID: "cs_test_abc"}

	checkoutService := checkout.NewCheckoutService(itemRepo, orderRepo, discountRepo, gateway, zap.NewNop())
	syncService := appcatalog.NewPricingSyncService(gateway, zap.NewNop())
	itemService := appcatalog.NewItemService(itemRepo, discountRepo, syncService, zap.NewNop())

	h := NewStorefrontHandler(checkoutService, itemService)

	engine := gin.New()
	engine.GET("/", h.Home)
	engine.GET("/item/:id", h.ItemDetail)
	engine.GET("/buy/:id", h.BuyItem)
	engine.GET("/order/:id", h.OrderDetail)
	engine.GET("/buy_order/:id", h.BuyOrder)
	engine.GET("/success/", h.Success)
	engine.GET("/bad_request/", h.BadRequest)

	return &storefrontFixture{engine: engine, item: item, order: o, orderRepo: orderRepo, gateway: gateway}
}

func (f *storefrontFixture) get(t *testing.T, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	f.engine.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestStorefront_BuyItem_Success(t *testing.T) {
	f := setupStorefront(t)

	rec, body := f.get(t, "/buy/"+f.item.ID.String())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cs_test_abc", body["sessionId"])
	assert.NotContains(t, body, "error")
}

func TestStorefront_BuyItem_NotFound(t *testing.T) {
	f := setupStorefront(t)

	rec, body := f.get(t, "/buy/"+uuid.NewString())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "item not found", body["error"])
}

func TestStorefront_BuyItem_GatewayFailureIsHTTP200(t *testing.T) {
	f := setupStorefront(t)
	f.gateway.sessionID = ""
	f.gateway.sessionErr = errors.New("stripe: failed to create checkout session: api down")

	rec, body := f.get(t, "/buy/"+f.item.ID.String())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body["error"], "api down")
	assert.NotContains(t, body, "sessionId")
}

func TestStorefront_BuyItem_MalformedID(t *testing.T) {
	f := setupStorefront(t)

	rec, body := f.get(t, "/buy/not-a-uuid")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", body["error"])
}

func TestStorefront_BuyOrder_Success(t *testing.T) {
	f := setupStorefront(t)

	rec, body := f.get(t, "/buy_order/"+f.order.ID.String())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cs_test_abc", body["sessionId"])
}

func TestStorefront_BuyOrder_NotFound(t *testing.T) {
	f := setupStorefront(t)

	rec, body := f.get(t, "/buy_order/"+uuid.NewString())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "order not found", body["error"])
}

func TestStorefront_BuyOrder_BrokenLineIsHTTP200(t *testing.T) {
	f := setupStorefront(t)

	// An order whose line references a deleted item
	broken, err := order.NewOrder(99)
	require.NoError(t, err)
	_, err = broken.AddLine(uuid.New(), 1)
	require.NoError(t, err)
	f.orderRepo.orders[broken.ID] = broken

	rec, body := f.get(t, "/buy_order/"+broken.ID.String())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "error")
}

func TestStorefront_ItemDetail(t *testing.T) {
	f := setupStorefront(t)

	rec, body := f.get(t, "/item/"+f.item.ID.String())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Coffee Mug", body["name"])
	assert.Equal(t, "usd", body["currency"])
	assert.Equal(t, "pk_test_stub", body["publishableKey"])
}

func TestStorefront_ItemDetail_NotFound(t *testing.T) {
	f := setupStorefront(t)

	rec, body := f.get(t, "/item/"+uuid.NewString())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", body["error"])
}

func TestStorefront_OrderDetail(t *testing.T) {
	f := setupStorefront(t)

	rec, body := f.get(t, "/order/"+f.order.ID.String())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(42), body["number"])
	assert.Equal(t, "pk_test_stub", body["publishableKey"])
}

func TestStorefront_Home(t *testing.T) {
	f := setupStorefront(t)

	rec, body := f.get(t, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	items, ok := body["items"].([]any)
	require.True(t, ok)
	assert.Len(t, items, 1)
}

func TestStorefront_LandingPages(t *testing.T) {
	f := setupStorefront(t)

	rec, body := f.get(t, "/success/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "payment succeeded", body["message"])

	rec, body = f.get(t, "/bad_request/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "payment cancelled", body["message"])
}
