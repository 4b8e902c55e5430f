package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sergey87kuzin/stripe-payments/internal/infrastructure/logger"
	"github.com/sergey87kuzin/stripe-payments/internal/interfaces/http/handler"
	"github.com/sergey87kuzin/stripe-payments/internal/interfaces/http/middleware"
)

// Handlers bundles all HTTP handlers for route registration
type Handlers struct {
	Item       *handler.ItemHandler
	Tax        *handler.TaxHandler
	Discount   *handler.DiscountHandler
	Order      *handler.OrderHandler
	Storefront *handler.StorefrontHandler
}

// Setup builds the gin engine with all middleware and routes registered
func Setup(env string, log *zap.Logger, h Handlers) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(logger.GinMiddleware(log))
	r.Use(logger.Recovery(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	registerStorefrontRoutes(r, h.Storefront)
	registerAPIRoutes(r, h)

	return r
}

// registerStorefrontRoutes wires the customer-facing routes
func registerStorefrontRoutes(r *gin.Engine, sf *handler.StorefrontHandler) {
	r.GET("/", sf.Home)
	r.GET("/item/:id", sf.ItemDetail)
	r.GET("/buy/:id", sf.BuyItem)
	r.GET("/order/:id", sf.OrderDetail)
	r.GET("/buy_order/:id", sf.BuyOrder)
	r.GET("/success/", sf.Success)
	r.GET("/bad_request/", sf.BadRequest)
}

// registerAPIRoutes wires the management API
func registerAPIRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api/v1")

	items := api.Group("/items")
	{
		items.POST("", h.Item.Create)
		items.GET("", h.Item.List)
		items.GET("/:id", h.Item.Get)
		items.PUT("/:id", h.Item.Update)
		items.DELETE("/:id", h.Item.Delete)
	}

	taxes := api.Group("/taxes")
	{
		taxes.POST("", h.Tax.Create)
		taxes.GET("", h.Tax.List)
		taxes.GET("/:id", h.Tax.Get)
		taxes.PUT("/:id", h.Tax.Update)
		taxes.DELETE("/:id", h.Tax.Delete)
	}

	discounts := api.Group("/discounts")
	{
		discounts.POST("", h.Discount.Create)
		discounts.GET("", h.Discount.List)
		discounts.GET("/:id", h.Discount.Get)
		discounts.PUT("/:id", h.Discount.Update)
		discounts.DELETE("/:id", h.Discount.Delete)
	}

	orders := api.Group("/orders")
	{
		orders.POST("", h.Order.Create)
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id", h.Order.Update)
		orders.DELETE("/:id", h.Order.Delete)
		orders.POST("/:id/lines", h.Order.AddLine)
		orders.DELETE("/:id/lines/:lineId", h.Order.RemoveLine)
	}
}
