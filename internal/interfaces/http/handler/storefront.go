package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appcatalog "github.com/sergey87kuzin/stripe-payments/internal/application/catalog"
	"github.com/sergey87kuzin/stripe-payments/internal/application/checkout"
	"github.com/sergey87kuzin/stripe-payments/internal/domain/shared"
)

// StorefrontHandler serves the customer-facing routes. Unlike the
// management API these endpoints keep a flat JSON contract: buy
// endpoints answer 200 with either {"sessionId"} or {"error"}, and
// only a missing local entity produces a 404.
type StorefrontHandler struct {
	checkoutService *checkout.CheckoutService
	itemService     *appcatalog.ItemService
}

// NewStorefrontHandler creates a new StorefrontHandler
func NewStorefrontHandler(checkoutService *checkout.CheckoutService, itemService *appcatalog.ItemService) *StorefrontHandler {
	return &StorefrontHandler{
		checkoutService: checkoutService,
		itemService:     itemService,
	}
}

// Home handles GET / and lists the catalog
func (h *StorefrontHandler) Home(c *gin.Context) {
	items, _, err := h.itemService.List(c.Request.Context(), appcatalog.ListFilter{Page: 1, PageSize: 100})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load items"})
		return
	}

	list := make([]gin.H, 0, len(items))
	for _, item := range items {
		list = append(list, gin.H{
			"id":       item.ID,
			"name":     item.Name,
			"currency": item.Currency,
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": list})
}

// ItemDetail handles GET /item/:id
func (h *StorefrontHandler) ItemDetail(c *gin.Context) {
	id, ok := h.storefrontID(c)
	if !ok {
		return
	}

	detail, err := h.checkoutService.ItemDetail(c.Request.Context(), id)
	if err != nil {
		h.storefrontError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// BuyItem handles GET /buy/:id
func (h *StorefrontHandler) BuyItem(c *gin.Context) {
	id, ok := h.storefrontID(c)
	if !ok {
		return
	}

	sessionID, err := h.checkoutService.BuyItem(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID})
}

// OrderDetail handles GET /order/:id
func (h *StorefrontHandler) OrderDetail(c *gin.Context) {
	id, ok := h.storefrontID(c)
	if !ok {
		return
	}

	detail, err := h.checkoutService.OrderDetail(c.Request.Context(), id)
	if err != nil {
		h.storefrontError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// BuyOrder handles GET /buy_order/:id
func (h *StorefrontHandler) BuyOrder(c *gin.Context) {
	id, ok := h.storefrontID(c)
	if !ok {
		return
	}

	sessionID, err := h.checkoutService.BuyOrder(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID})
}

// Success handles GET /success/, the checkout success landing
func (h *StorefrontHandler) Success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "payment succeeded"})
}

// BadRequest handles GET /bad_request/, the checkout cancel landing
func (h *StorefrontHandler) BadRequest(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "payment cancelled"})
}

// storefrontID parses the :id path parameter with the flat error contract
func (h *StorefrontHandler) storefrontID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return uuid.Nil, false
	}
	return id, true
}

// storefrontError maps lookup errors for detail pages
func (h *StorefrontHandler) storefrontError(c *gin.Context, err error) {
	if errors.Is(err, shared.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
