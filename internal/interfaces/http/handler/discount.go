package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/sergey87kuzin/stripe-payments/internal/application/catalog"
)

// DiscountHandler handles discount management endpoints
type DiscountHandler struct {
	BaseHandler
	service *appcatalog.DiscountService
}

// NewDiscountHandler creates a new DiscountHandler
func NewDiscountHandler(service *appcatalog.DiscountService) *DiscountHandler {
	return &DiscountHandler{service: service}
}

// Create handles POST /api/v1/discounts
func (h *DiscountHandler) Create(c *gin.Context) {
	var req appcatalog.CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get handles GET /api/v1/discounts/:id
func (h *DiscountHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// List handles GET /api/v1/discounts
func (h *DiscountHandler) List(c *gin.Context) {
	var filter appcatalog.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}

	discounts, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, discounts, total, filter.Page, filter.PageSize)
}

// Update handles PUT /api/v1/discounts/:id
func (h *DiscountHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req appcatalog.UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete handles DELETE /api/v1/discounts/:id
func (h *DiscountHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
