package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/sergey87kuzin/stripe-payments/internal/application/catalog"
)

// TaxHandler handles tax management endpoints
type TaxHandler struct {
	BaseHandler
	service *appcatalog.TaxService
}

// NewTaxHandler creates a new TaxHandler
func NewTaxHandler(service *appcatalog.TaxService) *TaxHandler {
	return &TaxHandler{service: service}
}

// Create handles POST /api/v1/taxes
func (h *TaxHandler) Create(c *gin.Context) {
	var req appcatalog.CreateTaxRequest
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

// Get handles GET /api/v1/taxes/:id
func (h *TaxHandler) Get(c *gin.Context) {
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

// List handles GET /api/v1/taxes
func (h *TaxHandler) List(c *gin.Context) {
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

	taxes, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, taxes, total, filter.Page, filter.PageSize)
}

// Update handles PUT /api/v1/taxes/:id
func (h *TaxHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req appcatalog.UpdateTaxRequest
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

// Delete handles DELETE /api/v1/taxes/:id
func (h *TaxHandler) Delete(c *gin.Context) {
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
