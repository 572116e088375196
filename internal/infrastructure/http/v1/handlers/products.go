package handlers

import (
	"github.com/gin-gonic/gin"

	"mystore/internal/domain/products"
	"mystore/internal/infrastructure/http/v1/dto"
)

// ProductHandler handles HTTP requests for product lots (Entrada).
type ProductHandler struct {
	*BaseHandler
	service *products.Service
}

// NewProductHandler creates a new product handler.
func NewProductHandler(base *BaseHandler, service *products.Service) *ProductHandler {
	return &ProductHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
	h.OK(c, dto.NewListResponse(dto.FromProducts(h.service.List(c.Request.Context()))))
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromProduct(*p))
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p, err := h.service.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromProduct(*p))
}

// Update handles PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	var req dto.ProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p, err := h.service.Update(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromProduct(*p))
}

// Restock handles POST /products/:id/restock
func (h *ProductHandler) Restock(c *gin.Context) {
	var req dto.RestockRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p, err := h.service.Restock(c.Request.Context(), c.Param("id"), req.Quantity)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromProduct(*p))
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers product routes.
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.POST("/:id/restock", h.Restock)
	rg.DELETE("/:id", h.Delete)
}
