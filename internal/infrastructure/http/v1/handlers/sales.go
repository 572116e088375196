package handlers

import (
	"github.com/gin-gonic/gin"

	"mystore/internal/domain/sales"
	"mystore/internal/infrastructure/http/v1/dto"
)

// SaleHandler handles HTTP requests for sales (Saída).
type SaleHandler struct {
	*BaseHandler
	service *sales.Service
}

// NewSaleHandler creates a new sale handler.
func NewSaleHandler(base *BaseHandler, service *sales.Service) *SaleHandler {
	return &SaleHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /sales
func (h *SaleHandler) List(c *gin.Context) {
	h.OK(c, dto.NewListResponse(dto.FromSales(h.service.List(c.Request.Context()))))
}

// Lots handles GET /sales/lots?name=
func (h *SaleHandler) Lots(c *gin.Context) {
	h.OK(c, dto.FromSellable(h.service.SellableLots(c.Request.Context(), c.Query("name"))))
}

// Get handles GET /sales/:id
func (h *SaleHandler) Get(c *gin.Context) {
	s, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromSale(*s))
}

// Ceiling handles GET /sales/:id/ceiling
func (h *SaleHandler) Ceiling(c *gin.Context) {
	ceiling, err := h.service.EditCeiling(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, ceiling)
}

// Register handles POST /sales
func (h *SaleHandler) Register(c *gin.Context) {
	var req dto.RegisterSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	s, err := h.service.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromSale(*s))
}

// Update handles PUT /sales/:id
func (h *SaleHandler) Update(c *gin.Context) {
	var req dto.UpdateSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	s, err := h.service.Update(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromSale(*s))
}

// Delete handles DELETE /sales/:id
func (h *SaleHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers sale routes.
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Register)
	rg.GET("/lots", h.Lots)
	rg.GET("/:id", h.Get)
	rg.GET("/:id/ceiling", h.Ceiling)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}
