package handlers

import (
	"github.com/gin-gonic/gin"

	"mystore/internal/domain/registers/stock"
	"mystore/internal/infrastructure/http/v1/dto"
)

// StockHandler exposes derived lot balances.
type StockHandler struct {
	*BaseHandler
	service *stock.Service
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(base *BaseHandler, service *stock.Service) *StockHandler {
	return &StockHandler{
		BaseHandler: base,
		service:     service,
	}
}

// GetBalances handles GET /stock
func (h *StockHandler) GetBalances(c *gin.Context) {
	h.OK(c, dto.NewListResponse(dto.FromLotStocks(h.service.GetBalances(c.Request.Context()))))
}

// GetIntegrity handles GET /stock/integrity
func (h *StockHandler) GetIntegrity(c *gin.Context) {
	h.OK(c, dto.NewListResponse(dto.FromAnomalies(h.service.CheckIntegrity(c.Request.Context()))))
}

// RegisterRoutes registers stock routes.
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.GetBalances)
	rg.GET("/integrity", h.GetIntegrity)
}
