package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"mystore/internal/core/apperror"
	"mystore/internal/domain/reports"
	"mystore/internal/infrastructure/export"
	"mystore/internal/infrastructure/http/v1/dto"
)

// ReportsHandler handles HTTP requests for reports.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// GetSummary handles GET /reports/summary?year=&month=&search=
func (h *ReportsHandler) GetSummary(c *gin.Context) {
	var req dto.ReportRequest
	if !h.BindQuery(c, &req) {
		return
	}

	summary, err := h.service.Build(c.Request.Context(), req.ToQuery())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromSummary(summary))
}

// GetPeriods handles GET /reports/periods
func (h *ReportsHandler) GetPeriods(c *gin.Context) {
	years, months := h.service.Periods(c.Request.Context())
	h.OK(c, dto.PeriodsResponse{Years: years, Months: months})
}

// Export handles GET /reports/export?year=&month=&format=html|pdf
// The search term is ignored: exports always cover every product.
func (h *ReportsHandler) Export(c *gin.Context) {
	var req dto.ReportRequest
	if !h.BindQuery(c, &req) {
		return
	}

	format, err := export.ParseFormat(req.Format)
	if err != nil {
		h.Error(c, apperror.NewValidation(err.Error()).WithDetail("field", "format"))
		return
	}

	q := req.ToQuery()
	q.Search = ""
	summary, err := h.service.Build(c.Request.Context(), q)
	if err != nil {
		h.Error(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.Render(&buf, format, summary); err != nil {
		h.Error(c, apperror.NewInternal(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(format, summary.Period)))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// RegisterRoutes registers report routes.
func (h *ReportsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/summary", h.GetSummary)
	rg.GET("/periods", h.GetPeriods)
	rg.GET("/export", h.Export)
}
