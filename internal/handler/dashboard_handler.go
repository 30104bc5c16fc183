package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/institute-dashboard-api/internal/dto"
	"github.com/noah-isme/institute-dashboard-api/internal/middleware"
	"github.com/noah-isme/institute-dashboard-api/internal/service"
	appErrors "github.com/noah-isme/institute-dashboard-api/pkg/errors"
	"github.com/noah-isme/institute-dashboard-api/pkg/response"
)

type dashboardService interface {
	Summary(ctx context.Context, query service.DashboardQuery) (*dto.DashboardResponse, bool, error)
	PaymentRisk(ctx context.Context) (*dto.PaymentRiskSection, error)
}

type monthlySeriesExporter interface {
	ExportMonthlySeries(ctx context.Context, query service.DashboardQuery, format string) (*service.ExportFile, error)
}

// DashboardHandler wires the dashboard service to HTTP endpoints.
type DashboardHandler struct {
	service  dashboardService
	exporter monthlySeriesExporter
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService, exporter monthlySeriesExporter) *DashboardHandler {
	return &DashboardHandler{service: service, exporter: exporter}
}

// Summary godoc
// @Summary Management dashboard for a period
// @Tags Dashboard
// @Produce json
// @Param range query string false "last30days, thisMonth, thisYear or custom"
// @Param start query string false "Custom range start (YYYY-MM-DD)"
// @Param end query string false "Custom range end (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	query, err := dashboardQueryFromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	start := time.Now()
	summary, cacheHit, err := h.service.Summary(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, summary, middleware.ResponseMeta(c, start))
}

// PaymentRisk godoc
// @Summary Overdue and upcoming pending fee payments as of today
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/payment-risk [get]
func (h *DashboardHandler) PaymentRisk(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	risk, err := h.service.PaymentRisk(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, risk, middleware.ResponseMeta(c, start))
}

// ExportMonthlySeries godoc
// @Summary Download the monthly revenue and expense series
// @Tags Dashboard
// @Produce text/csv,application/pdf
// @Param format query string false "csv (default) or pdf"
// @Param range query string false "last30days, thisMonth, thisYear or custom"
// @Param start query string false "Custom range start (YYYY-MM-DD)"
// @Param end query string false "Custom range end (YYYY-MM-DD)"
// @Success 200 {file} file
// @Router /dashboard/monthly-series/export [get]
func (h *DashboardHandler) ExportMonthlySeries(c *gin.Context) {
	if h.exporter == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	query, err := dashboardQueryFromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.exporter.ExportMonthlySeries(c.Request.Context(), query, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.File(c, file.Filename, file.ContentType, file.Body)
}
