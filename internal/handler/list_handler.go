package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/institute-dashboard-api/internal/middleware"
	"github.com/noah-isme/institute-dashboard-api/internal/service"
	appErrors "github.com/noah-isme/institute-dashboard-api/pkg/errors"
	"github.com/noah-isme/institute-dashboard-api/pkg/response"
)

type listService interface {
	List(ctx context.Context, entity string, q service.ListQuery) (interface{}, error)
}

type listExporter interface {
	ExportList(ctx context.Context, entity string, q service.ListQuery, format string) (*service.ExportFile, error)
}

// ListHandler serves the searchable, sortable entity lists and their downloads.
type ListHandler struct {
	lists    listService
	exporter listExporter
}

// NewListHandler constructs a ListHandler.
func NewListHandler(lists listService, exporter listExporter) *ListHandler {
	return &ListHandler{lists: lists, exporter: exporter}
}

// List godoc
// @Summary Searchable, sortable entity list
// @Description entity is one of students, staff, batches, leads, payments, expenses
// @Tags Lists
// @Produce json
// @Param entity path string true "Collection"
// @Param search query string false "Case-insensitive substring search"
// @Param sort query string false "Column key"
// @Param order query string false "asc or desc"
// @Success 200 {object} response.Envelope
// @Router /{entity} [get]
func (h *ListHandler) List(entity string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.lists == nil {
			response.Error(c, appErrors.ErrInternal)
			return
		}
		start := time.Now()
		view, err := h.lists.List(c.Request.Context(), entity, listQueryFromContext(c))
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, view, middleware.ResponseMeta(c, start))
	}
}

// Export godoc
// @Summary Download the current list view
// @Tags Lists
// @Produce text/csv,application/pdf
// @Param entity path string true "Collection"
// @Param format query string false "csv (default) or pdf"
// @Param search query string false "Case-insensitive substring search"
// @Param sort query string false "Column key"
// @Param order query string false "asc or desc"
// @Success 200 {file} file
// @Router /{entity}/export [get]
func (h *ListHandler) Export(entity string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.exporter == nil {
			response.Error(c, appErrors.ErrInternal)
			return
		}
		file, err := h.exporter.ExportList(c.Request.Context(), entity, listQueryFromContext(c), c.Query("format"))
		if err != nil {
			response.Error(c, err)
			return
		}
		response.File(c, file.Filename, file.ContentType, file.Body)
	}
}
