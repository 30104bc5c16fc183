package service

import (
	"context"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/institute-dashboard-api/internal/dto"
	"github.com/noah-isme/institute-dashboard-api/internal/models"
	"github.com/noah-isme/institute-dashboard-api/pkg/currency"
	appErrors "github.com/noah-isme/institute-dashboard-api/pkg/errors"
	"github.com/noah-isme/institute-dashboard-api/pkg/export"
	"github.com/noah-isme/institute-dashboard-api/pkg/table"
)

// ListQuery carries the table search and sort parameters of a list request.
type ListQuery struct {
	Search string
	Sort   string
	Order  string `validate:"omitempty,oneof=asc desc"`
}

type datasetLoader interface {
	Load(ctx context.Context) (*models.DashboardDataset, error)
}

type lister interface {
	list(data *models.DashboardDataset, q ListQuery) interface{}
	dataset(data *models.DashboardDataset, q ListQuery, money *currency.Formatter) export.Dataset
}

var listers = map[string]lister{
	"students": studentTable,
	"staff":    staffTable,
	"batches":  batchTable,
	"leads":    leadTable,
	"payments": paymentTable,
	"expenses": expenseTable,
}

// ListEntities returns the names accepted by ListService, sorted.
func ListEntities() []string {
	names := make([]string, 0, len(listers))
	for name := range listers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListService renders entity collections through the searchable, sortable table contract.
type ListService struct {
	data      datasetLoader
	money     *currency.Formatter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewListService constructs a ListService.
func NewListService(data datasetLoader, money *currency.Formatter, validate *validator.Validate, logger *zap.Logger) *ListService {
	if money == nil {
		money = currency.New("", "")
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ListService{data: data, money: money, validator: validate, logger: logger}
}

// List returns the table response for the named entity collection.
func (s *ListService) List(ctx context.Context, entity string, q ListQuery) (interface{}, error) {
	l, data, err := s.prepare(ctx, entity, &q)
	if err != nil {
		return nil, err
	}
	return l.list(data, q), nil
}

// Dataset returns the filtered, sorted rows of the named entity as exportable cells.
func (s *ListService) Dataset(ctx context.Context, entity string, q ListQuery) (*export.Dataset, error) {
	l, data, err := s.prepare(ctx, entity, &q)
	if err != nil {
		return nil, err
	}
	dataset := l.dataset(data, q, s.money)
	return &dataset, nil
}

func (s *ListService) prepare(ctx context.Context, entity string, q *ListQuery) (lister, *models.DashboardDataset, error) {
	l, ok := listers[strings.ToLower(strings.TrimSpace(entity))]
	if !ok {
		return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "unknown collection "+entity)
	}
	q.Search = strings.TrimSpace(q.Search)
	q.Sort = strings.TrimSpace(q.Sort)
	q.Order = strings.ToLower(strings.TrimSpace(q.Order))
	if err := s.validator.Struct(q); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "order must be asc or desc")
	}
	if s.data == nil {
		return nil, nil, appErrors.Clone(appErrors.ErrUnavailable, "dataset provider unavailable")
	}
	data, err := s.data.Load(ctx)
	if err != nil {
		s.logger.Warn("dataset load failed", zap.String("entity", entity), zap.Error(err))
		return nil, nil, appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "failed to load institute records")
	}
	if data == nil {
		data = &models.DashboardDataset{}
	}
	return l, data, nil
}

func (t entityTable[T]) view(data *models.DashboardDataset, q ListQuery) table.View[T] {
	tbl := table.New(t.columns, t.match)
	tbl.SetQuery(q.Search)
	tbl.Restore(table.SortState{Key: q.Sort, Direction: table.ParseDirection(q.Order)})
	return tbl.View(t.items(data))
}

func (t entityTable[T]) list(data *models.DashboardDataset, q ListQuery) interface{} {
	return dto.NewTableResponse(t.view(data, q))
}

func (t entityTable[T]) dataset(data *models.DashboardDataset, q ListQuery, money *currency.Formatter) export.Dataset {
	view := t.view(data, q)
	headers := make([]string, 0, len(t.columns))
	for _, column := range t.columns {
		headers = append(headers, column.Label)
	}
	rows := make([][]string, 0, len(view.Rows))
	for _, item := range view.Rows {
		rows = append(rows, t.cells(item, money))
	}
	return export.Dataset{Title: t.title, Headers: headers, Rows: rows, Footer: view.Summary()}
}
