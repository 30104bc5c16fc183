package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/institute-dashboard-api/internal/dto"
	"github.com/noah-isme/institute-dashboard-api/pkg/currency"
	appErrors "github.com/noah-isme/institute-dashboard-api/pkg/errors"
	"github.com/noah-isme/institute-dashboard-api/pkg/export"
)

type listDatasetSource interface {
	Dataset(ctx context.Context, entity string, q ListQuery) (*export.Dataset, error)
}

type dashboardSummarySource interface {
	Summary(ctx context.Context, query DashboardQuery) (*dto.DashboardResponse, bool, error)
}

type renderer interface {
	Render(data export.Dataset) ([]byte, error)
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService renders list views and the monthly series as CSV or PDF downloads.
type ExportService struct {
	lists     listDatasetSource
	dashboard dashboardSummarySource
	money     *currency.Formatter
	csv       renderer
	pdf       renderer
	logger    *zap.Logger
	now       func() time.Time
}

// NewExportService constructs an ExportService. Nil renderers fall back to the default exporters.
func NewExportService(lists listDatasetSource, dashboard dashboardSummarySource, money *currency.Formatter, logger *zap.Logger, csv, pdf renderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if money == nil {
		money = currency.New("", "")
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		lists:     lists,
		dashboard: dashboard,
		money:     money,
		csv:       csv,
		pdf:       pdf,
		logger:    logger,
		now:       time.Now,
	}
}

// ExportList renders the current table view of an entity collection.
func (s *ExportService) ExportList(ctx context.Context, entity string, q ListQuery, format string) (*ExportFile, error) {
	f, err := parseExportFormat(format)
	if err != nil {
		return nil, err
	}
	if s.lists == nil {
		return nil, appErrors.Clone(appErrors.ErrUnavailable, "list export unavailable")
	}
	dataset, err := s.lists.Dataset(ctx, entity, q)
	if err != nil {
		return nil, err
	}
	return s.render(entity, f, *dataset)
}

// ExportMonthlySeries renders the monthly revenue and expense series for the requested period.
func (s *ExportService) ExportMonthlySeries(ctx context.Context, query DashboardQuery, format string) (*ExportFile, error) {
	f, err := parseExportFormat(format)
	if err != nil {
		return nil, err
	}
	if s.dashboard == nil {
		return nil, appErrors.Clone(appErrors.ErrUnavailable, "dashboard export unavailable")
	}
	summary, _, err := s.dashboard.Summary(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.render("monthly-series", f, s.monthlySeriesDataset(summary))
}

func (s *ExportService) monthlySeriesDataset(summary *dto.DashboardResponse) export.Dataset {
	rows := make([][]string, 0, len(summary.MonthlySeries))
	for _, point := range summary.MonthlySeries {
		rows = append(rows, []string{
			point.Month,
			s.money.Format(point.Revenue.Float64()),
			s.money.Format(point.Expenses.Float64()),
			s.money.Format(point.Net.Float64()),
		})
	}
	return export.Dataset{
		Title:   fmt.Sprintf("Revenue vs Expenses (%s to %s)", summary.Period.Start, summary.Period.End),
		Headers: []string{"Month", "Revenue", "Expenses", "Net"},
		Rows:    rows,
		Footer: fmt.Sprintf("Total revenue %s, total expenses %s, net income %s",
			s.money.Format(summary.Metrics.Revenue.Float64()),
			s.money.Format(summary.Metrics.Expenses.Float64()),
			s.money.Format(summary.Metrics.NetIncome.Float64())),
	}
}

func (s *ExportService) render(name string, format export.Format, dataset export.Dataset) (*ExportFile, error) {
	r := s.csv
	if format == export.FormatPDF {
		r = s.pdf
	}
	body, err := r.Render(dataset)
	if err != nil {
		s.logger.Error("export render failed", zap.String("name", name), zap.String("format", string(format)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	s.logger.Info("export rendered",
		zap.String("name", name),
		zap.String("format", string(format)),
		zap.Int("rows", len(dataset.Rows)),
		zap.Int("bytes", len(body)),
	)
	return &ExportFile{
		Filename:    fmt.Sprintf("%s-%s.%s", name, s.now().Format("20060102"), format),
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}

func parseExportFormat(raw string) (export.Format, error) {
	f, err := export.ParseFormat(raw)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "format must be csv or pdf")
	}
	return f, nil
}
