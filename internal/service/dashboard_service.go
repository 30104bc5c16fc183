package service

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/institute-dashboard-api/internal/dto"
	"github.com/noah-isme/institute-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/institute-dashboard-api/pkg/errors"
)

const dateLayout = "2006-01-02"

type datasetProvider interface {
	Load(ctx context.Context) (*models.DashboardDataset, error)
	Version(ctx context.Context) (string, error)
}

type dashboardMetrics interface {
	ObserveDashboard(rangeName string, cacheHit bool, compute time.Duration)
}

// DashboardServiceConfig tunes dashboard behaviour.
type DashboardServiceConfig struct {
	CacheTTL        time.Duration
	RiskHorizonDays int
	DefaultRange    QuickRange
	Location        *time.Location
}

// DashboardQuery selects the dashboard period. Range defaults to the configured quick range;
// custom ranges need both Start and End.
type DashboardQuery struct {
	Range string
	Start *time.Time `validate:"required_if=Range custom"`
	End   *time.Time `validate:"required_if=Range custom"`
}

// DashboardService composes the management dashboard from the institute's entity collections.
type DashboardService struct {
	data      datasetProvider
	cache     *CacheService
	metrics   dashboardMetrics
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
	cfg       DashboardServiceConfig

	versionMu   sync.Mutex
	lastVersion string
}

// DashboardServiceParams groups constructor dependencies.
type DashboardServiceParams struct {
	Data      datasetProvider
	Cache     *CacheService
	Metrics   dashboardMetrics
	Validator *validator.Validate
	Logger    *zap.Logger
	Config    DashboardServiceConfig
}

// NewDashboardService constructs a DashboardService with sane defaults.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	cfg := params.Config
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.RiskHorizonDays <= 0 {
		cfg.RiskHorizonDays = DefaultRiskHorizonDays
	}
	if quick, ok := ParseQuickRange(string(cfg.DefaultRange)); ok && quick != RangeCustom {
		cfg.DefaultRange = quick
	} else {
		cfg.DefaultRange = RangeLast30Days
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	validate := params.Validator
	if validate == nil {
		validate = validator.New()
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		data:      params.Data,
		cache:     params.Cache,
		metrics:   params.Metrics,
		validator: validate,
		logger:    logger,
		now:       time.Now,
		cfg:       cfg,
	}
}

// Summary returns the dashboard for the requested period and indicates cache utilisation.
func (s *DashboardService) Summary(ctx context.Context, query DashboardQuery) (*dto.DashboardResponse, bool, error) {
	now := s.today()
	rangeName, period, err := s.resolvePeriod(query, now)
	if err != nil {
		return nil, false, err
	}
	if s.data == nil {
		return nil, false, appErrors.Clone(appErrors.ErrUnavailable, "dataset provider unavailable")
	}

	cacheKey := s.cacheKey(ctx, rangeName, period, now)
	if cacheKey != "" {
		var cached dto.DashboardResponse
		hit, err := s.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			s.logger.Warn("dashboard cache read failed, recomputing", zap.String("key", cacheKey), zap.Error(err))
		} else if hit {
			s.observe(rangeName, true, 0)
			return &cached, true, nil
		}
	}

	data, err := s.load(ctx)
	if err != nil {
		return nil, false, err
	}
	start := time.Now()
	summary := s.compose(rangeName, period, now, data)
	s.observe(rangeName, false, time.Since(start))

	if cacheKey != "" {
		_ = s.cache.Set(ctx, cacheKey, summary, s.cfg.CacheTTL)
	}
	return summary, false, nil
}

// PaymentRisk classifies the full pending payment set against today, ignoring any period.
func (s *DashboardService) PaymentRisk(ctx context.Context) (*dto.PaymentRiskSection, error) {
	if s.data == nil {
		return nil, appErrors.Clone(appErrors.ErrUnavailable, "dataset provider unavailable")
	}
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	section := s.buildPaymentRisk(data, s.today())
	return &section, nil
}

func (s *DashboardService) today() time.Time {
	return s.now().In(s.cfg.Location)
}

func (s *DashboardService) resolvePeriod(query DashboardQuery, now time.Time) (string, models.Period, error) {
	raw := query.Range
	if raw == "" {
		raw = string(s.cfg.DefaultRange)
	}
	quick, ok := ParseQuickRange(raw)
	if !ok {
		return "", models.Period{}, appErrors.Clone(appErrors.ErrValidation, "range must be one of last30days, thisMonth, thisYear, custom")
	}
	query.Range = string(quick)
	if err := s.validator.Struct(query); err != nil {
		return "", models.Period{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "custom range requires start and end")
	}
	if period, ok := QuickPeriod(quick, now); ok {
		return string(quick), period, nil
	}
	return string(quick), MakePeriod(s.anchor(*query.Start), s.anchor(*query.End)), nil
}

// anchor re-reads a calendar date in the dashboard's location.
func (s *DashboardService) anchor(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.cfg.Location)
}

func (s *DashboardService) cacheKey(ctx context.Context, rangeName string, period models.Period, now time.Time) string {
	if !s.cache.Enabled() {
		return ""
	}
	version, err := s.data.Version(ctx)
	if err != nil {
		s.logger.Warn("dataset version unavailable, skipping dashboard cache", zap.Error(err))
		return ""
	}
	s.dropStaleSummaries(ctx, version)
	return Key("dash", "summary", rangeName, period.Start.Format(dateLayout), period.End.Format(dateLayout), now.Format(dateLayout), version)
}

// dropStaleSummaries evicts summaries memoized under an older dataset version once a new one
// is observed.
func (s *DashboardService) dropStaleSummaries(ctx context.Context, version string) {
	s.versionMu.Lock()
	previous := s.lastVersion
	s.lastVersion = version
	s.versionMu.Unlock()
	if previous == "" || previous == version {
		return
	}
	s.logger.Debug("dataset version changed, dropping memoized summaries",
		zap.String("previous", previous), zap.String("current", version))
	_ = s.cache.Invalidate(ctx, Key("dash", "summary", "*"))
}

func (s *DashboardService) load(ctx context.Context) (*models.DashboardDataset, error) {
	data, err := s.data.Load(ctx)
	if err != nil {
		s.logger.Warn("dataset load failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "failed to load institute records")
	}
	if data == nil {
		data = &models.DashboardDataset{}
	}
	return data, nil
}

func (s *DashboardService) observe(rangeName string, hit bool, compute time.Duration) {
	if s.metrics != nil {
		s.metrics.ObserveDashboard(rangeName, hit, compute)
	}
}

func (s *DashboardService) compose(rangeName string, period models.Period, now time.Time, data *models.DashboardDataset) *dto.DashboardResponse {
	snapshot := Aggregate(period, now, *data)
	series := BuildMonthlySeries(FilterPaidPayments(data.FeePayments, period), FilterExpenses(data.Expenses, period))

	s.logger.Debug("dashboard composed",
		zap.String("range", rangeName),
		zap.Time("period_start", period.Start),
		zap.Time("period_end", period.End),
		zap.Int("students", len(data.Students)),
		zap.Int("fee_payments", len(data.FeePayments)),
		zap.Int("expenses", len(data.Expenses)),
		zap.Int("months", len(series)),
	)

	return &dto.DashboardResponse{
		Range: rangeName,
		Period: dto.PeriodRange{
			Start: period.Start.Format(dateLayout),
			End:   period.End.Format(dateLayout),
			Empty: period.Empty(),
		},
		Metrics: dto.DashboardMetrics{
			NewAdmissions: snapshot.NewAdmissions,
			NewHires:      snapshot.NewHires,
			ActiveCourses: snapshot.ActiveCourses,
			NewBatches:    snapshot.NewBatches,
			NewLeads:      snapshot.NewLeads,
			Revenue:       dto.Amount(snapshot.Revenue),
			Expenses:      dto.Amount(snapshot.Expenses),
			NetIncome:     dto.Amount(snapshot.NetIncome()),
		},
		MonthlySeries: monthlyPoints(series),
		PaymentRisk:   s.buildPaymentRisk(data, now),
		GeneratedAt:   now.Format(time.RFC3339),
	}
}

func (s *DashboardService) buildPaymentRisk(data *models.DashboardDataset, now time.Time) dto.PaymentRiskSection {
	lists := ClassifyPendingWithin(data.FeePayments, now, s.cfg.RiskHorizonDays)
	names := make(map[string]string, len(data.Students))
	for _, student := range data.Students {
		names[student.ID] = student.FullName
	}

	section := dto.PaymentRiskSection{
		AsOf:        now.Format(dateLayout),
		HorizonDays: s.cfg.RiskHorizonDays,
		Overdue:     make([]dto.RiskPayment, 0, len(lists.Overdue)),
		Upcoming:    make([]dto.RiskPayment, 0, len(lists.Upcoming)),
	}
	var overdueTotal, upcomingTotal moneyTotal
	for _, payment := range lists.Overdue {
		section.Overdue = append(section.Overdue, riskPayment(payment, names, DaysBetween(payment.Date, now)))
		overdueTotal.add(payment.Amount)
	}
	for _, payment := range lists.Upcoming {
		section.Upcoming = append(section.Upcoming, riskPayment(payment, names, DaysBetween(now, payment.Date)))
		upcomingTotal.add(payment.Amount)
	}
	section.OverdueTotal = dto.Amount(overdueTotal.value())
	section.UpcomingTotal = dto.Amount(upcomingTotal.value())
	return section
}

func riskPayment(payment models.FeePayment, names map[string]string, days int) dto.RiskPayment {
	return dto.RiskPayment{
		ID:          payment.ID,
		StudentID:   payment.StudentID,
		StudentName: names[payment.StudentID],
		Amount:      dto.Amount(payment.Amount),
		DueDate:     payment.Date.Format(dateLayout),
		Days:        days,
	}
}

func monthlyPoints(series []models.MonthlyBucket) []dto.MonthlyPoint {
	points := make([]dto.MonthlyPoint, 0, len(series))
	for _, bucket := range series {
		points = append(points, dto.MonthlyPoint{
			Month:      bucket.Label,
			Year:       bucket.Year,
			MonthIndex: int(bucket.Month),
			Revenue:    dto.Amount(bucket.Revenue),
			Expenses:   dto.Amount(bucket.Expenses),
			Net:        dto.Amount(bucket.Revenue - bucket.Expenses),
		})
	}
	return points
}
