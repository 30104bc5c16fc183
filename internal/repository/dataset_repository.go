package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/institute-dashboard-api/internal/models"
)

const (
	selectStudents    = `SELECT id, full_name, email, phone, admission_date, course_ids FROM students ORDER BY id`
	selectStaff       = `SELECT id, full_name, role, email, joining_date FROM staff_members ORDER BY id`
	selectBatches     = `SELECT id, name, course_id, start_date FROM batches ORDER BY id`
	selectLeads       = `SELECT id, full_name, phone, source, enquiry_date FROM leads ORDER BY id`
	selectFeePayments = `SELECT id, student_id, amount, payment_date AS date, status FROM fee_payments ORDER BY id`
	selectExpenses    = `SELECT id, category, description, amount, expense_date AS date FROM expenses ORDER BY id`

	selectVersion = `SELECT COUNT(*) AS row_count, COALESCE(MAX(updated_at), 'epoch'::timestamptz) AS updated_at FROM (
        SELECT updated_at FROM students
        UNION ALL SELECT updated_at FROM staff_members
        UNION ALL SELECT updated_at FROM batches
        UNION ALL SELECT updated_at FROM leads
        UNION ALL SELECT updated_at FROM fee_payments
        UNION ALL SELECT updated_at FROM expenses
    ) AS changes`
)

type loadObserver interface {
	ObserveDatasetLoad(collection string, duration time.Duration)
}

// DatasetRepository reads the institute's collections from PostgreSQL. Calendar dates are
// re-anchored to midnight in the configured location.
type DatasetRepository struct {
	db       *sqlx.DB
	location *time.Location
	metrics  loadObserver
}

// NewDatasetRepository constructs a DatasetRepository. A nil location means time.Local.
func NewDatasetRepository(db *sqlx.DB, location *time.Location, metrics loadObserver) *DatasetRepository {
	if location == nil {
		location = time.Local
	}
	return &DatasetRepository{db: db, location: location, metrics: metrics}
}

// Load reads every collection concurrently into a single dataset snapshot.
func (r *DatasetRepository) Load(ctx context.Context) (*models.DashboardDataset, error) {
	data := &models.DashboardDataset{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return r.selectInto(gctx, "students", &data.Students, selectStudents) })
	g.Go(func() error { return r.selectInto(gctx, "staff_members", &data.Staff, selectStaff) })
	g.Go(func() error { return r.selectInto(gctx, "batches", &data.Batches, selectBatches) })
	g.Go(func() error { return r.selectInto(gctx, "leads", &data.Leads, selectLeads) })
	g.Go(func() error { return r.selectInto(gctx, "fee_payments", &data.FeePayments, selectFeePayments) })
	g.Go(func() error { return r.selectInto(gctx, "expenses", &data.Expenses, selectExpenses) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range data.Students {
		data.Students[i].AdmissionDate = r.anchorPtr(data.Students[i].AdmissionDate)
	}
	for i := range data.Staff {
		data.Staff[i].JoiningDate = r.anchorPtr(data.Staff[i].JoiningDate)
	}
	for i := range data.Batches {
		data.Batches[i].StartDate = r.anchorPtr(data.Batches[i].StartDate)
	}
	for i := range data.Leads {
		data.Leads[i].EnquiryDate = r.anchorPtr(data.Leads[i].EnquiryDate)
	}
	for i := range data.FeePayments {
		data.FeePayments[i].Date = r.anchor(data.FeePayments[i].Date)
	}
	for i := range data.Expenses {
		data.Expenses[i].Date = r.anchor(data.Expenses[i].Date)
	}

	version, err := r.Version(ctx)
	if err != nil {
		return nil, err
	}
	data.Version = version
	return data, nil
}

// Version summarises the row count and latest modification across all collections.
func (r *DatasetRepository) Version(ctx context.Context) (string, error) {
	var row struct {
		RowCount  int64     `db:"row_count"`
		UpdatedAt time.Time `db:"updated_at"`
	}
	if err := r.db.GetContext(ctx, &row, selectVersion); err != nil {
		return "", fmt.Errorf("dataset version: %w", err)
	}
	return fmt.Sprintf("%d-%d", row.RowCount, row.UpdatedAt.UnixNano()), nil
}

// Ping verifies database connectivity.
func (r *DatasetRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *DatasetRepository) selectInto(ctx context.Context, collection string, dest interface{}, query string) error {
	start := time.Now()
	if err := r.db.SelectContext(ctx, dest, query); err != nil {
		return fmt.Errorf("load %s: %w", collection, err)
	}
	if r.metrics != nil {
		r.metrics.ObserveDatasetLoad(collection, time.Since(start))
	}
	return nil
}

func (r *DatasetRepository) anchor(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, r.location)
}

func (r *DatasetRepository) anchorPtr(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	anchored := r.anchor(*t)
	return &anchored
}
