package repository

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/institute-dashboard-api/internal/models"
)

type recordingLoadObserver struct {
	mu          sync.Mutex
	collections []string
}

func (r *recordingLoadObserver) ObserveDatasetLoad(collection string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.collections = append(r.collections, collection)
}

func newDatasetMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func expectVersion(mock sqlmock.Sqlmock, count int64, updated time.Time) {
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) AS row_count")).
		WillReturnRows(sqlmock.NewRows([]string{"row_count", "updated_at"}).AddRow(count, updated))
}

func TestDatasetRepositoryLoad(t *testing.T) {
	db, mock, cleanup := newDatasetMock(t)
	defer cleanup()
	kolkata := time.FixedZone("IST", 5*3600+1800)
	observer := &recordingLoadObserver{}
	repo := NewDatasetRepository(db, kolkata, observer)
	mock.MatchExpectationsInOrder(false)

	admitted := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(selectStudents)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "phone", "admission_date", "course_ids"}).
			AddRow("stu-1", "Asha Rao", "asha@example.com", "98450", admitted, "{web,data}").
			AddRow("stu-2", "Vikram Shah", "vikram@example.com", "98451", nil, "{}"))
	mock.ExpectQuery(regexp.QuoteMeta(selectStaff)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "role", "email", "joining_date"}).
			AddRow("staff-1", "Lata Menon", "Counsellor", "lata@example.com", admitted))
	mock.ExpectQuery(regexp.QuoteMeta(selectBatches)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "course_id", "start_date"}))
	mock.ExpectQuery(regexp.QuoteMeta(selectLeads)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "phone", "source", "enquiry_date"}))
	mock.ExpectQuery(regexp.QuoteMeta(selectFeePayments)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "date", "amount", "status"}).
			AddRow("pay-1", "stu-1", admitted, 5000.0, "Paid"))
	mock.ExpectQuery(regexp.QuoteMeta(selectExpenses)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category", "description", "amount", "date"}).
			AddRow("exp-1", "Rent", "March rent", 2000.0, admitted))
	expectVersion(mock, 5, updated)

	data, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, data.Students, 2)
	assert.Equal(t, []string{"web", "data"}, []string(data.Students[0].CourseIDs))
	require.NotNil(t, data.Students[0].AdmissionDate)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, kolkata), *data.Students[0].AdmissionDate)
	assert.Nil(t, data.Students[1].AdmissionDate)
	require.Len(t, data.FeePayments, 1)
	assert.Equal(t, models.PaymentStatusPaid, data.FeePayments[0].Status)
	assert.Equal(t, kolkata, data.FeePayments[0].Date.Location())
	assert.Equal(t, 2000.0, data.Expenses[0].Amount)
	assert.Empty(t, data.Batches)
	assert.NotEmpty(t, data.Version)
	assert.ElementsMatch(t, []string{"students", "staff_members", "batches", "leads", "fee_payments", "expenses"}, observer.collections)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatasetRepositoryLoadError(t *testing.T) {
	db, mock, cleanup := newDatasetMock(t)
	defer cleanup()
	repo := NewDatasetRepository(db, time.UTC, nil)
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(regexp.QuoteMeta(selectStudents)).WillReturnError(errors.New("connection reset"))
	for _, query := range []string{selectStaff, selectBatches, selectLeads, selectFeePayments, selectExpenses} {
		mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	}

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load students")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestDatasetRepositoryVersionChangesWithData(t *testing.T) {
	db, mock, cleanup := newDatasetMock(t)
	defer cleanup()
	repo := NewDatasetRepository(db, time.UTC, nil)
	updated := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	expectVersion(mock, 5, updated)
	expectVersion(mock, 4, updated)

	first, err := repo.Version(context.Background())
	require.NoError(t, err)
	second, err := repo.Version(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.NoError(t, mock.ExpectationsWereMet())
}
