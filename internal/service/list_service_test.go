package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/institute-dashboard-api/internal/dto"
	"github.com/noah-isme/institute-dashboard-api/internal/models"
	"github.com/noah-isme/institute-dashboard-api/pkg/currency"
	appErrors "github.com/noah-isme/institute-dashboard-api/pkg/errors"
	"github.com/noah-isme/institute-dashboard-api/pkg/table"
)

func listFixture() *fakeDataset {
	return &fakeDataset{data: models.DashboardDataset{
		Students: []models.Student{
			{ID: "s1", FullName: "Meera Iyer", Email: "meera@example.com", AdmissionDate: dayPtr(2024, 2, 1)},
			{ID: "s2", FullName: "arjun Nair", Email: "arjun@example.com"},
			{ID: "s3", FullName: "Zoya Khan", Email: "zoya@example.com", AdmissionDate: dayPtr(2023, 8, 1)},
		},
		FeePayments: []models.FeePayment{
			paid("p1", 5000, day(2024, 3, 1)),
			pending("p2", 1250.5, day(2024, 4, 1)),
		},
	}}
}

func newTestListService(data datasetLoader) *ListService {
	return NewListService(data, currency.New("₹", "en"), nil, zap.NewNop())
}

func TestListServiceSortsAndSearches(t *testing.T) {
	svc := newTestListService(listFixture())

	result, err := svc.List(context.Background(), "students", ListQuery{Sort: "full_name", Order: "desc"})
	require.NoError(t, err)
	resp, ok := result.(dto.TableResponse[models.Student])
	require.True(t, ok)
	require.Len(t, resp.Rows, 3)
	assert.Equal(t, []string{"s3", "s1", "s2"}, []string{resp.Rows[0].ID, resp.Rows[1].ID, resp.Rows[2].ID})
	assert.Equal(t, table.SortState{Key: "full_name", Direction: table.Descending}, resp.Sort)
	assert.Equal(t, "Showing 3 of 3", resp.Summary)

	result, err = svc.List(context.Background(), "Students", ListQuery{Search: "  ARJUN "})
	require.NoError(t, err)
	resp = result.(dto.TableResponse[models.Student])
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "s2", resp.Rows[0].ID)
	assert.Equal(t, "Showing 1 of 3", resp.Summary)
}

func TestListServiceOptionalDatesSortLast(t *testing.T) {
	svc := newTestListService(listFixture())

	result, err := svc.List(context.Background(), "students", ListQuery{Sort: "admission_date"})
	require.NoError(t, err)
	resp := result.(dto.TableResponse[models.Student])
	assert.Equal(t, "s3", resp.Rows[0].ID)
	assert.Equal(t, "s2", resp.Rows[2].ID)
}

func TestListServiceUnsortableKeyLeavesOrder(t *testing.T) {
	svc := newTestListService(listFixture())

	result, err := svc.List(context.Background(), "students", ListQuery{Sort: "unknown"})
	require.NoError(t, err)
	resp := result.(dto.TableResponse[models.Student])
	assert.False(t, resp.Sort.Sorted())
	assert.Equal(t, "s1", resp.Rows[0].ID)
}

func TestListServiceValidation(t *testing.T) {
	svc := newTestListService(listFixture())

	_, err := svc.List(context.Background(), "courses", ListQuery{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)

	_, err = svc.List(context.Background(), "students", ListQuery{Order: "sideways"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = newTestListService(&fakeDataset{loadErr: assert.AnError}).List(context.Background(), "students", ListQuery{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnavailable.Code, appErrors.FromError(err).Code)
}

func TestListServiceDatasetFormatsCells(t *testing.T) {
	svc := newTestListService(listFixture())

	dataset, err := svc.Dataset(context.Background(), "payments", ListQuery{Sort: "amount", Order: "desc"})
	require.NoError(t, err)
	assert.Equal(t, "Fee Payments", dataset.Title)
	assert.Equal(t, []string{"Student", "Amount", "Date", "Status"}, dataset.Headers)
	require.Len(t, dataset.Rows, 2)
	assert.Equal(t, []string{"stu-p1", "₹5,000", "2024-03-01", "Paid"}, dataset.Rows[0])
	assert.Equal(t, "Showing 2 of 2", dataset.Footer)
}

func TestListEntities(t *testing.T) {
	assert.Equal(t, []string{"batches", "expenses", "leads", "payments", "staff", "students"}, ListEntities())
}
