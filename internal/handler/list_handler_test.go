package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/institute-dashboard-api/internal/service"
	appErrors "github.com/noah-isme/institute-dashboard-api/pkg/errors"
)

type fakeListSrv struct {
	entity string
	query  service.ListQuery
	err    error
}

func (f *fakeListSrv) List(_ context.Context, entity string, q service.ListQuery) (interface{}, error) {
	f.entity = entity
	f.query = q
	if f.err != nil {
		return nil, f.err
	}
	return map[string]interface{}{"summary": "Showing 1 of 2"}, nil
}

type fakeListExporter struct {
	entity string
	format string
}

func (f *fakeListExporter) ExportList(_ context.Context, entity string, _ service.ListQuery, format string) (*service.ExportFile, error) {
	f.entity = entity
	f.format = format
	if format == "xlsx" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
	return &service.ExportFile{Filename: entity + ".pdf", ContentType: "application/pdf", Body: []byte("%PDF-1.3")}, nil
}

func TestListHandlerPassesTableParameters(t *testing.T) {
	srv := &fakeListSrv{}
	rec := serve(NewListHandler(srv, nil).List("leads"), "/leads?search=web&sort=enquiry_date&order=desc")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "leads", srv.entity)
	assert.Equal(t, service.ListQuery{Search: "web", Sort: "enquiry_date", Order: "desc"}, srv.query)

	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Showing 1 of 2", envelope.Data["summary"])
}

func TestListHandlerError(t *testing.T) {
	srv := &fakeListSrv{err: appErrors.Clone(appErrors.ErrValidation, "order must be asc or desc")}
	rec := serve(NewListHandler(srv, nil).List("staff"), "/staff?order=up")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListHandlerExport(t *testing.T) {
	exporter := &fakeListExporter{}
	handler := NewListHandler(&fakeListSrv{}, exporter)

	rec := serve(handler.Export("expenses"), "/expenses/export?format=pdf")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "expenses", exporter.entity)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))

	rec = serve(handler.Export("expenses"), "/expenses/export?format=xlsx")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
