package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/institute-dashboard-api/internal/service"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestMetricsHandlerReady(t *testing.T) {
	ok := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })

	rec := serve(NewMetricsHandler(nil, map[string]Pinger{"dataset": ok}).Ready, "/ready")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(NewMetricsHandler(nil, map[string]Pinger{"dataset": ok, "cache": down}).Ready, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "connection refused", body.Checks["cache"])
	assert.Equal(t, "ok", body.Checks["dataset"])
}

func TestMetricsHandlerPrometheusAndSnapshot(t *testing.T) {
	metrics := service.NewMetricsService()
	metrics.ObserveDashboard("last30days", false, 3*time.Millisecond)
	handler := NewMetricsHandler(metrics, nil)

	rec := serve(handler.Prometheus, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "dashboard_requests_total"))

	rec = serve(handler.Snapshot, "/metrics/snapshot")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(NewMetricsHandler(nil, nil).Prometheus, "/metrics")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
