package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/Abdullah-819/786Times/internal/models"
)

func TestMetricsServiceCounters(t *testing.T) {
	m := NewMetricsService()

	m.ObserveHTTPRequest("GET", "/api/v1/schedule/today", 200, 15*time.Millisecond)
	m.ObserveStorageOp("memory", "get", time.Millisecond, "miss")
	m.ObserveStatus(models.TimeStatus{IsActive: true})
	m.ObserveStatus(models.TimeStatus{IsUpcoming: true})
	m.ObserveStatus(models.TimeStatus{IsCompleted: true})
	m.ObserveReminder("scheduled")
	done := m.StreamOpened()
	m.SetRefreshSubscriptions(3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestTotal.WithLabelValues("GET", "/api/v1/schedule/today", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storageOps.WithLabelValues("memory", "get", "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statusComputed.WithLabelValues("active")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statusComputed.WithLabelValues("completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reminders.WithLabelValues("scheduled")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.activeStreams))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.refreshSubscribed))
	done()
	assert.Equal(t, 0.0, testutil.ToFloat64(m.activeStreams))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "kv_operations_total")
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var m *MetricsService
	m.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
	m.ObserveStorageOp("memory", "get", time.Millisecond, "ok")
	m.ObserveStatus(models.TimeStatus{})
	m.ObserveReminder("x")
	m.StreamOpened()()
	m.SetRefreshSubscriptions(1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
