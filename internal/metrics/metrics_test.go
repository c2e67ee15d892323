package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordDatasetLoad(t *testing.T) {
	m := New("test", prometheus.NewRegistry())

	m.RecordDatasetLoad("upload", 120, 3, nil)
	m.RecordDatasetLoad("upload", 0, 0, errors.New("falha"))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.DatasetLoads.WithLabelValues("upload", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DatasetLoads.WithLabelValues("upload", "error")))
	assert.Equal(t, float64(120), testutil.ToFloat64(m.DatasetRows))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.DatasetDropped))
}

func TestSetActiveAlertsResetsPreviousValues(t *testing.T) {
	m := New("test", prometheus.NewRegistry())

	m.SetActiveAlerts(map[[2]string]int{{"stop", "Facebook"}: 1})
	m.SetActiveAlerts(map[[2]string]int{{"cv_decline", "Google P-MAX"}: 2})

	assert.Equal(t, 1, testutil.CollectAndCount(m.ActiveAlerts))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.ActiveAlerts.WithLabelValues("cv_decline", "Google P-MAX")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordDatasetLoad("upload", 1, 0, nil)
		m.ObserveAnalysis("summary", time.Now())
		m.RecordCacheLookup(true)
		m.RecordNarrative(time.Now(), nil)
		m.RecordSchedulerRun("alert_monitor", nil)
		m.RecordHTTPRequest(http.MethodGet, "/v1/summary", http.StatusOK, time.Millisecond)
	})
}

func TestHandlerExposesRegisteredCollectors(t *testing.T) {
	m := New("analyzer", prometheus.NewRegistry())
	m.RecordCacheLookup(false)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `analyzer_analysis_cache_lookups_total{result="miss"} 1`)
}
