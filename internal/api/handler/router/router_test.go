package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-report-analyzer/internal/metrics"
)

func TestRouter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New("test", reg)

	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(
		WithMetrics(m),
		WithRoutes(Route{
			Path:   "/v1/channels/:channel/campaigns",
			Method: http.MethodGet,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, "handler")
			}),
			Middlewares: []func(http.Handler) http.Handler{tag("primeiro"), tag("segundo")},
		}),
	)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/channels/Facebook/campaigns", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"primeiro", "segundo", "handler"}, order)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "/v1/channels/:channel/campaigns", "200")))

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/channels/Facebook/campaigns", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
