package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/ad-report-analyzer/internal/metrics"
)

// Metrics registra contagem e latência por rota. route é o padrão registrado,
// não o caminho concreto, para não explodir a cardinalidade.
func Metrics(m *metrics.Metrics, route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lrw := newLoggingResponseWriter(w)
			started := time.Now()

			next.ServeHTTP(lrw, r)

			m.RecordHTTPRequest(r.Method, route, lrw.statusCode, time.Since(started))
		})
	}
}
