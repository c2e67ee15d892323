package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics reúne os coletores Prometheus do analisador.
// Um *Metrics nulo é válido e ignora todas as medições.
type Metrics struct {
	// Dataset
	DatasetLoads   *prometheus.CounterVec
	DatasetRows    prometheus.Gauge
	DatasetDropped prometheus.Gauge

	// Análises
	AnalysisDuration *prometheus.HistogramVec
	CacheLookups     *prometheus.CounterVec
	ActiveAlerts     *prometheus.GaugeVec

	// Narrativa
	NarrativeRequests *prometheus.CounterVec
	NarrativeLatency  prometheus.Histogram

	// Agendador
	SchedulerRuns *prometheus.CounterVec

	// HTTP
	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New cria e registra os coletores no registry informado
func New(namespace string, reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		DatasetLoads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dataset_loads_total",
				Help:      "Total de cargas de dataset por origem e resultado",
			},
			[]string{"origin", "status"},
		),
		DatasetRows: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "dataset_rows",
				Help:      "Linhas válidas no dataset atual",
			},
		),
		DatasetDropped: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "dataset_dropped_records",
				Help:      "Registros descartados na última carga",
			},
		),
		AnalysisDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "analysis_duration_seconds",
				Help:      "Duração do cálculo das visões derivadas",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"operation"},
		),
		CacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "analysis_cache_lookups_total",
				Help:      "Consultas ao cache de visões",
			},
			[]string{"result"},
		),
		ActiveAlerts: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "active_alerts",
				Help:      "Alertas na última avaliação por tipo e canal",
			},
			[]string{"type", "channel"},
		),
		NarrativeRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "narrative_requests_total",
				Help:      "Chamadas ao gerador de narrativa",
			},
			[]string{"status"},
		),
		NarrativeLatency: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "narrative_latency_seconds",
				Help:      "Latência do gerador de narrativa",
				Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 60},
			},
		),
		SchedulerRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "scheduler_runs_total",
				Help:      "Execuções dos jobs agendados",
			},
			[]string{"job", "status"},
		),
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Requisições HTTP por rota e status",
			},
			[]string{"method", "route", "status"},
		),
		HTTPLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Latência das requisições HTTP",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		gatherer: reg,
	}
}

// Handler expõe os coletores no formato Prometheus
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// RecordDatasetLoad registra uma carga de dataset
func (m *Metrics) RecordDatasetLoad(origin string, rows, dropped int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.DatasetLoads.WithLabelValues(origin, "error").Inc()
		return
	}
	m.DatasetLoads.WithLabelValues(origin, "success").Inc()
	m.DatasetRows.Set(float64(rows))
	m.DatasetDropped.Set(float64(dropped))
}

// ObserveAnalysis registra a duração de uma visão calculada
func (m *Metrics) ObserveAnalysis(operation string, started time.Time) {
	if m == nil {
		return
	}
	m.AnalysisDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// RecordCacheLookup registra um acerto ou falha no cache de visões
func (m *Metrics) RecordCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}

// SetActiveAlerts substitui a contagem de alertas pela da última avaliação
func (m *Metrics) SetActiveAlerts(counts map[[2]string]int) {
	if m == nil {
		return
	}
	m.ActiveAlerts.Reset()
	for key, count := range counts {
		m.ActiveAlerts.WithLabelValues(key[0], key[1]).Set(float64(count))
	}
}

// RecordNarrative registra uma chamada ao gerador de narrativa
func (m *Metrics) RecordNarrative(started time.Time, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.NarrativeRequests.WithLabelValues(status).Inc()
	m.NarrativeLatency.Observe(time.Since(started).Seconds())
}

// RecordSchedulerRun registra a execução de um job agendado
func (m *Metrics) RecordSchedulerRun(job string, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.SchedulerRuns.WithLabelValues(job, status).Inc()
}

// RecordHTTPRequest registra uma requisição atendida
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}
