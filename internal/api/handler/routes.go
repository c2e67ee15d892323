package handler

import (
	"net/http"

	"github.com/vfg2006/ad-report-analyzer/internal/api/handler/router"
	"github.com/vfg2006/ad-report-analyzer/internal/metrics"
	"github.com/vfg2006/ad-report-analyzer/internal/usecases/analyzing"
	"github.com/vfg2006/ad-report-analyzer/internal/usecases/authenticating"
	"github.com/vfg2006/ad-report-analyzer/internal/usecases/narrating"
	"github.com/vfg2006/ad-report-analyzer/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(m *metrics.Metrics) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: m.Handler(),
		},
	}
}

func Dataset(service analyzing.Analyzer, services CronJobServices, authenticator authenticating.Authenticator) []router.Route {
	operatorOnly := []func(http.Handler) http.Handler{middleware.OperatorOnly(authenticator)}

	return []router.Route{
		{
			Path:    "/v1/dataset",
			Method:  http.MethodGet,
			Handler: GetDataset(service),
		},
		{
			Path:        "/v1/dataset",
			Method:      http.MethodPost,
			Handler:     UploadDataset(service),
			Middlewares: operatorOnly,
		},
		{
			Path:        "/v1/dataset/reload",
			Method:      http.MethodPost,
			Handler:     ReloadDataset(services.DatasetSyncService),
			Middlewares: operatorOnly,
		},
	}
}

func Analysis(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/summary",
			Method:  http.MethodGet,
			Handler: GetSummary(service),
		},
		{
			Path:    "/v1/channels",
			Method:  http.MethodGet,
			Handler: GetChannels(service),
		},
		{
			Path:    "/v1/channels/:channel/campaigns",
			Method:  http.MethodGet,
			Handler: GetCampaigns(service),
		},
		{
			Path:    "/v1/channels/:channel/adgroups",
			Method:  http.MethodGet,
			Handler: GetAdGroups(service),
		},
		{
			Path:    "/v1/trend",
			Method:  http.MethodGet,
			Handler: GetTrend(service),
		},
		{
			Path:    "/v1/daily",
			Method:  http.MethodGet,
			Handler: GetDailyTable(service),
		},
		{
			Path:    "/v1/forecast",
			Method:  http.MethodGet,
			Handler: GetForecast(service),
		},
		{
			Path:    "/v1/alerts",
			Method:  http.MethodGet,
			Handler: GetAlerts(service),
		},
	}
}

func Narrative(service narrating.Narrator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/narrative",
			Method:  http.MethodPost,
			Handler: GenerateNarrative(service),
		},
	}
}

func CronJobs(services CronJobServices, authenticator authenticating.Authenticator) []router.Route {
	operatorOnly := []func(http.Handler) http.Handler{middleware.OperatorOnly(authenticator)}

	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: operatorOnly,
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
