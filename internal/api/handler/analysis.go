package handler

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ad-report-analyzer/internal/domain"
	"github.com/vfg2006/ad-report-analyzer/internal/usecases/analyzing"
	"github.com/vfg2006/ad-report-analyzer/pkg/apiErrors"
	"github.com/vfg2006/ad-report-analyzer/pkg/log"
	"github.com/vfg2006/ad-report-analyzer/pkg/utils"
)

func GetSummary(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selection, err := parsePeriod(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		summary, err := service.Summary(selection)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, summary)
	})
}

func GetChannels(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selection, err := parsePeriod(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		channels, err := service.Channels(selection)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, channels)
	})
}

// GetCampaigns lista as campanhas de um canal
func GetCampaigns(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		channel := httprouter.ParamsFromContext(r.Context()).ByName("channel")

		selection, err := parsePeriod(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		campaigns, err := service.Campaigns(selection, channel)
		if err != nil {
			writeServiceError(w, logger.WithField("channel", channel), err)
			return
		}

		writeJSON(w, logger, http.StatusOK, campaigns)
	})
}

// GetAdGroups lista os grupos de anúncio; o parâmetro campaign recebe a chave devolvida em GetCampaigns
func GetAdGroups(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		channel := httprouter.ParamsFromContext(r.Context()).ByName("channel")

		campaign := r.URL.Query().Get("campaign")
		if campaign == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro campaign é obrigatório", nil)
			return
		}

		selection, err := parsePeriod(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		adGroups, err := service.AdGroups(selection, channel, campaign)
		if err != nil {
			writeServiceError(w, logger.WithField("channel", channel), err)
			return
		}

		writeJSON(w, logger, http.StatusOK, adGroups)
	})
}

func GetTrend(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selection, err := parsePeriod(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		query, err := parseTrendQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		report, err := service.Trend(selection, query)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, report)
	})
}

func parseTrendQuery(r *http.Request) (domain.TrendQuery, error) {
	values := r.URL.Query()

	level, err := domain.ParseGroupLevel(values.Get("level"))
	if err != nil {
		return domain.TrendQuery{}, err
	}
	granularity, err := domain.ParseGranularity(values.Get("granularity"))
	if err != nil {
		return domain.TrendQuery{}, err
	}
	topN, err := utils.QueryInt(values, "top_n", 0)
	if err != nil {
		return domain.TrendQuery{}, err
	}
	window, err := utils.QueryInt(values, "ma", 0)
	if err != nil {
		return domain.TrendQuery{}, err
	}
	if window != 0 && !analyzing.MovingAverageWindows[window] {
		return domain.TrendQuery{}, fmt.Errorf("janela de média móvel inválida: %d", window)
	}

	return domain.TrendQuery{
		Level:         level,
		Channel:       values.Get("channel"),
		Campaign:      values.Get("campaign"),
		Selected:      utils.QueryList(values, "groups"),
		TopN:          topN,
		Granularity:   granularity,
		MovingAverage: window,
	}, nil
}

// GetDailyTable devolve uma linha por data do período com o total no rodapé
func GetDailyTable(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selection, err := parsePeriod(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		values := r.URL.Query()
		table, err := service.DailyTable(selection, domain.DailyTableFilter{
			Channel:  values.Get("channel"),
			Campaign: values.Get("campaign"),
			AdGroup:  values.Get("adgroup"),
		})
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, table)
	})
}

func GetForecast(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report, err := service.Forecast()
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, report)
	})
}

func GetAlerts(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		alerts, err := service.Alerts()
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, alerts)
	})
}
