package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/vfg2006/ad-report-analyzer/internal/domain"
	"github.com/vfg2006/ad-report-analyzer/internal/usecases/analyzing"
	"github.com/vfg2006/ad-report-analyzer/internal/usecases/narrating"
	"github.com/vfg2006/ad-report-analyzer/pkg/apiErrors"
	"github.com/vfg2006/ad-report-analyzer/pkg/log"
	"github.com/vfg2006/ad-report-analyzer/pkg/utils"
)

// parsePeriod lê period, from e to da query string
func parsePeriod(r *http.Request) (domain.PeriodSelection, error) {
	query := r.URL.Query()
	return buildSelection(query.Get("period"), query.Get("from"), query.Get("to"))
}

// buildSelection valida o modo e, no modo custom, os dois limites
func buildSelection(period, from, to string) (domain.PeriodSelection, error) {
	mode, err := domain.ParsePeriodMode(period)
	if err != nil {
		return domain.PeriodSelection{}, err
	}

	selection := domain.PeriodSelection{Mode: mode}
	if mode != domain.PeriodCustom {
		return selection, nil
	}

	if from == "" || to == "" {
		return domain.PeriodSelection{}, fmt.Errorf("período custom exige from e to")
	}
	for _, value := range []string{from, to} {
		if _, err := utils.ParseDate(value); err != nil {
			return domain.PeriodSelection{}, fmt.Errorf("data inválida: %s", value)
		}
	}
	selection.From, selection.To = from, to
	return selection, nil
}

// writeServiceError traduz os erros tipados dos casos de uso para a resposta padronizada
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error) {
	var analysisErr *analyzing.AnalysisError
	if errors.As(err, &analysisErr) {
		logger.WithField("error", err.Error()).Warn("análise: requisição não atendida")
		apiErrors.WriteError(w, analysisErr.Code, analysisErr.Err.Error(), detailsOrNil(analysisErr.Details))
		return
	}

	var narrativeErr *narrating.NarrativeError
	if errors.As(err, &narrativeErr) {
		logger.WithField("error", err.Error()).Error("narrativa: falha no gerador")
		apiErrors.WriteError(w, narrativeErr.Code, narrativeErr.Details, nil)
		return
	}

	logger.WithField("error", err.Error()).Error("erro inesperado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
}

func detailsOrNil(details string) any {
	if details == "" {
		return nil
	}
	return details
}

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, body any) {
	if err := utils.WriteJSON(w, status, body); err != nil {
		logger.WithField("error", err.Error()).Error("falha ao serializar resposta")
	}
}
