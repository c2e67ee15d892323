package handler

import (
	"net/http"

	"github.com/vfg2006/ad-report-analyzer/internal/usecases/narrating"
	"github.com/vfg2006/ad-report-analyzer/pkg/apiErrors"
	"github.com/vfg2006/ad-report-analyzer/pkg/log"
	"github.com/vfg2006/ad-report-analyzer/pkg/utils"
)

const maxNarrativeBody = 1 << 16

type narrativeRequest struct {
	Channel string `json:"channel"`
	Period  string `json:"period"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// GenerateNarrative pede ao modelo o diagnóstico do canal no período informado
func GenerateNarrative(service narrating.Narrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request narrativeRequest
		if err := utils.DecodeJSON(r.Body, maxNarrativeBody, &request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}
		if request.Channel == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo channel é obrigatório", nil)
			return
		}

		selection, err := buildSelection(request.Period, request.From, request.To)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		logger = logger.WithField("channel", request.Channel)
		narrative, err := service.Narrate(r.Context(), selection, request.Channel)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		logger.Info("narrativa gerada")
		writeJSON(w, logger, http.StatusOK, narrative)
	})
}
