package handler

import (
	"errors"
	"mime"
	"net/http"
	"strings"

	"github.com/vfg2006/ad-report-analyzer/infrastructure/parser"
	"github.com/vfg2006/ad-report-analyzer/internal/scheduler"
	"github.com/vfg2006/ad-report-analyzer/internal/usecases/analyzing"
	"github.com/vfg2006/ad-report-analyzer/pkg/apiErrors"
	"github.com/vfg2006/ad-report-analyzer/pkg/log"
	"github.com/vfg2006/ad-report-analyzer/pkg/utils"
)

const (
	maxUploadBytes = 64 << 20
	uploadOrigin   = "upload"
)

type loadRecordsRequest struct {
	Origin  string              `json:"origin"`
	Records []map[string]string `json:"records"`
}

// UploadDataset aceita JSON com registros, multipart com o campo file ou o texto delimitado no corpo
func UploadDataset(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		records, origin, err := readRecords(w, r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("dataset: corpo da carga inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		info, err := service.Load(records, origin)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"dataset_id": info.ID,
			"origin":     origin,
		}).Info("dataset: carga concluída")

		writeJSON(w, logger, http.StatusCreated, info)
	})
}

func readRecords(w http.ResponseWriter, r *http.Request) ([]map[string]string, string, error) {
	body := http.MaxBytesReader(w, r.Body, maxUploadBytes)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch {
	case mediaType == "application/json":
		var request loadRecordsRequest
		if err := utils.DecodeJSON(body, maxUploadBytes, &request); err != nil {
			return nil, "", err
		}
		origin := uploadOrigin
		if request.Origin != "" {
			origin = request.Origin
		}
		return request.Records, origin, nil

	case strings.HasPrefix(mediaType, "multipart/"):
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, "", err
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, "", err
		}
		defer file.Close()

		records, err := parser.ParseDelimited(file)
		return records, uploadOrigin + ":" + header.Filename, err

	default:
		records, err := parser.ParseDelimited(body)
		return records, uploadOrigin, err
	}
}

// ReloadDataset executa a recarga da origem configurada e espera o resultado
func ReloadDataset(syncService *scheduler.DatasetSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotConfigured, scheduler.ErrSourceNotConfigured.Error(), nil)
			return
		}

		info, err := syncService.SyncDataset(r.Context())
		switch {
		case errors.Is(err, scheduler.ErrSourceNotConfigured):
			apiErrors.WriteError(w, apiErrors.ErrNotConfigured, err.Error(), nil)
			return
		case errors.Is(err, scheduler.ErrSyncInProgress):
			apiErrors.WriteError(w, apiErrors.ErrJobRunning, err.Error(), nil)
			return
		case err != nil:
			var analysisErr *analyzing.AnalysisError
			if errors.As(err, &analysisErr) {
				writeServiceError(w, logger, err)
				return
			}
			logger.WithField("error", err.Error()).Error("dataset: falha na recarga")
			apiErrors.WriteError(w, apiErrors.ErrCommunication, err.Error(), nil)
			return
		}

		writeJSON(w, logger, http.StatusOK, info)
	})
}

func GetDataset(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		info, err := service.Dataset()
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, info)
	})
}
