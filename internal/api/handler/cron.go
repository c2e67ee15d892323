package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ad-report-analyzer/internal/scheduler"
	"github.com/vfg2006/ad-report-analyzer/pkg/apiErrors"
	"github.com/vfg2006/ad-report-analyzer/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDatasetSync  = "dataset-sync"
	CronJobTypeAlertMonitor = "alert-monitor"
	CronJobTypeAll          = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DatasetSyncService  *scheduler.DatasetSyncService
	AlertMonitorService *scheduler.AlertMonitorService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDatasetSync:
			if services.DatasetSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrNotConfigured, "Serviço de sincronização do dataset não disponível", nil)
				return
			}
			services.DatasetSyncService.TriggerManualSync()

		case CronJobTypeAlertMonitor:
			if services.AlertMonitorService == nil {
				apiErrors.WriteError(w, apiErrors.ErrNotConfigured, "Monitor de alertas não disponível", nil)
				return
			}
			services.AlertMonitorService.TriggerManualSync()

		case CronJobTypeAll:
			if services.DatasetSyncService != nil {
				services.DatasetSyncService.TriggerManualSync()
			}
			if services.AlertMonitorService != nil {
				services.AlertMonitorService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: dataset-sync, alert-monitor, all", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron job disparada manualmente")
		writeJSON(w, logger, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := map[string]any{}
		if services.DatasetSyncService != nil {
			status[CronJobTypeDatasetSync] = services.DatasetSyncService.GetStatus()
		}
		if services.AlertMonitorService != nil {
			status[CronJobTypeAlertMonitor] = services.AlertMonitorService.GetStatus()
		}

		writeJSON(w, logger, http.StatusOK, status)
	})
}
