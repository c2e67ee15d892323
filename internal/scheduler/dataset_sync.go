// Package scheduler contém os serviços agendados de recarga do dataset e monitoramento de alertas
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-report-analyzer/internal/config"
	"github.com/vfg2006/ad-report-analyzer/internal/domain"
	"github.com/vfg2006/ad-report-analyzer/internal/metrics"
	"github.com/vfg2006/ad-report-analyzer/internal/usecases/analyzing"
)

const DatasetSyncJob = "dataset_sync"

var (
	ErrSyncInProgress      = errors.New("recarga do dataset já em andamento")
	ErrSourceNotConfigured = errors.New("nenhuma origem de dataset configurada")
)

type DatasetSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type DatasetSyncService struct {
	scheduler           *gocron.Scheduler
	analyzer            analyzing.Analyzer
	source              RecordSource
	metrics             *metrics.Metrics
	config              DatasetSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	lastDataset         *domain.DatasetInfo
}

// NewDatasetSyncService cria a recarga periódica. source nulo significa DATASET_SOURCE=none.
func NewDatasetSyncService(
	analyzer analyzing.Analyzer,
	source RecordSource,
	m *metrics.Metrics,
	cfg *config.Config,
) *DatasetSyncService {
	syncConfig := DatasetSyncConfig{
		CronSchedule: cfg.DatasetSync.CronSchedule, // Default: 7h da manhã todos os dias
		SyncEnabled:  cfg.DatasetSync.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"source":        cfg.Dataset.Source,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		analyzer:  analyzer,
		source:    source,
		metrics:   m,
		config:    syncConfig,
	}
}

func (s *DatasetSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de recarga do dataset desabilitada por configuração")
		return nil
	}
	if s.source == nil {
		logrus.Warn("Cron de recarga do dataset habilitada sem origem configurada, ignorando")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.SyncDataset(ctx); err != nil && !errors.Is(err, ErrSyncInProgress) {
			logrus.WithError(err).Error("Erro na recarga do dataset")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncDataset lê a origem e substitui o dataset. Uma carga rejeitada mantém o dataset anterior.
func (s *DatasetSyncService) SyncDataset(ctx context.Context) (*domain.DatasetInfo, error) {
	if s.source == nil {
		return nil, ErrSourceNotConfigured
	}

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Recarga do dataset já está em execução")
		return nil, ErrSyncInProgress
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	info, err := s.load(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	if err != nil {
		s.lastSyncError = err.Error()
	} else {
		s.lastSyncError = ""
		s.lastDataset = info
	}
	s.syncMutex.Unlock()

	s.metrics.RecordSchedulerRun(DatasetSyncJob, err)
	return info, err
}

func (s *DatasetSyncService) load(ctx context.Context) (*domain.DatasetInfo, error) {
	logrus.WithField("origin", s.source.Origin()).Info("Iniciando recarga do dataset")

	records, err := s.source.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler registros de %s: %w", s.source.Origin(), err)
	}

	info, err := s.analyzer.Load(records, s.source.Origin())
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"dataset_id": info.ID,
		"rows":       info.Rows,
		"dropped":    info.Dropped,
	}).Info("Recarga do dataset concluída")

	return info, nil
}

// TriggerManualSync dispara uma recarga em segundo plano
func (s *DatasetSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do dataset já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recarga manual do dataset")
	go func() {
		if _, err := s.SyncDataset(context.Background()); err != nil && !errors.Is(err, ErrSyncInProgress) {
			logrus.WithError(err).Error("Erro na recarga manual do dataset")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *DatasetSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	origin := ""
	if s.source != nil {
		origin = s.source.Origin()
	}

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"source":                 origin,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
		"last_dataset":           s.lastDataset,
	}
}
