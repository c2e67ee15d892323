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

const AlertMonitorJob = "alert_monitor"

type AlertMonitorConfig struct {
	CronSchedule string
	Enabled      bool
}

type AlertMonitorService struct {
	scheduler            *gocron.Scheduler
	analyzer             analyzing.Analyzer
	metrics              *metrics.Metrics
	config               AlertMonitorConfig
	checkRunning         bool
	checkMutex           sync.Mutex
	lastCheckStartedAt   time.Time
	lastCheckCompletedAt time.Time
	lastAlerts           []domain.Alert
}

func NewAlertMonitorService(
	analyzer analyzing.Analyzer,
	m *metrics.Metrics,
	cfg *config.Config,
) *AlertMonitorService {
	monitorConfig := AlertMonitorConfig{
		CronSchedule: cfg.AlertMonitor.CronSchedule, // Default: 7h30 todos os dias
		Enabled:      cfg.AlertMonitor.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": monitorConfig.CronSchedule,
	}).Info("Configuração do monitor de alertas carregada")

	return &AlertMonitorService{
		scheduler: gocron.NewScheduler(time.Local),
		analyzer:  analyzer,
		metrics:   m,
		config:    monitorConfig,
	}
}

func (s *AlertMonitorService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron do monitor de alertas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do monitor de alertas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.CheckAlerts(); err != nil {
			logrus.WithError(err).Error("Erro na verificação de alertas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar monitor de alertas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do monitor de alertas")
		s.scheduler.Stop()
	}()

	return nil
}

// CheckAlerts avalia os alertas do dataset atual e registra cada um no log.
// Sem dataset carregado não há o que avaliar e a execução termina sem erro.
func (s *AlertMonitorService) CheckAlerts() ([]domain.Alert, error) {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Warn("Verificação de alertas já está em execução")
		return nil, nil
	}
	s.checkRunning = true
	s.lastCheckStartedAt = time.Now()
	s.checkMutex.Unlock()

	alerts, err := s.analyzer.Alerts()
	if errors.Is(err, analyzing.ErrNoDataset) {
		logrus.Info("Nenhum dataset carregado, verificação de alertas ignorada")
		alerts, err = []domain.Alert{}, nil
	}

	s.checkMutex.Lock()
	s.checkRunning = false
	s.lastCheckCompletedAt = time.Now()
	if err == nil {
		s.lastAlerts = alerts
	}
	s.checkMutex.Unlock()

	s.metrics.RecordSchedulerRun(AlertMonitorJob, err)
	if err != nil {
		return nil, err
	}

	for _, alert := range alerts {
		entry := logrus.WithFields(logrus.Fields{
			"channel":  alert.Channel,
			"type":     alert.Type,
			"severity": alert.Severity,
			"detail":   alert.Detail,
		})
		if alert.Severity == domain.SeverityCritical {
			entry.Error(alert.Message)
		} else {
			entry.Warn(alert.Message)
		}
	}

	logrus.WithField("alerts", len(alerts)).Info("Verificação de alertas concluída")
	return alerts, nil
}

// TriggerManualSync dispara uma verificação em segundo plano
func (s *AlertMonitorService) TriggerManualSync() {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Info("Verificação de alertas já em andamento, ignorando solicitação manual")
		return
	}
	s.checkMutex.Unlock()

	logrus.Info("Iniciando verificação manual de alertas")
	go func() {
		if _, err := s.CheckAlerts(); err != nil {
			logrus.WithError(err).Error("Erro na verificação manual de alertas")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *AlertMonitorService) GetStatus() map[string]any {
	s.checkMutex.Lock()
	defer s.checkMutex.Unlock()

	return map[string]any{
		"enabled":                 s.config.Enabled,
		"cron":                    s.config.CronSchedule,
		"running":                 s.checkRunning,
		"last_check_started_at":   s.lastCheckStartedAt,
		"last_check_completed_at": s.lastCheckCompletedAt,
		"last_alerts":             len(s.lastAlerts),
	}
}
