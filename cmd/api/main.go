package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-report-analyzer/infrastructure/cache"
	"github.com/vfg2006/ad-report-analyzer/infrastructure/database/postgres"
	"github.com/vfg2006/ad-report-analyzer/infrastructure/integrator/anthropic"
	"github.com/vfg2006/ad-report-analyzer/infrastructure/repository"
	"github.com/vfg2006/ad-report-analyzer/internal/api"
	"github.com/vfg2006/ad-report-analyzer/internal/config"
	"github.com/vfg2006/ad-report-analyzer/internal/metrics"
	"github.com/vfg2006/ad-report-analyzer/internal/scheduler"
	"github.com/vfg2006/ad-report-analyzer/internal/usecases/analyzing"
	"github.com/vfg2006/ad-report-analyzer/internal/usecases/authenticating"
	"github.com/vfg2006/ad-report-analyzer/internal/usecases/narrating"
	"github.com/vfg2006/ad-report-analyzer/pkg/log"
)

const metricsNamespace = "ad_report"

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(metricsNamespace, registry)

	rules, err := config.LoadRules(cfg.Analysis.RulesFile)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar as regras de classificação")
	}

	analyzerOptions := []analyzing.Option{
		analyzing.WithMetrics(m),
		analyzing.WithTrendTopN(cfg.Analysis.TrendTopN),
	}
	if cfg.Analysis.CacheEnabled {
		analyzerOptions = append(analyzerOptions, analyzing.WithCache())
	}
	analyzer := analyzing.NewService(repository.NewDatasetRepository(), rules, cfg.Alerts.Thresholds(), analyzerOptions...)

	narratorOptions := []narrating.Option{narrating.WithMetrics(m)}
	if cfg.Narrative.IncludePrompt {
		narratorOptions = append(narratorOptions, narrating.WithPrompt())
	}
	if cfg.Cache.RedisURL != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Cache.RedisURL)
		if err != nil {
			logrus.WithError(err).Warn("Redis indisponível, narrativas sem cache")
		} else {
			defer redisClient.Close()
			narratorOptions = append(narratorOptions, narrating.WithCache(cache.NewRedisNarrativeCache(redisClient, cfg.Cache.NarrativeTTL)))
		}
	}
	narrator := narrating.NewService(analyzer, anthropic.NewClient(cfg), narratorOptions...)

	authenticator := authenticating.NewService(cfg)
	if !authenticator.Enabled() {
		logrus.Warn("AUTH_SECRET vazio: autenticação desativada")
	}

	var source scheduler.RecordSource
	switch cfg.Dataset.Source {
	case config.DatasetSourceFile:
		source = scheduler.NewFileRecordSource(cfg.Dataset.File)
	case config.DatasetSourcePostgres:
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()
		source = scheduler.NewPostgresRecordSource(repository.NewRawRecordRepository(pgConn, cfg.Dataset.Table), cfg.Dataset.Table)
	}

	datasetSyncService := scheduler.NewDatasetSyncService(analyzer, source, m, cfg)
	alertMonitorService := scheduler.NewAlertMonitorService(analyzer, m, cfg)

	// Carga inicial antes de aceitar requisições
	if source != nil {
		if _, err := datasetSyncService.SyncDataset(ctx); err != nil {
			logrus.WithError(err).Warn("Carga inicial do dataset falhou")
		}
	}

	if err := datasetSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do dataset")
	} else {
		logrus.Info("Agendador de recarga do dataset iniciado com sucesso")
	}

	if err := alertMonitorService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o monitor de alertas")
	} else {
		logrus.Info("Monitor de alertas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyzer,
		narrator,
		authenticator,
		m,
		datasetSyncService,
		alertMonitorService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource permite encontrar o .env ao executar com go run
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
