package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-report-analyzer/infrastructure/database/postgres"
	"github.com/vfg2006/ad-report-analyzer/infrastructure/parser"
	"github.com/vfg2006/ad-report-analyzer/infrastructure/repository"
	"github.com/vfg2006/ad-report-analyzer/internal/config"
)

// Cria a tabela de registros brutos e importa o arquivo DATASET_FILE nela,
// substituindo o conteúdo anterior.
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de importação...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}
	if cfg.Dataset.File == "" {
		logrus.Fatal("ERRO: DATASET_FILE não informado")
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	if err := createRecordTable(ctx, conn, cfg.Dataset.Table); err != nil {
		logrus.Fatalf("ERRO ao criar tabela %s: %v", cfg.Dataset.Table, err)
	}

	file, err := os.Open(cfg.Dataset.File)
	if err != nil {
		logrus.Fatalf("ERRO ao abrir arquivo: %v", err)
	}
	defer file.Close()

	records, err := parser.ParseDelimited(file)
	if err != nil {
		logrus.Fatalf("ERRO ao interpretar arquivo: %v", err)
	}
	logrus.Infof("Total de %d registros lidos de %s", len(records), cfg.Dataset.File)

	startTime := time.Now()
	inserted, err := repository.NewRawRecordRepository(conn, cfg.Dataset.Table).Replace(ctx, records)
	if err != nil {
		logrus.Fatalf("ERRO ao gravar registros: %v", err)
	}

	logrus.Infof("Importação concluída em %v. Registros gravados: %d", time.Since(startTime), inserted)
}

func createRecordTable(ctx context.Context, conn *postgres.Connection, table string) error {
	_, err := conn.ExecContext(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id BIGSERIAL PRIMARY KEY,
		record JSONB NOT NULL,
		imported_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`, pq.QuoteIdentifier(table)))
	return err
}
