package scheduler

import (
	"context"
	"fmt"
	"os"

	"github.com/vfg2006/ad-report-analyzer/infrastructure/parser"
	"github.com/vfg2006/ad-report-analyzer/infrastructure/repository"
)

// RecordSource entrega os registros brutos de uma recarga do dataset
type RecordSource interface {
	Origin() string
	Records(ctx context.Context) ([]map[string]string, error)
}

type fileRecordSource struct {
	path string
}

// NewFileRecordSource lê um arquivo delimitado a cada recarga
func NewFileRecordSource(path string) RecordSource {
	return &fileRecordSource{path: path}
}

func (s *fileRecordSource) Origin() string {
	return "file:" + s.path
}

func (s *fileRecordSource) Records(_ context.Context) ([]map[string]string, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir arquivo do dataset: %w", err)
	}
	defer file.Close()

	return parser.ParseDelimited(file)
}

type postgresRecordSource struct {
	repo  repository.RawRecordRepository
	table string
}

// NewPostgresRecordSource lê os registros gravados na tabela de registros brutos
func NewPostgresRecordSource(repo repository.RawRecordRepository, table string) RecordSource {
	return &postgresRecordSource{repo: repo, table: table}
}

func (s *postgresRecordSource) Origin() string {
	return "postgres:" + s.table
}

func (s *postgresRecordSource) Records(ctx context.Context) ([]map[string]string, error) {
	return s.repo.List(ctx)
}
