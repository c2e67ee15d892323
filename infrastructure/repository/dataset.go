package repository

import (
	"sync"

	"github.com/vfg2006/ad-report-analyzer/internal/domain"
)

// DatasetRepository guarda o dataset canônico em memória. A carga substitui o
// dataset por inteiro e as leituras recebem sempre um snapshot imutável.
type DatasetRepository interface {
	Replace(dataset *domain.Dataset)
	Current() *domain.Dataset
}

type datasetRepository struct {
	mu      sync.RWMutex
	current *domain.Dataset
}

func NewDatasetRepository() DatasetRepository {
	return &datasetRepository{}
}

func (r *datasetRepository) Replace(dataset *domain.Dataset) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = dataset
}

func (r *datasetRepository) Current() *domain.Dataset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}
