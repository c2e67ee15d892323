package scheduler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-report-analyzer/internal/config"
	"github.com/vfg2006/ad-report-analyzer/internal/domain"
	"github.com/vfg2006/ad-report-analyzer/internal/metrics"
	"github.com/vfg2006/ad-report-analyzer/internal/scheduler/mocks"
	"github.com/vfg2006/ad-report-analyzer/internal/usecases/analyzing"
	analyzermocks "github.com/vfg2006/ad-report-analyzer/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/ad-report-analyzer/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestDatasetSyncService_SyncDataset(t *testing.T) {
	records := []map[string]string{
		{"date": "2024-01-01", "cost": "100"},
		{"date": "2024-01-02", "cost": "200"},
	}
	info := &domain.DatasetInfo{ID: "abc123", Origin: "file:/tmp/report.csv", Rows: 2}

	tests := []struct {
		name     string
		setup    func(analyzer *analyzermocks.MockAnalyzer, source *mocks.MockRecordSource)
		validate func(t *testing.T, service *DatasetSyncService, got *domain.DatasetInfo, err error)
	}{
		{
			name: "Sucesso - carrega os registros da origem",
			setup: func(analyzer *analyzermocks.MockAnalyzer, source *mocks.MockRecordSource) {
				source.EXPECT().Records(gomock.Any()).Return(records, nil)
				analyzer.EXPECT().Load(records, "file:/tmp/report.csv").Return(info, nil)
			},
			validate: func(t *testing.T, service *DatasetSyncService, got *domain.DatasetInfo, err error) {
				require.NoError(t, err)
				assert.Equal(t, info, got)
				status := service.GetStatus()
				assert.Equal(t, info, status["last_dataset"])
				assert.Equal(t, "", status["last_sync_error"])
				assert.Equal(t, false, status["running"])
			},
		},
		{
			name: "Falha na origem - não chama a carga",
			setup: func(analyzer *analyzermocks.MockAnalyzer, source *mocks.MockRecordSource) {
				source.EXPECT().Records(gomock.Any()).Return(nil, errors.New("arquivo inexistente"))
			},
			validate: func(t *testing.T, service *DatasetSyncService, got *domain.DatasetInfo, err error) {
				assert.Nil(t, got)
				assert.ErrorContains(t, err, "arquivo inexistente")
				assert.Contains(t, service.GetStatus()["last_sync_error"], "arquivo inexistente")
			},
		},
		{
			name: "Carga rejeitada - erro de dataset vazio propagado",
			setup: func(analyzer *analyzermocks.MockAnalyzer, source *mocks.MockRecordSource) {
				source.EXPECT().Records(gomock.Any()).Return(records, nil)
				analyzer.EXPECT().
					Load(records, gomock.Any()).
					Return(nil, analyzing.NewAnalysisError(analyzing.ErrEmptyDataset, apiErrors.ErrEmptyDataset, ""))
			},
			validate: func(t *testing.T, service *DatasetSyncService, got *domain.DatasetInfo, err error) {
				assert.Nil(t, got)
				assert.ErrorIs(t, err, analyzing.ErrEmptyDataset)
				assert.Nil(t, service.GetStatus()["last_dataset"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			analyzer := analyzermocks.NewMockAnalyzer(ctrl)
			source := mocks.NewMockRecordSource(ctrl)
			source.EXPECT().Origin().Return("file:/tmp/report.csv").AnyTimes()
			tt.setup(analyzer, source)

			service := NewDatasetSyncService(analyzer, source, nil, &config.Config{})
			got, err := service.SyncDataset(context.Background())
			tt.validate(t, service, got, err)
		})
	}
}

func TestDatasetSyncService_SyncDataset_InProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewDatasetSyncService(analyzermocks.NewMockAnalyzer(ctrl), mocks.NewMockRecordSource(ctrl), nil, &config.Config{})
	service.syncRunning = true

	_, err := service.SyncDataset(context.Background())
	assert.ErrorIs(t, err, ErrSyncInProgress)
}

func TestDatasetSyncService_SyncDataset_NoSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewDatasetSyncService(analyzermocks.NewMockAnalyzer(ctrl), nil, nil, &config.Config{})

	_, err := service.SyncDataset(context.Background())
	assert.ErrorIs(t, err, ErrSourceNotConfigured)
	assert.Equal(t, "", service.GetStatus()["source"])
}

func TestDatasetSyncService_RecordsMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reg := prometheus.NewRegistry()
	m := metrics.New("test", reg)

	source := mocks.NewMockRecordSource(ctrl)
	source.EXPECT().Origin().Return("postgres:ad_report_records").AnyTimes()
	source.EXPECT().Records(gomock.Any()).Return(nil, errors.New("connection refused"))

	service := NewDatasetSyncService(analyzermocks.NewMockAnalyzer(ctrl), source, m, &config.Config{})
	_, err := service.SyncDataset(context.Background())
	require.Error(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.SchedulerRuns.WithLabelValues(DatasetSyncJob, "error")))
}

func TestDatasetSyncService_Start_Disabled(t *testing.T) {
	service := NewDatasetSyncService(nil, nil, nil, &config.Config{})
	assert.NoError(t, service.Start(context.Background()))
}

func TestFileRecordSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.tsv")
	require.NoError(t, os.WriteFile(path, []byte("date\tcost\n2024-01-01\t100\n"), 0o600))

	source := NewFileRecordSource(path)
	records, err := source.Records(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "file:"+path, source.Origin())
	assert.Equal(t, []map[string]string{{"date": "2024-01-01", "cost": "100"}}, records)

	_, err = NewFileRecordSource(filepath.Join(t.TempDir(), "missing.csv")).Records(context.Background())
	assert.Error(t, err)
}
