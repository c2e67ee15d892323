package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-report-analyzer/internal/domain"
)

func TestDetectAlertsStop(t *testing.T) {
	ds := newTestDataset(
		dayRow("2024-01-01", "Facebook", 10, 1, 0),
		dayRow("2024-01-02", "Facebook", 10, 1, 0),
		dayRow("2024-01-03", "Facebook", 10, 1, 0),
		dayRow("2024-01-03", "Google Search", 10, 1, 0),
		dayRow("2024-01-04", "Facebook", 0, 0, 0),
		dayRow("2024-01-04", "Google Search", 0, 0, 0),
	)

	alerts := DetectAlerts(ds, domain.DefaultAlertThresholds())

	require.Len(t, alerts, 1)
	assert.Equal(t, domain.AlertStop, alerts[0].Type)
	assert.Equal(t, domain.SeverityCritical, alerts[0].Severity)
	assert.Equal(t, "Facebook", alerts[0].Channel)
	assert.Contains(t, alerts[0].Message, "2024-01-04")
}

func TestDetectAlertsStopRequiresZeroCostOnLastDate(t *testing.T) {
	tests := []struct {
		name      string
		rows      []domain.Row
		threshold domain.AlertThresholds
		want      int
	}{
		{
			name: "canal sem linha na última data dispara",
			rows: []domain.Row{
				dayRow("2024-01-01", "Facebook", 10, 0, 0),
				dayRow("2024-01-02", "Facebook", 10, 0, 0),
				dayRow("2024-01-03", "Facebook", 10, 0, 0),
				dayRow("2024-01-04", "Facebook", 10, 0, 0),
				dayRow("2024-01-05", "Google Search", 10, 0, 0),
			},
			threshold: domain.DefaultAlertThresholds(),
			want:      1,
		},
		{
			name: "verificação desligada",
			rows: []domain.Row{
				dayRow("2024-01-01", "Facebook", 10, 0, 0),
				dayRow("2024-01-02", "Facebook", 10, 0, 0),
				dayRow("2024-01-03", "Facebook", 10, 0, 0),
				dayRow("2024-01-04", "Facebook", 0, 0, 0),
			},
			threshold: domain.AlertThresholds{TrendWindow: 7, TrendLookback: 14},
			want:      0,
		},
		{
			name: "custo positivo na última data",
			rows: []domain.Row{
				dayRow("2024-01-01", "Facebook", 10, 0, 0),
				dayRow("2024-01-02", "Facebook", 10, 0, 0),
				dayRow("2024-01-03", "Facebook", 10, 0, 0),
				dayRow("2024-01-04", "Facebook", 1, 0, 0),
			},
			threshold: domain.DefaultAlertThresholds(),
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := DetectAlerts(newTestDataset(tt.rows...), tt.threshold)
			stops := 0
			for _, alert := range alerts {
				if alert.Type == domain.AlertStop {
					stops++
				}
			}
			assert.Equal(t, tt.want, stops)
		})
	}
}

func TestDetectAlertsTrend(t *testing.T) {
	dates := dateRange(t, "2024-03-01", 21)

	build := func(recentCost, recentConversions float64) *domain.Dataset {
		rows := make([]domain.Row, 0, len(dates))
		for i, date := range dates {
			switch {
			case i < 7:
				rows = append(rows, dayRow(date, "Facebook", 100, 10, 0))
			case i < 14:
				rows = append(rows, dayRow(date, "Facebook", 100, 8, 0))
			default:
				rows = append(rows, dayRow(date, "Facebook", recentCost, recentConversions/2, recentConversions/2))
			}
		}
		return newTestDataset(rows...)
	}

	t.Run("queda de CV e alta de CPA", func(t *testing.T) {
		alerts := DetectAlerts(build(100, 5), domain.DefaultAlertThresholds())

		require.Len(t, alerts, 2)
		assert.Equal(t, domain.AlertCVDecline, alerts[0].Type)
		assert.Equal(t, domain.SeverityWarning, alerts[0].Severity)
		require.NotNil(t, alerts[0].Change)
		assert.InDelta(t, -0.5, *alerts[0].Change, 1e-9)
		assert.Equal(t, "10.0/dia → 5.0/dia", alerts[0].Detail)

		assert.Equal(t, domain.AlertCPAIncrease, alerts[1].Type)
		require.NotNil(t, alerts[1].Change)
		assert.InDelta(t, 1.0, *alerts[1].Change, 1e-9)
		assert.Equal(t, "10 → 20", alerts[1].Detail)
	})

	t.Run("estável não dispara", func(t *testing.T) {
		assert.Empty(t, DetectAlerts(build(100, 10), domain.DefaultAlertThresholds()))
	})

	t.Run("histórico insuficiente", func(t *testing.T) {
		ds := build(100, 5)
		ds = newTestDataset(ds.Rows[1:]...)
		assert.Empty(t, DetectAlerts(ds, domain.DefaultAlertThresholds()))
	})

	t.Run("passado sem conversões não avalia CV", func(t *testing.T) {
		rows := make([]domain.Row, 0, len(dates))
		for i, date := range dates {
			if i < 7 {
				rows = append(rows, dayRow(date, "Facebook", 100, 0, 0))
				continue
			}
			rows = append(rows, dayRow(date, "Facebook", 100, 1, 0))
		}
		assert.Empty(t, DetectAlerts(newTestDataset(rows...), domain.DefaultAlertThresholds()))
	})
}

func TestDetectAlertsEmptyDataset(t *testing.T) {
	assert.Empty(t, DetectAlerts(newTestDataset(), domain.DefaultAlertThresholds()))
}
