package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-report-analyzer/internal/domain"
)

func TestResolvePeriod(t *testing.T) {
	dates := []string{
		"2023-12-30", "2023-12-31",
		"2024-01-01", "2024-01-05", "2024-01-10",
		"2024-02-01", "2024-02-02",
	}

	tests := []struct {
		name         string
		selection    domain.PeriodSelection
		wantDates    []string
		wantPrevious []string
	}{
		{
			name:         "ontem é a última data do dataset",
			selection:    domain.PeriodSelection{Mode: domain.PeriodYesterday},
			wantDates:    []string{"2024-02-02"},
			wantPrevious: []string{"2024-02-01"},
		},
		{
			name:         "mês atual da última data",
			selection:    domain.PeriodSelection{Mode: domain.PeriodThisMonth},
			wantDates:    []string{"2024-02-01", "2024-02-02"},
			wantPrevious: []string{"2024-01-05", "2024-01-10"},
		},
		{
			name:         "mês anterior",
			selection:    domain.PeriodSelection{Mode: domain.PeriodLastMonth},
			wantDates:    []string{"2024-01-01", "2024-01-05", "2024-01-10"},
			wantPrevious: []string{"2023-12-30", "2023-12-31"},
		},
		{
			name:         "últimas 30 datas com menos datas disponíveis",
			selection:    domain.PeriodSelection{Mode: domain.PeriodLast30},
			wantDates:    dates,
			wantPrevious: []string{},
		},
		{
			name:         "custom inclusivo",
			selection:    domain.PeriodSelection{Mode: domain.PeriodCustom, From: "2024-01-01", To: "2024-01-10"},
			wantDates:    []string{"2024-01-01", "2024-01-05", "2024-01-10"},
			wantPrevious: []string{"2023-12-30", "2023-12-31"},
		},
		{
			name:         "custom com início depois do fim é vazio",
			selection:    domain.PeriodSelection{Mode: domain.PeriodCustom, From: "2024-01-10", To: "2024-01-05"},
			wantDates:    []string{},
			wantPrevious: []string{},
		},
		{
			name:         "custom sem fim",
			selection:    domain.PeriodSelection{Mode: domain.PeriodCustom, From: "2024-02-01"},
			wantDates:    []string{"2024-02-01", "2024-02-02"},
			wantPrevious: []string{"2024-01-05", "2024-01-10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := ResolvePeriod(dates, tt.selection)
			assert.Equal(t, tt.wantDates, set.Dates)
			assert.Equal(t, tt.wantPrevious, set.Previous)
		})
	}
}

func TestResolvePeriodLastMonthAcrossYear(t *testing.T) {
	dates := []string{"2023-12-30", "2023-12-31", "2024-01-01"}

	set := ResolvePeriod(dates, domain.PeriodSelection{Mode: domain.PeriodLastMonth})

	assert.Equal(t, []string{"2023-12-30", "2023-12-31"}, set.Dates)
	assert.Empty(t, set.Previous)
}

func TestResolvePeriodEmptyDataset(t *testing.T) {
	set := ResolvePeriod(nil, domain.PeriodSelection{Mode: domain.PeriodAll})

	assert.Empty(t, set.Dates)
	assert.Empty(t, set.Previous)
	assert.Equal(t, "", set.First())
}

func TestResolvePeriodLast60(t *testing.T) {
	dates := dateRange(t, "2024-01-01", 100)

	set := ResolvePeriod(dates, domain.PeriodSelection{Mode: domain.PeriodLast60})

	assert.Len(t, set.Dates, 60)
	assert.Equal(t, dates[40], set.First())
	assert.Len(t, set.Previous, 40)
	assert.Equal(t, dates[39], set.Previous[len(set.Previous)-1])
}
