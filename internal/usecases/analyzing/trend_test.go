package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-report-analyzer/internal/domain"
)

func TestResampleSumsBeforeDeriving(t *testing.T) {
	daily := []domain.TrendRow{
		{Date: "2024-01-01", Metrics: Summarize([]domain.Row{dayRow("2024-01-01", "Facebook", 100, 0, 0)})},
		{Date: "2024-01-02", Metrics: Summarize([]domain.Row{dayRow("2024-01-02", "Facebook", 100, 10, 0)})},
	}
	require.Nil(t, daily[0].Metrics.CPA)

	weekly := Resample(daily, domain.GranularityWeekly)

	require.Len(t, weekly, 1)
	assert.Equal(t, "2024-01-01", weekly[0].Date)
	assert.Equal(t, "01-01", weekly[0].Label)
	assert.Equal(t, 200.0, weekly[0].Metrics.Cost)
	require.NotNil(t, weekly[0].Metrics.CPA)
	assert.Equal(t, 20.0, *weekly[0].Metrics.CPA)
}

func TestResampleDailyPassThrough(t *testing.T) {
	daily := []domain.TrendRow{{Date: "2024-01-01"}, {Date: "2024-01-02"}}

	assert.Equal(t, daily, Resample(daily, domain.GranularityDaily))
}

func TestResampleMonthly(t *testing.T) {
	daily := []domain.TrendRow{
		{
			Date:    "2024-02-01",
			Metrics: Summarize([]domain.Row{dayRow("2024-02-01", "Facebook", 300, 3, 0)}),
			Groups:  map[string]domain.RateResult{"Facebook": Summarize([]domain.Row{dayRow("2024-02-01", "Facebook", 300, 3, 0)})},
		},
		{
			Date:    "2024-01-31",
			Metrics: Summarize([]domain.Row{dayRow("2024-01-31", "Facebook", 100, 1, 0)}),
			Groups:  map[string]domain.RateResult{"Facebook": Summarize([]domain.Row{dayRow("2024-01-31", "Facebook", 100, 1, 0)})},
		},
		{
			Date:    "2024-02-15",
			Metrics: Summarize([]domain.Row{dayRow("2024-02-15", "Facebook", 100, 0, 1)}),
			Groups:  map[string]domain.RateResult{"Facebook": Summarize([]domain.Row{dayRow("2024-02-15", "Facebook", 100, 0, 1)})},
		},
	}

	monthly := Resample(daily, domain.GranularityMonthly)

	require.Len(t, monthly, 2)
	assert.Equal(t, "2024-01", monthly[0].Date)
	assert.Equal(t, "2024/01", monthly[0].Label)
	assert.Equal(t, "2024-02", monthly[1].Date)
	assert.Equal(t, 400.0, monthly[1].Metrics.Cost)
	assert.Equal(t, 4.0, monthly[1].Metrics.Total)
	assert.InDelta(t, 75.0, monthly[1].Metrics.TierARatio, 1e-9)
	require.NotNil(t, monthly[1].Groups["Facebook"].CPA)
	assert.Equal(t, 100.0, *monthly[1].Groups["Facebook"].CPA)
}

func TestBucketKey(t *testing.T) {
	tests := []struct {
		date        string
		granularity domain.Granularity
		want        string
	}{
		{date: "2024-01-01", granularity: domain.GranularityWeekly, want: "2024-01-01"},
		{date: "2024-01-07", granularity: domain.GranularityWeekly, want: "2024-01-01"},
		{date: "2024-01-08", granularity: domain.GranularityWeekly, want: "2024-01-08"},
		{date: "2024-03-01", granularity: domain.GranularityWeekly, want: "2024-02-26"},
		{date: "2024-03-01", granularity: domain.GranularityMonthly, want: "2024-03"},
	}

	for _, tt := range tests {
		t.Run(tt.date+"/"+string(tt.granularity), func(t *testing.T) {
			assert.Equal(t, tt.want, bucketKey(tt.date, tt.granularity))
		})
	}
}

func TestBuildTrend(t *testing.T) {
	ds := newTestDataset(
		dayRow("2024-01-01", "Facebook", 100, 1, 0),
		dayRow("2024-01-01", "Google Search", 300, 2, 1),
		dayRow("2024-01-01", "Yahoo! Search", 50, 0, 0),
		dayRow("2024-01-02", "Facebook", 100, 0, 1),
		dayRow("2024-01-02", "Google Search", 100, 1, 0),
	)
	set := ResolvePeriod(ds.Dates, domain.PeriodSelection{Mode: domain.PeriodAll})

	t.Run("canais exibem todos os grupos ordenados por custo", func(t *testing.T) {
		report := BuildTrend(ds, set, domain.TrendQuery{Level: domain.LevelChannel, TopN: 1, Granularity: domain.GranularityDaily})

		assert.Equal(t, []string{"Google Search", "Facebook", "Yahoo! Search"}, report.Groups)
		require.Len(t, report.Rows, 2)
		assert.Equal(t, 450.0, report.Rows[0].Metrics.Cost)
		assert.Equal(t, 300.0, report.Rows[0].Groups["Google Search"].Cost)
		assert.Equal(t, 0.0, report.Rows[1].Groups["Yahoo! Search"].Cost)
		assert.Nil(t, report.Rows[0].MovingAverage)
	})

	t.Run("seleção explícita filtra as linhas", func(t *testing.T) {
		report := BuildTrend(ds, set, domain.TrendQuery{
			Level:       domain.LevelChannel,
			Selected:    []string{"Facebook"},
			Granularity: domain.GranularityDaily,
		})

		assert.Equal(t, []string{"Facebook"}, report.Groups)
		assert.Equal(t, 100.0, report.Rows[0].Metrics.Cost)
		assert.Len(t, report.Rows[0].Groups, 1)
	})

	t.Run("filtro de canal", func(t *testing.T) {
		report := BuildTrend(ds, set, domain.TrendQuery{
			Level:       domain.LevelChannel,
			Channel:     "Google Search",
			Granularity: domain.GranularityWeekly,
		})

		require.Len(t, report.Rows, 1)
		assert.Equal(t, 400.0, report.Rows[0].Metrics.Cost)
		assert.Equal(t, "2024-01-01", report.Rows[0].Date)
	})

	t.Run("média móvel na série diária", func(t *testing.T) {
		report := BuildTrend(ds, set, domain.TrendQuery{
			Level:         domain.LevelChannel,
			Granularity:   domain.GranularityDaily,
			MovingAverage: 2,
		})

		require.NotNil(t, report.Rows[1].MovingAverage)
		require.NotNil(t, report.Rows[1].MovingAverage.CPA)
		assert.Equal(t, 108.0, *report.Rows[1].MovingAverage.CPA)
		assert.Nil(t, report.Rows[0].MovingAverage.CPA)
	})
}

func TestBuildTrendTopNOnCampaignLevel(t *testing.T) {
	rows := []domain.Row{
		{Date: "2024-01-01", Channel: "Facebook", CampaignName: "A", Cost: 10},
		{Date: "2024-01-01", Channel: "Facebook", CampaignName: "B", Cost: 30},
		{Date: "2024-01-01", Channel: "Facebook", CampaignName: "C", Cost: 20},
		{Date: "2024-01-01", Channel: "Facebook", Cost: 5},
	}
	ds := newTestDataset(rows...)
	set := ResolvePeriod(ds.Dates, domain.PeriodSelection{Mode: domain.PeriodAll})

	report := BuildTrend(ds, set, domain.TrendQuery{Level: domain.LevelCampaign, TopN: 2, Granularity: domain.GranularityDaily})

	assert.Equal(t, []string{"B", "C"}, report.Groups)
	assert.Equal(t, 65.0, report.Rows[0].Metrics.Cost, "o total geral não é truncado pelo top N")

	report = BuildTrend(ds, set, domain.TrendQuery{Level: domain.LevelCampaign, Selected: []string{domain.UnsetGroupName}, Granularity: domain.GranularityDaily})
	assert.Equal(t, 5.0, report.Rows[0].Groups[domain.UnsetGroupName].Cost)
}
