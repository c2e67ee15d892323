package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-report-analyzer/internal/config"
)

func TestNormalize(t *testing.T) {
	normalizer := NewNormalizer(config.DefaultRules())

	records := []map[string]string{
		{
			" paid_date ":          " 2024-01-10 ",
			"content_cost":         "1,200",
			"content_impressions":  "10000",
			"content_clicks":       "abc",
			"utm_source":           "google",
			"utm_campaign":         "pmax_brand",
			"campaign_id":          "10",
			"campaign_name":        "Brand",
			"generate_lead_ai_uu":  "2",
			"cost_sim_complete_uu": "1",
			"account_reg_ivr_uu":   "3",
			"generate_lead_ivr_uu": "7",
			"total_tier1cv_cnt":    "99",
			"allocation_ratio":     "0.5",
		},
		{
			"paid_date":    "",
			"content_cost": "500",
		},
		{
			"content_cost": "500",
		},
	}

	rows, dropped := normalizer.Normalize(records)

	require.Len(t, rows, 1)
	assert.Equal(t, 2, dropped)

	row := rows[0]
	assert.Equal(t, "2024-01-10", row.Date)
	assert.Equal(t, 1200.0, row.Cost)
	assert.Equal(t, 10000.0, row.Impressions)
	assert.Equal(t, 0.0, row.Clicks, "texto não numérico vira zero")
	assert.Equal(t, 3.0, row.TierA)
	assert.Equal(t, 3.0, row.TierB)
	assert.Equal(t, 6.0, row.Total, "a quebra por tier prevalece sobre o total da origem")
	assert.Equal(t, 7.0, row.SubMetrics["generate_lead_ivr_uu"])
	assert.Equal(t, 0.5, row.Extra["allocation_ratio"])
	assert.Equal(t, "Google P-MAX", row.Channel)
	assert.Equal(t, "10|Brand", row.CampaignKey())
}

func TestNormalizeRecordConversionPrecedence(t *testing.T) {
	normalizer := NewNormalizer(config.DefaultRules())

	tests := []struct {
		name      string
		record    map[string]string
		wantTierA float64
		wantTierB float64
		wantTotal float64
	}{
		{
			name: "total armazenado do tier prevalece sobre a soma",
			record: map[string]string{
				"paid_date":           "2024-01-01",
				"total_siryo_cnt":     "5",
				"generate_lead_ai_uu": "1",
			},
			wantTierA: 5,
			wantTotal: 5,
		},
		{
			name: "sem quebra mantém o total da origem",
			record: map[string]string{
				"paid_date":         "2024-01-01",
				"total_tier1cv_cnt": "8",
			},
			wantTotal: 8,
		},
		{
			name: "total do tier B armazenado",
			record: map[string]string{
				"paid_date":             "2024-01-01",
				"total_free_acount_cnt": "4",
				"total_tier1cv_cnt":     "1",
			},
			wantTierB: 4,
			wantTotal: 4,
		},
		{
			name: "valores não finitos viram zero",
			record: map[string]string{
				"paid_date":         "2024-01-01",
				"total_tier1cv_cnt": "NaN",
				"content_cost":      "Inf",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, ok := normalizer.NormalizeRecord(tt.record)
			require.True(t, ok)
			assert.Equal(t, tt.wantTierA, row.TierA)
			assert.Equal(t, tt.wantTierB, row.TierB)
			assert.Equal(t, tt.wantTotal, row.Total)
			assert.Zero(t, row.Cost)
		})
	}
}

func TestNormalizedTotalsMatchTiers(t *testing.T) {
	normalizer := NewNormalizer(config.DefaultRules())

	rows, _ := normalizer.Normalize([]map[string]string{
		{"paid_date": "2024-01-01", "generate_lead_0abj_uu": "2", "account_reg_none_uu": "1"},
		{"paid_date": "2024-01-02", "total_siryo_cnt": "3", "total_free_acount_cnt": "4", "total_tier1cv_cnt": "1"},
		{"paid_date": "2024-01-03", "generate_lead_push_uu": "1.5"},
	})

	agg := Aggregate(rows)
	assert.Equal(t, agg.TierA+agg.TierB, agg.Total)
}
