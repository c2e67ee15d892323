package narrating

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-report-analyzer/internal/domain"
	"github.com/vfg2006/ad-report-analyzer/internal/usecases/analyzing"
)

func sampleReport() *domain.ChannelReport {
	current := analyzing.DeriveRates(domain.AggregateResult{Cost: 12000, Impressions: 50000, Clicks: 800, TierA: 6, TierB: 4, Total: 10})
	previous := analyzing.DeriveRates(domain.AggregateResult{Cost: 10000, Impressions: 40000, Clicks: 700, TierA: 5, TierB: 5, Total: 10})
	empty := analyzing.DeriveRates(domain.AggregateResult{Cost: 300})

	return &domain.ChannelReport{
		Channel:    "Google P-MAX",
		FirstDate:  "2024-03-01",
		LastDate:   "2024-03-14",
		Days:       14,
		Current:    current,
		Previous:   &previous,
		RecentWeek: current,
		Campaigns: []domain.CampaignComparison{
			{Name: "pmax_marca", Metrics: current, Previous: &previous},
			{Name: "pmax_novo", Metrics: empty},
		},
		Daily: []domain.DailyPoint{
			{Date: "2024-03-13", Metrics: current},
			{Date: "2024-03-14", Metrics: empty},
		},
		Alerts: []domain.Alert{
			{Type: domain.AlertStop, Severity: domain.SeverityCritical, Channel: "Google P-MAX", Message: "Custo de veiculação zerado na última data (2024-03-14)"},
		},
		TierALabel: "Solicitação de material",
		TierBLabel: "Conta gratuita",
	}
}

func TestBuildPrompt(t *testing.T) {
	tests := []struct {
		name     string
		report   func() *domain.ChannelReport
		contains []string
		excludes []string
	}{
		{
			name:   "Relatório completo - deve conter todas as seções",
			report: sampleReport,
			contains: []string{
				"[Google P-MAX]",
				"conversões = Solicitação de material + Conta gratuita",
				"2024-03-01 a 2024-03-14 (14 dias)",
				"Variação vs período anterior",
				"7 dias anteriores: sem dados",
				"## Campanhas (2)",
				"pmax_marca",
				"[vs anterior:",
				"## Evolução diária (últimos 2 dias)",
				"## Alertas detectados",
				"- Parada de veiculação: Custo de veiculação zerado",
				"### Passo 1",
				"### Passo 2",
				"### Passo 3",
			},
		},
		{
			name: "Sem período anterior e sem alertas - seções opcionais omitidas",
			report: func() *domain.ChannelReport {
				report := sampleReport()
				report.Previous = nil
				report.Alerts = nil
				return report
			},
			excludes: []string{
				"Variação vs período anterior",
				"## Alertas detectados",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := BuildPrompt(tt.report())
			for _, text := range tt.contains {
				assert.Contains(t, prompt, text)
			}
			for _, text := range tt.excludes {
				assert.NotContains(t, prompt, text)
			}
		})
	}
}

func TestBuildPrompt_UndefinedCPA(t *testing.T) {
	prompt := BuildPrompt(sampleReport())

	var dayLine string
	for _, line := range strings.Split(prompt, "\n") {
		if strings.HasPrefix(line, "2024-03-14:") {
			dayLine = line
		}
	}

	assert.NotEmpty(t, dayLine)
	assert.True(t, strings.HasSuffix(dayLine, "CPA "+notAvailable))
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	assert.Equal(t, BuildPrompt(sampleReport()), BuildPrompt(sampleReport()))
}
