package narrating

import (
	"strings"

	"github.com/vfg2006/ad-report-analyzer/internal/domain"
	"github.com/vfg2006/ad-report-analyzer/internal/usecases/analyzing"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const notAvailable = "N/D"

var alertTitles = map[domain.AlertType]string{
	domain.AlertStop:        "Parada de veiculação",
	domain.AlertCVDecline:   "Queda de CV",
	domain.AlertCPAIncrease: "Alta de CPA",
}

// promptWriter formata números no padrão pt-BR para o prompt
type promptWriter struct {
	sb      strings.Builder
	printer *message.Printer
}

func newPromptWriter() *promptWriter {
	return &promptWriter{printer: message.NewPrinter(language.BrazilianPortuguese)}
}

func (w *promptWriter) line(format string, args ...any) {
	w.sb.WriteString(w.printer.Sprintf(format, args...))
	w.sb.WriteString("\n")
}

func (w *promptWriter) blank() {
	w.sb.WriteString("\n")
}

func (w *promptWriter) number(v float64) string {
	return w.printer.Sprintf("%.0f", v)
}

func (w *promptWriter) decimal(v float64) string {
	return w.printer.Sprintf("%.1f", v)
}

func (w *promptWriter) rate(v float64) string {
	return w.printer.Sprintf("%.2f%%", v)
}

func (w *promptWriter) cpa(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return w.number(*v)
}

func (w *promptWriter) change(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return w.printer.Sprintf("%+.1f%%", *v)
}

// BuildPrompt monta o texto enviado ao gerador de narrativa. A saída depende
// apenas do relatório, então o mesmo relatório gera sempre o mesmo prompt.
func BuildPrompt(report *domain.ChannelReport) string {
	w := newPromptWriter()
	current := report.Current

	w.line("Você é um consultor sênior de mídia paga. Diagnostique os dados do canal [%s] abaixo e responda em português.", report.Channel)
	w.blank()
	w.line("## Estrutura de KPI: conversões = %s + %s", report.TierALabel, report.TierBLabel)
	w.line("## Período analisado: %s a %s (%d dias)", report.FirstDate, report.LastDate, report.Days)
	w.blank()

	w.line("## [%s] Resultado do período", report.Channel)
	w.line("Custo: %s / Impressões: %s / Cliques: %s / CTR: %s / CPC: %s",
		w.number(current.Cost), w.number(current.Impressions), w.number(current.Clicks), w.rate(current.CTR), w.number(current.CPC))
	w.line("Conversões: %s (%s: %s / %s: %s)",
		w.decimal(current.Total), report.TierALabel, w.decimal(current.TierA), report.TierBLabel, w.decimal(current.TierB))
	w.line("CVR: %s / CPA: %s / CPA %s: %s / CPA %s: %s",
		w.rate(current.CVR), w.cpa(current.CPA), report.TierALabel, w.cpa(current.CPATierA), report.TierBLabel, w.cpa(current.CPATierB))
	if prev := report.Previous; prev != nil {
		w.line("Variação vs período anterior: Custo %s / Cliques %s / CTR %s / CVR %s / Conversões %s / CPA %s",
			w.change(analyzing.PctChange(current.Cost, prev.Cost)),
			w.change(analyzing.PctChange(current.Clicks, prev.Clicks)),
			w.change(analyzing.PctChange(current.CTR, prev.CTR)),
			w.change(analyzing.PctChange(current.CVR, prev.CVR)),
			w.change(analyzing.PctChange(current.Total, prev.Total)),
			w.change(analyzing.PctChangePtr(current.CPA, prev.CPA)))
	}
	w.blank()

	w.line("## Últimos 7 dias vs 7 dias anteriores")
	w.line("Últimos 7 dias: %s", w.weekLine(report.RecentWeek))
	if report.PreviousWeek != nil {
		w.line("7 dias anteriores: %s", w.weekLine(*report.PreviousWeek))
	} else {
		w.line("7 dias anteriores: sem dados")
	}
	w.blank()

	w.line("## Campanhas (%d)", len(report.Campaigns))
	for _, campaign := range report.Campaigns {
		w.line("%s", w.campaignLine(campaign))
	}
	w.blank()

	w.line("## Evolução diária (últimos %d dias)", len(report.Daily))
	for _, day := range report.Daily {
		m := day.Metrics
		w.line("%s: Custo %s / Cliques %s / CTR %s / CVR %s / Conversões %s / CPA %s",
			day.Date, w.number(m.Cost), w.number(m.Clicks), w.rate(m.CTR), w.rate(m.CVR), w.decimal(m.Total), w.cpa(m.CPA))
	}

	if len(report.Alerts) > 0 {
		w.blank()
		w.line("## Alertas detectados")
		for _, alert := range report.Alerts {
			w.line("- %s: %s (%s)", alertTitles[alert.Type], alert.Message, alert.Detail)
		}
	}

	w.blank()
	w.line("Responda estritamente na estrutura de 3 passos abaixo, com tópicos curtos em cada passo.")
	w.blank()
	w.line("### Passo 1: Diagnóstico do estado")
	w.line("Classifique o estado atual do canal como \"bom\", \"estável\" ou \"ruim\" e justifique em 1-2 frases, avaliando conversões, CPA e custo.")
	w.blank()
	w.line("### Passo 2: Decomposição das causas")
	w.line("Identifique em que ponto do funil (impressão -> clique -> conversão) está a causa, considerando:")
	w.line("- variação do CPC (concorrência no leilão, índice de qualidade)")
	w.line("- variação do CTR (anúncios, segmentação)")
	w.line("- variação do CVR (página de destino, qualidade do público)")
	w.line("Limite-se a 2-4 pontos.")
	w.blank()
	w.line("### Passo 3: Campanhas responsáveis")
	w.line("Cite pelo nome as campanhas que causam os pontos acima. Para cada uma, diga em uma frase o que está acontecendo e em outra a ação recomendada.")

	return w.sb.String()
}

func (w *promptWriter) weekLine(m domain.RateResult) string {
	return w.printer.Sprintf("Custo %s / Cliques %s / CTR %s / CPC %s / CVR %s / Conversões %s / CPA %s",
		w.number(m.Cost), w.number(m.Clicks), w.rate(m.CTR), w.number(m.CPC), w.rate(m.CVR), w.decimal(m.Total), w.cpa(m.CPA))
}

func (w *promptWriter) campaignLine(c domain.CampaignComparison) string {
	m := c.Metrics
	text := w.printer.Sprintf("%s: Custo %s / Impressões %s / Cliques %s / CTR %s / CPC %s / CVR %s / Conversões %s (%s + %s) / CPA %s",
		c.Name, w.number(m.Cost), w.number(m.Impressions), w.number(m.Clicks), w.rate(m.CTR), w.number(m.CPC), w.rate(m.CVR),
		w.decimal(m.Total), w.decimal(m.TierA), w.decimal(m.TierB), w.cpa(m.CPA))
	if prev := c.Previous; prev != nil {
		text += w.printer.Sprintf(" [vs anterior: Cliques %s / CVR %s / Conversões %s / CPA %s]",
			w.change(analyzing.PctChange(m.Clicks, prev.Clicks)),
			w.change(analyzing.PctChange(m.CVR, prev.CVR)),
			w.change(analyzing.PctChange(m.Total, prev.Total)),
			w.change(analyzing.PctChangePtr(m.CPA, prev.CPA)))
	}
	return text
}
