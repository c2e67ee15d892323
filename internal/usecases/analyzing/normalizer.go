package analyzing

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/vfg2006/ad-report-analyzer/internal/domain"
)

// Normalizer converte registros brutos (chave -> texto) em linhas tipadas e classificadas
type Normalizer struct {
	columns    domain.ColumnMapping
	taxonomy   domain.ConversionTaxonomy
	classifier *Classifier
}

// NewNormalizer cria o normalizador a partir da configuração de regras
func NewNormalizer(rules *domain.Rules) *Normalizer {
	return &Normalizer{
		columns:    rules.Columns,
		taxonomy:   rules.Conversions,
		classifier: NewClassifier(rules.Channels),
	}
}

// Normalize converte todos os registros, descartando os que não têm data.
// Devolve as linhas válidas e a quantidade descartada.
func (n *Normalizer) Normalize(records []map[string]string) ([]domain.Row, int) {
	rows := make([]domain.Row, 0, len(records))
	dropped := 0
	for _, record := range records {
		row, ok := n.NormalizeRecord(record)
		if !ok {
			dropped++
			continue
		}
		rows = append(rows, row)
	}
	return rows, dropped
}

// NormalizeRecord converte um registro. ok é falso quando a data está vazia.
func (n *Normalizer) NormalizeRecord(raw map[string]string) (domain.Row, bool) {
	fields := trimFields(raw)

	date := fields[n.columns.Date]
	if date == "" {
		return domain.Row{}, false
	}

	row := domain.Row{
		Date:         date,
		Cost:         parseNumber(fields[n.columns.Cost]),
		Impressions:  parseNumber(fields[n.columns.Impressions]),
		Clicks:       parseNumber(fields[n.columns.Clicks]),
		Source:       fields[n.columns.Source],
		Medium:       fields[n.columns.Medium],
		Campaign:     fields[n.columns.Campaign],
		CampaignID:   fields[n.columns.CampaignID],
		CampaignName: fields[n.columns.CampaignName],
		AdGroupID:    fields[n.columns.AdGroupID],
		AdGroupName:  fields[n.columns.AdGroupName],
	}

	if subFields := n.taxonomy.SubMetricFields(); len(subFields) > 0 {
		row.SubMetrics = make(map[string]float64, len(subFields))
		for _, field := range subFields {
			row.SubMetrics[field] = parseNumber(fields[field])
		}
	}

	if len(n.columns.ExtraNumeric) > 0 {
		row.Extra = make(map[string]float64, len(n.columns.ExtraNumeric))
		for _, field := range n.columns.ExtraNumeric {
			row.Extra[field] = parseNumber(fields[field])
		}
	}

	row.TierA = n.groupTotal(fields, row.SubMetrics, n.taxonomy.TierA)
	row.TierB = n.groupTotal(fields, row.SubMetrics, n.taxonomy.TierB)

	// a quebra por tier prevalece sobre o total informado na origem
	row.Total = parseNumber(fields[n.columns.Total])
	if sum := row.TierA + row.TierB; sum > 0 {
		row.Total = sum
	}

	row.Channel = n.classifier.Classify(row)
	return row, true
}

// groupTotal usa o total armazenado do grupo e cai na soma das sub-métricas quando ele é zero
func (n *Normalizer) groupTotal(fields map[string]string, subMetrics map[string]float64, group domain.ConversionGroup) float64 {
	var stored float64
	if group.TotalKey != "" {
		stored = parseNumber(fields[group.TotalKey])
	}
	if stored != 0 {
		return stored
	}

	sum := 0.0
	for _, field := range group.Fields() {
		sum += subMetrics[field]
	}
	return sum
}

// trimFields apara chaves e valores; em colisão de chaves vence a última em ordem alfabética
func trimFields(raw map[string]string) map[string]string {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make(map[string]string, len(raw))
	for _, k := range keys {
		fields[strings.TrimSpace(k)] = strings.TrimSpace(raw[k])
	}
	return fields
}

// parseNumber remove separadores de milhar e devolve 0 quando o texto não é um número finito
func parseNumber(value string) float64 {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if value == "" {
		return 0
	}

	number, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) {
		return 0
	}
	return number
}
