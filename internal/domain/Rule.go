package domain

import "strings"

// UnclassifiedChannel é o rótulo usado quando a linha não tem source
const UnclassifiedChannel = "unclassified"

// DefaultChannelColor é a cor usada para canais sem regra
const DefaultChannelColor = "#6B7280"

// ClassificationRule é uma entrada da tabela ordenada de classificação de canais.
// Campos vazios não são verificados.
type ClassificationRule struct {
	Source       string   `json:"source" yaml:"source"`
	Medium       string   `json:"medium,omitempty" yaml:"medium,omitempty"`
	Campaign     []string `json:"campaign,omitempty" yaml:"campaign,omitempty"`
	CampaignName []string `json:"campaign_name,omitempty" yaml:"campaign_name,omitempty"`
	Name         string   `json:"name" yaml:"name"`
	Color        string   `json:"color" yaml:"color"`
}

// HasKeywords indica se a regra declara algum filtro por palavra-chave
func (r ClassificationRule) HasKeywords() bool {
	return len(r.Campaign) > 0 || len(r.CampaignName) > 0
}

// Normalized devolve uma cópia da regra com comparações em minúsculas
func (r ClassificationRule) Normalized() ClassificationRule {
	return ClassificationRule{
		Source:       strings.ToLower(strings.TrimSpace(r.Source)),
		Medium:       strings.ToLower(strings.TrimSpace(r.Medium)),
		Campaign:     lowerAll(r.Campaign),
		CampaignName: lowerAll(r.CampaignName),
		Name:         r.Name,
		Color:        r.Color,
	}
}

// ColumnMapping diz qual coluna bruta cumpre cada papel canônico
type ColumnMapping struct {
	Date         string   `json:"date" yaml:"date"`
	Cost         string   `json:"cost" yaml:"cost"`
	Impressions  string   `json:"impressions" yaml:"impressions"`
	Clicks       string   `json:"clicks" yaml:"clicks"`
	Source       string   `json:"source" yaml:"source"`
	Medium       string   `json:"medium" yaml:"medium"`
	Campaign     string   `json:"campaign" yaml:"campaign"`
	CampaignName string   `json:"campaign_name" yaml:"campaign_name"`
	CampaignID   string   `json:"campaign_id" yaml:"campaign_id"`
	AdGroupName  string   `json:"adgroup_name" yaml:"adgroup_name"`
	AdGroupID    string   `json:"adgroup_id" yaml:"adgroup_id"`
	Total        string   `json:"total" yaml:"total"`
	ExtraNumeric []string `json:"extra_numeric,omitempty" yaml:"extra_numeric,omitempty"`
}

// ConversionMetric é um contador de conversão configurado
type ConversionMetric struct {
	Field string `json:"field" yaml:"field"`
	Label string `json:"label" yaml:"label"`
}

// ConversionGroup agrupa sub-métricas que somam um total próprio
type ConversionGroup struct {
	Label    string             `json:"label" yaml:"label"`
	Color    string             `json:"color,omitempty" yaml:"color,omitempty"`
	TotalKey string             `json:"total_key,omitempty" yaml:"total_key,omitempty"`
	Metrics  []ConversionMetric `json:"metrics" yaml:"metrics"`
}

// Fields devolve os nomes de coluna das sub-métricas do grupo
func (g ConversionGroup) Fields() []string {
	fields := make([]string, 0, len(g.Metrics))
	for _, m := range g.Metrics {
		fields = append(fields, m.Field)
	}
	return fields
}

// ConversionTaxonomy define os grupos tier-A e tier-B e um grupo "outros"
// que é agregado apenas por sub-métrica.
type ConversionTaxonomy struct {
	TierA ConversionGroup `json:"tier_a" yaml:"tier_a"`
	TierB ConversionGroup `json:"tier_b" yaml:"tier_b"`
	Other ConversionGroup `json:"other" yaml:"other"`
}

// SubMetricFields lista todas as sub-métricas configuradas, na ordem tier-A, tier-B, outros
func (t ConversionTaxonomy) SubMetricFields() []string {
	fields := append([]string{}, t.TierA.Fields()...)
	fields = append(fields, t.TierB.Fields()...)
	return append(fields, t.Other.Fields()...)
}

// Rules agrupa toda a configuração estática consumida pelo normalizador
type Rules struct {
	Columns     ColumnMapping        `json:"columns" yaml:"columns"`
	Conversions ConversionTaxonomy   `json:"conversions" yaml:"conversions"`
	Channels    []ClassificationRule `json:"channels" yaml:"channels"`
}

// ChannelColor devolve a cor configurada para o canal
func (r *Rules) ChannelColor(channel string) string {
	for _, rule := range r.Channels {
		if rule.Name == channel {
			return rule.Color
		}
	}
	return DefaultChannelColor
}

func lowerAll(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ToLower(strings.TrimSpace(v)))
	}
	return out
}
