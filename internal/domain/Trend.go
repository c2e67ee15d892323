package domain

import (
	"fmt"
	"strconv"
)

// Granularity é a largura do balde da série de tendência
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// ParseGranularity valida a granularidade; vazio vira diária
func ParseGranularity(value string) (Granularity, error) {
	switch Granularity(value) {
	case "":
		return GranularityDaily, nil
	case GranularityDaily, GranularityWeekly, GranularityMonthly:
		return Granularity(value), nil
	}
	return "", fmt.Errorf("granularidade inválida: %s", value)
}

// TrendQuery parametriza a série de tendência
type TrendQuery struct {
	Level         GroupLevel  `json:"level"`
	Channel       string      `json:"channel,omitempty"`
	Campaign      string      `json:"campaign,omitempty"`
	Selected      []string    `json:"selected,omitempty"`
	TopN          int         `json:"top_n"`
	Granularity   Granularity `json:"granularity"`
	MovingAverage int         `json:"moving_average,omitempty"`
}

// CacheKey identifica a consulta no cache de visões
func (q TrendQuery) CacheKey() string {
	parts := []string{
		string(q.Level),
		q.Channel,
		q.Campaign,
		strconv.Itoa(q.TopN),
		string(q.Granularity),
		strconv.Itoa(q.MovingAverage),
		strconv.Itoa(len(q.Selected)),
	}
	return JoinCacheKey(append(parts, q.Selected...)...)
}

// TrendRow é um balde da série: métricas gerais e por grupo selecionado
type TrendRow struct {
	Date          string                `json:"date"`
	Label         string                `json:"label"`
	Metrics       RateResult            `json:"metrics"`
	Groups        map[string]RateResult `json:"groups"`
	MovingAverage *MovingAverage        `json:"moving_average,omitempty"`
}

// MovingAverage guarda as médias móveis de um ponto diário.
// Todos os campos são nulos enquanto não há histórico suficiente.
type MovingAverage struct {
	Window   int      `json:"window"`
	CPA      *float64 `json:"cpa"`
	CPATierA *float64 `json:"cpa_tier_a"`
	CPATierB *float64 `json:"cpa_tier_b"`
	Total    *float64 `json:"total"`
	TierA    *float64 `json:"tier_a"`
	TierB    *float64 `json:"tier_b"`
}

// TrendReport é a resposta da consulta de tendência
type TrendReport struct {
	Query  TrendQuery `json:"query"`
	Groups []string   `json:"groups"`
	Rows   []TrendRow `json:"rows"`
}
