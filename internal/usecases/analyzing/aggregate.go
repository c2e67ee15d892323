package analyzing

import (
	"math"

	"github.com/vfg2006/ad-report-analyzer/internal/domain"
)

// minConversionsForCPA abaixo deste volume o CPA é considerado indefinido
const minConversionsForCPA = 0.01

// Aggregate soma as métricas absolutas das linhas, sem pesos nem arredondamento
func Aggregate(rows []domain.Row) domain.AggregateResult {
	var result domain.AggregateResult
	for _, row := range rows {
		result.Cost += row.Cost
		result.Impressions += row.Impressions
		result.Clicks += row.Clicks
		result.TierA += row.TierA
		result.TierB += row.TierB
		result.Total += row.Total
		for field, value := range row.SubMetrics {
			if result.SubMetrics == nil {
				result.SubMetrics = make(map[string]float64, len(row.SubMetrics))
			}
			result.SubMetrics[field] += value
		}
	}
	return result
}

// DeriveRates calcula as taxas a partir do agregado.
// Denominadores zerados resultam em 0, exceto a família CPA que resulta em nil.
func DeriveRates(agg domain.AggregateResult) domain.RateResult {
	result := domain.RateResult{
		AggregateResult: agg,
		CPA:             SafeCPA(agg.Cost, agg.Total),
		CPATierA:        SafeCPA(agg.Cost, agg.TierA),
		CPATierB:        SafeCPA(agg.Cost, agg.TierB),
	}

	if agg.Impressions > 0 {
		result.CTR = agg.Clicks / agg.Impressions * 100
		result.CPM = roundHalfUp(agg.Cost / agg.Impressions * 1000)
	}
	if agg.Clicks > 0 {
		result.CVR = agg.Total / agg.Clicks * 100
		result.CPC = roundHalfUp(agg.Cost / agg.Clicks)
	}
	if agg.Total > 0 {
		result.TierARatio = agg.TierA / agg.Total * 100
		result.TierBRatio = agg.TierB / agg.Total * 100
	}

	return result
}

// Summarize agrega e deriva as taxas em um passo
func Summarize(rows []domain.Row) domain.RateResult {
	return DeriveRates(Aggregate(rows))
}

// SafeCPA devolve round(custo/conversões) ou nil quando as conversões não passam de 0,01
func SafeCPA(cost, conversions float64) *float64 {
	if conversions <= minConversionsForCPA {
		return nil
	}
	cpa := roundHalfUp(cost / conversions)
	return &cpa
}

// PctChange é a variação percentual de previous para current; nil quando previous é zero
func PctChange(current, previous float64) *float64 {
	if previous == 0 {
		return nil
	}
	change := (current - previous) / previous * 100
	return &change
}

// PctChangePtr é PctChange para valores possivelmente indefinidos
func PctChangePtr(current, previous *float64) *float64 {
	if current == nil || previous == nil {
		return nil
	}
	return PctChange(*current, *previous)
}

// roundHalfUp arredonda meio para cima (2.5 -> 3, -2.5 -> -2)
func roundHalfUp(value float64) float64 {
	return math.Floor(value + 0.5)
}
