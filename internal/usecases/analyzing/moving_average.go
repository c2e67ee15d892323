package analyzing

import "github.com/vfg2006/ad-report-analyzer/internal/domain"

// MovingAverageWindows são as janelas aceitas na consulta de tendência
var MovingAverageWindows = map[int]bool{7: true, 14: true}

// ApplyMovingAverage calcula as médias móveis de janela N sobre uma série diária.
// Enquanto não há N pontos de histórico todos os campos ficam nulos. O CPA é
// ponderado: soma do custo da janela dividida pela soma das conversões.
func ApplyMovingAverage(series []domain.TrendRow, window int) []domain.TrendRow {
	result := make([]domain.TrendRow, len(series))
	copy(result, series)
	if window <= 0 {
		return result
	}

	for i := range result {
		ma := &domain.MovingAverage{Window: window}
		if i >= window-1 {
			var sum domain.AggregateResult
			for _, row := range series[i-window+1 : i+1] {
				sum.Cost += row.Metrics.Cost
				sum.TierA += row.Metrics.TierA
				sum.TierB += row.Metrics.TierB
				sum.Total += row.Metrics.Total
			}

			n := float64(window)
			total := sum.Total / n
			tierA := sum.TierA / n
			tierB := sum.TierB / n

			ma.CPA = SafeCPA(sum.Cost, sum.Total)
			ma.CPATierA = SafeCPA(sum.Cost, sum.TierA)
			ma.CPATierB = SafeCPA(sum.Cost, sum.TierB)
			ma.Total = &total
			ma.TierA = &tierA
			ma.TierB = &tierB
		}
		result[i].MovingAverage = ma
	}
	return result
}
