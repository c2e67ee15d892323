package domain

// AggregateResult soma absoluta de um conjunto de linhas
type AggregateResult struct {
	Cost        float64            `json:"cost"`
	Impressions float64            `json:"impressions"`
	Clicks      float64            `json:"clicks"`
	TierA       float64            `json:"tier_a"`
	TierB       float64            `json:"tier_b"`
	Total       float64            `json:"total"`
	SubMetrics  map[string]float64 `json:"sub_metrics,omitempty"`
}

// Add acumula outro resultado neste, campo a campo
func (a *AggregateResult) Add(other AggregateResult) {
	a.Cost += other.Cost
	a.Impressions += other.Impressions
	a.Clicks += other.Clicks
	a.TierA += other.TierA
	a.TierB += other.TierB
	a.Total += other.Total
	for field, value := range other.SubMetrics {
		if a.SubMetrics == nil {
			a.SubMetrics = make(map[string]float64, len(other.SubMetrics))
		}
		a.SubMetrics[field] += value
	}
}

// RateResult é o agregado acrescido das taxas derivadas.
// CPA nulo significa "indefinido" e é diferente de zero.
type RateResult struct {
	AggregateResult
	CTR        float64  `json:"ctr"`
	CVR        float64  `json:"cvr"`
	CPA        *float64 `json:"cpa"`
	CPATierA   *float64 `json:"cpa_tier_a"`
	CPATierB   *float64 `json:"cpa_tier_b"`
	CPM        float64  `json:"cpm"`
	CPC        float64  `json:"cpc"`
	TierARatio float64  `json:"tier_a_ratio"`
	TierBRatio float64  `json:"tier_b_ratio"`
}
