package domain

// ForecastTotals são os totais usados na projeção mensal
type ForecastTotals struct {
	Cost  float64 `json:"cost"`
	TierA float64 `json:"tier_a"`
	TierB float64 `json:"tier_b"`
	Total float64 `json:"total"`
}

// Add acumula outro total
func (t *ForecastTotals) Add(other ForecastTotals) {
	t.Cost += other.Cost
	t.TierA += other.TierA
	t.TierB += other.TierB
	t.Total += other.Total
}

// MonthActuals é o realizado de um mês fechado, usado como base de comparação
type MonthActuals struct {
	ForecastTotals
	CPA *float64 `json:"cpa"`
}

// ForecastResult é a projeção de fechamento do mês para um escopo (geral ou canal)
type ForecastResult struct {
	Label         string         `json:"label"`
	ActualDays    int            `json:"actual_days"`
	RemainingDays int            `json:"remaining_days"`
	TotalDays     int            `json:"total_days"`
	Actual        ForecastTotals `json:"actual"`
	Projected     ForecastTotals `json:"projected"`
	Forecast      ForecastTotals `json:"forecast"`
	CPA           *float64       `json:"cpa"`
	PreviousMonth *MonthActuals  `json:"previous_month"`
}

// ForecastReport agrupa a projeção geral e por canal
type ForecastReport struct {
	Month     string           `json:"month"`
	Progress  float64          `json:"progress"`
	Overall   ForecastResult   `json:"overall"`
	ByChannel []ForecastResult `json:"by_channel"`
}
