package domain

// Summary é a visão geral do período selecionado
type Summary struct {
	Period       PeriodSelection     `json:"period"`
	FirstDate    string              `json:"first_date"`
	LastDate     string              `json:"last_date"`
	Days         int                 `json:"days"`
	Current      RateResult          `json:"current"`
	Previous     *RateResult         `json:"previous"`
	Changes      map[string]*float64 `json:"changes"`
	RecentWeek   RateResult          `json:"recent_week"`
	PreviousWeek *RateResult         `json:"previous_week"`
	SubMetrics   []SubMetricValue    `json:"sub_metrics"`
}

// SubMetricValue é o total de uma sub-métrica de conversão no período
type SubMetricValue struct {
	Group string  `json:"group"`
	Field string  `json:"field"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// DailyTableFilter filtra a tabela diária por nome de canal, campanha e grupo
type DailyTableFilter struct {
	Channel  string `json:"channel,omitempty"`
	Campaign string `json:"campaign,omitempty"`
	AdGroup  string `json:"adgroup,omitempty"`
}

// DailyTableRow é uma linha da tabela diária
type DailyTableRow struct {
	Date    string     `json:"date"`
	Metrics RateResult `json:"metrics"`
}

// DailyTable é a tabela diária com a linha de total
type DailyTable struct {
	Filter DailyTableFilter `json:"filter"`
	Rows   []DailyTableRow  `json:"rows"`
	Total  RateResult       `json:"total"`
}

// CampaignComparison é uma campanha (agrupada por nome) com o período anterior
type CampaignComparison struct {
	Name     string      `json:"name"`
	Metrics  RateResult  `json:"metrics"`
	Previous *RateResult `json:"previous"`
}

// DailyPoint é um dia da série de um canal
type DailyPoint struct {
	Date    string     `json:"date"`
	Metrics RateResult `json:"metrics"`
}

// ChannelReport reúne tudo o que a narrativa de um canal precisa
type ChannelReport struct {
	Channel      string               `json:"channel"`
	FirstDate    string               `json:"first_date"`
	LastDate     string               `json:"last_date"`
	Days         int                  `json:"days"`
	Current      RateResult           `json:"current"`
	Previous     *RateResult          `json:"previous"`
	RecentWeek   RateResult           `json:"recent_week"`
	PreviousWeek *RateResult          `json:"previous_week"`
	Campaigns    []CampaignComparison `json:"campaigns"`
	Daily        []DailyPoint         `json:"daily"`
	Alerts       []Alert              `json:"alerts"`
	TierALabel   string               `json:"tier_a_label"`
	TierBLabel   string               `json:"tier_b_label"`
}

// Narrative é o texto devolvido pelo colaborador de geração
type Narrative struct {
	Channel string `json:"channel"`
	Prompt  string `json:"prompt,omitempty"`
	Text    string `json:"text"`
}
