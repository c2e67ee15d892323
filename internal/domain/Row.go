package domain

import (
	"sort"
	"time"
)

// Row representa um registro de desempenho já normalizado e classificado.
// Depois de criado não deve ser alterado.
type Row struct {
	Date         string             `json:"date"`
	Cost         float64            `json:"cost"`
	Impressions  float64            `json:"impressions"`
	Clicks       float64            `json:"clicks"`
	TierA        float64            `json:"tier_a"`
	TierB        float64            `json:"tier_b"`
	Total        float64            `json:"total"`
	SubMetrics   map[string]float64 `json:"sub_metrics,omitempty"`
	Extra        map[string]float64 `json:"extra,omitempty"`
	Source       string             `json:"source"`
	Medium       string             `json:"medium"`
	Campaign     string             `json:"campaign"`
	CampaignID   string             `json:"campaign_id"`
	CampaignName string             `json:"campaign_name"`
	AdGroupID    string             `json:"adgroup_id"`
	AdGroupName  string             `json:"adgroup_name"`
	Channel      string             `json:"channel"`
}

// CampaignKey identifica a campanha pelo par id|nome
func (r Row) CampaignKey() string {
	return CompositeKey(r.CampaignID, r.CampaignName)
}

// AdGroupKey identifica o grupo de anúncios pelo par id|nome
func (r Row) AdGroupKey() string {
	return CompositeKey(r.AdGroupID, r.AdGroupName)
}

// CompositeKey junta id e nome para diferenciar campanhas homônimas
func CompositeKey(id, name string) string {
	return id + "|" + name
}

// Dataset é o conjunto canônico carregado em memória. É substituído por
// inteiro a cada novo upload e tratado como imutável pelas consultas.
type Dataset struct {
	ID       string
	Origin   string
	LoadedAt time.Time
	Rows     []Row
	Dates    []string
	Channels []string
	Dropped  int
}

// NewDataset monta o dataset calculando as datas e canais distintos ordenados
func NewDataset(id, origin string, rows []Row, dropped int) *Dataset {
	dateSet := make(map[string]struct{})
	channelSet := make(map[string]struct{})
	for _, row := range rows {
		dateSet[row.Date] = struct{}{}
		channelSet[row.Channel] = struct{}{}
	}

	return &Dataset{
		ID:       id,
		Origin:   origin,
		LoadedAt: time.Now(),
		Rows:     rows,
		Dates:    sortedKeys(dateSet),
		Channels: sortedKeys(channelSet),
		Dropped:  dropped,
	}
}

// FirstDate retorna a primeira data disponível ou "" se o dataset estiver vazio
func (d *Dataset) FirstDate() string {
	if len(d.Dates) == 0 {
		return ""
	}
	return d.Dates[0]
}

// LastDate retorna a última data disponível ou "" se o dataset estiver vazio
func (d *Dataset) LastDate() string {
	if len(d.Dates) == 0 {
		return ""
	}
	return d.Dates[len(d.Dates)-1]
}

// Info resume o dataset para a API
func (d *Dataset) Info() *DatasetInfo {
	return &DatasetInfo{
		ID:        d.ID,
		Origin:    d.Origin,
		LoadedAt:  d.LoadedAt,
		Rows:      len(d.Rows),
		Dropped:   d.Dropped,
		FirstDate: d.FirstDate(),
		LastDate:  d.LastDate(),
		Dates:     len(d.Dates),
		Channels:  d.Channels,
	}
}

// DatasetInfo é a visão resumida do dataset carregado
type DatasetInfo struct {
	ID        string    `json:"id"`
	Origin    string    `json:"origin"`
	LoadedAt  time.Time `json:"loaded_at"`
	Rows      int       `json:"rows"`
	Dropped   int       `json:"dropped"`
	FirstDate string    `json:"first_date"`
	LastDate  string    `json:"last_date"`
	Dates     int       `json:"dates"`
	Channels  []string  `json:"channels"`
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
