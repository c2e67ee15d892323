package domain

import "fmt"

// PeriodMode é o modo de seleção de período
type PeriodMode string

const (
	PeriodYesterday PeriodMode = "yesterday"
	PeriodThisMonth PeriodMode = "thisMonth"
	PeriodLastMonth PeriodMode = "lastMonth"
	PeriodLast30    PeriodMode = "last30"
	PeriodLast60    PeriodMode = "last60"
	PeriodAll       PeriodMode = "all"
	PeriodCustom    PeriodMode = "custom"
)

// DefaultPeriodMode é usado quando nenhum período é informado
const DefaultPeriodMode = PeriodThisMonth

var periodModes = map[PeriodMode]bool{
	PeriodYesterday: true,
	PeriodThisMonth: true,
	PeriodLastMonth: true,
	PeriodLast30:    true,
	PeriodLast60:    true,
	PeriodAll:       true,
	PeriodCustom:    true,
}

// ParsePeriodMode valida o modo recebido; vazio vira o modo padrão
func ParsePeriodMode(value string) (PeriodMode, error) {
	if value == "" {
		return DefaultPeriodMode, nil
	}
	mode := PeriodMode(value)
	if !periodModes[mode] {
		return "", fmt.Errorf("período inválido: %s", value)
	}
	return mode, nil
}

// PeriodSelection é o modo escolhido e, no modo custom, os limites inclusivos (YYYY-MM-DD)
type PeriodSelection struct {
	Mode PeriodMode `json:"mode"`
	From string     `json:"from,omitempty"`
	To   string     `json:"to,omitempty"`
}

// CacheKey identifica a seleção no cache de visões
func (p PeriodSelection) CacheKey() string {
	return JoinCacheKey(string(p.Mode), p.From, p.To)
}

// DateSet é a seleção resolvida e o período anterior comparável
type DateSet struct {
	Dates    []string `json:"dates"`
	Previous []string `json:"previous"`
}

// First devolve a primeira data selecionada
func (d DateSet) First() string {
	if len(d.Dates) == 0 {
		return ""
	}
	return d.Dates[0]
}

// Last devolve a última data selecionada
func (d DateSet) Last() string {
	if len(d.Dates) == 0 {
		return ""
	}
	return d.Dates[len(d.Dates)-1]
}
