package domain

import "fmt"

// GroupLevel é o eixo de agrupamento (drill-down ou tendência)
type GroupLevel string

const (
	LevelChannel  GroupLevel = "channel"
	LevelCampaign GroupLevel = "campaign"
	LevelAdGroup  GroupLevel = "adgroup"
)

// UnsetGroupName é usado quando a linha não tem nome para o eixo escolhido
const UnsetGroupName = "(unset)"

// ParseGroupLevel valida o eixo recebido; vazio vira canal
func ParseGroupLevel(value string) (GroupLevel, error) {
	switch GroupLevel(value) {
	case "":
		return LevelChannel, nil
	case LevelChannel, LevelCampaign, LevelAdGroup:
		return GroupLevel(value), nil
	}
	return "", fmt.Errorf("nível de agrupamento inválido: %s", value)
}

// GroupMetrics é uma linha do drill-down com o comparativo do período anterior
type GroupMetrics struct {
	Key      string      `json:"key"`
	ID       string      `json:"id,omitempty"`
	Name     string      `json:"name"`
	Color    string      `json:"color,omitempty"`
	Metrics  RateResult  `json:"metrics"`
	Previous *RateResult `json:"previous"`
}
