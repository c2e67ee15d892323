package analyzing

import (
	"strings"

	"github.com/vfg2006/ad-report-analyzer/internal/domain"
)

// Classifier aplica a tabela ordenada de regras de canal.
// A tabela é copiada na criação e nunca alterada depois.
type Classifier struct {
	rules []domain.ClassificationRule
}

// NewClassifier cria o classificador com uma cópia normalizada das regras
func NewClassifier(rules []domain.ClassificationRule) *Classifier {
	normalized := make([]domain.ClassificationRule, 0, len(rules))
	for _, rule := range rules {
		normalized = append(normalized, rule.Normalized())
	}
	return &Classifier{rules: normalized}
}

// Classify devolve o rótulo do canal da linha. A primeira regra satisfeita vence;
// sem regra, cai no source em minúsculas ou no rótulo de não classificado.
func (c *Classifier) Classify(row domain.Row) string {
	source := strings.ToLower(row.Source)
	medium := strings.ToLower(row.Medium)
	campaign := strings.ToLower(row.Campaign)
	campaignName := strings.ToLower(row.CampaignName)

	for _, rule := range c.rules {
		if source != rule.Source {
			continue
		}
		if rule.Medium != "" && medium != rule.Medium {
			continue
		}
		if rule.HasKeywords() && !containsAny(campaign, rule.Campaign) && !containsAny(campaignName, rule.CampaignName) {
			continue
		}
		return rule.Name
	}

	if source == "" {
		return domain.UnclassifiedChannel
	}
	return source
}

func containsAny(value string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(value, keyword) {
			return true
		}
	}
	return false
}
