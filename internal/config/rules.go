package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-report-analyzer/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadRules lê o arquivo YAML de regras. Sem caminho, usa as regras embutidas.
// Seções ausentes no arquivo (columns, conversions, channels) mantêm o padrão.
func LoadRules(path string) (*domain.Rules, error) {
	rules := DefaultRules()
	if path == "" {
		logrus.Info("RULES_FILE não informado, usando regras de classificação padrão")
		return rules, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler arquivo de regras %s", path)
	}

	return ParseRules(content)
}

// ParseRules decodifica o YAML de regras sobre os padrões
func ParseRules(content []byte) (*domain.Rules, error) {
	var file struct {
		Columns     *domain.ColumnMapping       `yaml:"columns"`
		Conversions *domain.ConversionTaxonomy  `yaml:"conversions"`
		Channels    []domain.ClassificationRule `yaml:"channels"`
	}
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar arquivo de regras")
	}

	rules := DefaultRules()
	if file.Columns != nil {
		rules.Columns = *file.Columns
	}
	if file.Conversions != nil {
		rules.Conversions = *file.Conversions
	}
	if file.Channels != nil {
		rules.Channels = file.Channels
	}

	if err := validateRules(rules); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"channels":    len(rules.Channels),
		"sub_metrics": len(rules.Conversions.SubMetricFields()),
	}).Info("Regras de classificação carregadas")

	return rules, nil
}

func validateRules(rules *domain.Rules) error {
	if rules.Columns.Date == "" {
		return errors.New("a coluna de data (columns.date) é obrigatória")
	}
	for i, rule := range rules.Channels {
		if rule.Source == "" || rule.Name == "" {
			return errors.Errorf("regra de canal %d sem source ou name", i)
		}
	}
	return nil
}

// Thresholds converte a configuração de alertas para o domínio
func (a Alerts) Thresholds() domain.AlertThresholds {
	return domain.AlertThresholds{
		TrendWindow:     a.TrendWindow,
		TrendLookback:   a.TrendLookback,
		CVDeclineRate:   a.CVDeclineRate,
		CPAIncreaseRate: a.CPAIncreaseRate,
		ZeroCostCheck:   a.ZeroCostCheck,
	}
}
