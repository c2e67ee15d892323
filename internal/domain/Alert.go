package domain

// AlertType identifica a regra que disparou o alerta
type AlertType string

const (
	AlertStop        AlertType = "stop"
	AlertCVDecline   AlertType = "cv_decline"
	AlertCPAIncrease AlertType = "cpa_increase"
)

// AlertSeverity é a gravidade do alerta
type AlertSeverity string

const (
	SeverityCritical AlertSeverity = "critical"
	SeverityWarning  AlertSeverity = "warning"
)

// Alert é recalculado a cada avaliação e nunca persistido
type Alert struct {
	Type     AlertType     `json:"type"`
	Severity AlertSeverity `json:"severity"`
	Channel  string        `json:"channel"`
	Message  string        `json:"message"`
	Detail   string        `json:"detail,omitempty"`
	Change   *float64      `json:"change,omitempty"`
}

// AlertThresholds são os limiares configurados do detector
type AlertThresholds struct {
	TrendWindow     int     `json:"trend_window"`
	TrendLookback   int     `json:"trend_lookback"`
	CVDeclineRate   float64 `json:"cv_decline_rate"`
	CPAIncreaseRate float64 `json:"cpa_increase_rate"`
	ZeroCostCheck   bool    `json:"zero_cost_check"`
}

// DefaultAlertThresholds devolve os limiares padrão
func DefaultAlertThresholds() AlertThresholds {
	return AlertThresholds{
		TrendWindow:     7,
		TrendLookback:   14,
		CVDeclineRate:   -0.20,
		CPAIncreaseRate: 0.20,
		ZeroCostCheck:   true,
	}
}
