package analyzing

import (
	"fmt"
	"math"
	"sort"

	"github.com/vfg2006/ad-report-analyzer/internal/domain"
)

const (
	// minStopHistoryDates é o histórico mínimo de datas para considerar parada de veiculação
	minStopHistoryDates = 3
	// minPastDailyConversions abaixo deste volume a queda de CV não é avaliada
	minPastDailyConversions = 0.1
)

// DetectAlerts avalia cada canal sobre todo o seu histórico, sem depender do período
// selecionado. As três verificações são independentes.
func DetectAlerts(ds *domain.Dataset, thresholds domain.AlertThresholds) []domain.Alert {
	alerts := make([]domain.Alert, 0)
	lastDate := ds.LastDate()
	if lastDate == "" {
		return alerts
	}

	byChannel := make(map[string][]domain.Row)
	for _, row := range ds.Rows {
		byChannel[row.Channel] = append(byChannel[row.Channel], row)
	}

	for _, channel := range ds.Channels {
		rows := byChannel[channel]
		dates := distinctDates(rows)

		if thresholds.ZeroCostCheck {
			if alert, ok := stopAlert(channel, rows, dates, lastDate); ok {
				alerts = append(alerts, alert)
			}
		}

		alerts = append(alerts, trendAlerts(channel, rows, dates, thresholds)...)
	}

	return alerts
}

func stopAlert(channel string, rows []domain.Row, dates []string, lastDate string) (domain.Alert, bool) {
	if len(dates) <= minStopHistoryDates {
		return domain.Alert{}, false
	}

	var cost float64
	for _, row := range rows {
		if row.Date == lastDate {
			cost += row.Cost
		}
	}
	if cost != 0 {
		return domain.Alert{}, false
	}

	return domain.Alert{
		Type:     domain.AlertStop,
		Severity: domain.SeverityCritical,
		Channel:  channel,
		Message:  fmt.Sprintf("Custo de veiculação zerado na última data (%s)", lastDate),
	}, true
}

func trendAlerts(channel string, rows []domain.Row, dates []string, thresholds domain.AlertThresholds) []domain.Alert {
	window, lookback := thresholds.TrendWindow, thresholds.TrendLookback
	if window <= 0 || lookback < 0 || len(dates) < window+lookback {
		return nil
	}

	pastEnd := len(dates) - lookback
	if pastEnd < window {
		return nil
	}

	recent := Aggregate(rowsOnDates(rows, dates[len(dates)-window:], nil))
	past := Aggregate(rowsOnDates(rows, dates[pastEnd-window:pastEnd], nil))

	recentConversions := recent.TierA + recent.TierB
	pastConversions := past.TierA + past.TierB

	alerts := make([]domain.Alert, 0)

	recentDaily := recentConversions / float64(window)
	pastDaily := pastConversions / float64(window)
	if pastDaily > minPastDailyConversions {
		change := (recentDaily - pastDaily) / pastDaily
		if change <= thresholds.CVDeclineRate {
			alerts = append(alerts, domain.Alert{
				Type:     domain.AlertCVDecline,
				Severity: domain.SeverityWarning,
				Channel:  channel,
				Message:  fmt.Sprintf("Média de CV em %d dias caiu %.0f%%", window, math.Abs(change*100)),
				Detail:   fmt.Sprintf("%.1f/dia → %.1f/dia", pastDaily, recentDaily),
				Change:   &change,
			})
		}
	}

	recentCPA := SafeCPA(recent.Cost, recentConversions)
	pastCPA := SafeCPA(past.Cost, pastConversions)
	if recentCPA != nil && pastCPA != nil && *pastCPA > 0 {
		change := (*recentCPA - *pastCPA) / *pastCPA
		if change >= thresholds.CPAIncreaseRate {
			alerts = append(alerts, domain.Alert{
				Type:     domain.AlertCPAIncrease,
				Severity: domain.SeverityWarning,
				Channel:  channel,
				Message:  fmt.Sprintf("CPA médio em %d dias piorou %.0f%%", window, change*100),
				Detail:   fmt.Sprintf("%.0f → %.0f", *pastCPA, *recentCPA),
				Change:   &change,
			})
		}
	}

	return alerts
}

func distinctDates(rows []domain.Row) []string {
	set := make(map[string]struct{})
	for _, row := range rows {
		set[row.Date] = struct{}{}
	}
	dates := make([]string, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
