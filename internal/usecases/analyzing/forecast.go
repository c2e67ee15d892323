package analyzing

import (
	"time"

	"github.com/vfg2006/ad-report-analyzer/internal/domain"
	"github.com/vfg2006/ad-report-analyzer/pkg/utils"
)

const (
	// forecastHistoryDates é a janela usada para a média por dia da semana
	forecastHistoryDates = 14
	// OverallForecastLabel rotula a projeção sem filtro de canal
	OverallForecastLabel = "Geral"
)

// Forecast projeta o fechamento do mês da última data do dataset, para o total e para
// cada canal. Não depende do período selecionado. Devolve nil se a última data for inválida.
func Forecast(ds *domain.Dataset) *domain.ForecastReport {
	lastDate := ds.LastDate()
	last, err := time.Parse(dateLayout, lastDate)
	if err != nil {
		return nil
	}

	month := monthOf(lastDate)
	prevMonth := previousMonth(lastDate)
	monthDates := filterDates(ds.Dates, func(d string) bool { return monthOf(d) == month })
	prevMonthDates := filterDates(ds.Dates, func(d string) bool { return monthOf(d) == prevMonth })
	history := tail(ds.Dates, forecastHistoryDates)

	firstOfNext := time.Date(last.Year(), last.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := firstOfNext.AddDate(0, 0, -1).Day()

	remaining := make([]time.Weekday, 0)
	for day := last.AddDate(0, 0, 1); day.Before(firstOfNext); day = day.AddDate(0, 0, 1) {
		remaining = append(remaining, day.Weekday())
	}

	scope := forecastScope{
		rows:           ds.Rows,
		monthDates:     monthDates,
		prevMonthDates: prevMonthDates,
		history:        history,
		remaining:      remaining,
		daysInMonth:    daysInMonth,
	}

	report := &domain.ForecastReport{
		Month:     month,
		Progress:  utils.Percent(float64(len(monthDates)), float64(daysInMonth)),
		Overall:   scope.project(OverallForecastLabel, nil),
		ByChannel: make([]domain.ForecastResult, 0, len(ds.Channels)),
	}
	for _, channel := range ds.Channels {
		channel := channel
		report.ByChannel = append(report.ByChannel, scope.project(channel, func(row domain.Row) bool {
			return row.Channel == channel
		}))
	}
	return report
}

type forecastScope struct {
	rows           []domain.Row
	monthDates     []string
	prevMonthDates []string
	history        []string
	remaining      []time.Weekday
	daysInMonth    int
}

func (s forecastScope) project(label string, keep func(domain.Row) bool) domain.ForecastResult {
	averages := s.weekdayAverages(keep)

	var projected domain.ForecastTotals
	for _, weekday := range s.remaining {
		projected.Add(averages[weekday])
	}

	actual := toForecastTotals(Aggregate(rowsOnDates(s.rows, s.monthDates, keep)))
	total := actual
	total.Add(projected)

	result := domain.ForecastResult{
		Label:         label,
		ActualDays:    len(s.monthDates),
		RemainingDays: len(s.remaining),
		TotalDays:     s.daysInMonth,
		Actual:        actual,
		Projected:     projected,
		Forecast:      total,
		CPA:           SafeCPA(total.Cost, total.Total),
	}

	if len(s.prevMonthDates) > 0 {
		prev := toForecastTotals(Aggregate(rowsOnDates(s.rows, s.prevMonthDates, keep)))
		result.PreviousMonth = &domain.MonthActuals{
			ForecastTotals: prev,
			CPA:            SafeCPA(prev.Cost, prev.Total),
		}
	}
	return result
}

// weekdayAverages calcula a média diária por dia da semana no histórico recente.
// Dias da semana sem observação ficam zerados.
func (s forecastScope) weekdayAverages(keep func(domain.Row) bool) [7]domain.ForecastTotals {
	var sums [7]domain.ForecastTotals
	var counts [7]int

	for _, date := range s.history {
		day, err := time.Parse(dateLayout, date)
		if err != nil {
			continue
		}
		weekday := day.Weekday()
		sums[weekday].Add(toForecastTotals(Aggregate(rowsOnDates(s.rows, []string{date}, keep))))
		counts[weekday]++
	}

	var averages [7]domain.ForecastTotals
	for weekday := range sums {
		if counts[weekday] == 0 {
			continue
		}
		n := float64(counts[weekday])
		averages[weekday] = domain.ForecastTotals{
			Cost:  sums[weekday].Cost / n,
			TierA: sums[weekday].TierA / n,
			TierB: sums[weekday].TierB / n,
			Total: sums[weekday].Total / n,
		}
	}
	return averages
}

func toForecastTotals(agg domain.AggregateResult) domain.ForecastTotals {
	return domain.ForecastTotals{
		Cost:  agg.Cost,
		TierA: agg.TierA,
		TierB: agg.TierB,
		Total: agg.Total,
	}
}
