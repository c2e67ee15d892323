package analyzing

import (
	"sort"
	"time"

	"github.com/vfg2006/ad-report-analyzer/internal/domain"
)

const dateLayout = "2006-01-02"

// BuildTrend monta a série diária das datas selecionadas, com as métricas gerais
// e as de cada grupo exibido, e reamostra para a granularidade pedida
func BuildTrend(ds *domain.Dataset, set domain.DateSet, query domain.TrendQuery) *domain.TrendReport {
	rows := filterTrendRows(rowsOnDates(ds.Rows, set.Dates, nil), query)
	groups := trendGroups(rows, query)

	shown := make(map[string]struct{}, len(groups))
	for _, name := range groups {
		shown[name] = struct{}{}
	}

	byDate := make(map[string][]domain.Row, len(set.Dates))
	for _, row := range rows {
		byDate[row.Date] = append(byDate[row.Date], row)
	}

	daily := make([]domain.TrendRow, 0, len(set.Dates))
	for _, date := range set.Dates {
		dayRows := byDate[date]
		perGroup := make(map[string][]domain.Row)
		for _, row := range dayRows {
			name := groupName(row, query.Level)
			if _, ok := shown[name]; ok {
				perGroup[name] = append(perGroup[name], row)
			}
		}

		groupMetrics := make(map[string]domain.RateResult, len(groups))
		for _, name := range groups {
			groupMetrics[name] = Summarize(perGroup[name])
		}

		daily = append(daily, domain.TrendRow{
			Date:    date,
			Label:   bucketLabel(date, domain.GranularityDaily),
			Metrics: Summarize(dayRows),
			Groups:  groupMetrics,
		})
	}

	series := Resample(daily, query.Granularity)
	if query.Granularity == domain.GranularityDaily && query.MovingAverage > 0 {
		series = ApplyMovingAverage(series, query.MovingAverage)
	}

	return &domain.TrendReport{
		Query:  query,
		Groups: groups,
		Rows:   series,
	}
}

// Resample agrupa a série diária em semanas (segunda-feira) ou meses.
// Os campos aditivos são somados e as taxas recalculadas a partir das somas.
func Resample(daily []domain.TrendRow, granularity domain.Granularity) []domain.TrendRow {
	if granularity != domain.GranularityWeekly && granularity != domain.GranularityMonthly {
		return daily
	}

	type bucket struct {
		overall domain.AggregateResult
		groups  map[string]domain.AggregateResult
	}

	buckets := make(map[string]*bucket)
	for _, row := range daily {
		key := bucketKey(row.Date, granularity)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{groups: make(map[string]domain.AggregateResult)}
			buckets[key] = b
		}
		b.overall.Add(row.Metrics.AggregateResult)
		for name, metrics := range row.Groups {
			agg := b.groups[name]
			agg.Add(metrics.AggregateResult)
			b.groups[name] = agg
		}
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make([]domain.TrendRow, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		groups := make(map[string]domain.RateResult, len(b.groups))
		for name, agg := range b.groups {
			groups[name] = DeriveRates(agg)
		}
		result = append(result, domain.TrendRow{
			Date:    key,
			Label:   bucketLabel(key, granularity),
			Metrics: DeriveRates(b.overall),
			Groups:  groups,
		})
	}
	return result
}

// bucketKey devolve a segunda-feira da semana (semanal) ou o ano-mês (mensal) da data
func bucketKey(date string, granularity domain.Granularity) string {
	if granularity == domain.GranularityMonthly {
		return monthOf(date)
	}
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset).Format(dateLayout)
}

// bucketLabel formata o rótulo do eixo: MM-DD para dia e semana, YYYY/MM para mês
func bucketLabel(key string, granularity domain.Granularity) string {
	if granularity == domain.GranularityMonthly {
		if len(key) < 7 {
			return key
		}
		return key[:4] + "/" + key[5:7]
	}
	if len(key) < 10 {
		return key
	}
	return key[5:10]
}
