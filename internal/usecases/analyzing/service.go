package analyzing

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-report-analyzer/infrastructure/repository"
	"github.com/vfg2006/ad-report-analyzer/internal/domain"
	"github.com/vfg2006/ad-report-analyzer/internal/metrics"
	"github.com/vfg2006/ad-report-analyzer/pkg/apiErrors"
	"github.com/vfg2006/ad-report-analyzer/pkg/utils"
)

const (
	weekDates         = 7
	channelDailyDates = 14
	DefaultTrendTopN  = 7
)

type Analyzer interface {
	Load(records []map[string]string, origin string) (*domain.DatasetInfo, error)
	Dataset() (*domain.DatasetInfo, error)
	Summary(selection domain.PeriodSelection) (*domain.Summary, error)
	Channels(selection domain.PeriodSelection) ([]domain.GroupMetrics, error)
	Campaigns(selection domain.PeriodSelection, channel string) ([]domain.GroupMetrics, error)
	AdGroups(selection domain.PeriodSelection, channel, campaignKey string) ([]domain.GroupMetrics, error)
	Trend(selection domain.PeriodSelection, query domain.TrendQuery) (*domain.TrendReport, error)
	DailyTable(selection domain.PeriodSelection, filter domain.DailyTableFilter) (*domain.DailyTable, error)
	Forecast() (*domain.ForecastReport, error)
	Alerts() ([]domain.Alert, error)
	ChannelReport(selection domain.PeriodSelection, channel string) (*domain.ChannelReport, error)
}

type Service struct {
	repository repository.DatasetRepository
	rules      *domain.Rules
	normalizer *Normalizer
	thresholds domain.AlertThresholds
	trendTopN  int
	cache      *viewCache
	metrics    *metrics.Metrics
}

type Option func(*Service)

// WithCache ativa o cache de visões derivadas
func WithCache() Option {
	return func(s *Service) {
		s.cache = newViewCache()
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTrendTopN define quantos grupos a tendência exibe quando não há seleção explícita
func WithTrendTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.trendTopN = n
		}
	}
}

func NewService(
	datasetRepository repository.DatasetRepository,
	rules *domain.Rules,
	thresholds domain.AlertThresholds,
	opts ...Option,
) *Service {
	s := &Service{
		repository: datasetRepository,
		rules:      rules,
		normalizer: NewNormalizer(rules),
		thresholds: thresholds,
		trendTopN:  DefaultTrendTopN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load normaliza os registros brutos e substitui o dataset atual por inteiro.
// Uma carga sem nenhuma linha válida é rejeitada e mantém o dataset anterior.
func (s *Service) Load(records []map[string]string, origin string) (*domain.DatasetInfo, error) {
	rows, dropped := s.normalizer.Normalize(records)
	if len(rows) == 0 {
		err := NewAnalysisError(ErrEmptyDataset, apiErrors.ErrEmptyDataset, "Nenhum registro com data válida foi encontrado")
		s.metrics.RecordDatasetLoad(origin, 0, dropped, err)
		logrus.WithFields(logrus.Fields{
			"origin":  origin,
			"records": len(records),
			"dropped": dropped,
		}).Warn("Carga de dataset rejeitada")
		return nil, err
	}

	id, err := utils.NewDatasetID()
	if err != nil {
		s.metrics.RecordDatasetLoad(origin, 0, dropped, err)
		return nil, NewAnalysisError(err, apiErrors.ErrInternalServer, "Falha ao gerar identificador do dataset")
	}

	dataset := domain.NewDataset(id, origin, rows, dropped)
	s.repository.Replace(dataset)
	if s.cache != nil {
		s.cache.reset()
	}
	s.metrics.RecordDatasetLoad(origin, len(rows), dropped, nil)

	logrus.WithFields(logrus.Fields{
		"dataset_id": id,
		"origin":     origin,
		"rows":       len(rows),
		"dropped":    dropped,
		"first_date": dataset.FirstDate(),
		"last_date":  dataset.LastDate(),
		"channels":   len(dataset.Channels),
	}).Info("Dataset carregado")

	return dataset.Info(), nil
}

func (s *Service) Dataset() (*domain.DatasetInfo, error) {
	ds, err := s.current()
	if err != nil {
		return nil, err
	}
	return ds.Info(), nil
}

func (s *Service) Summary(selection domain.PeriodSelection) (*domain.Summary, error) {
	ds, err := s.current()
	if err != nil {
		return nil, err
	}

	summary := cached(s, ds, domain.JoinCacheKey("summary", selection.CacheKey()), func() *domain.Summary {
		set := ResolvePeriod(ds.Dates, selection)
		current := Summarize(rowsOnDates(ds.Rows, set.Dates, nil))

		result := &domain.Summary{
			Period:     selection,
			FirstDate:  set.First(),
			LastDate:   set.Last(),
			Days:       len(set.Dates),
			Current:    current,
			SubMetrics: s.subMetricValues(current.AggregateResult),
		}
		if len(set.Previous) > 0 {
			previous := Summarize(rowsOnDates(ds.Rows, set.Previous, nil))
			result.Previous = &previous
			result.Changes = rateChanges(current, previous)
		}
		result.RecentWeek, result.PreviousWeek = weekComparison(ds.Rows, set.Dates, nil)
		return result
	})
	return summary, nil
}

func (s *Service) Channels(selection domain.PeriodSelection) ([]domain.GroupMetrics, error) {
	ds, err := s.current()
	if err != nil {
		return nil, err
	}

	channels := cached(s, ds, domain.JoinCacheKey("channels", selection.CacheKey()), func() []domain.GroupMetrics {
		items := ChannelBreakdown(ds, ResolvePeriod(ds.Dates, selection))
		for i := range items {
			items[i].Color = s.rules.ChannelColor(items[i].Name)
		}
		return items
	})
	return channels, nil
}

func (s *Service) Campaigns(selection domain.PeriodSelection, channel string) ([]domain.GroupMetrics, error) {
	ds, err := s.currentWithChannel(channel)
	if err != nil {
		return nil, err
	}

	campaigns := cached(s, ds, domain.JoinCacheKey("campaigns", channel, selection.CacheKey()), func() []domain.GroupMetrics {
		return CampaignBreakdown(ds, ResolvePeriod(ds.Dates, selection), channel)
	})
	return campaigns, nil
}

func (s *Service) AdGroups(selection domain.PeriodSelection, channel, campaignKey string) ([]domain.GroupMetrics, error) {
	ds, err := s.currentWithChannel(channel)
	if err != nil {
		return nil, err
	}

	adGroups := cached(s, ds, domain.JoinCacheKey("adgroups", channel, campaignKey, selection.CacheKey()), func() []domain.GroupMetrics {
		return AdGroupBreakdown(ds, ResolvePeriod(ds.Dates, selection), channel, campaignKey)
	})
	return adGroups, nil
}

func (s *Service) Trend(selection domain.PeriodSelection, query domain.TrendQuery) (*domain.TrendReport, error) {
	ds, err := s.current()
	if err != nil {
		return nil, err
	}
	if query.MovingAverage != 0 {
		if !MovingAverageWindows[query.MovingAverage] {
			return nil, NewAnalysisError(ErrInvalidQuery, apiErrors.ErrInvalidRequest, "Janela de média móvel deve ser 7 ou 14")
		}
		if query.Granularity != domain.GranularityDaily {
			return nil, NewAnalysisError(ErrInvalidQuery, apiErrors.ErrInvalidRequest, "Média móvel disponível apenas na granularidade diária")
		}
	}
	if query.TopN <= 0 {
		query.TopN = s.trendTopN
	}

	report := cached(s, ds, domain.JoinCacheKey("trend", query.CacheKey(), selection.CacheKey()), func() *domain.TrendReport {
		return BuildTrend(ds, ResolvePeriod(ds.Dates, selection), query)
	})
	return report, nil
}

func (s *Service) DailyTable(selection domain.PeriodSelection, filter domain.DailyTableFilter) (*domain.DailyTable, error) {
	ds, err := s.current()
	if err != nil {
		return nil, err
	}

	key := domain.JoinCacheKey("daily", filter.Channel, filter.Campaign, filter.AdGroup, selection.CacheKey())
	table := cached(s, ds, key, func() *domain.DailyTable {
		set := ResolvePeriod(ds.Dates, selection)
		rows := rowsOnDates(ds.Rows, set.Dates, func(row domain.Row) bool {
			return (filter.Channel == "" || row.Channel == filter.Channel) &&
				(filter.Campaign == "" || row.CampaignName == filter.Campaign) &&
				(filter.AdGroup == "" || row.AdGroupName == filter.AdGroup)
		})

		byDate := make(map[string][]domain.Row)
		for _, row := range rows {
			byDate[row.Date] = append(byDate[row.Date], row)
		}

		table := &domain.DailyTable{
			Filter: filter,
			Rows:   make([]domain.DailyTableRow, 0, len(set.Dates)),
			Total:  Summarize(rows),
		}
		for _, date := range set.Dates {
			table.Rows = append(table.Rows, domain.DailyTableRow{
				Date:    date,
				Metrics: Summarize(byDate[date]),
			})
		}
		return table
	})
	return table, nil
}

func (s *Service) Forecast() (*domain.ForecastReport, error) {
	ds, err := s.current()
	if err != nil {
		return nil, err
	}

	report := cached(s, ds, "forecast", func() *domain.ForecastReport {
		return Forecast(ds)
	})
	if report == nil {
		return nil, NewAnalysisError(ErrForecastUnavailable, apiErrors.ErrInvalidFormat, "Última data do dataset não está no formato AAAA-MM-DD")
	}
	return report, nil
}

func (s *Service) Alerts() ([]domain.Alert, error) {
	ds, err := s.current()
	if err != nil {
		return nil, err
	}

	alerts := cached(s, ds, "alerts", func() []domain.Alert {
		return DetectAlerts(ds, s.thresholds)
	})

	counts := make(map[[2]string]int)
	for _, alert := range alerts {
		counts[[2]string{string(alert.Type), alert.Channel}]++
	}
	s.metrics.SetActiveAlerts(counts)

	return alerts, nil
}

// ChannelReport reúne os números de um canal usados na narrativa
func (s *Service) ChannelReport(selection domain.PeriodSelection, channel string) (*domain.ChannelReport, error) {
	ds, err := s.currentWithChannel(channel)
	if err != nil {
		return nil, err
	}

	alerts, err := s.Alerts()
	if err != nil {
		return nil, err
	}

	report := cached(s, ds, domain.JoinCacheKey("report", channel, selection.CacheKey()), func() *domain.ChannelReport {
		set := ResolvePeriod(ds.Dates, selection)
		inChannel := func(row domain.Row) bool { return row.Channel == channel }
		current := rowsOnDates(ds.Rows, set.Dates, inChannel)
		previous := rowsOnDates(ds.Rows, set.Previous, inChannel)

		report := &domain.ChannelReport{
			Channel:    channel,
			FirstDate:  set.First(),
			LastDate:   set.Last(),
			Days:       len(set.Dates),
			Current:    Summarize(current),
			Campaigns:  campaignComparisons(current, previous),
			Daily:      make([]domain.DailyPoint, 0, channelDailyDates),
			Alerts:     make([]domain.Alert, 0),
			TierALabel: s.rules.Conversions.TierA.Label,
			TierBLabel: s.rules.Conversions.TierB.Label,
		}
		if len(previous) > 0 {
			prev := Summarize(previous)
			report.Previous = &prev
		}
		report.RecentWeek, report.PreviousWeek = weekComparison(ds.Rows, set.Dates, inChannel)

		for _, date := range tail(set.Dates, channelDailyDates) {
			report.Daily = append(report.Daily, domain.DailyPoint{
				Date:    date,
				Metrics: Summarize(rowsOnDates(current, []string{date}, nil)),
			})
		}
		for _, alert := range alerts {
			if alert.Channel == channel {
				report.Alerts = append(report.Alerts, alert)
			}
		}
		return report
	})
	return report, nil
}

func (s *Service) current() (*domain.Dataset, error) {
	ds := s.repository.Current()
	if ds == nil {
		return nil, NewAnalysisError(ErrNoDataset, apiErrors.ErrNoDataset, "Carregue um arquivo de dados antes de consultar")
	}
	return ds, nil
}

func (s *Service) currentWithChannel(channel string) (*domain.Dataset, error) {
	ds, err := s.current()
	if err != nil {
		return nil, err
	}
	idx := sort.SearchStrings(ds.Channels, channel)
	if idx >= len(ds.Channels) || ds.Channels[idx] != channel {
		return nil, NewAnalysisError(ErrChannelNotFound, apiErrors.ErrChannelNotFound, channel)
	}
	return ds, nil
}

func (s *Service) subMetricValues(agg domain.AggregateResult) []domain.SubMetricValue {
	groups := []domain.ConversionGroup{
		s.rules.Conversions.TierA,
		s.rules.Conversions.TierB,
		s.rules.Conversions.Other,
	}

	values := make([]domain.SubMetricValue, 0)
	for _, group := range groups {
		for _, metric := range group.Metrics {
			values = append(values, domain.SubMetricValue{
				Group: group.Label,
				Field: metric.Field,
				Label: metric.Label,
				Value: agg.SubMetrics[metric.Field],
			})
		}
	}
	return values
}

// cached calcula a visão ou a devolve do cache quando ele está ativo.
// O cache é invalidado pela troca do dataset (id diferente).
func cached[T any](s *Service, ds *domain.Dataset, key string, compute func() T) T {
	started := time.Now()
	operation := key
	for i, c := range key {
		if c == ':' {
			operation = key[:i]
			break
		}
	}

	if s.cache == nil {
		value := compute()
		s.metrics.ObserveAnalysis(operation, started)
		return value
	}

	if value, ok := s.cache.get(ds.ID, key); ok {
		s.metrics.RecordCacheLookup(true)
		return value.(T)
	}

	s.metrics.RecordCacheLookup(false)
	value := compute()
	s.cache.put(ds.ID, key, value)
	s.metrics.ObserveAnalysis(operation, started)
	return value
}

// weekComparison compara as últimas 7 datas selecionadas com as 7 anteriores dentro da seleção
func weekComparison(rows []domain.Row, dates []string, keep func(domain.Row) bool) (domain.RateResult, *domain.RateResult) {
	recent := tail(dates, weekDates)
	recentMetrics := Summarize(rowsOnDates(rows, recent, keep))

	olderEnd := len(dates) - len(recent)
	if olderEnd <= 0 {
		return recentMetrics, nil
	}
	olderStart := olderEnd - weekDates
	if olderStart < 0 {
		olderStart = 0
	}
	previous := Summarize(rowsOnDates(rows, dates[olderStart:olderEnd], keep))
	return recentMetrics, &previous
}

// campaignComparisons agrupa as campanhas do canal por nome, com o período anterior
func campaignComparisons(current, previous []domain.Row) []domain.CampaignComparison {
	byName := make(map[string][]domain.Row)
	names := make([]string, 0)
	for _, row := range current {
		name := groupName(row, domain.LevelCampaign)
		if _, ok := byName[name]; !ok {
			names = append(names, name)
		}
		byName[name] = append(byName[name], row)
	}

	prevByName := make(map[string][]domain.Row)
	for _, row := range previous {
		name := groupName(row, domain.LevelCampaign)
		prevByName[name] = append(prevByName[name], row)
	}

	comparisons := make([]domain.CampaignComparison, 0, len(names))
	for _, name := range names {
		item := domain.CampaignComparison{
			Name:    name,
			Metrics: Summarize(byName[name]),
		}
		if prevRows := prevByName[name]; len(prevRows) > 0 {
			prev := Summarize(prevRows)
			item.Previous = &prev
		}
		comparisons = append(comparisons, item)
	}

	sort.SliceStable(comparisons, func(i, j int) bool {
		if comparisons[i].Metrics.Cost != comparisons[j].Metrics.Cost {
			return comparisons[i].Metrics.Cost > comparisons[j].Metrics.Cost
		}
		return comparisons[i].Name < comparisons[j].Name
	})
	return comparisons
}

// rateChanges calcula a variação percentual das principais métricas entre os períodos
func rateChanges(current, previous domain.RateResult) map[string]*float64 {
	return map[string]*float64{
		"cost":        PctChange(current.Cost, previous.Cost),
		"impressions": PctChange(current.Impressions, previous.Impressions),
		"clicks":      PctChange(current.Clicks, previous.Clicks),
		"ctr":         PctChange(current.CTR, previous.CTR),
		"cvr":         PctChange(current.CVR, previous.CVR),
		"cpc":         PctChange(current.CPC, previous.CPC),
		"cpm":         PctChange(current.CPM, previous.CPM),
		"total":       PctChange(current.Total, previous.Total),
		"tier_a":      PctChange(current.TierA, previous.TierA),
		"tier_b":      PctChange(current.TierB, previous.TierB),
		"cpa":         PctChangePtr(current.CPA, previous.CPA),
		"cpa_tier_a":  PctChangePtr(current.CPATierA, previous.CPATierA),
		"cpa_tier_b":  PctChangePtr(current.CPATierB, previous.CPATierB),
	}
}
