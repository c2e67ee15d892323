package analyzing

import (
	"sort"

	"github.com/vfg2006/ad-report-analyzer/internal/domain"
)

// groupIdentity devolve chave, id e nome de uma linha para um nível de agrupamento
type groupIdentity func(row domain.Row) (key, id, name string)

func channelIdentity(row domain.Row) (string, string, string) {
	return row.Channel, "", row.Channel
}

func campaignIdentity(row domain.Row) (string, string, string) {
	return row.CampaignKey(), row.CampaignID, row.CampaignName
}

func adGroupIdentity(row domain.Row) (string, string, string) {
	return row.AdGroupKey(), row.AdGroupID, row.AdGroupName
}

// ChannelBreakdown agrega o período por canal com o comparativo do período anterior
func ChannelBreakdown(ds *domain.Dataset, set domain.DateSet) []domain.GroupMetrics {
	current := rowsOnDates(ds.Rows, set.Dates, nil)
	previous := rowsOnDates(ds.Rows, set.Previous, nil)
	return breakdown(current, previous, channelIdentity)
}

// CampaignBreakdown agrega as campanhas de um canal, chaveadas por id|nome
func CampaignBreakdown(ds *domain.Dataset, set domain.DateSet, channel string) []domain.GroupMetrics {
	inChannel := func(row domain.Row) bool { return row.Channel == channel }
	current := rowsOnDates(ds.Rows, set.Dates, inChannel)
	previous := rowsOnDates(ds.Rows, set.Previous, inChannel)
	return breakdown(current, previous, campaignIdentity)
}

// AdGroupBreakdown agrega os grupos de anúncios de uma campanha (chave id|nome) de um canal
func AdGroupBreakdown(ds *domain.Dataset, set domain.DateSet, channel, campaignKey string) []domain.GroupMetrics {
	inCampaign := func(row domain.Row) bool {
		return row.Channel == channel && row.CampaignKey() == campaignKey
	}
	current := rowsOnDates(ds.Rows, set.Dates, inCampaign)
	previous := rowsOnDates(ds.Rows, set.Previous, inCampaign)
	return breakdown(current, previous, adGroupIdentity)
}

func breakdown(current, previous []domain.Row, identity groupIdentity) []domain.GroupMetrics {
	type group struct {
		id, name string
		rows     []domain.Row
	}

	groups := make(map[string]*group)
	keys := make([]string, 0)
	for _, row := range current {
		key, id, name := identity(row)
		g, ok := groups[key]
		if !ok {
			g = &group{id: id, name: name}
			groups[key] = g
			keys = append(keys, key)
		}
		g.rows = append(g.rows, row)
	}

	previousByKey := make(map[string][]domain.Row)
	for _, row := range previous {
		key, _, _ := identity(row)
		previousByKey[key] = append(previousByKey[key], row)
	}

	result := make([]domain.GroupMetrics, 0, len(keys))
	for _, key := range keys {
		g := groups[key]
		item := domain.GroupMetrics{
			Key:     key,
			ID:      g.id,
			Name:    g.name,
			Metrics: Summarize(g.rows),
		}
		if prevRows := previousByKey[key]; len(prevRows) > 0 {
			prev := Summarize(prevRows)
			item.Previous = &prev
		}
		result = append(result, item)
	}

	sortByCostDesc(result)
	return result
}

// sortByCostDesc ordena por custo decrescente, desempatando pela chave
func sortByCostDesc(items []domain.GroupMetrics) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Metrics.Cost != items[j].Metrics.Cost {
			return items[i].Metrics.Cost > items[j].Metrics.Cost
		}
		return items[i].Key < items[j].Key
	})
}

// rowsOnDates filtra as linhas pelas datas e, opcionalmente, por um predicado
func rowsOnDates(rows []domain.Row, dates []string, keep func(domain.Row) bool) []domain.Row {
	if len(dates) == 0 {
		return nil
	}
	index := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		index[d] = struct{}{}
	}

	out := make([]domain.Row, 0)
	for _, row := range rows {
		if _, ok := index[row.Date]; !ok {
			continue
		}
		if keep != nil && !keep(row) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// groupName devolve o nome da linha no eixo de tendência escolhido
func groupName(row domain.Row, level domain.GroupLevel) string {
	var name string
	switch level {
	case domain.LevelCampaign:
		name = row.CampaignName
	case domain.LevelAdGroup:
		name = row.AdGroupName
	default:
		name = row.Channel
	}
	if name == "" {
		return domain.UnsetGroupName
	}
	return name
}

// filterTrendRows aplica os filtros de canal, campanha e seleção explícita da tendência
func filterTrendRows(rows []domain.Row, query domain.TrendQuery) []domain.Row {
	selected := make(map[string]struct{}, len(query.Selected))
	for _, name := range query.Selected {
		selected[name] = struct{}{}
	}

	out := make([]domain.Row, 0, len(rows))
	for _, row := range rows {
		if query.Channel != "" && row.Channel != query.Channel {
			continue
		}
		if query.Campaign != "" && row.CampaignName != query.Campaign {
			continue
		}
		if len(selected) > 0 {
			if _, ok := selected[groupName(row, query.Level)]; !ok {
				continue
			}
		}
		out = append(out, row)
	}
	return out
}

// trendGroups escolhe os grupos exibidos: a seleção explícita, todos os canais
// ou os N maiores por custo nos demais eixos
func trendGroups(rows []domain.Row, query domain.TrendQuery) []string {
	if len(query.Selected) > 0 {
		return append([]string{}, query.Selected...)
	}

	costs := make(map[string]float64)
	names := make([]string, 0)
	for _, row := range rows {
		name := groupName(row, query.Level)
		if _, ok := costs[name]; !ok {
			names = append(names, name)
		}
		costs[name] += row.Cost
	}

	sort.SliceStable(names, func(i, j int) bool {
		if costs[names[i]] != costs[names[j]] {
			return costs[names[i]] > costs[names[j]]
		}
		return names[i] < names[j]
	})

	if query.Level != domain.LevelChannel && query.TopN > 0 && len(names) > query.TopN {
		names = names[:query.TopN]
	}
	return names
}
