package analyzing

import (
	"sort"
	"time"

	"github.com/vfg2006/ad-report-analyzer/internal/domain"
)

const (
	monthLayout = "2006-01"
	last30Dates = 30
	last60Dates = 60
)

// ResolvePeriod transforma a seleção de período em datas concretas, a partir da
// lista ordenada de datas distintas do dataset, junto com o período anterior comparável.
func ResolvePeriod(allDates []string, selection domain.PeriodSelection) domain.DateSet {
	dates := selectDates(allDates, selection)
	return domain.DateSet{
		Dates:    dates,
		Previous: previousDates(allDates, dates),
	}
}

func selectDates(allDates []string, selection domain.PeriodSelection) []string {
	if len(allDates) == 0 {
		return []string{}
	}
	last := allDates[len(allDates)-1]

	switch selection.Mode {
	case domain.PeriodCustom:
		return filterDates(allDates, func(d string) bool {
			return (selection.From == "" || d >= selection.From) && (selection.To == "" || d <= selection.To)
		})
	case domain.PeriodYesterday:
		return []string{last}
	case domain.PeriodThisMonth:
		month := monthOf(last)
		return filterDates(allDates, func(d string) bool { return monthOf(d) == month })
	case domain.PeriodLastMonth:
		month := previousMonth(last)
		if month == "" {
			return []string{}
		}
		return filterDates(allDates, func(d string) bool { return monthOf(d) == month })
	case domain.PeriodAll:
		return append([]string{}, allDates...)
	case domain.PeriodLast60:
		return tail(allDates, last60Dates)
	default:
		return tail(allDates, last30Dates)
	}
}

// previousDates devolve as N datas imediatamente anteriores à primeira data selecionada
func previousDates(allDates, selected []string) []string {
	if len(selected) == 0 {
		return []string{}
	}
	idx := sort.SearchStrings(allDates, selected[0])
	start := idx - len(selected)
	if start < 0 {
		start = 0
	}
	return append([]string{}, allDates[start:idx]...)
}

func filterDates(dates []string, keep func(string) bool) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

func tail(dates []string, n int) []string {
	if len(dates) <= n {
		return append([]string{}, dates...)
	}
	return append([]string{}, dates[len(dates)-n:]...)
}

func monthOf(date string) string {
	if len(date) < len(monthLayout) {
		return date
	}
	return date[:len(monthLayout)]
}

func previousMonth(date string) string {
	month, err := time.Parse(monthLayout, monthOf(date))
	if err != nil {
		return ""
	}
	return month.AddDate(0, -1, 0).Format(monthLayout)
}
