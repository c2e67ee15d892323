package analyzing

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-report-analyzer/internal/domain"
)

// dayRow cria uma linha já normalizada com o total igual à soma dos tiers
func dayRow(date, channel string, cost, tierA, tierB float64) domain.Row {
	return domain.Row{
		Date:    date,
		Channel: channel,
		Cost:    cost,
		TierA:   tierA,
		TierB:   tierB,
		Total:   tierA + tierB,
	}
}

// dateRange devolve n datas consecutivas a partir de start
func dateRange(t *testing.T, start string, n int) []string {
	t.Helper()
	day, err := time.Parse(dateLayout, start)
	require.NoError(t, err)

	dates := make([]string, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, day.AddDate(0, 0, i).Format(dateLayout))
	}
	return dates
}

func newTestDataset(rows ...domain.Row) *domain.Dataset {
	return domain.NewDataset(fmt.Sprintf("test-%d", len(rows)), "test", rows, 0)
}

func ptr(v float64) *float64 {
	return &v
}
