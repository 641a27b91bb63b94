package report

import (
	"bytes"
	"fmt"

	"aggregator/internal/aggregation"

	"github.com/wcharczuk/go-chart/v2"
)

const (
	chartWidth  = 800
	chartHeight = 400
)

// SpendingChartPNG draws one bar of debits per month.
func SpendingChartPNG(months []aggregation.MonthSpending) ([]byte, error) {
	if len(months) == 0 {
		return nil, ErrNoData
	}
	var bars []chart.Value
	peak := 0.0
	for _, m := range months {
		value := m.Debits.InexactFloat64()
		peak = max(peak, value)
		bars = append(bars, chart.Value{
			Label: m.Month,
			Value: value,
		})
	}
	if peak == 0 {
		peak = 1
	}

	barChart := chart.BarChart{
		Title: "Monthly spending",
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: max(10, chartWidth/(2*len(bars)+2)),
		Bars:     bars,
	}
	barChart.YAxis.Range = &chart.ContinuousRange{Min: 0, Max: peak * 1.1}
	barChart.YAxis.ValueFormatter = func(v interface{}) string {
		if vf, isFloat := v.(float64); isFloat {
			return fmt.Sprintf("%.0f", vf)
		}
		return ""
	}

	var buf bytes.Buffer
	if err := barChart.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
