package enercast

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/enercast/enercast/timeseries"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineSeries charts the observed hourly consumption.
func LineSeries(s *timeseries.Series) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Hourly Consumption",
			},
		),
	)

	x := make([]int, 0, s.Len())
	lineData := make([]opts.LineData, 0, s.Len())
	for i, p := range s.Points {
		x = append(x, i)
		lineData = append(lineData, opts.LineData{Value: p.Consumption})
	}

	line.SetXAxis(x).
		AddSeries("Consumption", lineData)
	return line
}

// BarPredictions charts each algorithm's next-hour prediction alongside the
// blended estimate and its confidence bounds.
func BarPredictions(res *Result) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Next-Hour Predictions",
			},
		),
	)

	names := make([]string, 0, len(res.Predictions))
	for name := range res.Predictions {
		names = append(names, name)
	}
	sort.Strings(names)

	barData := make([]opts.BarData, 0, len(names)+3)
	labels := make([]string, 0, len(names)+3)
	for _, name := range names {
		labels = append(labels, name)
		barData = append(barData, opts.BarData{Value: res.Predictions[name]})
	}
	labels = append(labels, "ensemble", "lower", "upper")
	barData = append(barData,
		opts.BarData{Value: res.EnsemblePrediction},
		opts.BarData{Value: res.ConfidenceInterval.Lower},
		opts.BarData{Value: res.ConfidenceInterval.Upper},
	)

	bar.SetXAxis(labels).
		AddSeries("Prediction", barData)
	return bar
}

// PlotForecast renders the input series and the resulting ensemble forecast
// to an html file at path.
func PlotForecast(s *timeseries.Series, res *Result, path string) error {
	page := components.NewPage()
	page.AddCharts(
		LineSeries(s),
		BarPredictions(res),
	)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create plot file, %w", err)
	}
	defer file.Close()
	return page.Render(io.MultiWriter(file))
}
