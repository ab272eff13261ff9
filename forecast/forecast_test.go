package forecast

import (
	"testing"

	"github.com/enercast/enercast/timeseries"
	"github.com/stretchr/testify/require"
)

// newTestSeries builds a series from consumption values with the calendar
// attributes advancing hourly from hour 0 on a Monday.
func newTestSeries(t *testing.T, y []float64) *timeseries.Series {
	t.Helper()
	points := make([]timeseries.Point, len(y))
	for i := range y {
		points[i] = timeseries.Point{
			Consumption: y[i],
			Hour:        i % 24,
			DayOfWeek:   (i / 24) % 7,
			DayOfYear:   1 + i/24,
			Month:       1,
			Temperature: 20,
			Humidity:    50,
		}
	}
	s, err := timeseries.NewSeries(points)
	require.Nil(t, err)
	return s
}

func constSeries(t *testing.T, n int, c float64) *timeseries.Series {
	t.Helper()
	y := make([]float64, n)
	for i := range y {
		y[i] = c
	}
	return newTestSeries(t, y)
}

func rampSeries(t *testing.T, n int) *timeseries.Series {
	t.Helper()
	y := make([]float64, n)
	for i := range y {
		y[i] = float64(i + 1)
	}
	return newTestSeries(t, y)
}
