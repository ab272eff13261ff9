package forecast

import (
	"testing"

	"github.com/enercast/enercast/timeseries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestARIMA(t *testing.T) {
	testData := map[string]struct {
		y        []float64
		expected float64
	}{
		"short series mean": {
			y:        []float64{8},
			expected: 8,
		},
		"accelerating series": {
			// diffs 1,2,3,4 so the AR term adds 0.5*4
			y:        []float64{1, 2, 4, 7, 11},
			expected: 13,
		},
		"constant": {
			y:        []float64{5, 5, 5, 5, 5},
			expected: 5,
		},
		"floor clamp": {
			// diffs -2,-3,-4 predict below zero
			y:        []float64{10, 8, 5, 1},
			expected: 0,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := NewARIMA().Forecast(newTestSeries(t, td.y))
			require.Nil(t, err)
			assert.InDelta(t, td.expected, res.Prediction, 1e-9)
		})
	}
}

func TestARIMAEmptySeries(t *testing.T) {
	_, err := NewARIMA().Forecast(&timeseries.Series{})
	assert.ErrorIs(t, err, ErrNoSeries)
}

func TestARIMAHigherOrder(t *testing.T) {
	// double differencing of 3,6,10,15 leaves 1,1 and geometric AR weights
	// contribute 0.5*1 + 0.25*1
	a := &ARIMA{P: 2, D: 2, Q: 2}
	res, err := a.Forecast(newTestSeries(t, []float64{3, 6, 10, 15}))
	require.Nil(t, err)
	assert.InDelta(t, 15.75, res.Prediction, 1e-9)
}
