package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoltWintersShortSeriesDelegates(t *testing.T) {
	// anything under two full seasons must match plain exponential smoothing
	for _, n := range []int{1, 10, 24, 47} {
		s := rampSeries(t, n)

		hw, err := NewHoltWinters().Forecast(s)
		require.Nil(t, err)

		es, err := NewExponentialSmoothing().Forecast(s)
		require.Nil(t, err)

		assert.Equal(t, es.Prediction, hw.Prediction, "series length %d", n)
	}
}

func TestHoltWintersConstant(t *testing.T) {
	res, err := NewHoltWinters().Forecast(constSeries(t, 72, 55))
	require.Nil(t, err)
	assert.InDelta(t, 55.0, res.Prediction, 1e-9)
}

func TestHoltWintersSeasonalPattern(t *testing.T) {
	// two-value daily cycle, enough for three full seasons
	y := make([]float64, 96)
	for i := range y {
		if i%24 < 12 {
			y[i] = 10
		} else {
			y[i] = 50
		}
	}
	res, err := NewHoltWinters().Forecast(newTestSeries(t, y))
	require.Nil(t, err)

	// the forecast reads seasonal index 0, the low half of the cycle
	assert.Greater(t, res.Prediction, 0.0)
	assert.Less(t, res.Prediction, 50.0)
}

func TestHoltWintersName(t *testing.T) {
	assert.Equal(t, "holt_winters", NewHoltWinters().Name())
}
