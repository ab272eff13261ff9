package forecast

import (
	"github.com/enercast/enercast/timeseries"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const DefaultSeasonalPeriod = 24

// SeasonalDecomposition splits the series into a boundary-clipped centered
// moving average trend and per-phase seasonal means, then extrapolates both
// one step ahead. Series shorter than three full periods fall back to the
// series mean with zero components.
type SeasonalDecomposition struct {
	Period int
}

func NewSeasonalDecomposition() *SeasonalDecomposition {
	return &SeasonalDecomposition{
		Period: DefaultSeasonalPeriod,
	}
}

func (sd *SeasonalDecomposition) Name() string {
	return "seasonal_decomposition"
}

func (sd *SeasonalDecomposition) Forecast(s *timeseries.Series) (*Result, error) {
	if s.Len() == 0 {
		return nil, ErrNoSeries
	}
	period := sd.Period
	if period <= 0 {
		period = DefaultSeasonalPeriod
	}

	y := s.Consumption()
	n := len(y)
	if n < 3*period {
		mean := clampFloor(stat.Mean(y, nil))
		return &Result{
			Prediction: mean,
			Seasonal: &SeasonalDetails{
				Prediction: mean,
			},
		}, nil
	}

	// centered moving average trend, window clipped at both boundaries
	trend := make([]float64, n)
	for i := 0; i < n; i++ {
		start := max(0, i-period/2)
		end := min(n, i+period/2+1)
		trend[i] = stat.Mean(y[start:end], nil)
	}

	detrended := make([]float64, n)
	floats.SubTo(detrended, y, trend)

	seasonal := make([]float64, period)
	counts := make([]int, period)
	for i := 0; i < n; i++ {
		seasonal[i%period] += detrended[i]
		counts[i%period]++
	}
	for i := 0; i < period; i++ {
		if counts[i] > 0 {
			seasonal[i] /= float64(counts[i])
		}
	}

	nextTrend := trend[n-1]
	if n > 1 {
		nextTrend += trend[n-1] - trend[n-2]
	}
	nextSeasonal := seasonal[n%period]

	direction := "decreasing"
	if n > 1 && trend[n-1] > trend[n-2] {
		direction = "increasing"
	}

	prediction := clampFloor(nextTrend + nextSeasonal)
	return &Result{
		Prediction: prediction,
		Seasonal: &SeasonalDetails{
			Prediction:     prediction,
			Trend:          nextTrend,
			Seasonal:       nextSeasonal,
			TrendDirection: direction,
		},
	}, nil
}
