package forecast

import (
	"math"

	"github.com/enercast/enercast/stats"
	"github.com/enercast/enercast/timeseries"
	"gonum.org/v1/gonum/stat"
)

// ARIMA is a reduced autoregressive integrated moving average forecaster. The
// AR term uses fixed geometric weights 0.5^i over the differenced series
// rather than estimated coefficients.
type ARIMA struct {
	P int
	D int
	Q int
}

func NewARIMA() *ARIMA {
	return &ARIMA{
		P: 1,
		D: 1,
		Q: 1,
	}
}

func (a *ARIMA) Name() string {
	return "arima"
}

func (a *ARIMA) Forecast(s *timeseries.Series) (*Result, error) {
	if s.Len() == 0 {
		return nil, ErrNoSeries
	}

	y := s.Consumption()
	if len(y) < max(a.P, a.Q)+a.D {
		return &Result{Prediction: clampFloor(stat.Mean(y, nil))}, nil
	}

	diff := stats.Diff(y, a.D)
	if len(diff) < max(a.P, a.Q) {
		return &Result{Prediction: clampFloor(y[len(y)-1])}, nil
	}

	ar := 0.0
	for i := 1; i <= a.P && i <= len(diff); i++ {
		ar += math.Pow(0.5, float64(i)) * diff[len(diff)-i]
	}
	return &Result{Prediction: clampFloor(y[len(y)-1] + ar)}, nil
}
