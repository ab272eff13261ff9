package forecast

import (
	"github.com/enercast/enercast/timeseries"
)

const DefaultSmoothingAlpha = 0.3

// ExponentialSmoothing forecasts the final value of a recursive weighted
// average where recent observations carry exponentially decaying influence.
type ExponentialSmoothing struct {
	Alpha float64
}

func NewExponentialSmoothing() *ExponentialSmoothing {
	return &ExponentialSmoothing{
		Alpha: DefaultSmoothingAlpha,
	}
}

func (e *ExponentialSmoothing) Name() string {
	return "exponential_smoothing"
}

func (e *ExponentialSmoothing) Forecast(s *timeseries.Series) (*Result, error) {
	if s.Len() == 0 {
		return &Result{Prediction: 0}, nil
	}

	y := s.Consumption()
	smoothed := y[0]
	for _, v := range y[1:] {
		smoothed = e.Alpha*v + (1-e.Alpha)*smoothed
	}
	return &Result{Prediction: clampFloor(smoothed)}, nil
}
