package forecast

import (
	"github.com/enercast/enercast/timeseries"
	"gonum.org/v1/gonum/stat"
)

const DefaultMovingAverageWindow = 24

// MovingAverage forecasts the mean of the trailing window. Series shorter
// than the window fall back to the mean of the entire series.
type MovingAverage struct {
	Window int
}

func NewMovingAverage() *MovingAverage {
	return &MovingAverage{
		Window: DefaultMovingAverageWindow,
	}
}

func (m *MovingAverage) Name() string {
	return "moving_average"
}

func (m *MovingAverage) Forecast(s *timeseries.Series) (*Result, error) {
	if s.Len() == 0 {
		return nil, ErrNoSeries
	}
	window := m.Window
	if window <= 0 {
		window = DefaultMovingAverageWindow
	}

	y := s.Consumption()
	if len(y) > window {
		y = y[len(y)-window:]
	}
	return &Result{Prediction: clampFloor(stat.Mean(y, nil))}, nil
}
