package forecast

import (
	"github.com/enercast/enercast/timeseries"
	"gonum.org/v1/gonum/stat"
)

const (
	DefaultSeasonLength      = 24
	DefaultLevelSmoothing    = 0.3
	DefaultTrendSmoothing    = 0.1
	DefaultSeasonalSmoothing = 0.1
)

// HoltWinters forecasts with triple exponential smoothing tracking level,
// trend, and additive seasonal components. Series shorter than two full
// seasons delegate to plain exponential smoothing with the same alpha.
type HoltWinters struct {
	SeasonLength int
	Alpha        float64
	Beta         float64
	Gamma        float64
}

func NewHoltWinters() *HoltWinters {
	return &HoltWinters{
		SeasonLength: DefaultSeasonLength,
		Alpha:        DefaultLevelSmoothing,
		Beta:         DefaultTrendSmoothing,
		Gamma:        DefaultSeasonalSmoothing,
	}
}

func (h *HoltWinters) Name() string {
	return "holt_winters"
}

func (h *HoltWinters) Forecast(s *timeseries.Series) (*Result, error) {
	season := h.SeasonLength
	if season <= 0 {
		season = DefaultSeasonLength
	}
	if s.Len() < 2*season {
		es := &ExponentialSmoothing{Alpha: h.Alpha}
		return es.Forecast(s)
	}

	y := s.Consumption()
	level := stat.Mean(y[:season], nil)
	trend := (stat.Mean(y[season:2*season], nil) - level) / float64(season)
	seasonal := make([]float64, season)
	for i := 0; i < season; i++ {
		seasonal[i] = y[i] - level
	}

	for i := season; i < len(y); i++ {
		prevLevel := level
		level = h.Alpha*(y[i]-seasonal[i%season]) + (1-h.Alpha)*(level+trend)
		trend = h.Beta*(level-prevLevel) + (1-h.Beta)*trend
		seasonal[i%season] = h.Gamma*(y[i]-level) + (1-h.Gamma)*seasonal[i%season]
	}

	// the one-step forecast reads seasonal index 0, not the phase following
	// the series end
	return &Result{Prediction: clampFloor(level + trend + seasonal[0])}, nil
}
