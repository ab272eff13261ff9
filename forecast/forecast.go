// Package forecast implements the univariate and multivariate next-hour
// forecasting algorithms. Every forecaster is a pure function of its input
// series, keeps no state between calls, and is safe for concurrent use.
package forecast

import (
	"errors"

	"github.com/enercast/enercast/timeseries"
)

var ErrNoSeries = errors.New("no input series")

// Forecaster produces a one-step forecast from an hourly consumption series.
type Forecaster interface {
	Name() string
	Forecast(s *timeseries.Series) (*Result, error)
}

// Result is a single algorithm's forecast. Predictions are floor-clamped at
// zero, consumption cannot go negative.
type Result struct {
	Prediction float64            `json:"prediction"`
	Regression *RegressionDetails `json:"regression_details,omitempty"`
	Seasonal   *SeasonalDetails   `json:"seasonal_details,omitempty"`
}

// RegressionDetails carries the linear regression fit metadata. Confidence is
// the in-sample R² of the fit.
type RegressionDetails struct {
	Prediction        float64            `json:"prediction"`
	Confidence        float64            `json:"confidence"`
	FeatureImportance map[string]float64 `json:"feature_importance,omitempty"`
}

// SeasonalDetails carries the seasonal decomposition metadata. Trend and
// Seasonal are the extrapolated next-hour components.
type SeasonalDetails struct {
	Prediction     float64 `json:"prediction"`
	Trend          float64 `json:"trend"`
	Seasonal       float64 `json:"seasonal"`
	TrendDirection string  `json:"trend_direction,omitempty"`
}

func clampFloor(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
