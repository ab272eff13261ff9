// Package enercast blends six statistical forecasters into a single
// next-hour energy consumption estimate with an uncertainty band derived
// from cross-method disagreement.
package enercast

import (
	"errors"
	"fmt"

	"github.com/enercast/enercast/forecast"
	"github.com/enercast/enercast/timeseries"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrInsufficientData = errors.New("insufficient data points in series")
	ErrMissingWeight    = errors.New("no weight configured for forecaster")
)

// Ensemble runs a fixed ordered list of forecasters over the same series and
// combines their predictions with the configured weights. It holds no state
// between calls and is safe for concurrent use.
type Ensemble struct {
	opt         *Options
	forecasters []forecast.Forecaster
}

// New creates an ensemble over the six standard forecasters using the
// provided options. If no options are provided a default is used.
func New(opt *Options) (*Ensemble, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, fmt.Errorf("unable to validate ensemble options, %w", err)
	}

	forecasters := []forecast.Forecaster{
		forecast.NewMovingAverage(),
		forecast.NewExponentialSmoothing(),
		forecast.NewHoltWinters(),
		forecast.NewLinearRegression(),
		forecast.NewSeasonalDecomposition(),
		forecast.NewARIMA(),
	}
	for _, fc := range forecasters {
		if _, exists := opt.Weights[fc.Name()]; !exists {
			return nil, fmt.Errorf("%s, %w", fc.Name(), ErrMissingWeight)
		}
	}

	return &Ensemble{
		opt:         opt,
		forecasters: forecasters,
	}, nil
}

// Forecasters returns the algorithm names in run order.
func (e *Ensemble) Forecasters() []string {
	names := make([]string, 0, len(e.forecasters))
	for _, fc := range e.forecasters {
		names = append(names, fc.Name())
	}
	return names
}

// Weights returns a copy of the configured blending weights.
func (e *Ensemble) Weights() map[string]float64 {
	weights := make(map[string]float64, len(e.opt.Weights))
	for name, w := range e.opt.Weights {
		weights[name] = w
	}
	return weights
}

// Forecast runs every forecaster over the series and blends the predictions.
// Fails with ErrInsufficientData when the series carries fewer points than
// the configured minimum.
func (e *Ensemble) Forecast(s *timeseries.Series) (*Result, error) {
	if s.Len() < e.opt.MinObservations {
		return nil, fmt.Errorf(
			"need at least %d points, got %d, %w",
			e.opt.MinObservations, s.Len(), ErrInsufficientData,
		)
	}

	predictions := make(map[string]float64, len(e.forecasters))
	raw := make([]float64, 0, len(e.forecasters))
	blended := 0.0

	var regression *forecast.RegressionDetails
	var seasonal *forecast.SeasonalDetails

	// iterate the fixed forecaster order so the blended sum is deterministic
	for _, fc := range e.forecasters {
		res, err := fc.Forecast(s)
		if err != nil {
			return nil, fmt.Errorf("unable to forecast with %s, %w", fc.Name(), err)
		}

		predictions[fc.Name()] = res.Prediction
		raw = append(raw, res.Prediction)
		blended += e.opt.Weights[fc.Name()] * res.Prediction

		if res.Regression != nil {
			regression = res.Regression
		}
		if res.Seasonal != nil {
			seasonal = res.Seasonal
		}
	}

	variance := stat.PopStdDev(raw, nil)

	return &Result{
		EnsemblePrediction: blended,
		Predictions:        predictions,
		ConfidenceInterval: Interval{
			Lower: blended - e.opt.Zscore*variance,
			Upper: blended + e.opt.Zscore*variance,
		},
		PredictionVariance: variance,
		Weights:            e.Weights(),
		Regression:         regression,
		Seasonal:           seasonal,
	}, nil
}
