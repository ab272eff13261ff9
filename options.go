package enercast

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidWeights = errors.New("algorithm weights must sum to 1")

const (
	// DefaultZscore spans the 95% band of a normal distribution.
	DefaultZscore = 1.96

	// DefaultMinObservations is the fewest points the combiner accepts.
	DefaultMinObservations = 10

	weightSumTolerance = 1e-9
)

// DefaultWeights returns the fixed blending weight per algorithm.
func DefaultWeights() map[string]float64 {
	return map[string]float64{
		"moving_average":         0.15,
		"exponential_smoothing":  0.20,
		"holt_winters":           0.25,
		"linear_regression":      0.20,
		"seasonal_decomposition": 0.15,
		"arima":                  0.05,
	}
}

// Options configures the ensemble combiner. Weights is injectable so tests
// and deployments can rebalance the blend.
type Options struct {
	Weights         map[string]float64 `json:"weights"`
	Zscore          float64            `json:"zscore"`
	MinObservations int                `json:"min_observations"`
}

func NewDefaultOptions() *Options {
	return &Options{
		Weights:         DefaultWeights(),
		Zscore:          DefaultZscore,
		MinObservations: DefaultMinObservations,
	}
}

func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}
	out := *o
	if out.Weights == nil {
		out.Weights = DefaultWeights()
	}
	if out.Zscore == 0 {
		out.Zscore = DefaultZscore
	}
	if out.MinObservations <= 0 {
		out.MinObservations = DefaultMinObservations
	}

	var sum float64
	for name, w := range out.Weights {
		if w < 0 {
			return nil, fmt.Errorf("negative weight %f for %s, %w", w, name, ErrInvalidWeights)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		return nil, fmt.Errorf("weights sum to %f, %w", sum, ErrInvalidWeights)
	}
	return &out, nil
}
