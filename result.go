package enercast

import (
	"github.com/enercast/enercast/forecast"
)

// Interval is a symmetric uncertainty band around the ensemble prediction.
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Result is a blended next-hour forecast. PredictionVariance is the
// population standard deviation across the individual predictions, a
// cross-method disagreement measure rather than a statistical forecast-error
// estimate, and the confidence interval is derived from it.
type Result struct {
	EnsemblePrediction float64                     `json:"ensemble_prediction"`
	Predictions        map[string]float64          `json:"individual_predictions"`
	ConfidenceInterval Interval                    `json:"confidence_interval"`
	PredictionVariance float64                     `json:"prediction_variance"`
	Weights            map[string]float64          `json:"algorithm_weights"`
	Regression         *forecast.RegressionDetails `json:"linear_regression_details,omitempty"`
	Seasonal           *forecast.SeasonalDetails   `json:"seasonal_analysis,omitempty"`
}
