package forecast

import (
	"fmt"
	"math"

	"github.com/enercast/enercast/models"
	"github.com/enercast/enercast/timeseries"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// MinRegressionObservations is the smallest series a regression is fit on.
// Anything shorter falls back to the series mean with a fixed confidence.
const MinRegressionObservations = 10

const fallbackConfidence = 0.5

// LinearRegression forecasts with an ordinary least squares fit of
// consumption against the calendar and weather features, predicting on the
// last observed feature row with the hour advanced by one.
type LinearRegression struct {
	// NewModel returns the regression backend fit on each call. Defaults to
	// ordinary least squares.
	NewModel func() (models.Model, error)
}

func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}

func (l *LinearRegression) Name() string {
	return "linear_regression"
}

func (l *LinearRegression) Forecast(s *timeseries.Series) (*Result, error) {
	if s.Len() == 0 {
		return nil, ErrNoSeries
	}

	y := s.Consumption()
	if len(y) < MinRegressionObservations {
		mean := clampFloor(stat.Mean(y, nil))
		return &Result{
			Prediction: mean,
			Regression: &RegressionDetails{
				Prediction: mean,
				Confidence: fallbackConfidence,
			},
		}, nil
	}

	newModel := l.NewModel
	if newModel == nil {
		newModel = func() (models.Model, error) {
			return models.NewOLSRegression(nil)
		}
	}
	model, err := newModel()
	if err != nil {
		return nil, fmt.Errorf("unable to initialize regression model, %w", err)
	}

	x := s.FeatureMatrix()
	yMx := mat.NewDense(len(y), 1, y)
	if err := model.Fit(x, yMx); err != nil {
		return nil, fmt.Errorf("unable to fit regression model, %w", err)
	}

	// predict the next hour from the last observed feature row
	n, cols := x.Dims()
	next := mat.Row(nil, n-1, x)
	next[0] = math.Mod(next[0]+1, 24)

	predicted, err := model.Predict(mat.NewDense(1, cols, next))
	if err != nil {
		return nil, fmt.Errorf("unable to predict with regression model, %w", err)
	}

	confidence, err := model.Score(x, yMx)
	if err != nil {
		return nil, fmt.Errorf("unable to score regression model, %w", err)
	}
	if math.IsNaN(confidence) || math.IsInf(confidence, 0) {
		// a constant target leaves R² undefined
		confidence = 0
	}

	coef := model.Coef()
	importance := make(map[string]float64, cols)
	for i, label := range timeseries.FeatureLabels() {
		importance[label] = coef[i]
	}

	prediction := clampFloor(predicted[0])
	return &Result{
		Prediction: prediction,
		Regression: &RegressionDetails{
			Prediction:        prediction,
			Confidence:        confidence,
			FeatureImportance: importance,
		},
	}, nil
}
