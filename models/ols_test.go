package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestOLSOptionsValidate(t *testing.T) {
	testData := map[string]struct {
		opt      *OLSOptions
		expected *OLSOptions
	}{
		"nil": {nil, NewDefaultOLSOptions()},
		"valid": {
			&OLSOptions{
				FitIntercept: true,
			},
			&OLSOptions{
				FitIntercept: true,
			},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			opt, err := td.opt.Validate()
			require.Nil(t, err)
			assert.Equal(t, td.expected, opt)
		})
	}
}

func TestOLSRegression(t *testing.T) {
	tol := 1e-5
	testData := map[string]struct {
		x         [][]float64
		y         []float64
		opt       *OLSOptions
		intercept float64
		coef      []float64
	}{
		"ols model intercept": {
			x: [][]float64{
				{0, 0},
				{3, 5},
				{9, 20},
				{12, 6},
				{15, 10},
			},
			y:         []float64{2, 31, 109, 62, 87},
			intercept: 2.0,
			coef:      []float64{3.0, 4.0},
		},
		"ols model no intercept": {
			x: [][]float64{
				{1, 0, 0},
				{1, 3, 5},
				{1, 9, 20},
				{1, 12, 6},
				{1, 15, 10},
			},
			y: []float64{2, 31, 109, 62, 87},
			opt: &OLSOptions{
				FitIntercept: false,
			},
			intercept: 0.0,
			coef:      []float64{2.0, 3.0, 4.0},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			m := len(td.x)
			n := len(td.x[0])
			flat := make([]float64, 0, m*n)
			for _, row := range td.x {
				flat = append(flat, row...)
			}
			x := mat.NewDense(m, n, flat)
			y := mat.NewDense(m, 1, td.y)

			model, err := NewOLSRegression(td.opt)
			require.Nil(t, err)
			require.Nil(t, model.Fit(x, y))

			assert.InDelta(t, td.intercept, model.Intercept(), tol)
			require.Len(t, model.Coef(), len(td.coef))
			for i, c := range td.coef {
				assert.InDelta(t, c, model.Coef()[i], tol)
			}

			predicted, err := model.Predict(x)
			require.Nil(t, err)
			for i, v := range td.y {
				assert.InDelta(t, v, predicted[i], tol)
			}

			score, err := model.Score(x, y)
			require.Nil(t, err)
			assert.InDelta(t, 1.0, score, tol)
		})
	}
}

func TestOLSRegressionRankDeficient(t *testing.T) {
	// second column is constant and collinear with the intercept
	x := mat.NewDense(4, 2, []float64{
		0, 20,
		1, 20,
		2, 20,
		3, 20,
	})
	y := mat.NewDense(4, 1, []float64{10, 12, 14, 16})

	model, err := NewOLSRegression(nil)
	require.Nil(t, err)
	require.Nil(t, model.Fit(x, y))

	predicted, err := model.Predict(x)
	require.Nil(t, err)
	expected := []float64{10, 12, 14, 16}
	for i, v := range expected {
		assert.InDelta(t, v, predicted[i], 1e-8)
	}
}

func TestOLSRegressionErrors(t *testing.T) {
	x := mat.NewDense(3, 1, []float64{1, 2, 3})
	y := mat.NewDense(2, 1, []float64{1, 2})

	model, err := NewOLSRegression(nil)
	require.Nil(t, err)

	err = model.Fit(x, y)
	assert.ErrorIs(t, err, ErrTargetLenMismatch)

	assert.ErrorIs(t, model.Fit(nil, y), ErrNoTrainingMatrix)
	assert.ErrorIs(t, model.Fit(x, nil), ErrNoTargetMatrix)
}
