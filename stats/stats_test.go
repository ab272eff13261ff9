package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	testData := map[string]struct {
		y        []float64
		d        int
		expected []float64
	}{
		"no differencing": {
			y:        []float64{1, 2, 4},
			d:        0,
			expected: []float64{1, 2, 4},
		},
		"first order": {
			y:        []float64{1, 2, 4, 7, 11},
			d:        1,
			expected: []float64{1, 2, 3, 4},
		},
		"second order": {
			y:        []float64{1, 2, 4, 7, 11},
			d:        2,
			expected: []float64{1, 1, 1},
		},
		"constant collapses to zero": {
			y:        []float64{5, 5, 5, 5},
			d:        1,
			expected: []float64{0, 0, 0},
		},
		"too short": {
			y:        []float64{3},
			d:        1,
			expected: nil,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, Diff(td.y, td.d))
		})
	}
}

func TestDiffDoesNotMutateInput(t *testing.T) {
	y := []float64{1, 2, 4}
	Diff(y, 1)
	assert.Equal(t, []float64{1, 2, 4}, y)
}

func TestImputeMean(t *testing.T) {
	nan := math.NaN()
	testData := map[string]struct {
		col      []float64
		expected []float64
	}{
		"no missing": {
			col:      []float64{1, 2, 3},
			expected: []float64{1, 2, 3},
		},
		"single missing": {
			col:      []float64{1, nan, 3},
			expected: []float64{1, 2, 3},
		},
		"all missing": {
			col:      []float64{nan, nan},
			expected: []float64{0, 0},
		},
		"empty": {
			col:      []float64{},
			expected: []float64{},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, ImputeMean(td.col))
		})
	}
}
