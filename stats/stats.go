// Package stats provides shared numeric helpers used by the forecasting
// algorithms.
package stats

import "math"

// Diff applies d rounds of first-order differencing to y. Each round shortens
// the series by one point. Returns nil once the series can no longer be
// differenced.
func Diff(y []float64, d int) []float64 {
	out := make([]float64, len(y))
	copy(out, y)
	for i := 0; i < d; i++ {
		if len(out) < 2 {
			return nil
		}
		next := make([]float64, len(out)-1)
		for j := 1; j < len(out); j++ {
			next[j-1] = out[j] - out[j-1]
		}
		out = next
	}
	return out
}

// ImputeMean returns a copy of col with every NaN replaced by the mean of the
// finite values. A column with no finite values imputes to zero.
func ImputeMean(col []float64) []float64 {
	var sum float64
	var n int
	for _, v := range col {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	mean := 0.0
	if n > 0 {
		mean = sum / float64(n)
	}

	out := make([]float64, len(col))
	for i, v := range col {
		if math.IsNaN(v) {
			out[i] = mean
			continue
		}
		out[i] = v
	}
	return out
}
