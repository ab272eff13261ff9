// Package timeseries defines the hourly energy consumption series consumed by
// the forecasting algorithms, along with a synthetic data simulator for demos
// and tests.
package timeseries

import (
	"errors"
	"fmt"
	"math"

	"github.com/enercast/enercast/stats"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrEmptySeries  = errors.New("no points in series")
	ErrInvalidPoint = errors.New("point attribute out of range")
)

// Defaults applied to optional weather attributes when unset (NaN).
const (
	DefaultTemperature = 20.0
	DefaultHumidity    = 50.0
)

// Point is a single hourly energy consumption observation. Position in the
// series is the only timing signal, the calendar attributes describe the
// observation itself.
type Point struct {
	Consumption float64 `json:"consumption"`
	Hour        int     `json:"hour"`
	DayOfWeek   int     `json:"day_of_week"`
	DayOfYear   int     `json:"day_of_year"`
	Month       int     `json:"month"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
}

func (p *Point) Valid() error {
	switch {
	case p.Consumption < 0 || math.IsNaN(p.Consumption):
		return fmt.Errorf("consumption %f, %w", p.Consumption, ErrInvalidPoint)
	case p.Hour < 0 || p.Hour > 23:
		return fmt.Errorf("hour %d, %w", p.Hour, ErrInvalidPoint)
	case p.DayOfWeek < 0 || p.DayOfWeek > 6:
		return fmt.Errorf("day of week %d, %w", p.DayOfWeek, ErrInvalidPoint)
	case p.DayOfYear < 1 || p.DayOfYear > 366:
		return fmt.Errorf("day of year %d, %w", p.DayOfYear, ErrInvalidPoint)
	case p.Month < 1 || p.Month > 12:
		return fmt.Errorf("month %d, %w", p.Month, ErrInvalidPoint)
	}
	return nil
}

// Series is a chronologically ordered sequence of points. Construct with
// NewSeries so weather defaults are applied and attributes validated.
type Series struct {
	Points []Point
}

// NewSeries copies the input points into a new series, filling unset (NaN)
// temperature and humidity values with their defaults. Algorithms never
// mutate the caller's slice.
func NewSeries(points []Point) (*Series, error) {
	if len(points) == 0 {
		return nil, ErrEmptySeries
	}

	pts := make([]Point, len(points))
	copy(pts, points)
	for i := range pts {
		if math.IsNaN(pts[i].Temperature) {
			pts[i].Temperature = DefaultTemperature
		}
		if math.IsNaN(pts[i].Humidity) {
			pts[i].Humidity = DefaultHumidity
		}
		if err := pts[i].Valid(); err != nil {
			return nil, fmt.Errorf("point %d, %w", i, err)
		}
	}
	return &Series{Points: pts}, nil
}

func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Points)
}

func (s *Series) Copy() *Series {
	pts := make([]Point, len(s.Points))
	copy(pts, s.Points)
	return &Series{Points: pts}
}

// Consumption returns the flat univariate view of the series.
func (s *Series) Consumption() []float64 {
	y := make([]float64, len(s.Points))
	for i, p := range s.Points {
		y[i] = p.Consumption
	}
	return y
}

// FeatureLabels returns the regression feature names in design matrix column
// order.
func FeatureLabels() []string {
	return []string{"hour", "day_of_week", "day_of_year", "temperature", "humidity"}
}

// FeatureMatrix returns the tabular feature view of the series as an n x 5
// design matrix with columns hour, day_of_week, day_of_year, temperature and
// humidity. Missing numeric values are imputed with the column mean.
func (s *Series) FeatureMatrix() *mat.Dense {
	n := len(s.Points)
	cols := make([][]float64, 5)
	for i := range cols {
		cols[i] = make([]float64, n)
	}
	for i, p := range s.Points {
		cols[0][i] = float64(p.Hour)
		cols[1][i] = float64(p.DayOfWeek)
		cols[2][i] = float64(p.DayOfYear)
		cols[3][i] = p.Temperature
		cols[4][i] = p.Humidity
	}

	x := mat.NewDense(n, len(cols), nil)
	for j, col := range cols {
		x.SetCol(j, stats.ImputeMean(col))
	}
	return x
}
