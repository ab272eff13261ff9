package timeseries

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary reports descriptive statistics over a series.
type Summary struct {
	MeanConsumption float64 `json:"mean_consumption"`
	StdConsumption  float64 `json:"std_consumption"`
	MinConsumption  float64 `json:"min_consumption"`
	MaxConsumption  float64 `json:"max_consumption"`
	PeakHours       []int   `json:"peak_hours"`
}

// Correlations reports how strongly the weather attributes track consumption.
type Correlations struct {
	Temperature float64 `json:"temperature_correlation"`
	Humidity    float64 `json:"humidity_correlation"`
}

// Summarize computes descriptive statistics of the consumption values along
// with the five hours of day carrying the highest average load.
func (s *Series) Summarize() Summary {
	y := s.Consumption()

	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, p := range s.Points {
		sums[p.Hour] += p.Consumption
		counts[p.Hour]++
	}
	hours := make([]int, 0, len(sums))
	for h := range sums {
		hours = append(hours, h)
	}
	sort.Slice(hours, func(i, j int) bool {
		avgI := sums[hours[i]] / float64(counts[hours[i]])
		avgJ := sums[hours[j]] / float64(counts[hours[j]])
		if avgI == avgJ {
			return hours[i] < hours[j]
		}
		return avgI > avgJ
	})
	if len(hours) > 5 {
		hours = hours[:5]
	}

	return Summary{
		MeanConsumption: stat.Mean(y, nil),
		StdConsumption:  stat.StdDev(y, nil),
		MinConsumption:  floats.Min(y),
		MaxConsumption:  floats.Max(y),
		PeakHours:       hours,
	}
}

// Correlations computes the Pearson correlation of temperature and humidity
// against consumption.
func (s *Series) Correlations() Correlations {
	y := s.Consumption()
	temp := make([]float64, len(s.Points))
	hum := make([]float64, len(s.Points))
	for i, p := range s.Points {
		temp[i] = p.Temperature
		hum[i] = p.Humidity
	}
	return Correlations{
		Temperature: stat.Correlation(y, temp, nil),
		Humidity:    stat.Correlation(y, hum, nil),
	}
}
