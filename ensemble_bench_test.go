package enercast

import (
	"testing"
	"time"

	"github.com/enercast/enercast/timeseries"
	"github.com/pkg/profile"
)

var benchForecastRes *Result

func BenchmarkForecast(b *testing.B) {
	s, err := timeseries.Simulate(&timeseries.SimOptions{
		Hours: 720,
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Seed:  42,
	})
	if err != nil {
		panic(err)
	}

	e, err := New(nil)
	if err != nil {
		panic(err)
	}

	b.ResetTimer()
	defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	for b.Loop() {
		benchForecastRes, err = e.Forecast(s)
		if err != nil {
			panic(err)
		}
	}
}
