package timeseries

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

// SimOptions configures the synthetic hourly consumption generator.
type SimOptions struct {
	Hours int
	Start time.Time
	Seed  uint64
}

func NewDefaultSimOptions() *SimOptions {
	hours := 7 * 24
	return &SimOptions{
		Hours: hours,
		Start: time.Now().UTC().Truncate(time.Hour).Add(-time.Duration(hours) * time.Hour),
		Seed:  42,
	}
}

func (o *SimOptions) Validate() (*SimOptions, error) {
	if o == nil {
		return NewDefaultSimOptions(), nil
	}
	out := *o
	if out.Hours <= 0 {
		out.Hours = 7 * 24
	}
	if out.Start.IsZero() {
		out.Start = time.Now().UTC().Truncate(time.Hour).Add(-time.Duration(out.Hours) * time.Hour)
	}
	return &out, nil
}

// seasonProfile shapes the synthetic load and weather for one season.
type seasonProfile struct {
	base      float64
	amplitude float64
	peakHours map[int]struct{}
	tempBase  float64
	tempRange float64
}

var seasonProfiles = map[string]seasonProfile{
	"winter": {base: 100, amplitude: 40, peakHours: hourSet(7, 8, 18, 19, 20), tempBase: 5, tempRange: 10},
	"spring": {base: 70, amplitude: 25, peakHours: hourSet(7, 8, 18, 19), tempBase: 15, tempRange: 8},
	"summer": {base: 85, amplitude: 35, peakHours: hourSet(12, 13, 14, 15, 16), tempBase: 25, tempRange: 10},
	"autumn": {base: 75, amplitude: 30, peakHours: hourSet(7, 8, 18, 19), tempBase: 12, tempRange: 8},
}

func hourSet(hours ...int) map[int]struct{} {
	m := make(map[int]struct{}, len(hours))
	for _, h := range hours {
		m[h] = struct{}{}
	}
	return m
}

func seasonOf(m time.Month) string {
	switch m {
	case time.December, time.January, time.February:
		return "winter"
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	default:
		return "autumn"
	}
}

var simHolidays = []*cal.Holiday{
	us.NewYear,
	us.IndependenceDay,
	us.ChristmasDay,
}

func isHoliday(t time.Time) bool {
	for _, hol := range simHolidays {
		actual, _ := hol.Calc(t.Year())
		if actual.Month() == t.Month() && actual.Day() == t.Day() {
			return true
		}
	}
	return false
}

// Simulate generates a synthetic hourly energy consumption series with
// seasonal load shapes, peak hour ramps, night and weekend reduction, holiday
// reduction, weather effects, and Gaussian noise. The output is deterministic
// for a given set of options.
func Simulate(opt *SimOptions) (*Series, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	r := rand.New(rand.NewPCG(opt.Seed, opt.Seed))

	points := make([]Point, 0, opt.Hours)
	for i := 0; i < opt.Hours; i++ {
		ct := opt.Start.Add(time.Duration(i) * time.Hour)
		profile := seasonProfiles[seasonOf(ct.Month())]
		hour := ct.Hour()

		consumption := profile.base
		if _, peak := profile.peakHours[hour]; peak {
			consumption += profile.amplitude * 0.8
		} else if hour >= 22 || hour <= 5 {
			consumption *= 0.6
		}

		switch ct.Weekday() {
		case time.Saturday, time.Sunday:
			consumption *= 0.75
		}
		if isHoliday(ct) {
			consumption *= 0.8
		}

		consumption += r.NormFloat64() * consumption * 0.1

		// air conditioning and heating load riding on top of the base shape
		season := seasonOf(ct.Month())
		if season == "summer" && hour >= 12 && hour <= 15 {
			consumption += 20 + r.NormFloat64()*5
		} else if season == "winter" && ((hour >= 6 && hour <= 8) || (hour >= 17 && hour <= 19)) {
			consumption += 15 + r.NormFloat64()*3
		}

		temperature := profile.tempBase +
			(r.Float64()-0.5)*profile.tempRange +
			5*math.Sin(2*math.Pi*float64(hour-6)/24.0)

		points = append(points, Point{
			Consumption: math.Max(0, consumption),
			Hour:        hour,
			DayOfWeek:   int(ct.Weekday()+6) % 7,
			DayOfYear:   ct.YearDay(),
			Month:       int(ct.Month()),
			Temperature: temperature,
			Humidity:    30 + r.Float64()*50,
		})
	}
	return NewSeries(points)
}
