// Package httpapi exposes the ensemble forecaster over a small JSON API with
// endpoints for sample data generation, prediction and model metadata.
package httpapi

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/enercast/enercast"
	"github.com/enercast/enercast/timeseries"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"gonum.org/v1/gonum/stat"
)

type Server struct {
	cfg      *Config
	log      *slog.Logger
	ensemble *enercast.Ensemble
}

func NewServer(cfg *Config, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	var opt *enercast.Options
	if len(cfg.Weights) > 0 {
		opt = &enercast.Options{Weights: cfg.Weights}
	}
	e, err := enercast.New(opt)
	if err != nil {
		return nil, err
	}

	return &Server{
		cfg:      cfg,
		log:      logger,
		ensemble: e,
	}, nil
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(s.log), CORS(s.cfg.AllowedOrigins))

	r.GET("/", s.root)
	r.GET("/health", s.health)
	r.GET("/sample-data", s.sampleData)
	r.POST("/predict", s.predict)
	r.GET("/model-info", s.modelInfo)
	return r
}

func (s *Server) root(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{
		"message": "Energy Forecasting API",
		"status":  "running",
	})
}

func (s *Server) health(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "energy-forecasting",
	})
}

type sampleDataResponse struct {
	Data         []timeseries.Point      `json:"data"`
	Count        int                     `json:"count"`
	Statistics   timeseries.Summary      `json:"statistics"`
	Correlations timeseries.Correlations `json:"correlations"`
}

func (s *Server) sampleData(c *gin.Context) {
	hours := 168
	if raw := c.Query("hours"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeJSON(c, http.StatusBadRequest, gin.H{"error": "hours must be a positive integer"})
			return
		}
		hours = parsed
	}

	opt := timeseries.NewDefaultSimOptions()
	opt.Hours = hours
	series, err := timeseries.Simulate(opt)
	if err != nil {
		s.log.Error("unable to simulate sample data", "error", err)
		writeJSON(c, http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	writeJSON(c, http.StatusOK, sampleDataResponse{
		Data:         series.Points,
		Count:        series.Len(),
		Statistics:   series.Summarize(),
		Correlations: series.Correlations(),
	})
}

// predictPoint mirrors timeseries.Point with optional weather attributes.
type predictPoint struct {
	Consumption float64  `json:"consumption"`
	Hour        int      `json:"hour"`
	DayOfWeek   int      `json:"day_of_week"`
	DayOfYear   int      `json:"day_of_year"`
	Month       int      `json:"month"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
}

type predictRequest struct {
	Data []predictPoint `json:"data"`
}

type nextHourForecast struct {
	Timestamp          string            `json:"timestamp"`
	EnsemblePrediction float64           `json:"ensemble_prediction"`
	ConfidenceInterval enercast.Interval `json:"confidence_interval"`
	PredictionVariance float64           `json:"prediction_variance"`
	Confidence         float64           `json:"confidence"`
}

type predictResponse struct {
	Ensemble            *enercast.Result   `json:"ensemble_prediction"`
	AlgorithmComparison map[string]float64 `json:"algorithm_comparison"`
	NextHourForecast    nextHourForecast   `json:"next_hour_forecast"`
}

func (s *Server) predict(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		writeJSON(c, http.StatusBadRequest, gin.H{"error": "unable to read request body"})
		return
	}
	var req predictRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeJSON(c, http.StatusBadRequest, gin.H{"error": "invalid json payload"})
		return
	}

	points := make([]timeseries.Point, len(req.Data))
	for i, p := range req.Data {
		points[i] = timeseries.Point{
			Consumption: p.Consumption,
			Hour:        p.Hour,
			DayOfWeek:   p.DayOfWeek,
			DayOfYear:   p.DayOfYear,
			Month:       p.Month,
			Temperature: math.NaN(),
			Humidity:    math.NaN(),
		}
		if p.Temperature != nil {
			points[i].Temperature = *p.Temperature
		}
		if p.Humidity != nil {
			points[i].Humidity = *p.Humidity
		}
	}

	series, err := timeseries.NewSeries(points)
	if err != nil {
		writeJSON(c, http.StatusBadRequest, gin.H{"error": "prediction error: " + err.Error()})
		return
	}

	res, err := s.ensemble.Forecast(series)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, enercast.ErrInsufficientData) {
			status = http.StatusBadRequest
		}
		writeJSON(c, status, gin.H{"error": "prediction error: " + err.Error()})
		return
	}

	writeJSON(c, http.StatusOK, predictResponse{
		Ensemble:            res,
		AlgorithmComparison: res.Predictions,
		NextHourForecast: nextHourForecast{
			Timestamp:          "next_hour",
			EnsemblePrediction: res.EnsemblePrediction,
			ConfidenceInterval: res.ConfidenceInterval,
			PredictionVariance: res.PredictionVariance,
			Confidence:         forecastConfidence(series, res.PredictionVariance),
		},
	})
}

// forecastConfidence scales cross-method disagreement against the recent load
// level. A variance as large as the recent average collapses confidence to 0.
func forecastConfidence(s *timeseries.Series, variance float64) float64 {
	y := s.Consumption()
	if len(y) > 10 {
		y = y[len(y)-10:]
	}
	avgRecent := stat.Mean(y, nil)
	if avgRecent <= 0 {
		return 0
	}
	confidence := (1 - variance/avgRecent) * 0.9
	if confidence < 0 || math.IsNaN(confidence) {
		return 0
	}
	return confidence
}

func (s *Server) modelInfo(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{
		"algorithms": s.ensemble.Forecasters(),
		"weights":    s.ensemble.Weights(),
		"features":   timeseries.FeatureLabels(),
	})
}

func writeJSON(c *gin.Context, status int, v any) {
	bytes, err := json.Marshal(v)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(status, "application/json; charset=utf-8", bytes)
}
