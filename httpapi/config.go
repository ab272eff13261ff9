package httpapi

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the http service configuration.
type Config struct {
	Addr           string             `yaml:"addr"`
	AllowedOrigins []string           `yaml:"allowed_origins"`
	Weights        map[string]float64 `yaml:"weights"`
}

func NewDefaultConfig() *Config {
	return &Config{
		Addr: ":8000",
		AllowedOrigins: []string{
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		},
	}
}

// LoadConfig reads a YAML config file and fills unset fields with defaults.
// A missing file yields the default configuration.
func LoadConfig(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("unable to read config file, %w", err)
	}
	if len(data) > 0 {
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("unable to parse config file, %w", err)
		}
		if fileCfg.Addr != "" {
			cfg.Addr = fileCfg.Addr
		}
		if len(fileCfg.AllowedOrigins) > 0 {
			cfg.AllowedOrigins = fileCfg.AllowedOrigins
		}
		if len(fileCfg.Weights) > 0 {
			cfg.Weights = fileCfg.Weights
		}
	}

	if v := os.Getenv("ENERCAST_ADDR"); v != "" {
		cfg.Addr = v
	}

	return cfg, nil
}
