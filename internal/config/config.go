package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is built once in main and passed down explicitly; no package reads
// the environment on its own.
type Config struct {
	Orfeo struct {
		BaseURL  string `env:"BASE_URL" envDefault:"https://orfeo.example.com"`
		Token    string `env:"TOKEN" envDefault:"demo-token"`
		Timeout  int    `env:"TIMEOUT" envDefault:"15"`
		DemoMode bool   `env:"DEMO_MODE" envDefault:"false"`
	} `envPrefix:"ORFEO_"`
	EmployeeID int `env:"EMPLOYEE_ID" envDefault:"1"`
	Server     struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"5"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"10"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Declare struct {
		RatePerSecond float64 `env:"RATE" envDefault:"1"`
		Burst         int     `env:"BURST" envDefault:"3"`
	} `envPrefix:"DECLARE_"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if errors.As(err, &aggErr) {
			// the first error is enough for a readable log line
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}
	return cfg, nil
}

func (c *Config) OrfeoTimeout() time.Duration {
	return time.Duration(c.Orfeo.Timeout) * time.Second
}
